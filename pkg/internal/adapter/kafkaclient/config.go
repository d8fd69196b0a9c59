package kafkaclient

import "github.com/algoscope/algoscope/pkg/internal/types"

// SetKafkaClientDeps wires broker addresses and driver-specific
// dependencies for the adapter.
func (p *Publisher) SetKafkaClientDeps(d types.KafkaClientDeps) {
	p.configLock.Lock()
	defer p.configLock.Unlock()
	p.brokers = append([]string(nil), d.Brokers...)
	p.producer = d.Producer
	p.security = d.Security
}

// SetWriterConfig applies writer configuration fields that are
// explicitly set.
func (p *Publisher) SetWriterConfig(cfg types.KafkaWriterConfig) {
	p.configLock.Lock()
	defer p.configLock.Unlock()

	if cfg.Topic != "" {
		p.topic = cfg.Topic
	}
	if cfg.KeyTemplate != "" {
		p.keyTemplate = cfg.KeyTemplate
	}
	if cfg.Acks != "" {
		p.acks = cfg.Acks
	}
	if cfg.RequestTimeout > 0 {
		p.reqTimeout = cfg.RequestTimeout
	}
	if cfg.Compression != "" {
		p.compression = cfg.Compression
	}
}
