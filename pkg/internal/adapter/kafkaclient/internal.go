package kafkaclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

type writerConfig struct {
	brokers     []string
	producer    any
	security    *types.KafkaSecurity
	topic       string
	keyTemplate string
	acks        string
	reqTimeout  time.Duration
	compression string
}

func (p *Publisher) config() writerConfig {
	p.configLock.Lock()
	defer p.configLock.Unlock()
	return writerConfig{
		brokers:     append([]string(nil), p.brokers...),
		producer:    p.producer,
		security:    p.security,
		topic:       p.topic,
		keyTemplate: p.keyTemplate,
		acks:        p.acks,
		reqTimeout:  p.reqTimeout,
		compression: p.compression,
	}
}

// effectiveTopic returns a usable topic if either the adapter has one
// configured or the injected *kafka.Writer carries one. If neither is
// set, ok == false.
func (cfg writerConfig) effectiveTopic() (topic string, ok bool) {
	if t := strings.TrimSpace(cfg.topic); t != "" {
		return t, true
	}
	if w, is := cfg.producer.(*kafka.Writer); is && w != nil {
		if t := strings.TrimSpace(w.Topic); t != "" {
			// Writer already has a topic; in this case we must NOT also set Message.Topic
			return t, true
		}
	}
	return "", false
}

// bound derives a publish context that also ends when Close cancels
// the adapter context.
func (p *Publisher) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(p.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// resolveWriter returns the writer used for publishing, adopting an
// injected producer or constructing an owned one on first call. The
// writer-start hooks fire exactly once per adapter.
func (p *Publisher) resolveWriter(cfg writerConfig) (*kafka.Writer, string, error) {
	topic, ok := cfg.effectiveTopic()
	if !ok {
		return nil, "", fmt.Errorf("kafkaclient: PublishResults requires topic (set KafkaWriterConfig.Topic or use a kafka-go Writer with Topic)")
	}

	p.writerLock.Lock()
	defer p.writerLock.Unlock()

	if p.writer == nil {
		switch w := cfg.producer.(type) {
		case *kafka.Writer:
			p.writer = w
		case nil:
			if len(cfg.brokers) == 0 {
				return nil, "", fmt.Errorf("kafkaclient: PublishResults requires brokers or an injected producer; call SetKafkaClientDeps(...)")
			}
			p.writer = newWriter(cfg, topic)
			p.ownsWriter = true
		default:
			return nil, "", fmt.Errorf("kafkaclient: unsupported producer type %T (expected *kafka.Writer)", cfg.producer)
		}
	}

	if !p.started {
		p.started = true
		cm := p.GetComponentMetadata()
		for _, sensor := range p.snapshotSensors() {
			sensor.InvokeOnKafkaWriterStart(cm, topic, "json")
		}
		p.NotifyLoggers(types.InfoLevel, "Writer started",
			"component", cm,
			"event", "PublishResults",
			"topic", topic,
			"format", "json",
		)
	}
	return p.writer, topic, nil
}

// newWriter builds an owned kafka-go writer. LeastBytes keeps the
// partition load even when keys repeat per category/algorithm pair.
func newWriter(cfg writerConfig, topic string) *kafka.Writer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           200 * time.Millisecond,
		BatchBytes:             1 << 20,
		BatchSize:              1000,
		RequiredAcks:           requiredAcks(cfg.acks),
		Async:                  false,
		AllowAutoTopicCreation: true,
	}
	if cfg.reqTimeout > 0 {
		w.WriteTimeout = cfg.reqTimeout
	}
	if c, ok := compressionCodec(cfg.compression); ok {
		w.Compression = c
	}
	if sec := cfg.security; sec != nil {
		t := &kafka.Transport{
			TLS:      sec.TLS,
			SASL:     sec.SASL,
			ClientID: sec.ClientID,
		}
		if sec.DialerTO > 0 {
			t.DialTimeout = sec.DialerTO
		}
		w.Transport = t
	}
	return w
}

func requiredAcks(mode string) kafka.RequiredAcks {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "0", "none":
		return kafka.RequireNone
	case "1", "leader":
		return kafka.RequireOne
	default:
		return kafka.RequireAll
	}
}

func compressionCodec(name string) (kafka.Compression, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gzip":
		return kafka.Gzip, true
	case "snappy":
		return kafka.Snappy, true
	case "lz4":
		return kafka.Lz4, true
	case "zstd":
		return kafka.Zstd, true
	default:
		return 0, false
	}
}

// renderKey expands {category} and {algorithm} in tmpl for one result.
// An empty template or rendering means the message carries no key.
func renderKey(tmpl string, r types.BenchResult) []byte {
	t := strings.TrimSpace(tmpl)
	if t == "" {
		return nil
	}
	key := strings.NewReplacer(
		"{category}", r.Category,
		"{algorithm}", r.Algorithm,
	).Replace(t)
	if key == "" {
		return nil
	}
	return []byte(key)
}
