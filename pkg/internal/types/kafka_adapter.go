package types

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/segmentio/kafka-go/sasl"
)

// KafkaSecurity bundles TLS + SASL + ClientID for kafka-go.
type KafkaSecurity struct {
	SASL      sasl.Mechanism // nil => no SASL
	TLS       *tls.Config    // nil => PLAINTEXT
	ClientID  string         // optional
	DialerTO  time.Duration  // optional (defaults 10s)
	DualStack bool           // optional (defaults true)
}

// KafkaClientDeps carries connection wiring for the publisher (no envs).
type KafkaClientDeps struct {
	// Connection
	Brokers []string // e.g., []{"broker-1:9092","broker-2:9092"}

	// Driver-specific producer handle (optional; a kafka-go *Writer).
	// When nil the adapter constructs one from Brokers + config.
	Producer any

	// Optional security bundle (TLS + SASL + client id, dialer prefs)
	Security *KafkaSecurity
}

// KafkaWriterConfig controls how results are produced.
type KafkaWriterConfig struct {
	// Destination
	Topic string // required

	// KeyTemplate renders the message key per record; supports
	// {category} and {algorithm} placeholders. Empty means no key.
	KeyTemplate string

	// Producer delivery semantics
	Acks           string        // "", "0", "1", "all"
	RequestTimeout time.Duration // network/request timeout
	Compression    string        // "", "gzip", "snappy", "zstd", "lz4"
}

// KafkaClientAdapter publishes benchmark results as JSON messages.
type KafkaClientAdapter interface {
	SetKafkaClientDeps(KafkaClientDeps)
	SetWriterConfig(KafkaWriterConfig)

	// PublishResults produces one message per result and returns the first
	// produce error encountered.
	PublishResults(ctx context.Context, results []BenchResult) error

	// Close flushes and releases the underlying producer.
	Close() error

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor[BenchResult])
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}

// KafkaClientOption configures a KafkaClientAdapter.
type KafkaClientOption func(KafkaClientAdapter)
