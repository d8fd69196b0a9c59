package builder

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/scram"

	kafkaClientAdapter "github.com/algoscope/algoscope/pkg/internal/adapter/kafkaclient"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// KafkaClientAdapter publishes benchmark results as JSON messages.
type KafkaClientAdapter = types.KafkaClientAdapter

// KafkaClientDeps carries broker/producer wiring for the publisher.
type KafkaClientDeps = types.KafkaClientDeps

// KafkaWriterConfig controls topic, keying and delivery semantics.
type KafkaWriterConfig = types.KafkaWriterConfig

// KafkaSecurity bundles TLS + SASL + ClientID for kafka-go.
type KafkaSecurity = types.KafkaSecurity

// KafkaClientOption configures a KafkaClientAdapter.
type KafkaClientOption = types.KafkaClientOption

////////////////////////
// Adapter constructor +
////////////////////////

// NewKafkaPublisher creates a new Kafka publisher for benchmark results.
func NewKafkaPublisher(ctx context.Context, options ...types.KafkaClientOption) types.KafkaClientAdapter {
	return kafkaClientAdapter.NewPublisher(ctx, options...)
}

func KafkaClientWithKafkaClientDeps(deps types.KafkaClientDeps) types.KafkaClientOption {
	return kafkaClientAdapter.WithKafkaClientDeps(deps)
}

func KafkaClientWithWriterConfig(cfg types.KafkaWriterConfig) types.KafkaClientOption {
	return kafkaClientAdapter.WithWriterConfig(cfg)
}

func KafkaClientWithSensor(sensor ...types.Sensor[types.BenchResult]) types.KafkaClientOption {
	return kafkaClientAdapter.WithSensor(sensor...)
}

func KafkaClientWithLogger(l ...types.Logger) types.KafkaClientOption {
	return kafkaClientAdapter.WithLogger(l...)
}

func KafkaClientWithComponentMetadata(name string, id string) types.KafkaClientOption {
	return kafkaClientAdapter.WithComponentMetadata(name, id)
}

////////////////////////////////////
// Writer-side exported options
////////////////////////////////////

// SetWriterConfig merges non-empty fields, so each of these can be
// stacked without clobbering the others.

func KafkaClientWithTopic(topic string) types.KafkaClientOption {
	return kafkaClientAdapter.WithWriterConfig(types.KafkaWriterConfig{Topic: topic})
}

func KafkaClientWithKeyTemplate(tmpl string) types.KafkaClientOption {
	return kafkaClientAdapter.WithWriterConfig(types.KafkaWriterConfig{KeyTemplate: tmpl})
}

func KafkaClientWithAcks(acks string) types.KafkaClientOption {
	return kafkaClientAdapter.WithWriterConfig(types.KafkaWriterConfig{Acks: acks})
}

func KafkaClientWithRequestTimeout(d time.Duration) types.KafkaClientOption {
	return kafkaClientAdapter.WithWriterConfig(types.KafkaWriterConfig{RequestTimeout: d})
}

func KafkaClientWithCompression(name string) types.KafkaClientOption {
	return kafkaClientAdapter.WithWriterConfig(types.KafkaWriterConfig{Compression: name})
}

/////////////////////////////////////////////////////////////
// Driver helpers: kafka-go writer constructors + inject
/////////////////////////////////////////////////////////////

// Inject a kafka-go Writer as the producer.
func KafkaClientWithKafkaGoWriter(w *kafka.Writer) types.KafkaClientOption {
	return kafkaClientAdapter.WithKafkaClientDeps(types.KafkaClientDeps{Producer: w})
}

// KafkaClientWithConnection sets Brokers + Security on the adapter deps.
// Use this when you want the adapter to construct its own writer.
func KafkaClientWithConnection(brokers []string, sec *types.KafkaSecurity) types.KafkaClientOption {
	return kafkaClientAdapter.WithKafkaClientDeps(types.KafkaClientDeps{
		Brokers:  brokers,
		Security: sec,
	})
}

// ---- kafka-go Writer convenience ----

type KafkaGoWriterOption func(*kafka.Writer)

// NewKafkaGoWriter builds a sensible kafka-go Writer for the given brokers/topic.
func NewKafkaGoWriter(brokers []string, topic string, opts ...KafkaGoWriterOption) *kafka.Writer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           200 * time.Millisecond,
		BatchBytes:             int64(1 << 20), // kafka-go uses int64 for BatchBytes
		BatchSize:              1000,
		RequiredAcks:           kafka.RequireAll,
		Async:                  false,
		AllowAutoTopicCreation: true,
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

func KafkaGoWriterWithRoundRobin() KafkaGoWriterOption {
	return func(w *kafka.Writer) { w.Balancer = &kafka.RoundRobin{} }
}
func KafkaGoWriterWithHash() KafkaGoWriterOption {
	return func(w *kafka.Writer) { w.Balancer = &kafka.Hash{} }
}
func KafkaGoWriterWithLeastBytes() KafkaGoWriterOption {
	return func(w *kafka.Writer) { w.Balancer = &kafka.LeastBytes{} }
}
func KafkaGoWriterWithBatchTimeout(d time.Duration) KafkaGoWriterOption {
	return func(w *kafka.Writer) { w.BatchTimeout = d }
}
func KafkaGoWriterWithBatchBytes(n int64) KafkaGoWriterOption { // int64 to match kafka-go
	return func(w *kafka.Writer) { w.BatchBytes = n }
}
func KafkaGoWriterWithBatchSize(n int) KafkaGoWriterOption {
	return func(w *kafka.Writer) { w.BatchSize = n }
}
func KafkaGoWriterWithAsync(async bool) KafkaGoWriterOption {
	return func(w *kafka.Writer) { w.Async = async }
}
func KafkaGoWriterWithCompression(c kafka.Compression) KafkaGoWriterOption {
	return func(w *kafka.Writer) { w.Compression = c }
}
func KafkaGoWriterWithRequiredAcks(mode string) KafkaGoWriterOption {
	return func(w *kafka.Writer) {
		switch strings.ToLower(mode) {
		case "0", "none":
			w.RequiredAcks = kafka.RequireNone
		case "1", "leader":
			w.RequiredAcks = kafka.RequireOne
		default: // "all", "-1"
			w.RequiredAcks = kafka.RequireAll
		}
	}
}
func KafkaGoWriterWithTransport(t *kafka.Transport) KafkaGoWriterOption {
	return func(w *kafka.Writer) { w.Transport = t }
}

// -------------------------------------------------
// Security helpers (TLS + SASL) to reduce boilerplate
// -------------------------------------------------

// TLSFromCAFilesStrict loads a strict TLS config (Min TLS1.2) using the first
// existing file path from candidates. If serverName != "", it is set for SNI
// and hostname verification.
func TLSFromCAFilesStrict(candidates []string, serverName string) (*tls.Config, error) {
	var picked string
	for _, p := range candidates {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			picked = p
			break
		}
	}
	if picked == "" {
		return nil, fmt.Errorf("no CA file found in candidates: %v", candidates)
	}
	pem, err := os.ReadFile(filepath.Clean(picked))
	if err != nil {
		return nil, fmt.Errorf("read CA: %w", err)
	}
	cp := x509.NewCertPool()
	if !cp.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("invalid CA PEM at %s", picked)
	}
	cfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    cp,
	}
	if serverName != "" {
		cfg.ServerName = serverName
	}
	return cfg, nil
}

// TLSFromCAPathCSV convenience wrapper around TLSFromCAFilesStrict.
func TLSFromCAPathCSV(csv, serverName string) (*tls.Config, error) {
	var paths []string
	for _, p := range strings.Split(csv, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			paths = append(paths, p)
		}
	}
	return TLSFromCAFilesStrict(paths, serverName)
}

// SASLSCRAM returns a sasl.Mechanism for kafka-go from a common name.
// Supported: "SCRAM-SHA-256" (default), "SCRAM-SHA-512".
func SASLSCRAM(user, pass, mech string) (sasl.Mechanism, error) {
	switch strings.ToUpper(strings.ReplaceAll(mech, "_", "-")) {
	case "", "SCRAM-SHA-256":
		return scram.Mechanism(scram.SHA256, user, pass)
	case "SCRAM-SHA-512":
		return scram.Mechanism(scram.SHA512, user, pass)
	default:
		return nil, fmt.Errorf("unsupported SASL mechanism: %s", mech)
	}
}

// NewKafkaGoTransport builds a kafka-go Transport with optional TLS/SASL/ClientID.
func NewKafkaGoTransport(tlsCfg *tls.Config, mech sasl.Mechanism, clientID string) *kafka.Transport {
	return &kafka.Transport{
		TLS:      tlsCfg,
		SASL:     mech,
		ClientID: clientID,
	}
}

// NewKafkaGoWriterSecure: NewKafkaGoWriter + Transport(TLS/SASL) in one call.
func NewKafkaGoWriterSecure(brokers []string, topic string, tlsCfg *tls.Config, mech sasl.Mechanism, clientID string, opts ...KafkaGoWriterOption) *kafka.Writer {
	transport := NewKafkaGoTransport(tlsCfg, mech, clientID)
	opts = append([]KafkaGoWriterOption{KafkaGoWriterWithTransport(transport)}, opts...)
	return NewKafkaGoWriter(brokers, topic, opts...)
}

// -------------------------------------------------
// Builder for types.KafkaSecurity + adapter option
// -------------------------------------------------

// KafkaSecurityOption mutates a types.KafkaSecurity.
type KafkaSecurityOption func(*types.KafkaSecurity)

// NewKafkaSecurity creates a types.KafkaSecurity with sensible defaults.
// Defaults: DialerTO=10s, DualStack=true. TLS/SASL/ClientID are optional.
func NewKafkaSecurity(opts ...KafkaSecurityOption) *types.KafkaSecurity {
	sec := &types.KafkaSecurity{
		DialerTO:  10 * time.Second,
		DualStack: true,
	}
	for _, o := range opts {
		o(sec)
	}
	return sec
}

func WithTLS(cfg *tls.Config) KafkaSecurityOption {
	return func(s *types.KafkaSecurity) { s.TLS = cfg }
}
func WithSASL(mech sasl.Mechanism) KafkaSecurityOption {
	return func(s *types.KafkaSecurity) { s.SASL = mech }
}
func WithClientID(id string) KafkaSecurityOption {
	return func(s *types.KafkaSecurity) { s.ClientID = id }
}
func WithDialer(timeout time.Duration, dualStack bool) KafkaSecurityOption {
	return func(s *types.KafkaSecurity) {
		if timeout > 0 {
			s.DialerTO = timeout
		}
		s.DualStack = dualStack
	}
}

// NewKafkaGoTransportFromSecurity maps types.KafkaSecurity -> kafka.Transport.
func NewKafkaGoTransportFromSecurity(sec *types.KafkaSecurity) *kafka.Transport {
	if sec == nil {
		return nil
	}
	t := NewKafkaGoTransport(sec.TLS, sec.SASL, sec.ClientID)
	if sec.DialerTO > 0 {
		t.DialTimeout = sec.DialerTO
	}
	return t
}

// NewKafkaGoWriterWithSecurity wires a writer and applies security.Transport.
func NewKafkaGoWriterWithSecurity(brokers []string, topic string, sec *types.KafkaSecurity, opts ...KafkaGoWriterOption) *kafka.Writer {
	if sec != nil {
		opts = append([]KafkaGoWriterOption{KafkaGoWriterWithTransport(NewKafkaGoTransportFromSecurity(sec))}, opts...)
	}
	return NewKafkaGoWriter(brokers, topic, opts...)
}
