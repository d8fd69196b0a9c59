package builder

import (
	"testing"
	"time"

	kafka "github.com/segmentio/kafka-go"
)

func TestNewKafkaGoWriterDefaults(t *testing.T) {
	w := NewKafkaGoWriter([]string{"localhost:9092"}, "bench.results")
	if w.Topic != "bench.results" {
		t.Fatalf("unexpected topic: %q", w.Topic)
	}
	if _, ok := w.Balancer.(*kafka.Hash); !ok {
		t.Fatalf("expected Hash balancer, got %T", w.Balancer)
	}
	if w.RequiredAcks != kafka.RequireAll {
		t.Fatalf("expected RequireAll, got %v", w.RequiredAcks)
	}
	if w.BatchTimeout != 200*time.Millisecond {
		t.Fatalf("unexpected batch timeout: %v", w.BatchTimeout)
	}
}

func TestKafkaGoWriterOptions(t *testing.T) {
	w := NewKafkaGoWriter([]string{"localhost:9092"}, "bench.results",
		KafkaGoWriterWithLeastBytes(),
		KafkaGoWriterWithRequiredAcks("leader"),
		KafkaGoWriterWithCompression(kafka.Snappy),
		KafkaGoWriterWithAsync(true),
	)
	if _, ok := w.Balancer.(*kafka.LeastBytes); !ok {
		t.Fatalf("expected LeastBytes balancer, got %T", w.Balancer)
	}
	if w.RequiredAcks != kafka.RequireOne {
		t.Fatalf("expected RequireOne, got %v", w.RequiredAcks)
	}
	if w.Compression != kafka.Snappy {
		t.Fatalf("expected snappy compression, got %v", w.Compression)
	}
	if !w.Async {
		t.Fatalf("expected async writer")
	}
}

func TestNewKafkaSecurityDefaults(t *testing.T) {
	sec := NewKafkaSecurity()
	if sec.DialerTO != 10*time.Second || !sec.DualStack {
		t.Fatalf("unexpected defaults: %+v", sec)
	}

	sec = NewKafkaSecurity(WithClientID("bench"), WithDialer(3*time.Second, false))
	if sec.ClientID != "bench" || sec.DialerTO != 3*time.Second || sec.DualStack {
		t.Fatalf("unexpected overrides: %+v", sec)
	}
}

func TestNewKafkaGoTransportFromSecurity(t *testing.T) {
	if NewKafkaGoTransportFromSecurity(nil) != nil {
		t.Fatalf("expected nil transport for nil security")
	}
	tr := NewKafkaGoTransportFromSecurity(NewKafkaSecurity(WithClientID("bench")))
	if tr.ClientID != "bench" {
		t.Fatalf("unexpected client id: %q", tr.ClientID)
	}
	if tr.DialTimeout != 10*time.Second {
		t.Fatalf("expected dial timeout from security, got %v", tr.DialTimeout)
	}
}

func TestSASLSCRAM(t *testing.T) {
	if _, err := SASLSCRAM("user", "pass", "SCRAM-SHA-512"); err != nil {
		t.Fatalf("SASLSCRAM error: %v", err)
	}
	if _, err := SASLSCRAM("user", "pass", "scram_sha_256"); err != nil {
		t.Fatalf("SASLSCRAM error: %v", err)
	}
	if _, err := SASLSCRAM("user", "pass", "PLAIN"); err == nil {
		t.Fatalf("expected unsupported mechanism error")
	}
}
