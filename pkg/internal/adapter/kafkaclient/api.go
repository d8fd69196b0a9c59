package kafkaclient

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/algoscope/algoscope/pkg/internal/codec"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// PublishResults produces one JSON message per result and waits for
// broker acknowledgement of the whole batch.
//
// Parameters:
//   - ctx: Context bounding the produce round trip.
//   - results: Results to publish; an empty slice is a no-op.
//
// Returns:
//
//	nil when every message was acknowledged, or the first error from
//	configuration, encoding or the broker.
func (p *Publisher) PublishResults(ctx context.Context, results []types.BenchResult) error {
	cm := p.GetComponentMetadata()
	if len(results) == 0 {
		p.NotifyLoggers(types.InfoLevel, "Nothing to publish",
			"component", cm,
			"event", "PublishResults",
		)
		return nil
	}
	if err := p.ctx.Err(); err != nil {
		return err
	}

	cfg := p.config()
	w, topic, err := p.resolveWriter(cfg)
	if err != nil {
		return err
	}
	sensors := p.snapshotSensors()

	enc := codec.NewJSONEncoder[types.BenchResult]()
	msgs := make([]kafka.Message, 0, len(results))
	for _, r := range results {
		var buf bytes.Buffer
		if err := enc.Encode(&buf, r); err != nil {
			return fmt.Errorf("kafkaclient: encode result: %w", err)
		}

		key := renderKey(cfg.keyTemplate, r)
		msg := kafka.Message{Key: key, Value: buf.Bytes()}
		// only set Topic on the message if the writer doesn't already carry one
		if strings.TrimSpace(w.Topic) == "" {
			msg.Topic = topic
		}
		msgs = append(msgs, msg)

		for _, sensor := range sensors {
			sensor.InvokeOnKafkaProduceAttempt(cm, topic, len(key), buf.Len())
		}
		p.NotifyLoggers(types.DebugLevel, "Produce attempt",
			"component", cm,
			"event", "PublishResults",
			"topic", topic,
			"key", string(key),
			"bytes", buf.Len(),
		)
	}

	ctx, done := p.bound(ctx)
	defer done()

	start := time.Now()
	if err := w.WriteMessages(ctx, msgs...); err != nil {
		for _, sensor := range sensors {
			sensor.InvokeOnKafkaProduceError(cm, topic, err)
		}
		p.NotifyLoggers(types.ErrorLevel, "Produce failed",
			"component", cm,
			"event", "PublishResults",
			"topic", topic,
			"records", len(results),
			"error", err,
		)
		return fmt.Errorf("kafkaclient: write messages: %w", err)
	}
	dur := time.Since(start)

	for _, sensor := range sensors {
		sensor.InvokeOnKafkaProduceSuccess(cm, topic, len(results), dur)
	}
	p.NotifyLoggers(types.InfoLevel, "Publish complete",
		"component", cm,
		"event", "PublishResults",
		"topic", topic,
		"records", len(results),
		"duration", dur,
	)
	return nil
}

// Close cancels the adapter context and closes the writer when the
// adapter constructed it; injected writers stay open for their owner.
// Safe to call more than once; later publishes fail with
// context.Canceled.
func (p *Publisher) Close() error {
	p.cancel()

	p.writerLock.Lock()
	if p.closed {
		p.writerLock.Unlock()
		return nil
	}
	p.closed = true
	w := p.writer
	owns := p.ownsWriter
	started := p.started
	p.writer = nil
	p.writerLock.Unlock()

	var err error
	if w != nil && owns {
		if cerr := w.Close(); cerr != nil {
			err = fmt.Errorf("kafkaclient: close writer: %w", cerr)
		}
	}

	cm := p.GetComponentMetadata()
	if started {
		for _, sensor := range p.snapshotSensors() {
			sensor.InvokeOnKafkaWriterStop(cm)
		}
	}
	p.NotifyLoggers(types.DebugLevel, "Close",
		"component", cm,
		"event", "Close",
	)
	return err
}
