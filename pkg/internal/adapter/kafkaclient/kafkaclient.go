// Package kafkaclient publishes benchmark results to Kafka as JSON
// messages, one message per result. The adapter accepts an injected
// kafka-go *Writer or constructs its own from brokers plus writer
// config on first publish. Message keys are rendered from a template
// so records for one category/algorithm pair land on one partition
// stream.
package kafkaclient

import (
	"context"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/algoscope/algoscope/pkg/internal/types"
	"github.com/algoscope/algoscope/pkg/internal/utils"
)

const (
	defaultKeyTemplate    = "{category}/{algorithm}"
	defaultAcks           = "all"
	defaultRequestTimeout = 30 * time.Second
)

// Publisher is the result publishing component (Type KAFKA_CLIENT).
// The zero value is not usable; construct with NewPublisher.
type Publisher struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc

	// Connection deps and writer settings. Snapshot under configLock;
	// publishing works on the copies.
	brokers     []string
	producer    any
	security    *types.KafkaSecurity
	topic       string
	keyTemplate string
	acks        string
	reqTimeout  time.Duration
	compression string
	configLock  sync.Mutex

	// Writer lifecycle. The writer is resolved on first publish and
	// kept for the adapter's lifetime; Close closes owned writers only.
	writer     *kafka.Writer
	ownsWriter bool
	started    bool
	closed     bool
	writerLock sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex

	sensors    []types.Sensor[types.BenchResult]
	sensorLock sync.Mutex
}

// NewPublisher creates a new Publisher with the provided options. The
// constructor context bounds every publish; Close cancels it.
func NewPublisher(ctx context.Context, options ...types.KafkaClientOption) types.KafkaClientAdapter {
	ctx, cancel := context.WithCancel(ctx)

	p := &Publisher{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "KAFKA_CLIENT",
		},
		ctx:         ctx,
		cancel:      cancel,
		keyTemplate: defaultKeyTemplate,
		acks:        defaultAcks,
		reqTimeout:  defaultRequestTimeout,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}
