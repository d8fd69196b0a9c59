// Package meter tracks suite progress counters and renders a live console
// display while benchmarks run. Sensors feed it through the types.Meter
// interface; the Monitor loop prints snapshots until the suite completes,
// the context is cancelled, or the meter idles out.
package meter

import (
	"context"
	"sync"
	"time"

	"github.com/algoscope/algoscope/pkg/internal/types"
	"github.com/algoscope/algoscope/pkg/internal/utils"
)

const defaultUpdateInterval = 100 * time.Millisecond

type Meter[T any] struct {
	ctx               context.Context
	cancel            context.CancelFunc
	componentMetadata types.ComponentMetadata

	counts     map[string]*uint64
	totals     map[string]uint64
	metrics    map[string]*types.MetricInfo
	thresholds map[string]float64
	startTimes map[string]time.Time

	monitoredMetrics []*types.MetricInfo
	metricNames      []string

	totalItems  uint64
	ticker      *time.Ticker
	startTime   time.Time
	endTime     time.Time
	idleTimer   *time.Timer
	idleTimeout time.Duration
	dataCh      chan struct{}

	mu        sync.Mutex
	loggers   []types.Logger
	loggersMu sync.Mutex
}

// NewMeter constructs a Meter bound to ctx. The returned meter already has
// every default metric registered so counters can be bumped immediately.
func NewMeter[T any](ctx context.Context, options ...types.Option[types.Meter[T]]) types.Meter[T] {
	ctx, cancel := context.WithCancel(ctx)
	m := &Meter[T]{
		ctx:    ctx,
		cancel: cancel,
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "METER",
		},
		counts:      make(map[string]*uint64),
		totals:      make(map[string]uint64),
		metrics:     make(map[string]*types.MetricInfo),
		thresholds:  make(map[string]float64),
		startTimes:  make(map[string]time.Time),
		idleTimeout: 60 * time.Second,
		idleTimer:   time.NewTimer(60 * time.Second),
		dataCh:      make(chan struct{}, 1),
		ticker:      time.NewTicker(defaultUpdateInterval),
	}

	m.initializeMetrics()

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}

	go m.monitorIdleTime(ctx)

	return m
}
