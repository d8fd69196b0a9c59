// Package sensor provides the callback hub for component telemetry. A sensor
// is attached to a benchmark runner, chart renderer, archive writer or export
// adapter; the component invokes the matching hooks as it works and the
// sensor fans each event out to registered callbacks and connected meters.
package sensor

import (
	"sync"
	"time"

	"github.com/algoscope/algoscope/pkg/internal/types"
	"github.com/algoscope/algoscope/pkg/internal/utils"
)

// Sensor provides callback hooks for component telemetry.
type Sensor[T any] struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	OnStart            []func(types.ComponentMetadata)
	OnComplete         []func(types.ComponentMetadata)
	OnCancel           []func(types.ComponentMetadata, T)
	OnElementProcessed []func(types.ComponentMetadata, T)
	OnError            []func(types.ComponentMetadata, error, T)

	OnBenchCaseStart     []func(types.ComponentMetadata, string, string, int, string)
	OnBenchCaseSkip      []func(types.ComponentMetadata, string, int, string)
	OnBenchSuiteComplete []func(types.ComponentMetadata, int, time.Duration)

	OnChartRenderStart []func(types.ComponentMetadata, string)
	OnChartSaved       []func(types.ComponentMetadata, string, string, int64)
	OnChartRenderError []func(types.ComponentMetadata, string, error)

	OnArchiveWriteStart []func(types.ComponentMetadata, string, string, string)
	OnArchiveFlush      []func(types.ComponentMetadata, int, int, string)
	OnArchiveWriteStop  []func(types.ComponentMetadata)

	OnS3PutAttempt []func(types.ComponentMetadata, string, string, int)
	OnS3PutSuccess []func(types.ComponentMetadata, string, string, int, time.Duration)
	OnS3PutError   []func(types.ComponentMetadata, string, string, error)

	OnKafkaWriterStart    []func(types.ComponentMetadata, string, string)
	OnKafkaWriterStop     []func(types.ComponentMetadata)
	OnKafkaProduceAttempt []func(types.ComponentMetadata, string, int, int)
	OnKafkaProduceSuccess []func(types.ComponentMetadata, string, int, time.Duration)
	OnKafkaProduceError   []func(types.ComponentMetadata, string, error)

	callbackLock sync.Mutex
	loggers      []types.Logger
	loggersLock  sync.Mutex
	meters       []types.Meter[T]
	metersLock   sync.Mutex
}

// NewSensor constructs a Sensor with optional configuration. Default
// meter-updating callbacks are appended alongside user options so connected
// meters track every event family out of the box.
func NewSensor[T any](options ...types.Option[types.Sensor[T]]) types.Sensor[T] {
	s := &Sensor[T]{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SENSOR",
		},
	}

	for _, opt := range s.decorateCallbacks(options...) {
		if opt == nil {
			continue
		}
		opt(s)
	}

	return s
}
