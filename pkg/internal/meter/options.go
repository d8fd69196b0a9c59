package meter

import (
	"time"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// WithMetricTotal sets an initial total for a specific metric.
func WithMetricTotal[T any](metricName string, total uint64) types.Option[types.Meter[T]] {
	return func(m types.Meter[T]) {
		m.SetMetricTotal(metricName, total)
	}
}

// WithIdleTimeout sets how long the meter waits without activity before
// shutting the run down.
func WithIdleTimeout[T any](to time.Duration) types.Option[types.Meter[T]] {
	return func(m types.Meter[T]) {
		m.SetIdleTimeout(to)
	}
}

// WithMetricMonitor registers extra metrics to display alongside the
// standard output.
func WithMetricMonitor[T any](metricInfo ...*types.MetricInfo) types.Option[types.Meter[T]] {
	return func(m types.Meter[T]) {
		m.AddMetricMonitor(metricInfo...)
	}
}

// WithInitialMetricCount sets an initial count for a specific metric.
func WithInitialMetricCount[T any](metricName string, count uint64) types.Option[types.Meter[T]] {
	return func(m types.Meter[T]) {
		m.SetMetricCount(metricName, count)
	}
}

// WithTotalItems sets the expected number of benchmark cases. The monitor
// loop uses it for progress and completion detection.
func WithTotalItems[T any](total uint64) types.Option[types.Meter[T]] {
	return func(m types.Meter[T]) {
		m.AddTotalItems(total)
	}
}

// WithErrorThreshold sets the bench case error percentage at which the
// monitor loop aborts the run.
func WithErrorThreshold[T any](threshold float64) types.Option[types.Meter[T]] {
	return func(m types.Meter[T]) {
		m.SetMetricThreshold(types.MetricBenchCaseErrorCount, threshold)
	}
}

// WithTimerStart sets the start time for a specified timer metric manually.
func WithTimerStart[T any](metricName string, startTime time.Time) types.Option[types.Meter[T]] {
	return func(m types.Meter[T]) {
		m.SetTimerStartTime(metricName, startTime)
	}
}

// WithComponentMetadata sets the component metadata for the Meter.
func WithComponentMetadata[T any](name string, id string) types.Option[types.Meter[T]] {
	return func(m types.Meter[T]) {
		m.SetComponentMetadata(name, id)
	}
}

// WithLogger adds loggers to the Meter for outputting logs.
func WithLogger[T any](loggers ...types.Logger) types.Option[types.Meter[T]] {
	return func(m types.Meter[T]) {
		m.ConnectLogger(loggers...)
	}
}

// WithMetricThreshold sets a threshold for a specific metric that triggers
// an abort when exceeded.
func WithMetricThreshold[T any](metricName string, threshold float64) types.Option[types.Meter[T]] {
	return func(m types.Meter[T]) {
		m.SetMetricThreshold(metricName, threshold)
	}
}

// WithUpdateFrequency sets the frequency at which the Meter updates its readings.
func WithUpdateFrequency[T any](duration time.Duration) types.Option[types.Meter[T]] {
	return func(m types.Meter[T]) {
		m.GetTicker().Stop()
		m.SetTicker(time.NewTicker(duration))
	}
}

// WithCancellationHook adds a custom function to be called upon cancellation.
func WithCancellationHook[T any](hook func()) types.Option[types.Meter[T]] {
	return func(m types.Meter[T]) {
		m.SetContextCancelHook(hook)
	}
}
