package builder

import (
	"context"
	"time"

	"github.com/algoscope/algoscope/pkg/internal/meter"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// MetricName is a type alias for metric names used in the Meter.
type MetricName string

type MetricInfo = types.MetricInfo

// Here we re-export the constants from the meter package
const (
	MetricCurrentCpuPercentage    MetricName = MetricName(types.MetricCurrentCpuPercentage)
	MetricCurrentRamPercentage    MetricName = MetricName(types.MetricCurrentRamPercentage)
	MetricPeakGoRoutinesActive    MetricName = MetricName(types.MetricPeakGoRoutinesActive)
	MetricCurrentGoRoutinesActive MetricName = MetricName(types.MetricCurrentGoRoutinesActive)
	MetricProgressPercentage      MetricName = MetricName(types.MetricProgressPercentage)
	MetricProcessDuration         MetricName = MetricName(types.MetricProcessDuration)
	MetricTotalProcessedCount     MetricName = MetricName(types.MetricTotalProcessedCount)
	MetricTotalErrorCount         MetricName = MetricName(types.MetricTotalErrorCount)

	MetricBenchCaseTotalCount     MetricName = MetricName(types.MetricBenchCaseTotalCount)
	MetricBenchCaseCompletedCount MetricName = MetricName(types.MetricBenchCaseCompletedCount)
	MetricBenchCaseSkippedCount   MetricName = MetricName(types.MetricBenchCaseSkippedCount)
	MetricBenchCaseErrorCount     MetricName = MetricName(types.MetricBenchCaseErrorCount)
	MetricBenchCasesPerSecond     MetricName = MetricName(types.MetricBenchCasesPerSecond)
	MetricPeakBenchCasesPerSecond MetricName = MetricName(types.MetricPeakBenchCasesPerSecond)
	MetricBenchComparisonCount    MetricName = MetricName(types.MetricBenchComparisonCount)
	MetricBenchSwapCount          MetricName = MetricName(types.MetricBenchSwapCount)
	MetricBenchSortingCaseCount   MetricName = MetricName(types.MetricBenchSortingCaseCount)
	MetricBenchSearchingCaseCount MetricName = MetricName(types.MetricBenchSearchingCaseCount)
	MetricBenchRecursionCaseCount MetricName = MetricName(types.MetricBenchRecursionCaseCount)

	MetricChartRenderCount      MetricName = MetricName(types.MetricChartRenderCount)
	MetricChartRenderErrorCount MetricName = MetricName(types.MetricChartRenderErrorCount)
	MetricChartBytesWritten     MetricName = MetricName(types.MetricChartBytesWritten)

	MetricArchiveFlushCount   MetricName = MetricName(types.MetricArchiveFlushCount)
	MetricArchiveBytesWritten MetricName = MetricName(types.MetricArchiveBytesWritten)
	MetricArchiveErrorCount   MetricName = MetricName(types.MetricArchiveErrorCount)

	MetricS3PutCount           MetricName = MetricName(types.MetricS3PutCount)
	MetricS3PutErrorCount      MetricName = MetricName(types.MetricS3PutErrorCount)
	MetricKafkaProduceCount    MetricName = MetricName(types.MetricKafkaProduceCount)
	MetricKafkaProduceErrCount MetricName = MetricName(types.MetricKafkaProduceErrCount)

	MetricLoggerConnectedComponentCount MetricName = MetricName(types.MetricLoggerConnectedComponentCount)
	MetricMeterConnectedComponentCount  MetricName = MetricName(types.MetricMeterConnectedComponentCount)
	MetricComponentRunningCount         MetricName = MetricName(types.MetricComponentRunningCount)
)

func NewMeter[T any](ctx context.Context, options ...types.Option[types.Meter[T]]) types.Meter[T] {
	return meter.NewMeter[T](ctx, options...)
}

// MeterWithIdleTimeout aborts the monitor after a quiet period.
func MeterWithIdleTimeout[T any](to time.Duration) types.Option[types.Meter[T]] {
	return meter.WithIdleTimeout[T](to)
}

// Use MetricName for metric name parameters
func MeterWithMetricTotal[T any](metricName MetricName, total uint64) types.Option[types.Meter[T]] {
	return meter.WithMetricTotal[T](string(metricName), total)
}

func MeterWithInitialMetricCount[T any](metricName MetricName, count uint64) types.Option[types.Meter[T]] {
	return meter.WithInitialMetricCount[T](string(metricName), count)
}

func MeterWithErrorThreshold[T any](threshold float64) types.Option[types.Meter[T]] {
	return meter.WithErrorThreshold[T](threshold)
}

func MeterWithMetricThreshold[T any](metricName MetricName, threshold float64) types.Option[types.Meter[T]] {
	return meter.WithMetricThreshold[T](string(metricName), threshold)
}

func MeterWithTimerStart[T any](metricName MetricName, startTime time.Time) types.Option[types.Meter[T]] {
	return meter.WithTimerStart[T](string(metricName), startTime)
}

func MeterWithTotalItems[T any](total uint64) types.Option[types.Meter[T]] {
	return meter.WithTotalItems[T](total)
}

func MeterWithComponentMetadata[T any](name string, id string) types.Option[types.Meter[T]] {
	return meter.WithComponentMetadata[T](name, id)
}

func MeterWithLogger[T any](loggers ...types.Logger) types.Option[types.Meter[T]] {
	return meter.WithLogger[T](loggers...)
}

// MeterWithMetricMonitor adds metrics to be monitored, with optional initial values.
func MeterWithMetricMonitor[T any](metricInfo ...*MetricInfo) types.Option[types.Meter[T]] {
	return meter.WithMetricMonitor[T](metricInfo...)
}

// MeterWithUpdateFrequency sets the frequency at which the Meter updates its readings.
func MeterWithUpdateFrequency[T any](duration time.Duration) types.Option[types.Meter[T]] {
	return meter.WithUpdateFrequency[T](duration)
}

// MeterWithCancellationHook adds a custom function to be called upon cancellation.
func MeterWithCancellationHook[T any](hook func()) types.Option[types.Meter[T]] {
	return meter.WithCancellationHook[T](hook)
}
