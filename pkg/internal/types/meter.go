package types

import (
	"context"
	"time"
)

const (
	MetricCurrentCpuPercentage    = "current_cpu_percentage"
	MetricCurrentRamPercentage    = "current_ram_percentage"
	MetricPeakGoRoutinesActive    = "peak_go_routines_active"
	MetricCurrentGoRoutinesActive = "current_go_routines_active"
	MetricProgressPercentage      = "progress_percentage"
	MetricProcessDuration         = "process_duration"
	MetricTotalProcessedCount     = "total_processed_count"
	MetricTotalErrorCount         = "total_error_count"

	MetricBenchCaseTotalCount     = "bench_case_total_count"
	MetricBenchCaseCompletedCount = "bench_case_completed_count"
	MetricBenchCaseSkippedCount   = "bench_case_skipped_count"
	MetricBenchCaseErrorCount     = "bench_case_error_count"
	MetricBenchCasesPerSecond     = "bench_cases_per_second"
	MetricPeakBenchCasesPerSecond = "max_bench_cases_per_second"
	MetricBenchComparisonCount    = "bench_comparison_total_count"
	MetricBenchSwapCount          = "bench_swap_total_count"
	MetricBenchSortingCaseCount   = "bench_sorting_case_count"
	MetricBenchSearchingCaseCount = "bench_searching_case_count"
	MetricBenchRecursionCaseCount = "bench_recursion_case_count"

	MetricChartRenderCount      = "chart_render_count"
	MetricChartRenderErrorCount = "chart_render_error_count"
	MetricChartBytesWritten     = "chart_bytes_written_total"

	MetricArchiveFlushCount   = "archive_flush_count"
	MetricArchiveBytesWritten = "archive_bytes_written_total"
	MetricArchiveErrorCount   = "archive_error_count"

	MetricS3PutCount           = "s3_put_count"
	MetricS3PutErrorCount      = "s3_put_error_count"
	MetricKafkaProduceCount    = "kafka_produce_count"
	MetricKafkaProduceErrCount = "kafka_produce_error_count"

	MetricLoggerConnectedComponentCount = "logger_connected_component_count"
	MetricMeterConnectedComponentCount  = "meter_connected_component_count"
	MetricComponentRunningCount         = "component_running_count"
)

// ThresholdType defines whether a threshold is an absolute number or a percentage.
type ThresholdType int

const (
	Absolute   ThresholdType = iota // Absolute value threshold
	Percentage                      // Percentage value threshold
)

type MetricInfo struct {
	Count          *uint64
	Total          uint64
	Percentage     float64
	Threshold      float64
	ThresholdType  ThresholdType
	PeakPercentage float64
	Alerted        bool
	DisplayAs      string
	Name           string
	Timestamp      int64
	Monitored      bool // Indicates if the metric should be actively monitored
}

// Meter tracks suite progress counters and renders a live console display.
// The type parameter matches the element type of the sensors that feed it.
type Meter[T any] interface {
	GetMetricDisplayName(metricName string) string
	GetMetricPercentage(metricName string) float64
	SetMetricPercentage(name string, percentage float64)
	GetMetricNames() []string
	ReportData()
	SetIdleTimeout(to time.Duration)
	SetContextCancelHook(hook func())
	GetTicker() *time.Ticker
	SetTicker(ticker *time.Ticker)
	GetOriginalContext() context.Context
	GetOriginalContextCancel() context.CancelFunc
	Monitor()
	AddTotalItems(additionalTotal uint64)
	AddMetricMonitor(metricInfo ...*MetricInfo) (*MetricInfo, bool)
	GetMetricCount(metricName string) uint64
	SetMetricCount(metricName string, count uint64)
	GetMetricTotal(metricName string) uint64
	SetMetricTotal(metricName string, total uint64)
	SetMetricThreshold(metricName string, threshold float64)
	IncrementCount(metricName string)
	DecrementCount(metricName string)
	SetMetricTimestamp(metricName string, timestamp int64)
	SetMetricPeak(metricName string, count uint64)
	IsTimerRunning(metricName string) bool
	GetTimerStartTime(metricName string) (time.Time, bool)
	SetTimerStartTime(metricName string, startTime time.Time)
	StartTimer(metricName string)
	StopTimer(metricName string) time.Duration
	GetComponentMetadata() ComponentMetadata
	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	SetComponentMetadata(name string, id string)
	ResetMetrics()
}
