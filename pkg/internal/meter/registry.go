package meter

import "github.com/algoscope/algoscope/pkg/internal/types"

var metricDisplayNames = map[string]string{
	types.MetricCurrentCpuPercentage:    "Current CPU Percentage",
	types.MetricCurrentRamPercentage:    "Current RAM Percentage",
	types.MetricCurrentGoRoutinesActive: "Active Go Routines",
	types.MetricPeakGoRoutinesActive:    "Peak Go Routines",
	types.MetricProgressPercentage:      "Progress",
	types.MetricProcessDuration:         "Process Duration",
	types.MetricTotalProcessedCount:     "Elements Processed",
	types.MetricTotalErrorCount:         "Total Errors",

	types.MetricBenchCaseTotalCount:     "Expected Bench Cases",
	types.MetricBenchCaseCompletedCount: "Bench Cases Completed",
	types.MetricBenchCaseSkippedCount:   "Bench Cases Skipped",
	types.MetricBenchCaseErrorCount:     "Bench Case Errors",
	types.MetricBenchCasesPerSecond:     "Cases Per Second",
	types.MetricPeakBenchCasesPerSecond: "Peak Cases Per Second",
	types.MetricBenchComparisonCount:    "Total Comparisons",
	types.MetricBenchSwapCount:          "Total Swaps",
	types.MetricBenchSortingCaseCount:   "Sorting Cases",
	types.MetricBenchSearchingCaseCount: "Searching Cases",
	types.MetricBenchRecursionCaseCount: "Recursion Cases",

	types.MetricChartRenderCount:      "Charts Rendered",
	types.MetricChartRenderErrorCount: "Chart Render Errors",
	types.MetricChartBytesWritten:     "Chart Bytes Written",

	types.MetricArchiveFlushCount:   "Archive Flushes",
	types.MetricArchiveBytesWritten: "Archive Bytes Written",
	types.MetricArchiveErrorCount:   "Archive Errors",

	types.MetricS3PutCount:           "S3 Objects Uploaded",
	types.MetricS3PutErrorCount:      "S3 Upload Errors",
	types.MetricKafkaProduceCount:    "Kafka Records Produced",
	types.MetricKafkaProduceErrCount: "Kafka Produce Errors",

	types.MetricLoggerConnectedComponentCount: "Loggers Connected",
	types.MetricMeterConnectedComponentCount:  "Meters Connected",
	types.MetricComponentRunningCount:         "Components Running",
}

var percentageMetrics = map[string]struct{}{
	types.MetricCurrentCpuPercentage: {},
	types.MetricCurrentRamPercentage: {},
	types.MetricProgressPercentage:   {},
}

// defaultMetricNames orders the generic section of the display. Metrics with
// zero counts are skipped at render time, so the list is exhaustive rather
// than minimal.
var defaultMetricNames = []string{
	types.MetricBenchCaseTotalCount,
	types.MetricBenchCaseCompletedCount,
	types.MetricBenchCaseSkippedCount,
	types.MetricBenchCaseErrorCount,
	types.MetricBenchCasesPerSecond,
	types.MetricPeakBenchCasesPerSecond,
	types.MetricBenchComparisonCount,
	types.MetricBenchSwapCount,
	types.MetricBenchSortingCaseCount,
	types.MetricBenchSearchingCaseCount,
	types.MetricBenchRecursionCaseCount,
	types.MetricChartRenderCount,
	types.MetricChartRenderErrorCount,
	types.MetricChartBytesWritten,
	types.MetricArchiveFlushCount,
	types.MetricArchiveBytesWritten,
	types.MetricArchiveErrorCount,
	types.MetricS3PutCount,
	types.MetricS3PutErrorCount,
	types.MetricKafkaProduceCount,
	types.MetricKafkaProduceErrCount,
	types.MetricTotalProcessedCount,
	types.MetricTotalErrorCount,
	types.MetricComponentRunningCount,
	types.MetricLoggerConnectedComponentCount,
	types.MetricMeterConnectedComponentCount,
}

func (m *Meter[T]) initializeMetrics() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, display := range metricDisplayNames {
		m.registerMetricLocked(name, display, metricThresholdType(name))
	}

	m.metricNames = m.metricNames[:0]
	seen := make(map[string]struct{}, len(defaultMetricNames))
	for _, name := range defaultMetricNames {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		m.registerMetricLocked(name, metricDisplay(name), metricThresholdType(name))
		m.metricNames = append(m.metricNames, name)
	}
}
