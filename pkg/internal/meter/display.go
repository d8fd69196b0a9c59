package meter

import (
	"fmt"
	"runtime"
	"time"

	"github.com/algoscope/algoscope/pkg/internal/types"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

func (m *Meter[T]) updateDisplay() {
	currentTime := time.Now()
	elapsedTime := currentTime.Sub(m.startTime).Seconds()

	completed := float64(m.GetMetricCount(types.MetricBenchCaseCompletedCount))
	skipped := float64(m.GetMetricCount(types.MetricBenchCaseSkippedCount))
	caseErrors := float64(m.GetMetricCount(types.MetricBenchCaseErrorCount))

	casesPerSecond := 0.0
	if elapsedTime > 0 {
		casesPerSecond = completed / elapsedTime
		m.SetMetricCount(types.MetricBenchCasesPerSecond, uint64(casesPerSecond))
		m.SetMetricPeak(types.MetricPeakBenchCasesPerSecond, uint64(casesPerSecond))
	}

	if completed > 0 {
		cpuPercentages, _ := cpu.Percent(time.Millisecond*500, false)
		memStats, _ := mem.VirtualMemory()

		errorPercentage := (caseErrors / completed) * 100
		m.SetMetricPercentage(types.MetricBenchCaseErrorCount, errorPercentage)

		if len(cpuPercentages) > 0 {
			m.SetMetricPercentage(types.MetricCurrentCpuPercentage, cpuPercentages[0])
			m.SetMetricPeakPercentage(types.MetricCurrentCpuPercentage, cpuPercentages[0])
		}

		if memStats != nil {
			m.SetMetricPercentage(types.MetricCurrentRamPercentage, memStats.UsedPercent)
			m.SetMetricPeakPercentage(types.MetricCurrentRamPercentage, memStats.UsedPercent)
		}

		m.SetMetricCount(types.MetricCurrentGoRoutinesActive, uint64(runtime.NumGoroutine()))
		m.SetMetricPeak(types.MetricPeakGoRoutinesActive, uint64(runtime.NumGoroutine()))
	}

	totalItems := m.totalItemsValue()
	if totalItems != 0 {
		progress := (completed + skipped) / float64(totalItems) * 100
		m.SetMetricPercentage(types.MetricProgressPercentage, progress)
	}

	fmt.Printf("\033[2J\033[H")

	fmt.Printf("Start Time: %v, Elapsed Time: %s\n",
		m.startTime.Format("01-02-2006 15:04:05"),
		time.Duration(elapsedTime)*time.Second,
	)

	fmt.Printf("%s: %d, %s: %d, %s: %.2f%%, Peak: %.2f%%, %s: %.2f%%, Peak: %.2f%%\n",
		m.GetMetricDisplayName(types.MetricCurrentGoRoutinesActive),
		m.GetMetricCount(types.MetricCurrentGoRoutinesActive),
		m.GetMetricDisplayName(types.MetricPeakGoRoutinesActive),
		m.GetMetricCount(types.MetricPeakGoRoutinesActive),
		m.GetMetricDisplayName(types.MetricCurrentCpuPercentage),
		m.GetMetricPercentage(types.MetricCurrentCpuPercentage),
		m.GetMetricPeakPercentage(types.MetricCurrentCpuPercentage),
		m.GetMetricDisplayName(types.MetricCurrentRamPercentage),
		m.GetMetricPercentage(types.MetricCurrentRamPercentage),
		m.GetMetricPeakPercentage(types.MetricCurrentRamPercentage),
	)

	if totalItems != 0 {
		fmt.Printf("Total Expected Cases: %d, Progress: %d%%\n",
			totalItems,
			int(m.GetMetricPercentage(types.MetricProgressPercentage)),
		)
	}

	fmt.Printf("%s: %d, %s: %d, %s: %d, %s: %d\n",
		m.GetMetricDisplayName(types.MetricBenchCaseCompletedCount),
		m.GetMetricCount(types.MetricBenchCaseCompletedCount),
		m.GetMetricDisplayName(types.MetricBenchCaseSkippedCount),
		m.GetMetricCount(types.MetricBenchCaseSkippedCount),
		m.GetMetricDisplayName(types.MetricBenchCasesPerSecond),
		m.GetMetricCount(types.MetricBenchCasesPerSecond),
		m.GetMetricDisplayName(types.MetricPeakBenchCasesPerSecond),
		m.GetMetricCount(types.MetricPeakBenchCasesPerSecond),
	)

	fmt.Printf("%s: %d (%.2f%%), %s: %d, %s: %d\n",
		m.GetMetricDisplayName(types.MetricBenchCaseErrorCount),
		m.GetMetricCount(types.MetricBenchCaseErrorCount),
		m.GetMetricPercentage(types.MetricBenchCaseErrorCount),
		m.GetMetricDisplayName(types.MetricBenchComparisonCount),
		m.GetMetricCount(types.MetricBenchComparisonCount),
		m.GetMetricDisplayName(types.MetricBenchSwapCount),
		m.GetMetricCount(types.MetricBenchSwapCount),
	)

	for _, name := range m.snapshotMetricNames() {
		switch name {
		case types.MetricBenchCaseTotalCount,
			types.MetricBenchCaseCompletedCount,
			types.MetricBenchCaseSkippedCount,
			types.MetricBenchCaseErrorCount,
			types.MetricBenchCasesPerSecond,
			types.MetricPeakBenchCasesPerSecond,
			types.MetricBenchComparisonCount,
			types.MetricBenchSwapCount:
			continue
		default:
			count := m.GetMetricCount(name)
			if count > 0 {
				fmt.Printf("%s: %d\n", m.GetMetricDisplayName(name), count)
			}
		}
	}

	for _, metricInfo := range m.snapshotMonitoredMetrics() {
		if metricInfo == nil {
			continue
		}
		fmt.Printf("%s: %d\n", metricInfo.DisplayAs, m.GetMetricCount(metricInfo.Name))
	}
}

func (m *Meter[T]) printFinalProgress() {
	m.endTime = time.Now()
	elapsedTime := m.endTime.Sub(m.startTime).Seconds()

	completed := m.GetMetricCount(types.MetricBenchCaseCompletedCount)
	skipped := m.GetMetricCount(types.MetricBenchCaseSkippedCount)
	caseErrors := m.GetMetricCount(types.MetricBenchCaseErrorCount)

	totalItems := m.totalItemsValue()
	var pending uint64
	var pendingPercentage float64
	if totalItems > completed+skipped {
		pending = totalItems - (completed + skipped)
		pendingPercentage = float64(pending) / float64(totalItems) * 100
	}

	m.resetRunningMetrics()

	fmt.Printf("\033[2J\033[H")
	fmt.Printf("Start Time: %v, Elapsed Time: %s\n", m.startTime.Format("01-02-2006 15:04:05"), time.Duration(elapsedTime)*time.Second)
	fmt.Printf("%s: %d, %s: %d, %s: %.2f%%, %s: %.2f%%, %s: %.2f%%, %s: %.2f%%\n",
		"Last Recorded Active Go Routines",
		m.GetMetricCount(types.MetricCurrentGoRoutinesActive),
		"Peak",
		m.GetMetricCount(types.MetricPeakGoRoutinesActive),
		"Last Recorded CPU Percentage",
		m.GetMetricPercentage(types.MetricCurrentCpuPercentage),
		"Peak",
		m.GetMetricPeakPercentage(types.MetricCurrentCpuPercentage),
		"Last Recorded RAM Percentage",
		m.GetMetricPercentage(types.MetricCurrentRamPercentage),
		"Peak",
		m.GetMetricPeakPercentage(types.MetricCurrentRamPercentage),
	)

	if totalItems != 0 {
		fmt.Printf("Total Expected Cases: %d, Progress: %d%%, Pending: %d (%.2f%%)\n",
			totalItems,
			int(float64(completed+skipped)/float64(totalItems)*100),
			pending,
			pendingPercentage,
		)
	}

	fmt.Printf("%s: %d (%.2f%% errors), %s: %d, Peak %s: %d\n",
		m.GetMetricDisplayName(types.MetricBenchCaseCompletedCount),
		completed,
		m.GetMetricPercentage(types.MetricBenchCaseErrorCount),
		m.GetMetricDisplayName(types.MetricBenchCaseSkippedCount),
		skipped,
		m.GetMetricDisplayName(types.MetricBenchCasesPerSecond),
		m.GetMetricCount(types.MetricPeakBenchCasesPerSecond),
	)

	if caseErrors > 0 {
		fmt.Printf("%s: %d\n",
			m.GetMetricDisplayName(types.MetricBenchCaseErrorCount),
			caseErrors,
		)
	}

	for _, name := range m.snapshotMetricNames() {
		switch name {
		case types.MetricBenchCaseTotalCount,
			types.MetricBenchCaseCompletedCount,
			types.MetricBenchCaseSkippedCount,
			types.MetricBenchCaseErrorCount,
			types.MetricBenchCasesPerSecond,
			types.MetricPeakBenchCasesPerSecond:
			continue
		default:
			count := m.GetMetricCount(name)
			if count > 0 {
				fmt.Printf("%s: %d\n", m.GetMetricDisplayName(name), count)
			}
		}
	}

	for _, metricInfo := range m.snapshotMonitoredMetrics() {
		if metricInfo == nil {
			continue
		}
		fmt.Printf("%s: %d\n", metricInfo.DisplayAs, m.GetMetricCount(metricInfo.Name))
	}

	fmt.Println()
}

func (m *Meter[T]) resetRunningMetrics() {
	m.SetMetricCount(types.MetricComponentRunningCount, 0)
}

func (m *Meter[T]) snapshotMetricNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.metricNames))
	copy(out, m.metricNames)
	return out
}

func (m *Meter[T]) snapshotMonitoredMetrics() []*types.MetricInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.monitoredMetrics) == 0 {
		return nil
	}
	out := make([]*types.MetricInfo, len(m.monitoredMetrics))
	copy(out, m.monitoredMetrics)
	return out
}
