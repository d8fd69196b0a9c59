package sensor

import "github.com/algoscope/algoscope/pkg/internal/types"

func (s *Sensor[T]) snapshotMeters() []types.Meter[T] {
	s.metersLock.Lock()
	meters := append([]types.Meter[T](nil), s.meters...)
	s.metersLock.Unlock()
	return meters
}

func (s *Sensor[T]) incrementMeterCounters(metric string) {
	for _, m := range s.snapshotMeters() {
		m.IncrementCount(metric)
	}
}

func (s *Sensor[T]) addMeterCounters(metric string, delta uint64) {
	if delta == 0 {
		return
	}
	for _, m := range s.snapshotMeters() {
		m.SetMetricCount(metric, m.GetMetricCount(metric)+delta)
	}
}

func (s *Sensor[T]) setMetricTimestampValue(metric string, time int64) {
	for _, m := range s.snapshotMeters() {
		m.SetMetricTimestamp(metric, time)
	}
}

func (s *Sensor[T]) incrementMeterCountersAndReportActivity(metric string) {
	for _, m := range s.snapshotMeters() {
		m.ReportData()
		m.IncrementCount(metric)
	}
}

func (s *Sensor[T]) decrementMeterCounters(metric string) {
	for _, m := range s.snapshotMeters() {
		m.DecrementCount(metric)
	}
}

func (s *Sensor[T]) startMeterTimers(metric string) {
	for _, m := range s.snapshotMeters() {
		if m.IsTimerRunning(metric) {
			continue
		}
		m.StartTimer(metric)
	}
}

func (s *Sensor[T]) decorateCallbacks(options ...types.Option[types.Sensor[T]]) []types.Option[types.Sensor[T]] {
	options = append(options, s.decorateBenchCallbacks()...)
	options = append(options, s.decorateChartCallbacks()...)
	options = append(options, s.decorateArchiveCallbacks()...)
	options = append(options, s.decorateS3Callbacks()...)
	options = append(options, s.decorateKafkaCallbacks()...)

	options = append(
		options,
		WithOnStartFunc[T](func(c types.ComponentMetadata) {
			s.incrementMeterCounters(types.MetricComponentRunningCount)
			s.startMeterTimers(types.MetricProcessDuration)
		}),
		WithOnCompleteFunc[T](func(c types.ComponentMetadata) {
			s.decrementMeterCounters(types.MetricComponentRunningCount)
		}),
		WithOnErrorFunc[T](func(c types.ComponentMetadata, err error, elem T) {
			s.incrementMeterCounters(types.MetricTotalErrorCount)
		}),
		WithOnElementProcessedFunc[T](func(c types.ComponentMetadata, elem T) {
			if r, ok := any(elem).(types.BenchResult); ok {
				s.incrementMeterCountersAndReportActivity(types.MetricBenchCaseCompletedCount)
				s.addMeterCounters(types.MetricBenchComparisonCount, r.Comparisons)
				s.addMeterCounters(types.MetricBenchSwapCount, r.Swaps)
				switch r.Category {
				case "sorting":
					s.incrementMeterCounters(types.MetricBenchSortingCaseCount)
				case "searching":
					s.incrementMeterCounters(types.MetricBenchSearchingCaseCount)
				case "recursion":
					s.incrementMeterCounters(types.MetricBenchRecursionCaseCount)
				}
				return
			}
			s.incrementMeterCountersAndReportActivity(types.MetricTotalProcessedCount)
		}),
	)

	return options
}
