package sensor

import "github.com/algoscope/algoscope/pkg/internal/types"

// RegisterOnChartRenderStart registers callbacks invoked when a renderer
// begins composing a chart.
func (s *Sensor[T]) RegisterOnChartRenderStart(callback ...func(types.ComponentMetadata, string)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnChartRenderStart = append(s.OnChartRenderStart, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnChartRenderStart",
		"component", s.componentMetadata,
		"event", "RegisterOnChartRenderStart",
		"callbacks", len(callback),
	)
}

// InvokeOnChartRenderStart invokes registered render-start callbacks.
func (s *Sensor[T]) InvokeOnChartRenderStart(c types.ComponentMetadata, chart string) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnChartRenderStart) {
		if cb == nil {
			continue
		}
		cb(c, chart)
	}
}

// RegisterOnChartSaved registers callbacks invoked after a chart PNG has
// been written, carrying the output path and size in bytes.
func (s *Sensor[T]) RegisterOnChartSaved(callback ...func(types.ComponentMetadata, string, string, int64)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnChartSaved = append(s.OnChartSaved, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnChartSaved",
		"component", s.componentMetadata,
		"event", "RegisterOnChartSaved",
		"callbacks", len(callback),
	)
}

// InvokeOnChartSaved invokes registered chart-saved callbacks.
func (s *Sensor[T]) InvokeOnChartSaved(c types.ComponentMetadata, chart, path string, bytes int64) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnChartSaved) {
		if cb == nil {
			continue
		}
		cb(c, chart, path, bytes)
	}
}

// RegisterOnChartRenderError registers callbacks invoked when a render
// fails.
func (s *Sensor[T]) RegisterOnChartRenderError(callback ...func(types.ComponentMetadata, string, error)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnChartRenderError = append(s.OnChartRenderError, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnChartRenderError",
		"component", s.componentMetadata,
		"event", "RegisterOnChartRenderError",
		"callbacks", len(callback),
	)
}

// InvokeOnChartRenderError invokes registered render-error callbacks.
func (s *Sensor[T]) InvokeOnChartRenderError(c types.ComponentMetadata, chart string, err error) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnChartRenderError) {
		if cb == nil {
			continue
		}
		cb(c, chart, err)
	}
}

func (s *Sensor[T]) decorateChartCallbacks() []types.Option[types.Sensor[T]] {
	var chartOptions []types.Option[types.Sensor[T]]
	chartOptions = append(chartOptions,
		WithOnChartSavedFunc[T](func(c types.ComponentMetadata, chart string, path string, bytes int64) {
			s.incrementMeterCountersAndReportActivity(types.MetricChartRenderCount)
			if bytes > 0 {
				s.addMeterCounters(types.MetricChartBytesWritten, uint64(bytes))
			}
		}),
		WithOnChartRenderErrorFunc[T](func(c types.ComponentMetadata, chart string, err error) {
			s.incrementMeterCounters(types.MetricChartRenderErrorCount)
			s.incrementMeterCounters(types.MetricTotalErrorCount)
		}),
	)
	return chartOptions
}
