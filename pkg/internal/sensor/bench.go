package sensor

import (
	"time"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// RegisterOnBenchCaseStart registers callbacks invoked before each benchmark
// case runs, carrying category, algorithm, input size and shape.
func (s *Sensor[T]) RegisterOnBenchCaseStart(callback ...func(types.ComponentMetadata, string, string, int, string)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnBenchCaseStart = append(s.OnBenchCaseStart, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnBenchCaseStart",
		"component", s.componentMetadata,
		"event", "RegisterOnBenchCaseStart",
		"callbacks", len(callback),
	)
}

// InvokeOnBenchCaseStart invokes registered case-start callbacks.
func (s *Sensor[T]) InvokeOnBenchCaseStart(c types.ComponentMetadata, category, algorithm string, size int, shape string) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnBenchCaseStart) {
		if cb == nil {
			continue
		}
		cb(c, category, algorithm, size, shape)
	}
}

// RegisterOnBenchCaseSkip registers callbacks invoked when the runner skips
// a case, e.g. a quadratic sort above the size cutoff.
func (s *Sensor[T]) RegisterOnBenchCaseSkip(callback ...func(types.ComponentMetadata, string, int, string)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnBenchCaseSkip = append(s.OnBenchCaseSkip, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnBenchCaseSkip",
		"component", s.componentMetadata,
		"event", "RegisterOnBenchCaseSkip",
		"callbacks", len(callback),
	)
}

// InvokeOnBenchCaseSkip invokes registered skip callbacks.
func (s *Sensor[T]) InvokeOnBenchCaseSkip(c types.ComponentMetadata, algorithm string, size int, reason string) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnBenchCaseSkip) {
		if cb == nil {
			continue
		}
		cb(c, algorithm, size, reason)
	}
}

// RegisterOnBenchSuiteComplete registers callbacks invoked once the whole
// suite has finished.
func (s *Sensor[T]) RegisterOnBenchSuiteComplete(callback ...func(types.ComponentMetadata, int, time.Duration)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnBenchSuiteComplete = append(s.OnBenchSuiteComplete, callback...)
	s.callbackLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "RegisterOnBenchSuiteComplete",
		"component", s.componentMetadata,
		"event", "RegisterOnBenchSuiteComplete",
		"callbacks", len(callback),
	)
}

// InvokeOnBenchSuiteComplete invokes registered suite-complete callbacks.
func (s *Sensor[T]) InvokeOnBenchSuiteComplete(c types.ComponentMetadata, cases int, elapsed time.Duration) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnBenchSuiteComplete) {
		if cb == nil {
			continue
		}
		cb(c, cases, elapsed)
	}
}

func (s *Sensor[T]) decorateBenchCallbacks() []types.Option[types.Sensor[T]] {
	var benchOptions []types.Option[types.Sensor[T]]
	benchOptions = append(benchOptions,
		WithOnBenchCaseStartFunc[T](func(c types.ComponentMetadata, category string, algorithm string, size int, shape string) {
			s.setMetricTimestampValue(types.MetricBenchCaseCompletedCount, time.Now().Unix())
		}),
		WithOnBenchCaseSkipFunc[T](func(c types.ComponentMetadata, algorithm string, size int, reason string) {
			s.incrementMeterCounters(types.MetricBenchCaseSkippedCount)
		}),
		WithOnErrorFunc[T](func(c types.ComponentMetadata, err error, elem T) {
			switch c.Type {
			case "BENCH_RUNNER":
				s.incrementMeterCounters(types.MetricBenchCaseErrorCount)
			}
		}),
	)
	return benchOptions
}
