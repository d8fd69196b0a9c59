package meter

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

type stubLogger struct {
	level       types.LogLevel
	infoCount   int32
	debugCount  int32
	warnCount   int32
	errorCount  int32
	panicCount  int32
	lastMessage string
}

func (s *stubLogger) GetLevel() types.LogLevel {
	return s.level
}

func (s *stubLogger) SetLevel(level types.LogLevel) {
	s.level = level
}

func (s *stubLogger) Debug(msg string, _ ...interface{}) {
	atomic.AddInt32(&s.debugCount, 1)
	s.lastMessage = msg
}

func (s *stubLogger) Info(msg string, _ ...interface{}) {
	atomic.AddInt32(&s.infoCount, 1)
	s.lastMessage = msg
}

func (s *stubLogger) Warn(msg string, _ ...interface{}) {
	atomic.AddInt32(&s.warnCount, 1)
	s.lastMessage = msg
}

func (s *stubLogger) Error(msg string, _ ...interface{}) {
	atomic.AddInt32(&s.errorCount, 1)
	s.lastMessage = msg
}

func (s *stubLogger) DPanic(msg string, _ ...interface{}) {
	atomic.AddInt32(&s.panicCount, 1)
	s.lastMessage = msg
}

func (s *stubLogger) Panic(msg string, _ ...interface{}) {
	atomic.AddInt32(&s.panicCount, 1)
	s.lastMessage = msg
}

func (s *stubLogger) Fatal(msg string, _ ...interface{}) {
	atomic.AddInt32(&s.panicCount, 1)
	s.lastMessage = msg
}

func (s *stubLogger) Flush() error { return nil }

func (s *stubLogger) AddSink(string, types.SinkConfig) error { return nil }

func (s *stubLogger) RemoveSink(string) error { return nil }

func (s *stubLogger) ListSinks() ([]string, error) { return nil, nil }

func TestMetricCountsTotalsAndPeaks(t *testing.T) {
	m := NewMeter[types.BenchResult](context.Background()).(*Meter[types.BenchResult])

	m.SetMetricCount(types.MetricBenchCaseCompletedCount, 2)
	m.IncrementCount(types.MetricBenchCaseCompletedCount)
	m.DecrementCount(types.MetricBenchCaseCompletedCount)

	if got := m.GetMetricCount(types.MetricBenchCaseCompletedCount); got != 2 {
		t.Fatalf("expected count 2, got %d", got)
	}

	m.SetMetricTotal(types.MetricBenchCaseTotalCount, 84)
	if got := m.GetMetricTotal(types.MetricBenchCaseTotalCount); got != 84 {
		t.Fatalf("expected total 84, got %d", got)
	}

	m.SetMetricPeak(types.MetricPeakBenchCasesPerSecond, 5)
	m.SetMetricPeak(types.MetricPeakBenchCasesPerSecond, 4)
	if got := m.GetMetricCount(types.MetricPeakBenchCasesPerSecond); got != 5 {
		t.Fatalf("expected peak 5, got %d", got)
	}

	m.SetMetricPeakPercentage(types.MetricCurrentCpuPercentage, 50)
	m.SetMetricPeakPercentage(types.MetricCurrentCpuPercentage, 25)
	if got := m.GetMetricPeakPercentage(types.MetricCurrentCpuPercentage); got != 50 {
		t.Fatalf("expected peak percentage 50, got %.2f", got)
	}

	m.ResetMetrics()
	if got := m.GetMetricCount(types.MetricBenchCaseCompletedCount); got != 0 {
		t.Fatalf("expected count reset to 0, got %d", got)
	}
}

func TestDecrementStopsAtZero(t *testing.T) {
	m := NewMeter[types.BenchResult](context.Background()).(*Meter[types.BenchResult])

	m.DecrementCount(types.MetricComponentRunningCount)
	if got := m.GetMetricCount(types.MetricComponentRunningCount); got != 0 {
		t.Fatalf("expected count to stay at 0, got %d", got)
	}
}

func TestMetricThresholdPropagates(t *testing.T) {
	m := NewMeter[types.BenchResult](context.Background()).(*Meter[types.BenchResult])

	m.SetMetricThreshold(types.MetricBenchCaseErrorCount, 25)
	info, ok := m.GetMetricInfo(types.MetricBenchCaseErrorCount)
	if !ok || info == nil {
		t.Fatal("expected metric info for bench case errors")
	}
	if info.Threshold != 25 {
		t.Fatalf("expected threshold 25, got %.2f", info.Threshold)
	}
}

func TestUnknownMetricAutoRegisters(t *testing.T) {
	m := NewMeter[types.BenchResult](context.Background()).(*Meter[types.BenchResult])

	m.IncrementCount("custom_metric")
	if got := m.GetMetricCount("custom_metric"); got != 1 {
		t.Fatalf("expected auto-registered count 1, got %d", got)
	}
	if got := m.GetMetricDisplayName("custom_metric"); got != "custom_metric" {
		t.Fatalf("expected raw name for unknown metric, got %q", got)
	}
}

func TestAddMetricMonitorRegistersMetric(t *testing.T) {
	m := NewMeter[types.BenchResult](context.Background()).(*Meter[types.BenchResult])

	metric := &types.MetricInfo{Name: "custom_metric", DisplayAs: "Custom Metric"}
	info, ok := m.AddMetricMonitor(metric)
	if !ok || info == nil {
		t.Fatal("expected metric to be registered")
	}

	if got := m.GetMetricDisplayName("custom_metric"); got != "Custom Metric" {
		t.Fatalf("expected display name to match, got %q", got)
	}
}

func TestTimerLifecycle(t *testing.T) {
	m := NewMeter[types.BenchResult](context.Background()).(*Meter[types.BenchResult])

	if m.IsTimerRunning(types.MetricProcessDuration) {
		t.Fatal("expected no timer before start")
	}

	m.StartTimer(types.MetricProcessDuration)
	if !m.IsTimerRunning(types.MetricProcessDuration) {
		t.Fatal("expected timer to be running")
	}

	if d := m.StopTimer(types.MetricProcessDuration); d < 0 {
		t.Fatalf("expected non-negative duration, got %v", d)
	}
	if d := m.StopTimer(types.MetricProcessDuration); d != 0 {
		t.Fatalf("expected zero duration for stopped timer, got %v", d)
	}
}

func TestContextCancelHook(t *testing.T) {
	m := NewMeter[types.BenchResult](context.Background()).(*Meter[types.BenchResult])

	var called int32
	m.SetContextCancelHook(func() {
		atomic.AddInt32(&called, 1)
	})

	cancel := m.GetOriginalContextCancel()
	cancel()

	if atomic.LoadInt32(&called) != 1 {
		t.Fatalf("expected hook to be called once")
	}

	if err := m.GetOriginalContext().Err(); err == nil {
		t.Fatal("expected context to be canceled")
	}
}

func TestNotifyLoggers(t *testing.T) {
	m := NewMeter[types.BenchResult](context.Background()).(*Meter[types.BenchResult])
	log := &stubLogger{level: types.InfoLevel}
	m.ConnectLogger(log)

	m.NotifyLoggers(types.InfoLevel, "MonitorStart", "component", m.GetComponentMetadata(), "event", "MonitorStart")
	if atomic.LoadInt32(&log.infoCount) != 1 {
		t.Fatalf("expected info log")
	}
	if log.lastMessage != "MonitorStart" {
		t.Fatalf("unexpected log message: %q", log.lastMessage)
	}

	m.NotifyLoggers(types.DebugLevel, "debug")
	if atomic.LoadInt32(&log.debugCount) != 0 {
		t.Fatalf("expected debug log to be skipped")
	}
}

func TestMonitorIdleTimeout(t *testing.T) {
	m := NewMeter[types.BenchResult](context.Background()).(*Meter[types.BenchResult])
	m.SetIdleTimeout(5 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		m.Monitor()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("monitor did not exit on idle timeout")
	}

	if err := m.GetOriginalContext().Err(); err == nil {
		t.Fatal("expected context to be canceled after idle timeout")
	}

	m.GetTicker().Stop()
}

func TestMonitorCompletesWhenAllCasesDone(t *testing.T) {
	m := NewMeter[types.BenchResult](context.Background()).(*Meter[types.BenchResult])
	m.AddTotalItems(3)
	m.SetMetricCount(types.MetricBenchCaseCompletedCount, 2)
	m.SetMetricCount(types.MetricBenchCaseSkippedCount, 1)

	done := make(chan struct{})
	go func() {
		m.Monitor()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("monitor did not exit once all cases were done")
	}

	if err := m.GetOriginalContext().Err(); err == nil {
		t.Fatal("expected context to be canceled after completion")
	}

	m.GetTicker().Stop()
}

func TestUpdateDisplayDoesNotPanic(t *testing.T) {
	m := NewMeter[types.BenchResult](context.Background()).(*Meter[types.BenchResult])
	m.SetMetricCount(types.MetricBenchCaseCompletedCount, 10)
	m.SetMetricCount(types.MetricBenchCaseSkippedCount, 2)
	m.SetMetricCount(types.MetricBenchCaseErrorCount, 1)
	m.startTime = time.Now().Add(-time.Second)

	m.updateDisplay()
}

func TestMetricNamesAreCopied(t *testing.T) {
	m := NewMeter[types.BenchResult](context.Background()).(*Meter[types.BenchResult])
	first := m.GetMetricNames()
	if len(first) == 0 {
		t.Fatal("expected metric names")
	}

	first[0] = "mutated"
	second := m.GetMetricNames()
	if second[0] == "mutated" {
		t.Fatal("expected GetMetricNames to return a copy")
	}
}
