package sensor

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// countingMeter records the counter mutations the sensor decorators perform.
// Unused Meter methods are inherited from the embedded interface and panic if
// called, which keeps the fake honest about what the sensor touches.
type countingMeter struct {
	types.Meter[types.BenchResult]

	mu         sync.Mutex
	counts     map[string]uint64
	timestamps map[string]int64
	timers     map[string]bool
	activity   int
}

func newCountingMeter() *countingMeter {
	return &countingMeter{
		counts:     make(map[string]uint64),
		timestamps: make(map[string]int64),
		timers:     make(map[string]bool),
	}
}

func (m *countingMeter) IncrementCount(metric string) {
	m.mu.Lock()
	m.counts[metric]++
	m.mu.Unlock()
}

func (m *countingMeter) DecrementCount(metric string) {
	m.mu.Lock()
	if m.counts[metric] > 0 {
		m.counts[metric]--
	}
	m.mu.Unlock()
}

func (m *countingMeter) GetMetricCount(metric string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[metric]
}

func (m *countingMeter) SetMetricCount(metric string, count uint64) {
	m.mu.Lock()
	m.counts[metric] = count
	m.mu.Unlock()
}

func (m *countingMeter) SetMetricTimestamp(metric string, ts int64) {
	m.mu.Lock()
	m.timestamps[metric] = ts
	m.mu.Unlock()
}

func (m *countingMeter) IsTimerRunning(metric string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timers[metric]
}

func (m *countingMeter) StartTimer(metric string) {
	m.mu.Lock()
	m.timers[metric] = true
	m.mu.Unlock()
}

func (m *countingMeter) ReportData() {
	m.mu.Lock()
	m.activity++
	m.mu.Unlock()
}

func TestNewSensor_Metadata(t *testing.T) {
	s := NewSensor[types.BenchResult]()

	meta := s.GetComponentMetadata()
	if meta.Type != "SENSOR" {
		t.Errorf("Expected component type SENSOR, got %s", meta.Type)
	}
	if len(meta.ID) != 64 {
		t.Errorf("Expected a 64 character id, got %d characters", len(meta.ID))
	}

	s.SetComponentMetadata("bench-sensor", "sensor-1")
	meta = s.GetComponentMetadata()
	if meta.Name != "bench-sensor" || meta.ID != "sensor-1" {
		t.Errorf("Expected metadata override, got %+v", meta)
	}
	if meta.Type != "SENSOR" {
		t.Errorf("Expected component type to survive override, got %s", meta.Type)
	}
}

func TestSensorCallbacks(t *testing.T) {
	var startCount, completeCount, cancelCount, processCount, errorCount int

	s := NewSensor[types.BenchResult](
		WithOnStartFunc[types.BenchResult](func(c types.ComponentMetadata) { startCount++ }),
		WithOnCompleteFunc[types.BenchResult](func(c types.ComponentMetadata) { completeCount++ }),
		WithOnCancelFunc[types.BenchResult](func(c types.ComponentMetadata, elem types.BenchResult) { cancelCount++ }),
		WithOnElementProcessedFunc[types.BenchResult](func(c types.ComponentMetadata, elem types.BenchResult) { processCount++ }),
		WithOnErrorFunc[types.BenchResult](func(c types.ComponentMetadata, err error, elem types.BenchResult) { errorCount++ }),
	)

	cm := s.GetComponentMetadata()
	s.InvokeOnStart(cm)
	s.InvokeOnElementProcessed(cm, types.BenchResult{Algorithm: "Merge Sort"})
	s.InvokeOnElementProcessed(cm, types.BenchResult{Algorithm: "Quick Sort"})
	s.InvokeOnError(cm, errors.New("simulated case failure"), types.BenchResult{})
	s.InvokeOnCancel(cm, types.BenchResult{})
	s.InvokeOnComplete(cm)

	if startCount != 1 {
		t.Errorf("Expected start to be called once, got %d", startCount)
	}
	if processCount != 2 {
		t.Errorf("Expected processed count of 2, got %d", processCount)
	}
	if errorCount != 1 {
		t.Errorf("Expected error count of 1, got %d", errorCount)
	}
	if cancelCount != 1 {
		t.Errorf("Expected cancel count of 1, got %d", cancelCount)
	}
	if completeCount != 1 {
		t.Errorf("Expected complete to be called once, got %d", completeCount)
	}
}

func TestBenchHooks_PassArguments(t *testing.T) {
	var gotCategory, gotAlgorithm, gotShape, gotReason string
	var gotSize, gotCases int
	var gotElapsed time.Duration

	s := NewSensor[types.BenchResult](
		WithOnBenchCaseStartFunc[types.BenchResult](func(c types.ComponentMetadata, category, algorithm string, size int, shape string) {
			gotCategory, gotAlgorithm, gotSize, gotShape = category, algorithm, size, shape
		}),
		WithOnBenchCaseSkipFunc[types.BenchResult](func(c types.ComponentMetadata, algorithm string, size int, reason string) {
			gotReason = reason
		}),
		WithOnBenchSuiteCompleteFunc[types.BenchResult](func(c types.ComponentMetadata, cases int, elapsed time.Duration) {
			gotCases, gotElapsed = cases, elapsed
		}),
	)

	cm := s.GetComponentMetadata()
	s.InvokeOnBenchCaseStart(cm, "sorting", "bubble_sort", 1000, "random")
	s.InvokeOnBenchCaseSkip(cm, "bubble_sort", 50000, "quadratic cutoff")
	s.InvokeOnBenchSuiteComplete(cm, 84, 1500*time.Millisecond)

	if gotCategory != "sorting" || gotAlgorithm != "bubble_sort" || gotSize != 1000 || gotShape != "random" {
		t.Errorf("Unexpected case start arguments: %s %s %d %s", gotCategory, gotAlgorithm, gotSize, gotShape)
	}
	if gotReason != "quadratic cutoff" {
		t.Errorf("Unexpected skip reason: %s", gotReason)
	}
	if gotCases != 84 || gotElapsed != 1500*time.Millisecond {
		t.Errorf("Unexpected suite completion arguments: %d %v", gotCases, gotElapsed)
	}
}

func TestDecorators_UpdateMeters(t *testing.T) {
	meter := newCountingMeter()

	s := NewSensor[types.BenchResult]()
	s.ConnectMeter(meter)

	cm := types.ComponentMetadata{ID: "runner-1", Type: "BENCH_RUNNER", Name: "runner"}
	s.InvokeOnStart(cm)
	if got := meter.GetMetricCount(types.MetricComponentRunningCount); got != 1 {
		t.Errorf("Expected running count 1 after start, got %d", got)
	}
	if !meter.IsTimerRunning(types.MetricProcessDuration) {
		t.Errorf("Expected the process duration timer to start")
	}

	s.InvokeOnElementProcessed(cm, types.BenchResult{
		Category:    "sorting",
		Algorithm:   "Merge Sort",
		Comparisons: 120,
		Swaps:       45,
	})
	if got := meter.GetMetricCount(types.MetricBenchCaseCompletedCount); got != 1 {
		t.Errorf("Expected 1 completed case, got %d", got)
	}
	if got := meter.GetMetricCount(types.MetricBenchComparisonCount); got != 120 {
		t.Errorf("Expected 120 comparisons, got %d", got)
	}
	if got := meter.GetMetricCount(types.MetricBenchSwapCount); got != 45 {
		t.Errorf("Expected 45 swaps, got %d", got)
	}
	if got := meter.GetMetricCount(types.MetricBenchSortingCaseCount); got != 1 {
		t.Errorf("Expected 1 sorting case, got %d", got)
	}

	s.InvokeOnBenchCaseSkip(cm, "bubble_sort", 20000, "quadratic cutoff")
	if got := meter.GetMetricCount(types.MetricBenchCaseSkippedCount); got != 1 {
		t.Errorf("Expected 1 skipped case, got %d", got)
	}

	s.InvokeOnBenchCaseStart(cm, "sorting", "merge_sort", 1000, "random")
	meter.mu.Lock()
	ts := meter.timestamps[types.MetricBenchCaseCompletedCount]
	meter.mu.Unlock()
	if ts == 0 {
		t.Errorf("Expected a case start to stamp the completed count metric")
	}

	s.InvokeOnError(cm, errors.New("boom"), types.BenchResult{})
	if got := meter.GetMetricCount(types.MetricTotalErrorCount); got != 1 {
		t.Errorf("Expected 1 total error, got %d", got)
	}
	if got := meter.GetMetricCount(types.MetricBenchCaseErrorCount); got != 1 {
		t.Errorf("Expected 1 bench case error for a BENCH_RUNNER component, got %d", got)
	}

	s.InvokeOnComplete(cm)
	if got := meter.GetMetricCount(types.MetricComponentRunningCount); got != 0 {
		t.Errorf("Expected running count back to 0 after completion, got %d", got)
	}
}

func TestDecorators_ChartAndExportMeters(t *testing.T) {
	meter := newCountingMeter()

	s := NewSensor[types.BenchResult]()
	s.ConnectMeter(meter)

	cm := types.ComponentMetadata{ID: "renderer-1", Type: "CHART_RENDERER", Name: "renderer"}
	s.InvokeOnChartSaved(cm, "sorting_analysis", "out/sorting_analysis.png", 2048)
	if got := meter.GetMetricCount(types.MetricChartRenderCount); got != 1 {
		t.Errorf("Expected 1 rendered chart, got %d", got)
	}
	if got := meter.GetMetricCount(types.MetricChartBytesWritten); got != 2048 {
		t.Errorf("Expected 2048 chart bytes, got %d", got)
	}

	s.InvokeOnChartRenderError(cm, "search_analysis", errors.New("render failed"))
	if got := meter.GetMetricCount(types.MetricChartRenderErrorCount); got != 1 {
		t.Errorf("Expected 1 chart render error, got %d", got)
	}

	s.InvokeOnArchiveFlush(cm, 84, 4096, "zstd")
	if got := meter.GetMetricCount(types.MetricArchiveFlushCount); got != 1 {
		t.Errorf("Expected 1 archive flush, got %d", got)
	}
	if got := meter.GetMetricCount(types.MetricArchiveBytesWritten); got != 4096 {
		t.Errorf("Expected 4096 archive bytes, got %d", got)
	}

	s.InvokeOnS3PutSuccess(cm, "results", "runs/results.parquet", 4096, 30*time.Millisecond)
	if got := meter.GetMetricCount(types.MetricS3PutCount); got != 1 {
		t.Errorf("Expected 1 s3 put, got %d", got)
	}
	s.InvokeOnS3PutError(cm, "results", "runs/results.parquet", errors.New("denied"))
	if got := meter.GetMetricCount(types.MetricS3PutErrorCount); got != 1 {
		t.Errorf("Expected 1 s3 put error, got %d", got)
	}

	s.InvokeOnKafkaProduceSuccess(cm, "algoscope.results", 84, 20*time.Millisecond)
	if got := meter.GetMetricCount(types.MetricKafkaProduceCount); got != 84 {
		t.Errorf("Expected 84 produced records, got %d", got)
	}
	s.InvokeOnKafkaProduceError(cm, "algoscope.results", errors.New("broker down"))
	if got := meter.GetMetricCount(types.MetricKafkaProduceErrCount); got != 1 {
		t.Errorf("Expected 1 produce error, got %d", got)
	}
}

func TestConnectLogger_CompactsNilEntries(t *testing.T) {
	s := NewSensor[types.BenchResult]().(*Sensor[types.BenchResult])

	s.ConnectLogger(nil, nil)
	if got := len(s.snapshotLoggers()); got != 0 {
		t.Errorf("Expected no loggers after connecting only nils, got %d", got)
	}
}

func TestInvoke_ReentrantRegister(t *testing.T) {
	var second int

	s := NewSensor[types.BenchResult]()
	s.RegisterOnStart(func(c types.ComponentMetadata) {
		// Registering from inside an invoke must not deadlock.
		s.RegisterOnStart(func(c types.ComponentMetadata) { second++ })
	})

	cm := s.GetComponentMetadata()
	s.InvokeOnStart(cm)
	if second != 0 {
		t.Errorf("Expected late registration to miss the in-flight invoke, got %d calls", second)
	}

	s.InvokeOnStart(cm)
	if second != 1 {
		t.Errorf("Expected late registration to fire on the next invoke, got %d calls", second)
	}
}

func TestGetMeters_ReturnsCopy(t *testing.T) {
	meter := newCountingMeter()

	s := NewSensor[types.BenchResult]()
	s.ConnectMeter(meter, nil)

	meters := s.GetMeters()
	if len(meters) != 1 {
		t.Fatalf("Expected 1 connected meter, got %d", len(meters))
	}

	meters[0] = nil
	if again := s.GetMeters(); again[0] == nil {
		t.Errorf("Expected GetMeters to return a copy")
	}
}
