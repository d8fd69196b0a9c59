package types

import (
	"context"
	"time"
)

// DataShape selects the initial ordering of generated benchmark inputs.
type DataShape string

const (
	ShapeRandom       DataShape = "random"
	ShapeSorted       DataShape = "sorted"
	ShapeReversed     DataShape = "reversed"
	ShapeNearlySorted DataShape = "nearly_sorted"
)

// BenchResult is one measured benchmark case. Results flow from the runner to
// reports, archives and publishers, so the field set is flat and serializable.
type BenchResult struct {
	Category    string        `json:"category" parquet:"category"`       // "sorting" | "searching" | "recursion"
	Algorithm   string        `json:"algorithm" parquet:"algorithm"`     // e.g. "merge_sort"
	Size        int           `json:"size" parquet:"size"`               // Input size (or n for recursion).
	Shape       string        `json:"shape" parquet:"shape"`             // Input ordering; empty for searching/recursion.
	Duration    time.Duration `json:"duration_ns" parquet:"duration_ns"` // Wall time of the measured section.
	Millis      float64       `json:"millis" parquet:"millis"`           // Duration in milliseconds for display.
	Comparisons uint64        `json:"comparisons" parquet:"comparisons"` // Element comparisons performed.
	Swaps       uint64        `json:"swaps" parquet:"swaps"`             // Element swaps or moves performed.
	Complexity  string        `json:"complexity" parquet:"complexity"`   // e.g. "O(n log n)"
	Stable      bool          `json:"stable" parquet:"stable"`           // Whether the algorithm preserves equal-key order.
}

// BenchRunner measures instrumented algorithms sequentially and reports one
// BenchResult per case. Runs are single-threaded so timings stay comparable.
type BenchRunner interface {
	// RunSorting benchmarks every registered sorting algorithm over the
	// configured sizes and shapes. Quadratic algorithms are skipped above
	// the configured cutoff.
	RunSorting(ctx context.Context) ([]BenchResult, error)

	// RunSearching benchmarks the search algorithms over sorted inputs,
	// probing both present and absent keys.
	RunSearching(ctx context.Context) ([]BenchResult, error)

	// RunRecursion benchmarks the fibonacci variants over the configured
	// argument values.
	RunRecursion(ctx context.Context) ([]BenchResult, error)

	// RunAll runs the sorting, searching and recursion suites in order.
	RunAll(ctx context.Context) ([]BenchResult, error)

	SetSizes(sizes []int)
	GetSizes() []int
	SetShapes(shapes []DataShape)
	GetShapes() []DataShape
	SetRepeats(n int)
	SetQuadraticCutoff(n int)
	SetSeed(seed int64)
	SetRecursionDepths(n []int)

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor[BenchResult])
	ConnectMeter(...Meter[BenchResult])

	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}
