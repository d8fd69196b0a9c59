package report

import (
	"bytes"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/algoscope/algoscope/pkg/internal/dataset"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

func sampleResults() []types.BenchResult {
	return []types.BenchResult{
		{Category: "sorting", Algorithm: "bubble_sort", Size: 1000, Shape: "random",
			Duration: 12 * time.Millisecond, Millis: 12, Comparisons: 499500, Swaps: 249750,
			Complexity: "O(n²)", Stable: true},
		{Category: "sorting", Algorithm: "quick_sort", Size: 1000, Shape: "random",
			Duration: 1500 * time.Microsecond, Millis: 1.5, Comparisons: 10800, Swaps: 3200,
			Complexity: "O(n log n)"},
		{Category: "searching", Algorithm: "binary_search", Size: 100000,
			Duration: 28 * time.Microsecond, Millis: 0.028, Comparisons: 34,
			Complexity: "O(log n)"},
		{Category: "recursion", Algorithm: "fib_naive", Size: 10,
			Duration: time.Microsecond, Millis: 0.001, Comparisons: 177,
			Complexity: "O(2ⁿ)"},
	}
}

func assertBoxAlignment(t *testing.T, out string) {
	t.Helper()

	width := 0
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		switch []rune(line)[0] {
		case '┌':
			width = utf8.RuneCountInString(line)
		case '├', '└', '│':
			if got := utf8.RuneCountInString(line); got != width {
				t.Errorf("misaligned table line (%d runes, want %d): %q", got, width, line)
			}
		}
	}
}

func TestNewWriter_Metadata(t *testing.T) {
	w := NewWriter()

	cm := w.GetComponentMetadata()
	if cm.Type != "REPORT_WRITER" {
		t.Errorf("expected component type REPORT_WRITER, got %q", cm.Type)
	}
	if len(cm.ID) != 64 {
		t.Errorf("expected 64 character id, got %d characters", len(cm.ID))
	}

	w.SetComponentMetadata("console", "report-1")
	cm = w.GetComponentMetadata()
	if cm.Name != "console" || cm.ID != "report-1" || cm.Type != "REPORT_WRITER" {
		t.Errorf("unexpected metadata after override: %+v", cm)
	}
}

func TestWriteResults_GroupsAndAligns(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WithOutput(&buf))

	if err := w.WriteResults(sampleResults()); err != nil {
		t.Fatalf("WriteResults returned error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Sorting Performance:",
		"Searching Performance:",
		"Recursion Performance:",
		"│ Algorithm",
		"bubble_sort",
		"O(n log n)",
		"Stable",
		"Unstable",
		"499500",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "binary_search") || strings.Contains(line, "fib_naive") {
			if !strings.Contains(line, " - ") {
				t.Errorf("expected dash placeholders in non-sorting row %q", line)
			}
			if strings.Contains(line, "Unstable") {
				t.Errorf("stability printed for non-sorting row %q", line)
			}
		}
	}

	assertBoxAlignment(t, out)
}

func TestWriteResults_HostToggle(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WithOutput(&buf), WithHostInfo(true))

	if err := w.WriteResults(sampleResults()); err != nil {
		t.Fatalf("WriteResults returned error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Host Information:") {
		t.Errorf("expected host block before tables, got %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}
}

func TestWriteSpeedupAnalysis(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WithOutput(&buf))

	results := []types.BenchResult{
		{Category: "sorting", Algorithm: "quick_sort", Shape: "random", Size: 1000,
			Duration: 2 * time.Millisecond, Millis: 2},
		{Category: "sorting", Algorithm: "bubble_sort", Shape: "random", Size: 1000,
			Duration: 12 * time.Millisecond, Millis: 12},
		{Category: "searching", Algorithm: "linear_search", Size: 1000,
			Duration: time.Millisecond, Millis: 1},
	}
	if err := w.WriteSpeedupAnalysis(results); err != nil {
		t.Fatalf("WriteSpeedupAnalysis returned error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Size 1000:",
		"🏆 Fastest: quick_sort (random) (2.000 ms)",
		"🐌 Slowest: bubble_sort (random) (12.000 ms)",
		"⚡ Performance Gain: 6.00x faster!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "linear_search") {
		t.Errorf("non-sorting result leaked into the analysis:\n%s", out)
	}
}

func TestWriteSpeedupAnalysis_NoSortingResults(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WithOutput(&buf))

	if err := w.WriteSpeedupAnalysis(nil); err != nil {
		t.Fatalf("WriteSpeedupAnalysis returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "no sorting results to analyze") {
		t.Errorf("missing empty-input notice in %q", buf.String())
	}
}

func TestWriteGrowthTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WithOutput(&buf))

	if err := w.WriteGrowthTable(dataset.Sorting()); err != nil {
		t.Fatalf("WriteGrowthTable returned error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Growth Per Size Step:",
		"1000 → 2000",
		"10000 → 20000",
		"3.75x", // bubble 45/12
		"2.33x", // quick 3.5/1.5
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	assertBoxAlignment(t, out)
}

func TestWriteGrowthTable_LengthMismatch(t *testing.T) {
	w := NewWriter(WithOutput(&bytes.Buffer{}))

	sample := dataset.Sorting()
	sample.Merge = sample.Merge[:3]
	if err := w.WriteGrowthTable(sample); err == nil {
		t.Fatalf("expected error for mismatched series lengths")
	}
}

func TestWriteHostInfo(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WithOutput(&buf))

	if err := w.WriteHostInfo(); err != nil {
		t.Fatalf("WriteHostInfo returned error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Host Information:") {
		t.Errorf("missing host header in %q", out)
	}
	if !strings.Contains(out, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("missing os/arch in %q", out)
	}
	if !strings.Contains(out, runtime.Version()) {
		t.Errorf("missing go version in %q", out)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("sink closed") }

func TestWriteResults_PropagatesWriteError(t *testing.T) {
	w := NewWriter(WithOutput(failingWriter{}))
	if err := w.WriteResults(sampleResults()); err == nil {
		t.Fatalf("expected write error to propagate")
	}
}
