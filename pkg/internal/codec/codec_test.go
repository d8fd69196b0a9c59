package codec

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

func sampleResult() types.BenchResult {
	return types.BenchResult{
		Category:    "sorting",
		Algorithm:   "Merge Sort",
		Size:        5000,
		Shape:       string(types.ShapeRandom),
		Duration:    12 * time.Millisecond,
		Millis:      12,
		Comparisons: 55252,
		Swaps:       61808,
		Complexity:  "O(n log n)",
		Stable:      true,
	}
}

func sampleResults() []types.BenchResult {
	merge := sampleResult()
	quick := sampleResult()
	quick.Algorithm = "Quick Sort"
	quick.Duration = 10 * time.Millisecond
	quick.Millis = 10
	quick.Stable = false
	search := types.BenchResult{
		Category:    "searching",
		Algorithm:   "Binary Search",
		Size:        100000,
		Duration:    28 * time.Microsecond,
		Millis:      0.028,
		Comparisons: 34,
		Complexity:  "O(log n)",
	}
	return []types.BenchResult{merge, quick, search}
}

func TestJSONRoundTrip(t *testing.T) {
	enc := NewJSONEncoder[types.BenchResult]()
	dec := NewJSONDecoder[types.BenchResult]()

	var buf bytes.Buffer
	want := sampleResult()
	if err := enc.Encode(&buf, want); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Errorf("Encode output should end with a newline, got %q", buf.String())
	}

	got, err := dec.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestJSONSliceRoundTrip(t *testing.T) {
	enc := NewJSONEncoder[types.BenchResult]()
	dec := NewJSONDecoder[types.BenchResult]()

	var buf bytes.Buffer
	want := sampleResults()
	if err := enc.EncodeSlice(&buf, want); err != nil {
		t.Fatalf("EncodeSlice failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "[") {
		t.Errorf("EncodeSlice should produce a JSON array, got %q", buf.String())
	}

	got, err := dec.DecodeSlice(&buf)
	if err != nil {
		t.Fatalf("DecodeSlice failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result %d mismatch: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestNDJSONEncodeSliceWritesOneObjectPerLine(t *testing.T) {
	enc := NewNDJSONEncoder[types.BenchResult]()

	var buf bytes.Buffer
	if err := enc.EncodeSlice(&buf, sampleResults()); err != nil {
		t.Fatalf("EncodeSlice failed: %v", err)
	}

	out := buf.String()
	if strings.HasPrefix(out, "[") {
		t.Errorf("NDJSON output should not be a JSON array, got %q", out)
	}
	if n := strings.Count(out, "\n"); n != 3 {
		t.Errorf("expected 3 lines, got %d in %q", n, out)
	}
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if !strings.HasPrefix(line, "{") || !strings.HasSuffix(line, "}") {
			t.Errorf("line is not a JSON object: %q", line)
		}
	}
}

func TestNDJSONDecodeSliceRoundTrip(t *testing.T) {
	enc := NewNDJSONEncoder[types.BenchResult]()
	dec := NewNDJSONDecoder[types.BenchResult]()

	var buf bytes.Buffer
	want := sampleResults()
	if err := enc.EncodeSlice(&buf, want); err != nil {
		t.Fatalf("EncodeSlice failed: %v", err)
	}

	got, err := dec.DecodeSlice(&buf)
	if err != nil {
		t.Fatalf("DecodeSlice failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result %d mismatch: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestNDJSONDecodeSliceEmptyInput(t *testing.T) {
	dec := NewNDJSONDecoder[types.BenchResult]()

	got, err := dec.DecodeSlice(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeSlice on empty input failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no results, got %d", len(got))
	}
}

func TestNDJSONDecodeSliceTruncatedValue(t *testing.T) {
	dec := NewNDJSONDecoder[types.BenchResult]()

	if _, err := dec.DecodeSlice(strings.NewReader(`{"category":"sorting"`)); err == nil {
		t.Error("expected an error for a truncated value, got nil")
	}
}

func TestNDJSONRecordWriterLifecycle(t *testing.T) {
	rw := NewNDJSONRecordWriter[types.BenchResult]()
	results := sampleResults()

	var buf bytes.Buffer
	if err := rw.Begin(&buf, types.FormatWriterOptions{}); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := rw.Write(results[0]); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := rw.Write(results[1]); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := rw.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 2 {
		t.Errorf("expected 2 lines after Flush, got %d", n)
	}

	if err := rw.Write(results[2]); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 3 {
		t.Errorf("expected 3 lines after Close, got %d", n)
	}
	if err := rw.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}

	dec := NewNDJSONDecoder[types.BenchResult]()
	got, err := dec.DecodeSlice(&buf)
	if err != nil {
		t.Fatalf("DecodeSlice failed: %v", err)
	}
	for i := range results {
		if got[i] != results[i] {
			t.Errorf("record %d mismatch: got %+v, want %+v", i, got[i], results[i])
		}
	}
}

func TestNDJSONRecordWriterWriteBeforeBegin(t *testing.T) {
	rw := NewNDJSONRecordWriter[types.BenchResult]()

	if err := rw.Write(sampleResult()); err == nil {
		t.Error("expected an error for Write before Begin, got nil")
	}
}

func TestNDJSONRecordWriterNilDestination(t *testing.T) {
	rw := NewNDJSONRecordWriter[types.BenchResult]()

	if err := rw.Begin(nil, types.FormatWriterOptions{}); err == nil {
		t.Error("expected an error for a nil destination, got nil")
	}
}

func TestNDJSONRecordWriterMetadata(t *testing.T) {
	rw := NewNDJSONRecordWriter[types.BenchResult]()

	if got := rw.ContentType(); got != "application/x-ndjson" {
		t.Errorf("unexpected content type %q", got)
	}
	if got := rw.Ext(); got != ".ndjson" {
		t.Errorf("unexpected extension %q", got)
	}
}
