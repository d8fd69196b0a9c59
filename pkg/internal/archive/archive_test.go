package archive

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	parquet "github.com/parquet-go/parquet-go"
	"github.com/pierrec/lz4"

	"github.com/algoscope/algoscope/pkg/internal/codec"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// recordingSensor tracks archive hook invocations. Unused Sensor methods
// are inherited from the embedded interface and panic if called, which
// keeps the fake honest about what the writer touches.
type recordingSensor struct {
	types.Sensor[types.BenchResult]

	mu      sync.Mutex
	starts  []string
	flushes []int
	stops   int
	errs    []error
}

func (s *recordingSensor) GetComponentMetadata() types.ComponentMetadata {
	return types.ComponentMetadata{Type: "SENSOR", Name: "recording"}
}

func (s *recordingSensor) InvokeOnArchiveWriteStart(cm types.ComponentMetadata, dir, format, compression string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.starts = append(s.starts, fmt.Sprintf("%s/%s", format, compression))
}

func (s *recordingSensor) InvokeOnArchiveFlush(cm types.ComponentMetadata, records, bytes int, compression string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes = append(s.flushes, records)
}

func (s *recordingSensor) InvokeOnArchiveWriteStop(cm types.ComponentMetadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stops++
}

func (s *recordingSensor) InvokeOnError(cm types.ComponentMetadata, err error, elem types.BenchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, err)
}

func sampleRun() []types.BenchResult {
	return []types.BenchResult{
		{
			Category:    "sorting",
			Algorithm:   "Bubble Sort",
			Size:        1000,
			Shape:       string(types.ShapeRandom),
			Duration:    12 * time.Millisecond,
			Millis:      12,
			Comparisons: 499500,
			Swaps:       249750,
			Complexity:  "O(n²)",
			Stable:      true,
		},
		{
			Category:    "sorting",
			Algorithm:   "Quick Sort",
			Size:        1000,
			Shape:       string(types.ShapeRandom),
			Duration:    1500 * time.Microsecond,
			Millis:      1.5,
			Comparisons: 10820,
			Swaps:       3421,
			Complexity:  "O(n log n)",
		},
		{
			Category:    "searching",
			Algorithm:   "Binary Search",
			Size:        100000,
			Duration:    28 * time.Microsecond,
			Millis:      0.028,
			Comparisons: 34,
			Complexity:  "O(log n)",
		},
	}
}

func readParquetRecords(t *testing.T, path string) []ResultRecord {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	gr := parquet.NewGenericReader[ResultRecord](bytes.NewReader(data))
	defer gr.Close()

	out := make([]ResultRecord, 0, 8)
	batch := make([]ResultRecord, 4)
	for {
		n, err := gr.Read(batch)
		if n > 0 {
			out = append(out, batch[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("parquet read: %v", err)
		}
	}
	return out
}

func TestNewWriterMetadata(t *testing.T) {
	w := NewWriter()

	cm := w.GetComponentMetadata()
	if cm.Type != "ARCHIVE_WRITER" {
		t.Errorf("expected type ARCHIVE_WRITER, got %q", cm.Type)
	}
	if len(cm.ID) != 64 {
		t.Errorf("expected a 64 character id, got %d characters", len(cm.ID))
	}

	w.SetComponentMetadata("nightly-archive", "id-1")
	cm = w.GetComponentMetadata()
	if cm.Name != "nightly-archive" || cm.ID != "id-1" {
		t.Errorf("metadata override not applied: %+v", cm)
	}
	if cm.Type != "ARCHIVE_WRITER" {
		t.Errorf("metadata override must preserve the type, got %q", cm.Type)
	}
}

func TestWriteResultsDefaultLayout(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(WithDir(dir))

	paths, err := w.WriteResults(context.Background(), sampleRun())
	if err != nil {
		t.Fatalf("WriteResults failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d: %v", len(paths), paths)
	}
	if filepath.Base(paths[0]) != "results.parquet" {
		t.Errorf("expected results.parquet first, got %s", paths[0])
	}
	if filepath.Base(paths[1]) != "results.ndjson" {
		t.Errorf("expected results.ndjson second, got %s", paths[1])
	}

	runDir := filepath.Dir(paths[0])
	if filepath.Dir(paths[1]) != runDir {
		t.Errorf("formats landed in different run directories: %v", paths)
	}
	if got := filepath.Base(filepath.Dir(runDir)); got != "benchmarks" {
		t.Errorf("expected the default prefix benchmarks, got %q", got)
	}
	if got := filepath.Dir(filepath.Dir(runDir)); got != dir {
		t.Errorf("run directory %s is not under %s", runDir, dir)
	}

	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("read parquet file: %v", err)
	}
	if len(data) < 8 || string(data[:4]) != "PAR1" || string(data[len(data)-4:]) != "PAR1" {
		t.Error("parquet file is missing its magic bytes")
	}
}

func TestWriteResultsParquetRoundTrip(t *testing.T) {
	w := NewWriter(
		WithDir(t.TempDir()),
		WithPrefix("runs"),
		WithFormats(types.ArchiveFormatParquet),
		WithParquetCompression("zstd"),
	)

	results := sampleRun()
	paths, err := w.WriteResults(context.Background(), results)
	if err != nil {
		t.Fatalf("WriteResults failed: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %v", paths)
	}

	records := readParquetRecords(t, paths[0])
	if len(records) != len(results) {
		t.Fatalf("expected %d records, got %d", len(results), len(records))
	}
	for i, r := range results {
		if records[i] != newRecord(r) {
			t.Errorf("record %d mismatch: got %+v, want %+v", i, records[i], newRecord(r))
		}
	}
}

func TestWriteResultsNDJSONCompressionRoundTrip(t *testing.T) {
	cases := []struct {
		name      string
		algorithm types.CompressionAlgorithm
		suffix    string
		open      func(t *testing.T, r io.Reader) io.Reader
	}{
		{"gzip", COMPRESS_GZIP, "results.ndjson.gz", func(t *testing.T, r io.Reader) io.Reader {
			zr, err := gzip.NewReader(r)
			if err != nil {
				t.Fatalf("gzip reader: %v", err)
			}
			return zr
		}},
		{"snappy", COMPRESS_SNAPPY, "results.ndjson.snappy", func(t *testing.T, r io.Reader) io.Reader {
			return snappy.NewReader(r)
		}},
		{"zstd", COMPRESS_ZSTD, "results.ndjson.zst", func(t *testing.T, r io.Reader) io.Reader {
			zr, err := zstd.NewReader(r)
			if err != nil {
				t.Fatalf("zstd reader: %v", err)
			}
			return zr
		}},
		{"brotli", COMPRESS_BROTLI, "results.ndjson.br", func(t *testing.T, r io.Reader) io.Reader {
			return brotli.NewReader(r)
		}},
		{"lz4", COMPRESS_LZ4, "results.ndjson.lz4", func(t *testing.T, r io.Reader) io.Reader {
			return lz4.NewReader(r)
		}},
	}

	results := sampleRun()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWriter(
				WithDir(t.TempDir()),
				WithFormats(types.ArchiveFormatNDJSON),
				WithCompression(tc.algorithm),
			)

			paths, err := w.WriteResults(context.Background(), results)
			if err != nil {
				t.Fatalf("WriteResults failed: %v", err)
			}
			if len(paths) != 1 || !strings.HasSuffix(paths[0], tc.suffix) {
				t.Fatalf("expected one path ending in %s, got %v", tc.suffix, paths)
			}

			f, err := os.Open(paths[0])
			if err != nil {
				t.Fatalf("open archive: %v", err)
			}
			defer f.Close()

			dec := codec.NewNDJSONDecoder[types.BenchResult]()
			got, err := dec.DecodeSlice(tc.open(t, f))
			if err != nil {
				t.Fatalf("decode archive: %v", err)
			}
			if len(got) != len(results) {
				t.Fatalf("expected %d results, got %d", len(results), len(got))
			}
			for i := range results {
				if got[i] != results[i] {
					t.Errorf("result %d mismatch: got %+v, want %+v", i, got[i], results[i])
				}
			}
		})
	}
}

func TestWriteResultsUnknownCompression(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(
		WithDir(dir),
		WithFormats(types.ArchiveFormatNDJSON),
		WithCompression(types.CompressionAlgorithm(99)),
	)

	paths, err := w.WriteResults(context.Background(), sampleRun())
	if !errors.Is(err, ErrUnknownCodec) {
		t.Fatalf("expected ErrUnknownCodec, got %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no paths, got %v", paths)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("unknown codec should fail before creating directories, found %d entries", len(entries))
	}
}

func TestWriteResultsUnknownFormat(t *testing.T) {
	w := NewWriter(
		WithDir(t.TempDir()),
		WithFormats(types.ArchiveFormat("csv")),
	)

	_, err := w.WriteResults(context.Background(), sampleRun())
	if err == nil || !strings.Contains(err.Error(), "csv") {
		t.Fatalf("expected an unknown format error naming csv, got %v", err)
	}
}

func TestWriteResultsEmptyRun(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(WithDir(dir))

	paths, err := w.WriteResults(context.Background(), nil)
	if err != nil {
		t.Fatalf("WriteResults failed: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no paths for an empty run, got %v", paths)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("empty run should not create directories, found %d entries", len(entries))
	}
}

func TestWriteResultsSensorFlow(t *testing.T) {
	sensor := &recordingSensor{}
	w := NewWriter(
		WithDir(t.TempDir()),
		WithSensor(sensor),
	)

	results := sampleRun()
	if _, err := w.WriteResults(context.Background(), results); err != nil {
		t.Fatalf("WriteResults failed: %v", err)
	}

	sensor.mu.Lock()
	defer sensor.mu.Unlock()
	wantStarts := []string{"parquet/snappy", "ndjson/none"}
	if len(sensor.starts) != len(wantStarts) {
		t.Fatalf("expected %d write starts, got %v", len(wantStarts), sensor.starts)
	}
	for i, want := range wantStarts {
		if sensor.starts[i] != want {
			t.Errorf("start %d: got %q, want %q", i, sensor.starts[i], want)
		}
	}
	if len(sensor.flushes) != 2 || sensor.flushes[0] != len(results) || sensor.flushes[1] != len(results) {
		t.Errorf("expected two flushes of %d records, got %v", len(results), sensor.flushes)
	}
	if sensor.stops != 1 {
		t.Errorf("expected one write stop, got %d", sensor.stops)
	}
	if len(sensor.errs) != 0 {
		t.Errorf("expected no error callbacks, got %v", sensor.errs)
	}
}

func TestWriteResultsCancelledContext(t *testing.T) {
	w := NewWriter(WithDir(t.TempDir()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths, err := w.WriteResults(ctx, sampleRun())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no paths, got %v", paths)
	}
}
