package archive

import "github.com/algoscope/algoscope/pkg/internal/types"

// ResultRecord is the flat Parquet row for one benchmark case. Duration
// and the uint64 counters are mirrored as int64 so the schema stays plain
// INT64 columns for downstream readers.
type ResultRecord struct {
	Category    string  `parquet:"category"`
	Algorithm   string  `parquet:"algorithm"`
	Size        int64   `parquet:"size"`
	Shape       string  `parquet:"shape"`
	DurationNS  int64   `parquet:"duration_ns"`
	Millis      float64 `parquet:"millis"`
	Comparisons int64   `parquet:"comparisons"`
	Swaps       int64   `parquet:"swaps"`
	Complexity  string  `parquet:"complexity"`
	Stable      bool    `parquet:"stable"`
}

func newRecord(r types.BenchResult) ResultRecord {
	return ResultRecord{
		Category:    r.Category,
		Algorithm:   r.Algorithm,
		Size:        int64(r.Size),
		Shape:       r.Shape,
		DurationNS:  int64(r.Duration),
		Millis:      r.Millis,
		Comparisons: int64(r.Comparisons),
		Swaps:       int64(r.Swaps),
		Complexity:  r.Complexity,
		Stable:      r.Stable,
	}
}
