package report

import (
	"fmt"
	"slices"

	"github.com/algoscope/algoscope/pkg/internal/dataset"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// WriteSpeedupAnalysis prints, per input size, the fastest and slowest
// measured sorting case and the gain between them.
func (r *Writer) WriteSpeedupAnalysis(results []types.BenchResult) error {
	bySize := make(map[int][]types.BenchResult)
	sizes := make([]int, 0, 8)
	for _, result := range results {
		if result.Category != "sorting" {
			continue
		}
		if _, ok := bySize[result.Size]; !ok {
			sizes = append(sizes, result.Size)
		}
		bySize[result.Size] = append(bySize[result.Size], result)
	}
	slices.Sort(sizes)

	s := &stickyWriter{w: r.output()}
	s.printf("\n🎯 Performance Analysis:\n")
	if len(sizes) == 0 {
		s.printf("  (no sorting results to analyze)\n")
		return s.err
	}

	for _, size := range sizes {
		group := bySize[size]
		if len(group) < 2 {
			continue
		}
		fastest, slowest := group[0], group[0]
		for _, result := range group[1:] {
			if result.Duration < fastest.Duration {
				fastest = result
			}
			if result.Duration > slowest.Duration {
				slowest = result
			}
		}
		s.printf("\nSize %d:\n", size)
		s.printf("  🏆 Fastest: %s (%.3f ms)\n", caseLabel(fastest), fastest.Millis)
		s.printf("  🐌 Slowest: %s (%.3f ms)\n", caseLabel(slowest), slowest.Millis)
		if fastest.Duration > 0 {
			s.printf("  ⚡ Performance Gain: %.2fx faster!\n",
				float64(slowest.Duration)/float64(fastest.Duration))
		}
	}

	r.NotifyLoggers(types.DebugLevel, "WriteSpeedupAnalysis",
		"component", r.GetComponentMetadata(),
		"event", "WriteSpeedupAnalysis",
		"sizes", len(sizes),
	)
	return s.err
}

func caseLabel(result types.BenchResult) string {
	if result.Shape == "" {
		return result.Algorithm
	}
	return result.Algorithm + " (" + result.Shape + ")"
}

// WriteGrowthTable prints how each sample sorting series grows across the
// adjacent size steps, the same ratios the growth bar chart plots.
func (r *Writer) WriteGrowthTable(sample types.SortingSample) error {
	series := [][]float64{sample.Bubble, sample.Insertion, sample.Merge, sample.Quick}
	for _, values := range series {
		if len(values) != len(sample.Sizes) {
			return fmt.Errorf("sorting sample series length %d does not match %d sizes",
				len(values), len(sample.Sizes))
		}
	}
	if len(sample.Sizes) < 2 {
		return fmt.Errorf("sorting sample needs at least two sizes, got %d", len(sample.Sizes))
	}

	ratios := make([][]float64, len(series))
	for i, values := range series {
		ratios[i] = dataset.GrowthRatios(values)
	}

	rows := make([][]string, 0, len(sample.Sizes)-1)
	for step := 0; step+1 < len(sample.Sizes); step++ {
		row := []string{fmt.Sprintf("%d → %d", sample.Sizes[step], sample.Sizes[step+1])}
		for _, ratio := range ratios {
			row = append(row, fmt.Sprintf("%.2fx", ratio[step]))
		}
		rows = append(rows, row)
	}

	s := &stickyWriter{w: r.output()}
	s.printf("\n📈 Growth Per Size Step:\n")
	renderTable(s,
		[]string{"Sizes", "Bubble", "Insertion", "Merge", "Quick"},
		rows,
		[]bool{false, true, true, true, true},
	)

	r.NotifyLoggers(types.DebugLevel, "WriteGrowthTable",
		"component", r.GetComponentMetadata(),
		"event", "WriteGrowthTable",
		"steps", len(rows),
	)
	return s.err
}
