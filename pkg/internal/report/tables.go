package report

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

var resultColumns = []string{
	"Algorithm", "Size", "Shape", "Time (ms)", "Comparisons", "Swaps", "Complexity", "Stability",
}

// Numeric columns are right aligned like the source tables.
var resultNumericColumns = []bool{false, true, false, true, true, true, false, false}

// WriteResults renders one box-drawing table per result category, in suite
// order. Rows keep the order the runner emitted them in.
func (r *Writer) WriteResults(results []types.BenchResult) error {
	s := &stickyWriter{w: r.output()}

	if r.hostInfoEnabled() {
		writeHostBlock(s, CollectHostInfo())
	}

	for _, category := range categoriesInOrder(results) {
		rows := make([][]string, 0, len(results))
		for _, result := range results {
			if result.Category == category {
				rows = append(rows, resultRow(result))
			}
		}
		s.printf("\n%s Performance:\n", titleCase(category))
		renderTable(s, resultColumns, rows, resultNumericColumns)
	}

	r.NotifyLoggers(types.DebugLevel, "WriteResults",
		"component", r.GetComponentMetadata(),
		"event", "WriteResults",
		"results", len(results),
	)
	return s.err
}

// categoriesInOrder returns the canonical suite order first, then any other
// category in first-appearance order.
func categoriesInOrder(results []types.BenchResult) []string {
	seen := make(map[string]bool, 3)
	order := make([]string, 0, 3)
	for _, canonical := range []string{"sorting", "searching", "recursion"} {
		for _, result := range results {
			if result.Category == canonical {
				seen[canonical] = true
				order = append(order, canonical)
				break
			}
		}
	}
	for _, result := range results {
		if !seen[result.Category] {
			seen[result.Category] = true
			order = append(order, result.Category)
		}
	}
	return order
}

func resultRow(result types.BenchResult) []string {
	shape := result.Shape
	if shape == "" {
		shape = "-"
	}

	// Stability only means something for sorts.
	stability := "-"
	if result.Category == "sorting" {
		if result.Stable {
			stability = "Stable"
		} else {
			stability = "Unstable"
		}
	}

	return []string{
		result.Algorithm,
		strconv.Itoa(result.Size),
		shape,
		strconv.FormatFloat(result.Millis, 'f', 3, 64),
		strconv.FormatUint(result.Comparisons, 10),
		strconv.FormatUint(result.Swaps, 10),
		result.Complexity,
		stability,
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// renderTable draws a ┌─┬─┐ style table. Widths are measured in runes so
// cells like "O(n²)" line up.
func renderTable(s *stickyWriter, headers []string, rows [][]string, rightAligned []bool) {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = utf8.RuneCountInString(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && utf8.RuneCountInString(cell) > widths[i] {
				widths[i] = utf8.RuneCountInString(cell)
			}
		}
	}

	rule(s, widths, "┌", "┬", "┐")
	tableRow(s, widths, headers, nil)
	rule(s, widths, "├", "┼", "┤")
	for _, row := range rows {
		tableRow(s, widths, row, rightAligned)
	}
	rule(s, widths, "└", "┴", "┘")
}

func rule(s *stickyWriter, widths []int, left, mid, right string) {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("─", width+2)
	}
	s.printf("%s%s%s\n", left, strings.Join(parts, mid), right)
}

func tableRow(s *stickyWriter, widths []int, cells []string, rightAligned []bool) {
	padded := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = pad(cell, widths[i], rightAligned != nil && i < len(rightAligned) && rightAligned[i])
	}
	s.printf("│ %s │\n", strings.Join(padded, " │ "))
}

func pad(cell string, width int, right bool) string {
	gap := width - utf8.RuneCountInString(cell)
	if gap <= 0 {
		return cell
	}
	if right {
		return strings.Repeat(" ", gap) + cell
	}
	return cell + strings.Repeat(" ", gap)
}
