package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/algoscope/algoscope/pkg/internal/dataset"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// ---------- Sorting analysis ----------

func (c *Chart) sortingPanels() ([][]*plot.Plot, error) {
	sample := c.sortingSample()
	if err := validateSortingSample(sample); err != nil {
		return nil, err
	}

	linear, err := sortingLinearPanel(sample)
	if err != nil {
		return nil, err
	}
	loglog, err := sortingLogLogPanel(sample)
	if err != nil {
		return nil, err
	}
	efficient, err := sortingEfficientPanel(sample)
	if err != nil {
		return nil, err
	}
	growth, err := sortingGrowthPanel(sample)
	if err != nil {
		return nil, err
	}
	return [][]*plot.Plot{{linear, loglog}, {efficient, growth}}, nil
}

func sortingLinearPanel(sample types.SortingSample) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Sorting Algorithm Performance Comparison"
	p.X.Label.Text = "Input Size (n)"
	p.Y.Label.Text = "Time (milliseconds)"
	p.Add(plotter.NewGrid())

	series := []struct {
		label string
		times []float64
		color color.Color
	}{
		{"Bubble Sort O(n²)", sample.Bubble, colorRed},
		{"Insertion Sort O(n²)", sample.Insertion, colorBlue},
		{"Merge Sort O(n log n)", sample.Merge, colorGreen},
		{"Quick Sort O(n log n)", sample.Quick, colorMagenta},
	}
	for _, s := range series {
		if err := addLinePoints(p, xyPoints(sample.Sizes, s.times), s.color, s.label); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func sortingLogLogPanel(sample types.SortingSample) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Log-Log Scale: Theory vs Practice"
	p.X.Label.Text = "Input Size (n) - Log Scale"
	p.Y.Label.Text = "Time (ms) - Log Scale"
	p.Add(plotter.NewGrid())
	logXAxis(p)
	logYAxis(p)

	series := []struct {
		label string
		times []float64
		color color.Color
	}{
		{"Bubble Sort", sample.Bubble, colorRed},
		{"Insertion Sort", sample.Insertion, colorBlue},
		{"Merge Sort", sample.Merge, colorGreen},
		{"Quick Sort", sample.Quick, colorMagenta},
	}
	for _, s := range series {
		if err := addLinePoints(p, xyPoints(sample.Sizes, s.times), s.color, s.label); err != nil {
			return nil, err
		}
	}

	lo := float64(sample.Sizes[0])
	hi := float64(sample.Sizes[len(sample.Sizes)-1])
	theory := floats.Span(make([]float64, 100), lo, hi)

	quadratic := make(plotter.XYs, 0, len(theory))
	nlogn := make(plotter.XYs, 0, len(theory))
	for _, n := range theory {
		k := n / 1000
		quadratic = append(quadratic, plotter.XY{X: n, Y: k * k * 10})
		// The guide hits zero at the first sample; a log axis cannot
		// place nonpositive values.
		if y := k * math.Log2(k) * 2; y > 0 {
			nlogn = append(nlogn, plotter.XY{X: n, Y: y})
		}
	}
	if err := addDashedLine(p, quadratic, guideRed, "Theoretical O(n²)"); err != nil {
		return nil, err
	}
	if err := addDashedLine(p, nlogn, guideGreen, "Theoretical O(n log n)"); err != nil {
		return nil, err
	}
	return p, nil
}

func sortingEfficientPanel(sample types.SortingSample) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "O(n log n) Algorithms Comparison"
	p.X.Label.Text = "Input Size (n)"
	p.Y.Label.Text = "Time (milliseconds)"
	p.Add(plotter.NewGrid())

	if err := addLinePoints(p, xyPoints(sample.Sizes, sample.Merge), colorGreen, "Merge Sort"); err != nil {
		return nil, err
	}
	if err := addLinePoints(p, xyPoints(sample.Sizes, sample.Quick), colorMagenta, "Quick Sort"); err != nil {
		return nil, err
	}
	return p, nil
}

func sortingGrowthPanel(sample types.SortingSample) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Performance Growth Rates"
	p.X.Label.Text = "Size Transition"
	p.Y.Label.Text = "Time Ratio (t[i+1]/t[i])"
	p.Add(plotter.NewGrid())

	width := vg.Points(14)
	bubble, err := plotter.NewBarChart(plotter.Values(dataset.GrowthRatios(sample.Bubble)), width)
	if err != nil {
		return nil, err
	}
	bubble.Color = barBlue
	bubble.Offset = -width / 2

	merge, err := plotter.NewBarChart(plotter.Values(dataset.GrowthRatios(sample.Merge)), width)
	if err != nil {
		return nil, err
	}
	merge.Color = barOrange
	merge.Offset = width / 2

	p.Add(bubble, merge)
	p.Legend.Add("Bubble Sort Growth Rate", bubble)
	p.Legend.Add("Merge Sort Growth Rate", merge)

	labels := make([]string, len(sample.Sizes)-1)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d->%d", sample.Sizes[i], sample.Sizes[i+1])
	}
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	return p, nil
}

// ---------- Search analysis ----------

func (c *Chart) searchPanels() ([][]*plot.Plot, error) {
	sample := c.searchSample()
	if err := validateSearchSample(sample); err != nil {
		return nil, err
	}

	comparison, err := searchComparisonPanel(sample)
	if err != nil {
		return nil, err
	}
	ratio, err := searchRatioPanel(sample)
	if err != nil {
		return nil, err
	}
	return [][]*plot.Plot{{comparison, ratio}}, nil
}

func searchComparisonPanel(sample types.SearchSample) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Search Algorithm Comparison"
	p.X.Label.Text = "Array Size (n)"
	p.Y.Label.Text = "Time (milliseconds)"
	p.Add(plotter.NewGrid())

	if err := addLinePoints(p, xyPoints(sample.Sizes, sample.Linear), colorRed, "Linear Search O(n)"); err != nil {
		return nil, err
	}
	if err := addLinePoints(p, xyPoints(sample.Sizes, sample.Binary), colorBlue, "Binary Search O(log n)"); err != nil {
		return nil, err
	}
	return p, nil
}

func searchRatioPanel(sample types.SearchSample) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Binary Search Efficiency Advantage"
	p.X.Label.Text = "Array Size (n)"
	p.Y.Label.Text = "Linear Time / Binary Time"
	p.Add(plotter.NewGrid())

	ratios := dataset.Ratio(sample.Linear, sample.Binary)
	if err := addLinePoints(p, xyPoints(sample.Sizes, ratios), colorGreen, ""); err != nil {
		return nil, err
	}

	// Annotations sit a few percent of the axis height above their points.
	offset := 0.03 * (floats.Max(ratios) - floats.Min(ratios))
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(ratios)),
		Labels: make([]string, len(ratios)),
	}
	for i, r := range ratios {
		xyl.XYs[i] = plotter.XY{X: float64(sample.Sizes[i]), Y: r + offset}
		xyl.Labels[i] = fmt.Sprintf("%.1fx", r)
	}
	annotations, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i := range annotations.TextStyle {
		annotations.TextStyle[i].XAlign = text.XCenter
		annotations.TextStyle[i].YAlign = text.YBottom
	}
	p.Add(annotations)
	return p, nil
}

// ---------- Fibonacci analysis ----------

func (c *Chart) fibonacciPanels() ([][]*plot.Plot, error) {
	sample := c.fibonacciSample()
	if err := validateFibonacciSample(sample); err != nil {
		return nil, err
	}

	calls, err := fibonacciCallsPanel(sample)
	if err != nil {
		return nil, err
	}
	times, err := fibonacciTimesPanel(sample)
	if err != nil {
		return nil, err
	}
	return [][]*plot.Plot{{calls, times}}, nil
}

func fibonacciCallsPanel(sample types.FibonacciSample) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Recursive Calls: Naive vs Memoized"
	p.X.Label.Text = "n (Fibonacci number)"
	p.Y.Label.Text = "Function Calls (log scale)"
	p.Add(plotter.NewGrid())
	logYAxis(p)

	if err := addLinePoints(p, xyPoints(sample.N, sample.NaiveCalls), colorRed, "Naive Fibonacci O(2ⁿ)"); err != nil {
		return nil, err
	}
	if err := addLinePoints(p, xyPoints(sample.N, sample.MemoCalls), colorBlue, "Memoized Fibonacci O(n)"); err != nil {
		return nil, err
	}
	return p, nil
}

func fibonacciTimesPanel(sample types.FibonacciSample) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Execution Time: Exponential vs Linear"
	p.X.Label.Text = "n (Fibonacci number)"
	p.Y.Label.Text = "Time (milliseconds, log scale)"
	p.Add(plotter.NewGrid())
	logYAxis(p)

	if err := addLinePoints(p, xyPoints(sample.N, sample.NaiveTime), colorRed, "Naive Fibonacci"); err != nil {
		return nil, err
	}
	if err := addLinePoints(p, xyPoints(sample.N, sample.MemoTime), colorBlue, "Memoized Fibonacci"); err != nil {
		return nil, err
	}

	last := len(sample.N) - 1
	slowdown := sample.NaiveTime[last] / sample.MemoTime[last]
	callout := plotter.XYLabels{
		XYs: plotter.XYs{{
			X: float64(sample.N[last-1]),
			Y: sample.NaiveTime[last] * 10,
		}},
		Labels: []string{fmt.Sprintf("n=%d: %.0fx slower!", sample.N[last], slowdown)},
	}
	annotation, err := plotter.NewLabels(callout)
	if err != nil {
		return nil, err
	}
	for i := range annotation.TextStyle {
		annotation.TextStyle[i].Color = colorRed
	}
	p.Add(annotation)
	return p, nil
}

// ---------- Complexity cheatsheet ----------

func (c *Chart) cheatsheetPanels() ([][]*plot.Plot, error) {
	p, err := cheatsheetPanel()
	if err != nil {
		return nil, err
	}
	return [][]*plot.Plot{{p}}, nil
}

func cheatsheetPanel() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Algorithm Complexity Comparison"
	p.X.Label.Text = "Input Size (n)"
	p.Y.Label.Text = "Operations / Time (arbitrary units)"
	p.Add(plotter.NewGrid())
	logXAxis(p)
	logYAxis(p)

	// The bands extend past the curve range, so the axes are pinned
	// rather than autoscaled.
	p.X.Min, p.X.Max = 1, 100000
	p.Y.Min, p.Y.Max = 0.5, 2e8

	bands := []struct {
		x0, x1 float64
		color  color.Color
		label  string
	}{
		{1, 100, bandGreen, "Small n: Simple algorithms OK"},
		{100, 10000, bandYellow, "Medium n: Efficiency matters"},
		{10000, 100000, bandRed, "Large n: Only efficient algorithms"},
	}
	polygons := make([]*plotter.Polygon, 0, len(bands))
	for _, b := range bands {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: b.x0, Y: p.Y.Min},
			{X: b.x1, Y: p.Y.Min},
			{X: b.x1, Y: p.Y.Max},
			{X: b.x0, Y: p.Y.Max},
		})
		if err != nil {
			return nil, err
		}
		poly.Color = b.color
		poly.LineStyle.Width = 0
		p.Add(poly)
		polygons = append(polygons, poly)
	}

	n := floats.LogSpan(make([]float64, 1000), 10, 10000)
	curves := []struct {
		label string
		f     func(x float64) float64
	}{
		{"O(1) - Hash table lookup", func(x float64) float64 { return 1 }},
		{"O(log n) - Binary search", math.Log2},
		{"O(n) - Linear search", func(x float64) float64 { return x }},
		{"O(n log n) - Merge/Quick sort", func(x float64) float64 { return x * math.Log2(x) }},
		{"O(n²) - Bubble/Insertion sort", func(x float64) float64 { return x * x }},
		// 2^(log2 n) reduces to n; the curve is plotted as captured.
		{"O(2ⁿ) - Naive Fibonacci", func(x float64) float64 { return math.Pow(2, math.Log2(x)) }},
	}
	for i, curve := range curves {
		pts := make(plotter.XYs, len(n))
		for j, x := range n {
			pts[j] = plotter.XY{X: x, Y: curve.f(x)}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Color = cycleColors[i%len(cycleColors)]
		line.Width = vg.Points(3)
		p.Add(line)
		p.Legend.Add(curve.label, line)
	}

	for i, b := range bands {
		p.Legend.Add(b.label, polygons[i])
	}
	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}
