package chart

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

func (c *Chart) sortingSample() types.SortingSample {
	c.configLock.Lock()
	defer c.configLock.Unlock()
	return c.sorting
}

func (c *Chart) searchSample() types.SearchSample {
	c.configLock.Lock()
	defer c.configLock.Unlock()
	return c.search
}

func (c *Chart) fibonacciSample() types.FibonacciSample {
	c.configLock.Lock()
	defer c.configLock.Unlock()
	return c.fibonacci
}

// Sample validation happens at render time, not in the setters, so a
// partially configured chart fails with an error instead of a panic.

func validateSortingSample(s types.SortingSample) error {
	n := len(s.Sizes)
	if n < 2 {
		return fmt.Errorf("sorting sample needs at least 2 sizes, have %d", n)
	}
	for _, series := range [][]float64{s.Bubble, s.Insertion, s.Merge, s.Quick} {
		if len(series) != n {
			return fmt.Errorf("sorting sample series length %d does not match %d sizes", len(series), n)
		}
	}
	return nil
}

func validateSearchSample(s types.SearchSample) error {
	n := len(s.Sizes)
	if n < 1 {
		return fmt.Errorf("search sample has no sizes")
	}
	if len(s.Linear) != n || len(s.Binary) != n {
		return fmt.Errorf("search sample series lengths %d/%d do not match %d sizes", len(s.Linear), len(s.Binary), n)
	}
	return nil
}

func validateFibonacciSample(s types.FibonacciSample) error {
	n := len(s.N)
	if n < 2 {
		return fmt.Errorf("fibonacci sample needs at least 2 n values, have %d", n)
	}
	for _, series := range [][]float64{s.NaiveCalls, s.MemoCalls, s.NaiveTime, s.MemoTime} {
		if len(series) != n {
			return fmt.Errorf("fibonacci sample series length %d does not match %d n values", len(series), n)
		}
	}
	return nil
}

// writePNG composes the panel grid onto one image canvas and writes it.
// A failed create is the output-directory error the CLI knows how to
// remediate; everything past that point is a plain render error.
func writePNG(path string, plots [][]*plot.Plot, width, height vg.Length) (int64, error) {
	img := vgimg.New(width, height)
	dc := draw.New(img)

	rows := len(plots)
	cols := 0
	for _, row := range plots {
		if len(row) > cols {
			cols = len(row)
		}
	}
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Points(12),
		PadY:      vg.Points(12),
		PadTop:    vg.Points(6),
		PadBottom: vg.Points(6),
		PadLeft:   vg.Points(6),
		PadRight:  vg.Points(6),
	}

	canvases := plot.Align(plots, tiles, dc)
	for i, row := range plots {
		for j, p := range row {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrOutputDir, err)
	}

	png := vgimg.PngCanvas{Canvas: img}
	n, err := png.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}
