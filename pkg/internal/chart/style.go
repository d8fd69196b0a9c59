package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Series palette. Solid colors for measured series, half-transparent for
// the theoretical guides, light fills for the cheatsheet bands.
var (
	colorRed     = color.RGBA{R: 255, A: 255}
	colorBlue    = color.RGBA{B: 255, A: 255}
	colorGreen   = color.RGBA{G: 128, A: 255}
	colorMagenta = color.RGBA{R: 255, B: 255, A: 255}

	guideRed   = color.NRGBA{R: 255, A: 128}
	guideGreen = color.NRGBA{G: 128, A: 128}

	barBlue   = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 179}
	barOrange = color.NRGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 179}

	bandGreen  = color.NRGBA{G: 128, A: 26}
	bandYellow = color.NRGBA{R: 255, G: 255, A: 26}
	bandRed    = color.NRGBA{R: 255, A: 26}
)

// cycleColors are the cheatsheet curve colors, in add order.
var cycleColors = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 255},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 255},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 255},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 255},
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 255},
}

// xyPoints pairs integer x samples with float y samples.
func xyPoints(xs []int, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(ys))
	for i := range pts {
		pts[i].X = float64(xs[i])
		pts[i].Y = ys[i]
	}
	return pts
}

// addLinePoints draws one measured series as a line with circle markers
// and registers it on the legend when a label is given.
func addLinePoints(p *plot.Plot, pts plotter.XYs, c color.Color, label string) error {
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.Color = c
	line.Width = vg.Points(2)
	points.Color = c
	points.Shape = draw.CircleGlyph{}
	points.Radius = vg.Points(3)

	p.Add(line, points)
	if label != "" {
		p.Legend.Add(label, line, points)
	}
	return nil
}

// addDashedLine draws a theoretical guide.
func addDashedLine(p *plot.Plot, pts plotter.XYs, c color.Color, label string) error {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = c
	line.Width = vg.Points(1.5)
	line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	p.Add(line)
	if label != "" {
		p.Legend.Add(label, line)
	}
	return nil
}

func logXAxis(p *plot.Plot) {
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
}

func logYAxis(p *plot.Plot) {
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
}
