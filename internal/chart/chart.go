// Package chart draws candela distribution plots with gonum/plot.
package chart

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"ies-solid-renderer/internal/ies"
	"ies-solid-renderer/internal/mathutil"
	"ies-solid-renderer/internal/palette"
)

// MaxPlanes is the number of horizontal planes drawn before Planes starts
// picking representative ones.
const MaxPlanes = 6

// referencePlanes are the planes picked when a file has too many to draw.
var referencePlanes = []float64{0, 90, 180, 270}

// Planes returns the indices of the horizontal angles to plot. Up to
// MaxPlanes angles are all used; beyond that the angles nearest to 0°,
// 90°, 180° and 270° are chosen.
func Planes(horizontal []float64) []int {
	if len(horizontal) <= MaxPlanes {
		out := make([]int, len(horizontal))
		for i := range out {
			out[i] = i
		}
		return out
	}
	var out []int
	for _, ref := range referencePlanes {
		best := 0
		for i, h := range horizontal {
			if mathutil.AngleDist(h, ref) < mathutil.AngleDist(horizontal[best], ref) {
				best = i
			}
		}
		if !slices.Contains(out, best) {
			out = append(out, best)
		}
	}
	slices.Sort(out)
	return out
}

// Title returns a plot title from the document's labels.
func Title(doc *ies.Document) string {
	var parts []string
	for _, key := range []string{"MANUFAC", "LUMCAT", "LUMINAIRE"} {
		if v := doc.Labels.Get(key); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "Candela distribution"
	}
	return strings.Join(parts, " / ")
}

// CandelaPlot builds a plot of candela against vertical angle, one line
// per selected horizontal plane, coloured along ramp.
func CandelaPlot(doc *ies.Document, ramp *palette.Ramp) (*plot.Plot, error) {
	a := doc.Angles
	if len(a.Candelas) == 0 {
		return nil, fmt.Errorf("chart: %s has no candela data", doc.Filename)
	}
	if ramp == nil {
		ramp = palette.Default()
	}

	p := plot.New()
	p.Title.Text = Title(doc)
	p.X.Label.Text = "Vertical angle (°)"
	p.Y.Label.Text = "Intensity (cd)"
	p.X.Min = floats.Min(a.Vertical)
	p.X.Max = floats.Max(a.Vertical)
	p.Y.Min = 0
	p.Y.Max = floats.Max(a.Candelas) * 1.05
	if p.Y.Max == 0 {
		p.Y.Max = 1
	}
	p.Add(plotter.NewGrid())

	planes := Planes(a.Horizontal)
	for n, h := range planes {
		pts := make(plotter.XYs, len(a.Vertical))
		for v, angle := range a.Vertical {
			pts[v] = plotter.XY{X: angle, Y: a.At(h, v)}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("chart: plane %v: %w", a.Horizontal[h], err)
		}
		line.Color = lineColor(ramp, n, len(planes))
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("H %g°", a.Horizontal[h]), line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// WriteCandelaPlot saves the candela plot of doc. The format follows the
// file extension (.png, .svg, .pdf).
func WriteCandelaPlot(path string, doc *ies.Document, ramp *palette.Ramp) error {
	p, err := CandelaPlot(doc, ramp)
	if err != nil {
		return err
	}
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}
	return nil
}

// lineColor spreads n lines over the darker three quarters of the ramp so
// none is drawn near-white on the white background.
func lineColor(ramp *palette.Ramp, i, n int) color.Color {
	if n <= 1 {
		return ramp.At(0)
	}
	return ramp.At(0.75 * float64(i) / float64(n-1))
}
