package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// bandColors returns n colours sampled evenly from the named colour map.
func bandColors(name string, n int) ([]color.Color, error) {
	// Palettes divide by n-1, so sample at least two colours.
	k := max(n, 2)

	var colors []color.Color
	switch name {
	case "bluered":
		colors = sample(moreland.SmoothBlueRed(), k)
	case "blackbody":
		colors = sample(moreland.BlackBody(), k)
	case "heat":
		colors = palette.Heat(k, 1).Colors()
	default:
		return nil, fmt.Errorf("unknown colormap %q", name)
	}
	return colors[:n], nil
}

func sample(cm palette.ColorMap, n int) []color.Color {
	cm.SetMin(0)
	cm.SetMax(1)
	return cm.Palette(n).Colors()
}

// bandPalette is a fixed list of colours. It implements palette.Palette.
type bandPalette []color.Color

func (p bandPalette) Colors() []color.Color { return p }

// bandColorMap maps a value to the colour of the band containing it.
// It implements palette.ColorMap so the colorbar shows discrete bands.
type bandColorMap struct {
	levels []float64
	colors []color.Color
	alpha  float64
}

func newBandColorMap(levels []float64, colors []color.Color) *bandColorMap {
	return &bandColorMap{levels: levels, colors: colors, alpha: 1}
}

func (m *bandColorMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < m.Min():
		return m.colors[0], palette.ErrUnderflow
	case v > m.Max():
		return m.colors[len(m.colors)-1], palette.ErrOverflow
	}
	return m.colors[bandIndex(m.levels, v)], nil
}

func (m *bandColorMap) Min() float64 { return m.levels[0] }
func (m *bandColorMap) Max() float64 { return m.levels[len(m.levels)-1] }

// SetMin and SetMax move the outer band edges; inner boundaries are fixed.
func (m *bandColorMap) SetMin(v float64) { m.levels[0] = v }
func (m *bandColorMap) SetMax(v float64) { m.levels[len(m.levels)-1] = v }

func (m *bandColorMap) Alpha() float64     { return m.alpha }
func (m *bandColorMap) SetAlpha(a float64) { m.alpha = a }

func (m *bandColorMap) Palette(n int) palette.Palette {
	if n < 2 {
		return bandPalette{m.colors[0]}
	}
	out := make(bandPalette, n)
	step := (m.Max() - m.Min()) / float64(n-1)
	for i := range out {
		c, _ := m.At(m.Min() + float64(i)*step)
		out[i] = c
	}
	return out
}
