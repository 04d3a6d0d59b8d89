package render

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// bandRaster draws a bandGrid as a single image, one pixel per sample, so a
// band is filled without seams between cells. Inverted axes are honoured.
// It implements plot.Plotter and plot.DataRanger.
type bandRaster struct {
	grid   *bandGrid
	colors []color.Color
	nan    color.Color
}

func newBandRaster(g *bandGrid, colors []color.Color) *bandRaster {
	return &bandRaster{grid: g, colors: colors, nan: color.Transparent}
}

// DataRange returns the grid extent widened by half a sample on each side,
// so every sample is centred on its pixel.
func (b *bandRaster) DataRange() (xmin, xmax, ymin, ymax float64) {
	cols, rows := b.grid.Dims()
	dx := (b.grid.X(cols-1) - b.grid.X(0)) / float64(cols-1) / 2
	dy := (b.grid.Y(rows-1) - b.grid.Y(0)) / float64(rows-1) / 2
	return b.grid.X(0) - dx, b.grid.X(cols-1) + dx, b.grid.Y(0) - dy, b.grid.Y(rows-1) + dy
}

func (b *bandRaster) Plot(c draw.Canvas, p *plot.Plot) {
	xmin, xmax, ymin, ymax := b.DataRange()
	trX, trY := p.Transforms(&c)
	x0, x1 := trX(xmin), trX(xmax)
	y0, y1 := trY(ymin), trY(ymax)

	cols, rows := b.grid.Dims()
	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for r := 0; r < rows; r++ {
		// Image row 0 is drawn at the top of the rectangle.
		py := rows - 1 - r
		if y0 > y1 {
			py = r
		}
		for col := 0; col < cols; col++ {
			px := col
			if x0 > x1 {
				px = cols - 1 - col
			}
			img.Set(px, py, b.color(b.grid.Z(col, r)))
		}
	}

	c.DrawImage(vg.Rectangle{
		Min: vg.Point{X: min(x0, x1), Y: min(y0, y1)},
		Max: vg.Point{X: max(x0, x1), Y: max(y0, y1)},
	}, img)
}

func (b *bandRaster) color(band float64) color.Color {
	if math.IsNaN(band) {
		return b.nan
	}
	i := min(max(int(band), 0), len(b.colors)-1)
	return b.colors[i]
}
