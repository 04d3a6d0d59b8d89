package render

import (
	"math"
	"sort"

	"github.com/ukaji3/clinocontour-go/pkg/clinocontour/models"
)

const (
	// singleDatePad is the half-width, in seconds, given to a survey with one date.
	singleDatePad = 12 * 60 * 60
	// singleDepthPad is the half-height, in metres, given to a survey with one depth.
	singleDepthPad = 0.5
)

// surface is a survey on ascending x (Unix seconds) and y (depth) axes.
type surface struct {
	xs []float64
	ys []float64
	z  [][]float64 // z[row][col], row indexes ys, col indexes xs
}

// newSurface orders the survey rows by depth. The survey is not modified.
func newSurface(s *models.Survey) surface {
	xs := make([]float64, len(s.Dates))
	for i, d := range s.Dates {
		xs[i] = float64(d.Unix())
	}

	order := make([]int, len(s.Depths))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return s.Depths[order[i]] < s.Depths[order[j]] })

	ys := make([]float64, len(order))
	z := make([][]float64, len(order))
	for i, src := range order {
		ys[i] = s.Depths[src]
		z[i] = s.Values[src]
	}
	return surface{xs: xs, ys: ys, z: z}
}

// extent returns the span of an ascending axis, padded when it holds a single value.
func extent(axis []float64, pad float64) (lo, hi float64) {
	lo, hi = axis[0], axis[len(axis)-1]
	if lo == hi {
		lo, hi = lo-pad, hi+pad
	}
	return lo, hi
}

// locate returns the cell index and fractional offset of v along an ascending axis.
func locate(axis []float64, v float64) (int, float64) {
	n := len(axis)
	if n == 1 || v <= axis[0] {
		return 0, 0
	}
	if v >= axis[n-1] {
		return n - 2, 1
	}
	// Knots land at fraction 0 of the cell they open.
	i := min(sort.Search(n, func(i int) bool { return axis[i] > v })-1, n-2)
	span := axis[i+1] - axis[i]
	if span == 0 {
		return i, 0
	}
	return i, (v - axis[i]) / span
}

// at bilinearly interpolates the surface at (x, y).
func (s surface) at(x, y float64) float64 {
	c, tx := locate(s.xs, x)
	r, ty := locate(s.ys, y)
	c1 := min(c+1, len(s.xs)-1)
	r1 := min(r+1, len(s.ys)-1)

	top := lerp(s.z[r][c], s.z[r][c1], tx)
	bottom := lerp(s.z[r1][c], s.z[r1][c1], tx)
	return lerp(top, bottom, ty)
}

func lerp(a, b, t float64) float64 {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return a + (b-a)*t
}

// bandGrid is a regular raster of band indices, indexed like plotter.GridXYZ.
type bandGrid struct {
	xs    []float64
	ys    []float64
	bands [][]float64
}

// resample samples the surface on an n×n regular raster and assigns each sample its band.
// Samples that interpolate to NaN stay NaN.
func resample(s surface, n int, levels []float64) *bandGrid {
	if n < 2 {
		n = 2
	}
	x0, x1 := extent(s.xs, singleDatePad)
	y0, y1 := extent(s.ys, singleDepthPad)

	g := &bandGrid{
		xs:    linspace(x0, x1, n),
		ys:    linspace(y0, y1, n),
		bands: make([][]float64, n),
	}
	for r, y := range g.ys {
		row := make([]float64, n)
		for c, x := range g.xs {
			v := s.at(x, y)
			if math.IsNaN(v) {
				row[c] = math.NaN()
				continue
			}
			row[c] = float64(bandIndex(levels, v))
		}
		g.bands[r] = row
	}
	return g
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

func (g *bandGrid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g *bandGrid) Z(c, r int) float64 { return g.bands[r][c] }
func (g *bandGrid) X(c int) float64    { return g.xs[c] }
func (g *bandGrid) Y(r int) float64    { return g.ys[r] }
