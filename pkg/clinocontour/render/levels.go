package render

import (
	"math"
	"sort"
)

// stepMultipliers are the mantissas tried for a level step, smallest first.
var stepMultipliers = []float64{1, 2, 2.5, 5, 10}

// Levels returns evenly spaced band boundaries on a 1-2-2.5-5 step that cover [min, max]
// with at most n bands where possible. A zero-width range is widened so at least one band exists.
func Levels(min, max float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		pad := math.Abs(min) * 0.05
		if pad == 0 {
			pad = 0.5
		}
		min, max = min-pad, max+pad
	}

	raw := (max - min) / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))

	var step, lo, hi float64
	for _, m := range stepMultipliers {
		step = m * mag
		lo = math.Floor(min/step) * step
		hi = math.Ceil(max/step) * step
		if math.Round((hi-lo)/step) <= float64(n) {
			break
		}
	}

	count := int(math.Round((hi - lo) / step))
	if count < 1 {
		count = 1
	}
	// Multiply integer step counts so boundaries such as 0 come out exact.
	first := math.Round(lo / step)
	levels := make([]float64, count+1)
	for i := range levels {
		levels[i] = (first + float64(i)) * step
	}
	return levels
}

// bandIndex returns the band holding v: levels[i] <= v < levels[i+1].
// Values outside the levels are clamped to the first or last band.
func bandIndex(levels []float64, v float64) int {
	i := sort.Search(len(levels), func(i int) bool { return levels[i] > v }) - 1
	if i < 0 {
		return 0
	}
	if last := len(levels) - 2; i > last {
		return last
	}
	return i
}

// finiteRange returns the smallest and largest non-NaN, non-infinite values.
func finiteRange(values [][]float64) (min, max float64, ok bool) {
	for _, row := range values {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if !ok {
				min, max, ok = v, v, true
				continue
			}
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}
	return min, max, ok
}
