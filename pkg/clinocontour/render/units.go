// Package render draws inclinometer surveys as filled contour plots.
package render

import "gonum.org/v1/plot/vg"

// Pixels converts a canvas length to device pixels at dpi.
// 1 inch = 72 points, so a 6 inch edge at 300 dpi is 1800 pixels.
func Pixels(l vg.Length, dpi int) int {
	return int(float64(l/vg.Inch)*float64(dpi) + 0.5)
}

// inches converts a length in inches to a canvas length.
func inches(v float64) vg.Length {
	return vg.Length(v) * vg.Inch
}
