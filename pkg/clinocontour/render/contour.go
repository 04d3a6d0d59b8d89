package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/ukaji3/clinocontour-go/pkg/clinocontour/models"
	"github.com/ukaji3/clinocontour-go/pkg/clinocontour/parser"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoReadings indicates a survey whose readings are all NaN or infinite.
var ErrNoReadings = errors.New("survey has no finite readings")

// colorbarShare is the fraction of the canvas width given to the colorbar.
const colorbarShare = 0.16

// colorbarSteps is the number of colorbar samples drawn per band.
const colorbarSteps = 32

// Render draws the survey as a filled contour plot with a colorbar.
// Dates run along x and depth runs down y, shallowest at the top.
func Render(s *models.Survey, st Style) (*vgimg.Canvas, error) {
	if err := checkShape(s); err != nil {
		return nil, err
	}
	zmin, zmax, ok := finiteRange(s.Values)
	if !ok {
		return nil, ErrNoReadings
	}

	levels := Levels(zmin, zmax, st.Levels)
	colors, err := bandColors(st.Colormap, len(levels)-1)
	if err != nil {
		return nil, err
	}
	grid := resample(newSurface(s), st.Resolution, levels)

	p := plot.New()
	p.Title.Text = st.Title
	p.X.Label.Text = st.XLabel
	p.Y.Label.Text = st.YLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: st.DateFormat}
	p.X.Tick.Label.Font.Size = vg.Points(st.TickLabelSize)
	p.X.Tick.Label.Rotation = st.TickRotation * math.Pi / 180
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	p.Add(newBandRaster(grid, colors))

	bar := plot.New()
	bar.HideX()
	bar.Y.Label.Text = st.ColorbarLabel
	bar.Y.Tick.Marker = levelTicks(levels)
	bar.Add(&plotter.ColorBar{
		ColorMap: newBandColorMap(levels, colors),
		Vertical: true,
		Colors:   len(colors) * colorbarSteps,
	})

	w, h := inches(st.Width), inches(st.Height)
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(st.DPI))
	dc := draw.New(img)

	barWidth := w * colorbarShare
	plotArea := draw.Crop(dc, 0, -barWidth, 0, 0)
	p.Draw(plotArea)

	// Line the colorbar up with the contour data area.
	data := p.DataCanvas(plotArea)
	barArea := draw.Crop(dc, w-barWidth, 0, 0, 0)
	barArea.Min.Y = data.Min.Y
	barArea.Max.Y = data.Max.Y
	bar.Draw(barArea)

	return img, nil
}

// WritePNG renders the survey and writes it to w as PNG.
func WritePNG(w io.Writer, s *models.Survey, st Style) error {
	img, err := Render(s, st)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG renders the survey to a PNG file at path.
// Nothing is left at path if rendering fails.
func SavePNG(path string, s *models.Survey, st Style) error {
	img, err := Render(s, st)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return f.Close()
}

// checkShape verifies the value matrix agrees with both axes.
func checkShape(s *models.Survey) error {
	rows, cols := s.Dims()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("%w: survey is %dx%d", parser.ErrShapeMismatch, rows, cols)
	}
	if len(s.Values) != rows {
		return fmt.Errorf("%w: %d value rows for %d depths", parser.ErrShapeMismatch, len(s.Values), rows)
	}
	for i, row := range s.Values {
		if len(row) != cols {
			return fmt.Errorf("%w: value row %d has %d columns for %d dates", parser.ErrShapeMismatch, i+1, len(row), cols)
		}
	}
	return nil
}

// levelTicks labels each band boundary on the colorbar.
func levelTicks(levels []float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(levels))
	for i, v := range levels {
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', 6, 64)}
	}
	return ticks
}
