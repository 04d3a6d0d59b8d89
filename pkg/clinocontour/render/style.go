package render

// Style controls the appearance and size of a rendered plot.
type Style struct {
	Title         string `yaml:"title" split_words:"true"`
	XLabel        string `yaml:"x_label" split_words:"true"`
	YLabel        string `yaml:"y_label" split_words:"true"`
	ColorbarLabel string `yaml:"colorbar_label" split_words:"true"`
	// Levels is the requested number of contour bands.
	Levels int `yaml:"levels" split_words:"true" validate:"gte=1,lte=100"`
	// Width and Height are the canvas size in inches.
	Width  float64 `yaml:"width" split_words:"true" validate:"gt=0"`
	Height float64 `yaml:"height" split_words:"true" validate:"gt=0"`
	DPI    int     `yaml:"dpi" split_words:"true" validate:"gte=10,lte=1200"`
	// TickLabelSize is the x tick label font size in points.
	TickLabelSize float64 `yaml:"tick_label_size" split_words:"true" validate:"gt=0"`
	// TickRotation is the x tick label angle in degrees.
	TickRotation float64 `yaml:"tick_rotation" split_words:"true" validate:"gte=0,lte=90"`
	DateFormat   string  `yaml:"date_format" split_words:"true" validate:"required"`
	Colormap     string  `yaml:"colormap" split_words:"true" validate:"oneof=bluered blackbody heat"`
	// Resolution is the number of raster samples per axis used to fill the bands.
	Resolution int `yaml:"resolution" split_words:"true" validate:"gte=2,lte=2000"`
}

// DefaultStyle returns the standard inclinometer plot style:
// ten bands on a 6x4 inch canvas at 300 dpi.
func DefaultStyle() Style {
	return Style{
		Title:         "Inclinometer Contour Plot",
		YLabel:        "Depth (m)",
		ColorbarLabel: "Inclination",
		Levels:        10,
		Width:         6,
		Height:        4,
		DPI:           300,
		TickLabelSize: 8,
		TickRotation:  30,
		DateFormat:    "02/01/2006",
		Colormap:      "bluered",
		Resolution:    240,
	}
}

// PixelSize returns the output image size in pixels.
func (s Style) PixelSize() (width, height int) {
	return Pixels(inches(s.Width), s.DPI), Pixels(inches(s.Height), s.DPI)
}
