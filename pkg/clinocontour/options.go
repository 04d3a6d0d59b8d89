// Package clinocontour renders inclinometer survey tables as contour plots.
package clinocontour

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/ukaji3/clinocontour-go/pkg/clinocontour/models"
	"github.com/ukaji3/clinocontour-go/pkg/clinocontour/render"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by LoadOptions, e.g. CLINO_PLOT_LEVELS.
const EnvPrefix = "CLINO"

// Options configures a plotting run.
type Options struct {
	// Dir is scanned for input tables when no single input is given.
	// If empty, the current directory is scanned.
	Dir string `yaml:"dir" split_words:"true"`
	// OutputDir receives the images. If empty, each image is written next to its input.
	OutputDir string `yaml:"output_dir" split_words:"true"`
	// Sheet selects the workbook sheet for .xlsx inputs. If empty, the first sheet is used.
	Sheet string `yaml:"sheet" split_words:"true"`
	// ColumnOrder selects how unsorted header dates are handled.
	ColumnOrder models.ColumnOrder `yaml:"column_order" split_words:"true" validate:"oneof=sort strict"`
	// KeepGoing attempts every file in a directory run instead of stopping at the first failure.
	KeepGoing bool `yaml:"keep_going" split_words:"true"`
	// Plot is the rendering style.
	Plot render.Style `yaml:"plot" split_words:"true"`
}

// DefaultOptions returns default plotting options.
func DefaultOptions() Options {
	return Options{
		ColumnOrder: models.ColumnOrderSort,
		Plot:        render.DefaultStyle(),
	}
}

// LoadOptions builds options from defaults, an optional YAML file and the environment,
// in increasing order of precedence. An empty configPath skips the file.
func LoadOptions(configPath string) (Options, error) {
	opts := DefaultOptions()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return opts, fmt.Errorf("%w: %s", ErrFileNotFound, configPath)
			}
			return opts, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, configPath, err)
		}
	}

	// Unset variables leave the current value alone, so file values survive.
	if err := envconfig.Process(EnvPrefix, &opts); err != nil {
		return opts, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return opts, nil
}

var validate = validator.New()

// Validate checks option values.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
