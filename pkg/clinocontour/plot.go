package clinocontour

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/clinocontour-go/pkg/clinocontour/parser"
	"github.com/ukaji3/clinocontour-go/pkg/clinocontour/render"
	"go.uber.org/zap"
)

// Runner plots input tables according to its options.
type Runner struct {
	opts Options
	log  *zap.Logger
}

// NewRunner creates a Runner. A nil logger discards log output.
func NewRunner(opts Options, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{opts: opts, log: log}
}

// Plot renders a single input file with opts and returns the image path.
func Plot(path string, opts Options) (string, error) {
	return NewRunner(opts, nil).PlotFile(path)
}

// OutputPath returns the image path for an input: the input name with its
// extension replaced by .png, in OutputDir or beside the input.
func (r *Runner) OutputPath(input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dir := r.opts.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, stem+".png")
}

// PlotFile reads, derives and renders one input file.
func (r *Runner) PlotFile(path string) (string, error) {
	log := r.log.With(zap.String("file", path))

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", NewPlotError(path, StageRead, fmt.Errorf("%w: %s", ErrFileNotFound, path))
		}
		return "", NewPlotError(path, StageRead, err)
	}
	if info.IsDir() {
		return "", NewPlotError(path, StageRead, fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path))
	}

	table, err := parser.ReadTable(path, r.opts.Sheet)
	if err != nil {
		return "", NewPlotError(path, StageRead, err)
	}
	log.Debug("table read", zap.Int("rows", len(table.Rows)))

	survey, err := parser.Derive(table, r.opts.ColumnOrder)
	if err != nil {
		return "", NewPlotError(path, StageDerive, err)
	}
	depths, dates := survey.Dims()
	log.Debug("survey derived", zap.Int("depths", depths), zap.Int("dates", dates))

	out := r.OutputPath(path)
	if r.opts.OutputDir != "" {
		if err := os.MkdirAll(r.opts.OutputDir, 0755); err != nil {
			return "", NewPlotError(path, StageRender, err)
		}
	}
	if err := render.SavePNG(out, survey, r.opts.Plot); err != nil {
		return "", NewPlotError(path, StageRender, err)
	}

	w, h := r.opts.Plot.PixelSize()
	log.Info("plot written", zap.String("output", out), zap.Int("width", w), zap.Int("height", h))
	return out, nil
}

// PlotDir plots every table found directly in dir, in name order.
// By default the first failure stops the run; with KeepGoing every file is
// attempted and the failures are returned joined.
func (r *Runner) PlotDir(dir string) ([]string, error) {
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, dir)
	}

	paths, err := parser.FindTables(dir)
	if err != nil {
		return nil, err
	}
	r.log.Info("tables discovered", zap.String("dir", dir), zap.Int("count", len(paths)))

	collisions := r.outputCollisions(paths)
	if !r.opts.KeepGoing {
		for _, path := range paths {
			if err := collisions[path]; err != nil {
				return nil, err
			}
		}
	}

	var outputs []string
	var errs []error
	for _, path := range paths {
		if err := collisions[path]; err != nil {
			r.log.Error("plot skipped", zap.String("file", path), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		out, err := r.PlotFile(path)
		if err != nil {
			if !r.opts.KeepGoing {
				return outputs, err
			}
			r.log.Error("plot failed", zap.String("file", path), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		outputs = append(outputs, out)
	}

	return outputs, errors.Join(errs...)
}

// outputCollisions reports every input whose image path is shared with another input.
// Such inputs are never rendered.
func (r *Runner) outputCollisions(paths []string) map[string]error {
	byOutput := make(map[string][]string, len(paths))
	for _, path := range paths {
		out := r.OutputPath(path)
		byOutput[out] = append(byOutput[out], path)
	}

	collisions := make(map[string]error)
	for out, inputs := range byOutput {
		if len(inputs) < 2 {
			continue
		}
		for _, path := range inputs {
			err := fmt.Errorf("%w: %s is also written by %s", ErrOutputCollision, out, strings.Join(others(inputs, path), ", "))
			collisions[path] = NewPlotError(path, StageRender, err)
		}
	}
	return collisions
}

func others(all []string, self string) []string {
	var out []string
	for _, s := range all {
		if s != self {
			out = append(out, filepath.Base(s))
		}
	}
	return out
}

// Run plots input when given, otherwise every table in the configured directory.
func (r *Runner) Run(input string) ([]string, error) {
	if input != "" {
		out, err := r.PlotFile(input)
		if err != nil {
			return nil, err
		}
		return []string{out}, nil
	}
	dir := r.opts.Dir
	if dir == "" {
		dir = "."
	}
	return r.PlotDir(dir)
}
