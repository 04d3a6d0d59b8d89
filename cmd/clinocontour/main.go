// Package main provides the CLI entry point for clinocontour.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/clinocontour-go/pkg/clinocontour"
	"github.com/ukaji3/clinocontour-go/pkg/clinocontour/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	inputPath   string
	configPath  string
	dir         string
	outputDir   string
	sheet       string
	columnOrder string
	keepGoing   bool
	levels      int
	dpi         int
	title       string
	colormap    string
	verbose     bool

	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clinocontour [input.csv|input.xlsx]",
		Short: "Render inclinometer survey tables as contour plots",
		Long: `clinocontour reads inclinometer surveys (depth rows, date columns)
from CSV or XLSX files and writes a filled contour plot for each as PNG.

With no input, every table in --dir (default: the executable's directory)
is plotted. Each image is named after its input, e.g. BH1.csv -> BH1.png.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&inputPath, "input", "i", "", "Input table (same as the positional argument)")
	flags.StringVar(&configPath, "config", "", "YAML configuration file")
	flags.StringVarP(&dir, "dir", "d", "", "Directory scanned when no input is given (default: executable directory)")
	flags.StringVarP(&outputDir, "out-dir", "o", "", "Directory for images (default: beside each input)")
	flags.StringVar(&sheet, "sheet", "", "Sheet to read from .xlsx inputs (default: first sheet)")
	flags.StringVar(&columnOrder, "column-order", string(models.ColumnOrderSort), "Unsorted header dates: sort (reorder columns) or strict (reject)")
	flags.BoolVar(&keepGoing, "keep-going", false, "Plot every file in the directory even if some fail")
	flags.IntVar(&levels, "levels", 10, "Number of contour bands")
	flags.IntVar(&dpi, "dpi", 300, "Output resolution in dots per inch")
	flags.StringVar(&title, "title", "Inclinometer Contour Plot", "Plot title")
	flags.StringVar(&colormap, "colormap", "bluered", "Colour map: bluered, blackbody, heat")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	input, err := resolveInput(args)
	if err != nil {
		return err
	}

	opts, err := clinocontour.LoadOptions(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlags(cmd, &opts)

	if input == "" && opts.Dir == "" {
		opts.Dir, err = executableDir()
		if err != nil {
			return err
		}
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	logger.Debug("options resolved",
		zap.String("input", input),
		zap.String("dir", opts.Dir),
		zap.String("output_dir", opts.OutputDir),
		zap.String("column_order", string(opts.ColumnOrder)),
		zap.Bool("keep_going", opts.KeepGoing))

	outputs, err := clinocontour.NewRunner(opts, logger).Run(input)
	for _, out := range outputs {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return err
}

func resolveInput(args []string) (string, error) {
	if len(args) == 1 {
		if inputPath != "" && inputPath != args[0] {
			return "", errors.New("input given both as argument and --input")
		}
		return args[0], nil
	}
	return inputPath, nil
}

// applyFlags overrides options with the flags set on the command line.
func applyFlags(cmd *cobra.Command, opts *clinocontour.Options) {
	flags := cmd.Flags()
	if flags.Changed("dir") {
		opts.Dir = dir
	}
	if flags.Changed("out-dir") {
		opts.OutputDir = outputDir
	}
	if flags.Changed("sheet") {
		opts.Sheet = sheet
	}
	if flags.Changed("column-order") {
		opts.ColumnOrder = models.ColumnOrder(columnOrder)
	}
	if flags.Changed("keep-going") {
		opts.KeepGoing = keepGoing
	}
	if flags.Changed("levels") {
		opts.Plot.Levels = levels
	}
	if flags.Changed("dpi") {
		opts.Plot.DPI = dpi
	}
	if flags.Changed("title") {
		opts.Plot.Title = title
	}
	if flags.Changed("colormap") {
		opts.Plot.Colormap = colormap
	}
}

// executableDir returns the directory holding the running binary.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	return filepath.Dir(exe), nil
}
