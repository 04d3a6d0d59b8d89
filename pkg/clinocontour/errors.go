package clinocontour

import (
	"errors"
	"fmt"

	"github.com/ukaji3/clinocontour-go/pkg/clinocontour/parser"
)

// ErrFileNotFound indicates the input file or directory does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not valid delimited text or a readable workbook.
var ErrInvalidFormat = parser.ErrInvalidFormat

// ErrMalformedDate indicates a header cell that is not a DD/MM/YYYY date.
var ErrMalformedDate = parser.ErrMalformedDate

// ErrMalformedNumber indicates a depth or reading that is not a real number.
var ErrMalformedNumber = parser.ErrMalformedNumber

// ErrShapeMismatch indicates ragged rows or axes that disagree with the value matrix.
var ErrShapeMismatch = parser.ErrShapeMismatch

// ErrUnsortedDates indicates unsorted header dates under strict column order.
var ErrUnsortedDates = parser.ErrUnsortedDates

// ErrOutputCollision indicates two inputs in one run that map to the same image path.
var ErrOutputCollision = errors.New("output path collision")

// ErrInvalidConfig indicates options that failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Stage names the pipeline step a PlotError occurred in.
type Stage string

const (
	StageRead   Stage = "read"
	StageDerive Stage = "derive"
	StageRender Stage = "render"
)

// PlotError represents a failure while plotting one input file.
type PlotError struct {
	File  string
	Stage Stage
	Err   error
}

func (e *PlotError) Error() string {
	return fmt.Sprintf("plot error in %q (%s): %v", e.File, e.Stage, e.Err)
}

func (e *PlotError) Unwrap() error {
	return e.Err
}

// NewPlotError creates a new PlotError.
func NewPlotError(file string, stage Stage, err error) *PlotError {
	return &PlotError{
		File:  file,
		Stage: stage,
		Err:   err,
	}
}
