package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDate indicates a header cell that is not a DD/MM/YYYY date.
	ErrMalformedDate = errors.New("malformed date")
	// ErrMalformedNumber indicates a data cell that is not a real number.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrShapeMismatch indicates rows whose field counts do not form a rectangular grid.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrInvalidFormat indicates input that could not be read as delimited text or a workbook.
	ErrInvalidFormat = errors.New("invalid table format")
	// ErrUnsortedDates indicates header dates that are not ascending under strict column order.
	ErrUnsortedDates = errors.New("dates not in ascending order")
)

// CellError locates a parse failure within a table.
type CellError struct {
	Row   int // 1-based
	Col   int // 1-based
	Value string
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %d: %q: %v", e.Row, e.Col, e.Value, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
