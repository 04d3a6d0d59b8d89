package models

import "time"

// ColumnOrder selects how header dates that are not in ascending order are handled.
type ColumnOrder string

const (
	// ColumnOrderSort sorts the dates and permutes the value columns with them.
	ColumnOrderSort ColumnOrder = "sort"
	// ColumnOrderStrict requires the header dates to already be ascending.
	ColumnOrderStrict ColumnOrder = "strict"
)

// Survey is the derived form of a Table: one reading per (depth, date) pair.
type Survey struct {
	// Name is the source file name the survey was read from.
	Name string
	// Dates is the date axis, ascending.
	Dates []time.Time
	// Depths is the depth axis in data-row order.
	Depths []float64
	// Values holds one row per depth and one column per date.
	Values [][]float64
}

// Dims returns the number of depth rows and date columns.
func (s *Survey) Dims() (rows, cols int) {
	return len(s.Depths), len(s.Dates)
}
