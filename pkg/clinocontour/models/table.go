// Package models defines the data structures shared by the parser and renderer.
package models

// Table is a rectangular-ish grid of raw text fields read from an input file.
type Table struct {
	// Name is the source file name (no path).
	Name string
	// Rows holds every record in file order. Rows[0] is the header row.
	Rows [][]string
}

// Header returns the first row, or nil for an empty table.
func (t *Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Data returns the rows after the header.
func (t *Table) Data() [][]string {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}
