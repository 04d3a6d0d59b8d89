package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/clinocontour-go/pkg/clinocontour/models"
)

// ReadCSV reads a comma-separated file into a Table.
func ReadCSV(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSVFrom(f, filepath.Base(path))
}

// ReadCSVFrom reads comma-separated records from r.
// Rows may have differing field counts; the shape is checked during derivation.
func ReadCSVFrom(r io.Reader, name string) (*models.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = ','
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	return &models.Table{Name: name, Rows: rows}, nil
}

// ReadTable reads path with the reader matching its marker.
// sheet is only used for workbooks; empty selects the first sheet.
func ReadTable(path, sheet string) (*models.Table, error) {
	if FormatOf(path) == FormatXLSX {
		return ReadXLSX(path, sheet)
	}
	return ReadCSV(path)
}
