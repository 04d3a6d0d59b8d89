// Package parser reads inclinometer tables and derives survey axes from them.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Format identifies the reader used for an input file.
type Format string

const (
	// FormatCSV is comma-separated text.
	FormatCSV Format = "csv"
	// FormatXLSX is an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// markers are the name fragments that identify a table file, most specific first.
// Matching is on containment, not suffix, so "survey.csv.bak" is still a CSV.
var markers = []struct {
	marker string
	format Format
}{
	{".xlsx", FormatXLSX},
	{".csv", FormatCSV},
}

// outputExt is never treated as input so rendered images are not re-read.
const outputExt = ".png"

// lockPrefix starts the owner files Office writes beside open documents.
const lockPrefix = "~$"

// FormatOf returns the format whose marker appears in name, or "" if none does.
func FormatOf(name string) Format {
	lower := strings.ToLower(filepath.Base(name))
	if strings.HasSuffix(lower, outputExt) || strings.HasPrefix(lower, lockPrefix) {
		return ""
	}
	for _, m := range markers {
		if strings.Contains(lower, m.marker) {
			return m.format
		}
	}
	return ""
}

// IsTable reports whether path is a regular file carrying a table marker.
func IsTable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return FormatOf(path) != ""
}

// FindTables lists table files directly inside dir, sorted by name.
// Subdirectories are not descended into.
func FindTables(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if IsTable(path) {
			paths = append(paths, path)
		}
	}

	sort.Strings(paths)
	return paths, nil
}
