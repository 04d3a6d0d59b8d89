package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/clinocontour-go/pkg/clinocontour/models"
)

// DateLayout accepts one- or two-digit day and month and a four-digit year.
const DateLayout = "2/1/2006"

// ParseDate parses the first whitespace-separated token of a header cell.
// Anything after the date, such as a time of day, is ignored.
func ParseDate(cell string) (time.Time, error) {
	fields := strings.Fields(cell)
	if len(fields) == 0 {
		return time.Time{}, ErrMalformedDate
	}
	t, err := time.Parse(DateLayout, fields[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrMalformedDate, err)
	}
	return t, nil
}

// ParseDates parses every header cell after the first and returns them ascending.
func ParseDates(header []string) ([]time.Time, error) {
	dates, err := headerDates(header)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// ParseDepths parses the first field of each data row.
func ParseDepths(data [][]string) ([]float64, error) {
	depths := make([]float64, 0, len(data))
	for i, row := range data {
		if len(row) == 0 {
			return nil, fmt.Errorf("%w: row %d is empty", ErrShapeMismatch, i+2)
		}
		v, err := parseNumber(row[0], i+2, 1)
		if err != nil {
			return nil, err
		}
		depths = append(depths, v)
	}
	return depths, nil
}

// ParseValues parses every field after the first of each data row.
// Each row must hold exactly width readings.
func ParseValues(data [][]string, width int) ([][]float64, error) {
	values := make([][]float64, 0, len(data))
	for i, row := range data {
		if len(row)-1 != width {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrShapeMismatch, i+2, len(row), width+1)
		}
		out := make([]float64, width)
		for j, cell := range row[1:] {
			v, err := parseNumber(cell, i+2, j+2)
			if err != nil {
				return nil, err
			}
			out[j] = v
		}
		values = append(values, out)
	}
	return values, nil
}

// Derive builds a Survey from a Table.
// Under ColumnOrderSort the value columns are permuted together with the dates;
// under ColumnOrderStrict unsorted header dates are rejected.
func Derive(t *models.Table, order models.ColumnOrder) (*models.Survey, error) {
	header := t.Header()
	if header == nil {
		return nil, fmt.Errorf("%w: empty table", ErrShapeMismatch)
	}
	data := t.Data()
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrShapeMismatch)
	}

	raw, err := headerDates(header)
	if err != nil {
		return nil, err
	}
	perm := ascendingOrder(raw)
	if order == models.ColumnOrderStrict && !isIdentity(perm) {
		return nil, ErrUnsortedDates
	}

	depths, err := ParseDepths(data)
	if err != nil {
		return nil, err
	}
	values, err := ParseValues(data, len(raw))
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, len(raw))
	for j, src := range perm {
		dates[j] = raw[src]
	}
	for i, row := range values {
		sorted := make([]float64, len(row))
		for j, src := range perm {
			sorted[j] = row[src]
		}
		values[i] = sorted
	}

	return &models.Survey{
		Name:   t.Name,
		Dates:  dates,
		Depths: depths,
		Values: values,
	}, nil
}

// headerDates parses the header date cells in file order.
func headerDates(header []string) ([]time.Time, error) {
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: header has no date columns", ErrShapeMismatch)
	}
	dates := make([]time.Time, len(header)-1)
	for i, cell := range header[1:] {
		t, err := ParseDate(cell)
		if err != nil {
			return nil, &CellError{Row: 1, Col: i + 2, Value: cell, Err: err}
		}
		dates[i] = t
	}
	return dates, nil
}

// ascendingOrder returns the source index of each date once sorted. Ties keep file order.
func ascendingOrder(dates []time.Time) []int {
	perm := make([]int, len(dates))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool { return dates[perm[i]].Before(dates[perm[j]]) })
	return perm
}

func isIdentity(perm []int) bool {
	for i, p := range perm {
		if i != p {
			return false
		}
	}
	return true
}

func parseNumber(cell string, row, col int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, &CellError{Row: row, Col: col, Value: cell, Err: ErrMalformedNumber}
	}
	return v, nil
}
