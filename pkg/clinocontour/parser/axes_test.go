package parser

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ukaji3/clinocontour-go/pkg/clinocontour/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"15/01/2020", date(2020, 1, 15), false},
		{"1/2/2020", date(2020, 2, 1), false},
		{"15/01/2020 09:30:00", date(2020, 1, 15), false},
		{"  03/04/2021\tAM", date(2021, 4, 3), false},
		{"not-a-date", time.Time{}, true},
		{"2020-01-15", time.Time{}, true},
		{"31/02/2020", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrMalformedDate) {
				t.Errorf("ParseDate(%q) error = %v, expected ErrMalformedDate", tt.input, err)
			}
			continue
		}
		if err != nil || !got.Equal(tt.expected) {
			t.Errorf("ParseDate(%q) = %v, %v, expected %v", tt.input, got, err, tt.expected)
		}
	}
}

func TestParseDatesSortsAscending(t *testing.T) {
	header := []string{"Depth", "01/01/2020", "15/01/2020", "10/01/2020"}

	dates, err := ParseDates(header)
	if err != nil {
		t.Fatalf("ParseDates failed: %v", err)
	}

	expected := []time.Time{date(2020, 1, 1), date(2020, 1, 10), date(2020, 1, 15)}
	if !reflect.DeepEqual(dates, expected) {
		t.Errorf("ParseDates = %v, expected %v", dates, expected)
	}
	if len(dates) != len(header)-1 {
		t.Errorf("Expected %d dates, got %d", len(header)-1, len(dates))
	}

	// Sorting an already sorted axis changes nothing.
	again, err := ParseDates([]string{"Depth", "01/01/2020", "10/01/2020", "15/01/2020"})
	if err != nil {
		t.Fatalf("ParseDates failed: %v", err)
	}
	if !reflect.DeepEqual(again, dates) {
		t.Errorf("Sorting is not idempotent: %v vs %v", again, dates)
	}
}

func TestParseDatesMalformed(t *testing.T) {
	_, err := ParseDates([]string{"Depth", "01/01/2020", "not-a-date"})
	if !errors.Is(err, ErrMalformedDate) {
		t.Fatalf("Expected ErrMalformedDate, got %v", err)
	}

	var cellErr *CellError
	if !errors.As(err, &cellErr) {
		t.Fatalf("Expected *CellError, got %T", err)
	}
	if cellErr.Row != 1 || cellErr.Col != 3 || cellErr.Value != "not-a-date" {
		t.Errorf("Unexpected location: %+v", cellErr)
	}
}

func TestParseDepths(t *testing.T) {
	data := [][]string{{"1.0", "0"}, {" 2.5 ", "0"}, {"5", "0"}}

	depths, err := ParseDepths(data)
	if err != nil {
		t.Fatalf("ParseDepths failed: %v", err)
	}
	expected := []float64{1.0, 2.5, 5.0}
	if !reflect.DeepEqual(depths, expected) {
		t.Errorf("ParseDepths = %v, expected %v", depths, expected)
	}

	if _, err := ParseDepths([][]string{{"deep", "0"}}); !errors.Is(err, ErrMalformedNumber) {
		t.Errorf("Expected ErrMalformedNumber, got %v", err)
	}
}

func TestParseValuesRagged(t *testing.T) {
	data := [][]string{{"1", "0.1", "0.2"}, {"2", "0.3"}}

	_, err := ParseValues(data, 2)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch, got %v", err)
	}
}

func TestDerive(t *testing.T) {
	table := &models.Table{
		Name: "bh1.csv",
		Rows: [][]string{
			{"Depth", "01/01/2020", "15/01/2020", "10/01/2020"},
			{"1.0", "0.1", "0.3", "0.2"},
			{"2.5", "1.1", "1.3", "1.2"},
			{"5.0", "2.1", "2.3", "2.2"},
		},
	}

	survey, err := Derive(table, models.ColumnOrderSort)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	rows, cols := survey.Dims()
	if rows != 3 || cols != 3 {
		t.Fatalf("Dims = (%d, %d), expected (3, 3)", rows, cols)
	}
	if !reflect.DeepEqual(survey.Depths, []float64{1.0, 2.5, 5.0}) {
		t.Errorf("Depths = %v", survey.Depths)
	}
	expectedDates := []time.Time{date(2020, 1, 1), date(2020, 1, 10), date(2020, 1, 15)}
	if !reflect.DeepEqual(survey.Dates, expectedDates) {
		t.Errorf("Dates = %v, expected %v", survey.Dates, expectedDates)
	}
	// Columns move with their dates.
	expectedValues := [][]float64{
		{0.1, 0.2, 0.3},
		{1.1, 1.2, 1.3},
		{2.1, 2.2, 2.3},
	}
	if !reflect.DeepEqual(survey.Values, expectedValues) {
		t.Errorf("Values = %v, expected %v", survey.Values, expectedValues)
	}
	// The source table is not mutated.
	if table.Rows[1][2] != "0.3" {
		t.Errorf("Derive mutated the table: %v", table.Rows[1])
	}
}

func TestDeriveStrict(t *testing.T) {
	sorted := &models.Table{Rows: [][]string{
		{"Depth", "01/01/2020", "10/01/2020"},
		{"1", "0.1", "0.2"},
	}}
	if _, err := Derive(sorted, models.ColumnOrderStrict); err != nil {
		t.Errorf("Derive(strict) on sorted header failed: %v", err)
	}

	unsorted := &models.Table{Rows: [][]string{
		{"Depth", "10/01/2020", "01/01/2020"},
		{"1", "0.1", "0.2"},
	}}
	if _, err := Derive(unsorted, models.ColumnOrderStrict); !errors.Is(err, ErrUnsortedDates) {
		t.Errorf("Expected ErrUnsortedDates, got %v", err)
	}
}

func TestDeriveErrors(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected error
	}{
		{"empty table", nil, ErrShapeMismatch},
		{"header only", [][]string{{"Depth", "01/01/2020"}}, ErrShapeMismatch},
		{"no date columns", [][]string{{"Depth"}, {"1"}}, ErrShapeMismatch},
		{"bad date", [][]string{{"Depth", "not-a-date"}, {"1", "2"}}, ErrMalformedDate},
		{"bad depth", [][]string{{"Depth", "01/01/2020"}, {"x", "2"}}, ErrMalformedNumber},
		{"bad reading", [][]string{{"Depth", "01/01/2020"}, {"1", "n/a"}}, ErrMalformedNumber},
		{"long row", [][]string{{"Depth", "01/01/2020"}, {"1", "2", "3"}}, ErrShapeMismatch},
		{"short row", [][]string{{"Depth", "01/01/2020", "02/01/2020"}, {"1", "2", "3"}, {"2", "4"}}, ErrShapeMismatch},
	}

	for _, tt := range tests {
		_, err := Derive(&models.Table{Rows: tt.rows}, models.ColumnOrderSort)
		if !errors.Is(err, tt.expected) {
			t.Errorf("%s: Derive error = %v, expected %v", tt.name, err, tt.expected)
		}
	}
}
