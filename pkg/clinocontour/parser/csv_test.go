package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	content := "Depth,01/01/2020 09:00,15/01/2020\n0.5,1.0,2.0\n1.0,3.0\n"
	path := filepath.Join(t.TempDir(), "bh1.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	table, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	if table.Name != "bh1.csv" {
		t.Errorf("Expected name 'bh1.csv', got %q", table.Name)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.Rows))
	}
	if table.Rows[0][1] != "01/01/2020 09:00" {
		t.Errorf("Expected raw header text, got %q", table.Rows[0][1])
	}
	// Ragged rows are kept as-is for derivation to reject.
	if len(table.Rows[2]) != 2 {
		t.Errorf("Expected short row to keep 2 fields, got %d", len(table.Rows[2]))
	}
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestReadCSVFromInvalid(t *testing.T) {
	_, err := ReadCSVFrom(strings.NewReader("Depth,\"01/01/2020\n1,2\n"), "bad.csv")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
}

func TestReadTableDispatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bh1.csv")
	if err := os.WriteFile(path, []byte("Depth,01/01/2020\n1,2\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	table, err := ReadTable(path, "ignored")
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(table.Rows))
	}
}
