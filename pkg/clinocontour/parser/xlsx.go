package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukaji3/clinocontour-go/pkg/clinocontour/models"
	"github.com/xuri/excelize/v2"
)

// printAreaName is the defined name Excel uses for a sheet's print area.
const printAreaName = "_xlnm.Print_Area"

// headerDateLayout is the text form date-serial header cells are rewritten to.
const headerDateLayout = "02/01/2006"

// ReadXLSX reads one sheet of a workbook into a Table.
// The sheet is cropped to its print area if one is defined, otherwise to the
// bounding box of its non-empty cells. An empty sheet name selects the first sheet.
func ReadXLSX(path, sheet string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: sheet %q not found", ErrInvalidFormat, sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	table := &models.Table{Name: filepath.Base(path)}
	if region, ok := sheetRegion(f, sheet, rows); ok {
		table.Rows = cropRows(rows, region)
		convertHeaderSerials(f, sheet, region, table.Header())
	}
	return table, nil
}

// sheetRegion returns the cells holding the table: the sheet's print area when
// one is defined, otherwise the bounding box of its non-empty cells.
func sheetRegion(f *excelize.File, sheet string, rows [][]string) (models.Region, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		if region, ok := printArea(dn.RefersTo, sheet); ok {
			return region, true
		}
	}
	return dataBounds(rows)
}

// printArea returns the first range of a print area reference that lies on sheet.
// A reference looks like 'Sheet 1'!$A$1:$D$10, with further ranges comma separated.
func printArea(ref, sheet string) (models.Region, bool) {
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		bang := strings.LastIndex(part, "!")
		if bang < 0 || strings.Trim(part[:bang], "'") != sheet {
			continue
		}
		from, to, ok := strings.Cut(strings.ReplaceAll(part[bang+1:], "$", ""), ":")
		if !ok {
			continue
		}
		c1, r1, err := excelize.CellNameToCoordinates(from)
		if err != nil {
			continue
		}
		c2, r2, err := excelize.CellNameToCoordinates(to)
		if err != nil {
			continue
		}
		return models.Region{R1: r1, C1: c1, R2: r2, C2: c2}, true
	}
	return models.Region{}, false
}

// dataBounds returns the bounding box of the non-empty cells in rows.
func dataBounds(rows [][]string) (models.Region, bool) {
	var b models.Region
	found := false
	for r, row := range rows {
		for c, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if !found {
				b = models.Region{R1: r + 1, C1: c + 1, R2: r + 1, C2: c + 1}
				found = true
				continue
			}
			b.R1, b.R2 = min(b.R1, r+1), max(b.R2, r+1)
			b.C1, b.C2 = min(b.C1, c+1), max(b.C2, c+1)
		}
	}
	return b, found
}

// cropRows returns the cells of rows inside region.
// Missing trailing cells are not padded, so a short row stays short.
func cropRows(rows [][]string, region models.Region) [][]string {
	var out [][]string
	for r := region.R1 - 1; r < region.R2 && r < len(rows); r++ {
		row := rows[r]
		var cells []string
		for c := region.C1 - 1; c < region.C2 && c < len(row); c++ {
			cells = append(cells, row[c])
		}
		out = append(out, cells)
	}
	return out
}

// convertHeaderSerials rewrites date-formatted header cells as DD/MM/YYYY text.
// Numeric cells without a date format are left alone and fail date parsing.
func convertHeaderSerials(f *excelize.File, sheet string, region models.Region, header []string) {
	for i := 1; i < len(header); i++ {
		serial, err := strconv.ParseFloat(strings.TrimSpace(header[i]), 64)
		if err != nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(region.C1+i, region.R1)
		if err != nil || !isDateCell(f, sheet, cell) {
			continue
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			continue
		}
		header[i] = t.Format(headerDateLayout)
	}
}

// dateNumFmts are the built-in number formats that show a calendar date.
var dateNumFmts = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 57: true, 58: true,
}

// isDateCell reports whether cell's number format displays a date.
func isDateCell(f *excelize.File, sheet, cell string) bool {
	idx, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(idx)
	if err != nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return dateNumFmts[style.NumFmt]
}

// isDateFormatCode reports whether a custom format code has day or year tokens.
// Quoted literals, escapes and bracketed sections such as [Red] are skipped.
func isDateFormatCode(code string) bool {
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		switch ch := code[i]; {
		case inQuote:
			inQuote = ch != '"'
		case inBracket:
			inBracket = ch != ']'
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\':
			i++
		case ch == 'd', ch == 'D', ch == 'y', ch == 'Y':
			return true
		}
	}
	return false
}
