package sheets

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadSpreadsheet returns cell data from a file. For xlsx the named sheet is
// read (active sheet when empty) and values are typed as int64, float64, or
// string. For csv the raw string records are returned. maxRows of 0 reads
// everything.
func (s *Store) ReadSpreadsheet(filename, sheet string, maxRows int) (*ReadResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case extXLSX:
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, opErr("read", filename, err)
		}
		defer f.Close()

		name := activeOrNamed(f, sheet)
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, opErr("read", filename, err)
		}
		if maxRows > 0 && len(rows) > maxRows {
			rows = rows[:maxRows]
		}
		data := typeRows(rows)
		return &ReadResult{
			Success:   true,
			Data:      data,
			SheetName: name,
			Rows:      len(data),
			Columns:   columnCount(data),
		}, nil

	default: // csv
		records, err := readCSV(path)
		if err != nil {
			return nil, opErr("read", filename, err)
		}
		if maxRows > 0 && len(records) > maxRows {
			records = records[:maxRows]
		}
		data := make([][]any, len(records))
		for i, rec := range records {
			row := make([]any, len(rec))
			for j, v := range rec {
				row[j] = v
			}
			data[i] = row
		}
		return &ReadResult{
			Success: true,
			Data:    data,
			Rows:    len(data),
			Columns: columnCount(data),
		}, nil
	}
}

// WriteSpreadsheet replaces or appends rows. For xlsx a named sheet is
// created when missing; without append the sheet is cleared first.
func (s *Store) WriteSpreadsheet(filename string, data [][]any, sheet string, appendRows bool) (*WriteResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case extXLSX:
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, opErr("write", filename, err)
		}
		defer f.Close()

		name := activeOrNamed(f, sheet)
		if sheet != "" && !hasSheet(f, sheet) {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, opErr("write", filename, err)
			}
		}

		start := 1
		if appendRows {
			existing, err := f.GetRows(name)
			if err != nil {
				return nil, opErr("write", filename, err)
			}
			start = len(existing) + 1
		} else if err := clearSheet(f, name); err != nil {
			return nil, opErr("write", filename, err)
		}

		for i, row := range data {
			cell, _ := excelize.CoordinatesToCellName(1, start+i)
			r := row
			if err := f.SetSheetRow(name, cell, &r); err != nil {
				return nil, opErr("write", filename, err)
			}
		}
		if err := f.Save(); err != nil {
			return nil, opErr("write", filename, err)
		}
		return &WriteResult{Success: true, RowsWritten: len(data), Sheet: name}, nil

	default: // csv
		flags := os.O_WRONLY | os.O_CREATE
		if appendRows {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		f, err := os.OpenFile(path, flags, 0o644)
		if err != nil {
			return nil, opErr("write", filename, err)
		}
		defer f.Close()

		w := csv.NewWriter(f)
		for _, row := range data {
			if err := w.Write(csvRecord(row)); err != nil {
				return nil, opErr("write", filename, err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, opErr("write", filename, err)
		}
		return &WriteResult{Success: true, RowsWritten: len(data)}, nil
	}
}

// AppendRow appends a single row after the last used row.
func (s *Store) AppendRow(filename string, row []any, sheet string) (*AppendResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case extXLSX:
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, opErr("append", filename, err)
		}
		defer f.Close()

		name := activeOrNamed(f, sheet)
		existing, err := f.GetRows(name)
		if err != nil {
			return nil, opErr("append", filename, err)
		}
		rowNum := len(existing) + 1
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return nil, opErr("append", filename, err)
		}
		if err := f.Save(); err != nil {
			return nil, opErr("append", filename, err)
		}
		return &AppendResult{Success: true, RowNumber: rowNum}, nil

	default: // csv
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, opErr("append", filename, err)
		}
		defer f.Close()

		w := csv.NewWriter(f)
		if err := w.Write(csvRecord(row)); err != nil {
			return nil, opErr("append", filename, err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, opErr("append", filename, err)
		}
		return &AppendResult{Success: true}, nil
	}
}

// UpdateCell sets a single cell value in an xlsx file.
func (s *Store) UpdateCell(filename, sheet, cell string, value any) (*CellValueResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, opErr("update", filename, err)
	}
	defer f.Close()

	name := activeOrNamed(f, sheet)
	if err := f.SetCellValue(name, cell, value); err != nil {
		return nil, opErr("update", filename, err)
	}
	if err := f.Save(); err != nil {
		return nil, opErr("update", filename, err)
	}
	return &CellValueResult{Success: true, Cell: cell, Value: value}, nil
}

// SetFormula writes a formula into a cell. A leading "=" is accepted and
// stripped before storage.
func (s *Store) SetFormula(filename, sheet, cell, formula string) (*FormulaResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, opErr("formula", filename, err)
	}
	defer f.Close()

	if err := f.SetCellFormula(sheet, cell, strings.TrimPrefix(formula, "=")); err != nil {
		return nil, opErr("formula", filename, err)
	}
	if err := f.Save(); err != nil {
		return nil, opErr("formula", filename, err)
	}
	return &FormulaResult{Success: true, Cell: cell, Formula: formula}, nil
}

// GetFormula returns the formula stored in a cell, or its plain value when
// the cell holds no formula.
func (s *Store) GetFormula(filename, sheet, cell string) (*FormulaValueResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, opErr("formula", filename, err)
	}
	defer f.Close()

	formula, err := f.GetCellFormula(sheet, cell)
	if err != nil {
		return nil, opErr("formula", filename, err)
	}
	if formula != "" {
		return &FormulaValueResult{Success: true, Cell: cell, FormulaOrValue: "=" + formula}, nil
	}

	value, err := f.GetCellValue(sheet, cell)
	if err != nil {
		return nil, opErr("formula", filename, err)
	}
	return &FormulaValueResult{Success: true, Cell: cell, FormulaOrValue: parseValue(value)}, nil
}

// clearSheet removes every used row from a sheet.
func clearSheet(f *excelize.File, sheet string) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}
	for i := 0; i < len(rows); i++ {
		if err := f.RemoveRow(sheet, 1); err != nil {
			return err
		}
	}
	return nil
}

// readCSV reads all records, tolerating ragged rows.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// csvRecord renders row values as csv fields.
func csvRecord(row []any) []string {
	rec := make([]string, len(row))
	for i, v := range row {
		rec[i] = csvField(v)
	}
	return rec
}

func csvField(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// columnCount returns the width of the first row, matching the original
// server's reporting.
func columnCount(data [][]any) int {
	if len(data) == 0 {
		return 0
	}
	return len(data[0])
}
