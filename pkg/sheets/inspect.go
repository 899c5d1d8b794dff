package sheets

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// tableParams tunes the table candidate heuristic.
type tableParams struct {
	densityMin       float64
	minNonemptyCells int
}

func defaultTableParams() tableParams {
	return tableParams{densityMin: 0.04, minNonemptyCells: 3}
}

// DescribeSpreadsheet summarizes a file: per-sheet dimensions, non-empty
// cell counts, and ranges that look like tables.
func (s *Store) DescribeSpreadsheet(filename string) (*DescribeResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	result := &DescribeResult{Success: true, Filename: filepath.Base(path)}

	switch format {
	case extXLSX:
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, opErr("describe", filename, err)
		}
		defer f.Close()

		for _, name := range f.GetSheetList() {
			rows, err := f.GetRows(name)
			if err != nil {
				return nil, opErr("describe", filename, err)
			}
			result.Sheets = append(result.Sheets, summarizeRows(name, rows))
		}

	default: // csv
		records, err := readCSV(path)
		if err != nil {
			return nil, opErr("describe", filename, err)
		}
		result.Sheets = append(result.Sheets, summarizeRows("", records))
	}

	return result, nil
}

// summarizeRows builds a SheetSummary from raw string rows.
func summarizeRows(name string, rows [][]string) SheetSummary {
	summary := SheetSummary{Name: name, Rows: len(rows)}
	for _, row := range rows {
		if len(row) > summary.Columns {
			summary.Columns = len(row)
		}
		for _, cell := range row {
			if cell != "" {
				summary.NonEmptyCells++
			}
		}
	}
	summary.TableCandidates = detectTables(rows, defaultTableParams())
	return summary
}

// detectTables finds ranges likely holding tabular data. The bounding box of
// all non-empty cells qualifies when it is dense enough.
func detectTables(rows [][]string, params tableParams) []string {
	minRow, maxRow, minCol, maxCol := dataBounds(rows)
	if minRow < 0 {
		return nil
	}

	total := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmpty := 0
	for r := minRow; r <= maxRow && r < len(rows); r++ {
		row := rows[r]
		for c := minCol; c <= maxCol && c < len(row); c++ {
			if row[c] != "" {
				nonEmpty++
			}
		}
	}

	if nonEmpty < params.minNonemptyCells {
		return nil
	}
	if float64(nonEmpty)/float64(total) < params.densityMin {
		return nil
	}

	start, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	end, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	return []string{fmt.Sprintf("%s:%s", start, end)}
}

// dataBounds finds the 0-based bounding box of non-empty cells. All values
// are -1 when the rows hold no data.
func dataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow, minCol, maxCol = -1, -1, -1, -1
	for r, row := range rows {
		for c, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = r
			}
			maxRow = r
			if minCol < 0 || c < minCol {
				minCol = c
			}
			if c > maxCol {
				maxCol = c
			}
		}
	}
	return
}
