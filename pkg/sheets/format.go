package sheets

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellStyle captures the formatting options the MCP tools expose.
type CellStyle struct {
	Bold     bool
	Italic   bool
	BgColor  string
	FontSize float64
}

// empty reports whether no formatting was requested.
func (cs CellStyle) empty() bool {
	return !cs.Bold && !cs.Italic && cs.BgColor == "" && cs.FontSize == 0
}

// FormatCells applies font and fill formatting to a range like "A1:B10".
func (s *Store) FormatCells(filename, sheet, cellRange string, style CellStyle) (*RangeFormatResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, opErr("format", filename, err)
	}
	defer f.Close()

	start, end, err := splitRange(cellRange)
	if err != nil {
		return nil, err
	}
	if err := applyStyle(f, sheet, start, end, style); err != nil {
		return nil, opErr("format", filename, err)
	}
	if err := f.Save(); err != nil {
		return nil, opErr("format", filename, err)
	}
	return &RangeFormatResult{Success: true, Range: cellRange}, nil
}

// SetCellFormat applies font and fill formatting to a single cell.
func (s *Store) SetCellFormat(filename, sheet, cell string, style CellStyle) (*CellFormatResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, opErr("format", filename, err)
	}
	defer f.Close()

	if err := applyStyle(f, sheet, cell, cell, style); err != nil {
		return nil, opErr("format", filename, err)
	}
	if err := f.Save(); err != nil {
		return nil, opErr("format", filename, err)
	}
	return &CellFormatResult{Success: true, Cell: cell}, nil
}

// SetColumnFormat sets the width of a column given by letter.
func (s *Store) SetColumnFormat(filename, sheet, column string, width float64) (*ColumnFormatResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, opErr("format", filename, err)
	}
	defer f.Close()

	if width > 0 {
		if err := f.SetColWidth(sheet, column, column, width); err != nil {
			return nil, opErr("format", filename, err)
		}
		if err := f.Save(); err != nil {
			return nil, opErr("format", filename, err)
		}
	}
	return &ColumnFormatResult{Success: true, Column: column}, nil
}

// SetRowFormat sets the height of a 1-based row.
func (s *Store) SetRowFormat(filename, sheet string, row int, height float64) (*RowFormatResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, opErr("format", filename, err)
	}
	defer f.Close()

	if height > 0 {
		if err := f.SetRowHeight(sheet, row, height); err != nil {
			return nil, opErr("format", filename, err)
		}
		if err := f.Save(); err != nil {
			return nil, opErr("format", filename, err)
		}
	}
	return &RowFormatResult{Success: true, Row: row}, nil
}

// applyStyle builds an excelize style from a CellStyle and applies it to the
// rectangle spanned by start and end.
func applyStyle(f *excelize.File, sheet, start, end string, cs CellStyle) error {
	if cs.empty() {
		return nil
	}

	style := &excelize.Style{}
	if cs.Bold || cs.Italic || cs.FontSize > 0 {
		style.Font = &excelize.Font{Bold: cs.Bold, Italic: cs.Italic, Size: cs.FontSize}
	}
	if cs.BgColor != "" {
		color, err := normalizeColor(cs.BgColor)
		if err != nil {
			return err
		}
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
	}

	styleID, err := f.NewStyle(style)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, start, end, styleID)
}

// normalizeColor converts "#RRGGBB", "RRGGBB", or "AARRGGBB" into the
// six-digit RGB hex excelize expects. Alpha digits are dropped.
func normalizeColor(color string) (string, error) {
	c := strings.ToUpper(strings.TrimPrefix(color, "#"))
	switch len(c) {
	case 6:
	case 8:
		c = c[2:]
	default:
		return "", fmt.Errorf("%w: %s (use #RRGGBB or AARRGGBB)", ErrInvalidColor, color)
	}
	for _, r := range c {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			return "", fmt.Errorf("%w: %s (use #RRGGBB or AARRGGBB)", ErrInvalidColor, color)
		}
	}
	return c, nil
}
