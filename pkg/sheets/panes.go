package sheets

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// FreezePanes freezes rows and columns above and left of cell. "A2" freezes
// the top row, "B1" the first column, "B2" both.
func (s *Store) FreezePanes(filename, sheet, cell string) (*PanesResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, opErr("freeze", filename, err)
	}
	defer f.Close()

	if !hasSheet(f, sheet) {
		return &PanesResult{Success: false, Reason: fmt.Sprintf("Sheet %s not found", sheet)}, nil
	}

	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return nil, opErr("freeze", filename, err)
	}

	panes := &excelize.Panes{
		Freeze:      true,
		XSplit:      col - 1,
		YSplit:      row - 1,
		TopLeftCell: cell,
		ActivePane:  activePane(col-1, row-1),
	}
	if err := f.SetPanes(sheet, panes); err != nil {
		return nil, opErr("freeze", filename, err)
	}
	if err := f.Save(); err != nil {
		return nil, opErr("freeze", filename, err)
	}

	return &PanesResult{
		Success:    true,
		Sheet:      sheet,
		FreezeCell: cell,
		Message:    fmt.Sprintf("Frozen panes at %s", cell),
	}, nil
}

// UnfreezePanes removes any frozen panes from a sheet.
func (s *Store) UnfreezePanes(filename, sheet string) (*PanesResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, opErr("unfreeze", filename, err)
	}
	defer f.Close()

	if !hasSheet(f, sheet) {
		return &PanesResult{Success: false, Reason: fmt.Sprintf("Sheet %s not found", sheet)}, nil
	}
	if err := f.SetPanes(sheet, &excelize.Panes{Freeze: false, Split: false}); err != nil {
		return nil, opErr("unfreeze", filename, err)
	}
	if err := f.Save(); err != nil {
		return nil, opErr("unfreeze", filename, err)
	}

	return &PanesResult{Success: true, Sheet: sheet, Message: "Unfrozen panes"}, nil
}

// activePane picks the OOXML active pane for the given split offsets.
func activePane(xSplit, ySplit int) string {
	switch {
	case xSplit > 0 && ySplit > 0:
		return "bottomRight"
	case ySplit > 0:
		return "bottomLeft"
	case xSplit > 0:
		return "topRight"
	default:
		return "topLeft"
	}
}
