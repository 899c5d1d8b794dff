package sheets

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ListFiles lists xlsx and csv files in the base directory matching the
// glob pattern (default "*").
func (s *Store) ListFiles(pattern string) (*ListFilesResult, error) {
	if pattern == "" {
		pattern = "*"
	}
	if strings.ContainsRune(pattern, filepath.Separator) || strings.Contains(pattern, "..") {
		return nil, ErrPathTraversal
	}
	matches, err := filepath.Glob(filepath.Join(s.baseDir, pattern))
	if err != nil {
		return nil, opErr("list", pattern, err)
	}

	files := []FileInfo{}
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != extXLSX && ext != extCSV {
			continue
		}
		files = append(files, FileInfo{
			Name: filepath.Base(path),
			Size: info.Size(),
			Type: ext,
		})
	}
	return &ListFilesResult{Success: true, Files: files, Count: len(files)}, nil
}

// CreateSpreadsheet creates a new xlsx or csv file. The format extension is
// appended when the filename lacks it. headers, when given, becomes a bold
// header row (xlsx) or the first csv record.
func (s *Store) CreateSpreadsheet(filename, format string, headers []string, sheetName string) (*CreateResult, error) {
	if format == "" {
		format = "xlsx"
	}
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	if !strings.HasSuffix(filename, "."+format) {
		filename = filename + "." + format
	}

	path, err := s.resolve(filename)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err == nil {
		return &CreateResult{Success: false, Reason: fmt.Sprintf("File %s already exists", filename)}, nil
	}

	switch format {
	case "xlsx":
		f := excelize.NewFile()
		defer f.Close()
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			return nil, opErr("create", filename, err)
		}
		if len(headers) > 0 {
			row := make([]any, len(headers))
			for i, h := range headers {
				row[i] = h
			}
			if err := f.SetSheetRow(sheetName, "A1", &row); err != nil {
				return nil, opErr("create", filename, err)
			}
			styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
			if err != nil {
				return nil, opErr("create", filename, err)
			}
			end, _ := excelize.CoordinatesToCellName(len(headers), 1)
			if err := f.SetCellStyle(sheetName, "A1", end, styleID); err != nil {
				return nil, opErr("create", filename, err)
			}
		}
		if err := f.SaveAs(path); err != nil {
			return nil, opErr("create", filename, err)
		}
	case "csv":
		f, err := os.Create(path)
		if err != nil {
			return nil, opErr("create", filename, err)
		}
		defer f.Close()
		if len(headers) > 0 {
			w := csv.NewWriter(f)
			if err := w.Write(headers); err != nil {
				return nil, opErr("create", filename, err)
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return nil, opErr("create", filename, err)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %s (use xlsx or csv)", ErrUnsupportedFormat, format)
	}

	s.logger.Info("created spreadsheet", "file", filename, "format", format)
	return &CreateResult{Success: true, Filename: filename, Path: path}, nil
}

// RenameFile renames a spreadsheet within the base directory.
func (s *Store) RenameFile(oldName, newName string) (*RenameFileResult, error) {
	oldPath, err := s.resolveExisting(oldName)
	if err != nil {
		return nil, err
	}
	newPath, err := s.resolve(newName)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(newPath); err == nil {
		return &RenameFileResult{Success: false, Reason: "Target filename already exists"}, nil
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return nil, opErr("rename", oldName, err)
	}
	return &RenameFileResult{Success: true, Old: filepath.Base(oldPath), New: filepath.Base(newPath)}, nil
}

// RenameSheet renames a worksheet inside an xlsx file.
func (s *Store) RenameSheet(filename, oldSheet, newSheet string) (*RenameSheetResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, opErr("rename sheet", filename, err)
	}
	defer f.Close()

	if !hasSheet(f, oldSheet) {
		return &RenameSheetResult{Success: false, Reason: fmt.Sprintf("Sheet %s not found", oldSheet)}, nil
	}
	if err := f.SetSheetName(oldSheet, newSheet); err != nil {
		return nil, opErr("rename sheet", filename, err)
	}
	if err := f.Save(); err != nil {
		return nil, opErr("rename sheet", filename, err)
	}
	return &RenameSheetResult{Success: true, File: filepath.Base(path), Sheet: newSheet}, nil
}

// DeleteSpreadsheet removes a spreadsheet file.
func (s *Store) DeleteSpreadsheet(filename string) (*DeleteResult, error) {
	path, err := s.resolveExisting(filename)
	if err != nil {
		return nil, err
	}
	if err := os.Remove(path); err != nil {
		return nil, opErr("delete", filename, err)
	}
	s.logger.Info("deleted spreadsheet", "file", filename)
	return &DeleteResult{Success: true, Filename: filename}, nil
}

// hasSheet reports whether sheet exists in the workbook.
func hasSheet(f *excelize.File, sheet string) bool {
	for _, name := range f.GetSheetList() {
		if name == sheet {
			return true
		}
	}
	return false
}

// activeOrNamed returns sheet when non-empty, otherwise the active sheet.
func activeOrNamed(f *excelize.File, sheet string) string {
	if sheet != "" {
		return sheet
	}
	return f.GetSheetName(f.GetActiveSheetIndex())
}
