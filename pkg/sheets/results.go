package sheets

// Results carry the JSON payloads returned to MCP clients. Expected
// conflicts (file exists, sheet missing) surface as Success=false with a
// Reason; anything else is a Go error handled by the transport.

// FileInfo describes one spreadsheet file in a directory listing.
type FileInfo struct {
	// Name is the file name without directory.
	Name string `json:"name"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// Type is the lowercase extension including the dot.
	Type string `json:"type"`
}

// ListFilesResult is the payload of list_files.
type ListFilesResult struct {
	Success bool       `json:"success"`
	Files   []FileInfo `json:"files"`
	Count   int        `json:"count"`
}

// CreateResult is the payload of create_spreadsheet.
type CreateResult struct {
	Success  bool   `json:"success"`
	Reason   string `json:"error,omitempty"`
	Filename string `json:"filename,omitempty"`
	Path     string `json:"path,omitempty"`
}

// RenameFileResult is the payload of rename_file.
type RenameFileResult struct {
	Success bool   `json:"success"`
	Reason  string `json:"error,omitempty"`
	Old     string `json:"old,omitempty"`
	New     string `json:"new,omitempty"`
}

// RenameSheetResult is the payload of rename_sheet.
type RenameSheetResult struct {
	Success bool   `json:"success"`
	Reason  string `json:"error,omitempty"`
	File    string `json:"file,omitempty"`
	Sheet   string `json:"sheet,omitempty"`
}

// DeleteResult is the payload of delete_spreadsheet.
type DeleteResult struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
}

// ReadResult is the payload of read_spreadsheet.
type ReadResult struct {
	Success bool `json:"success"`
	// Data holds rows of cell values typed as int64, float64, or string.
	Data [][]any `json:"data"`
	// SheetName is the sheet read (xlsx only).
	SheetName string `json:"sheet_name,omitempty"`
	Rows      int    `json:"rows"`
	Columns   int    `json:"columns"`
}

// WriteResult is the payload of write_spreadsheet.
type WriteResult struct {
	Success     bool   `json:"success"`
	RowsWritten int    `json:"rows_written"`
	Sheet       string `json:"sheet,omitempty"`
}

// AppendResult is the payload of append_row.
type AppendResult struct {
	Success bool `json:"success"`
	// RowNumber is the 1-based row the data landed on (xlsx only).
	RowNumber int `json:"row_number,omitempty"`
}

// CellValueResult is the payload of update_cell.
type CellValueResult struct {
	Success bool   `json:"success"`
	Cell    string `json:"cell"`
	Value   any    `json:"value"`
}

// FormulaResult is the payload of set_formula.
type FormulaResult struct {
	Success bool   `json:"success"`
	Cell    string `json:"cell"`
	Formula string `json:"formula"`
}

// FormulaValueResult is the payload of get_formula.
type FormulaValueResult struct {
	Success bool   `json:"success"`
	Cell    string `json:"cell"`
	// FormulaOrValue is the cell formula when present, otherwise its value.
	FormulaOrValue any `json:"formula_or_value"`
}

// RangeFormatResult is the payload of format_cells.
type RangeFormatResult struct {
	Success bool   `json:"success"`
	Range   string `json:"range"`
}

// CellFormatResult is the payload of set_cell_format.
type CellFormatResult struct {
	Success bool   `json:"success"`
	Cell    string `json:"cell"`
}

// ColumnFormatResult is the payload of set_column_format.
type ColumnFormatResult struct {
	Success bool   `json:"success"`
	Column  string `json:"column"`
}

// RowFormatResult is the payload of set_row_format.
type RowFormatResult struct {
	Success bool `json:"success"`
	Row     int  `json:"row"`
}

// ChartResult is the payload of create_chart.
type ChartResult struct {
	Success   bool   `json:"success"`
	Reason    string `json:"error,omitempty"`
	ChartType string `json:"chart_type,omitempty"`
}

// ChartInfo describes one chart found in a workbook.
type ChartInfo struct {
	// Sheet is the worksheet the chart is anchored on.
	Sheet string `json:"sheet"`
	// Name is the drawing frame name, when present.
	Name string `json:"name,omitempty"`
	// ChartType is the chart type name (Bar, Pie, Line, ...).
	ChartType string `json:"chart_type"`
	// Title is the chart title, when present.
	Title string `json:"title,omitempty"`
}

// ListChartsResult is the payload of list_charts.
type ListChartsResult struct {
	Success bool        `json:"success"`
	Charts  []ChartInfo `json:"charts"`
	Count   int         `json:"count"`
}

// PanesResult is the payload of freeze_panes and unfreeze_panes.
type PanesResult struct {
	Success    bool   `json:"success"`
	Reason     string `json:"error,omitempty"`
	Sheet      string `json:"sheet,omitempty"`
	FreezeCell string `json:"freeze_cell,omitempty"`
	Message    string `json:"message,omitempty"`
}

// SheetSummary describes one sheet in describe_spreadsheet output.
type SheetSummary struct {
	Name string `json:"name"`
	// Rows and Columns are the used-range dimensions.
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
	// NonEmptyCells counts cells holding a value.
	NonEmptyCells int `json:"non_empty_cells"`
	// TableCandidates lists ranges likely holding tabular data (e.g. "A1:D10").
	TableCandidates []string `json:"table_candidates,omitempty"`
}

// DescribeResult is the payload of describe_spreadsheet.
type DescribeResult struct {
	Success  bool           `json:"success"`
	Filename string         `json:"filename"`
	Sheets   []SheetSummary `json:"sheets"`
}

// ImportListResult is the payload of list_imports.
type ImportListResult struct {
	Success bool       `json:"success"`
	Files   []FileInfo `json:"files"`
	Count   int        `json:"count"`
}

// ImportResult is the payload of import_file.
type ImportResult struct {
	Success bool   `json:"success"`
	Reason  string `json:"error,omitempty"`
	Source  string `json:"source,omitempty"`
	Target  string `json:"target,omitempty"`
}
