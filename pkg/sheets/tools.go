package sheets

import (
	"context"
	"encoding/json"
	"fmt"

	"sheetsrv/pkg/mcp"
)

// Tools returns the MCP tool set backed by the store. Tool names, schemas,
// and payload shapes form the wire contract with clients.
func Tools(s *Store) []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        "list_files",
			Description: "List all spreadsheet files in the base directory",
			InputSchema: schema(props{
				"pattern": {Type: "string", Description: "Glob pattern to filter files (default: '*')", Default: "*"},
			}),
			Handler: handle(func(ctx context.Context, a struct {
				Pattern string `json:"pattern"`
			}) (any, error) {
				return s.ListFiles(a.Pattern)
			}),
		},
		{
			Name:        "create_spreadsheet",
			Description: "Create a new spreadsheet file",
			InputSchema: schema(props{
				"filename":   {Type: "string", Description: "Name of the file"},
				"format":     {Type: "string", Description: "File format (xlsx or csv)", Default: "xlsx"},
				"headers":    {Type: "array", Description: "Optional header row", Items: &mcp.Property{Type: "string"}},
				"sheet_name": {Type: "string", Description: "Name of the first sheet", Default: "Sheet1"},
			}, "filename"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename  string   `json:"filename"`
				Format    string   `json:"format"`
				Headers   []string `json:"headers"`
				SheetName string   `json:"sheet_name"`
			}) (any, error) {
				return s.CreateSpreadsheet(a.Filename, a.Format, a.Headers, a.SheetName)
			}),
		},
		{
			Name:        "read_spreadsheet",
			Description: "Read data from a spreadsheet",
			InputSchema: schema(props{
				"filename": {Type: "string", Description: "Name of the file"},
				"sheet":    {Type: "string", Description: "Sheet name (optional)"},
				"max_rows": {Type: "integer", Description: "Maximum rows to read"},
			}, "filename"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename string `json:"filename"`
				Sheet    string `json:"sheet"`
				MaxRows  int    `json:"max_rows"`
			}) (any, error) {
				return s.ReadSpreadsheet(a.Filename, a.Sheet, a.MaxRows)
			}),
		},
		{
			Name:        "write_spreadsheet",
			Description: "Write data to a spreadsheet",
			InputSchema: schema(props{
				"filename": {Type: "string", Description: "Name of the file"},
				"data":     {Type: "array", Description: "2D array of data"},
				"sheet":    {Type: "string", Description: "Sheet name (optional)"},
				"append":   {Type: "boolean", Description: "Append instead of overwrite", Default: false},
			}, "filename", "data"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename string  `json:"filename"`
				Data     [][]any `json:"data"`
				Sheet    string  `json:"sheet"`
				Append   bool    `json:"append"`
			}) (any, error) {
				return s.WriteSpreadsheet(a.Filename, a.Data, a.Sheet, a.Append)
			}),
		},
		{
			Name:        "append_row",
			Description: "Append a single row to a spreadsheet",
			InputSchema: schema(props{
				"filename": {Type: "string", Description: "Name of the file"},
				"row_data": {Type: "array", Description: "Row data as array"},
				"sheet":    {Type: "string", Description: "Sheet name (optional)"},
			}, "filename", "row_data"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename string `json:"filename"`
				RowData  []any  `json:"row_data"`
				Sheet    string `json:"sheet"`
			}) (any, error) {
				return s.AppendRow(a.Filename, a.RowData, a.Sheet)
			}),
		},
		{
			Name:        "update_cell",
			Description: "Update a single cell value",
			InputSchema: schema(props{
				"filename": {Type: "string", Description: "Name of the file"},
				"sheet":    {Type: "string", Description: "Sheet name"},
				"cell":     {Type: "string", Description: "Cell reference (e.g., 'A1')"},
				"value":    {Description: "Value to set"},
			}, "filename", "sheet", "cell", "value"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename string `json:"filename"`
				Sheet    string `json:"sheet"`
				Cell     string `json:"cell"`
				Value    any    `json:"value"`
			}) (any, error) {
				return s.UpdateCell(a.Filename, a.Sheet, a.Cell, a.Value)
			}),
		},
		{
			Name:        "delete_spreadsheet",
			Description: "Delete a spreadsheet file",
			InputSchema: schema(props{
				"filename": {Type: "string", Description: "Name of the file"},
			}, "filename"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename string `json:"filename"`
			}) (any, error) {
				return s.DeleteSpreadsheet(a.Filename)
			}),
		},
		{
			Name:        "format_cells",
			Description: "Format a range of cells",
			InputSchema: schema(props{
				"filename":   {Type: "string", Description: "Name of the file"},
				"sheet":      {Type: "string", Description: "Sheet name"},
				"cell_range": {Type: "string", Description: "Cell range (e.g., 'A1:B10')"},
				"bold":       {Type: "boolean", Default: false},
				"italic":     {Type: "boolean", Default: false},
				"bg_color":   {Type: "string", Description: "Background color hex (e.g., '#00FF00' or 'FF00FF00')"},
				"font_size":  {Type: "integer", Description: "Font size"},
			}, "filename", "sheet", "cell_range"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename  string  `json:"filename"`
				Sheet     string  `json:"sheet"`
				CellRange string  `json:"cell_range"`
				Bold      bool    `json:"bold"`
				Italic    bool    `json:"italic"`
				BgColor   string  `json:"bg_color"`
				FontSize  float64 `json:"font_size"`
			}) (any, error) {
				return s.FormatCells(a.Filename, a.Sheet, a.CellRange, CellStyle{
					Bold: a.Bold, Italic: a.Italic, BgColor: a.BgColor, FontSize: a.FontSize,
				})
			}),
		},
		{
			Name:        "set_formula",
			Description: "Set a formula in a cell",
			InputSchema: schema(props{
				"filename": {Type: "string", Description: "Name of the file"},
				"sheet":    {Type: "string", Description: "Sheet name"},
				"cell":     {Type: "string", Description: "Cell reference"},
				"formula":  {Type: "string", Description: "Excel formula"},
			}, "filename", "sheet", "cell", "formula"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename string `json:"filename"`
				Sheet    string `json:"sheet"`
				Cell     string `json:"cell"`
				Formula  string `json:"formula"`
			}) (any, error) {
				return s.SetFormula(a.Filename, a.Sheet, a.Cell, a.Formula)
			}),
		},
		{
			Name:        "get_formula",
			Description: "Get formula from a cell",
			InputSchema: schema(props{
				"filename": {Type: "string", Description: "Name of the file"},
				"sheet":    {Type: "string", Description: "Sheet name"},
				"cell":     {Type: "string", Description: "Cell reference"},
			}, "filename", "sheet", "cell"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename string `json:"filename"`
				Sheet    string `json:"sheet"`
				Cell     string `json:"cell"`
			}) (any, error) {
				return s.GetFormula(a.Filename, a.Sheet, a.Cell)
			}),
		},
		{
			Name:        "rename_sheet",
			Description: "Rename a sheet",
			InputSchema: schema(props{
				"filename":  {Type: "string", Description: "Name of the file"},
				"old_sheet": {Type: "string", Description: "Current sheet name"},
				"new_sheet": {Type: "string", Description: "New sheet name"},
			}, "filename", "old_sheet", "new_sheet"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename string `json:"filename"`
				OldSheet string `json:"old_sheet"`
				NewSheet string `json:"new_sheet"`
			}) (any, error) {
				return s.RenameSheet(a.Filename, a.OldSheet, a.NewSheet)
			}),
		},
		{
			Name:        "rename_file",
			Description: "Rename a file",
			InputSchema: schema(props{
				"old_filename": {Type: "string", Description: "Current filename"},
				"new_filename": {Type: "string", Description: "New filename"},
			}, "old_filename", "new_filename"),
			Handler: handle(func(ctx context.Context, a struct {
				OldFilename string `json:"old_filename"`
				NewFilename string `json:"new_filename"`
			}) (any, error) {
				return s.RenameFile(a.OldFilename, a.NewFilename)
			}),
		},
		{
			Name:        "set_cell_format",
			Description: "Format a single cell",
			InputSchema: schema(props{
				"filename": {Type: "string", Description: "Name of the file"},
				"sheet":    {Type: "string", Description: "Sheet name"},
				"cell":     {Type: "string", Description: "Cell reference"},
				"bold":     {Type: "boolean", Default: false},
				"italic":   {Type: "boolean", Default: false},
				"bg_color": {Type: "string", Description: "Background color hex (e.g., '#00FF00' or 'FF00FF00')"},
			}, "filename", "sheet", "cell"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename string `json:"filename"`
				Sheet    string `json:"sheet"`
				Cell     string `json:"cell"`
				Bold     bool   `json:"bold"`
				Italic   bool   `json:"italic"`
				BgColor  string `json:"bg_color"`
			}) (any, error) {
				return s.SetCellFormat(a.Filename, a.Sheet, a.Cell, CellStyle{
					Bold: a.Bold, Italic: a.Italic, BgColor: a.BgColor,
				})
			}),
		},
		{
			Name:        "set_column_format",
			Description: "Format a column",
			InputSchema: schema(props{
				"filename": {Type: "string", Description: "Name of the file"},
				"sheet":    {Type: "string", Description: "Sheet name"},
				"column":   {Type: "string", Description: "Column letter (e.g., 'A')"},
				"width":    {Type: "number", Description: "Column width"},
			}, "filename", "sheet", "column"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename string  `json:"filename"`
				Sheet    string  `json:"sheet"`
				Column   string  `json:"column"`
				Width    float64 `json:"width"`
			}) (any, error) {
				return s.SetColumnFormat(a.Filename, a.Sheet, a.Column, a.Width)
			}),
		},
		{
			Name:        "set_row_format",
			Description: "Format a row",
			InputSchema: schema(props{
				"filename": {Type: "string", Description: "Name of the file"},
				"sheet":    {Type: "string", Description: "Sheet name"},
				"row":      {Type: "integer", Description: "Row number"},
				"height":   {Type: "number", Description: "Row height"},
			}, "filename", "sheet", "row"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename string  `json:"filename"`
				Sheet    string  `json:"sheet"`
				Row      int     `json:"row"`
				Height   float64 `json:"height"`
			}) (any, error) {
				return s.SetRowFormat(a.Filename, a.Sheet, a.Row, a.Height)
			}),
		},
		{
			Name:        "create_chart",
			Description: "Create a chart in the spreadsheet",
			InputSchema: schema(props{
				"filename":   {Type: "string", Description: "Name of the file"},
				"sheet":      {Type: "string", Description: "Sheet name"},
				"chart_type": {Type: "string", Description: "Chart type (bar or pie)"},
				"data_range": {Type: "string", Description: "Data range (e.g., 'A1:B10')"},
				"title":      {Type: "string", Description: "Chart title", Default: "Chart"},
			}, "filename", "sheet", "chart_type", "data_range"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename  string `json:"filename"`
				Sheet     string `json:"sheet"`
				ChartType string `json:"chart_type"`
				DataRange string `json:"data_range"`
				Title     string `json:"title"`
			}) (any, error) {
				return s.CreateChart(a.Filename, a.Sheet, a.ChartType, a.DataRange, a.Title)
			}),
		},
		{
			Name:        "list_charts",
			Description: "List charts present in a spreadsheet",
			InputSchema: schema(props{
				"filename": {Type: "string", Description: "Name of the file"},
			}, "filename"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename string `json:"filename"`
			}) (any, error) {
				return s.ListCharts(a.Filename)
			}),
		},
		{
			Name:        "freeze_panes",
			Description: "Freeze rows and/or columns at a specific cell position. Use 'A2' to freeze top row, 'B1' to freeze first column, 'B2' to freeze both.",
			InputSchema: schema(props{
				"filename": {Type: "string", Description: "Name of the file"},
				"sheet":    {Type: "string", Description: "Sheet name"},
				"cell":     {Type: "string", Description: "Cell reference where to freeze (e.g., 'A2' for top row, 'B1' for first column, 'B2' for both)"},
			}, "filename", "sheet", "cell"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename string `json:"filename"`
				Sheet    string `json:"sheet"`
				Cell     string `json:"cell"`
			}) (any, error) {
				return s.FreezePanes(a.Filename, a.Sheet, a.Cell)
			}),
		},
		{
			Name:        "unfreeze_panes",
			Description: "Remove frozen panes from a sheet",
			InputSchema: schema(props{
				"filename": {Type: "string", Description: "Name of the file"},
				"sheet":    {Type: "string", Description: "Sheet name"},
			}, "filename", "sheet"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename string `json:"filename"`
				Sheet    string `json:"sheet"`
			}) (any, error) {
				return s.UnfreezePanes(a.Filename, a.Sheet)
			}),
		},
		{
			Name:        "describe_spreadsheet",
			Description: "Summarize a spreadsheet: sheets, dimensions, and detected table ranges",
			InputSchema: schema(props{
				"filename": {Type: "string", Description: "Name of the file"},
			}, "filename"),
			Handler: handle(func(ctx context.Context, a struct {
				Filename string `json:"filename"`
			}) (any, error) {
				return s.DescribeSpreadsheet(a.Filename)
			}),
		},
		{
			Name:        "list_imports",
			Description: "List spreadsheet files staged in the import directory",
			InputSchema: schema(props{}),
			Handler: handle(func(ctx context.Context, a struct{}) (any, error) {
				return s.ListImports()
			}),
		},
		{
			Name:        "import_file",
			Description: "Copy a staged file from the import directory into the base directory",
			InputSchema: schema(props{
				"source": {Type: "string", Description: "File name in the import directory"},
				"target": {Type: "string", Description: "Target file name (default: same as source)"},
			}, "source"),
			Handler: handle(func(ctx context.Context, a struct {
				Source string `json:"source"`
				Target string `json:"target"`
			}) (any, error) {
				return s.ImportFile(a.Source, a.Target)
			}),
		},
	}
}

type props = map[string]mcp.Property

func schema(p props, required ...string) mcp.InputSchema {
	return mcp.InputSchema{Type: "object", Properties: p, Required: required}
}

// handle decodes tool arguments into T before invoking fn.
func handle[T any](fn func(context.Context, T) (any, error)) mcp.Handler {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		var a T
		if len(args) > 0 {
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}
		}
		return fn(ctx, a)
	}
}
