package sheets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadSpreadsheetXLSX(t *testing.T) {
	s := newTestStore(t)
	writeTestXLSX(t, s, "data.xlsx", "Data", [][]any{
		{"Name", "Count", "Ratio"},
		{"alpha", 100, 0.5},
		{"beta", 200, 1.25},
	})

	result, err := s.ReadSpreadsheet("data.xlsx", "", 0)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Data", result.SheetName)
	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, 3, result.Columns)

	// Numeric strings come back typed.
	assert.Equal(t, "alpha", result.Data[1][0])
	assert.Equal(t, int64(100), result.Data[1][1])
	assert.Equal(t, 1.25, result.Data[2][2])
}

func TestReadSpreadsheetMaxRows(t *testing.T) {
	s := newTestStore(t)
	writeTestXLSX(t, s, "data.xlsx", "Data", [][]any{{"a"}, {"b"}, {"c"}, {"d"}})

	result, err := s.ReadSpreadsheet("data.xlsx", "", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Rows)
}

func TestReadSpreadsheetMissingSheet(t *testing.T) {
	s := newTestStore(t)
	writeTestXLSX(t, s, "data.xlsx", "Data", [][]any{{"a"}})

	_, err := s.ReadSpreadsheet("data.xlsx", "Nope", 0)
	assert.Error(t, err)
}

func TestReadSpreadsheetCSV(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(s.BaseDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("h1,h2\n1,2\n3,4\n"), 0o644))

	result, err := s.ReadSpreadsheet("data.csv", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, 2, result.Columns)
	// csv values stay raw strings.
	assert.Equal(t, "1", result.Data[1][0])
}

func TestWriteSpreadsheetOverwrite(t *testing.T) {
	s := newTestStore(t)
	writeTestXLSX(t, s, "wb.xlsx", "Data", [][]any{{"stale", "rows"}, {"more", "stale"}})

	result, err := s.WriteSpreadsheet("wb.xlsx", [][]any{{"fresh"}}, "", false)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.RowsWritten)
	assert.Equal(t, "Data", result.Sheet)

	read, err := s.ReadSpreadsheet("wb.xlsx", "", 0)
	require.NoError(t, err)
	require.Equal(t, 1, read.Rows)
	assert.Equal(t, "fresh", read.Data[0][0])
}

func TestWriteSpreadsheetAppend(t *testing.T) {
	s := newTestStore(t)
	writeTestXLSX(t, s, "wb.xlsx", "Data", [][]any{{"first"}})

	_, err := s.WriteSpreadsheet("wb.xlsx", [][]any{{"second"}, {"third"}}, "", true)
	require.NoError(t, err)

	read, err := s.ReadSpreadsheet("wb.xlsx", "", 0)
	require.NoError(t, err)
	require.Equal(t, 3, read.Rows)
	assert.Equal(t, "third", read.Data[2][0])
}

func TestWriteSpreadsheetCreatesSheet(t *testing.T) {
	s := newTestStore(t)
	writeTestXLSX(t, s, "wb.xlsx", "Data", nil)

	result, err := s.WriteSpreadsheet("wb.xlsx", [][]any{{"x"}}, "Extra", false)
	require.NoError(t, err)
	assert.Equal(t, "Extra", result.Sheet)

	f, err := excelize.OpenFile(filepath.Join(s.BaseDir(), "wb.xlsx"))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Extra")
}

func TestWriteSpreadsheetCSV(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(s.BaseDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	_, err := s.WriteSpreadsheet("out.csv", [][]any{{"a", int64(1)}, {"b", 2.5}}, "", false)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,1\nb,2.5\n", string(data))
}

func TestAppendRowXLSX(t *testing.T) {
	s := newTestStore(t)
	writeTestXLSX(t, s, "wb.xlsx", "Data", [][]any{{"header"}, {"row1"}})

	result, err := s.AppendRow("wb.xlsx", []any{"row2"}, "")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 3, result.RowNumber)
}

func TestAppendRowCSV(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(s.BaseDir(), "log.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o644))

	_, err := s.AppendRow("log.csv", []any{"c", "d"}, "")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\nc,d\n", string(data))
}

func TestUpdateCell(t *testing.T) {
	s := newTestStore(t)
	writeTestXLSX(t, s, "wb.xlsx", "Data", [][]any{{"old"}})

	result, err := s.UpdateCell("wb.xlsx", "Data", "A1", "new")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "A1", result.Cell)

	read, err := s.ReadSpreadsheet("wb.xlsx", "", 0)
	require.NoError(t, err)
	assert.Equal(t, "new", read.Data[0][0])
}

func TestSetAndGetFormula(t *testing.T) {
	s := newTestStore(t)
	writeTestXLSX(t, s, "wb.xlsx", "Data", [][]any{{1, 2}})

	_, err := s.SetFormula("wb.xlsx", "Data", "C1", "=SUM(A1:B1)")
	require.NoError(t, err)

	result, err := s.GetFormula("wb.xlsx", "Data", "C1")
	require.NoError(t, err)
	assert.Equal(t, "=SUM(A1:B1)", result.FormulaOrValue)
}

func TestGetFormulaPlainValue(t *testing.T) {
	s := newTestStore(t)
	writeTestXLSX(t, s, "wb.xlsx", "Data", [][]any{{42}})

	result, err := s.GetFormula("wb.xlsx", "Data", "A1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.FormulaOrValue)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseValue(tt.input), "parseValue(%q)", tt.input)
	}
}

func TestCSVField(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{nil, ""},
		{"text", "text"},
		{int64(7), "7"},
		{3.5, "3.5"},
		{2.0, "2"},
		{true, "true"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, csvField(tt.input), "csvField(%v)", tt.input)
	}
}
