package sheets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeSpreadsheetXLSX(t *testing.T) {
	s := newTestStore(t)
	writeTestXLSX(t, s, "wb.xlsx", "Data", [][]any{
		{"Name", "Count"},
		{"alpha", 1},
		{"beta", 2},
	})

	result, err := s.DescribeSpreadsheet("wb.xlsx")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "wb.xlsx", result.Filename)
	require.Len(t, result.Sheets, 1)

	sheet := result.Sheets[0]
	assert.Equal(t, "Data", sheet.Name)
	assert.Equal(t, 3, sheet.Rows)
	assert.Equal(t, 2, sheet.Columns)
	assert.Equal(t, 6, sheet.NonEmptyCells)
	assert.Equal(t, []string{"A1:B3"}, sheet.TableCandidates)
}

func TestDescribeSpreadsheetCSV(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(s.BaseDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\nc,d\n"), 0o644))

	result, err := s.DescribeSpreadsheet("data.csv")
	require.NoError(t, err)
	require.Len(t, result.Sheets, 1)
	assert.Equal(t, 2, result.Sheets[0].Rows)
	assert.Equal(t, 4, result.Sheets[0].NonEmptyCells)
}

func TestDetectTables(t *testing.T) {
	rows := [][]string{
		{"", "", ""},
		{"", "h1", "h2"},
		{"", "a", "b"},
	}
	assert.Equal(t, []string{"B2:C3"}, detectTables(rows, defaultTableParams()))
}

func TestDetectTablesTooSparse(t *testing.T) {
	// Two lonely cells fall below the minimum cell count.
	rows := [][]string{{"x"}, {}, {"y"}}
	assert.Nil(t, detectTables(rows, defaultTableParams()))
}

func TestDetectTablesEmpty(t *testing.T) {
	assert.Nil(t, detectTables(nil, defaultTableParams()))
	assert.Nil(t, detectTables([][]string{{"", ""}}, defaultTableParams()))
}

func TestDataBounds(t *testing.T) {
	rows := [][]string{
		{"", "", ""},
		{"", "x", ""},
		{"", "", "y"},
	}
	minRow, maxRow, minCol, maxCol := dataBounds(rows)
	assert.Equal(t, 1, minRow)
	assert.Equal(t, 2, maxRow)
	assert.Equal(t, 1, minCol)
	assert.Equal(t, 2, maxCol)
}
