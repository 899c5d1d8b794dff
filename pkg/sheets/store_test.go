package sheets

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// newTestStore opens a store over fresh temp directories.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "spreadsheets"), t.TempDir(), log.New(io.Discard))
	require.NoError(t, err)
	return s
}

// writeTestXLSX saves a workbook with the given rows into the store.
func writeTestXLSX(t *testing.T, s *Store, filename, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	path := filepath.Join(s.BaseDir(), filename)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestOpenCreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "spreadsheets")
	s, err := Open(base, "", log.New(io.Discard))
	require.NoError(t, err)

	info, err := os.Stat(s.BaseDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolveRejectsTraversal(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"../escape.xlsx", "../../etc/passwd", "a/../../b.csv"} {
		_, err := s.resolve(name)
		assert.ErrorIs(t, err, ErrPathTraversal, "filename %q", name)
	}
}

func TestResolveAllowsSubdirectories(t *testing.T) {
	s := newTestStore(t)

	path, err := s.resolve("reports/q1.xlsx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.BaseDir(), "reports", "q1.xlsx"), path)
}

func TestResolveExistingMissingFile(t *testing.T) {
	s := newTestStore(t)

	_, err := s.resolveExisting("missing.xlsx")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		filename string
		want     string
		wantErr  bool
	}{
		{"report.xlsx", extXLSX, false},
		{"Report.XLSX", extXLSX, false},
		{"data.csv", extCSV, false},
		{"data.ods", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		got, err := formatOf(tt.filename)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedFormat, tt.filename)
			continue
		}
		require.NoError(t, err, tt.filename)
		assert.Equal(t, tt.want, got, tt.filename)
	}
}
