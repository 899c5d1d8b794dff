package sheets

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stageImport writes a file into the store's import directory.
func stageImport(t *testing.T, s *Store, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(s.importDir, name), []byte(contents), 0o644))
}

func TestListImports(t *testing.T) {
	s := newTestStore(t)
	stageImport(t, s, "incoming.csv", "a,b\n")
	stageImport(t, s, "readme.txt", "ignored")

	result, err := s.ListImports()
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "incoming.csv", result.Files[0].Name)
}

func TestImportFile(t *testing.T) {
	s := newTestStore(t)
	stageImport(t, s, "incoming.csv", "a,b\n1,2\n")

	result, err := s.ImportFile("incoming.csv", "")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "incoming.csv", result.Target)

	read, err := s.ReadSpreadsheet("incoming.csv", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, read.Rows)

	// Source stays in the import directory.
	_, err = os.Stat(filepath.Join(s.importDir, "incoming.csv"))
	assert.NoError(t, err)
}

func TestImportFileRenames(t *testing.T) {
	s := newTestStore(t)
	stageImport(t, s, "incoming.csv", "a\n")

	result, err := s.ImportFile("incoming.csv", "renamed.csv")
	require.NoError(t, err)
	assert.Equal(t, "renamed.csv", result.Target)
}

func TestImportFileTargetExists(t *testing.T) {
	s := newTestStore(t)
	stageImport(t, s, "incoming.csv", "a\n")

	_, err := s.CreateSpreadsheet("incoming.csv", "csv", nil, "")
	require.NoError(t, err)

	result, err := s.ImportFile("incoming.csv", "")
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestImportFileMissingSource(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ImportFile("ghost.csv", "")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestImportFileTraversal(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ImportFile("../secret.csv", "")
	assert.ErrorIs(t, err, ErrPathTraversal)
}

func TestImportFileBadExtension(t *testing.T) {
	s := newTestStore(t)
	stageImport(t, s, "notes.txt", "x")

	_, err := s.ImportFile("notes.txt", "")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestImportsDisabled(t *testing.T) {
	s, err := Open(t.TempDir(), "", log.New(io.Discard))
	require.NoError(t, err)

	_, err = s.ListImports()
	assert.ErrorIs(t, err, ErrNoImportDir)
	_, err = s.ImportFile("a.csv", "")
	assert.ErrorIs(t, err, ErrNoImportDir)
}
