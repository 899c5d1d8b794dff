package sheets

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFreezePanesTopRow(t *testing.T) {
	s := newTestStore(t)
	writeTestXLSX(t, s, "wb.xlsx", "Data", [][]any{{"h"}, {"v"}})

	result, err := s.FreezePanes("wb.xlsx", "Data", "A2")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "A2", result.FreezeCell)

	f, err := excelize.OpenFile(filepath.Join(s.BaseDir(), "wb.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	panes, err := f.GetPanes("Data")
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, 0, panes.XSplit)
	assert.Equal(t, 1, panes.YSplit)
}

func TestFreezePanesBoth(t *testing.T) {
	s := newTestStore(t)
	writeTestXLSX(t, s, "wb.xlsx", "Data", [][]any{{"h"}, {"v"}})

	_, err := s.FreezePanes("wb.xlsx", "Data", "B2")
	require.NoError(t, err)

	f, err := excelize.OpenFile(filepath.Join(s.BaseDir(), "wb.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	panes, err := f.GetPanes("Data")
	require.NoError(t, err)
	assert.Equal(t, 1, panes.XSplit)
	assert.Equal(t, 1, panes.YSplit)
}

func TestFreezePanesMissingSheet(t *testing.T) {
	s := newTestStore(t)
	writeTestXLSX(t, s, "wb.xlsx", "Data", nil)

	result, err := s.FreezePanes("wb.xlsx", "Nope", "A2")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Reason, "not found")
}

func TestUnfreezePanes(t *testing.T) {
	s := newTestStore(t)
	writeTestXLSX(t, s, "wb.xlsx", "Data", [][]any{{"h"}})

	_, err := s.FreezePanes("wb.xlsx", "Data", "B2")
	require.NoError(t, err)

	result, err := s.UnfreezePanes("wb.xlsx", "Data")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Unfrozen panes", result.Message)

	f, err := excelize.OpenFile(filepath.Join(s.BaseDir(), "wb.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	panes, err := f.GetPanes("Data")
	require.NoError(t, err)
	assert.False(t, panes.Freeze)
}

func TestActivePane(t *testing.T) {
	assert.Equal(t, "bottomRight", activePane(1, 1))
	assert.Equal(t, "bottomLeft", activePane(0, 1))
	assert.Equal(t, "topRight", activePane(1, 0))
	assert.Equal(t, "topLeft", activePane(0, 0))
}
