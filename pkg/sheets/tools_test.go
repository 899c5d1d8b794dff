package sheets

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolByName(t *testing.T, s *Store, name string) func(context.Context, json.RawMessage) (any, error) {
	t.Helper()
	for _, tool := range Tools(s) {
		if tool.Name == name {
			return tool.Handler
		}
	}
	t.Fatalf("tool %s not registered", name)
	return nil
}

func TestToolsCoverOriginalSet(t *testing.T) {
	s := newTestStore(t)
	tools := Tools(s)

	names := make(map[string]bool, len(tools))
	for _, tool := range tools {
		assert.False(t, names[tool.Name], "duplicate tool %s", tool.Name)
		names[tool.Name] = true
		assert.NotEmpty(t, tool.Description, tool.Name)
		assert.Equal(t, "object", tool.InputSchema.Type, tool.Name)
		assert.NotNil(t, tool.Handler, tool.Name)
	}

	for _, name := range []string{
		"list_files", "create_spreadsheet", "read_spreadsheet", "write_spreadsheet",
		"append_row", "update_cell", "delete_spreadsheet", "format_cells",
		"set_formula", "get_formula", "rename_sheet", "rename_file",
		"set_cell_format", "set_column_format", "set_row_format", "create_chart",
		"freeze_panes", "unfreeze_panes",
		"list_charts", "describe_spreadsheet", "list_imports", "import_file",
	} {
		assert.True(t, names[name], "missing tool %s", name)
	}
}

func TestToolHandlerDecodesArguments(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	create := toolByName(t, s, "create_spreadsheet")
	result, err := create(ctx, json.RawMessage(`{"filename":"wb","format":"xlsx","headers":["a","b"],"sheet_name":"Main"}`))
	require.NoError(t, err)
	created, ok := result.(*CreateResult)
	require.True(t, ok)
	assert.True(t, created.Success)
	assert.Equal(t, "wb.xlsx", created.Filename)

	write := toolByName(t, s, "write_spreadsheet")
	_, err = write(ctx, json.RawMessage(`{"filename":"wb.xlsx","data":[["x",1],["y",2.5]],"append":true}`))
	require.NoError(t, err)

	read := toolByName(t, s, "read_spreadsheet")
	result, err = read(ctx, json.RawMessage(`{"filename":"wb.xlsx"}`))
	require.NoError(t, err)
	readResult, ok := result.(*ReadResult)
	require.True(t, ok)
	assert.Equal(t, 3, readResult.Rows)
}

func TestToolHandlerEmptyArguments(t *testing.T) {
	s := newTestStore(t)

	list := toolByName(t, s, "list_files")
	result, err := list(context.Background(), nil)
	require.NoError(t, err)
	listed, ok := result.(*ListFilesResult)
	require.True(t, ok)
	assert.True(t, listed.Success)
	assert.Equal(t, 0, listed.Count)
}

func TestToolHandlerBadArguments(t *testing.T) {
	s := newTestStore(t)

	read := toolByName(t, s, "read_spreadsheet")
	_, err := read(context.Background(), json.RawMessage(`{"filename":123}`))
	assert.Error(t, err)
}
