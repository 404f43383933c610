package artifact

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trains.json")

	docs := []json.RawMessage{
		json.RawMessage(`{"trainNumber": 101, "serviço": {"designação": "Alfa Pendular"}}`),
	}
	require.NoError(t, WriteJSON(path, docs))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, json.Valid(b))
	// Indented, and non-ASCII written as literal UTF-8 rather than \u escapes.
	assert.Contains(t, string(b), "  {")
	assert.Contains(t, string(b), "designação")
	assert.NotContains(t, string(b), `\u`)
}

func TestWriteJSON_keepsMarkupCharacters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, WriteJSON(path, map[string]string{"note": "a < b & c"}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(b), "a < b & c")
}

func TestWriteJSON_overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, WriteJSON(path, []int{1, 2, 3}))
	require.NoError(t, WriteJSON(path, []int{4}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []int
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, []int{4}, got)
}
