package atomicwrite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteJSONReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "clients.json")

	require.NoError(t, WriteJSON(path, []string{"CLI001"}))
	require.NoError(t, WriteJSON(path, []string{"CLI001", "CLI002"}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []string
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, []string{"CLI001", "CLI002"}, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no quedan temporales")
}
