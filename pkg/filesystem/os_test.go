package filesystem_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/venvx/pkg/filesystem"
)

func TestOSRoundTrip(t *testing.T) {
	fs := filesystem.NewOS()
	dir := filepath.Join(t.TempDir(), "nested", "dir")

	require.NoError(t, fs.MkdirAll(dir, 0755))

	path := filepath.Join(dir, "file.json")
	require.NoError(t, fs.WriteFile(path, []byte(`{"ok": true}`), 0644))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, string(data))

	info, err := fs.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	entries, err := fs.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "file.json", entries[0].Name())

	require.NoError(t, fs.Remove(path))
	_, err = fs.Stat(path)
	assert.Error(t, err)
}
