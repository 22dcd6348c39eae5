package types_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/venvx/pkg/filesystem"
	"github.com/arthur-debert/venvx/pkg/types"
)

func TestNewVenv(t *testing.T) {
	v := types.NewVenv("/home/user/.local/share/venvx/venvs/black-22")

	assert.Equal(t, "black-22", v.Name)
	assert.Equal(t, "/home/user/.local/share/venvx/venvs/black-22", v.Path)
}

func TestGetFilePath(t *testing.T) {
	v := types.NewVenv("/venvs/black")

	assert.Equal(t, filepath.Join("/venvs/black", "pipx_metadata.json"), v.GetFilePath("pipx_metadata.json"))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	v := types.NewVenv(dir)
	fs := filesystem.NewOS()

	exists, err := v.FileExists(fs, "missing.json")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "present.json"), []byte("{}"), 0644))
	exists, err = v.FileExists(fs, "present.json")
	require.NoError(t, err)
	assert.True(t, exists)
}
