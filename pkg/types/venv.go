package types

import (
	"os"
	"path/filepath"
)

// Venv represents one isolated installation directory managed by venvx
type Venv struct {
	// Name is the environment name (the directory name, including any suffix)
	Name string

	// Path is the absolute path to the environment directory
	Path string
}

// NewVenv creates a Venv from its directory path
func NewVenv(path string) Venv {
	return Venv{
		Name: filepath.Base(path),
		Path: path,
	}
}

// GetFilePath returns the full path to a file within the environment directory
func (v *Venv) GetFilePath(filename string) string {
	return filepath.Join(v.Path, filename)
}

// FileExists checks if a file exists within the environment directory
func (v *Venv) FileExists(fs FS, filename string) (bool, error) {
	path := v.GetFilePath(filename)
	_, err := fs.Stat(path)
	if err != nil {
		// Check if it's a "not found" error
		if os.IsNotExist(err) {
			return false, nil
		}
		// For other errors (permission denied, etc.), return the error
		return false, err
	}
	return true, nil
}
