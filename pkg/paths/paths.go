// Package paths provides centralized path handling for venvx.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/venvx/pkg/errors"
)

// Environment variable names
const (
	// EnvVenvxHome overrides the venvx home directory
	EnvVenvxHome = "VENVX_HOME"

	// EnvVenvxConfigDir overrides the XDG config directory for venvx
	EnvVenvxConfigDir = "VENVX_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
// IMPORTANT: These constants define venvx's on-disk layout and are NOT
// user-configurable beyond the home override. They must remain consistent
// across installations so environments created by one venvx binary are
// found by another.
const (
	// VenvxDirName is the directory name for venvx-specific files
	VenvxDirName = "venvx"

	// VenvsDirName is the subdirectory holding one directory per environment
	VenvsDirName = "venvs"

	// ConfigFileName is the name of the venvx configuration file
	ConfigFileName = "venvx.toml"

	// LogFileName is the name of the log file
	LogFileName = "venvx.log"
)

// Paths provides centralized path management for venvx
type Paths interface {
	HomeDir() string
	VenvsDir() string
	VenvDir(name string) string
	ConfigDir() string
	ConfigFilePath() string
	LogFilePath() string
}

// paths provides centralized path management for venvx
type paths struct {
	// home is the root directory holding all venvx state
	home string

	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgState is the XDG state directory
	xdgState string
}

// New creates a new Paths instance with the given home directory.
// If home is empty, it will be determined from VENVX_HOME or the XDG
// data directory.
func New(home string) (Paths, error) {
	p := &paths{}

	if home == "" {
		if envHome := os.Getenv(EnvVenvxHome); envHome != "" {
			p.home = expandHome(envHome)
		} else {
			p.home = filepath.Join(xdg.DataHome, VenvxDirName)
		}
	} else {
		p.home = expandHome(home)
	}

	// Ensure home is absolute
	absHome, err := filepath.Abs(p.home)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for venvx home")
	}
	p.home = absHome

	p.setupXDGDirs()

	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	// Config directory
	if configDir := os.Getenv(EnvVenvxConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, VenvxDirName)
	}

	// State directory. xdg snapshots the environment at init, so honor a
	// live XDG_STATE_HOME override before falling back.
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, VenvxDirName)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, VenvxDirName)
	}
}

// HomeDir returns the root directory holding all venvx state
func (p *paths) HomeDir() string {
	return p.home
}

// VenvsDir returns the directory holding one subdirectory per environment
func (p *paths) VenvsDir() string {
	return filepath.Join(p.home, VenvsDirName)
}

// VenvDir returns the environment directory for the given name
func (p *paths) VenvDir(name string) string {
	return filepath.Join(p.VenvsDir(), name)
}

// ConfigDir returns the XDG config directory for venvx
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// ConfigFilePath returns the path to the venvx configuration file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
