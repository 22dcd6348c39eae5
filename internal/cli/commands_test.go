package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/venvx/pkg/errors"
	"github.com/arthur-debert/venvx/pkg/filesystem"
	"github.com/arthur-debert/venvx/pkg/metadata"
	"github.com/arthur-debert/venvx/pkg/types"
)

// setupHome points venvx at an isolated home and returns it
func setupHome(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	home := filepath.Join(tmpDir, "venvx-home")
	t.Setenv("VENVX_HOME", home)
	t.Setenv("VENVX_CONFIG_DIR", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmpDir, "state"))

	return home
}

// installVenv fabricates an installed environment with written metadata
func installVenv(t *testing.T, home, name, pkg, pkgVersion string, pinned bool) {
	t.Helper()

	venvDir := filepath.Join(home, "venvs", name)
	fs := filesystem.NewOS()
	require.NoError(t, fs.MkdirAll(venvDir, 0755))

	s := metadata.New(fs, types.NewVenv(venvDir))
	s.MainPackage.Package = &pkg
	s.MainPackage.PackageOrURL = &pkg
	s.MainPackage.PackageVersion = pkgVersion
	s.MainPackage.Pinned = pinned
	s.MainPackage.Apps = []string{pkg}
	s.MainPackage.AppPaths = []metadata.Path{metadata.Path(filepath.Join(venvDir, "bin", pkg))}
	python := "Python 3.12.1"
	s.PythonVersion = &python
	require.NoError(t, s.Write())
}

// runCommand executes the root command with args and captures stdout
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestListCommand(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(t *testing.T, home string)
		expectedOutput []string
		notExpected    []string
	}{
		{
			name:  "no environments",
			setup: func(t *testing.T, home string) {},
			expectedOutput: []string{
				"nothing has been installed with venvx",
			},
		},
		{
			name: "two environments sorted",
			setup: func(t *testing.T, home string) {
				installVenv(t, home, "httpie", "httpie", "3.2.2", false)
				installVenv(t, home, "black", "black", "24.1.0", true)
			},
			expectedOutput: []string{
				"black",
				"24.1.0",
				"pinned",
				"httpie",
				"3.2.2",
			},
		},
		{
			name: "environment without metadata",
			setup: func(t *testing.T, home string) {
				require.NoError(t, os.MkdirAll(filepath.Join(home, "venvs", "stale"), 0755))
			},
			expectedOutput: []string{
				"stale",
				"(no metadata)",
			},
		},
		{
			name: "environment with unreadable metadata",
			setup: func(t *testing.T, home string) {
				venvDir := filepath.Join(home, "venvs", "broken")
				require.NoError(t, os.MkdirAll(venvDir, 0755))
				require.NoError(t, os.WriteFile(
					filepath.Join(venvDir, metadata.MetadataFileName), []byte(`{not json`), 0644))
			},
			expectedOutput: []string{
				"broken",
				"(unreadable metadata)",
			},
			notExpected: []string{
				"(no metadata)",
			},
		},
		{
			name: "files in venvs dir are ignored",
			setup: func(t *testing.T, home string) {
				installVenv(t, home, "black", "black", "24.1.0", false)
				require.NoError(t, os.MkdirAll(filepath.Join(home, "venvs"), 0755))
				require.NoError(t, os.WriteFile(filepath.Join(home, "venvs", "notes.txt"), []byte("x"), 0644))
			},
			expectedOutput: []string{"black"},
			notExpected:    []string{"notes.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupHome(t)
			tt.setup(t, home)

			output, err := runCommand(t, "list")
			require.NoError(t, err)

			for _, expected := range tt.expectedOutput {
				assert.Contains(t, output, expected,
					"Expected output to contain %q, but got:\n%s", expected, output)
			}
			for _, unexpected := range tt.notExpected {
				assert.NotContains(t, output, unexpected)
			}
		})
	}
}

func TestListCommandJSON(t *testing.T) {
	home := setupHome(t)
	installVenv(t, home, "black", "black", "24.1.0", true)

	output, err := runCommand(t, "list", "--format", "json")
	require.NoError(t, err)

	var summaries []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "black", summaries[0]["name"])
	assert.Equal(t, "24.1.0", summaries[0]["version"])
	assert.Equal(t, true, summaries[0]["pinned"])
}

func TestListCommandUnknownFormat(t *testing.T) {
	home := setupHome(t)
	installVenv(t, home, "black", "black", "24.1.0", false)

	_, err := runCommand(t, "list", "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestShowCommand(t *testing.T) {
	home := setupHome(t)
	installVenv(t, home, "httpie", "httpie", "3.2.2", false)

	output, err := runCommand(t, "show", "httpie")
	require.NoError(t, err)

	assert.Contains(t, output, "httpie")
	assert.Contains(t, output, "3.2.2")
	assert.Contains(t, output, "Python 3.12.1")
}

func TestShowCommandYAML(t *testing.T) {
	home := setupHome(t)
	installVenv(t, home, "httpie", "httpie", "3.2.2", false)

	output, err := runCommand(t, "show", "httpie", "--format", "yaml")
	require.NoError(t, err)

	var d map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(output), &d))
	assert.Equal(t, "httpie", d["name"])
}

func TestShowCommandMissingVenv(t *testing.T) {
	setupHome(t)

	_, err := runCommand(t, "show", "ghost")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrVenvNotFound))
}

func TestVersionCommand(t *testing.T) {
	setupHome(t)

	output, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "venvx version")
}

func TestConfigCommand(t *testing.T) {
	setupHome(t)

	output, err := runCommand(t, "config")
	require.NoError(t, err)
	assert.Contains(t, output, "use_emoji = true")
}

func TestConfigCommandPath(t *testing.T) {
	setupHome(t)

	output, err := runCommand(t, "config", "--path")
	require.NoError(t, err)
	assert.Contains(t, output, "venvx.toml")
}

func TestConfigHomeOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "config")
	t.Setenv("VENVX_HOME", "")
	t.Setenv("VENVX_CONFIG_DIR", configDir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmpDir, "state"))

	home := filepath.Join(tmpDir, "config-home")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "venvx.toml"),
		[]byte("home = \""+home+"\"\n"), 0644))
	installVenv(t, home, "black", "black", "24.1.0", false)

	output, err := runCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, output, "black")
}
