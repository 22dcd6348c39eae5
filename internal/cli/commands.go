// Package cli implements the venvx command-line interface. All commands
// are read-only views over per-environment metadata; installation and
// injection are performed by separate workflows that own the stores they
// mutate.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/venvx/internal/version"
	"github.com/arthur-debert/venvx/pkg/config"
	"github.com/arthur-debert/venvx/pkg/logging"
	"github.com/arthur-debert/venvx/pkg/paths"
	"github.com/arthur-debert/venvx/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "venvx",
		Short: "Install and run Python applications in isolated environments",
		Long: `venvx manages one isolated environment per installed application,
exposing its entry points on your PATH while keeping its dependencies out
of your system Python.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			style.Init()
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	// Add all commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// initPaths resolves the venvx home with precedence: VENVX_HOME, then the
// config file's home key, then the XDG default.
func initPaths() (paths.Paths, config.Config, error) {
	p, err := paths.New("")
	if err != nil {
		return nil, config.Config{}, err
	}

	cfg, err := config.Load(p.ConfigFilePath())
	if err != nil {
		return nil, config.Config{}, err
	}

	if cfg.Home != "" && os.Getenv(paths.EnvVenvxHome) == "" {
		p, err = paths.New(cfg.Home)
		if err != nil {
			return nil, config.Config{}, err
		}
	}

	return p, cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "venvx version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newConfigCmd() *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration",
		Long: `Config prints the built-in default configuration as TOML, suitable as a
starting point for a user venvx.toml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showPath {
				p, _, err := initPaths()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), p.ConfigFilePath())
				return nil
			}

			out, err := config.DefaultTOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, "Print the config file path instead of its contents")
	return cmd
}
