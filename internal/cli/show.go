package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/venvx/pkg/errors"
	"github.com/arthur-debert/venvx/pkg/filesystem"
	"github.com/arthur-debert/venvx/pkg/metadata"
	"github.com/arthur-debert/venvx/pkg/types"
)

func newShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <venv>",
		Short: "Show the metadata of one environment",
		Long:  `Show displays the full recorded metadata for one environment: main package, exposed apps and man pages, interpreter, and injected packages.`,
		Args:  cobra.ExactArgs(1),
		Example: `  # Show the black environment
  venvx show black

  # Machine-readable output
  venvx show black --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := initPaths()
			if err != nil {
				return err
			}

			name := args[0]
			venvDir := p.VenvDir(name)
			if _, err := os.Stat(venvDir); os.IsNotExist(err) {
				return errors.Newf(errors.ErrVenvNotFound, "environment %s does not exist", name)
			}

			fs := filesystem.NewOS()
			store, err := metadata.Load(fs, types.NewVenv(venvDir))
			if err != nil {
				return err
			}

			d := detail(store)
			if format != formatText {
				return renderStructured(cmd.OutOrStdout(), format, d)
			}
			renderDetailText(cmd.OutOrStdout(), d)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json, or yaml")
	return cmd
}
