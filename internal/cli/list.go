package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/venvx/pkg/filesystem"
	"github.com/arthur-debert/venvx/pkg/metadata"
	"github.com/arthur-debert/venvx/pkg/style"
	"github.com/arthur-debert/venvx/pkg/types"
)

func newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed environments",
		Long:  `List displays every environment under the venvx home with its main package, version, and injected packages.`,
		Example: `  # List all environments
  venvx list

  # Machine-readable output
  venvx list --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := initPaths()
			if err != nil {
				return err
			}

			log.Info().Str("home", p.HomeDir()).Msg("Listing environments")

			fs := filesystem.NewOS()
			entries, err := fs.ReadDir(p.VenvsDir())
			if err != nil {
				if os.IsNotExist(err) {
					fmt.Fprintln(cmd.OutOrStdout(), nothingInstalledMsg(cfg))
					return nil
				}
				return fmt.Errorf("failed to read venvs directory: %w", err)
			}

			var summaries []venvSummary
			for _, entry := range entries {
				if !entry.IsDir() {
					continue
				}
				venv := types.NewVenv(p.VenvDir(entry.Name()))
				store, err := metadata.Load(fs, venv)
				if err != nil {
					// A corrupt or too-new metadata file should not hide
					// the rest of the environments, but it is not the same
					// as an environment with no metadata at all.
					log.Warn().Err(err).Str("venv", venv.Name).Msg("Skipping unreadable metadata")
					summaries = append(summaries, venvSummary{Name: venv.Name, Unreadable: true})
					continue
				}
				summaries = append(summaries, summarize(store))
			}
			sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })

			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), nothingInstalledMsg(cfg))
				return nil
			}

			if format != formatText {
				return renderStructured(cmd.OutOrStdout(), format, summaries)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "venvs are in %s\n", style.Dim.Render(p.VenvsDir()))
			for _, s := range summaries {
				fmt.Fprintln(cmd.OutOrStdout(), renderSummaryLine(s))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json, or yaml")
	return cmd
}
