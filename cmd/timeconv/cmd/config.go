package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, environment overrides and
command line flags were applied, in TOML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if path := app.cfg.FilePath(); path != "" {
				fmt.Fprintf(out, "# loaded from %s\n", path)
			}
			fmt.Fprint(out, app.cfg.String())
			return nil
		},
	}
}
