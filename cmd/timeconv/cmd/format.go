package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/timeconv/foundation/utils/timex"
)

func newFormatCmd(app *App) *cobra.Command {
	var (
		pattern string
		local   bool
	)

	cmd := &cobra.Command{
		Use:   "format <ms>",
		Short: "Render epoch milliseconds with a strftime pattern",
		Long: `Render epoch milliseconds with a strftime pattern such as "%d-%m-%Y %H:%M".
The default pattern comes from [time] format in the config file.`,
		Example: "  timeconv format 1703518200000 -f \"%d-%m-%Y %H:%M\"",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run("format", func() error {
				ms, err := parseMs("format", args[0])
				if err != nil {
					return err
				}

				t := timex.UTCMsToUTCDatetime(ms)
				if local {
					if t, err = app.conv.UTCToLocal(t); err != nil {
						return err
					}
				}

				if pattern == "" {
					pattern = app.cfg.Time.Format
				}
				s, err := timex.FormatDatetimeToCustomString(t, pattern)
				if err != nil {
					return err
				}
				app.writeResult(cmd.OutOrStdout(), field{"formatted", s})
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&pattern, "format", "f", "", "strftime pattern")
	cmd.Flags().BoolVarP(&local, "local", "l", false, "render in the local zone instead of UTC")
	return cmd
}

func newMMSSCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "mmss <seconds>",
		Short:   "Render a duration in seconds as minutes and seconds",
		Example: "  timeconv mmss 125",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run("mmss", func() error {
				seconds, err := parseNumber("mmss", "seconds", args[0])
				if err != nil {
					return err
				}
				app.writeResult(cmd.OutOrStdout(), field{"duration", timex.SecondsToMMSSStr(seconds)})
				return nil
			})
		},
	}
}
