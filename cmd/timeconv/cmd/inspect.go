package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/timeconv/foundation/utils/timex"
)

func newInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <ms>",
		Short: "Show every representation of an instant",
		Long: `Show an instant given in epoch milliseconds as UTC, local time, day
boundary and custom format. The result is always printed as a table.`,
		Example: "  timeconv inspect --tz America/New_York 1703518200000",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run("inspect", func() error {
				ms, err := parseMs("inspect", args[0])
				if err != nil {
					return err
				}

				utc := timex.UTCMsToUTCDatetime(ms)
				local, err := app.conv.UTCToLocal(utc)
				if err != nil {
					return err
				}
				formatted, err := timex.FormatDatetimeToCustomString(utc, app.cfg.Time.Format)
				if err != nil {
					return err
				}

				writeTable(cmd.OutOrStdout(), []field{
					{"utc_ms", formatNumber(timex.UTCDatetimeToUTCMs(utc))},
					{"timestamp_s", formatNumber(ms / timex.SecondMs)},
					{"utc", timex.UTCDatetimeToISOString(utc)},
					{"local", timex.UTCDatetimeToISOString(local)},
					{"zone", local.Location().String()},
					{"day_ms", formatNumber(float64(timex.DayUTCMsFromUTCMs(ms)))},
					{"day", timex.UTCDatetimeToISOString(timex.DayDatetimeFromUTCMs(ms))},
					{"formatted", formatted},
				})
				return nil
			})
		},
	}
}
