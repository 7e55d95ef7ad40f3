package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/timeconv/foundation/utils/timex"
)

func newToISOCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "to-iso <ms>",
		Short:   "Convert epoch milliseconds to an ISO-8601 UTC string",
		Example: "  timeconv to-iso 1703518200000",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run("to-iso", func() error {
				ms, err := parseMs("to-iso", args[0])
				if err != nil {
					return err
				}
				iso := timex.UTCDatetimeToISOString(timex.UTCMsToUTCDatetime(ms))
				app.writeResult(cmd.OutOrStdout(), field{"utc", iso})
				return nil
			})
		},
	}
}

func newFromISOCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "from-iso <iso>",
		Short: "Convert an ISO-8601 string to epoch milliseconds",
		Long: `Parse an ISO-8601 date or date-time and print its epoch milliseconds.
Strings without an offset are read as UTC.`,
		Example: "  timeconv from-iso 2023-12-25T15:30:00\n  timeconv from-iso \"2023-12-25 16:30:00+01:00\"",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run("from-iso", func() error {
				t, err := timex.ISOStringToUTCDatetime(args[0])
				if err != nil {
					return err
				}
				app.writeResult(cmd.OutOrStdout(),
					field{"utc_ms", formatNumber(timex.UTCDatetimeToUTCMs(t))},
					field{"utc", timex.UTCDatetimeToISOString(t.UTC())},
				)
				return nil
			})
		},
	}
}

func newLocalCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "local <ms>",
		Short:   "Convert epoch milliseconds to local wall-clock time",
		Example: "  timeconv local --tz Europe/Berlin 1703518200000",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run("local", func() error {
				ms, err := parseMs("local", args[0])
				if err != nil {
					return err
				}
				local, err := app.conv.UTCMsToLocalDatetime(ms)
				if err != nil {
					return err
				}
				app.writeResult(cmd.OutOrStdout(), field{"local", timex.UTCDatetimeToISOString(local)})
				return nil
			})
		},
	}
}

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "day <ms>",
		Short:   "Truncate epoch milliseconds to midnight UTC",
		Example: "  timeconv day 1703518200000",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run("day", func() error {
				ms, err := parseMs("day", args[0])
				if err != nil {
					return err
				}
				app.writeResult(cmd.OutOrStdout(),
					field{"day_ms", formatNumber(float64(timex.DayUTCMsFromUTCMs(ms)))},
					field{"day", timex.UTCDatetimeToISOString(timex.DayDatetimeFromUTCMs(ms))},
				)
				return nil
			})
		},
	}
}

func newAddDaysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "add-days <iso> <days>",
		Short:   "Add whole days of elapsed time to an ISO-8601 datetime",
		Example: "  timeconv add-days 2023-12-25T15:30:00 10",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run("add-days", func() error {
				t, err := timex.ISOStringToUTCDatetime(args[0])
				if err != nil {
					return err
				}
				days, err := parseDays("add-days", args[1])
				if err != nil {
					return err
				}
				result := timex.AddDaysToUTCDatetime(t, days)
				app.writeResult(cmd.OutOrStdout(), field{"result", timex.UTCDatetimeToISOString(result)})
				return nil
			})
		},
	}
}
