package cmd

import (
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/timeconv/foundation/core/error"
	"github.com/msto63/timeconv/foundation/utils/timex"
)

func newNowCmd(app *App) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current time since the epoch",
		Long: `Print the current UTC time as seconds (s), milliseconds (ms) or
nanoseconds (ns) since the epoch, or as an ISO-8601 string (iso).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run("now", func() error {
				var value string
				switch unit {
				case "s":
					value = formatNumber(app.conv.UTCNowTimestamp())
				case "ms":
					value = formatNumber(app.conv.UTCNowMs())
				case "ns":
					value = formatNumber(app.conv.UTCNowNs())
				case "iso":
					value = timex.UTCDatetimeToISOString(app.conv.UTCNow())
				default:
					return mdwerror.New("unknown unit " + unit + ": expected s, ms, ns or iso").
						WithCode(mdwerror.CodeInvalidInput).
						WithOperation("cmd.now").
						WithDetail("unit", unit)
				}
				app.writeResult(cmd.OutOrStdout(), field{"now_" + unit, value})
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "ms", "unit: s, ms, ns or iso")
	return cmd
}
