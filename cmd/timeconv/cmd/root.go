package cmd

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/timeconv/foundation/core/config"
	mdwlog "github.com/msto63/timeconv/foundation/core/log"
	"github.com/msto63/timeconv/foundation/utils/timex"
)

// App carries the per-invocation state shared by all commands.
type App struct {
	// Clock overrides the system clock when set.
	Clock timex.Clock
	// Discovery overrides the config search locations when set.
	Discovery *config.DiscoveryOptions

	Stdout io.Writer
	Stderr io.Writer

	cfgFile  string
	timezone string
	output   string
	verbose  bool

	cfg    *config.Config
	logger *mdwlog.Logger
	conv   *timex.Converter
}

// Execute runs the CLI against the process arguments and streams.
func Execute() error {
	app := &App{Stdout: os.Stdout, Stderr: os.Stderr}
	err := NewRootCmd(app).Execute()
	if err != nil {
		printError(app.Stderr, err)
	}
	return err
}

// NewRootCmd builds the command tree bound to app.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timeconv",
		Short: "timeconv - date/time conversion toolkit",
		Long: `timeconv converts between epoch milliseconds, UTC and local datetimes,
ISO-8601 strings and strftime formatted strings.

Numbers are milliseconds since 1970-01-01T00:00:00Z unless a command says
otherwise. Pass negative values after "--".`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}

	if app.Stdout != nil {
		rootCmd.SetOut(app.Stdout)
	}
	if app.Stderr != nil {
		rootCmd.SetErr(app.Stderr)
	}

	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default: ./timeconv.toml or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&app.timezone, "tz", "", "IANA zone used as local time (default: host zone)")
	rootCmd.PersistentFlags().StringVarP(&app.output, "output", "o", "", "output mode: text or table")
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newNowCmd(app),
		newToISOCmd(app),
		newFromISOCmd(app),
		newLocalCmd(app),
		newDayCmd(app),
		newAddDaysCmd(app),
		newFormatCmd(app),
		newMMSSCmd(app),
		newInspectCmd(app),
		newConfigCmd(app),
		newVersionCmd(),
	)

	return rootCmd
}

func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	if a.timezone != "" {
		cfg.Time.Timezone = a.timezone
	}
	if a.output != "" {
		cfg.Time.Output = a.output
	}
	if err := cfg.Validate().Err(); err != nil {
		return err
	}

	level, _ := mdwlog.ParseLevel(cfg.Log.Level)
	if a.verbose {
		level = mdwlog.LevelDebug
	}
	format, _ := mdwlog.ParseFormat(cfg.Log.Format)

	a.logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "timeconv",
	}).WithCorrelationID(uuid.NewString())

	var zones timex.ZoneResolver = timex.SystemZoneResolver{}
	if cfg.Time.Timezone != "" {
		zones = timex.NamedZoneResolver{Name: cfg.Time.Timezone}
	}
	opts := []timex.Option{timex.WithZoneResolver(zones), timex.WithLogger(a.logger)}
	if a.Clock != nil {
		opts = append(opts, timex.WithClock(a.Clock))
	}

	a.cfg = cfg
	a.conv = timex.New(opts...)

	a.logger.Debug("configuration loaded", mdwlog.Fields{
		"file":     cfg.FilePath(),
		"timezone": cfg.Time.Timezone,
		"output":   cfg.Time.Output,
	})
	return nil
}

func (a *App) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.Load(a.cfgFile)
	}
	if a.Discovery != nil {
		return config.Discover(*a.Discovery)
	}
	return config.Discover(config.DefaultDiscoveryOptions())
}

// run times the operation. Failures are logged at the level their severity
// maps to.
func (a *App) run(operation string, fn func() error) error {
	timer := a.logger.StartTimer(operation)
	if err := fn(); err != nil {
		a.logger.LogError(err)
		return err
	}
	timer.Stop()
	return nil
}
