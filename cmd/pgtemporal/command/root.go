// Package command implements the pgtemporal command line interface.
package command

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theory/pgtemporal/temporal"
	"github.com/theory/pgtemporal/temporal/types"
)

// envPrefix prefixes the environment variables that override the
// persistent flags, e.g. PGTEMPORAL_DATESTYLE.
const envPrefix = "PGTEMPORAL"

// configName is the base name of the configuration file searched for when
// --config is not set.
const configName = "pgtemporal"

// settings lists the persistent flags bound to configuration keys.
//
//nolint:gochecknoglobals
var settings = []string{"datestyle", "offset", "zone", "config", "log-level"}

// app holds the state shared by all commands. PersistentPreRunE
// populates logger and engine once flags and configuration are loaded.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
	engine *temporal.Engine
}

// NewRootCommand creates and returns the root command with all subcommands.
// Each call returns an independent command tree with its own configuration.
func NewRootCommand() *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: slog.New(slog.DiscardHandler),
		engine: temporal.New(),
	}

	root := &cobra.Command{
		Use:   "pgtemporal",
		Short: "Parse, format, and compute with PostgreSQL dates, timestamps, and intervals",
		Long: `pgtemporal reads and writes date, timestamp, timestamptz, and interval
values exactly as PostgreSQL does, and performs PostgreSQL timestamp and
interval arithmetic.

Configuration:
  Settings come from, in order of precedence, command line flags,
  PGTEMPORAL_* environment variables (PGTEMPORAL_DATESTYLE,
  PGTEMPORAL_OFFSET, PGTEMPORAL_ZONE, PGTEMPORAL_LOG_LEVEL), and a
  configuration file. The file is the one named by --config, or else
  pgtemporal.yaml, pgtemporal.json, or pgtemporal.toml in the current
  directory or in $HOME/.config/pgtemporal.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Flag errors have been reported by now; silence usage for
			// everything else.
			cmd.SilenceUsage = true
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("datestyle", "ISO, MDY", "output style and input field order, as for PostgreSQL DateStyle")
	flags.Int("offset", 0, "session UTC offset in seconds east of Greenwich")
	flags.String("zone", "", "time zone abbreviation printed in place of the offset")
	flags.String("config", "", "configuration file to read")
	flags.String("log-level", "warn", "log level: debug, info, warn, or error")

	for _, name := range settings {
		cobra.CheckErr(a.v.BindPFlag(name, flags.Lookup(name)))
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.dateCommand(),
		a.timestampCommand(),
		a.intervalCommand(),
		a.shiftCommand("add", "Add an interval to a timestamp", false),
		a.shiftCommand("sub", "Subtract an interval from a timestamp", true),
		a.diffCommand(),
		a.cmpCommand(),
		a.justifyCommand(),
		a.hashCommand(),
		a.stylesCommand(),
	)

	return root
}

// setup loads the configuration file, then configures the logger and the
// engine from the merged settings.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.readConfig(); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))

	style, order, err := types.ParseDateStyle(a.v.GetString("datestyle"))
	if err != nil {
		return err
	}

	// Environment and file values arrive as strings or floats.
	offset, err := toInt64(a.v.Get("offset"))
	if err != nil {
		return fmt.Errorf("invalid offset: %w", err)
	}

	zone := a.v.GetString("zone")
	a.engine = temporal.New(
		temporal.WithDateStyle(style),
		temporal.WithDateOrder(order),
		temporal.WithOffset(int(offset)),
		temporal.WithZoneLabel(zone),
	)

	a.logger.Debug("engine configured",
		"command", cmd.CommandPath(),
		"datestyle", types.FormatDateStyle(style, order),
		"offset", offset,
		"zone", zone,
		"config", a.v.ConfigFileUsed(),
	)
	return nil
}

// readConfig reads the file named by the config setting, or searches for
// pgtemporal.{yaml,json,toml}. A missing file is an error only when named
// explicitly.
func (a *app) readConfig() error {
	path := a.v.GetString("config")
	if path != "" {
		a.v.SetConfigFile(path)
	} else {
		a.v.SetConfigName(configName)
		a.v.AddConfigPath(".")
		a.v.AddConfigPath("$HOME/.config/pgtemporal")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// toInt64 converts a setting or argument to an int64. Strings are read in
// base 10 as PostgreSQL reads integers, so "010" is ten and "0x10" is an
// error. Other values, such as numbers decoded from a config file, go
// through cast.
func toInt64(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return cast.ToInt64E(v)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, errors.Unwrap(err))
	}
	return n, nil
}
