// Package commands implements the CLI commands for localize-it.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/localize-it/internal/config"
	"github.com/thoreinstein/localize-it/internal/errors"
	"github.com/thoreinstein/localize-it/internal/logging"
)

// debugEnv raises the log level when no -v flag is given.
const debugEnv = "LOCALIZE_IT_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// loadedConfig is the config read during initialization.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml or $XDG_CONFIG_HOME/localize-it/config.yaml)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("localize-it version {{.Version}}\n")

	// Errors are printed by main with their suggestion
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "localize-it",
	Short: "Scaffold a localization configuration for Dart projects",
	Long: `localize-it creates l10n/localization_config.dart next to a selected
file or directory, fills it with a localization configuration class and
opens it in your editor.

The content comes from a built-in variant (minimal, standard, extended) or
from a YAML/TOML definition file. Defaults are read from config.yaml in the
current directory or in $XDG_CONFIG_HOME/localize-it.`,
	Example: `  # Scaffold next to a file
  localize-it create lib/main.dart

  # Pick a variant interactively
  localize-it create lib --pick

  # Show the built-in variants
  localize-it variants list

  See Also: localize-it config, localize-it variants`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("--quiet and --verbose are mutually exclusive"),
			"Use either -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primary slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primary = logging.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case logging.FormatText, "":
		primary = logging.NewHandler(cmd.ErrOrStderr(), opts)
	default:
		return errors.NewUserError(errors.Newf("unknown log format %q", logFormat),
			"Use --log-format text or --log-format json")
	}

	handlers := []slog.Handler{primary}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		handlers = append(handlers, logging.NewJSONHandler(f, opts))
	}

	handler := handlers[0]
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports a broken config file. The config and help commands
// stay usable so the file can be repaired.
func checkConfig(cmd *cobra.Command) error {
	if configLoadErr == nil {
		return nil
	}
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version", configCmd.Name():
			return nil
		}
	}
	return errors.NewConfigError(configLoadErr)
}

// currentConfig returns the loaded config, or defaults when loading failed.
func currentConfig() *config.Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	return &config.Config{Version: config.CurrentVersion, Open: true}
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
