package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/localize-it/internal/config"
	"github.com/thoreinstein/localize-it/internal/errors"
	"github.com/thoreinstein/localize-it/internal/logging"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage localize-it configuration",
	Long: `Manage localize-it configuration stored in config.yaml.

The file is read from the current directory first, then from
$XDG_CONFIG_HOME/localize-it. Environment variables prefixed with
LOCALIZE_IT_ override file values.

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  localize-it config

  # Use the extended variant by default
  localize-it config set variant extended

  # Default language list
  localize-it config set languages de,en,fr

See Also: localize-it create`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

List values are printed one per line.`,
	Example: `  localize-it config get variant

See Also: localize-it config set, localize-it config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

For list values (languages, toggles) use comma-separated values. Toggles
are written as name=true or name=false. The value is validated before the
file is written.`,
	Example: `  localize-it config set base_language en
  localize-it config set toggles escapeDollarSign=false
  localize-it config set editor "code --wait"

See Also: localize-it config get, localize-it config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format. The API key is masked.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.Path())
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your editor.

The file is created with starter values first when it does not exist.`,
	Example: `  EDITOR=nano localize-it config edit

See Also: localize-it config list`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !config.Known(key) {
		return errors.NewConfigError(errors.Wrapf(config.ErrUnknownKey, "%s", key))
	}

	out := cmd.OutOrStdout()
	switch v := viper.Get(key).(type) {
	case []any:
		for _, item := range v {
			fmt.Fprintln(out, item)
		}
	case []string:
		for _, item := range v {
			fmt.Fprintln(out, item)
		}
	default:
		fmt.Fprintln(out, viper.GetString(key))
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	parsed, err := config.Set(key, value)
	if err != nil {
		return errors.NewConfigError(err)
	}

	path := config.Path()
	if err := config.Save(newFs(), path, map[string]any{key: parsed}); err != nil {
		return err
	}
	logging.FromContext(cmd.Context()).Debug("config written", "path", path)

	shown := viper.Get(key)
	if logging.ShouldMask(key) {
		shown = logging.MaskValue(viper.GetString(key))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, shown)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Current()
	if err != nil {
		return errors.NewConfigError(err)
	}
	if cfg.APIKey != "" {
		cfg.APIKey = logging.MaskValue(cfg.APIKey)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	_, err = cmd.OutOrStdout().Write(data)
	return errors.Wrap(err, "writing to stdout")
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := config.Path()
	fsys := newFs()

	if _, err := fsys.Stat(path); os.IsNotExist(err) {
		if err := config.Save(fsys, path, nil); err != nil {
			return err
		}
		logging.FromContext(cmd.Context()).Info("created config file", "path", path)
	}

	return newOpener(currentConfig().Editor).Open(cmd.Context(), path)
}
