package config

import (
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/localize-it/internal/errors"
	"github.com/thoreinstein/localize-it/internal/paths"
	"github.com/thoreinstein/localize-it/internal/template"
)

// CurrentVersion is the only supported config file version.
const CurrentVersion = 1

// Keys that may be read and written with `localize-it config`.
const (
	KeyVersion      = "version"
	KeyVariant      = "variant"
	KeyBaseLanguage = "base_language"
	KeyLanguages    = "languages"
	KeyAPIKey       = "api_key"
	KeyToggles      = "toggles"
	KeyTemplateFile = "template_file"
	KeyEditor       = "editor"
	KeyOpen         = "open"
)

// Keys returns every known config key in file order.
func Keys() []string {
	return []string{
		KeyVersion, KeyVariant, KeyBaseLanguage, KeyLanguages, KeyAPIKey,
		KeyToggles, KeyTemplateFile, KeyEditor, KeyOpen,
	}
}

// ListKeys are the keys holding comma separated lists.
var ListKeys = []string{KeyLanguages, KeyToggles}

// Config represents the configuration file.
type Config struct {
	Version      int      `mapstructure:"version" yaml:"version"`
	Variant      string   `mapstructure:"variant" yaml:"variant"`
	BaseLanguage string   `mapstructure:"base_language" yaml:"base_language,omitempty"`
	Languages    []string `mapstructure:"languages" yaml:"languages,omitempty"`
	APIKey       string   `mapstructure:"api_key" yaml:"api_key,omitempty"`
	Toggles      []string `mapstructure:"toggles" yaml:"toggles,omitempty"`
	TemplateFile string   `mapstructure:"template_file" yaml:"template_file,omitempty"`
	Editor       string   `mapstructure:"editor" yaml:"editor,omitempty"`
	Open         bool     `mapstructure:"open" yaml:"open"`
}

// Init resets viper and installs search paths, environment binding and
// defaults. Call it once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("LOCALIZE_IT")
	viper.AutomaticEnv()

	viper.SetDefault(KeyVersion, CurrentVersion)
	viper.SetDefault(KeyVariant, template.DefaultVariant)
	viper.SetDefault(KeyOpen, true)
	// Registered so AutomaticEnv can see them during Unmarshal
	for _, k := range []string{KeyBaseLanguage, KeyAPIKey, KeyTemplateFile, KeyEditor} {
		viper.SetDefault(k, "")
	}
	viper.SetDefault(KeyLanguages, []string{})
	viper.SetDefault(KeyToggles, []string{})
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load without a file: defaults apply
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	return Current()
}

// Current decodes and validates the live viper state.
func Current() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// Path returns the config file in use, or the default location when none
// was read.
func Path() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return paths.ConfigFile()
}

// Params layers the config over a variant's defaults. Unset values keep
// the defaults.
func (c *Config) Params(defaults template.Params) (template.Params, error) {
	p := defaults.Clone()

	if c.BaseLanguage != "" {
		p.BaseLanguage = c.BaseLanguage
	}
	if len(c.Languages) > 0 {
		p.Languages = slices.Clone(c.Languages)
	}
	if c.APIKey != "" {
		p.APIKey = c.APIKey
	}
	for _, raw := range c.Toggles {
		name, value, err := template.ParseToggle(raw)
		if err != nil {
			return template.Params{}, errors.Mark(errors.Wrap(err, "config toggles"), errors.ErrInvalidConfig)
		}
		p.SetToggle(name, value)
	}

	return p, nil
}

// SplitList splits a comma separated flag or config value, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for item := range strings.SplitSeq(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
