// Package config provides configuration management for the localize-it CLI.
//
// Configuration supplies the defaults a scaffold run starts from. Command
// line flags override it, and it overrides the chosen variant's built-in
// values.
//
// # Configuration File
//
// The file is looked up as config.yaml in the current directory, then in
// $XDG_CONFIG_HOME/localize-it (overridable with LOCALIZE_IT_CONFIG_DIR):
//
//	version: 1
//	variant: extended
//	base_language: en
//	languages: [en, de, fr]
//	api_key: ""
//	toggles:
//	  - generateMissingTranslations=true
//	editor: code --wait
//	open: true
//
// Toggles are "name=bool" strings because viper folds map keys to lower
// case and toggle names are case sensitive.
//
// Every key can also be set through the environment with the LOCALIZE_IT_
// prefix, e.g. LOCALIZE_IT_VARIANT=standard.
//
// # Validation
//
// [Load] validates what it reads; [Validate] can be called directly.
package config
