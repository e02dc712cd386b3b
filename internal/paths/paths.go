package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the application name used for directory and file naming.
const AppName = "localize-it"

// Scaffold layout constants.
const (
	// TargetDirName is the subdirectory created next to the selection.
	TargetDirName = "l10n"

	// OutputFileName is the generated configuration file name.
	OutputFileName = "localization_config.dart"
)

// ConfigDirEnv overrides the configuration directory when set.
const ConfigDirEnv = "LOCALIZE_IT_CONFIG_DIR"

// DefaultDirPerm is the permission for directories created by a scaffold run.
const DefaultDirPerm = 0o755

// DefaultFilePerm is the permission for the generated file.
const DefaultFilePerm = 0o644

// TargetDir returns the l10n directory for the given parent directory.
func TargetDir(parent string) string {
	return filepath.Join(parent, TargetDirName)
}

// OutputFile returns the generated file path for the given parent directory.
// Always returns: <parent>/l10n/localization_config.dart
func OutputFile(parent string) string {
	return filepath.Join(TargetDir(parent), OutputFileName)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the directory holding the localize-it config file.
// Returns $LOCALIZE_IT_CONFIG_DIR when set, otherwise <ConfigHome>/localize-it.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
