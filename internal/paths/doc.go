// Package paths provides the fixed locations used by localize-it.
//
// Two kinds of paths live here: the scaffold layout, whose names are
// constants of the tool and never derived from user input, and the tool's
// own configuration directory.
//
// # Scaffold Layout
//
// For a selected directory D the generated file always lands at:
//
//	D/l10n/localization_config.dart
//
// [TargetDir] and [OutputFile] compute these locations from D.
//
// # XDG Base Directory Compliance
//
// The configuration directory wraps github.com/adrg/xdg for cross-platform
// XDG Base Directory compliance (~/.config on Linux). The
// LOCALIZE_IT_CONFIG_DIR environment variable overrides it.
package paths
