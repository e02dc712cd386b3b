package config

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/localize-it/internal/errors"
	"github.com/thoreinstein/localize-it/internal/paths"
	"github.com/thoreinstein/localize-it/internal/template"
	"github.com/thoreinstein/localize-it/pkg/fileutil"
)

// ErrUnknownKey indicates a key outside Keys().
var ErrUnknownKey = errors.New("unknown config key")

// Known reports whether key is a config key.
func Known(key string) bool {
	return slices.Contains(Keys(), key)
}

// Set parses value for key, stores it in viper and returns the parsed
// value. The resulting config must still validate; on failure the previous
// value is restored.
func Set(key, value string) (any, error) {
	if !Known(key) {
		return nil, errors.Mark(
			errors.Wrapf(ErrUnknownKey, "%s (valid: %s)", key, strings.Join(Keys(), ", ")),
			errors.ErrInvalidConfig)
	}

	var parsed any
	switch key {
	case KeyVersion:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, errors.Mark(errors.Newf("version %q is not a number", value), errors.ErrInvalidConfig)
		}
		parsed = n
	case KeyOpen:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return nil, errors.Mark(errors.Newf("open %q is not a boolean", value), errors.ErrInvalidConfig)
		}
		parsed = b
	case KeyLanguages, KeyToggles:
		list := SplitList(value)
		if list == nil {
			list = []string{}
		}
		parsed = list
	default:
		parsed = strings.TrimSpace(value)
	}

	previous := viper.Get(key)
	viper.Set(key, parsed)
	if _, err := Current(); err != nil {
		viper.Set(key, previous)
		return nil, err
	}
	return parsed, nil
}

// Save applies updates to the config file at path, creating the file and
// its directory when missing. Only values already in the file and the
// updates are written; values from the environment never reach the file.
func Save(fsys afero.Fs, path string, updates map[string]any) error {
	values, err := readFile(fsys, path)
	if err != nil {
		return err
	}
	for k, v := range updates {
		values[k] = v
	}

	if err := fsys.MkdirAll(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteYAML(fsys, path, values); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}

// readFile returns the raw values of the config file at path. A missing
// file yields the starter values written by a fresh config.
func readFile(fsys afero.Fs, path string) (map[string]any, error) {
	data, err := afero.ReadFile(fsys, path)
	if os.IsNotExist(err) {
		return map[string]any{
			KeyVersion: CurrentVersion,
			KeyVariant: template.DefaultVariant,
			KeyOpen:    true,
		}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parsing %s", path), errors.ErrInvalidConfig)
	}
	if values == nil {
		values = map[string]any{}
	}
	if _, ok := values[KeyVersion]; !ok {
		values[KeyVersion] = CurrentVersion
	}
	return values, nil
}
