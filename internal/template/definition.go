package template

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/localize-it/internal/errors"
)

// Format is a definition file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the definition format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Mark(
			errors.Newf("unsupported definition file %q (want .yaml, .yml or .toml)", path),
			errors.ErrInvalidParams)
	}
}

// LoadDefinition reads a template definition file.
func LoadDefinition(fsys afero.Fs, path string) (*Template, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading definition %s", path)
	}

	return ParseDefinition(data, format)
}

// ParseDefinition decodes and validates a template definition.
func ParseDefinition(data []byte, format Format) (*Template, error) {
	var t Template
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "parsing YAML definition"), errors.ErrInvalidParams)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&t); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "parsing TOML definition"), errors.ErrInvalidParams)
		}
	default:
		return nil, errors.Mark(errors.Newf("unknown format %q", format), errors.ErrInvalidParams)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// MarshalDefinition encodes t in the given format.
func MarshalDefinition(t *Template, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return nil, errors.Wrap(err, "encoding YAML definition")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "encoding YAML definition")
		}
		return buf.Bytes(), nil
	case FormatTOML:
		data, err := toml.Marshal(t)
		if err != nil {
			return nil, errors.Wrap(err, "encoding TOML definition")
		}
		return data, nil
	default:
		return nil, errors.Mark(errors.Newf("unknown format %q", format), errors.ErrInvalidParams)
	}
}

// Validate checks that a definition can render a well-formed file.
func (t *Template) Validate() error {
	if !classRegex.MatchString(t.Class) {
		return errors.Mark(
			errors.Newf("class name %q must be an upper camel case identifier", t.Class),
			errors.ErrInvalidParams)
	}
	for i, g := range t.Groups {
		if len(g.Lines) == 0 {
			return errors.Mark(
				errors.Newf("group %d has no lines", i+1),
				errors.ErrInvalidParams)
		}
	}
	return nil
}
