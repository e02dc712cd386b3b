package config

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/localize-it/internal/errors"
	"github.com/thoreinstein/localize-it/internal/template"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, errors.Mark(errors.Newf("unsupported config version: %d", cfg.Version), ErrUnsupportedVersion))
	}

	if cfg.Variant != "" {
		if _, err := template.Lookup(cfg.Variant); err != nil {
			errs = append(errs, &FieldError{Field: KeyVariant, Err: err})
		}
	}

	if cfg.BaseLanguage != "" {
		if _, err := template.CanonicalLanguage(cfg.BaseLanguage); err != nil {
			errs = append(errs, &FieldError{Field: KeyBaseLanguage, Err: err})
		}
	}

	for _, code := range cfg.Languages {
		if _, err := template.CanonicalLanguage(code); err != nil {
			errs = append(errs, &FieldError{Field: KeyLanguages, Err: err})
		}
	}

	for _, raw := range cfg.Toggles {
		name, _, err := template.ParseToggle(raw)
		if err == nil && !template.ValidToggleName(name) {
			err = errors.Newf("invalid toggle name %q", name)
		}
		if err != nil {
			errs = append(errs, &FieldError{Field: KeyToggles, Err: err})
		}
	}

	if cfg.TemplateFile != "" {
		if err := validatePath(cfg.TemplateFile); err != nil {
			errs = append(errs, &FieldError{Field: KeyTemplateFile, Err: err})
		} else if _, err := template.FormatFromPath(cfg.TemplateFile); err != nil {
			errs = append(errs, &FieldError{Field: KeyTemplateFile, Err: err})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}
	return nil
}

// FieldError is a validation error for one config key.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
