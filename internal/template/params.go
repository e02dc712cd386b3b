package template

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/thoreinstein/localize-it/internal/errors"
)

// Params are the values baked into a rendered template.
type Params struct {
	// BaseLanguage is the language the source strings are written in.
	BaseLanguage string

	// Languages lists every language to generate, base included.
	Languages []string

	// APIKey authenticates against an external translation service.
	APIKey string

	// Toggles are boolean feature flags, rendered in order.
	Toggles []Toggle
}

// Toggle is a named boolean constant.
type Toggle struct {
	Name     string
	Value    bool
	Comments []string
}

// Reserved constant names that toggles may not shadow.
const (
	baseLanguageConst = "baseLanguageCode"
	languagesConst    = "supportedLanguageCodes"
	apiKeyConst       = "apiKey"
)

// dartReserved are Dart reserved words, built-in identifiers and the
// async-only await and yield. None of them can safely name a constant.
var dartReserved = map[string]bool{
	"abstract": true, "as": true, "covariant": true, "deferred": true, "dynamic": true,
	"export": true, "extension": true, "external": true, "factory": true, "get": true,
	"implements": true, "import": true, "interface": true, "late": true, "library": true,
	"mixin": true, "operator": true, "part": true, "required": true, "set": true,
	"static": true, "typedef": true,
	"assert": true, "await": true, "break": true, "case": true, "catch": true,
	"class": true, "const": true, "continue": true, "default": true, "do": true,
	"else": true, "enum": true, "extends": true, "false": true, "final": true,
	"finally": true, "for": true, "if": true, "in": true, "is": true,
	"new": true, "null": true, "rethrow": true, "return": true, "super": true,
	"switch": true, "this": true, "throw": true, "true": true, "try": true,
	"var": true, "void": true, "while": true, "with": true, "yield": true,
}

var (
	identRegex = regexp.MustCompile(`^[a-z][A-Za-z0-9]*$`)
	classRegex = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
)

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	out := Params{
		BaseLanguage: p.BaseLanguage,
		Languages:    slices.Clone(p.Languages),
		APIKey:       p.APIKey,
	}
	for _, t := range p.Toggles {
		out.Toggles = append(out.Toggles, Toggle{Name: t.Name, Value: t.Value, Comments: slices.Clone(t.Comments)})
	}
	return out
}

// SetToggle overrides the toggle called name, appending it when absent.
func (p *Params) SetToggle(name string, value bool) {
	for i := range p.Toggles {
		if p.Toggles[i].Name == name {
			p.Toggles[i].Value = value
			return
		}
	}
	p.Toggles = append(p.Toggles, Toggle{Name: name, Value: value})
}

// Normalize validates p and returns a normalized copy.
//
// Language codes must parse as BCP 47 tags. They keep the subtags the user
// wrote; only letter case is normalized. Duplicates are dropped keeping the
// first occurrence, and the base language is prepended to the list when
// missing. Toggle names must be lower camel case Dart identifiers distinct
// from the fixed constants.
func (p Params) Normalize() (Params, error) {
	out := p.Clone()

	base, err := CanonicalLanguage(p.BaseLanguage)
	if err != nil {
		return Params{}, errors.Wrap(err, "base language")
	}
	out.BaseLanguage = base

	// pt_BR and pt-BR name the same language
	key := func(code string) string { return strings.ReplaceAll(code, "_", "-") }

	seen := map[string]bool{}
	var langs []string
	for _, code := range p.Languages {
		c, err := CanonicalLanguage(code)
		if err != nil {
			return Params{}, errors.Wrap(err, "languages")
		}
		if seen[key(c)] {
			continue
		}
		seen[key(c)] = true
		langs = append(langs, c)
	}
	if !seen[key(base)] {
		langs = append([]string{base}, langs...)
	}
	out.Languages = langs

	names := map[string]bool{}
	for _, t := range out.Toggles {
		if err := checkToggleName(t.Name); err != nil {
			return Params{}, err
		}
		if names[t.Name] {
			return Params{}, errors.Mark(
				errors.Newf("duplicate toggle %q", t.Name),
				errors.ErrInvalidParams)
		}
		names[t.Name] = true
	}

	return out, nil
}

// CanonicalLanguage validates code as a BCP 47 tag and returns it with
// normalized letter case ("EN-us" becomes "en-US"). Deprecated subtags are
// kept as written ("iw" stays "iw"), and an underscore separator is kept
// ("pt_br" becomes "pt_BR").
func CanonicalLanguage(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", errors.Mark(errors.New("language code is empty"), errors.ErrInvalidParams)
	}
	invalid := errors.Mark(errors.Newf("invalid language code %q", code), errors.ErrInvalidParams)

	if tag, err := language.Parse(code); err != nil || tag == language.Und {
		return "", invalid
	}
	tag, err := language.Raw.Parse(code)
	if err != nil {
		return "", invalid
	}

	out := tag.String()
	if strings.Contains(code, "_") {
		out = strings.ReplaceAll(out, "-", "_")
	}
	return out, nil
}

// ValidToggleName reports whether name can be used as a toggle constant.
func ValidToggleName(name string) bool {
	return checkToggleName(name) == nil
}

func checkToggleName(name string) error {
	if !identRegex.MatchString(name) {
		return errors.Mark(
			errors.Newf("toggle name %q must be a lower camel case identifier", name),
			errors.ErrInvalidParams)
	}
	switch name {
	case baseLanguageConst, languagesConst, apiKeyConst:
		return errors.Mark(
			errors.Newf("toggle name %q is reserved", name),
			errors.ErrInvalidParams)
	}
	if dartReserved[name] {
		return errors.Mark(
			errors.Newf("toggle name %q is a Dart reserved word", name),
			errors.ErrInvalidParams)
	}
	return nil
}

// ParseToggle parses a "name=bool" flag value. A bare name means true.
func ParseToggle(s string) (string, bool, error) {
	name, raw, found := strings.Cut(strings.TrimSpace(s), "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false, errors.Mark(errors.Newf("toggle %q has no name", s), errors.ErrInvalidParams)
	}
	if !found {
		return name, true, nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "on", "1":
		return name, true, nil
	case "false", "no", "off", "0":
		return name, false, nil
	default:
		return "", false, errors.Mark(
			errors.Newf("toggle %q: value %q is not a boolean", name, raw),
			errors.ErrInvalidParams)
	}
}

// dartString quotes s as a single-quoted Dart string literal.
func dartString(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`$`, `\$`,
		"\n", `\n`,
		"\r", `\r`,
	)
	return "'" + r.Replace(s) + "'"
}
