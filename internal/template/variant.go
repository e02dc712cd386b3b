package template

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/localize-it/internal/errors"
)

// Variant names.
const (
	Minimal  = "minimal"
	Standard = "standard"
	Extended = "extended"
)

// DefaultVariant is used when neither flags nor config pick one.
const DefaultVariant = Minimal

// Fixed frame of every built-in variant.
const (
	importLine      = "import 'package:annotations/annotations.dart';"
	annotationLine  = "@localized"
	configClassName = "LocaleConfiguration"
)

// Variant is a named, fixed flavor of the generated file.
type Variant struct {
	Name        string
	Description string
	Defaults    Params

	// commented adds explanatory comments above each constant.
	commented bool
	// withAPIKey always emits the api key constant, even when empty.
	withAPIKey bool
}

var builtins = []*Variant{
	{
		Name:        Minimal,
		Description: "Base language and supported languages, no comments",
		Defaults: Params{
			BaseLanguage: "de",
			Languages:    []string{"de", "en"},
		},
	},
	{
		Name:        Standard,
		Description: "Minimal plus a short explanation above each constant",
		Defaults: Params{
			BaseLanguage: "de",
			Languages:    []string{"de", "en"},
		},
		commented: true,
	},
	{
		Name:        Extended,
		Description: "Commented, with translation service key and feature flags",
		Defaults: Params{
			BaseLanguage: "de",
			Languages:    []string{"de", "en", "es"},
			Toggles: []Toggle{
				{
					Name:  "escapeDollarSign",
					Value: true,
					Comments: []string{
						"Escape '$' in generated strings so Dart does not",
						"read it as string interpolation.",
					},
				},
				{
					Name:  "generateMissingTranslations",
					Value: false,
					Comments: []string{
						"Fill keys missing from a language file through the",
						"translation service configured with apiKey.",
					},
				},
			},
		},
		commented:  true,
		withAPIKey: true,
	},
}

// Variants returns the built-in variants in display order.
func Variants() []*Variant {
	return builtins
}

// Names returns the built-in variant names.
func Names() []string {
	names := make([]string, len(builtins))
	for i, v := range builtins {
		names[i] = v.Name
	}
	return names
}

// Lookup returns the built-in variant called name.
func Lookup(name string) (*Variant, error) {
	for _, v := range builtins {
		if v.Name == name {
			return v, nil
		}
	}
	return nil, errors.Mark(
		errors.Newf("unknown variant %q (valid: %s)", name, strings.Join(Names(), ", ")),
		errors.ErrInvalidParams)
}

// Build validates p and returns the variant's template for it.
func (v *Variant) Build(p Params) (*Template, error) {
	p, err := p.Normalize()
	if err != nil {
		return nil, err
	}

	t := &Template{
		Header:     []string{importLine, ""},
		Annotation: annotationLine,
		Class:      configClassName,
	}

	t.Groups = append(t.Groups, v.group(
		[]string{
			"The language the source strings are written in.",
			"Lookups fall back to it when a translation is missing.",
		},
		indent+"static const String "+baseLanguageConst+" = "+dartString(p.BaseLanguage)+";",
	))

	list := []string{indent + "static const List<String> " + languagesConst + " = ["}
	for _, code := range p.Languages {
		list = append(list, indent+indent+dartString(code)+",")
	}
	list = append(list, indent+"];")
	t.Groups = append(t.Groups, v.group(
		[]string{
			"Every language a translation file is generated for.",
			"Must contain " + baseLanguageConst + ".",
		},
		list...,
	))

	if v.withAPIKey || p.APIKey != "" {
		t.Groups = append(t.Groups, v.group(
			[]string{
				"Key for the external translation service.",
				"Leave empty to disable automatic translation.",
			},
			indent+"static const String "+apiKeyConst+" = "+dartString(p.APIKey)+";",
		))
	}

	for _, tg := range p.Toggles {
		t.Groups = append(t.Groups, v.group(
			tg.Comments,
			fmt.Sprintf("%sstatic const bool %s = %t;", indent, tg.Name, tg.Value),
		))
	}

	// Groups are separated by one blank line; none after the last
	for i := range t.Groups {
		t.Groups[i].Blank = i < len(t.Groups)-1
	}

	return t, nil
}

func (v *Variant) group(comments []string, lines ...string) Group {
	g := Group{Lines: lines}
	if v.commented {
		g.Comments = comments
	}
	return g
}
