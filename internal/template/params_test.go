package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/localize-it/internal/errors"
)

func TestParams_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Params
		wantBase  string
		wantLangs []string
	}{
		{
			name:      "defaults unchanged",
			in:        Params{BaseLanguage: "de", Languages: []string{"de", "en"}},
			wantBase:  "de",
			wantLangs: []string{"de", "en"},
		},
		{
			name:      "base prepended when missing",
			in:        Params{BaseLanguage: "de", Languages: []string{"en", "es"}},
			wantBase:  "de",
			wantLangs: []string{"de", "en", "es"},
		},
		{
			name:      "caller order kept when base listed",
			in:        Params{BaseLanguage: "de", Languages: []string{"en", "de"}},
			wantBase:  "de",
			wantLangs: []string{"en", "de"},
		},
		{
			name:      "canonical case and duplicates",
			in:        Params{BaseLanguage: "EN", Languages: []string{"en", "EN", "pt-br", "pt-BR"}},
			wantBase:  "en",
			wantLangs: []string{"en", "pt-BR"},
		},
		{
			name:      "deprecated codes kept as written",
			in:        Params{BaseLanguage: "iw", Languages: []string{"he", "iw", "tl", "mo", "in"}},
			wantBase:  "iw",
			wantLangs: []string{"he", "iw", "tl", "mo", "in"},
		},
		{
			name:      "underscore separator kept",
			in:        Params{BaseLanguage: "pt_br", Languages: []string{"en", "zh_hant", "pt-BR"}},
			wantBase:  "pt_BR",
			wantLangs: []string{"pt_BR", "en", "zh_Hant"},
		},
		{
			name:      "empty list",
			in:        Params{BaseLanguage: "it"},
			wantBase:  "it",
			wantLangs: []string{"it"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Normalize()
			require.NoError(t, err)
			assert.Equal(t, tt.wantBase, got.BaseLanguage)
			assert.Equal(t, tt.wantLangs, got.Languages)
		})
	}
}

func TestParams_NormalizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      Params
		wantErr string
	}{
		{"empty base", Params{}, "language code is empty"},
		{"invalid base", Params{BaseLanguage: "not a code!"}, "invalid language code"},
		{"undetermined", Params{BaseLanguage: "und"}, "invalid language code"},
		{"invalid list entry", Params{BaseLanguage: "de", Languages: []string{"de", "??"}}, "invalid language code"},
		{"toggle not identifier", Params{BaseLanguage: "de", Toggles: []Toggle{{Name: "Use-Intl"}}}, "lower camel case"},
		{"toggle reserved", Params{BaseLanguage: "de", Toggles: []Toggle{{Name: "apiKey"}}}, "reserved"},
		{"toggle reserved word", Params{BaseLanguage: "de", Toggles: []Toggle{{Name: "class"}}}, "Dart reserved word"},
		{"toggle literal", Params{BaseLanguage: "de", Toggles: []Toggle{{Name: "true"}}}, "Dart reserved word"},
		{"toggle built-in identifier", Params{BaseLanguage: "de", Toggles: []Toggle{{Name: "static"}}}, "Dart reserved word"},
		{"toggle duplicate", Params{BaseLanguage: "de", Toggles: []Toggle{{Name: "a"}, {Name: "a"}}}, "duplicate toggle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.in.Normalize()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.Is(err, errors.ErrInvalidParams), "error should be marked invalid params")
		})
	}
}

func TestParseToggle(t *testing.T) {
	tests := []struct {
		in        string
		wantName  string
		wantValue bool
		wantErr   bool
	}{
		{"useIntl", "useIntl", true, false},
		{"useIntl=false", "useIntl", false, false},
		{" useIntl = On ", "useIntl", true, false},
		{"flag=0", "flag", false, false},
		{"=true", "", false, true},
		{"flag=maybe", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, value, err := ParseToggle(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestSetToggle(t *testing.T) {
	var p Params
	p.SetToggle("a", true)
	p.SetToggle("b", false)
	p.SetToggle("a", false)

	require.Len(t, p.Toggles, 2)
	assert.Equal(t, Toggle{Name: "a", Value: false}, p.Toggles[0])
	assert.Equal(t, "b", p.Toggles[1].Name)
}

func TestDartString(t *testing.T) {
	tests := map[string]string{
		"":        "''",
		"de":      "'de'",
		"it's":    `'it\'s'`,
		`a\b`:     `'a\\b'`,
		"$HOME":   `'\$HOME'`,
		"two\nln": `'two\nln'`,
	}
	for in, want := range tests {
		assert.Equal(t, want, dartString(in), "dartString(%q)", in)
	}
}

func TestCanonicalLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"de", "de"},
		{" EN-us ", "en-US"},
		{"iw", "iw"},
		{"in", "in"},
		{"tl", "tl"},
		{"mo", "mo"},
		{"pt_br", "pt_BR"},
		{"zh_hant_tw", "zh_Hant_TW"},
		{"sr-latn", "sr-Latn"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CanonicalLanguage(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidToggleName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"useIntl", true},
		{"escapeDollarSign", true},
		{"class", false},
		{"const", false},
		{"null", false},
		{"static", false},
		{"apiKey", false},
		{"Use", false},
		{"use_intl", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidToggleName(tt.name))
		})
	}
}
