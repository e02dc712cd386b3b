package template

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/localize-it/internal/errors"
)

func TestDefinition_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		for _, name := range Names() {
			t.Run(string(format)+"/"+name, func(t *testing.T) {
				v, err := Lookup(name)
				require.NoError(t, err)
				want, err := v.Build(v.Defaults)
				require.NoError(t, err)

				data, err := MarshalDefinition(want, format)
				require.NoError(t, err)

				got, err := ParseDefinition(data, format)
				require.NoError(t, err)
				assert.Equal(t, string(Render(want)), string(Render(got)))
			})
		}
	}
}

func TestLoadDefinition(t *testing.T) {
	fsys := afero.NewMemMapFs()
	yamlDef := `header:
  - "import 'package:annotations/annotations.dart';"
  - ""
annotation: "@localized"
class: HouseConfig
groups:
  - comments: ["Team default."]
    lines: ["  static const String baseLanguageCode = 'nl';"]
`
	require.NoError(t, afero.WriteFile(fsys, "/defs/house.yml", []byte(yamlDef), 0o644))

	tmpl, err := LoadDefinition(fsys, "/defs/house.yml")
	require.NoError(t, err)

	want := "import 'package:annotations/annotations.dart';\n\n@localized\nclass HouseConfig {\n" +
		"  // Team default.\n  static const String baseLanguageCode = 'nl';\n}\n"
	assert.Equal(t, want, string(Render(tmpl)))
}

func TestLoadDefinition_TOML(t *testing.T) {
	fsys := afero.NewMemMapFs()
	tomlDef := `header = ["import 'package:annotations/annotations.dart';"]
annotation = "@localized"
class = "LocaleConfiguration"

[[groups]]
lines = ["  static const String baseLanguageCode = 'de';"]
`
	require.NoError(t, afero.WriteFile(fsys, "/def.toml", []byte(tomlDef), 0o644))

	tmpl, err := LoadDefinition(fsys, "/def.toml")
	require.NoError(t, err)
	assert.Equal(t, "LocaleConfiguration", tmpl.Class)
	require.Len(t, tmpl.Groups, 1)
}

func TestLoadDefinition_Errors(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/bad-class.yaml", []byte("class: lower\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/empty-group.yaml", []byte("class: A\ngroups:\n  - comments: [x]\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/unknown.toml", []byte("class = \"A\"\nfooter = \"x\"\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/def.json", []byte("{}"), 0o644))

	tests := []struct {
		path    string
		wantErr string
	}{
		{"/bad-class.yaml", "upper camel case"},
		{"/empty-group.yaml", "group 1 has no lines"},
		{"/unknown.toml", "parsing TOML definition"},
		{"/def.json", "unsupported definition file"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := LoadDefinition(fsys, tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.Is(err, errors.ErrInvalidParams))
		})
	}

	_, err := LoadDefinition(fsys, "/missing.yaml")
	require.Error(t, err)
	assert.False(t, errors.Is(err, errors.ErrInvalidParams))
}
