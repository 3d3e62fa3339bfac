package stylesheet_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/stringify"
	"github.com/bjaus/stringify/stylesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlSheet = `
indent: "  "
styles:
  start: {newline: omit, level: 0}
  end: {newline: omit, level: 1}
  name: {newline: add, level: 2, indent: "\t"}
`

const tomlSheet = `
indent = "  "

[styles.start]
newline = "omit"
level = 0

[styles.end]
newline = "omit"
level = 1

[styles.name]
newline = "add"
level = 2
indent = "\t"
`

const jsonSheet = `{
  "indent": "  ",
  "styles": {
    "start": {"newline": "omit", "level": 0},
    "end": {"newline": "omit", "level": 1},
    "name": {"newline": "add", "level": 2, "indent": "\t"}
  }
}`

func wantSheet() stringify.Styles {
	return stringify.NewStyles(
		stringify.Bind(stringify.RoleStart, stringify.Style{Newline: stringify.Omit, Level: 0, Indent: "  "}),
		stringify.Bind(stringify.RoleEnd, stringify.Style{Newline: stringify.Omit, Level: 1, Indent: "  "}),
		stringify.Bind(stringify.RoleName, stringify.Style{Newline: stringify.Add, Level: 2, Indent: "\t"}),
	)
}

func TestParseFormats(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		data   string
		format stylesheet.Format
	}{
		"yaml": {data: yamlSheet, format: stylesheet.YAML},
		"toml": {data: tomlSheet, format: stylesheet.TOML},
		"json": {data: jsonSheet, format: stylesheet.JSON},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := stylesheet.Parse([]byte(tc.data), tc.format)
			require.NoError(t, err)
			assert.Equal(t, wantSheet().All(), got.All())
		})
	}
}

func TestParseDefaultsIndent(t *testing.T) {
	t.Parallel()
	got, err := stylesheet.Parse([]byte(`styles: {start: {level: 1}, end: {indent: ""}}`), stylesheet.YAML)
	require.NoError(t, err)
	start, err := got.Get(stringify.RoleStart)
	require.NoError(t, err)
	assert.Equal(t, stringify.NewStyle(stringify.Omit, 1), start)
	end, err := got.Get(stringify.RoleEnd)
	require.NoError(t, err)
	assert.Equal(t, stringify.Style{}, end)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		data   string
		format stylesheet.Format
	}{
		"bad newline":    {data: `styles: {start: {newline: maybe}}`, format: stylesheet.YAML},
		"negative level": {data: `styles: {start: {level: -1}}`, format: stylesheet.YAML},
		"unknown key":    {data: `styles: {start: {depth: 1}}`, format: stylesheet.YAML},
		"unknown top":    {data: `colour: red`, format: stylesheet.YAML},
		"syntax":         {data: `{"styles": `, format: stylesheet.JSON},
		"not a map":      {data: `- start`, format: stylesheet.YAML},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := stylesheet.Parse([]byte(tc.data), tc.format)
			require.ErrorIs(t, err, stylesheet.ErrInvalidStylesheet)
		})
	}
}

func TestParseNegativeLevelIsInvalidStyle(t *testing.T) {
	t.Parallel()
	_, err := stylesheet.Parse([]byte(`styles: {name: {level: -2}}`), stylesheet.YAML)
	require.ErrorIs(t, err, stringify.ErrInvalidStyle)
	assert.Contains(t, err.Error(), `role "name"`)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    stylesheet.Format
		wantErr require.ErrorAssertionFunc
	}{
		"yaml":    {input: "yaml", want: stylesheet.YAML, wantErr: require.NoError},
		"yml":     {input: "yml", want: stylesheet.YAML, wantErr: require.NoError},
		"toml":    {input: "toml", want: stylesheet.TOML, wantErr: require.NoError},
		"json":    {input: "json", want: stylesheet.JSON, wantErr: require.NoError},
		"unknown": {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := stylesheet.ParseFormat(tc.input)
			tc.wantErr(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
	assert.Equal(t, []stylesheet.Format{stylesheet.YAML, stylesheet.TOML, stylesheet.JSON}, stylesheet.Formats())
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()
	f, err := stylesheet.FormatFromPath("conf/Styles.YML")
	require.NoError(t, err)
	assert.Equal(t, stylesheet.YAML, f)

	_, err = stylesheet.FormatFromPath("styles")
	require.ErrorIs(t, err, stylesheet.ErrUnsupportedFormat)
	_, err = stylesheet.FormatFromPath("styles.ini")
	require.ErrorIs(t, err, stylesheet.ErrUnsupportedFormat)
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlSheet), 0o644))

	got, err := stylesheet.Load(path)
	require.NoError(t, err)
	assert.Equal(t, wantSheet().All(), got.All())

	_, err = stylesheet.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalReloads(t *testing.T) {
	t.Parallel()
	for _, f := range stylesheet.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			data, err := stylesheet.Marshal(wantSheet(), f)
			require.NoError(t, err)
			got, err := stylesheet.Parse(data, f)
			require.NoError(t, err)
			assert.Equal(t, wantSheet().All(), got.All())
		})
	}
}

func TestMarshalSharedIndent(t *testing.T) {
	t.Parallel()
	data, err := stylesheet.Marshal(stringify.NewStyles(
		stringify.Bind(stringify.RoleStart, stringify.NewStyle(stringify.Omit, 0)),
	), stylesheet.YAML)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "indent:"))
	assert.Contains(t, string(data), "styles:\n  start:\n    newline: omit\n    level: 0\n")
}

func TestDefault(t *testing.T) {
	t.Parallel()
	styles := stylesheet.Default()
	assert.Equal(t, []string{
		stringify.RoleEnd, stringify.RoleKey, stringify.RoleName, stringify.RoleStart, stringify.RoleValue,
	}, styles.Roles())

	out, err := stringify.Sprint(stringify.SortedMap[stringify.String, stringify.Int]{"a": 1}, styles)
	require.NoError(t, err)
	assert.Equal(t, "BTreeMap {\n    a : 1,\n    }", out)
}
