package stylesheet

import (
	"fmt"
	"maps"
	"os"
	"reflect"
	"slices"

	"github.com/mitchellh/mapstructure"

	"github.com/bjaus/stringify"
)

// document is the decoded shape of a stylesheet.
type document struct {
	Indent *string          `mapstructure:"indent"`
	Styles map[string]entry `mapstructure:"styles"`
}

type entry struct {
	Newline stringify.NewlinePolicy `mapstructure:"newline"`
	Level   int                     `mapstructure:"level"`
	Indent  *string                 `mapstructure:"indent"`
}

// encoded is the shape written by [Marshal].
type encoded struct {
	Indent *string                 `yaml:"indent,omitempty" toml:"indent,omitempty" json:"indent,omitempty"`
	Styles map[string]encodedEntry `yaml:"styles" toml:"styles" json:"styles"`
}

type encodedEntry struct {
	Newline string  `yaml:"newline" toml:"newline" json:"newline"`
	Level   int     `yaml:"level" toml:"level" json:"level"`
	Indent  *string `yaml:"indent,omitempty" toml:"indent,omitempty" json:"indent,omitempty"`
}

// Default returns the table the CLI renders with when no stylesheet is
// given: containers open inline at level 0, and keys, values and field names
// start a new line one level down.
func Default() stringify.Styles {
	return stringify.NewStyles(
		stringify.Bind(stringify.RoleStart, stringify.NewStyle(stringify.Omit, 0)),
		stringify.Bind(stringify.RoleEnd, stringify.NewStyle(stringify.Omit, 0)),
		stringify.Bind(stringify.RoleKey, stringify.NewStyle(stringify.Add, 1)),
		stringify.Bind(stringify.RoleValue, stringify.NewStyle(stringify.Add, 1)),
		stringify.Bind(stringify.RoleName, stringify.NewStyle(stringify.Add, 1)),
	)
}

// Load reads a stylesheet file, choosing the format from its extension.
func Load(path string) (stringify.Styles, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return stringify.Styles{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return stringify.Styles{}, fmt.Errorf("read stylesheet: %w", err)
	}
	return Parse(data, f)
}

// Parse builds a style table from a stylesheet document:
//
//	indent: "  "
//	styles:
//	  start: {newline: omit, level: 0}
//	  end:   {newline: omit, level: 0}
//	  name:  {newline: add, level: 1, indent: "\t"}
//
// A role without its own indent uses the top-level one; with neither, the
// unit is [stringify.DefaultIndent]. An explicit empty indent is kept.
// Unknown keys are rejected.
func Parse(data []byte, f Format) (stringify.Styles, error) {
	var raw map[string]any
	if err := Unmarshal(data, f, &raw); err != nil {
		return stringify.Styles{}, fmt.Errorf("%w: %w", ErrInvalidStylesheet, err)
	}

	var doc document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &doc,
		ErrorUnused: true,
		DecodeHook:  stringToNewlinePolicyHookFunc(),
	})
	if err != nil {
		return stringify.Styles{}, fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return stringify.Styles{}, fmt.Errorf("%w: %w", ErrInvalidStylesheet, err)
	}

	bindings := make([]stringify.Binding, 0, len(doc.Styles))
	for _, role := range slices.Sorted(maps.Keys(doc.Styles)) {
		e := doc.Styles[role]
		if e.Level < 0 {
			return stringify.Styles{}, fmt.Errorf("%w: role %q: %w: negative level %d",
				ErrInvalidStylesheet, role, stringify.ErrInvalidStyle, e.Level)
		}
		unit := stringify.DefaultIndent
		if doc.Indent != nil {
			unit = *doc.Indent
		}
		if e.Indent != nil {
			unit = *e.Indent
		}
		bindings = append(bindings, stringify.Bind(role, stringify.Style{
			Newline: e.Newline,
			Level:   e.Level,
			Indent:  unit,
		}))
	}
	return stringify.NewStyles(bindings...), nil
}

// Marshal writes styles as a stylesheet document. When every role shares
// one indentation unit it is written once at the top level.
func Marshal(styles stringify.Styles, f Format) ([]byte, error) {
	all := styles.All()
	units := make(map[string]bool)
	for _, s := range all {
		units[s.Indent] = true
	}
	var shared *string
	if len(units) == 1 {
		for u := range units {
			shared = &u
		}
	}

	out := encoded{Indent: shared, Styles: make(map[string]encodedEntry, len(all))}
	for role, s := range all {
		e := encodedEntry{Level: s.Level}
		text, err := s.Newline.MarshalText()
		if err != nil {
			return nil, fmt.Errorf("role %q: %w", role, err)
		}
		e.Newline = string(text)
		if shared == nil {
			e.Indent = &s.Indent
		}
		out.Styles[role] = e
	}
	return marshal(out, f)
}

// stringToNewlinePolicyHookFunc converts "add"/"omit" strings into
// [stringify.NewlinePolicy].
func stringToNewlinePolicyHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeFor[stringify.NewlinePolicy]() {
			return data, nil
		}
		return stringify.ParseNewlinePolicy(reflect.ValueOf(data).String())
	}
}
