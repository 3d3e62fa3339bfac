package stringify

import (
	"maps"
	"slices"
)

// Roles requested by the built-in renderers.
const (
	RoleStart = "start" // opening line of a container or record
	RoleEnd   = "end"   // closing line of a container or record
	RoleKey   = "key"   // map key, set by the enclosing map
	RoleValue = "value" // map value, set by the enclosing map
	RoleName  = "name"  // field name, consumed by [Field]
)

// Binding pairs a role name with the style bound to it.
type Binding struct {
	Role  string
	Style Style
}

// Bind is shorthand for a [Binding] literal.
func Bind(role string, s Style) Binding {
	return Binding{Role: role, Style: s}
}

// Styles is an immutable table of styles keyed by role name. The zero value
// is the empty table. Role names compare by exact string equality.
type Styles struct {
	m map[string]Style
}

// NewStyles builds a table from bindings. When a role appears more than
// once the last binding wins.
func NewStyles(bindings ...Binding) Styles {
	if len(bindings) == 0 {
		return Styles{}
	}
	m := make(map[string]Style, len(bindings))
	for _, b := range bindings {
		m[b.Role] = b.Style
	}
	return Styles{m: m}
}

// StylesFrom builds a table from a copy of m.
func StylesFrom(m map[string]Style) Styles {
	if len(m) == 0 {
		return Styles{}
	}
	return Styles{m: maps.Clone(m)}
}

// Get returns the style bound to role. A missing role is an error
// ([*StyleNotFoundError]); there is no fallback.
func (s Styles) Get(role string) (Style, error) {
	style, ok := s.m[role]
	if !ok {
		return Style{}, &StyleNotFoundError{Role: role}
	}
	return style, nil
}

// Lookup returns the style bound to role and whether it was present.
func (s Styles) Lookup(role string) (Style, bool) {
	style, ok := s.m[role]
	return style, ok
}

func (s Styles) Has(role string) bool {
	_, ok := s.m[role]
	return ok
}

func (s Styles) Len() int { return len(s.m) }

// Roles returns the bound role names in sorted order.
func (s Styles) Roles() []string {
	return slices.Sorted(maps.Keys(s.m))
}

// All returns a copy of the table as a map.
func (s Styles) All() map[string]Style {
	return maps.Clone(s.m)
}

// With returns a new table holding every binding of s overridden by
// bindings. s is left untouched.
func (s Styles) With(bindings ...Binding) Styles {
	m := make(map[string]Style, len(s.m)+len(bindings))
	maps.Copy(m, s.m)
	for _, b := range bindings {
		m[b.Role] = b.Style
	}
	return Styles{m: m}
}

// rebase derives the table handed to a child that opens on a line the
// parent has already positioned at the level of at. The child's start
// carries that level but writes nothing; its end closes at that level with
// the parent's unit. Every other role passes through.
func (s Styles) rebase(at Style, extra ...Binding) Styles {
	start := Style{Newline: Omit, Level: at.Level}
	end := Style{Newline: Omit, Level: at.Level, Indent: at.Indent}
	return s.With(append([]Binding{Bind(RoleStart, start), Bind(RoleEnd, end)}, extra...)...)
}
