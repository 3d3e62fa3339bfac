package stringify

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultIndent is the indentation unit of [DefaultStyle] and [NewStyle].
const DefaultIndent = "    "

// NewlinePolicy decides whether a line break precedes an indentation step.
type NewlinePolicy int

const (
	Omit NewlinePolicy = iota // no line break
	Add                       // one "\n" before the indentation
)

// String returns "Omit" or "Add".
func (p NewlinePolicy) String() string {
	switch p {
	case Omit:
		return "Omit"
	case Add:
		return "Add"
	default:
		return fmt.Sprintf("NewlinePolicy(%d)", int(p))
	}
}

// ParseNewlinePolicy parses "add" or "omit", ignoring case.
func ParseNewlinePolicy(s string) (NewlinePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "omit":
		return Omit, nil
	case "add":
		return Add, nil
	}
	return Omit, fmt.Errorf("%w: unknown newline policy %q", ErrInvalidStyle, s)
}

func (p NewlinePolicy) MarshalText() ([]byte, error) {
	switch p {
	case Omit, Add:
		return []byte(strings.ToLower(p.String())), nil
	}
	return nil, fmt.Errorf("%w: unknown newline policy %d", ErrInvalidStyle, int(p))
}

func (p *NewlinePolicy) UnmarshalText(text []byte) error {
	v, err := ParseNewlinePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Stringify writes the policy name. It resolves no roles.
func (p NewlinePolicy) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, p.String())
}

// Style is an immutable layout directive: whether a line break comes first,
// how many indentation units follow it, and what one unit is.
//
// An empty Indent is a valid unit that writes nothing; the style still
// carries its level. Containers use this for a child that opens on a line
// they have already positioned.
//
// Levels are never negative; every operation that would produce a negative
// level panics.
type Style struct {
	Newline NewlinePolicy
	Level   int
	Indent  string
}

// DefaultStyle returns [Omit], level 0, [DefaultIndent].
func DefaultStyle() Style {
	return Style{Newline: Omit, Level: 0, Indent: DefaultIndent}
}

// NewStyle returns a Style with the default indentation unit.
func NewStyle(newline NewlinePolicy, level int) Style {
	return Style{Newline: newline, Indent: DefaultIndent}.WithLevel(level)
}

func (s Style) WithNewline(p NewlinePolicy) Style {
	s.Newline = p
	return s
}

func (s Style) WithLevel(level int) Style {
	s.Level = checkLevel(level)
	return s
}

func (s Style) WithIndent(unit string) Style {
	s.Indent = unit
	return s
}

// Add returns s shifted n levels deeper.
func (s Style) Add(n int) Style {
	return s.WithLevel(s.Level + n)
}

// Sub returns s shifted n levels shallower.
func (s Style) Sub(n int) Style {
	return s.WithLevel(s.Level - n)
}

// AddStyle adds o's level to s, keeping the policy and unit of s.
func (s Style) AddStyle(o Style) Style {
	return s.Add(o.Level)
}

// SubStyle subtracts o's level from s, keeping the policy and unit of s.
func (s Style) SubStyle(o Style) Style {
	return s.Sub(o.Level)
}

// Stringify writes s as a record:
//
//	Style {
//	    newline=Add,
//	    indent_level=1,
//	    indent="    ",
//	}
func (s Style) Stringify(w io.Writer, styles Styles) error {
	return Struct{
		Label: "Style",
		Fields: []FieldValue{
			{Name: "newline", Value: s.Newline},
			{Name: "indent_level", Value: Int(s.Level)},
			{Name: "indent", Value: String(strconv.Quote(s.Indent))},
		},
	}.Stringify(w, styles)
}

// Indent writes the layout described by s: a line break when s.Newline is
// [Add], then the unit s.Level times.
func Indent(w io.Writer, s Style) error {
	if s.Newline == Add {
		if err := WriteString(w, "\n"); err != nil {
			return err
		}
	}
	level := checkLevel(s.Level)
	if level == 0 || s.Indent == "" {
		return nil
	}
	return WriteString(w, strings.Repeat(s.Indent, level))
}

func checkLevel(level int) int {
	if level < 0 {
		panic(fmt.Sprintf("stringify: indent level underflow (%d)", level))
	}
	return level
}
