package stringify

import "io"

// FieldValue is one named field of a [Struct].
type FieldValue struct {
	Name  string
	Value Renderable
}

// Struct renders a record as its label followed by one name=value line per
// field:
//
//	Point {
//	    x=1,
//	    y=2,
//	}
type Struct struct {
	Label  string
	Fields []FieldValue
}

func (s Struct) Stringify(w io.Writer, styles Styles) error {
	if len(s.Fields) == 0 {
		return WriteString(w, s.Label+" {}")
	}
	start, err := styles.Get(RoleStart)
	if err != nil {
		return err
	}
	end, err := styles.Get(RoleEnd)
	if err != nil {
		return err
	}
	if err := Indent(w, start); err != nil {
		return err
	}
	if err := WriteString(w, s.Label+" {"); err != nil {
		return err
	}
	line := Style{Newline: Add, Level: start.Level + 1, Indent: end.Indent}
	child := styles.rebase(line, Bind(RoleName, line))
	for _, f := range s.Fields {
		if err := Field(w, child, f.Name, f.Value); err != nil {
			return err
		}
		if err := WriteString(w, ","); err != nil {
			return err
		}
	}
	if err := Indent(w, end.WithNewline(Add)); err != nil {
		return err
	}
	return WriteString(w, "}")
}
