package stringify

import (
	"bytes"
	"io"
)

// Renderable is implemented by every value that can be written in the
// stringify notation.
//
// Stringify writes the value to w. It resolves the roles it needs from
// styles, applies [Indent] before its own tokens where its layout calls for
// it, and hands each child a table derived from styles. Leaf values resolve
// no roles; their container has already positioned them.
//
// Errors from styles or w are returned unchanged to the caller. Bytes
// written before a failure stay in w.
type Renderable interface {
	Stringify(w io.Writer, styles Styles) error
}

// Write renders v to w using styles.
func Write(w io.Writer, v Renderable, styles Styles) error {
	return v.Stringify(w, styles)
}

// Marshal renders v and returns the bytes.
func Marshal(v Renderable, styles Styles) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, v, styles); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Sprint renders v into a fresh string.
func Sprint(v Renderable, styles Styles) (string, error) {
	b, err := Marshal(v, styles)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WritePrimitive renders v with the empty table. Only values that resolve
// no roles succeed; a composite value fails with [ErrStyleNotFound].
func WritePrimitive(w io.Writer, v Renderable) error {
	return Write(w, v, Styles{})
}

// SprintPrimitive is the allocating form of [WritePrimitive].
func SprintPrimitive(v Renderable) (string, error) {
	return Sprint(v, Styles{})
}

// Field writes one named field: indentation for the [RoleName] style, the
// name, "=", then value rendered with styles.
func Field(w io.Writer, styles Styles, name string, value Renderable) error {
	nameStyle, err := styles.Get(RoleName)
	if err != nil {
		return err
	}
	if err := Indent(w, nameStyle); err != nil {
		return err
	}
	if err := WriteString(w, name+"="); err != nil {
		return err
	}
	return value.Stringify(w, styles)
}
