package stringify

import (
	"io"
	"iter"
	"slices"
)

const seqLabel = "Vec"

// Slice renders its elements in index order:
//
//	Vec [
//	    1,
//	    2,
//	]
//
// It resolves [RoleStart] for the opening line and [RoleEnd] for the
// closing line; elements sit one level below the closing line.
type Slice[T Renderable] []T

func (s Slice[T]) Stringify(w io.Writer, styles Styles) error {
	if len(s) == 0 {
		return WriteString(w, seqLabel+" []")
	}
	return writeSequence(w, styles, slices.Values(s))
}

// Iter renders elements as an iterator yields them, without collecting them
// first. Its output is identical to a [Slice] holding the same elements.
type Iter[T Renderable] iter.Seq[T]

func (s Iter[T]) Stringify(w io.Writer, styles Styles) error {
	next, stop := iter.Pull(iter.Seq[T](s))
	defer stop()
	first, ok := next()
	if !ok {
		return WriteString(w, seqLabel+" []")
	}
	return writeSequence(w, styles, iter.Seq[T](func(yield func(T) bool) {
		if !yield(first) {
			return
		}
		for {
			item, ok := next()
			if !ok || !yield(item) {
				return
			}
		}
	}))
}

// writeSequence renders a non-empty sequence.
func writeSequence[T Renderable](w io.Writer, styles Styles, items iter.Seq[T]) error {
	end, err := styles.Get(RoleEnd)
	if err != nil {
		return err
	}
	start, err := styles.Get(RoleStart)
	if err != nil {
		return err
	}
	if err := Indent(w, start); err != nil {
		return err
	}
	if err := WriteString(w, seqLabel+" ["); err != nil {
		return err
	}
	line := end.WithNewline(Add).Add(1)
	child := styles.rebase(line)
	for item := range items {
		if err := Indent(w, line); err != nil {
			return err
		}
		if err := item.Stringify(w, child); err != nil {
			return err
		}
		if err := WriteString(w, ","); err != nil {
			return err
		}
	}
	if err := Indent(w, end.WithNewline(Add)); err != nil {
		return err
	}
	return WriteString(w, "]")
}
