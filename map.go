package stringify

import (
	"cmp"
	"io"
	"iter"
	"maps"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Key constrains map keys.
type Key interface {
	comparable
	Renderable
}

// OrderedKey constrains keys of a [SortedMap].
type OrderedKey interface {
	cmp.Ordered
	Renderable
}

// SortedMap renders its entries in ascending key order, so equal maps
// always produce identical output:
//
//	BTreeMap {
//	    a : 1,
//	    b : 2,
//	    }
//
// The closing brace sits one level deeper than the [RoleEnd] style.
type SortedMap[K OrderedKey, V Renderable] map[K]V

func (m SortedMap[K, V]) Stringify(w io.Writer, styles Styles) error {
	if len(m) == 0 {
		return WriteString(w, "BTreeMap {}")
	}
	return writeMap(w, styles, "BTreeMap", iter.Seq2[K, V](func(yield func(K, V) bool) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if !yield(k, m[k]) {
				return
			}
		}
	}))
}

// HashMap renders its entries in Go map iteration order. Two renders of the
// same map may order entries differently; use [SortedMap] when output must
// be reproducible.
type HashMap[K Key, V Renderable] map[K]V

func (m HashMap[K, V]) Stringify(w io.Writer, styles Styles) error {
	if len(m) == 0 {
		return WriteString(w, "HashMap {}")
	}
	return writeMap(w, styles, "HashMap", maps.All(m))
}

// IndexMap is a map that renders its entries in insertion order. The zero
// value is ready to use.
type IndexMap[K Key, V Renderable] struct {
	m *orderedmap.OrderedMap[K, V]
}

func NewIndexMap[K Key, V Renderable]() *IndexMap[K, V] {
	return &IndexMap[K, V]{m: orderedmap.New[K, V]()}
}

// Set stores v under k. A new key goes last; an existing key keeps its
// position and its previous value is returned.
func (m *IndexMap[K, V]) Set(k K, v V) (V, bool) {
	if m.m == nil {
		m.m = orderedmap.New[K, V]()
	}
	return m.m.Set(k, v)
}

func (m *IndexMap[K, V]) Get(k K) (V, bool) {
	if m.m == nil {
		var zero V
		return zero, false
	}
	return m.m.Get(k)
}

func (m *IndexMap[K, V]) Delete(k K) (V, bool) {
	if m.m == nil {
		var zero V
		return zero, false
	}
	return m.m.Delete(k)
}

func (m *IndexMap[K, V]) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// All yields entries oldest first.
func (m *IndexMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.m == nil {
			return
		}
		for p := m.m.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (m *IndexMap[K, V]) Stringify(w io.Writer, styles Styles) error {
	if m.Len() == 0 {
		return WriteString(w, "IndexMap {}")
	}
	return writeMap(w, styles, "IndexMap", m.All())
}

// writeMap renders a non-empty map. Each key starts a new line one level
// below [RoleStart], indented with the unit of [RoleEnd], and is followed by
// " : " and its value on the same line. The map positions that line itself,
// so keys and values see [RoleKey] and [RoleValue] bound to a style that
// carries the entry level but writes nothing.
func writeMap[K, V Renderable](w io.Writer, styles Styles, label string, entries iter.Seq2[K, V]) error {
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
	if err := WriteString(w, label+" {"); err != nil {
		return err
	}
	entry := Style{Newline: Add, Level: start.Level + 1, Indent: end.Indent}
	inline := Style{Newline: Omit, Level: entry.Level}
	keyStyles := styles.rebase(entry, Bind(RoleKey, inline))
	valueStyles := styles.rebase(entry, Bind(RoleValue, inline))
	for k, v := range entries {
		if err := Indent(w, entry); err != nil {
			return err
		}
		if err := k.Stringify(w, keyStyles); err != nil {
			return err
		}
		if err := WriteString(w, " : "); err != nil {
			return err
		}
		if err := v.Stringify(w, valueStyles); err != nil {
			return err
		}
		if err := WriteString(w, ","); err != nil {
			return err
		}
	}
	if err := Indent(w, end.WithNewline(Add).Add(1)); err != nil {
		return err
	}
	return WriteString(w, "}")
}
