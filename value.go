package stringify

import (
	"cmp"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
)

// Of adapts an arbitrary Go value to a [Renderable].
//
//   - Renderable values are returned as is.
//   - nil, nil pointers, nil interfaces: [Nil].
//   - booleans, integers, floats, strings: the matching leaf type.
//   - fmt.Stringer: [String] holding the result of String().
//   - slices and arrays: a "Vec" sequence.
//   - maps: a "BTreeMap" with keys sorted by value within a kind and by
//     kind across kinds, so the order does not change between runs.
//   - structs: a [Struct] labelled with the type name, holding the exported
//     fields in declaration order. A `stringify:"name"` tag renames a field
//     and `stringify:"-"` skips it.
//
// Anything else fails with [ErrUnsupportedValue].
func Of(v any) (Renderable, error) {
	return of(reflect.ValueOf(v))
}

// MustOf is like [Of] but panics on error.
func MustOf(v any) Renderable {
	r, err := Of(v)
	if err != nil {
		panic(err)
	}
	return r
}

func of(rv reflect.Value) (Renderable, error) {
	if !rv.IsValid() {
		return Nil{}, nil
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Nil{}, nil
		}
	}
	if rv.CanInterface() {
		if r, ok := rv.Interface().(Renderable); ok {
			return r, nil
		}
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return String(s.String()), nil
		}
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return of(rv.Elem())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int:
		return Int(rv.Int()), nil
	case reflect.Int8:
		return Int8(rv.Int()), nil
	case reflect.Int16:
		return Int16(rv.Int()), nil
	case reflect.Int32:
		return Int32(rv.Int()), nil
	case reflect.Int64:
		return Int64(rv.Int()), nil
	case reflect.Uint, reflect.Uintptr:
		return Uint(rv.Uint()), nil
	case reflect.Uint8:
		return Uint8(rv.Uint()), nil
	case reflect.Uint16:
		return Uint16(rv.Uint()), nil
	case reflect.Uint32:
		return Uint32(rv.Uint()), nil
	case reflect.Uint64:
		return Uint64(rv.Uint()), nil
	case reflect.Float32:
		return Float32(rv.Float()), nil
	case reflect.Float64:
		return Float64(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Slice[Renderable](nil), nil
		}
		out := make(Slice[Renderable], rv.Len())
		for i := range rv.Len() {
			item, err := of(rv.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = item
		}
		return out, nil
	case reflect.Map:
		return ofMap(rv)
	case reflect.Struct:
		return ofStruct(rv)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, rv.Type())
	}
}

// entry is one key-value pair of an adapted map.
type entry struct {
	key, value Renderable
	rk, rv     reflect.Value
}

// sortedEntries renders like [SortedMap] for maps whose key type is only
// known at run time.
type sortedEntries []entry

func (e sortedEntries) Stringify(w io.Writer, styles Styles) error {
	if len(e) == 0 {
		return WriteString(w, "BTreeMap {}")
	}
	return writeMap[Renderable, Renderable](w, styles, "BTreeMap", func(yield func(Renderable, Renderable) bool) {
		for _, kv := range e {
			if !yield(kv.key, kv.value) {
				return
			}
		}
	})
}

func ofMap(rv reflect.Value) (Renderable, error) {
	out := make(sortedEntries, 0, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		k, err := of(it.Key())
		if err != nil {
			return nil, err
		}
		v, err := of(it.Value())
		if err != nil {
			return nil, err
		}
		out = append(out, entry{key: k, value: v, rk: it.Key(), rv: it.Value()})
	}
	// Keys that compare equal (NaN) fall back to their values.
	slices.SortStableFunc(out, func(a, b entry) int {
		if c := compareKeys(a.rk, b.rk); c != 0 {
			return c
		}
		return strings.Compare(fmt.Sprint(a.rv), fmt.Sprint(b.rv))
	})
	return out, nil
}

// compareKeys orders map keys numerically or lexically when both keys share
// a kind. Keys of different kinds order by kind, then by printed form, then
// by type name, so no two distinct keys compare equal unless both are NaN.
func compareKeys(a, b reflect.Value) int {
	for a.Kind() == reflect.Interface && !a.IsNil() {
		a = a.Elem()
	}
	for b.Kind() == reflect.Interface && !b.IsNil() {
		b = b.Elem()
	}
	var c int
	switch {
	case isInt(a) && isInt(b):
		c = cmp.Compare(a.Int(), b.Int())
	case isUint(a) && isUint(b):
		c = cmp.Compare(a.Uint(), b.Uint())
	case isFloat(a) && isFloat(b):
		c = cmp.Compare(a.Float(), b.Float())
	case a.Kind() == reflect.String && b.Kind() == reflect.String:
		c = strings.Compare(a.String(), b.String())
	}
	if c != 0 {
		return c
	}
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	if c := strings.Compare(fmt.Sprint(a), fmt.Sprint(b)); c != 0 {
		return c
	}
	return strings.Compare(a.Type().String(), b.Type().String())
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func ofStruct(rv reflect.Value) (Renderable, error) {
	t := rv.Type()
	label := t.Name()
	if label == "" {
		label = "struct"
	}
	s := Struct{Label: label}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("stringify"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		v, err := of(rv.Field(i))
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", label, f.Name, err)
		}
		s.Fields = append(s.Fields, FieldValue{Name: name, Value: v})
	}
	return s, nil
}
