// Package stringify renders structured values as indented, human-readable
// debug text.
//
// The notation is fixed and deterministic for ordered data:
//
//	BTreeMap {
//	    name : demo,
//	    ports : Vec [
//	        80,
//	        443,
//	    ],
//	    }
//
// It is meant for debug output, log lines and test fixtures. It is not JSON
// or YAML, nothing is escaped, and there is no parser.
//
// # Styles
//
// Layout is driven by a [Styles] table that maps role names to [Style]
// values. A Style says whether a line break comes first, how many
// indentation units follow it, and what one unit is. Each value type
// resolves the roles it needs:
//
//   - [RoleStart]: the opening line of a container or record
//   - [RoleEnd]: the closing line of a container or record
//   - [RoleName]: a field name written by [Field]
//   - [RoleKey], [RoleValue]: set by maps for their keys and values
//
// A role the table does not bind is an error ([ErrStyleNotFound]); there is
// no fallback. Build tables with [NewStyles] and [Bind]:
//
//	styles := stringify.NewStyles(
//		stringify.Bind(stringify.RoleStart, stringify.NewStyle(stringify.Omit, 0)),
//		stringify.Bind(stringify.RoleEnd, stringify.NewStyle(stringify.Omit, 0)),
//	)
//	out, err := stringify.Sprint(stringify.Slice[stringify.Int]{1, 2}, styles)
//
// Containers hand their children a table derived from their own, so nesting
// depth never has to be tracked by the caller.
//
// # Renderable
//
// Any type can take part by implementing [Renderable]. Leaf types write
// their text and ignore the table; composite types resolve roles, call
// [Indent], and recurse. Built-in implementations:
//
//   - leaves: [Bool], [Int] and the sized integers, [Float64], [String], [BigInt], [Nil]
//   - [Slice] and [Iter]: "Vec [ ... ]" in element order
//   - [SortedMap]: "BTreeMap { ... }" in key order
//   - [HashMap]: "HashMap { ... }" in Go map order, which varies between runs
//   - [IndexMap]: "IndexMap { ... }" in insertion order
//   - [Struct]: "Label { name=value, ... }"
//
// [Of] adapts plain Go values (decoded documents, structs, maps, slices) by
// reflection.
//
// # Errors
//
// Rendering stops at the first error, which reaches the caller unchanged.
// Output written before the failure stays in the sink.
//
//   - [*StyleNotFoundError]: matches [ErrStyleNotFound], names the role
//   - [*WriteError]: matches [ErrWrite], unwraps to the sink's error
//   - [ErrUnsupportedValue]: [Of] met a kind it cannot render
//
// Configuration files for style tables are handled by the stylesheet
// subpackage.
package stringify
