// Package meta extracts and caches per-type binding metadata.
//
// For every model struct type it computes, once:
//   - the ordered list of fields, fields of embedded structs first
//   - the binding declaration of each field (struct tag or a registered Source)
//   - the method set of the pointer type, used to find accessors
//   - a compiled accessor per field: getter if present, else direct field
//     read; setter if present, else direct field write
//
// # Declarations
//
// The default declaration source is the `bind` struct tag:
//
//	type Profile struct {
//		Name    string `bind:"nameInput"`
//		Agree   bool   `bind:"checkBox1,radioButton1"`
//		Level   int    `bind:"#12"`
//		Secret  string `bind:"-"`
//		Address Address
//	}
//
// Entries are view names resolved through the binder's resource namespace, or
// numeric handles. "-" ignores the field entirely.
//
// # Accessors
//
// For a field named level, the getter is the first of GetLevel, Level, and
// (for bool fields) IsLevel that takes no arguments and returns the field type.
// The setter is SetLevel taking one argument and returning nothing or an error.
// Unexported fields without accessors are read and written directly.
package meta
