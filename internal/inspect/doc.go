// Package inspect discovers binding declarations in Go source without running
// the code.
//
// It uses golang.org/x/tools/go/packages with go/types to build an in-memory
// model of the structs in the loaded packages, then walks a model type the
// way the binder does at run time: embedded struct values are flattened,
// undeclared struct fields are followed, and declared struct fields are
// followed with their view as the new root.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/map/external)
//   - FieldInfo: describes field name, type, tag and embedding
//   - MethodInfo: an exported method of *T, a candidate getter or setter
//   - Entry: one field reached by the walk, with its declaration and accessors
package inspect
