package inspect

import (
	"go/types"
	"reflect"
	"slices"
	"strings"

	"model-binder/internal/common"
	"model-binder/meta"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "model-binder/examples/account"
	Name    string // e.g., "Customer"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map type, never traversed
	TypeKindAlias              // named type wrapping a basic type
	TypeKindExternal           // external/opaque type (e.g., time.Time)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID       // Unique identifier (empty for unnamed types like *T or []T)
	PkgName    string       // Package name for named types
	Kind       TypeKind     // Kind of type
	Underlying *TypeInfo    // For named types, the underlying type
	ElemType   *TypeInfo    // For pointers, slices and arrays, the element type
	Fields     []FieldInfo  // For structs, the list of fields
	Methods    []MethodInfo // For structs, the exported method set of the pointer type
	GoType     types.Type   // The original go/types.Type
}

// MethodInfo describes a method a binder may use as an accessor.
type MethodInfo struct {
	Name string
	Sig  *types.Signature
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// ShortName returns the name as reflect prints it, e.g. "account.Customer".
func (t *TypeInfo) ShortName() string {
	pkg := t.PkgName
	if pkg == "" {
		pkg = common.PkgAlias(t.ID.PkgPath)
	}

	if pkg == "" {
		return t.ID.Name
	}

	return pkg + "." + t.ID.Name
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// HasDeclaration reports whether the field carries a bind tag.
func (f *FieldInfo) HasDeclaration() bool {
	_, ok := f.Tag.Lookup(meta.TagName)
	return ok
}

// Declaration parses the field's bind tag.
func (f *FieldInfo) Declaration() meta.Declaration {
	return meta.ParseTag(f.Tag.Get(meta.TagName))
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Structs returns the named struct types in the graph ordered by TypeID.
func (g *TypeGraph) Structs() []*TypeInfo {
	var res []*TypeInfo
	for _, t := range g.Types {
		if t.Kind == TypeKindStruct {
			res = append(res, t)
		}
	}

	slices.SortFunc(res, func(a, b *TypeInfo) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	return res
}

// Find returns the struct type named either by its full import path form or
// by its short form.
func (g *TypeGraph) Find(name string) (*TypeInfo, bool) {
	for _, t := range g.Structs() {
		if t.ID.String() == name || t.ShortName() == name {
			return t, true
		}
	}

	return nil, false
}

// LookupStruct returns the direct field names of the named struct. It lets a
// graph validate declaration files.
func (g *TypeGraph) LookupStruct(name string) ([]string, bool) {
	t, ok := g.Find(name)
	if !ok {
		return nil, false
	}

	fields := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		fields = append(fields, f.Name)
	}

	return fields, true
}

// typeNames returns the names of the types declared in the package.
func (g *TypeGraph) typeNames(pkgPath string) []string {
	pkg, ok := g.Packages[pkgPath]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(pkg.Types))
	for _, id := range pkg.Types {
		names = append(names, id.Name)
	}

	return names
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
