package inspect

import (
	"errors"
	"fmt"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	// Dir is the directory package patterns are resolved in. Empty means the
	// current directory.
	Dir string

	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./...", "model-binder/examples/account").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	})

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	// Register packages first so that named types are classified against
	// the whole loaded set.
	for _, pkg := range pkgs {
		a.graph.Packages[pkg.PkgPath] = &PackageInfo{Path: pkg.PkgPath, Name: pkg.Name}
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts the exported named types of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := a.graph.Packages[pkg.PkgPath]

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		typeInfo := a.analyzeType(typeName.Type())
		a.graph.Types[typeInfo.ID] = typeInfo
		pkgInfo.Types = append(pkgInfo.Types, typeInfo.ID)
	}
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Basic:
		info.Kind = TypeKindBasic

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Map:
		info.Kind = TypeKindMap

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info)

	default:
		// Interfaces, channels, funcs and type parameters are not bindable.
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()
	if obj.Pkg() != nil {
		info.ID = TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}
		info.PkgName = obj.Pkg().Name()
	} else {
		info.ID = TypeID{Name: obj.Name()}
	}

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		if a.isExternalPackage(info.ID.PkgPath) {
			// time.Time and friends are leaves.
			info.Kind = TypeKindExternal
			return
		}

		info.Kind = TypeKindStruct
		info.Methods = methodsOf(named)
		a.analyzeStructFields(ut, info)

	case *types.Basic:
		// Named basic type (e.g., type Status string)
		info.Kind = TypeKindAlias
		info.Underlying = a.analyzeType(ut)

	default:
		if a.isExternalPackage(info.ID.PkgPath) {
			info.Kind = TypeKindExternal
		} else {
			info.Kind = TypeKindAlias
			info.Underlying = a.analyzeType(ut)
		}
	}
}

// isExternalPackage returns true if the package is not in our analyzed set.
func (a *Analyzer) isExternalPackage(pkgPath string) bool {
	_, ok := a.graph.Packages[pkgPath]
	return !ok
}

// analyzeStructFields extracts every field of a struct type. Unexported
// fields are kept: the binder reaches them too.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if field.Name() == "_" {
			continue
		}

		info.Fields = append(info.Fields, FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     a.analyzeType(field.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		})
	}
}

// methodsOf lists the exported methods of *named, promoted ones included.
func methodsOf(named *types.Named) []MethodInfo {
	mset := types.NewMethodSet(types.NewPointer(named))

	methods := make([]MethodInfo, 0, mset.Len())
	for i := range mset.Len() {
		fn, ok := mset.At(i).Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		methods = append(methods, MethodInfo{Name: fn.Name(), Sig: fn.Type().(*types.Signature)})
	}

	return methods
}

// GetStruct returns the TypeInfo for a named struct.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}

	info := a.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}

	if info.Kind != TypeKindStruct {
		return nil, fmt.Errorf("type %s is not a struct (kind: %s)", id, info.Kind)
	}

	return info, nil
}
