package inspect

import (
	"fmt"

	"model-binder/internal/match"
	"model-binder/widget"
)

// Entry is one declared or ignored field reached from a model type.
type Entry struct {
	// Path locates the field from the model, e.g. "Customer.Billing.Street".
	Path string
	// Owner is the struct declaring the field.
	Owner TypeID
	Field string
	Type  string
	// Root names the view the field's targets are resolved under; empty
	// for the view passed to Bind.
	Root    string
	Targets []widget.ViewID
	Ignored bool
	// Getter and Setter name the accessor methods used, empty for direct
	// field access.
	Getter string
	Setter string
}

type walkKey struct {
	id   TypeID
	root string
}

type walker struct {
	seen    map[walkKey]struct{}
	entries []Entry
}

// Walk lists the fields a binder would bind or skip for the named model
// type, in binding order: fields of embedded structs first, then the
// type's own fields.
func (g *TypeGraph) Walk(id TypeID) ([]Entry, error) {
	t := g.GetType(id)
	if t == nil {
		return nil, fmt.Errorf("type %s not found%s", id, match.Hint(id.Name, g.typeNames(id.PkgPath)))
	}

	if t.Kind != TypeKindStruct {
		return nil, fmt.Errorf("type %s is not a struct (kind: %s)", id, t.Kind)
	}

	w := &walker{seen: make(map[walkKey]struct{})}
	w.model(t, NewTypePath(id.Name), "")

	return w.entries, nil
}

// model walks t as a bound model under root.
func (w *walker) model(t *TypeInfo, path *TypePath, root string) {
	if t.IsNamed() {
		key := walkKey{id: t.ID, root: root}
		if _, ok := w.seen[key]; ok {
			return
		}
		w.seen[key] = struct{}{}
	}

	w.fields(t, t, path, root)
}

// fields visits the fields of s, which is t itself or a struct embedded in
// it. Accessors are resolved on t.
func (w *walker) fields(t, s *TypeInfo, path *TypePath, root string) {
	var own []*FieldInfo

	for i := range s.Fields {
		f := &s.Fields[i]
		if flattened(f) {
			w.fields(t, f.Type, path, root)
			continue
		}

		own = append(own, f)
	}

	for _, f := range own {
		decl := f.Declaration()
		fp := path.Field(f.Name)

		switch {
		case decl.Ignored:
			w.entries = append(w.entries, w.entry(t, s, f, fp, root))

		case len(decl.Targets) > 0:
			w.entries = append(w.entries, w.entry(t, s, f, fp, root))

			if sub, subPath := structOf(f.Type, fp); sub != nil {
				for _, target := range decl.Targets {
					w.model(sub, subPath, target.String())
				}
			}

		default:
			if sub, subPath := structOf(f.Type, fp); sub != nil {
				w.model(sub, subPath, root)
			}
		}
	}
}

func (w *walker) entry(t, owner *TypeInfo, f *FieldInfo, path *TypePath, root string) Entry {
	decl := f.Declaration()

	e := Entry{
		Path:    path.String(),
		Owner:   owner.ID,
		Field:   f.Name,
		Type:    TypeString(f.Type),
		Root:    root,
		Targets: decl.Targets,
		Ignored: decl.Ignored,
	}

	if !e.Ignored {
		e.Getter, e.Setter = t.Accessors(f)
	}

	return e
}

// flattened reports whether f is an embedded struct value whose fields are
// bound as if declared by the embedding struct.
func flattened(f *FieldInfo) bool {
	if !f.Embedded || f.Type.Kind != TypeKindStruct {
		return false
	}

	decl := f.Declaration()

	return !decl.Ignored && len(decl.Targets) == 0
}

// structOf returns the struct a field of type t is bound as, looking through
// one pointer, or nil for leaves, collections and other shapes.
func structOf(t *TypeInfo, path *TypePath) (*TypeInfo, *TypePath) {
	switch {
	case t.Kind == TypeKindStruct:
		return t, path
	case t.Kind == TypeKindPointer && t.ElemType != nil && t.ElemType.Kind == TypeKindStruct:
		return t.ElemType, path.Pointer()
	default:
		return nil, nil
	}
}
