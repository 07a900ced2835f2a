package meta

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"model-binder/primitive"
	"model-binder/widget"
)

var ErrNotStruct = errors.New("model type is not a struct")

// TypeMetadata is everything the binder needs to know about one model type.
type TypeMetadata struct {
	Type    reflect.Type
	Fields  []FieldDescriptor
	Methods []MethodDescriptor
}

// Field returns the descriptor for the named field.
func (m *TypeMetadata) Field(name string) (*FieldDescriptor, bool) {
	for i := range m.Fields {
		if m.Fields[i].Name == name {
			return &m.Fields[i], true
		}
	}

	return nil, false
}

// FieldDescriptor describes one bindable field of a model type.
type FieldDescriptor struct {
	// Name is the Go field name.
	Name string
	// Type is the declared field type.
	Type reflect.Type
	// Owner is the struct type declaring the field; it differs from the model
	// type for fields promoted from embedded structs.
	Owner reflect.Type
	// Index is the index sequence for reflect.Value.FieldByIndex on the model.
	Index []int
	// Exported reports whether the field is exported.
	Exported bool
	// Targets lists the declared views in declaration order.
	Targets []widget.ViewID
	// Ignored marks fields declared with "-".
	Ignored bool
	// Getter and Setter are the resolved accessors, nil for direct access.
	Getter *MethodDescriptor
	Setter *MethodDescriptor
}

// Declared reports whether the field carries a binding declaration.
func (f *FieldDescriptor) Declared() bool {
	return len(f.Targets) > 0
}

// TraversalCandidate reports whether the field's value is bound recursively as
// a sub-model: it has no declaration, is not ignored and is not a leaf.
func (f *FieldDescriptor) TraversalCandidate() bool {
	return !f.Ignored && !f.Declared() && !primitive.IsLeaf(f.Type)
}

// MethodDescriptor is one method of a model's pointer method set.
type MethodDescriptor struct {
	Name  string
	Index int
	// Type is the method type including the receiver.
	Type reflect.Type
}

// Cache memoizes TypeMetadata per model type. Entries are never evicted, a
// type's shape cannot change while the program runs. It is safe for
// concurrent use.
type Cache struct {
	mu      sync.Mutex
	sources []Source
	types   map[reflect.Type]*TypeMetadata
}

// NewCache returns an empty cache consulting sources, in order, before struct
// tags.
func NewCache(sources ...Source) *Cache {
	return &Cache{
		sources: slices.Clone(sources),
		types:   make(map[reflect.Type]*TypeMetadata),
	}
}

// Get returns the metadata for t, computing it on first use. A pointer type is
// normalized to its element type.
func (c *Cache) Get(t reflect.Type) (*TypeMetadata, error) {
	if t == nil {
		return nil, ErrNotStruct
	}

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s: %w", t, ErrNotStruct)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if md, ok := c.types[t]; ok {
		return md, nil
	}

	md := c.build(t)
	c.types[t] = md

	return md, nil
}

// Len returns the number of cached types.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.types)
}

func (c *Cache) build(t reflect.Type) *TypeMetadata {
	md := &TypeMetadata{
		Type:    t,
		Methods: methodsOf(reflect.PointerTo(t)),
	}

	md.Fields = c.collect(t, nil, nil)
	for i := range md.Fields {
		f := &md.Fields[i]
		f.Getter = FindGetter(md.Methods, f.Name, f.Type)
		f.Setter = FindSetter(md.Methods, f.Name)
	}

	return md
}

// collect appends the fields of embedded struct values, then t's own fields.
func (c *Cache) collect(t reflect.Type, prefix []int, out []FieldDescriptor) []FieldDescriptor {
	var own []FieldDescriptor

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Name == "_" {
			continue
		}

		index := append(slices.Clone(prefix), i)
		decl := declarationFor(c.sources, t, sf)

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && !decl.Ignored && len(decl.Targets) == 0 {
			out = c.collect(sf.Type, index, out)
			continue
		}

		own = append(own, FieldDescriptor{
			Name:     sf.Name,
			Type:     sf.Type,
			Owner:    t,
			Index:    index,
			Exported: sf.IsExported(),
			Targets:  decl.Targets,
			Ignored:  decl.Ignored,
		})
	}

	return append(out, own...)
}

func methodsOf(t reflect.Type) []MethodDescriptor {
	methods := make([]MethodDescriptor, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		methods = append(methods, MethodDescriptor{Name: m.Name, Index: i, Type: m.Type})
	}

	return methods
}
