package meta

import (
	"reflect"
	"strings"

	"model-binder/widget"
)

// TagName is the struct tag holding binding declarations.
const TagName = "bind"

// Declaration is the binding metadata attached to one field.
type Declaration struct {
	Targets []widget.ViewID
	Ignored bool
}

// Source supplies declarations from somewhere other than struct tags. ok is
// false when the source has nothing to say about the field.
type Source interface {
	Declaration(t reflect.Type, field string) (decl Declaration, ok bool)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(t reflect.Type, field string) (Declaration, bool)

func (f SourceFunc) Declaration(t reflect.Type, field string) (Declaration, bool) {
	return f(t, field)
}

// ParseTag parses a bind tag value.
func ParseTag(tag string) Declaration {
	if strings.TrimSpace(tag) == "-" {
		return Declaration{Ignored: true}
	}

	return Declaration{Targets: widget.ParseViewIDs(tag)}
}

// declarationFor consults sources in order, then the struct tag. owner is the
// struct type declaring the field, which differs from the model type for
// fields promoted from embedded structs.
func declarationFor(sources []Source, owner reflect.Type, sf reflect.StructField) Declaration {
	for _, src := range sources {
		if decl, ok := src.Declaration(owner, sf.Name); ok {
			return decl
		}
	}

	tag, ok := sf.Tag.Lookup(TagName)
	if !ok {
		return Declaration{}
	}

	return ParseTag(tag)
}
