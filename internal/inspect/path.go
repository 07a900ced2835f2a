package inspect

import (
	"strings"
)

// TypePath builds a readable path string for a field reached by the walk.
// Examples:
//   - "Customer" for the model itself
//   - "Customer.Billing.Street" for a field of a nested struct
//   - "Customer.*Shipping.City" for a field behind a pointer
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Pointer marks the last element as reached through a pointer.
func (p *TypePath) Pointer() *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{"*"}}
	}

	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] = "*" + newParts[len(newParts)-1]

	return &TypePath{parts: newParts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// TypeString returns a human-readable string representation of a TypeInfo.
func TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindStruct, TypeKindAlias:
		if t.IsNamed() {
			return t.ShortName()
		}
		if t.Kind == TypeKindAlias {
			return TypeString(t.Underlying)
		}
		return "struct{...}"

	case TypeKindPointer:
		return "*" + TypeString(t.ElemType)

	case TypeKindSlice:
		return "[]" + TypeString(t.ElemType)

	case TypeKindExternal:
		if t.IsNamed() {
			return t.ShortName()
		}
		return t.GoType.String()

	default:
		return t.GoType.String()
	}
}
