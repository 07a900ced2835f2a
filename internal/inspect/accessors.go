package inspect

import (
	"go/types"
	"unicode"
	"unicode/utf8"
)

var errorType = types.Universe.Lookup("error").Type()

// Accessors returns the names of the getter and setter a binder uses for
// field f of a model of type t, or "" where it reads or writes the field
// directly. t's method set includes methods promoted from embedded types,
// so flattened fields are resolved against the outer model.
func (t *TypeInfo) Accessors(f *FieldInfo) (getter, setter string) {
	name := upperFirst(f.Name)

	candidates := []string{"Get" + name}
	if name != f.Name {
		candidates = append(candidates, name)
	}
	if isBool(f.Type.GoType) {
		candidates = append(candidates, "Is"+name)
	}

	for _, candidate := range candidates {
		if m := t.method(candidate); m != nil && isGetter(m.Sig, f.Type.GoType) {
			getter = candidate
			break
		}
	}

	if m := t.method("Set" + name); m != nil && isSetter(m.Sig) {
		setter = m.Name
	}

	return getter, setter
}

func (t *TypeInfo) method(name string) *MethodInfo {
	for i := range t.Methods {
		if t.Methods[i].Name == name {
			return &t.Methods[i]
		}
	}

	return nil
}

func isGetter(sig *types.Signature, field types.Type) bool {
	return sig.Params().Len() == 0 &&
		sig.Results().Len() == 1 &&
		types.AssignableTo(sig.Results().At(0).Type(), field)
}

func isSetter(sig *types.Signature) bool {
	if sig.Params().Len() != 1 {
		return false
	}

	switch sig.Results().Len() {
	case 0:
		return true
	case 1:
		return types.Identical(sig.Results().At(0).Type(), errorType)
	default:
		return false
	}
}

func isBool(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsBoolean != 0
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
