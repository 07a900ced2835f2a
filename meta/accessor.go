package meta

import (
	"errors"
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
	"unsafe"
)

var ErrAccessor = errors.New("accessor failure")

var errorType = reflect.TypeFor[error]()

// FindGetter returns the getter for a field named fieldName of type fieldType,
// or nil. Candidates are Get<Name>, <Name> for unexported fields and
// Is<Name> for bool fields.
func FindGetter(methods []MethodDescriptor, fieldName string, fieldType reflect.Type) *MethodDescriptor {
	name := upperFirst(fieldName)

	candidates := []string{"Get" + name}
	if name != fieldName {
		candidates = append(candidates, name)
	}
	if fieldType.Kind() == reflect.Bool {
		candidates = append(candidates, "Is"+name)
	}

	for _, candidate := range candidates {
		for i := range methods {
			m := &methods[i]
			if m.Name != candidate {
				continue
			}

			if m.Type.NumIn() == 1 && m.Type.NumOut() == 1 && m.Type.Out(0).AssignableTo(fieldType) {
				return m
			}
		}
	}

	return nil
}

// FindSetter returns Set<Name> when it takes one argument and returns nothing
// or an error, else nil.
func FindSetter(methods []MethodDescriptor, fieldName string) *MethodDescriptor {
	name := "Set" + upperFirst(fieldName)

	for i := range methods {
		m := &methods[i]
		if m.Name != name || m.Type.NumIn() != 2 {
			continue
		}

		switch m.Type.NumOut() {
		case 0:
			return m
		case 1:
			if m.Type.Out(0) == errorType {
				return m
			}
		}
	}

	return nil
}

// SetterType is the type a value must have before Set: the setter's parameter
// type, or the field type for direct writes.
func (f *FieldDescriptor) SetterType() reflect.Type {
	if f.Setter != nil {
		return f.Setter.Type.In(1)
	}

	return f.Type
}

// Get reads the field from model, an addressable struct value of the type the
// descriptor was built for.
func (f *FieldDescriptor) Get(model reflect.Value) (v reflect.Value, err error) {
	defer recoverAccessor("get", f, &err)

	if f.Getter != nil {
		return model.Addr().Method(f.Getter.Index).Call(nil)[0], nil
	}

	return f.Field(model), nil
}

// Field returns the field itself, bypassing any getter. The result is
// settable even when the field is unexported.
func (f *FieldDescriptor) Field(model reflect.Value) reflect.Value {
	fv := model.FieldByIndex(f.Index)
	if !fv.CanSet() && fv.CanAddr() {
		fv = reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
	}

	return fv
}

// Set writes v into the field of model through the setter or directly. An
// invalid v writes the zero value. Values of a different named type with the
// same kind are converted.
func (f *FieldDescriptor) Set(model reflect.Value, v reflect.Value) (err error) {
	defer recoverAccessor("set", f, &err)

	target := f.SetterType()

	switch {
	case !v.IsValid():
		v = reflect.Zero(target)
	case v.Type().AssignableTo(target):
	case v.Kind() == target.Kind() && v.Type().ConvertibleTo(target):
		v = v.Convert(target)
	default:
		return fmt.Errorf("%w: set %s.%s: %s is not assignable to %s", ErrAccessor, f.Owner.Name(), f.Name, v.Type(), target)
	}

	if f.Setter == nil {
		f.Field(model).Set(v)
		return nil
	}

	out := model.Addr().Method(f.Setter.Index).Call([]reflect.Value{v})
	if len(out) == 1 && !out[0].IsNil() {
		return fmt.Errorf("%w: %s.%s: %w", ErrAccessor, f.Owner.Name(), f.Setter.Name, out[0].Interface().(error))
	}

	return nil
}

func recoverAccessor(op string, f *FieldDescriptor, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %s %s.%s: %v", ErrAccessor, op, f.Owner.Name(), f.Name, r)
	}
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
