package binding

import (
	"reflect"

	"model-binder/widget"
)

// visit identifies one sub-model bound against one root.
type visit struct {
	addr uintptr
	typ  reflect.Type
	root any
}

// visited records the sub-models already bound in one Bind call, so that
// cyclic models terminate.
type visited struct {
	done map[visit]struct{}
}

// Enter marks model as bound against root. It reports false when that already
// happened. model must be addressable.
func (v *visited) Enter(model reflect.Value, root widget.View) bool {
	if v.done == nil {
		v.done = make(map[visit]struct{})
	}

	key := visit{addr: model.Addr().Pointer(), typ: model.Type(), root: rootKey(root)}
	if _, exists := v.done[key]; exists {
		return false
	}

	v.done[key] = struct{}{}

	return true
}

// rootID identifies a root whose type is not comparable. Maps, slices and
// funcs are told apart by pointer; other values only by type.
type rootID struct {
	typ reflect.Type
	ptr uintptr
}

// rootKey returns a map-safe identity for root.
func rootKey(root widget.View) any {
	if root == nil {
		return nil
	}

	t := reflect.TypeOf(root)
	if t.Comparable() {
		return root
	}

	switch rv := reflect.ValueOf(root); rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		return rootID{typ: t, ptr: rv.Pointer()}
	default:
		return rootID{typ: t}
	}
}
