package binding

import (
	"reflect"

	"model-binder/primitive"
)

//go:generate go tool stringer -type=ShapeEnum -trimprefix=Shape -output=shape_string.go

// ShapeEnum tells the dispatcher how a value takes part in binding.
type ShapeEnum int

const (
	ShapeUnknown    ShapeEnum = iota // func, chan, unsafe pointer, pointer to pointer
	ShapeLeaf                        // pushed to a view, never traversed
	ShapeStruct                      // struct or pointer to struct, bound as a sub-model
	ShapeCollection                  // slice or array
	ShapeMap
	ShapeInterface

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// Dispatch returns the shape of t. A single pointer level is looked through.
func Dispatch(t reflect.Type) ShapeEnum {
	if t == nil {
		return ShapeUnknown
	}

	if primitive.IsLeaf(t) {
		return ShapeLeaf
	}

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		return ShapeStruct
	case reflect.Slice, reflect.Array:
		return ShapeCollection
	case reflect.Map:
		return ShapeMap
	case reflect.Interface:
		return ShapeInterface
	default:
		return ShapeUnknown
	}
}
