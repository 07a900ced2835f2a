package primitive

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime
	KindDuration
	KindPrimitiveEnum // alias to any integer number, boolean or string

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
)

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k KindEnum) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// FromReflectType returns the kind of exactly rtype. Named integer and string
// types other than time.Duration are reported as KindPrimitiveEnum.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype {
	case timeType:
		return KindTime
	case durationType:
		return KindDuration
	}

	if rtype.PkgPath() != "" {
		switch rtype.Kind() {
		default:
			return 0
		case reflect.Int, reflect.String:
			return KindPrimitiveEnum
		}
	}

	return fromBasicKind(rtype.Kind())
}

// Classify reports the scalar kind a value of type t behaves as when it is
// pushed to or pulled from a widget. Named types classify as their underlying
// basic kind and a single pointer level is unwrapped; boxed reports whether
// that happened.
func Classify(t reflect.Type) (kind KindEnum, boxed bool) {
	if t == nil {
		return 0, false
	}

	if t.Kind() == reflect.Ptr {
		boxed = true
		t = t.Elem()
	}

	switch t {
	case timeType:
		return KindTime, boxed
	case durationType:
		return KindDuration, boxed
	}

	kind = fromBasicKind(t.Kind())
	if kind == 0 {
		return 0, false
	}

	return kind, boxed
}

// IsScalarLeaf reports whether t is a numeric, boolean, time or duration type,
// or a pointer to one.
func IsScalarLeaf(t reflect.Type) bool {
	kind, _ := Classify(t)
	return kind != 0 && kind != KindString
}

// IsTextLeaf reports whether t is a string type or a pointer to one.
func IsTextLeaf(t reflect.Type) bool {
	kind, _ := Classify(t)
	return kind == KindString
}

// IsLeaf reports whether t terminates model traversal.
func IsLeaf(t reflect.Type) bool {
	return IsScalarLeaf(t) || IsTextLeaf(t)
}

func fromBasicKind(k reflect.Kind) KindEnum {
	switch k {
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	default:
		return 0
	}
}
