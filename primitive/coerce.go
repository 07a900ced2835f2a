package primitive

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// NullText is the text a user types to clear a nillable field.
const NullText = "null"

var (
	ErrNoTextForm       = errors.New("type has no textual representation")
	ErrCategoryDisabled = errors.New("text conversion category is disabled")
	ErrInvalidEnum      = errors.New("value is not valid for enum type")
	ErrOverflow         = errors.New("value overflows target type")
	ErrNotConvertible   = errors.New("value is not convertible to target type")
)

var validator = reflect.TypeFor[interface{ IsValid() bool }]()

// FormatText returns the textual representation of v pushed to a text widget.
// Pointers are dereferenced and absent values format as the empty string.
func FormatText(v any) string {
	if v == nil {
		return ""
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}

	if rv.Type() == timeType {
		return rv.Interface().(time.Time).Format(time.RFC3339Nano)
	}

	return fmt.Sprint(rv.Interface())
}

// ParseText parses text into a value of type t. A pointer t yields a freshly
// allocated pointer. Conversions outside the allowed categories fail with
// ErrCategoryDisabled.
func ParseText(text string, t reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	kind, boxed := Classify(t)
	if kind == 0 {
		return reflect.Value{}, fmt.Errorf("%s: %w", t, ErrNoTextForm)
	}

	base := t
	if boxed {
		base = t.Elem()
	}

	if category := ForKind(kind); category != CategoryNone && !allowed.Has(category) {
		return reflect.Value{}, fmt.Errorf("%s: %w", category, ErrCategoryDisabled)
	}

	v := reflect.New(base).Elem()

	switch {
	case kind == KindString:
		if base.PkgPath() != "" {
			if !allowed.Has(CategoryEnumString) {
				return reflect.Value{}, fmt.Errorf("%s: %w", base, ErrCategoryDisabled)
			}

			v.SetString(text)
			if base.Implements(validator) && !v.Interface().(interface{ IsValid() bool }).IsValid() {
				return reflect.Value{}, fmt.Errorf("%q for %s: %w", text, base, ErrInvalidEnum)
			}
		} else {
			v.SetString(text)
		}

	case kind == KindDuration:
		d, err := time.ParseDuration(text)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetInt(int64(d))

	case kind == KindTime:
		ts, err := time.Parse(time.RFC3339Nano, text)
		if err != nil {
			return reflect.Value{}, err
		}
		v.Set(reflect.ValueOf(ts))

	case kind == KindBool:
		b, err := parseTextualBool(text)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetBool(b)

	case kind.IsSigned():
		n, err := strconv.ParseInt(text, 10, base.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetInt(n)

	case kind.IsUnsigned():
		n, err := strconv.ParseUint(text, 10, base.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetUint(n)

	case kind.IsFloat():
		f, err := strconv.ParseFloat(text, base.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetFloat(f)

	default:
		return reflect.Value{}, fmt.Errorf("%s: %w", t, ErrNoTextForm)
	}

	return box(v, boxed), nil
}

// Convert converts a widget-native scalar (bool, int, float32) into type t,
// allocating a pointer when t is one. Integer targets report ErrOverflow
// instead of silently wrapping.
func Convert(native any, t reflect.Type) (reflect.Value, error) {
	kind, boxed := Classify(t)
	if kind == 0 {
		return reflect.Value{}, fmt.Errorf("%T to %s: %w", native, t, ErrNotConvertible)
	}

	base := t
	if boxed {
		base = t.Elem()
	}

	v := reflect.New(base).Elem()
	src := reflect.ValueOf(native)

	switch nk, _ := Classify(src.Type()); {
	case nk == KindBool && kind == KindBool:
		v.SetBool(src.Bool())

	case nk.IsSigned() && kind.IsSigned():
		if v.OverflowInt(src.Int()) {
			return reflect.Value{}, fmt.Errorf("%d to %s: %w", src.Int(), t, ErrOverflow)
		}
		v.SetInt(src.Int())

	case nk.IsSigned() && kind.IsUnsigned():
		if src.Int() < 0 || v.OverflowUint(uint64(src.Int())) {
			return reflect.Value{}, fmt.Errorf("%d to %s: %w", src.Int(), t, ErrOverflow)
		}
		v.SetUint(uint64(src.Int()))

	case nk.IsFloat() && kind.IsFloat():
		f := src.Float()
		if kind == KindFloat32 && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return reflect.Value{}, fmt.Errorf("%g to %s: %w", f, t, ErrOverflow)
		}
		v.SetFloat(f)

	default:
		return reflect.Value{}, fmt.Errorf("%T to %s: %w", native, t, ErrNotConvertible)
	}

	return box(v, boxed), nil
}

func box(v reflect.Value, boxed bool) reflect.Value {
	if !boxed {
		return v
	}

	p := reflect.New(v.Type())
	p.Elem().Set(v)

	return p
}

func parseTextualBool(text string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not a boolean", text)
	}
}
