package widget

import "reflect"

//go:generate go tool stringer -type=FamilyEnum -trimprefix=Family -output=family_string.go

// FamilyEnum is the closed set of widget families the engine binds values to.
type FamilyEnum int

const (
	FamilyNone FamilyEnum = iota // not bindable; treated as a sub-root
	FamilyCheckable
	FamilyText
	FamilySlider
	FamilyRating

	// FamilyTotal is a constant that represents the total number of families defined
	FamilyTotal = int(iota)
)

// Variant is a view tagged with its family. Exactly the field matching Family
// is set; for FamilyNone only View is.
type Variant struct {
	Family    FamilyEnum
	View      View
	Text      TextInput
	Checkable Checkable
	Slider    Slider
	Rating    Rating
}

// Classify tags v with its family. A view implementing several family
// interfaces is classified by precedence: checkable, text, slider, rating.
// A check box is also a text view, and its checked state is what binds.
func Classify(v View) Variant {
	res := Variant{View: v}

	switch w := v.(type) {
	case Checkable:
		res.Family, res.Checkable = FamilyCheckable, w
	case TextInput:
		res.Family, res.Text = FamilyText, w
	case Slider:
		res.Family, res.Slider = FamilySlider, w
	case Rating:
		res.Family, res.Rating = FamilyRating, w
	}

	return res
}

// FamilyOf returns the family of v.
func FamilyOf(v View) FamilyEnum {
	return Classify(v).Family
}

// IsNil reports whether v is nil or a typed nil pointer, map, slice, func,
// chan or interface wrapped in a View.
func IsNil(v View) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
