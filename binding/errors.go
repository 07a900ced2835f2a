package binding

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"model-binder/widget"
)

var (
	// ErrUnsupportedModel is reported for models that are not pointers to
	// structs, and for declared sub-models of such a shape.
	ErrUnsupportedModel = errors.New("unsupported model")

	// ErrWidgetTypeMismatch is reported when a value pushed to a view is not
	// in the set its family accepts.
	ErrWidgetTypeMismatch = errors.New("widget type mismatch")

	// ErrParse is reported when a widget value cannot be converted to the
	// field's type.
	ErrParse = errors.New("cannot convert widget value")
)

// MismatchError describes a value of the wrong type pushed to a view.
type MismatchError struct {
	Family   widget.FamilyEnum
	Required []string
	// Got is the runtime type of the pushed value.
	Got reflect.Type
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s view requires %s, got %s", e.Family, strings.Join(e.Required, " or "), e.Got)
}

func (e *MismatchError) Unwrap() error {
	return ErrWidgetTypeMismatch
}
