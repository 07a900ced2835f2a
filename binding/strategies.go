package binding

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"go.uber.org/zap"

	"model-binder/meta"
	"model-binder/primitive"
	"model-binder/widget"
)

var (
	stringType = reflect.TypeFor[string]()

	checkableAccepts = []string{"bool"}
	sliderAccepts    = []string{"signed integer", "unsigned integer"}
	ratingAccepts    = []string{"float32", "float64"}
)

// Push values are checked before any listener is registered, so a rejected
// value leaves the view untouched and unobserved.

func (s *session) bindText(model reflect.Value, f *meta.FieldDescriptor, w widget.TextInput, native any) (widget.Disposer, error) {
	w.SetText(primitive.FormatText(native))

	return w.OnTextChanged(func(text string) {
		s.write(model, f, w, func(target reflect.Type) (reflect.Value, bool, error) {
			return textValue(text, target, s.cfg.Categories)
		})
	}), nil
}

func (s *session) bindCheckable(model reflect.Value, f *meta.FieldDescriptor, w widget.Checkable, native any) (widget.Disposer, error) {
	checked, err := pushBool(native)
	if err != nil {
		return nil, err
	}

	w.SetChecked(checked)

	return w.OnCheckedChanged(func(checked bool) {
		s.write(model, f, w, func(target reflect.Type) (reflect.Value, bool, error) {
			return nativeValue(checked, target)
		})
	}), nil
}

func (s *session) bindSlider(model reflect.Value, f *meta.FieldDescriptor, w widget.Slider, native any) (widget.Disposer, error) {
	progress, err := pushInt(native)
	if err != nil {
		return nil, err
	}

	w.SetProgress(progress)

	return w.OnProgressChanged(func(progress int, fromUser bool) {
		if !fromUser {
			return
		}

		s.write(model, f, w, func(target reflect.Type) (reflect.Value, bool, error) {
			return nativeValue(progress, target)
		})
	}), nil
}

func (s *session) bindRating(model reflect.Value, f *meta.FieldDescriptor, w widget.Rating, native any) (widget.Disposer, error) {
	rating, err := pushFloat(native)
	if err != nil {
		return nil, err
	}

	w.SetRating(rating)

	return w.OnRatingChanged(func(rating float32, fromUser bool) {
		if !fromUser {
			return
		}

		s.write(model, f, w, func(target reflect.Type) (reflect.Value, bool, error) {
			return nativeValue(rating, target)
		})
	}), nil
}

// write runs one write-back. convert receives the type the setter or field
// expects and returns the value to store, or false to leave the model as is.
// Failures never reach the caller, which is the host's event loop.
func (s *session) write(
	model reflect.Value, f *meta.FieldDescriptor, view widget.View,
	convert func(target reflect.Type) (reflect.Value, bool, error),
) {
	defer func() {
		if r := recover(); r != nil {
			s.writeFailed(f, view, fmt.Errorf("%w: write %s.%s: %v", meta.ErrAccessor, f.Owner.Name(), f.Name, r))
		}
	}()

	if hook := s.onModelUpdate; hook != nil && hook(view, *f) {
		return
	}

	v, ok, err := convert(f.SetterType())
	if err != nil {
		s.writeFailed(f, view, fmt.Errorf("%s.%s: %w", f.Owner.Name(), f.Name, err))
		return
	}

	if !ok {
		return
	}

	if err := f.Set(model, v); err != nil {
		s.writeFailed(f, view, err)
	}
}

func (s *session) writeFailed(f *meta.FieldDescriptor, view widget.View, err error) {
	s.log.Error("failed to write widget value into model",
		zap.String("field", f.Name),
		zap.Stringer("family", widget.FamilyOf(view)),
		zap.Error(err))

	if s.cfg.OnWriteError == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("write error handler panicked", zap.Any("panic", r))
		}
	}()

	s.cfg.OnWriteError(err)
}

// textValue converts edited text into a value of type target.
func textValue(text string, target reflect.Type, categories primitive.CategoryEnum) (reflect.Value, bool, error) {
	kind, boxed := primitive.Classify(target)

	switch {
	case text == primitive.NullText && nillable(target):
		return reflect.Zero(target), true, nil

	case target.Kind() == reflect.Interface && stringType.AssignableTo(target):
		return reflect.ValueOf(text), true, nil

	case kind != primitive.KindString && target.Kind() != reflect.Ptr && strings.TrimSpace(text) == "":
		// A cleared number or flag has no value to store yet.
		return reflect.Value{}, false, nil

	case boxed && kind.IsNumber() && text == "":
		return reflect.Value{}, false, nil
	}

	v, err := primitive.ParseText(text, target, categories)
	if err != nil {
		return reflect.Value{}, false, fmt.Errorf("%w: %q as %s: %w", ErrParse, text, target, err)
	}

	return v, true, nil
}

// nativeValue converts a widget-native bool, int or float32 into target.
func nativeValue(native any, target reflect.Type) (reflect.Value, bool, error) {
	if target.Kind() == reflect.Interface && reflect.TypeOf(native).AssignableTo(target) {
		return reflect.ValueOf(native), true, nil
	}

	v, err := primitive.Convert(native, target)
	if err != nil {
		return reflect.Value{}, false, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return v, true, nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// scalar returns the value native holds with pointers removed. It reports
// false for nil.
func scalar(native any) (reflect.Value, bool) {
	v := reflect.ValueOf(native)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}

	return v, v.IsValid()
}

func pushBool(native any) (bool, error) {
	v, ok := scalar(native)
	if !ok {
		return false, nil
	}

	if kind, _ := primitive.Classify(v.Type()); kind != primitive.KindBool {
		return false, &MismatchError{Family: widget.FamilyCheckable, Required: checkableAccepts, Got: v.Type()}
	}

	return v.Bool(), nil
}

func pushInt(native any) (int, error) {
	v, ok := scalar(native)
	if !ok {
		return 0, nil
	}

	kind, _ := primitive.Classify(v.Type())

	switch {
	case kind.IsSigned():
		n := v.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, fmt.Errorf("%w: %d: %w", ErrParse, n, primitive.ErrOverflow)
		}
		return int(n), nil

	case kind.IsUnsigned():
		n := v.Uint()
		if n > math.MaxInt {
			return 0, fmt.Errorf("%w: %d: %w", ErrParse, n, primitive.ErrOverflow)
		}
		return int(n), nil

	default:
		return 0, &MismatchError{Family: widget.FamilySlider, Required: sliderAccepts, Got: v.Type()}
	}
}

func pushFloat(native any) (float32, error) {
	v, ok := scalar(native)
	if !ok {
		return 0, nil
	}

	if kind, _ := primitive.Classify(v.Type()); !kind.IsFloat() {
		return 0, &MismatchError{Family: widget.FamilyRating, Required: ratingAccepts, Got: v.Type()}
	}

	f := v.Float()
	if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, fmt.Errorf("%w: %g: %w", ErrParse, f, primitive.ErrOverflow)
	}

	return float32(f), nil
}
