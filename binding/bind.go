package binding

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"model-binder/internal/diagnostic"
	"model-binder/meta"
	"model-binder/widget"
)

// session is the state of one Bind call. Listeners keep it alive.
type session struct {
	*Binder

	binding *Binding
	log     *zap.Logger
	visited visited
}

// Bind binds model, a pointer to a struct, to the views under root.
//
// A nil model yields an empty Binding. Any other shape fails with
// ErrUnsupportedModel. Failures of single fields or targets do not stop the
// walk; they are recorded in the Binding's diagnostics and, with
// Config.Strict, returned joined. The Binding is returned in every case so
// that partial results can be released with Unbind.
func (b *Binder) Bind(model any, root widget.View) (*Binding, error) {
	s := &session{Binder: b, binding: newBinding()}
	s.log = b.logger.With(zap.String("binding", s.binding.id.String()))

	if model == nil {
		s.log.Debug("nil model, nothing to bind")
		return s.binding, nil
	}

	rv := reflect.ValueOf(model)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		s.log.Debug("nil model, nothing to bind", zap.Stringer("model", rv.Type()))
		return s.binding, nil
	}

	if rv.Kind() != reflect.Ptr || Dispatch(rv.Type()) != ShapeStruct {
		err := fmt.Errorf("%w: %s, want a pointer to a struct", ErrUnsupportedModel, rv.Type())
		s.binding.diags.AddCause(diagnostic.CodeUnsupportedModel, err, rv.Type().String(), "")
		s.log.Error("cannot bind model", zap.Stringer("model", rv.Type()), zap.Error(err))

		return s.binding, err
	}

	s.log = s.log.With(zap.Stringer("model", rv.Type().Elem()))
	s.bindModel(rv.Elem(), root)

	return s.finish()
}

func (s *session) finish() (*Binding, error) {
	err := s.binding.Err()
	if err == nil {
		s.log.Debug("model bound", zap.Int("bindings", s.binding.Len()))
		return s.binding, nil
	}

	if s.cfg.Strict {
		return s.binding, err
	}

	s.log.Warn("model bound with failures",
		zap.Int("bindings", s.binding.Len()),
		zap.Int("failures", len(s.binding.diags.Errors)),
		zap.Error(err))

	return s.binding, nil
}

// bindModel binds every field of model, an addressable struct, against root.
func (s *session) bindModel(model reflect.Value, root widget.View) {
	if !s.visited.Enter(model, root) {
		s.log.Debug("sub-model already bound against root", zap.Stringer("type", model.Type()))
		return
	}

	md, err := s.cache.Get(model.Type())
	if err != nil {
		s.fail(fmt.Errorf("%w: %w", ErrUnsupportedModel, err), model.Type(), "")
		return
	}

	for i := range md.Fields {
		s.bindField(model, &md.Fields[i], root)
	}
}

func (s *session) bindField(model reflect.Value, f *meta.FieldDescriptor, root widget.View) {
	if f.Ignored {
		return
	}

	if !f.Declared() {
		if !f.TraversalCandidate() {
			return
		}

		if err := s.traverse(model, f, root); err != nil {
			s.fail(err, model.Type(), f.Name)
		}

		return
	}

	for _, id := range f.Targets {
		view, ok, err := s.resolve(root, id, f)
		if err != nil {
			s.fail(err, model.Type(), f.Name)
			continue
		}

		if !ok {
			s.log.Debug("view not found", zap.String("field", f.Name), zap.Stringer("view", id))
			continue
		}

		if err := s.bindTarget(model, f, id, view); err != nil {
			s.fail(err, model.Type(), f.Name)
		}
	}
}

// resolve looks id up under root. Host lookups run under guard.
func (s *session) resolve(root widget.View, id widget.ViewID, f *meta.FieldDescriptor) (view widget.View, ok bool, err error) {
	defer guard("resolve "+id.String()+" for", f, &err)

	view, ok = widget.Resolve(root, id, s.resources)

	return view, ok, nil
}

// traverse binds an undeclared struct-valued field against the same root.
func (s *session) traverse(model reflect.Value, f *meta.FieldDescriptor, root widget.View) (err error) {
	defer guard("traverse", f, &err)

	sub, shape, err := subModel(model, f)
	if err != nil {
		return err
	}

	if shape != ShapeStruct {
		s.log.Debug("skipping undeclared field", zap.String("field", f.Name), zap.Stringer("shape", shape))
		return nil
	}

	if sub.IsValid() {
		s.bindModel(sub, root)
	}

	return nil
}

func (s *session) bindTarget(model reflect.Value, f *meta.FieldDescriptor, id widget.ViewID, view widget.View) (err error) {
	defer guard("bind", f, &err)

	v := widget.Classify(view)

	if v.Family == widget.FamilyNone {
		sub, shape, err := subModel(model, f)

		switch {
		case err != nil:
			return err
		case shape == ShapeInterface:
			// nil interface, nothing to bind
			return nil
		case shape != ShapeStruct:
			return fmt.Errorf("%w: %s field %s bound to %s, a view without family", ErrUnsupportedModel, shape, f.Name, id)
		}

		if sub.IsValid() {
			s.bindModel(sub, view)
		}

		return nil
	}

	value, err := f.Get(model)
	if err != nil {
		return err
	}

	native := deref(value)
	if hook := s.onViewUpdate; hook != nil {
		native = hook(native, view)
	}

	var dispose widget.Disposer

	switch v.Family {
	case widget.FamilyText:
		dispose, err = s.bindText(model, f, v.Text, native)
	case widget.FamilyCheckable:
		dispose, err = s.bindCheckable(model, f, v.Checkable, native)
	case widget.FamilySlider:
		dispose, err = s.bindSlider(model, f, v.Slider, native)
	case widget.FamilyRating:
		dispose, err = s.bindRating(model, f, v.Rating, native)
	}

	if err != nil {
		return err
	}

	s.binding.add(dispose)
	s.log.Debug("field bound",
		zap.String("field", f.Name),
		zap.Stringer("view", id),
		zap.Stringer("family", v.Family))

	return nil
}

func (s *session) fail(err error, model reflect.Type, field string) {
	code := codeFor(err)
	s.binding.diags.AddCause(code, err, model.String(), field)
	s.log.Debug("binding failed", zap.String("field", field), zap.String("code", code), zap.Error(err))
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, ErrWidgetTypeMismatch):
		return diagnostic.CodeWidgetTypeMismatch
	case errors.Is(err, ErrUnsupportedModel):
		return diagnostic.CodeUnsupportedModel
	case errors.Is(err, ErrParse):
		return diagnostic.CodeParseFailure
	default:
		return diagnostic.CodeAccessorFailure
	}
}

// subModel returns the addressable struct held by a field and the shape it
// was dispatched on. Interface fields are dispatched on their dynamic value,
// and ShapeInterface is only returned for a nil interface. The struct is
// invalid for a nil pointer and for a struct stored by value in an
// interface, which cannot be written back. Pointer and interface fields are
// read through the getter; struct values are reached directly so that writes
// land in the model rather than in a copy.
func subModel(model reflect.Value, f *meta.FieldDescriptor) (reflect.Value, ShapeEnum, error) {
	shape := Dispatch(f.Type)
	if shape != ShapeStruct && shape != ShapeInterface {
		return reflect.Value{}, shape, nil
	}

	if f.Type.Kind() == reflect.Struct {
		return f.Field(model), ShapeStruct, nil
	}

	v, err := f.Get(model)
	if err != nil {
		return reflect.Value{}, shape, err
	}

	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, ShapeInterface, nil
		}
		v = v.Elem()
	}

	if !v.IsValid() {
		return reflect.Value{}, ShapeInterface, nil
	}

	if shape = Dispatch(v.Type()); shape != ShapeStruct {
		return reflect.Value{}, shape, nil
	}

	if v.Kind() != reflect.Ptr || v.IsNil() {
		return reflect.Value{}, ShapeStruct, nil
	}

	return v.Elem(), ShapeStruct, nil
}

// deref returns the value v holds with pointers and interfaces removed, or
// nil.
func deref(v reflect.Value) any {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	if !v.IsValid() {
		return nil
	}

	return v.Interface()
}

func guard(op string, f *meta.FieldDescriptor, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %s %s.%s: %v", meta.ErrAccessor, op, f.Owner.Name(), f.Name, r)
	}
}
