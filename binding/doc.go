// Package binding keeps Go structs and host widgets synchronized.
//
// A Binder walks a model struct, finds the fields declared with a `bind` tag
// (or through a meta.Source such as a declare.File), resolves each declared
// view under a root and attaches a strategy chosen by the view's family:
//
//   - text views show the field's textual form and parse edits back;
//   - checkable views mirror bool fields;
//   - sliders mirror integer fields, writing back only user changes;
//   - rating views mirror float fields, writing back only user changes.
//
// Undeclared struct fields are bound recursively against the same root. A
// declared field whose view has no family is bound recursively against that
// view.
//
// Bind returns a Binding. Calling its Unbind method detaches every listener the
// call registered.
//
//	b := binding.New(widget.ResourceMap{"nameInput": 1})
//	h, err := b.Bind(&profile, layout)
//	if err != nil {
//		return err
//	}
//	defer h.Unbind()
//
// The engine never starts goroutines. Bind and every listener run on the
// goroutine the host delivers events on.
package binding
