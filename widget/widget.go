package widget

// View is any node of the host widget tree.
type View any

// Handle is the numeric id a host assigns to a view.
type Handle int

// Disposer detaches a previously registered listener. Calling it more than
// once is a no-op.
type Disposer func()

// Container is a view that can look up descendants by id.
type Container interface {
	FindViewByID(id Handle) View
}

// TextInput is a view displaying editable or read-only text. Listeners fire on
// every text change.
type TextInput interface {
	SetText(text string)
	Text() string
	OnTextChanged(fn func(text string)) Disposer
}

// Checkable is a two-state view.
type Checkable interface {
	SetChecked(checked bool)
	Checked() bool
	OnCheckedChanged(fn func(checked bool)) Disposer
}

// Slider is a discrete-range view. fromUser is false when the position was
// changed programmatically.
type Slider interface {
	SetProgress(progress int)
	Progress() int
	OnProgressChanged(fn func(progress int, fromUser bool)) Disposer
}

// Rating is a continuous-range view. fromUser is false when the rating was
// changed programmatically.
type Rating interface {
	SetRating(rating float32)
	Rating() float32
	OnRatingChanged(fn func(rating float32, fromUser bool)) Disposer
}
