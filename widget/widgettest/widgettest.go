// Package widgettest provides in-memory widgets for exercising bindings
// without a real toolkit.
//
// Programmatic setters behave like a typical toolkit: they notify listeners,
// and sliders and ratings report fromUser=false. The Type, Toggle, Drag and
// Rate methods simulate user interaction.
package widgettest

import (
	"model-binder/widget"
)

// Text is a text input.
type Text struct {
	text      string
	listeners widget.Listeners[func(string)]
}

func NewText() *Text { return &Text{} }

func (t *Text) SetText(text string) {
	t.text = text
	t.listeners.Each(func(fn func(string)) { fn(text) })
}

func (t *Text) Text() string { return t.text }

func (t *Text) OnTextChanged(fn func(text string)) widget.Disposer {
	return t.listeners.Add(fn)
}

// Type replaces the text as if the user edited it.
func (t *Text) Type(text string) { t.SetText(text) }

// Listeners returns the number of attached listeners.
func (t *Text) Listeners() int { return t.listeners.Len() }

// Checkbox is a checkable view that also displays a label, like most
// toolkits' check boxes.
type Checkbox struct {
	Text
	checked   bool
	listeners widget.Listeners[func(bool)]
}

func NewCheckbox() *Checkbox { return &Checkbox{} }

func (c *Checkbox) SetChecked(checked bool) {
	if c.checked == checked {
		return
	}

	c.checked = checked
	c.listeners.Each(func(fn func(bool)) { fn(checked) })
}

func (c *Checkbox) Checked() bool { return c.checked }

func (c *Checkbox) OnCheckedChanged(fn func(checked bool)) widget.Disposer {
	return c.listeners.Add(fn)
}

// Toggle flips the state as if the user tapped the box.
func (c *Checkbox) Toggle() { c.SetChecked(!c.checked) }

// Listeners returns the number of attached check listeners.
func (c *Checkbox) Listeners() int { return c.listeners.Len() }

// SeekBar is a discrete-range slider.
type SeekBar struct {
	progress  int
	listeners widget.Listeners[func(int, bool)]
}

func NewSeekBar() *SeekBar { return &SeekBar{} }

func (s *SeekBar) SetProgress(progress int) { s.set(progress, false) }

func (s *SeekBar) Progress() int { return s.progress }

func (s *SeekBar) OnProgressChanged(fn func(progress int, fromUser bool)) widget.Disposer {
	return s.listeners.Add(fn)
}

// Drag moves the thumb as if the user dragged it.
func (s *SeekBar) Drag(progress int) { s.set(progress, true) }

// Listeners returns the number of attached listeners.
func (s *SeekBar) Listeners() int { return s.listeners.Len() }

func (s *SeekBar) set(progress int, fromUser bool) {
	s.progress = progress
	s.listeners.Each(func(fn func(int, bool)) { fn(progress, fromUser) })
}

// RatingBar is a continuous-range rating control.
type RatingBar struct {
	rating    float32
	listeners widget.Listeners[func(float32, bool)]
}

func NewRatingBar() *RatingBar { return &RatingBar{} }

func (r *RatingBar) SetRating(rating float32) { r.set(rating, false) }

func (r *RatingBar) Rating() float32 { return r.rating }

func (r *RatingBar) OnRatingChanged(fn func(rating float32, fromUser bool)) widget.Disposer {
	return r.listeners.Add(fn)
}

// Rate sets the rating as if the user tapped a star.
func (r *RatingBar) Rate(rating float32) { r.set(rating, true) }

// Listeners returns the number of attached listeners.
func (r *RatingBar) Listeners() int { return r.listeners.Len() }

func (r *RatingBar) set(rating float32, fromUser bool) {
	r.rating = rating
	r.listeners.Each(func(fn func(float32, bool)) { fn(rating, fromUser) })
}

// Image is a view of no bindable family.
type Image struct{}

// Layout is a container. Lookups search direct children first, then nested
// containers depth-first in insertion order.
type Layout struct {
	handles  []widget.Handle
	children map[widget.Handle]widget.View
}

func NewLayout() *Layout {
	return &Layout{children: make(map[widget.Handle]widget.View)}
}

// Add places v under h and returns the layout for chaining.
func (l *Layout) Add(h widget.Handle, v widget.View) *Layout {
	if _, ok := l.children[h]; !ok {
		l.handles = append(l.handles, h)
	}
	l.children[h] = v

	return l
}

func (l *Layout) FindViewByID(id widget.Handle) widget.View {
	if v, ok := l.children[id]; ok {
		return v
	}

	for _, h := range l.handles {
		c, ok := l.children[h].(widget.Container)
		if !ok {
			continue
		}

		if v := c.FindViewByID(id); !widget.IsNil(v) {
			return v
		}
	}

	return nil
}
