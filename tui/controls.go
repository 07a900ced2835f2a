package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"model-binder/utils"
	"model-binder/widget"
)

// Control is a focusable form row.
type Control interface {
	Label() string
	Focus() tea.Cmd
	Blur()
	Update(msg tea.Msg) tea.Cmd
	View(focused bool) string
}

// TextField is a single-line text input. It implements widget.TextInput.
type TextField struct {
	label     string
	input     textinput.Model
	listeners widget.Listeners[func(string)]
}

func NewTextField(label string) *TextField {
	input := textinput.New()
	input.Prompt = ""
	input.Width = 32

	return &TextField{label: label, input: input}
}

func (t *TextField) Label() string { return t.label }

func (t *TextField) SetText(text string) {
	if text == t.input.Value() {
		return
	}

	t.input.SetValue(text)
	t.notify()
}

func (t *TextField) Text() string { return t.input.Value() }

func (t *TextField) OnTextChanged(fn func(text string)) widget.Disposer {
	return t.listeners.Add(fn)
}

func (t *TextField) Focus() tea.Cmd { return t.input.Focus() }

func (t *TextField) Blur() { t.input.Blur() }

func (t *TextField) Update(msg tea.Msg) tea.Cmd {
	before := t.input.Value()

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)

	if t.input.Value() != before {
		t.notify()
	}

	return cmd
}

func (t *TextField) View(bool) string { return t.input.View() }

func (t *TextField) notify() {
	text := t.input.Value()
	t.listeners.Each(func(fn func(string)) { fn(text) })
}

// Toggle is a checkbox switched with space or enter. It implements
// widget.Checkable.
type Toggle struct {
	label     string
	checked   bool
	listeners widget.Listeners[func(bool)]
}

func NewToggle(label string) *Toggle { return &Toggle{label: label} }

func (c *Toggle) Label() string { return c.label }

func (c *Toggle) SetChecked(checked bool) {
	if checked == c.checked {
		return
	}

	c.checked = checked
	c.listeners.Each(func(fn func(bool)) { fn(checked) })
}

func (c *Toggle) Checked() bool { return c.checked }

func (c *Toggle) OnCheckedChanged(fn func(checked bool)) widget.Disposer {
	return c.listeners.Add(fn)
}

func (c *Toggle) Focus() tea.Cmd { return nil }

func (c *Toggle) Blur() {}

func (c *Toggle) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case " ", "enter", "x":
			c.SetChecked(!c.checked)
		}
	}

	return nil
}

func (c *Toggle) View(bool) string {
	if c.checked {
		return filledStyle.Render("[x]")
	}

	return "[ ]"
}

const barWidth = 20

// Slider is an integer range moved with the arrow keys. It implements
// widget.Slider.
type Slider struct {
	label     string
	min, max  int
	step      int
	progress  int
	listeners widget.Listeners[func(int, bool)]
}

// NewSlider returns a slider over [lo, hi] moving by step per key press.
func NewSlider(label string, lo, hi, step int) *Slider {
	if hi < lo {
		lo, hi = hi, lo
	}

	return &Slider{label: label, min: lo, max: hi, step: max(step, 1), progress: lo}
}

func (s *Slider) Label() string { return s.label }

// SetProgress moves the slider, clamping to its range.
func (s *Slider) SetProgress(progress int) { s.set(progress, false) }

func (s *Slider) Progress() int { return s.progress }

func (s *Slider) OnProgressChanged(fn func(progress int, fromUser bool)) widget.Disposer {
	return s.listeners.Add(fn)
}

func (s *Slider) Focus() tea.Cmd { return nil }

func (s *Slider) Blur() {}

func (s *Slider) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "left", "h", "-":
			s.set(s.progress-s.step, true)
		case "right", "l", "+":
			s.set(s.progress+s.step, true)
		case "home":
			s.set(s.min, true)
		case "end":
			s.set(s.max, true)
		}
	}

	return nil
}

func (s *Slider) View(bool) string {
	filled := 0
	if span := s.max - s.min; span > 0 {
		filled = (s.progress - s.min) * barWidth / span
	}

	return filledStyle.Render(strings.Repeat("█", filled)) +
		strings.Repeat("░", barWidth-filled) +
		fmt.Sprintf(" %d", s.progress)
}

func (s *Slider) set(progress int, fromUser bool) {
	progress = utils.Clamp(s.min, progress, s.max)
	if progress == s.progress {
		return
	}

	s.progress = progress
	s.listeners.Each(func(fn func(int, bool)) { fn(progress, fromUser) })
}

// Stars is a rating shown in half stars. Keys move it to the next half star;
// SetRating keeps the value it is given. It implements widget.Rating.
type Stars struct {
	label     string
	count     int
	rating    float32
	listeners widget.Listeners[func(float32, bool)]
}

// NewStars returns a rating of up to count stars.
func NewStars(label string, count int) *Stars {
	return &Stars{label: label, count: max(count, 1)}
}

func (r *Stars) Label() string { return r.label }

// SetRating sets the rating, clamped to the number of stars.
func (r *Stars) SetRating(rating float32) { r.set(rating, false) }

func (r *Stars) Rating() float32 { return r.rating }

func (r *Stars) OnRatingChanged(fn func(rating float32, fromUser bool)) widget.Disposer {
	return r.listeners.Add(fn)
}

func (r *Stars) Focus() tea.Cmd { return nil }

func (r *Stars) Blur() {}

func (r *Stars) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "left", "h", "-":
			r.set(float32(math.Ceil(float64(r.rating)*2-1)/2), true)
		case "right", "l", "+":
			r.set(float32(math.Floor(float64(r.rating)*2+1)/2), true)
		}
	}

	return nil
}

func (r *Stars) View(bool) string {
	var b strings.Builder

	for i := range r.count {
		switch rest := r.rating - float32(i); {
		case rest >= 1:
			b.WriteString(filledStyle.Render("★"))
		case rest >= 0.5:
			b.WriteString(filledStyle.Render("⯪"))
		default:
			b.WriteString("☆")
		}
	}

	fmt.Fprintf(&b, " %.1f", r.rating)

	return b.String()
}

func (r *Stars) set(rating float32, fromUser bool) {
	if math.IsNaN(float64(rating)) {
		return
	}

	rating = utils.Clamp(0, rating, float32(r.count))
	if rating == r.rating {
		return
	}

	r.rating = rating
	r.listeners.Each(func(fn func(float32, bool)) { fn(rating, fromUser) })
}

var (
	_ widget.TextInput = (*TextField)(nil)
	_ widget.Checkable = (*Toggle)(nil)
	_ widget.Slider    = (*Slider)(nil)
	_ widget.Rating    = (*Stars)(nil)
)
