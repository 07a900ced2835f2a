package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"model-binder/utils"
	"model-binder/widget"
)

type item struct {
	handle  widget.Handle
	control Control
	group   *Group
}

// Group is a titled panel of controls and nested groups. It implements
// widget.Container, so a sub-model bound to the group's view id resolves
// its fields among the group's children.
type Group struct {
	title string
	items []item
}

// Add places c under h and returns the group for chaining.
func (g *Group) Add(h widget.Handle, c Control) *Group {
	g.items = append(g.items, item{handle: h, control: c})
	return g
}

// Panel adds a nested group under h.
func (g *Group) Panel(h widget.Handle, title string) *Group {
	sub := &Group{title: title}
	g.items = append(g.items, item{handle: h, group: sub})

	return sub
}

// FindViewByID searches direct children first, then nested groups in
// insertion order.
func (g *Group) FindViewByID(id widget.Handle) widget.View {
	for _, it := range g.items {
		if it.handle != id {
			continue
		}

		if it.group != nil {
			return it.group
		}

		return it.control
	}

	for _, it := range g.items {
		if it.group == nil {
			continue
		}

		if v := it.group.FindViewByID(id); !widget.IsNil(v) {
			return v
		}
	}

	return nil
}

func (g *Group) controls(dst []Control) []Control {
	for _, it := range g.items {
		if it.group != nil {
			dst = it.group.controls(dst)
		} else {
			dst = append(dst, it.control)
		}
	}

	return dst
}

// Form is the root of a terminal screen and its tea.Model. Tab and the
// arrow keys up and down move the focus; every other key goes to the
// focused control.
type Form struct {
	Group

	focus  int
	status string
	quit   bool
}

func NewForm(title string) *Form {
	return &Form{Group: Group{title: title}}
}

// SetStatus shows a message under the form until the next key press.
func (f *Form) SetStatus(status string) { f.status = status }

func (f *Form) Status() string { return f.status }

// Focused returns the focused control, or nil for an empty form.
func (f *Form) Focused() Control {
	all := f.controls(nil)
	if !utils.IsInRange(0, f.focus, len(all)-1) {
		return nil
	}

	return all[f.focus]
}

func (f *Form) Init() tea.Cmd {
	if c := f.Focused(); c != nil {
		return c.Focus()
	}

	return nil
}

func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if c := f.Focused(); c != nil {
			return f, c.Update(msg)
		}

		return f, nil
	}

	f.status = ""

	switch key.String() {
	case "ctrl+c", "esc":
		f.quit = true
		return f, tea.Quit
	case "tab", "down":
		return f, f.move(1)
	case "shift+tab", "up":
		return f, f.move(-1)
	}

	if c := f.Focused(); c != nil {
		return f, c.Update(msg)
	}

	return f, nil
}

func (f *Form) move(delta int) tea.Cmd {
	all := f.controls(nil)
	if len(all) == 0 {
		return nil
	}

	all[f.focus].Blur()
	f.focus = (f.focus + delta + len(all)) % len(all)

	return all[f.focus].Focus()
}

func (f *Form) View() string {
	if f.quit {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n\n")

	focused := f.Focused()
	f.render(&b, &f.Group, focused, "")

	b.WriteString("\n")
	if f.status != "" {
		b.WriteString(statusStyle.Render(f.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab/↑/↓ move • ←/→ adjust • space toggle • esc quit"))

	return b.String()
}

func (f *Form) render(b *strings.Builder, g *Group, focused Control, indent string) {
	for _, it := range g.items {
		if it.group != nil {
			b.WriteString("\n" + indent)
			b.WriteString(groupStyle.Render(it.group.title))
			b.WriteString("\n")
			f.render(b, it.group, focused, indent+"  ")
			continue
		}

		isFocused := it.control == focused

		label := labelStyle.Render(it.control.Label())
		if isFocused {
			label = selectedStyle.Render("> ") + label
		} else {
			label = "  " + label
		}

		b.WriteString(indent)
		b.WriteString(label)
		b.WriteString(it.control.View(isFocused))
		b.WriteString("\n")
	}
}

var (
	_ widget.Container = (*Group)(nil)
	_ widget.Container = (*Form)(nil)
	_ tea.Model        = (*Form)(nil)
)
