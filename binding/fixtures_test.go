package binding_test

import (
	"errors"
	"time"

	"model-binder/widget"
	"model-binder/widget/widgettest"
)

type Address struct {
	Street string `bind:"street"`
	Zip    *int   `bind:"zip"`
}

type Person struct {
	Name   string    `bind:"name"`
	Age    int       `bind:"age,ageSlider"`
	Nick   *string   `bind:"nick"`
	Score  *int      `bind:"score"`
	Active bool      `bind:"active"`
	Level  uint8     `bind:"level"`
	Stars  float64   `bind:"stars"`
	Joined time.Time `bind:"joined"`
	Secret string    `bind:"-"`
	Home   Address
	Work   *Address
	Spouse *Person
	Tags   []string
	note   string `bind:"note"`
}

func (p *Person) Note() string { return "note: " + p.note }

func (p *Person) SetNote(note string) error {
	if note == "forbidden" {
		return errors.New("note is read-only")
	}

	p.note = note

	return nil
}

var resources = widget.ResourceMap{
	"name":      1,
	"age":       2,
	"ageSlider": 3,
	"nick":      4,
	"score":     5,
	"active":    6,
	"level":     7,
	"stars":     8,
	"street":    9,
	"zip":       10,
	"note":      11,
	"joined":    12,
}

// form is a layout with one view per declared Person field.
type form struct {
	*widgettest.Layout

	name, age, nick, score, street, zip, note, joined *widgettest.Text
	ageSlider, level                                  *widgettest.SeekBar
	active                                            *widgettest.Checkbox
	stars                                             *widgettest.RatingBar
}

func newForm() *form {
	f := &form{
		Layout:    widgettest.NewLayout(),
		name:      widgettest.NewText(),
		age:       widgettest.NewText(),
		nick:      widgettest.NewText(),
		score:     widgettest.NewText(),
		street:    widgettest.NewText(),
		zip:       widgettest.NewText(),
		note:      widgettest.NewText(),
		joined:    widgettest.NewText(),
		ageSlider: widgettest.NewSeekBar(),
		level:     widgettest.NewSeekBar(),
		active:    widgettest.NewCheckbox(),
		stars:     widgettest.NewRatingBar(),
	}

	f.Add(1, f.name).
		Add(2, f.age).
		Add(3, f.ageSlider).
		Add(4, f.nick).
		Add(5, f.score).
		Add(6, f.active).
		Add(7, f.level).
		Add(8, f.stars).
		Add(9, f.street).
		Add(10, f.zip).
		Add(11, f.note).
		Add(12, f.joined)

	return f
}

func ptr[T any](v T) *T { return &v }
