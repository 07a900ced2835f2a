package declare_test

import (
	"reflect"
	"testing"

	"model-binder/declare"
	"model-binder/meta"
	"model-binder/widget"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Settings struct {
	Volume int    `bind:"volumeSlider"`
	Theme  string `bind:"themeInput"`
	Token  string
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	f, err := declare.Parse([]byte(`
models:
  - type: declare_test.Settings
    fields:
      Volume: [volumeSlider2, "#4"]
    ignore: [Theme]
  - type: model-binder/declare_test.Settings
    fields:
      Token: tokenInput
`))
	require.NoError(t, err)

	md, err := meta.NewCache(f.Source()).Get(reflect.TypeFor[Settings]())
	require.NoError(t, err)

	volume, _ := md.Field("Volume")
	assert.Equal(t, []widget.ViewID{widget.ByName("volumeSlider2"), widget.ByHandle(4)}, volume.Targets)

	theme, _ := md.Field("Theme")
	assert.True(t, theme.Ignored, "file overrides the tag")

	token, _ := md.Field("Token")
	assert.Equal(t, []widget.ViewID{widget.ByName("tokenInput")}, token.Targets, "import path form matches")
}

func TestFileSource_Snapshot(t *testing.T) {
	t.Parallel()

	f := &declare.File{}
	f.Model("declare_test.Settings").Ignore = []string{"Volume"}

	src := f.Source()
	f.Models = nil

	decl, ok := src.Declaration(reflect.TypeFor[Settings](), "Volume")
	require.True(t, ok)
	assert.True(t, decl.Ignored)

	_, ok = src.Declaration(reflect.TypeFor[Settings](), "Theme")
	assert.False(t, ok, "silent for undeclared fields")
}

func TestTypeNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"model-binder/declare_test.Settings", "declare_test.Settings"},
		declare.TypeNames(reflect.TypeFor[Settings]()),
	)
	assert.Equal(t, []string{"int"}, declare.TypeNames(reflect.TypeFor[int]()))
	assert.Equal(t, []string{"[]string"}, declare.TypeNames(reflect.TypeFor[[]string]()))
}
