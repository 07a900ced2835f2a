package binding_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-binder/binding"
	"model-binder/declare"
	"model-binder/meta"
	"model-binder/primitive"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MODELBIND_STRICT", "true")
	t.Setenv("MODELBIND_CATEGORIES", "number, bool")

	cfg, err := binding.ConfigFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, primitive.CategoryTextNumber|primitive.CategoryTextualBool, cfg.Categories)

	t.Setenv("MODELBIND_STRICT", "")
	t.Setenv("MODELBIND_CATEGORIES", "")

	cfg, err = binding.ConfigFromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.Strict)
	assert.Equal(t, primitive.CategoryAll, cfg.Categories)

	t.Setenv("MODELBIND_CATEGORIES", "colour")

	_, err = binding.ConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown text category "colour"`)
}

func TestConfig_Categories(t *testing.T) {
	t.Parallel()

	var writeErrs []error

	cfg := binding.DefaultConfig()
	cfg.Categories = primitive.CategoryTextNumber
	cfg.OnWriteError = func(err error) { writeErrs = append(writeErrs, err) }

	p := newPerson()
	f := newForm()

	_, err := binding.New(resources, binding.WithConfig(cfg)).Bind(p, f)
	require.NoError(t, err)

	f.age.Type("41")
	assert.Equal(t, 41, p.Age)

	f.joined.Type("2000-01-02T03:04:05Z")
	require.Len(t, writeErrs, 1)
	assert.ErrorIs(t, writeErrs[0], binding.ErrParse)
	assert.ErrorIs(t, writeErrs[0], primitive.ErrCategoryDisabled)
}

func TestWithSource(t *testing.T) {
	t.Parallel()

	file, err := declare.Parse([]byte(`
models:
  - type: binding_test.Person
    fields:
      Name: nick
    ignore: [Nick, Home]
`))
	require.NoError(t, err)

	p := newPerson()
	f := newForm()

	b := binding.New(resources, binding.WithSource(file.Source()))

	_, err = b.Bind(p, f)
	require.NoError(t, err)

	assert.Equal(t, "Ada", f.nick.Text(), "Name rebound to the nick view")
	assert.Empty(t, f.name.Text())
	assert.Empty(t, f.street.Text(), "ignored sub-models are not traversed")

	f.nick.Type("Grace")
	assert.Equal(t, "Grace", p.Name)
	assert.Equal(t, "countess", *p.Nick)
}

func TestWithCache(t *testing.T) {
	t.Parallel()

	cache := meta.NewCache()
	ignoreAll := meta.SourceFunc(func(reflect.Type, string) (meta.Declaration, bool) {
		return meta.Declaration{Ignored: true}, true
	})

	b1 := binding.New(resources, binding.WithCache(cache))
	b2 := binding.New(resources, binding.WithSource(ignoreAll), binding.WithCache(cache))
	assert.Same(t, b1.Cache(), b2.Cache())

	h, err := b1.Bind(newPerson(), newForm())
	require.NoError(t, err)

	n := cache.Len()
	assert.Positive(t, n)

	h2, err := b2.Bind(newPerson(), newForm())
	require.NoError(t, err)
	assert.Equal(t, n, cache.Len(), "metadata computed once")
	assert.Equal(t, h.Len(), h2.Len(), "sources are ignored with a shared cache")
}
