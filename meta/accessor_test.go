package meta_test

import (
	"reflect"
	"testing"

	"model-binder/meta"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descriptor(t *testing.T, name string) *meta.FieldDescriptor {
	t.Helper()

	md, err := meta.NewCache().Get(reflect.TypeFor[Profile]())
	require.NoError(t, err)

	f, ok := md.Field(name)
	require.True(t, ok, "field %s", name)

	return f
}

func TestAccessor_GetterAndSetter(t *testing.T) {
	t.Parallel()

	p := &Profile{name: "Ada"}
	model := reflect.ValueOf(p).Elem()
	f := descriptor(t, "name")

	v, err := f.Get(model)
	require.NoError(t, err)
	assert.Equal(t, "Ada", v.Interface())

	require.NoError(t, f.Set(model, reflect.ValueOf("Grace")))
	assert.Equal(t, "Grace", p.name)
	assert.Equal(t, 1, p.calls, "setter used instead of direct write")
	assert.Equal(t, reflect.TypeFor[string](), f.SetterType())
}

func TestAccessor_DirectUnexported(t *testing.T) {
	t.Parallel()

	p := &Profile{}
	p.id = 3
	model := reflect.ValueOf(p).Elem()
	f := descriptor(t, "id")

	v, err := f.Get(model)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Interface())

	require.NoError(t, f.Set(model, reflect.ValueOf(9)))
	assert.Equal(t, 9, p.id)
}

func TestAccessor_SetterError(t *testing.T) {
	t.Parallel()

	p := &Profile{Age: 30}
	model := reflect.ValueOf(p).Elem()
	f := descriptor(t, "Age")

	err := f.Set(model, reflect.ValueOf(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, meta.ErrAccessor)
	assert.Contains(t, err.Error(), "age must not be negative")
	assert.Equal(t, 30, p.Age)
}

func TestAccessor_ZeroAndConversion(t *testing.T) {
	t.Parallel()

	type Name string

	p := &Profile{Secret: "s"}
	model := reflect.ValueOf(p).Elem()

	secret := descriptor(t, "Secret")
	require.NoError(t, secret.Set(model, reflect.Value{}))
	assert.Equal(t, "", p.Secret)

	require.NoError(t, secret.Set(model, reflect.ValueOf(Name("converted"))))
	assert.Equal(t, "converted", p.Secret)

	age := descriptor(t, "Age")
	err := age.Set(model, reflect.ValueOf("12"))
	assert.ErrorIs(t, err, meta.ErrAccessor, "string is never converted to int")
}

func TestAccessor_PanicsBecomeErrors(t *testing.T) {
	t.Parallel()

	f := descriptor(t, "name")

	// A non-addressable model cannot reach pointer-receiver methods.
	_, err := f.Get(reflect.ValueOf(Profile{}))
	assert.ErrorIs(t, err, meta.ErrAccessor)
}

func TestFindGetterAndSetter(t *testing.T) {
	t.Parallel()

	md, err := meta.NewCache().Get(reflect.TypeFor[Profile]())
	require.NoError(t, err)

	assert.Nil(t, meta.FindGetter(md.Methods, "missing", reflect.TypeFor[int]()))
	assert.Nil(t, meta.FindSetter(md.Methods, "missing"))

	// Name() returns string, so it is not a getter for an int field.
	assert.Nil(t, meta.FindGetter(md.Methods, "name", reflect.TypeFor[int]()))

	g := meta.FindGetter(md.Methods, "active", reflect.TypeFor[bool]())
	require.NotNil(t, g)
	assert.Equal(t, "IsActive", g.Name)
}
