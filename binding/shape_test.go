package binding_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"model-binder/binding"
)

func TestDispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  reflect.Type
		want binding.ShapeEnum
	}{
		{reflect.TypeFor[int](), binding.ShapeLeaf},
		{reflect.TypeFor[*string](), binding.ShapeLeaf},
		{reflect.TypeFor[time.Time](), binding.ShapeLeaf},
		{reflect.TypeFor[Address](), binding.ShapeStruct},
		{reflect.TypeFor[*Address](), binding.ShapeStruct},
		{reflect.TypeFor[[]Address](), binding.ShapeCollection},
		{reflect.TypeFor[[3]int](), binding.ShapeCollection},
		{reflect.TypeFor[map[string]int](), binding.ShapeMap},
		{reflect.TypeFor[any](), binding.ShapeInterface},
		{reflect.TypeFor[func()](), binding.ShapeUnknown},
		{reflect.TypeFor[chan int](), binding.ShapeUnknown},
		{reflect.TypeFor[**Address](), binding.ShapeUnknown},
		{nil, binding.ShapeUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, binding.Dispatch(tt.typ), "%v", tt.typ)
	}

	assert.Equal(t, "Collection", binding.ShapeCollection.String())
	assert.Equal(t, "ShapeEnum(9)", binding.ShapeEnum(9).String())
}
