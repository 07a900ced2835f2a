package binding

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"model-binder/widget"
)

// mapLayout is a container whose type is not comparable.
type mapLayout map[widget.Handle]widget.View

func (l mapLayout) FindViewByID(id widget.Handle) widget.View { return l[id] }

func TestVisited_Enter(t *testing.T) {
	t.Parallel()

	type pair struct{ A, B struct{ N int } }

	var (
		v visited
		m pair
	)

	a := reflect.ValueOf(&m).Elem().Field(0)
	first, second := mapLayout{1: nil}, mapLayout{1: nil}

	assert.True(t, v.Enter(a, first))
	assert.False(t, v.Enter(a, first), "same model, same root")
	assert.True(t, v.Enter(a, second), "distinct roots of one non-comparable type")
	assert.True(t, v.Enter(reflect.ValueOf(&m).Elem().Field(1), first), "distinct model")
	assert.True(t, v.Enter(a, nil))
	assert.False(t, v.Enter(a, nil))
}
