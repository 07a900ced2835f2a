package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinding_UnbindOrder(t *testing.T) {
	t.Parallel()

	h := newBinding()

	var calls []int
	for i := range 3 {
		h.add(func() { calls = append(calls, i) })
	}

	assert.Equal(t, 3, h.Len())

	h.Unbind()
	h.Unbind()

	assert.Equal(t, []int{2, 1, 0}, calls, "most recent first, exactly once")
	assert.Zero(t, h.Len())
}
