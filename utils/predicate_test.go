package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(0, 0, 10))
	assert.True(t, IsInRange(0, 10, 10))
	assert.False(t, IsInRange(0, 11, 10))
	assert.False(t, IsInRange(0.5, 0.25, 5))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(0, -3, 100))
	assert.Equal(t, 100, Clamp(0, 250, 100))
	assert.Equal(t, 42, Clamp(0, 42, 100))
	assert.InDelta(t, 5.0, Clamp[float32](0, 7.5, 5), 0)
}
