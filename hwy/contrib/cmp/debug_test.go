//go:build vkerndebug

package cmp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-vkern/hwy"
)

func TestDebugChecksEnabled(t *testing.T) {
	assert.True(t, hwy.DebugChecks)
}

func TestDebugCmpValue(t *testing.T) {
	a := []float32{1, 2, 3}

	assert.PanicsWithValue(t, "cmp.CmpValue: out has 2 elements, need 3", func() {
		BaseCmpValue[float32, GreaterThan[float32]](3, a, 0, make([]float32, 2))
	})
	assert.PanicsWithValue(t, "cmp.CmpValue: a has 3 elements, need 4", func() {
		GreaterThanValueFloat32(4, a, 0, make([]float32, 4))
	})
	assert.PanicsWithValue(t, "cmp.CmpValue: dims must be non-negative, got -1", func() {
		BaseCmpValue[float32, Equal[float32]](-1, a, 0, a)
	})
	assert.NotPanics(t, func() {
		BaseCmpValue[float32, LessThan[float32]](3, a, 2, a)
	})
}

func TestDebugCmpVector(t *testing.T) {
	assert.PanicsWithValue(t, "cmp.CmpVector: b has 1 elements, need 2", func() {
		NotEqualVectorInt16(2, []int16{1, 2}, []int16{1}, make([]int16, 2))
	})
	assert.PanicsWithValue(t, "cmp.CmpVector: out has 0 elements, need 2", func() {
		BaseCmpVector[uint8, Equal[uint8]](2, []uint8{1, 2}, []uint8{1, 2}, nil)
	})
}
