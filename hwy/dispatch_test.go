// Copyright 2025 go-vkern Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchLevel(t *testing.T) {
	assert.NotEqual(t, "unknown", CurrentName())
	assert.Contains(t, []int{16, 32, 64}, CurrentWidth())
	assert.Equal(t, "avx2", DispatchAVX2.String())
	assert.Equal(t, "unknown", DispatchLevel(42).String())
}

func TestMaxLanes(t *testing.T) {
	w := CurrentWidth()
	assert.Equal(t, w/4, MaxLanes[float32]())
	assert.Equal(t, w/8, MaxLanes[float64]())
	assert.Equal(t, w, MaxLanes[uint8]())
	assert.Equal(t, w/2, MaxLanes[int16]())
}

func TestAssertLen(t *testing.T) {
	assert.NotPanics(t, func() { AssertLen("op", "a", 4, 4) })
	assert.NotPanics(t, func() { AssertLen("op", "a", 0, 0) })
	assert.PanicsWithValue(t, "op: a has 2 elements, need 3", func() { AssertLen("op", "a", 2, 3) })
	assert.PanicsWithValue(t, "op: dims must be non-negative, got -1", func() { AssertLen("op", "a", 2, -1) })
}
