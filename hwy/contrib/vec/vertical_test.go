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


package vec

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

// columnReduce is the reference: a plain loop down each column.
func columnReduce(matrix []float64, count, dims int, seed float64, fold func(acc, x float64) float64) []float64 {
	out := make([]float64, dims)
	for j := 0; j < dims; j++ {
		acc := seed
		for i := 0; i < count; i++ {
			acc = fold(acc, matrix[i*dims+j])
		}
		out[j] = acc
	}
	return out
}

func TestBaseVerticalMatchesColumnLoop(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	shapes := []struct{ count, dims int }{
		{537, 25},
		{1, 1},
		{3, 8},
		{64, 17},
		{2, 129},
	}
	for _, s := range shapes {
		t.Run(fmt.Sprintf("%dx%d", s.count, s.dims), func(t *testing.T) {
			matrix := randomVector64(rng, s.count*s.dims)
			out := make([]float64, s.dims)

			BaseSumVertical(matrix, s.count, s.dims, out)
			want := columnReduce(matrix, s.count, s.dims, 0, func(acc, x float64) float64 { return acc + x })
			if diff := cmp.Diff(want, out); diff != "" {
				t.Errorf("SumVertical mismatch (-want +got):\n%s", diff)
			}

			BaseMaxVertical(matrix, s.count, s.dims, out)
			want = columnReduce(matrix, s.count, s.dims, math.Inf(-1), math.Max)
			if diff := cmp.Diff(want, out); diff != "" {
				t.Errorf("MaxVertical mismatch (-want +got):\n%s", diff)
			}

			BaseMinVertical(matrix, s.count, s.dims, out)
			want = columnReduce(matrix, s.count, s.dims, math.Inf(1), math.Min)
			if diff := cmp.Diff(want, out); diff != "" {
				t.Errorf("MinVertical mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBaseVerticalNaN(t *testing.T) {
	matrix := []float32{
		1, nan32, nan32,
		nan32, -4, nan32,
		3, 2, nan32,
	}
	out := make([]float32, 3)

	BaseMaxVertical(matrix, 3, 3, out)
	assert.Equal(t, []float32{3, 2, -inf32}, out)

	BaseMinVertical(matrix, 3, 3, out)
	assert.Equal(t, []float32{1, -4, inf32}, out)

	BaseSumVertical(matrix, 3, 3, out)
	for j, x := range out {
		assert.True(t, math.IsNaN(float64(x)), "column %d = %v", j, x)
	}
}

func TestBaseVerticalIntegers(t *testing.T) {
	matrix := []int8{
		100, -100, 5,
		100, -100, -7,
	}
	out := make([]int8, 3)

	BaseSumVertical(matrix, 2, 3, out)
	assert.Equal(t, []int8{-56, 56, -2}, out)

	BaseMaxVertical(matrix, 2, 3, out)
	assert.Equal(t, []int8{100, -100, 5}, out)

	BaseMinVertical(matrix, 2, 3, out)
	assert.Equal(t, []int8{100, -100, -7}, out)

	u := make([]uint16, 2)
	SumVerticalUint16([]uint16{1, 65535, 2, 1}, 2, 2, u)
	assert.Equal(t, []uint16{3, 0}, u)
}

func TestBaseVerticalZeroRows(t *testing.T) {
	out := []float64{7, 7, 7}

	BaseMaxVertical(nil, 0, 3, out)
	assert.Equal(t, []float64{-inf64, -inf64, -inf64}, out)

	BaseMinVertical(nil, 0, 3, out)
	assert.Equal(t, []float64{inf64, inf64, inf64}, out)

	BaseSumVertical(nil, 0, 3, out)
	assert.Equal(t, []float64{0, 0, 0}, out)
}

func TestBaseVerticalUsesOnlyDims(t *testing.T) {
	matrix := []int32{1, 2, 3, 4, 5, 6, 99, 99}
	out := []int32{-1, -1, -1, -1}

	MaxVerticalInt32(matrix, 3, 2, out)
	assert.Equal(t, []int32{5, 6, -1, -1}, out)
}

func TestBaseVerticalSingleRow(t *testing.T) {
	row := []float64{nan64, 2, -0.5}
	out := make([]float64, 3)

	BaseSumVertical(row, 1, 3, out)
	assert.True(t, cmp.Equal(row, out, cmpopts.EquateNaNs()))
}

func BenchmarkBaseSumVertical(b *testing.B) {
	for _, dims := range []int{25, 256, 1024} {
		const count = 537
		matrix := makeVector32(count*dims, func(i int) float32 { return float32(i%13) - 6 })
		out := make([]float32, dims)
		b.Run(fmt.Sprintf("%dx%d", count, dims), func(b *testing.B) {
			b.SetBytes(int64(count * dims * 4))
			for range b.N {
				BaseSumVertical(matrix, count, dims, out)
			}
		})
	}
}
