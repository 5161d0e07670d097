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
	"github.com/stretchr/testify/require"
)

var (
	nan32 = float32(math.NaN())
	inf32 = float32(math.Inf(1))
	nan64 = math.NaN()
	inf64 = math.Inf(1)
)

// Helper functions to generate test vectors
func makeVector32(size int, gen func(int) float32) []float32 {
	v := make([]float32, size)
	for i := range v {
		v[i] = gen(i)
	}
	return v
}

func randomVector64(rng *rand.Rand, size int) []float64 {
	v := make([]float64, size)
	for i := range v {
		v[i] = rng.NormFloat64() * 1e3
	}
	return v
}

func TestBaseMax(t *testing.T) {
	tests := []struct {
		name string
		v    []float32
		want float32
	}{
		{"single", []float32{3}, 3},
		{"basic", []float32{1, 5, 3}, 5},
		{"max first", []float32{9, 1, 2}, 9},
		{"max last", []float32{1, 2, 9}, 9},
		{"all negative", []float32{-7, -3, -5}, -3},
		{"positive inf", []float32{1, inf32, 3}, inf32},
		{"only negative inf", []float32{-inf32, -inf32}, -inf32},

		// NaN is ignored wherever it appears.
		{"nan middle", []float32{1, nan32, 3}, 3},
		{"nan first", []float32{nan32, 1}, 1},
		{"nan last", []float32{2, 1, nan32}, 2},
		{"nan around negative", []float32{nan32, -4, nan32}, -4},

		// Tail handling is irrelevant for a single pass, but check lengths
		// around common register widths anyway.
		{"len 7", makeVector32(7, func(i int) float32 { return float32(i) }), 6},
		{"len 8", makeVector32(8, func(i int) float32 { return float32(i) }), 7},
		{"len 9", makeVector32(9, func(i int) float32 { return float32(-i) }), 0},
		{"len 33", makeVector32(33, func(i int) float32 { return float32(i % 5) }), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseMax(len(tt.v), tt.v))
			assert.Equal(t, tt.want, MaxFloat32(len(tt.v), tt.v))
		})
	}
}

func TestBaseMaxNaNPolicy(t *testing.T) {
	t.Run("all nan gives seed", func(t *testing.T) {
		got := BaseMax(3, []float64{nan64, nan64, nan64})
		assert.True(t, math.IsInf(got, -1), "got %v, want -Inf", got)
	})

	t.Run("empty gives seed", func(t *testing.T) {
		assert.True(t, math.IsInf(BaseMax(0, []float64{}), -1))
		assert.True(t, math.IsInf(float64(BaseMax[float32](0, nil)), -1))
		assert.Equal(t, int32(math.MinInt32), BaseMax[int32](0, nil))
		assert.Equal(t, uint8(0), BaseMax[uint8](0, nil))
	})

	t.Run("nan position does not matter", func(t *testing.T) {
		base := []float64{4, -1, 7, 2}
		for pos := 0; pos <= len(base); pos++ {
			v := append(append(append([]float64{}, base[:pos]...), nan64), base[pos:]...)
			assert.Equal(t, 7.0, BaseMax(len(v), v), "nan at %d", pos)
		}
	})
}

func TestBaseMaxSignedZero(t *testing.T) {
	negZero := math.Copysign(0, -1)

	got := BaseMax(2, []float64{negZero, 0})
	assert.True(t, math.Signbit(got), "first zero should win, got +0")

	got = BaseMax(2, []float64{0, negZero})
	assert.False(t, math.Signbit(got), "first zero should win, got -0")
}

func TestBaseMaxIntegers(t *testing.T) {
	assert.Equal(t, int32(-3), BaseMax(1, []int32{-3}))
	assert.Equal(t, int32(-3), MaxInt32(1, []int32{-3}))
	assert.Equal(t, int8(math.MinInt8), BaseMax(2, []int8{math.MinInt8, math.MinInt8}))
	assert.Equal(t, int64(math.MaxInt64), BaseMax(3, []int64{0, math.MaxInt64, -1}))
	assert.Equal(t, uint16(65535), BaseMax(3, []uint16{1, 65535, 7}))
	assert.Equal(t, uint64(0), MaxUint64(2, []uint64{0, 0}))
}

type celsius float32

func TestBaseMaxNamedType(t *testing.T) {
	temps := []celsius{-40, 12.5, -3}
	assert.Equal(t, celsius(12.5), BaseMax(len(temps), temps))
	assert.True(t, math.IsInf(float64(BaseMax[celsius](0, nil)), -1))
	assert.True(t, math.IsInf(float64(BaseMin[celsius](0, nil)), 1))
}

func TestBaseMaxUsesOnlyDims(t *testing.T) {
	v := []float32{1, 2, 3, 100}
	assert.Equal(t, float32(3), BaseMax(3, v))
}

// Every element is bounded by the maximum and the maximum is an element.
func TestBaseMaxUpperBound(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for size := 1; size <= 100; size++ {
		v := randomVector64(rng, size)
		got := BaseMax(size, v)

		found := false
		for _, x := range v {
			require.GreaterOrEqual(t, got, x)
			found = found || x == got
		}
		require.True(t, found, "size %d: max %v is not an element", size, got)
	}
}

func TestBaseMin(t *testing.T) {
	tests := []struct {
		name string
		v    []float64
		want float64
	}{
		{"single", []float64{3}, 3},
		{"basic", []float64{3, 1, 4, 1, 5}, 1},
		{"negative inf", []float64{1, -inf64}, -inf64},
		{"nan ignored", []float64{5, nan64, 2}, 2},
		{"nan first", []float64{nan64, 8}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseMin(len(tt.v), tt.v))
			assert.Equal(t, tt.want, MinFloat64(len(tt.v), tt.v))
		})
	}

	assert.True(t, math.IsInf(BaseMin(1, []float64{nan64}), 1))
	assert.Equal(t, uint32(math.MaxUint32), BaseMin[uint32](0, nil))
	assert.Equal(t, int16(-9), MinInt16(3, []int16{4, -9, 0}))

	negZero := math.Copysign(0, -1)
	assert.False(t, math.Signbit(BaseMin(2, []float64{0, negZero})))
}

func TestBaseMinUpperBound(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for size := 1; size <= 100; size++ {
		v := randomVector64(rng, size)
		got := BaseMin(size, v)
		for _, x := range v {
			require.LessOrEqual(t, got, x)
		}
	}
}

// sumReference spells out the accumulation order BaseSum documents.
func sumReference(v []float64) float64 {
	var acc [8]float64
	full := len(v) / 8 * 8
	for i := 0; i < full; i++ {
		acc[i%8] += v[i]
	}
	var tail float64
	for _, x := range v[full:] {
		tail += x
	}
	return tail + (((acc[0] + acc[1]) + (acc[2] + acc[3])) + ((acc[4] + acc[5]) + (acc[6] + acc[7])))
}

func TestBaseSum(t *testing.T) {
	assert.Equal(t, 0.0, BaseSum[float64](0, nil))
	assert.Equal(t, float32(10), SumFloat32(4, []float32{1, 2, 3, 4}))

	ints := make([]int64, 1000)
	for i := range ints {
		ints[i] = int64(i)
	}
	assert.Equal(t, int64(999*1000/2), BaseSum(len(ints), ints))
	assert.Equal(t, int64(45), SumInt64(10, ints))

	// Integer sums wrap.
	assert.Equal(t, uint8(4), SumUint8(2, []uint8{250, 10}))

	assert.True(t, math.IsNaN(BaseSum(3, []float64{1, nan64, 2})))
	assert.True(t, math.IsNaN(BaseSum(2, []float64{inf64, -inf64})))
}

func TestBaseSumOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for size := 0; size <= 70; size++ {
		v := randomVector64(rng, size)
		want := sumReference(v)
		got := BaseSum(size, v)
		require.Equal(t, math.Float64bits(want), math.Float64bits(got), "size %d", size)

		// Same input, same bits.
		require.Equal(t, math.Float64bits(got), math.Float64bits(BaseSum(size, v)))
	}
}

func TestBaseMaxVector(t *testing.T) {
	a := []float32{1, nan32, 5, nan32, -1}
	b := []float32{2, 3, nan32, nan32, -1}
	out := make([]float32, len(a))

	BaseMaxVector(len(a), a, b, out)
	want := []float32{2, 3, 5, nan32, -1}
	if diff := cmp.Diff(want, out, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("BaseMaxVector() mismatch (-want +got):\n%s", diff)
	}

	BaseMinVector(len(a), a, b, out)
	want = []float32{1, 3, 5, nan32, -1}
	if diff := cmp.Diff(want, out, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("BaseMinVector() mismatch (-want +got):\n%s", diff)
	}
}

func TestMaxVectorInPlace(t *testing.T) {
	a := []int32{1, 9, -4, 7}
	b := []int32{3, 2, -5, 7}

	MaxVectorInt32(len(a), a, b, a)
	assert.Equal(t, []int32{3, 9, -4, 7}, a)

	MinVectorInt32(len(b), a, b, b)
	assert.Equal(t, []int32{3, 2, -5, 7}, b)
}

func BenchmarkMax(b *testing.B) {
	for _, size := range []int{16, 256, 4096, 65536} {
		data := makeVector32(size, func(i int) float32 { return float32(i%977) - 400 })
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			b.SetBytes(int64(size * 4))
			for range b.N {
				_ = MaxFloat32(size, data)
			}
		})
	}
}

func BenchmarkSum(b *testing.B) {
	for _, size := range []int{16, 256, 4096, 65536} {
		data := makeVector32(size, func(i int) float32 { return float32(i % 13) })
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			b.SetBytes(int64(size * 4))
			for range b.N {
				_ = SumFloat32(size, data)
			}
		})
	}
}
