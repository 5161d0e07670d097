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
	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-vkern/hwy/contrib/workerpool"
)

func TestBaseBatchMax(t *testing.T) {
	data := []float32{1, 5, 3, 9, -2, 0, nan32, -7, nan32}
	out := make([]float32, 3)

	BaseBatchMax(data, 3, 3, out)
	assert.Equal(t, []float32{5, 9, -7}, out)

	BaseBatchMin(data, 3, 3, out)
	assert.Equal(t, []float32{1, -2, -7}, out)

	BaseBatchSum(data[:6], 2, 3, out[:2])
	assert.Equal(t, []float32{9, 7}, out[:2])
}

func TestBaseBatchZeroDims(t *testing.T) {
	out := []int16{1, 2, 3}
	BaseBatchMax[int16](nil, 3, 0, out)
	assert.Equal(t, []int16{math.MinInt16, math.MinInt16, math.MinInt16}, out)
}

func TestBaseBatchZeroCount(t *testing.T) {
	out := []float64{42}
	BaseBatchSum[float64](nil, 0, 8, out)
	assert.Equal(t, []float64{42}, out)
}

func TestBaseBatchMatchesSingle(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	const count, dims = 17, 13
	data := randomVector64(rng, count*dims)

	maxes := make([]float64, count)
	sums := make([]float64, count)
	BaseBatchMax(data, count, dims, maxes)
	BaseBatchSum(data, count, dims, sums)

	for i := range count {
		vec := data[i*dims : (i+1)*dims]
		assert.Equal(t, BaseMax(dims, vec), maxes[i], "vector %d", i)
		assert.Equal(t, math.Float64bits(BaseSum(dims, vec)), math.Float64bits(sums[i]), "vector %d", i)
	}
}

func TestParallelBatchMatchesSequential(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	rng := rand.New(rand.NewSource(5))
	for _, shape := range []struct{ count, dims int }{
		{1, 1},
		{3, 5},
		{1000, 3},
		{4096, 64},
		{64, 4096},
	} {
		t.Run(fmt.Sprintf("%dx%d", shape.count, shape.dims), func(t *testing.T) {
			data := randomVector64(rng, shape.count*shape.dims)
			type batchFn func([]float64, int, int, []float64)
			type parallelFn func(*workerpool.Pool, []float64, int, int, []float64)

			for _, k := range []struct {
				name string
				seq  batchFn
				par  parallelFn
			}{
				{"max", BaseBatchMax[float64], ParallelBatchMax[float64]},
				{"min", BaseBatchMin[float64], ParallelBatchMin[float64]},
				{"sum", BaseBatchSum[float64], ParallelBatchSum[float64]},
			} {
				want := make([]float64, shape.count)
				got := make([]float64, shape.count)
				k.seq(data, shape.count, shape.dims, want)
				k.par(pool, data, shape.count, shape.dims, got)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("%s mismatch (-seq +par):\n%s", k.name, diff)
				}
			}
		})
	}
}

func TestParallelBatchNilPool(t *testing.T) {
	data := []int32{4, 8, -1, -9}
	out := make([]int32, 2)
	ParallelBatchMax(nil, data, 2, 2, out)
	assert.Equal(t, []int32{8, -1}, out)
}

func TestBatchGrain(t *testing.T) {
	assert.GreaterOrEqual(t, batchGrain[float32](1<<20), 1)
	assert.GreaterOrEqual(t, batchGrain[float32](0), 1)
	assert.Greater(t, batchGrain[int8](1), batchGrain[int8](1000))
}

func BenchmarkBatchMax(b *testing.B) {
	const count, dims = 4096, 256
	data := makeVector32(count*dims, func(i int) float32 { return float32(i % 1013) })
	out := make([]float32, count)

	b.Run("sequential", func(b *testing.B) {
		b.SetBytes(int64(len(data) * 4))
		for range b.N {
			BaseBatchMax(data, count, dims, out)
		}
	})

	pool := workerpool.New(0)
	defer pool.Close()
	b.Run("parallel", func(b *testing.B) {
		b.SetBytes(int64(len(data) * 4))
		for range b.N {
			ParallelBatchMax(pool, data, count, dims, out)
		}
	})
}
