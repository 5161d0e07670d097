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
	"github.com/ajroetker/go-vkern/hwy"
	"github.com/ajroetker/go-vkern/hwy/contrib/workerpool"
)

// parallelMinRegisters is the smallest amount of work, in SIMD registers
// worth of elements, handed to one worker by the ParallelBatch functions.
const parallelMinRegisters = 512

// BaseBatchMax reduces count contiguous vectors of length dims to their
// maxima.
//
//	for i in 0..count:
//	    out[i] = BaseMax(dims, data[i*dims:])
//
// Parameters:
//   - data: count*dims elements, vector i at data[i*dims : (i+1)*dims]
//   - count: number of vectors
//   - dims: length of each vector
//   - out: at least count elements
//
// Each result follows BaseMax, including its NaN policy and its seed for
// dims == 0.
//
// Example:
//
//	data := []float32{1, 5, 3, 9, -2, 0}  // 2 vectors of dims=3
//	out := make([]float32, 2)
//	BaseBatchMax(data, 2, 3, out)  // [5, 9]
func BaseBatchMax[T hwy.Lanes](data []T, count, dims int, out []T) {
	batchReduce(data, count, dims, out, BaseMax[T])
}

// BaseBatchMin is BaseBatchMax with BaseMin as the per-vector reduction.
func BaseBatchMin[T hwy.Lanes](data []T, count, dims int, out []T) {
	batchReduce(data, count, dims, out, BaseMin[T])
}

// BaseBatchSum is BaseBatchMax with BaseSum as the per-vector reduction.
func BaseBatchSum[T hwy.Lanes](data []T, count, dims int, out []T) {
	batchReduce(data, count, dims, out, BaseSum[T])
}

// ParallelBatchMax is BaseBatchMax spread over the workers of pool.
//
// Every worker reduces a disjoint range of vectors and writes a disjoint range
// of out, so the result is identical to BaseBatchMax. Batches smaller than a
// few hundred registers of data run on the calling goroutine, as does
// everything when pool is nil or closed.
func ParallelBatchMax[T hwy.Lanes](pool *workerpool.Pool, data []T, count, dims int, out []T) {
	parallelBatch(pool, data, count, dims, out, BaseMax[T])
}

// ParallelBatchMin is BaseBatchMin spread over the workers of pool.
func ParallelBatchMin[T hwy.Lanes](pool *workerpool.Pool, data []T, count, dims int, out []T) {
	parallelBatch(pool, data, count, dims, out, BaseMin[T])
}

// ParallelBatchSum is BaseBatchSum spread over the workers of pool.
func ParallelBatchSum[T hwy.Lanes](pool *workerpool.Pool, data []T, count, dims int, out []T) {
	parallelBatch(pool, data, count, dims, out, BaseSum[T])
}

func batchReduce[T hwy.Lanes](data []T, count, dims int, out []T, reduce func(int, []T) T) {
	if hwy.DebugChecks {
		if count < 0 {
			panic("vec: negative batch count")
		}
		hwy.AssertLen("vec.Batch", "data", len(data), count*dims)
		hwy.AssertLen("vec.Batch", "out", len(out), count)
	}

	out = out[:count]
	for i := range out {
		out[i] = reduce(dims, data[i*dims:])
	}
}

// batchGrain returns the minimum number of vectors per worker.
func batchGrain[T hwy.Lanes](dims int) int {
	minElems := hwy.MaxLanes[T]() * parallelMinRegisters
	return max(1, minElems/max(dims, 1))
}

func parallelBatch[T hwy.Lanes](pool *workerpool.Pool, data []T, count, dims int, out []T, reduce func(int, []T) T) {
	if count <= 0 {
		return
	}
	pool.ParallelFor(count, batchGrain[T](dims), func(start, end int) {
		batchReduce(data[start*dims:end*dims], end-start, dims, out[start:end], reduce)
	})
}
