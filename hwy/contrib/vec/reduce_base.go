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

// Package vec provides reduction kernels over dense vectors: horizontal
// max, min and sum of one vector, lane-wise max and min of two vectors,
// batched reductions over many vectors of the same length, and column-wise
// (vertical) reductions of a row-major matrix.
//
// Like the compare kernels, these trust their caller: a must hold at least
// dims elements and nothing is validated unless the module is built with
// -tags vkerndebug. The guard package offers checked entry points.
package vec

//go:generate go run ../../../cmd/kernelgen vec --output reduce.gen.go

import "github.com/ajroetker/go-vkern/hwy"

// sumBlock is the number of independent accumulators BaseSum folds into.
const sumBlock = 8

// BaseMax returns the maximum element of a[:dims].
//
//	acc = Lowest(T)
//	for i in 0..dims:
//	    if a[i] > acc: acc = a[i]
//	return acc
//
// The running maximum starts at -Inf for floats and at the minimum value for
// integers, and is replaced only when an element compares greater. Since any
// comparison with NaN is false, NaN elements are ignored: [1, NaN, 3] gives 3
// and an all-NaN vector gives -Inf. On ties the first element wins, so
// [-0, +0] gives -0.
//
// With dims == 0 the seed is returned (-Inf, or the integer minimum).
//
// Example:
//
//	BaseMax(3, []float32{1, 5, 3})  // 5
func BaseMax[T hwy.Lanes](dims int, a []T) T {
	if hwy.DebugChecks {
		hwy.AssertLen("vec.Max", "a", len(a), dims)
	}

	acc := hwy.Lowest[T]()
	for _, x := range a[:dims] {
		if x > acc {
			acc = x
		}
	}
	return acc
}

// BaseMin returns the minimum element of a[:dims].
//
// It mirrors BaseMax: the running minimum starts at +Inf for floats and the
// maximum value for integers, NaN elements are ignored, ties keep the first
// element, and dims == 0 returns the seed.
func BaseMin[T hwy.Lanes](dims int, a []T) T {
	if hwy.DebugChecks {
		hwy.AssertLen("vec.Min", "a", len(a), dims)
	}

	acc := hwy.Highest[T]()
	for _, x := range a[:dims] {
		if x < acc {
			acc = x
		}
	}
	return acc
}

// BaseSum returns the sum of a[:dims].
//
// Elements are folded into eight independent accumulators, element i going
// to accumulator i%8, over the largest multiple of eight. The accumulators
// are then combined pairwise and the remaining tail elements, summed in
// order, are added last:
//
//	tail + (((acc0+acc1) + (acc2+acc3)) + ((acc4+acc5) + (acc6+acc7)))
//
// The order only depends on dims, so the result is deterministic, but it is
// not the left-to-right sum and may round differently. NaN propagates and
// integer sums wrap on overflow. Returns 0 when dims == 0.
func BaseSum[T hwy.Lanes](dims int, a []T) T {
	if hwy.DebugChecks {
		hwy.AssertLen("vec.Sum", "a", len(a), dims)
	}

	a = a[:dims]
	var acc [sumBlock]T

	i := 0
	for ; i+sumBlock <= dims; i += sumBlock {
		blk := a[i : i+sumBlock : i+sumBlock]
		acc[0] += blk[0]
		acc[1] += blk[1]
		acc[2] += blk[2]
		acc[3] += blk[3]
		acc[4] += blk[4]
		acc[5] += blk[5]
		acc[6] += blk[6]
		acc[7] += blk[7]
	}

	var tail T
	for ; i < dims; i++ {
		tail += a[i]
	}

	return tail + rollup(acc)
}

func rollup[T hwy.Lanes](acc [sumBlock]T) T {
	return ((acc[0] + acc[1]) + (acc[2] + acc[3])) + ((acc[4] + acc[5]) + (acc[6] + acc[7]))
}

// BaseMaxVector sets out[i] to the larger of a[i] and b[i] for i in [0, dims).
//
// NaN follows the BaseMax policy: a NaN lane yields the other operand and only
// two NaN lanes yield NaN. On ties a[i] is kept.
//
// Safety: a, b and out must hold at least dims elements; out may be a or b.
func BaseMaxVector[T hwy.Lanes](dims int, a, b, out []T) {
	if hwy.DebugChecks {
		hwy.AssertLen("vec.MaxVector", "a", len(a), dims)
		hwy.AssertLen("vec.MaxVector", "b", len(b), dims)
		hwy.AssertLen("vec.MaxVector", "out", len(out), dims)
	}

	a = a[:dims]
	b = b[:dims]
	out = out[:dims]
	for i, x := range a {
		out[i] = hwy.MaxNum(x, b[i])
	}
}

// BaseMinVector sets out[i] to the smaller of a[i] and b[i] for i in [0, dims),
// with the same NaN and tie rules as BaseMaxVector.
func BaseMinVector[T hwy.Lanes](dims int, a, b, out []T) {
	if hwy.DebugChecks {
		hwy.AssertLen("vec.MinVector", "a", len(a), dims)
		hwy.AssertLen("vec.MinVector", "b", len(b), dims)
		hwy.AssertLen("vec.MinVector", "out", len(out), dims)
	}

	a = a[:dims]
	b = b[:dims]
	out = out[:dims]
	for i, x := range a {
		out[i] = hwy.MinNum(x, b[i])
	}
}
