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

import "github.com/ajroetker/go-vkern/hwy"

// BaseMaxVertical reduces the columns of a row-major count×dims matrix to
// their maxima.
//
//	for j in 0..dims:
//	    out[j] = Lowest(T)
//	for i in 0..count:
//	    for j in 0..dims:
//	        if matrix[i*dims+j] > out[j]: out[j] = matrix[i*dims+j]
//
// Rows are streamed in order, so the matrix is read once front to back. The
// NaN policy and seed are those of BaseMax: NaN elements are ignored, an
// all-NaN column gives -Inf, and with count == 0 every out[j] is the seed.
//
// Safety: matrix must hold at least count*dims elements and out at least dims.
// out must not overlap matrix.
//
// Example:
//
//	m := []float32{1, 8, 3, 5, 2, 9}  // 3 rows of dims=2
//	out := make([]float32, 2)
//	BaseMaxVertical(m, 3, 2, out)  // [3, 9]
func BaseMaxVertical[T hwy.Lanes](matrix []T, count, dims int, out []T) {
	checkVertical("vec.MaxVertical", matrix, count, dims, out)

	out = out[:dims]
	for j := range out {
		out[j] = hwy.Lowest[T]()
	}
	for i := 0; i < count; i++ {
		row := matrix[i*dims : (i+1)*dims]
		for j, x := range row {
			if x > out[j] {
				out[j] = x
			}
		}
	}
}

// BaseMinVertical is the minimum counterpart of BaseMaxVertical, seeded at
// Highest(T).
func BaseMinVertical[T hwy.Lanes](matrix []T, count, dims int, out []T) {
	checkVertical("vec.MinVertical", matrix, count, dims, out)

	out = out[:dims]
	for j := range out {
		out[j] = hwy.Highest[T]()
	}
	for i := 0; i < count; i++ {
		row := matrix[i*dims : (i+1)*dims]
		for j, x := range row {
			if x < out[j] {
				out[j] = x
			}
		}
	}
}

// BaseSumVertical reduces the columns of a row-major count×dims matrix to
// their sums:
//
//	out[j] = matrix[j] + matrix[dims+j] + ... + matrix[(count-1)*dims+j]
//
// Each column is summed in row order, so the result matches a plain loop
// over the rows bit for bit. NaN propagates and integer sums wrap. With
// count == 0 every out[j] is 0.
func BaseSumVertical[T hwy.Lanes](matrix []T, count, dims int, out []T) {
	checkVertical("vec.SumVertical", matrix, count, dims, out)

	out = out[:dims]
	clear(out)
	for i := 0; i < count; i++ {
		row := matrix[i*dims : (i+1)*dims]
		for j, x := range row {
			out[j] += x
		}
	}
}

func checkVertical[T hwy.Lanes](op string, matrix []T, count, dims int, out []T) {
	if !hwy.DebugChecks {
		return
	}
	if count < 0 {
		panic(op + ": negative row count")
	}
	hwy.AssertLen(op, "out", len(out), dims)
	hwy.AssertLen(op, "matrix", len(matrix), count*dims)
}
