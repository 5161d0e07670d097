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

package guard

import (
	"unsafe"

	"github.com/ajroetker/go-vkern/hwy"
)

// ValidateElementwise checks the preconditions of a lane-wise kernel that
// reads dims elements from each input and writes dims elements to out.
// out may be exactly one of the inputs but must not partially overlap any.
func ValidateElementwise[T hwy.Lanes](kernel string, dims int, out []T, inputs ...[]T) error {
	if dims < 0 {
		return &ContractError{Kernel: kernel, Arg: "dims", Have: dims, Err: ErrNegativeDims}
	}
	for i, in := range inputs {
		if len(in) < dims {
			return &ContractError{Kernel: kernel, Arg: inputName(i), Have: len(in), Need: dims, Err: ErrShortInput}
		}
	}
	if len(out) < dims {
		return &ContractError{Kernel: kernel, Arg: "out", Have: len(out), Need: dims, Err: ErrShortOutput}
	}
	for i, in := range inputs {
		if overlaps(out, dims, in, dims, true) {
			return &ContractError{Kernel: kernel, Arg: "out/" + inputName(i), Err: ErrOverlap}
		}
	}
	return nil
}

// ValidateReduce checks the preconditions of a horizontal reduction. Empty
// vectors are rejected: the unchecked kernels return the seed value for
// dims == 0, which is rarely what a caller means.
func ValidateReduce[T hwy.Lanes](kernel string, dims int, a []T) error {
	if dims < 0 {
		return &ContractError{Kernel: kernel, Arg: "dims", Have: dims, Err: ErrNegativeDims}
	}
	if dims == 0 {
		return &ContractError{Kernel: kernel, Arg: "a", Err: ErrEmpty}
	}
	if len(a) < dims {
		return &ContractError{Kernel: kernel, Arg: "a", Have: len(a), Need: dims, Err: ErrShortInput}
	}
	return nil
}

// ValidateBatch checks the preconditions of a batched reduction over count
// vectors of length dims. out must not overlap data at all.
func ValidateBatch[T hwy.Lanes](kernel string, data []T, count, dims int, out []T) error {
	if count < 0 {
		return &ContractError{Kernel: kernel, Arg: "count", Have: count, Err: ErrNegativeDims}
	}
	if dims < 0 {
		return &ContractError{Kernel: kernel, Arg: "dims", Have: dims, Err: ErrNegativeDims}
	}
	if count > 0 && dims == 0 {
		return &ContractError{Kernel: kernel, Arg: "data", Err: ErrEmpty}
	}
	if len(data)/max(dims, 1) < count {
		return &ContractError{Kernel: kernel, Arg: "data", Have: len(data), Need: count * dims, Err: ErrShortInput}
	}
	if len(out) < count {
		return &ContractError{Kernel: kernel, Arg: "out", Have: len(out), Need: count, Err: ErrShortOutput}
	}
	if overlaps(out, count, data, count*dims, false) {
		return &ContractError{Kernel: kernel, Arg: "out/data", Err: ErrOverlap}
	}
	return nil
}

// ValidateVertical checks the preconditions of a column reduction over a
// row-major count×dims matrix. out needs dims elements and must not overlap
// matrix. A matrix without rows is rejected like an empty reduction.
func ValidateVertical[T hwy.Lanes](kernel string, matrix []T, count, dims int, out []T) error {
	if count < 0 {
		return &ContractError{Kernel: kernel, Arg: "count", Have: count, Err: ErrNegativeDims}
	}
	if dims < 0 {
		return &ContractError{Kernel: kernel, Arg: "dims", Have: dims, Err: ErrNegativeDims}
	}
	if count == 0 && dims > 0 {
		return &ContractError{Kernel: kernel, Arg: "matrix", Err: ErrEmpty}
	}
	if len(matrix)/max(dims, 1) < count {
		return &ContractError{Kernel: kernel, Arg: "matrix", Have: len(matrix), Need: count * dims, Err: ErrShortInput}
	}
	if len(out) < dims {
		return &ContractError{Kernel: kernel, Arg: "out", Have: len(out), Need: dims, Err: ErrShortOutput}
	}
	if overlaps(out, dims, matrix, count*dims, false) {
		return &ContractError{Kernel: kernel, Arg: "out/matrix", Err: ErrOverlap}
	}
	return nil
}

func inputName(i int) string {
	return string(rune('a' + i))
}

// overlaps reports whether x[:nx] and y[:ny] share memory. When allowExact is
// set, two ranges starting at the same address are not an overlap.
func overlaps[T hwy.Lanes](x []T, nx int, y []T, ny int, allowExact bool) bool {
	if nx == 0 || ny == 0 {
		return false
	}
	var zero T
	size := unsafe.Sizeof(zero)
	xs := uintptr(unsafe.Pointer(unsafe.SliceData(x)))
	ys := uintptr(unsafe.Pointer(unsafe.SliceData(y)))
	if allowExact && xs == ys {
		return false
	}
	xe := xs + uintptr(nx)*size
	ye := ys + uintptr(ny)*size
	return xs < ye && ys < xe
}
