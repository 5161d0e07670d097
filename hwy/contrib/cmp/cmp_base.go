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

package cmp

//go:generate go run ../../../cmd/kernelgen cmp --output cmp.gen.go

import "github.com/ajroetker/go-vkern/hwy"

// BaseCmpValue compares every element of a against a broadcast scalar.
//
//	for i in 0..dims:
//	    out[i] = 1 if P(a[i], value) else 0
//
// Returns without writing anything when dims is 0.
//
// Safety: a must hold at least dims elements and out at least dims elements.
// out may be a itself. Nothing is checked unless built with -tags vkerndebug.
//
// Example:
//
//	a := []float64{1, 2, math.NaN(), -1}
//	out := make([]float64, 4)
//	BaseCmpValue[float64, GreaterThan[float64]](4, a, 1, out)  // [0 1 0 0]
func BaseCmpValue[T hwy.Lanes, P Predicate[T]](dims int, a []T, value T, out []T) {
	if hwy.DebugChecks {
		hwy.AssertLen("cmp.CmpValue", "a", len(a), dims)
		hwy.AssertLen("cmp.CmpValue", "out", len(out), dims)
	}

	var pred P
	one, zero := hwy.True[T](), hwy.False[T]()
	a = a[:dims]
	out = out[:dims]
	for i, x := range a {
		if pred.Holds(x, value) {
			out[i] = one
		} else {
			out[i] = zero
		}
	}
}

// BaseCmpVector compares two vectors lane by lane.
//
//	for i in 0..dims:
//	    out[i] = 1 if P(a[i], b[i]) else 0
//
// Safety: a, b and out must each hold at least dims elements. out may be a or
// b itself. Nothing is checked unless built with -tags vkerndebug.
func BaseCmpVector[T hwy.Lanes, P Predicate[T]](dims int, a, b, out []T) {
	if hwy.DebugChecks {
		hwy.AssertLen("cmp.CmpVector", "a", len(a), dims)
		hwy.AssertLen("cmp.CmpVector", "b", len(b), dims)
		hwy.AssertLen("cmp.CmpVector", "out", len(out), dims)
	}

	var pred P
	one, zero := hwy.True[T](), hwy.False[T]()
	a = a[:dims]
	b = b[:dims]
	out = out[:dims]
	for i, x := range a {
		if pred.Holds(x, b[i]) {
			out[i] = one
		} else {
			out[i] = zero
		}
	}
}
