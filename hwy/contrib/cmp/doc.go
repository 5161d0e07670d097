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

// Package cmp provides elementwise comparison kernels that write a mask
// vector.
//
// A mask has the same element type as its inputs: every lane holds 1 where
// the comparison holds and 0 where it does not, so a mask can be fed straight
// into further arithmetic (multiplying data by a mask zeroes the rejected
// lanes).
//
// # Kernel shapes
//
//   - value: out[i] = pred(a[i], value), comparing against a broadcast scalar
//   - vector: out[i] = pred(a[i], b[i]), comparing two vectors lane by lane
//
// Each shape is a generic Base function parameterised by element type and
// predicate, and cmp.gen.go instantiates it for every supported element type:
//
//	mask := make([]float32, len(data))
//	cmp.GreaterThanValueF32(len(data), data, 0.5, mask)
//
// # NaN
//
// Every predicate, NotEqual included, is false when either operand is NaN.
// NotEqual is the ordered inequality a < b || a > b.
//
// # Safety
//
// The kernels do not validate their arguments. Callers guarantee that a (and
// b) hold at least dims readable elements and that out holds at least dims
// writable elements. out may be the same slice as an input (in-place
// masking), because each lane is read before it is written; partially
// overlapping buffers are not allowed. Use the guard package for a checked
// entry point, or build with -tags vkerndebug to assert lengths.
package cmp
