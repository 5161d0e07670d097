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

// Package contrib groups the vkern kernels.
//
// # Subpackages
//
//   - cmp: element-wise comparisons producing 1/0 masks
//   - vec: horizontal, element-wise and column-wise max, min and sum, plus
//     batched forms
//   - guard: the same kernels behind precondition checks
//   - workerpool: the persistent pool the batched kernels split work over
//
// # Comparison (hwy/contrib/cmp)
//
// Each predicate has a value form, comparing every lane against one scalar,
// and a vector form, comparing two slices lane by lane:
//
//	cmp.GreaterThanValueFloat32(len(x), x, 0.5, mask)
//	cmp.NotEqualVectorInt16(len(a), a, b, mask)
//
// # Reduction (hwy/contrib/vec)
//
//	peak := vec.MaxFloat64(len(x), x)
//	total := vec.SumInt32(len(counts), counts)
//	vec.MinVectorUint8(len(a), a, b, out)
//	vec.SumVerticalFloat32(matrix, rows, cols, colSums)
//
// # Element Types
//
// Every kernel exists for float32, float64, int8, int16, int32, int64,
// uint8, uint16, uint32 and uint64. The generic Base functions accept any
// type whose underlying type is one of these.
//
// # Performance
//
// Kernels are straight loops over dims elements with no allocation, written
// so the Go compiler can keep the hot loop free of bounds checks. Sum keeps
// eight independent accumulators; batched kernels share a
// workerpool.Pool across calls.
package contrib
