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

// Package hwy holds the numeric domain shared by the vkern kernels.
//
// It defines the element-type constraints every kernel is generic over, the
// ordering rules of those types (including NaN for floating point), the
// canonical mask encoding, and the runtime configuration of the library:
// the detected dispatch level and the default safety mode.
//
// Kernels live in the contrib packages:
//
//	import (
//		"github.com/ajroetker/go-vkern/hwy/contrib/cmp"
//		"github.com/ajroetker/go-vkern/hwy/contrib/vec"
//	)
//
//	mask := make([]float32, len(data))
//	cmp.GreaterThanValueFloat32(len(data), data, 0.5, mask)
//	peak := vec.MaxFloat32(len(data), data)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all element types a kernel accepts.
type Lanes interface {
	Floats | Integers
}
