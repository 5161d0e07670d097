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

package hwy

import (
	"math"
	"reflect"
)

// This file describes how values of each element type compare.
//
// Integer types are totally ordered. Floating-point types follow the IEEE 754
// partial order: NaN is unordered with every value, itself included, so every
// ordered comparison (<, <=, >, >=, ==) involving NaN is false.

// Integer limits as variables: a constant conversion to a type parameter must
// be representable by every type in the set.
var (
	minInt8   int8   = math.MinInt8
	minInt16  int16  = math.MinInt16
	minInt32  int32  = math.MinInt32
	minInt64  int64  = math.MinInt64
	maxInt8   int8   = math.MaxInt8
	maxInt16  int16  = math.MaxInt16
	maxInt32  int32  = math.MaxInt32
	maxInt64  int64  = math.MaxInt64
	maxUint8  uint8  = math.MaxUint8
	maxUint16 uint16 = math.MaxUint16
	maxUint32 uint32 = math.MaxUint32
	maxUint64 uint64 = math.MaxUint64
)

// True returns the canonical mask value for a lane that passed a comparison.
func True[T Lanes]() T {
	return 1
}

// False returns the canonical mask value for a lane that failed a comparison.
// For floating-point types this is positive zero.
func False[T Lanes]() T {
	return 0
}

// IsMaskValue reports whether x is one of the two canonical mask values.
// Negative zero compares equal to zero and is accepted.
func IsMaskValue[T Lanes](x T) bool {
	return x == 0 || x == 1
}

// Lowest returns the seed of a max reduction: -Inf for floating-point types
// and the minimum representable value for integer types.
func Lowest[T Lanes]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(float32(math.Inf(-1)))
	case float64:
		return T(math.Inf(-1))
	case int8:
		return T(minInt8)
	case int16:
		return T(minInt16)
	case int32:
		return T(minInt32)
	case int64:
		return T(minInt64)
	case uint8, uint16, uint32, uint64:
		return 0
	}
	return lowestByKind[T]()
}

// Highest returns the seed of a min reduction: +Inf for floating-point types
// and the maximum representable value for integer types.
func Highest[T Lanes]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(float32(math.Inf(1)))
	case float64:
		return T(math.Inf(1))
	case int8:
		return T(maxInt8)
	case int16:
		return T(maxInt16)
	case int32:
		return T(maxInt32)
	case int64:
		return T(maxInt64)
	case uint8:
		return T(maxUint8)
	case uint16:
		return T(maxUint16)
	case uint32:
		return T(maxUint32)
	case uint64:
		return T(maxUint64)
	}
	return highestByKind[T]()
}

// lowestByKind handles named types whose underlying type is a lane type,
// which the type switch in Lowest does not match.
func lowestByKind[T Lanes]() T {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return T(float32(math.Inf(-1)))
	case reflect.Float64:
		return T(math.Inf(-1))
	case reflect.Int8:
		return T(minInt8)
	case reflect.Int16:
		return T(minInt16)
	case reflect.Int32:
		return T(minInt32)
	case reflect.Int64:
		return T(minInt64)
	default:
		return 0
	}
}

func highestByKind[T Lanes]() T {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return T(float32(math.Inf(1)))
	case reflect.Float64:
		return T(math.Inf(1))
	case reflect.Int8:
		return T(maxInt8)
	case reflect.Int16:
		return T(maxInt16)
	case reflect.Int32:
		return T(maxInt32)
	case reflect.Int64:
		return T(maxInt64)
	case reflect.Uint8:
		return T(maxUint8)
	case reflect.Uint16:
		return T(maxUint16)
	case reflect.Uint32:
		return T(maxUint32)
	default:
		return T(maxUint64)
	}
}

// MaxNum returns the larger of a and b, ignoring NaN.
//
// If exactly one operand is NaN the other is returned; if both are NaN the
// result is NaN. On a tie (including -0 versus +0) a is returned.
func MaxNum[T Lanes](a, b T) T {
	if b > a || a != a {
		return b
	}
	return a
}

// MinNum returns the smaller of a and b, ignoring NaN, with the same NaN and
// tie rules as MaxNum.
func MinNum[T Lanes](a, b T) T {
	if b < a || a != a {
		return b
	}
	return a
}
