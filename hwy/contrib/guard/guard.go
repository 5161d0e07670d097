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
	"github.com/ajroetker/go-vkern/hwy"
	"github.com/ajroetker/go-vkern/hwy/contrib/cmp"
	"github.com/ajroetker/go-vkern/hwy/contrib/vec"
	"github.com/ajroetker/go-vkern/hwy/contrib/workerpool"
)

// Config holds the settings of a Kernels value.
type Config struct {
	Mode hwy.Mode
}

// Option configures a Kernels value.
type Option func(*Config)

// WithMode selects checked or unchecked dispatch.
func WithMode(m hwy.Mode) Option {
	return func(c *Config) {
		c.Mode = m
	}
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{Mode: hwy.DefaultMode()}
}

// ApplyOptions applies opts on top of DefaultConfig.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Kernels exposes every comparison and reduction kernel for element type T.
// The zero value runs unchecked. Kernels is immutable and safe for
// concurrent use.
type Kernels[T hwy.Lanes] struct {
	checked bool
}

// New returns the kernels for T configured by opts.
func New[T hwy.Lanes](opts ...Option) Kernels[T] {
	cfg := ApplyOptions(opts...)
	return Kernels[T]{checked: cfg.Mode == hwy.Checked}
}

// Mode returns the mode k was built with.
func (k Kernels[T]) Mode() hwy.Mode {
	if k.checked {
		return hwy.Checked
	}
	return hwy.Unchecked
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func cmpValue[T hwy.Lanes, P cmp.Predicate[T]](k Kernels[T], dims int, a []T, value T, out []T) {
	if k.checked {
		var p P
		must(ValidateElementwise(p.Name()+"Value", dims, out, a))
	}
	cmp.BaseCmpValue[T, P](dims, a, value, out)
}

func cmpVector[T hwy.Lanes, P cmp.Predicate[T]](k Kernels[T], dims int, a, b, out []T) {
	if k.checked {
		var p P
		must(ValidateElementwise(p.Name()+"Vector", dims, out, a, b))
	}
	cmp.BaseCmpVector[T, P](dims, a, b, out)
}

// GreaterThanValue sets out[i] to 1 where a[i] > value and to 0 elsewhere.
func (k Kernels[T]) GreaterThanValue(dims int, a []T, value T, out []T) {
	cmpValue[T, cmp.GreaterThan[T]](k, dims, a, value, out)
}

// LessThanValue sets out[i] to 1 where a[i] < value and to 0 elsewhere.
func (k Kernels[T]) LessThanValue(dims int, a []T, value T, out []T) {
	cmpValue[T, cmp.LessThan[T]](k, dims, a, value, out)
}

// GreaterEqualValue sets out[i] to 1 where a[i] >= value and to 0 elsewhere.
func (k Kernels[T]) GreaterEqualValue(dims int, a []T, value T, out []T) {
	cmpValue[T, cmp.GreaterEqual[T]](k, dims, a, value, out)
}

// LessEqualValue sets out[i] to 1 where a[i] <= value and to 0 elsewhere.
func (k Kernels[T]) LessEqualValue(dims int, a []T, value T, out []T) {
	cmpValue[T, cmp.LessEqual[T]](k, dims, a, value, out)
}

// EqualValue sets out[i] to 1 where a[i] == value and to 0 elsewhere.
func (k Kernels[T]) EqualValue(dims int, a []T, value T, out []T) {
	cmpValue[T, cmp.Equal[T]](k, dims, a, value, out)
}

// NotEqualValue sets out[i] to 1 where a[i] and value are ordered and differ.
func (k Kernels[T]) NotEqualValue(dims int, a []T, value T, out []T) {
	cmpValue[T, cmp.NotEqual[T]](k, dims, a, value, out)
}

// GreaterThanVector sets out[i] to 1 where a[i] > b[i] and to 0 elsewhere.
func (k Kernels[T]) GreaterThanVector(dims int, a, b, out []T) {
	cmpVector[T, cmp.GreaterThan[T]](k, dims, a, b, out)
}

// LessThanVector sets out[i] to 1 where a[i] < b[i] and to 0 elsewhere.
func (k Kernels[T]) LessThanVector(dims int, a, b, out []T) {
	cmpVector[T, cmp.LessThan[T]](k, dims, a, b, out)
}

// GreaterEqualVector sets out[i] to 1 where a[i] >= b[i] and to 0 elsewhere.
func (k Kernels[T]) GreaterEqualVector(dims int, a, b, out []T) {
	cmpVector[T, cmp.GreaterEqual[T]](k, dims, a, b, out)
}

// LessEqualVector sets out[i] to 1 where a[i] <= b[i] and to 0 elsewhere.
func (k Kernels[T]) LessEqualVector(dims int, a, b, out []T) {
	cmpVector[T, cmp.LessEqual[T]](k, dims, a, b, out)
}

// EqualVector sets out[i] to 1 where a[i] == b[i] and to 0 elsewhere.
func (k Kernels[T]) EqualVector(dims int, a, b, out []T) {
	cmpVector[T, cmp.Equal[T]](k, dims, a, b, out)
}

// NotEqualVector sets out[i] to 1 where a[i] and b[i] are ordered and differ.
func (k Kernels[T]) NotEqualVector(dims int, a, b, out []T) {
	cmpVector[T, cmp.NotEqual[T]](k, dims, a, b, out)
}

// Max returns the largest non-NaN element of a[:dims].
func (k Kernels[T]) Max(dims int, a []T) T {
	if k.checked {
		must(ValidateReduce("Max", dims, a))
	}
	return vec.BaseMax(dims, a)
}

// Min returns the smallest non-NaN element of a[:dims].
func (k Kernels[T]) Min(dims int, a []T) T {
	if k.checked {
		must(ValidateReduce("Min", dims, a))
	}
	return vec.BaseMin(dims, a)
}

// Sum returns the sum of a[:dims].
func (k Kernels[T]) Sum(dims int, a []T) T {
	if k.checked {
		must(ValidateReduce("Sum", dims, a))
	}
	return vec.BaseSum(dims, a)
}

// MaxVector sets out[i] to the larger of a[i] and b[i], ignoring NaN.
func (k Kernels[T]) MaxVector(dims int, a, b, out []T) {
	if k.checked {
		must(ValidateElementwise("MaxVector", dims, out, a, b))
	}
	vec.BaseMaxVector(dims, a, b, out)
}

// MinVector sets out[i] to the smaller of a[i] and b[i], ignoring NaN.
func (k Kernels[T]) MinVector(dims int, a, b, out []T) {
	if k.checked {
		must(ValidateElementwise("MinVector", dims, out, a, b))
	}
	vec.BaseMinVector(dims, a, b, out)
}

// BatchMax writes the maximum of each of count vectors of length dims
// stored contiguously in data to out. A nil pool reduces sequentially.
func (k Kernels[T]) BatchMax(pool *workerpool.Pool, data []T, count, dims int, out []T) {
	if k.checked {
		must(ValidateBatch("BatchMax", data, count, dims, out))
	}
	vec.ParallelBatchMax(pool, data, count, dims, out)
}

// BatchMin is the minimum counterpart of BatchMax.
func (k Kernels[T]) BatchMin(pool *workerpool.Pool, data []T, count, dims int, out []T) {
	if k.checked {
		must(ValidateBatch("BatchMin", data, count, dims, out))
	}
	vec.ParallelBatchMin(pool, data, count, dims, out)
}

// BatchSum is the sum counterpart of BatchMax.
func (k Kernels[T]) BatchSum(pool *workerpool.Pool, data []T, count, dims int, out []T) {
	if k.checked {
		must(ValidateBatch("BatchSum", data, count, dims, out))
	}
	vec.ParallelBatchSum(pool, data, count, dims, out)
}

// MaxVertical writes the maximum of each column of the row-major count×dims
// matrix to out.
func (k Kernels[T]) MaxVertical(matrix []T, count, dims int, out []T) {
	if k.checked {
		must(ValidateVertical("MaxVertical", matrix, count, dims, out))
	}
	vec.BaseMaxVertical(matrix, count, dims, out)
}

// MinVertical writes the minimum of each column to out.
func (k Kernels[T]) MinVertical(matrix []T, count, dims int, out []T) {
	if k.checked {
		must(ValidateVertical("MinVertical", matrix, count, dims, out))
	}
	vec.BaseMinVertical(matrix, count, dims, out)
}

// SumVertical writes the sum of each column to out.
func (k Kernels[T]) SumVertical(matrix []T, count, dims int, out []T) {
	if k.checked {
		must(ValidateVertical("SumVertical", matrix, count, dims, out))
	}
	vec.BaseSumVertical(matrix, count, dims, out)
}
