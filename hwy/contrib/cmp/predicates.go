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

import "github.com/ajroetker/go-vkern/hwy"

// Predicate is an ordered binary relation over T.
//
// Implementations are zero-size types so that every (element type,
// predicate) pair instantiates its own copy of a Base kernel with the
// comparison inlined.
type Predicate[T hwy.Lanes] interface {
	// Holds reports whether the relation holds for (a, b). It must be false
	// whenever a or b is NaN.
	Holds(a, b T) bool

	// Name is the exported name prefix of the kernels using this predicate.
	Name() string
}

// GreaterThan holds where a > b.
type GreaterThan[T hwy.Lanes] struct{}

func (GreaterThan[T]) Holds(a, b T) bool { return a > b }
func (GreaterThan[T]) Name() string      { return "GreaterThan" }

// LessThan holds where a < b.
type LessThan[T hwy.Lanes] struct{}

func (LessThan[T]) Holds(a, b T) bool { return a < b }
func (LessThan[T]) Name() string      { return "LessThan" }

// GreaterEqual holds where a >= b.
type GreaterEqual[T hwy.Lanes] struct{}

func (GreaterEqual[T]) Holds(a, b T) bool { return a >= b }
func (GreaterEqual[T]) Name() string      { return "GreaterEqual" }

// LessEqual holds where a <= b.
type LessEqual[T hwy.Lanes] struct{}

func (LessEqual[T]) Holds(a, b T) bool { return a <= b }
func (LessEqual[T]) Name() string      { return "LessEqual" }

// Equal holds where a == b.
type Equal[T hwy.Lanes] struct{}

func (Equal[T]) Holds(a, b T) bool { return a == b }
func (Equal[T]) Name() string      { return "Equal" }

// NotEqual holds where a and b are ordered and differ. Go's != is true for
// NaN operands, so it is spelled as a < b || a > b.
type NotEqual[T hwy.Lanes] struct{}

func (NotEqual[T]) Holds(a, b T) bool { return a < b || a > b }
func (NotEqual[T]) Name() string      { return "NotEqual" }
