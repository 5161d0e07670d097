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

// Package guard wraps the cmp and vec kernels with precondition checks.
//
// The Base kernels trust their arguments: a short buffer panics with an
// index error somewhere inside the loop, and a partially overlapping output
// silently produces garbage. A [Kernels] value built in [hwy.Checked] mode
// verifies lengths, aliasing and empty reductions before each call and panics
// with a [*ContractError] naming the kernel and argument. In [hwy.Unchecked]
// mode the checks are skipped and each method forwards straight to the kernel.
//
//	k := guard.New[float32](guard.WithMode(hwy.Checked))
//	k.GreaterThanValue(len(x), x, 0, mask)
//	peak := k.Max(len(x), x)
//
// The default mode comes from [hwy.DefaultMode], which honors VKERN_CHECKED.
//
// The Validate functions run the same checks and return the error instead of
// panicking, for callers that take buffer sizes from untrusted input.
package guard
