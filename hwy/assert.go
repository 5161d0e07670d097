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

import "fmt"

// AssertLen panics when a buffer holds fewer than dims elements. Kernels call
// it behind DebugChecks so release builds compile the check away.
func AssertLen(op, name string, have, dims int) {
	if dims < 0 {
		panic(fmt.Sprintf("%s: dims must be non-negative, got %d", op, dims))
	}
	if have < dims {
		panic(fmt.Sprintf("%s: %s has %d elements, need %d", op, name, have, dims))
	}
}
