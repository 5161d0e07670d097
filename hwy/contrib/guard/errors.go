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
	"errors"
	"fmt"
)

// Sentinel errors wrapped by ContractError.
var (
	ErrNegativeDims = errors.New("negative length")
	ErrShortInput   = errors.New("input shorter than dims")
	ErrShortOutput  = errors.New("output shorter than dims")
	ErrOverlap      = errors.New("output partially overlaps an input")
	ErrEmpty        = errors.New("reduction over an empty vector")
)

// ContractError describes a violated kernel precondition. Checked kernels
// panic with a *ContractError; the Validate functions return one.
type ContractError struct {
	Kernel string // kernel name, e.g. "GreaterThanValue"
	Arg    string // offending argument, e.g. "out"
	Have   int    // elements available (or the bad length itself)
	Need   int    // elements required
	Err    error  // one of the sentinel errors
}

func (e *ContractError) Error() string {
	switch e.Err {
	case ErrNegativeDims:
		return fmt.Sprintf("guard: %s: %s: %v (%d)", e.Kernel, e.Arg, e.Err, e.Have)
	case ErrShortInput, ErrShortOutput:
		return fmt.Sprintf("guard: %s: %s: %v (have %d, need %d)", e.Kernel, e.Arg, e.Err, e.Have, e.Need)
	default:
		return fmt.Sprintf("guard: %s: %s: %v", e.Kernel, e.Arg, e.Err)
	}
}

func (e *ContractError) Unwrap() error {
	return e.Err
}
