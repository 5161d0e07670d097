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

import "sync/atomic"

// Mode selects whether kernel preconditions are verified before a call.
//
// The Base kernels never verify anything. Mode is consumed by the guard
// package, which wraps the kernels and checks buffer lengths, aliasing and
// empty reductions when Checked is selected.
type Mode int32

const (
	// Unchecked trusts the caller: arguments go straight to the kernel.
	Unchecked Mode = iota

	// Checked verifies every precondition and panics on the first violation.
	Checked
)

// String returns "unchecked" or "checked".
func (m Mode) String() string {
	switch m {
	case Unchecked:
		return "unchecked"
	case Checked:
		return "checked"
	default:
		return "unknown"
	}
}

var defaultMode atomic.Int32

func init() {
	defaultMode.Store(int32(modeFromEnv()))
}

// CheckedEnv reports whether the VKERN_CHECKED environment variable requests
// checked mode.
func CheckedEnv() bool {
	return envBool("VKERN_CHECKED")
}

func modeFromEnv() Mode {
	if CheckedEnv() {
		return Checked
	}
	return Unchecked
}

// DefaultMode returns the mode used by guard.Kernels built without an
// explicit mode. It starts as Checked when VKERN_CHECKED is set and Unchecked
// otherwise.
func DefaultMode() Mode {
	return Mode(defaultMode.Load())
}

// SetDefaultMode changes the process-wide default mode and returns the
// previous one. Kernels already constructed keep the mode they were built
// with.
func SetDefaultMode(m Mode) Mode {
	return Mode(defaultMode.Swap(int32(m)))
}
