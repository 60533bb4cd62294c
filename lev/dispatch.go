// Copyright 2026 go-levenshtein Authors
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

package lev

import (
	"os"
	"strconv"
)

// KernelLevel identifies which variant of the blocked wavefront kernel is
// in use for this runtime.
type KernelLevel int

const (
	// KernelScalar indicates the blocked kernel is disabled; every cell is
	// updated one at a time by the scalar recurrence.
	KernelScalar KernelLevel = iota

	// KernelPortable indicates the blocked kernel with generic lane
	// operations, used on architectures without a probed feature set.
	KernelPortable

	// KernelSSE2 indicates the x86-64 baseline: the blocked kernel with the
	// 32-bit minimum emulated by a signed compare and blend.
	KernelSSE2

	// KernelSSE41 indicates SSE4.1-class x86-64: the blocked kernel with the
	// native packed 32-bit minimum.
	KernelSSE41

	// KernelNEON indicates ARM NEON-class hardware.
	KernelNEON
)

// String returns a human-readable name for the kernel level.
func (l KernelLevel) String() string {
	switch l {
	case KernelScalar:
		return "scalar"
	case KernelPortable:
		return "portable"
	case KernelSSE2:
		return "sse2"
	case KernelSSE41:
		return "sse4.1"
	case KernelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentKernel is the detected kernel level for this runtime.
// Set by init() in dispatch_*.go files.
var currentKernel KernelLevel

// verifyBlocks enables the opt-in verification mode: every kernel block is
// recomputed with the scalar recurrence and compared lane by lane.
var verifyBlocks bool

func init() {
	verifyBlocks = VerifyEnv()
}

// CurrentLevel returns the kernel level selected for this runtime.
func CurrentLevel() KernelLevel {
	return currentKernel
}

// HasKernel returns true if the blocked wavefront kernel is in use.
// Returns false when LEV_NO_SIMD forces the scalar fallback.
func HasKernel() bool {
	return currentKernel != KernelScalar
}

// NoKernelEnv checks if the LEV_NO_SIMD environment variable is set.
// When set, eligible inputs take the scalar path regardless of element
// type. This is useful for testing and debugging.
func NoKernelEnv() bool {
	val := os.Getenv("LEV_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// VerifyEnv checks if the LEV_VERIFY environment variable is set.
// When set, every kernel block is checked against the scalar recurrence
// and any divergence panics. Keep it off in release builds; the check
// roughly doubles the cost of the blocked path.
func VerifyEnv() bool {
	val := os.Getenv("LEV_VERIFY")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
