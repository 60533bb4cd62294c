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

//go:build arm64

package lev

func init() {
	if NoKernelEnv() {
		currentKernel = KernelScalar
		return
	}
	// NEON is mandatory on arm64 and provides a native unsigned 32-bit
	// minimum, so no blend emulation is needed.
	currentKernel = KernelNEON
}
