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

//go:build amd64

package lev

import "golang.org/x/sys/cpu"

func init() {
	if NoKernelEnv() {
		currentKernel = KernelScalar
		return
	}
	// SSE2 is the x86-64 baseline; SSE4.1 adds the packed 32-bit minimum.
	// Without it the kernel blends through a signed compare instead.
	if cpu.X86.HasSSE41 {
		currentKernel = KernelSSE41
		return
	}
	currentKernel = KernelSSE2
	vecMinU32 = minU32x4Blend
}
