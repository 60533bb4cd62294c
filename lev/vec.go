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

// This file provides the 4-lane 32-bit vector primitives the blocked kernel
// is written against. They mirror one 128-bit register of four accumulator
// lanes; the compiler is free to lower the fixed-size array operations to
// packed instructions where the target has them.

// u32x4 holds four 32-bit accumulator lanes in ascending-row order.
type u32x4 [4]uint32

func splatU32x4(x uint32) u32x4 {
	return u32x4{x, x, x, x}
}

func (v u32x4) add(o u32x4) u32x4 {
	return u32x4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// alignRight12 concatenates lo:hi into a 256-bit value and takes bytes
// 12..27: lane 0 is lo's top lane, lanes 1..3 are hi's lower three.
// This supplies the "predecessor shifted by one row" for a 4-lane block
// without a separate load.
func alignRight12(hi, lo u32x4) u32x4 {
	return u32x4{lo[3], hi[0], hi[1], hi[2]}
}

// minU32x4 is the native per-lane unsigned minimum.
func minU32x4(a, b u32x4) u32x4 {
	return u32x4{
		min(a[0], b[0]),
		min(a[1], b[1]),
		min(a[2], b[2]),
		min(a[3], b[3]),
	}
}

// minU32x4Blend emulates the per-lane minimum with a signed greater-than
// mask and an and-not/and/or blend, the way baseline 128-bit targets
// without a packed 32-bit minimum do it. The sign bits are flipped before
// the signed compare so the emulation agrees with the unsigned minimum
// over the full accumulator range, not just below 2^31.
func minU32x4Blend(a, b u32x4) u32x4 {
	const signBit = 1 << 31
	var r u32x4
	for l := range r {
		var m uint32
		if int32(a[l]^signBit) > int32(b[l]^signBit) {
			m = ^uint32(0)
		}
		r[l] = (a[l] &^ m) | (b[l] & m)
	}
	return r
}

// vecMinU32 is the per-lane minimum used by the kernel. dispatch_*.go
// rebinds it to minU32x4Blend on targets without a native packed minimum.
var vecMinU32 = minU32x4
