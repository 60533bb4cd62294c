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
	"math"
	"slices"
	"unsafe"
)

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-element insertions, deletions and substitutions
// transforming one into the other.
//
// Elements are compared with ==. Slices of uint8, int8, uint16, int16,
// uint32 and int32 (including []byte and []rune) take the blocked kernel;
// everything else, including slices of named types over those integers
// and float elements (whose == is not bitwise: -0 equals +0, NaN differs
// from itself), takes the scalar path.
func Distance[T comparable](a, b []T) uint64 {
	return distance(a, b, nil)
}

// DistanceString returns the edit distance between the raw bytes of a and
// b. Multi-byte UTF-8 sequences count per byte; convert to []rune first
// for code-point granularity.
func DistanceString(a, b string) uint64 {
	return distance([]byte(a), []byte(b), nil)
}

// DistanceObserved is Distance with a progress observer, called every 1024
// anti-diagonals with the number completed and the total. The observer
// runs on the calling goroutine; a call runs to completion either way.
func DistanceObserved[T comparable](a, b []T, observe func(done, total uint64)) uint64 {
	return distance(a, b, observe)
}

func distance[T comparable](a, b []T, observe progressFunc) uint64 {
	// Order by length: the diagonal buffers are sized by the shorter side.
	if len(a) > len(b) {
		a, b = b, a
	}
	// The distance is invariant under removal of a shared prefix or suffix.
	for len(a) > 0 && a[0] == b[0] {
		a, b = a[1:], b[1:]
	}
	for len(a) > 0 && a[len(a)-1] == b[len(b)-1] {
		a, b = a[:len(a)-1], b[:len(b)-1]
	}
	switch len(a) {
	case 0:
		return uint64(len(b))
	case 1:
		if slices.Contains(b, a[0]) {
			return uint64(len(b)) - 1
		}
		return uint64(len(b))
	}
	if uint64(len(a))+uint64(len(b)) > math.MaxUint32 {
		return uint64(wavefront[T, uint64](a, b, observe))
	}
	if HasKernel() {
		if d, ok := kernelDistance(a, b, observe); ok {
			return d
		}
	}
	return uint64(wavefront[T, uint32](a, b, observe))
}

// kernelDistance dispatches on element width {1, 2, 4, other}. Signed
// slices are reinterpreted to the unsigned type of the same width, which
// preserves bitwise equality. Element types outside the switch report
// false and fall back to the scalar driver.
func kernelDistance[T comparable](a, b []T, observe progressFunc) (uint64, bool) {
	switch s := any(a).(type) {
	case []uint8:
		return uint64(wavefrontBlocked(s, any(b).([]uint8), observe)), true
	case []int8:
		return uint64(wavefrontBlocked(unsigned8(s), unsigned8(any(b).([]int8)), observe)), true
	case []uint16:
		return uint64(wavefrontBlocked(s, any(b).([]uint16), observe)), true
	case []int16:
		return uint64(wavefrontBlocked(unsigned16(s), unsigned16(any(b).([]int16)), observe)), true
	case []uint32:
		return uint64(wavefrontBlocked(s, any(b).([]uint32), observe)), true
	case []int32:
		return uint64(wavefrontBlocked(unsigned32(s), unsigned32(any(b).([]int32)), observe)), true
	}
	return 0, false
}

func unsigned8(s []int8) []uint8 {
	return unsafe.Slice((*uint8)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

func unsigned16(s []int16) []uint16 {
	return unsafe.Slice((*uint16)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

func unsigned32(s []int32) []uint32 {
	return unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}
