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
	"math/rand"
	"testing"
)

func TestAlignRight12(t *testing.T) {
	hi := u32x4{10, 11, 12, 13}
	lo := u32x4{20, 21, 22, 23}
	got := alignRight12(hi, lo)
	want := u32x4{23, 10, 11, 12}
	if got != want {
		t.Errorf("alignRight12 = %v, want %v", got, want)
	}
}

func TestAddSplat(t *testing.T) {
	v := u32x4{1, 2, 3, 4}.add(splatU32x4(10))
	if (v != u32x4{11, 12, 13, 14}) {
		t.Errorf("add = %v", v)
	}
}

func TestMinU32x4(t *testing.T) {
	a := u32x4{0, 5, 100, 7}
	b := u32x4{1, 5, 99, ^uint32(0)}
	want := u32x4{0, 5, 99, 7}
	if got := minU32x4(a, b); got != want {
		t.Errorf("minU32x4 = %v, want %v", got, want)
	}
}

// The blend emulation must agree with the native unsigned minimum over
// the full accumulator range, including values straddling the signed
// boundary.
func TestMinU32x4BlendMatchesNative(t *testing.T) {
	rng := rand.New(rand.NewSource(20))

	t.Run("randomized", func(t *testing.T) {
		for trial := 0; trial < 2000; trial++ {
			var a, b u32x4
			for l := range a {
				a[l] = rng.Uint32()
				if trial%2 == 0 {
					// Nearby pairs, the shape the recurrence produces.
					b[l] = a[l] + uint32(rng.Intn(5)) - 2
				} else {
					b[l] = rng.Uint32()
				}
			}
			if got, want := minU32x4Blend(a, b), minU32x4(a, b); got != want {
				t.Fatalf("blend(%v, %v) = %v, native = %v", a, b, got, want)
			}
		}
	})

	t.Run("boundary values", func(t *testing.T) {
		cases := [][2]uint32{
			{0, 0},
			{0, 1},
			{1<<31 - 2, 1<<31 - 1},
			{1<<31 - 1, 1<<31 + 1},
			{1 << 31, 1<<31 + 2},
			{0, ^uint32(0)},
			{^uint32(0) - 1, ^uint32(0)},
		}
		for _, c := range cases {
			a, b := splatU32x4(c[0]), splatU32x4(c[1])
			if got, want := minU32x4Blend(a, b), minU32x4(a, b); got != want {
				t.Errorf("blend(%d, %d) = %v, native = %v", c[0], c[1], got, want)
			}
			if got, want := minU32x4Blend(b, a), minU32x4(b, a); got != want {
				t.Errorf("blend(%d, %d) = %v, native = %v", c[1], c[0], got, want)
			}
		}
	})
}
