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

import "fmt"

// blockLanes is the number of cells one kernel block computes: a 16-lane
// element comparison feeding four 4-lane accumulator vectors.
const blockLanes = 16

// kernelBlock computes the 16 cells diag[i-15..i] of the current
// anti-diagonal in one block. Preconditions, checked by the driver:
// i >= 16 and bLen-j >= 16, where j = k-i.
//
// On entry diag still holds the anti-diagonal k-2 and diag2 holds k-1.
// The five 4-wide loads per buffer cover rows i-19..i; the extra vector at
// the low end supplies the "shifted by one row" predecessor for each
// 4-lane sub-block via alignRight12. The load at row i-19 may reach up to
// three lanes below cell 0, into the buffer's lead slack.
func kernelBlock[E KernelElem](a, b []E, i, j int, diag, diag2 *diagBuffer[uint32]) {
	var subst [4]u32x4
	substCosts(a, b, i, j, &subst)

	var d, d2 [5]u32x4
	for m := 0; m <= 4; m++ {
		d[m] = u32x4(diag.load4(i - 4*m - 3))
		d2[m] = u32x4(diag2.load4(i - 4*m - 3))
	}

	one := splatU32x4(1)
	var out [4]u32x4
	for q := 0; q < 4; q++ {
		shift1 := alignRight12(d2[q], d2[q+1]) // diag2[row-1]
		shift2 := alignRight12(d[q], d[q+1])   // diag[row-1], still anti-diagonal k-2
		r1 := shift1.add(one)
		r2 := d2[q].add(one)
		r3 := shift2.add(subst[q])
		out[q] = vecMinU32(vecMinU32(r1, r2), r3)
	}

	if verifyBlocks {
		verifyBlock(&d, &d2, &subst, &out, i)
	}

	for q := 0; q < 4; q++ {
		diag.store4(i-4*q-3, [4]uint32(out[q]))
	}
}

// substCosts fills subst[0..3] with the substitution costs for rows
// i-15..i. Compare lane l holds the cost of row i-l (A[i-1-l] against
// B[j-1+l]); the diagonal's lane order is ascending rows, so each 4-lane
// group is reversed while widening to 32 bits.
func substCosts[E KernelElem](a, b []E, i, j int, subst *[4]u32x4) {
	var cost [blockLanes]uint32
	for l := 0; l < blockLanes; l++ {
		if a[i-1-l] != b[j-1+l] {
			cost[l] = 1
		}
	}
	for q := 0; q < 4; q++ {
		subst[q] = u32x4{cost[4*q+3], cost[4*q+2], cost[4*q+1], cost[4*q]}
	}
}

// verifyBlock recomputes all 16 cells from the block's pre-store load set
// with the scalar recurrence and panics on any lane divergence.
//
// Lane mapping: row i-u (u in 0..19) lives in vector u/4, lane 3-u%4.
func verifyBlock(d, d2 *[5]u32x4, subst, out *[4]u32x4, i int) {
	lane := func(v *[5]u32x4, u int) uint32 {
		return v[u/4][3-u%4]
	}
	for u := 0; u < blockLanes; u++ {
		cost := subst[u/4][3-u%4]
		want := min(lane(d2, u+1)+1, lane(d2, u)+1, lane(d, u+1)+cost)
		got := out[u/4][3-u%4]
		if got != want {
			panic(fmt.Sprintf("lev: kernel block diverged at row %d: got %d, want %d", i-u, got, want))
		}
	}
}
