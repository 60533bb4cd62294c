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

// The drivers sweep the DP matrix along anti-diagonals k = 1..aLen+bLen.
// On anti-diagonal k the valid cells are (i, j) with i+j = k, 1 <= i <=
// aLen, 1 <= j <= bLen, updated in decreasing i so that a block writing
// diag[i-15..i] never shadows the diag[i-1] predecessor a later block
// still needs. Only the last two anti-diagonals are kept; after each k the
// edge cells diag[0] = k and diag[k] = k (k <= aLen) encode the
// all-insertion and all-deletion borders, then the buffers swap roles.
//
// Both drivers require 1 <= aLen <= bLen; the dispatcher establishes that.

// progressFunc observes completed anti-diagonals out of aLen+bLen total.
type progressFunc func(done, total uint64)

// progressStride is how many anti-diagonals pass between observer calls.
const progressStride = 1024

// wavefront is the scalar driver: any comparable element type, either
// accumulator width, one cell per step.
func wavefront[E comparable, W Accum](a, b []E, observe progressFunc) W {
	aLen, bLen := len(a), len(b)
	total := aLen + bLen
	bufs := newBufferPair[W](aLen + 1)
	defer bufs.release()
	diag, diag2 := bufs.front.cells(), bufs.back.cells()

	for k := 1; ; k++ {
		startRow := 1
		if k > bLen {
			startRow = k - bLen
		}
		endRow := k - 1
		if k > aLen {
			endRow = aLen
		}
		for i := endRow; i >= startRow; i-- {
			j := k - i
			cost := W(1)
			if a[i-1] == b[j-1] {
				cost = 0
			}
			diag[i] = min(diag2[i-1]+1, diag2[i]+1, diag[i-1]+cost)
		}
		diag[0] = W(k)
		if k <= aLen {
			diag[k] = W(k)
		}
		if k == total {
			return diag[startRow]
		}
		diag, diag2 = diag2, diag
		if observe != nil && k%progressStride == 0 {
			observe(uint64(k), uint64(total))
		}
	}
}

// wavefrontBlocked is the kernel driver for 1-, 2- and 4-byte elements
// with uint32 accumulators: 16 cells per step on the interior of each
// anti-diagonal, one cell per step near the edges.
func wavefrontBlocked[E KernelElem](a, b []E, observe progressFunc) uint32 {
	aLen, bLen := len(a), len(b)
	total := aLen + bLen
	bufs := newBufferPair[uint32](aLen + 1)
	defer bufs.release()
	diag, diag2 := bufs.front, bufs.back

	for k := 1; ; k++ {
		startRow := 1
		if k > bLen {
			startRow = k - bLen
		}
		endRow := k - 1
		if k > aLen {
			endRow = aLen
		}
		i := endRow
		for i >= startRow {
			j := k - i
			if i >= blockLanes && bLen-j >= blockLanes {
				// i >= 16 keeps the block's rows positive and its lowest
				// read within the lead slack; bLen-j >= 16 keeps the B-side
				// comparison loads in bounds and, with startRow = max(1,
				// k-bLen), implies the whole block lies in the valid range.
				kernelBlock(a, b, i, j, diag, diag2)
				i -= blockLanes
			} else {
				cost := uint32(1)
				if a[i-1] == b[j-1] {
					cost = 0
				}
				diag.set(i, min(diag2.at(i-1)+1, diag2.at(i)+1, diag.at(i-1)+cost))
				i--
			}
		}
		diag.set(0, uint32(k))
		if k <= aLen {
			diag.set(k, uint32(k))
		}
		if k == total {
			return diag.at(startRow)
		}
		diag, diag2 = diag2, diag
		if observe != nil && k%progressStride == 0 {
			observe(uint64(k), uint64(total))
		}
	}
}
