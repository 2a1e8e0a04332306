// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rope

// findLeafSpan descends from the root to the leaf containing the symbol
// offset pos, accumulating the per-symbol counts of every record on the
// path that sits before the chosen child at its level. It returns that
// leaf's buffer, the absolute offset at which its content begins, its
// total length (from its parent record), and the accumulated counts.
func (rp *Rope) findLeafSpan(pos uint64) (leaf []byte, leafStart, leafLen uint64, prefix counts) {
	if rp.rootIsLeaf {
		return rp.rootLeaf, 0, rp.C.total(), counts{}
	}

	b := rp.root
	offset := pos
	for {
		idx, offInChild, levelPrefix := locateChild(b, offset)
		leafStart += offset - offInChild
		prefix.add(levelPrefix)

		rec := &b.recs[idx]
		if rec.bucket != nil {
			b = rec.bucket
			offset = offInChild
			continue
		}
		return rec.leaf, leafStart, rec.length, prefix
	}
}

// Rank returns the per-symbol counts of the prefix of length x.
func (rp *Rope) Rank(x uint64) counts {
	checkPos(x, rp.C.total())
	if rp.C.total() == 0 {
		return counts{}
	}
	leaf, leafStart, _, c := rp.findLeafSpan(x)
	c.add(rleRank1a(leaf, x-leafStart))
	return c
}

// Rank2 implements §4.5. For x <= y it returns the per-symbol counts of
// the prefixes of length x and y in one descent when both positions share
// a leaf. y < x signals the single-position variant (cy is unused, per
// the external-interface convention of passing a null out_cy).
func (rp *Rope) Rank2(x, y uint64) (counts, counts) {
	if y < x {
		return rp.Rank(x), counts{}
	}
	checkPos(y, rp.C.total())
	if rp.C.total() == 0 {
		return counts{}, counts{}
	}

	leaf, leafStart, leafLen, cx := rp.findLeafSpan(x)
	xOff := x - leafStart

	if y <= leafStart+leafLen {
		yOff := y - leafStart
		c1, c2 := rleRank2a(leaf, xOff, yOff)
		prefix := cx
		cxOut, cyOut := prefix, prefix
		cxOut.add(c1)
		cyOut.add(c2)
		return cxOut, cyOut
	}

	cx.add(rleRank1a(leaf, xOff))

	leaf2, leaf2Start, _, cy := rp.findLeafSpan(y)
	cy.add(rleRank1a(leaf2, y-leaf2Start))

	return cx, cy
}
