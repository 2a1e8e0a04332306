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

// maxIteratorDepth bounds the iterator's explicit stack, per §7: a tree
// taller than this indicates capacity wildly beyond what this package is
// meant for, and is treated as a fatal condition rather than grown
// unboundedly.
const maxIteratorDepth = 80

// Iterator walks a rope's leaves in left-to-right order. It borrows the
// rope read-only for its lifetime; no mutation is permitted while an
// iterator is live (external discipline, per §5 — the iterator itself
// does not enforce it).
type Iterator struct {
	rp       *Rope
	rootDone bool

	stack []iterFrame
}

type iterFrame struct {
	b   *bucket
	idx int
}

// NewIterator creates an iterator positioned before the rope's first leaf.
func (rp *Rope) NewIterator() *Iterator {
	it := &Iterator{rp: rp}
	if !rp.rootIsLeaf {
		it.stack = make([]iterFrame, 0, maxIteratorDepth)
		it.descendLeftmost(rp.root)
	}
	return it
}

func (it *Iterator) descendLeftmost(b *bucket) {
	for {
		if len(it.stack) >= maxIteratorDepth {
			fatalf("rope: iterator: tree height exceeds %d", maxIteratorDepth)
		}
		it.stack = append(it.stack, iterFrame{b: b, idx: 0})
		if b.isBottom {
			return
		}
		b = b.recs[0].bucket
	}
}

// Next returns the next leaf buffer (sliced to its current encoded
// length) and the leaf's total capacity in bytes, or ok == false once the
// rope is exhausted.
func (it *Iterator) Next() (buf []byte, capacity int, ok bool) {
	if it.rp.rootIsLeaf {
		if it.rootDone || it.rp.rootLeaf == nil {
			return nil, 0, false
		}
		it.rootDone = true
		return it.rp.rootLeaf[:it.rp.rootLeafLen], it.rp.blockBytes, true
	}

	if len(it.stack) == 0 {
		return nil, 0, false
	}

	top := &it.stack[len(it.stack)-1]
	rec := &top.b.recs[top.idx]
	buf = rec.leaf[:rec.leafLen]
	capacity = it.rp.blockBytes
	ok = true

	it.advance()
	return
}

func (it *Iterator) advance() {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		top.idx++
		if top.idx < top.b.n {
			if !top.b.isBottom {
				it.descendLeftmost(top.b.recs[top.idx].bucket)
			}
			return
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
}
