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

import "golang.org/x/exp/slices"

// record is one child-descriptor slot of a bucket: a pointer to either a
// child bucket or a leaf buffer, and the (len, counts) totals of the
// subtree rooted at that child.
type record struct {
	length uint64
	cnt    counts

	bucket *bucket // non-nil iff the owning bucket's isBottom is false
	leaf   []byte  // non-nil iff the owning bucket's isBottom is true

	// leafLen is the leaf's current encoded size in bytes. Meaningful only
	// when leaf != nil; the slab itself is always a full block_bytes slice.
	leafLen int
}

// bucket is a B+ tree interior node: up to maxChildren child-descriptor
// records, promoted out of the "first record carries the header fields"
// layout into its own n/isBottom header, per the owned-head redesign.
type bucket struct {
	n        int
	isBottom bool
	recs     []record
}

func (b *bucket) full(maxChildren int) bool {
	return b.n >= maxChildren
}

func newBucket(ba *bucketArena, isBottom bool) *bucket {
	b := ba.alloc()
	b.isBottom = isBottom
	return b
}

// locateChild finds which of b's records the symbol offset off falls into,
// returning that record's index, the offset relative to the start of that
// record's subtree, and the aggregate counts of every record before it.
//
// Per §4.4/§4.5, the search walks forward from the first record when off
// lies in the first half of the bucket's total length, and backward from
// the last record otherwise, bounding the number of length comparisons by
// half the fan-out on average. Either way, finishing the per-symbol prefix
// sum over the records before the chosen index costs O(index), the same
// whichever direction located it.
func locateChild(b *bucket, off uint64) (idx int, offInChild uint64, prefix counts) {
	if b.n == 0 {
		fatalf("rope: locateChild: empty bucket")
	}

	var total uint64
	for i := 0; i < b.n; i++ {
		total += b.recs[i].length
	}

	if off <= total/2 {
		cum := uint64(0)
		i := 0
		for i < b.n-1 && cum+b.recs[i].length <= off {
			cum += b.recs[i].length
			i++
		}
		for k := 0; k < i; k++ {
			prefix.add(b.recs[k].cnt)
		}
		return i, off - cum, prefix
	}

	back := total - off
	suffix := uint64(0)
	i := b.n - 1
	for i > 0 && suffix+b.recs[i].length <= back {
		suffix += b.recs[i].length
		i--
	}
	for k := 0; k < i; k++ {
		prefix.add(b.recs[k].cnt)
	}
	cumBeforeI := total - suffix - b.recs[i].length
	return i, off - cumBeforeI, prefix
}

// splitChildAt implements §4.2 steps 2-6: it assumes the caller already
// verified parent has a free slot (the preemptive-split invariant — parent
// was itself split earlier in the same descent if it was full), makes room
// at idx+1, and splits the child at idx into itself (now holding only the
// left half) and the new sibling record.
func splitChildAt(parent *bucket, idx int, la *leafArena, ba *bucketArena, maxChildren int) {
	if parent.n >= maxChildren {
		fatalf("rope: splitChildAt: parent has no free slot")
	}

	parent.recs = slices.Insert(parent.recs, idx+1, record{})
	parent.n++

	v := &parent.recs[idx]
	w := &parent.recs[idx+1]
	*w = record{}

	if parent.isBottom {
		w.leaf = la.alloc()
		ln, rn := rleSplit(v.leaf, w.leaf)
		v.leafLen = ln
		w.leafLen = rn
		w.cnt = rleCount(w.leaf)
		w.length = w.cnt.total()
	} else {
		w.bucket = newBucket(ba, v.bucket.isBottom)
		half := maxChildren / 2
		moveFrom := v.bucket.n - half

		w.bucket.recs = append(w.bucket.recs, v.bucket.recs[moveFrom:v.bucket.n]...)
		w.bucket.n = half
		v.bucket.n = moveFrom
		v.bucket.recs = v.bucket.recs[:v.bucket.n]

		var wc counts
		var wl uint64
		for k := 0; k < w.bucket.n; k++ {
			wc.add(w.bucket.recs[k].cnt)
			wl += w.bucket.recs[k].length
		}
		w.cnt = wc
		w.length = wl
	}

	v.cnt.sub(w.cnt)
	v.length -= w.length
}
