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

import (
	"os"
	"runtime"

	mmap "github.com/edsrzf/mmap-go"
)

// chunkBytes is the size of each backing allocation the arenas request from
// the OS. Actual leaf/bucket slabs are carved out of these in bump-pointer
// fashion; nothing within a chunk is ever individually freed, matching
// spec.md §5's "single bump allocator per rope, whole-rope destruction only".
const chunkBytes = 1 << 20

// roundToPage mirrors indexfile.go's bufferSize rounding: mmap hands out
// whole pages, so round a requested size up to the OS page size on
// platforms where that matters.
func roundToPage(n int) int {
	if runtime.GOOS == "windows" {
		return n
	}
	pagesize := os.Getpagesize() - 1
	return (n + pagesize) &^ pagesize
}

// leafArena bump-allocates fixed-size, zero-filled leaf slabs from a
// sequence of anonymously memory-mapped chunks. Unlike mmapedIndexFile,
// which maps an existing file read-only, this maps anonymous pages
// read-write: there is no file because persistence is explicitly out of
// scope (spec.md Non-goals), but the same mmap-go call shape applies.
type leafArena struct {
	blockBytes int
	chunks     []mmap.MMap
	off        int // byte offset of the next free slab within chunks[last]
}

func newLeafArena(blockBytes int) *leafArena {
	return &leafArena{blockBytes: blockBytes}
}

func (a *leafArena) addChunk() {
	size := roundToPage(chunkBytes)
	if a.blockBytes > size {
		size = roundToPage(a.blockBytes)
	}
	m, err := mmap.MapRegion(nil, size, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		fatalf("rope: leaf arena: unable to map %d bytes: %v", size, err)
	}
	a.chunks = append(a.chunks, m)
	a.off = 0
}

// alloc returns a fresh, zeroed slab of exactly blockBytes bytes. The slice
// is only valid for the lifetime of the rope; it is released in bulk by
// Destroy, never individually.
func (a *leafArena) alloc() []byte {
	if len(a.chunks) == 0 || a.off+a.blockBytes > len(a.chunks[len(a.chunks)-1]) {
		a.addChunk()
	}
	chunk := a.chunks[len(a.chunks)-1]
	slab := chunk[a.off : a.off+a.blockBytes : a.off+a.blockBytes]
	a.off += a.blockBytes
	for i := range slab {
		slab[i] = 0
	}
	return slab
}

func (a *leafArena) bytesReserved() uint64 {
	var n uint64
	for _, c := range a.chunks {
		n += uint64(len(c))
	}
	return n
}

func (a *leafArena) destroy() {
	for _, c := range a.chunks {
		if err := c.Unmap(); err != nil {
			fatalf("rope: leaf arena: unmap failed: %v", err)
		}
	}
	a.chunks = nil
	a.off = 0
}

// bucketSegmentLen is the number of buckets carved from a single backing
// array. Segmenting (rather than one big growable slice) means a bucket's
// address is stable across later allocations, the same stable-pointer
// property the OPA arena reference material gets from its fixed-size
// segments array.
const bucketSegmentLen = 1024

// bucketArena bump-allocates *bucket values from a growable list of fixed
// segments. A *bucket handed out by alloc never moves for the life of the
// rope: splits and inserts hold the pointer across calls that allocate
// further buckets, which a reslicing growable-slice arena cannot guarantee.
type bucketArena struct {
	maxChildren int
	segments    [][]bucket
	next        int // index of next free bucket within the last segment
}

func newBucketArena(maxChildren int) *bucketArena {
	return &bucketArena{maxChildren: maxChildren}
}

func (a *bucketArena) addSegment() {
	seg := make([]bucket, bucketSegmentLen)
	for i := range seg {
		seg[i].recs = make([]record, 0, a.maxChildren)
	}
	a.segments = append(a.segments, seg)
	a.next = 0
}

func (a *bucketArena) alloc() *bucket {
	if len(a.segments) == 0 || a.next >= len(a.segments[len(a.segments)-1]) {
		a.addSegment()
	}
	seg := a.segments[len(a.segments)-1]
	b := &seg[a.next]
	a.next++
	b.recs = b.recs[:0]
	b.isBottom = false
	return b
}

func (a *bucketArena) bucketsAllocated() uint64 {
	if len(a.segments) == 0 {
		return 0
	}
	return uint64(len(a.segments)-1)*bucketSegmentLen + uint64(a.next)
}

func (a *bucketArena) destroy() {
	a.segments = nil
	a.next = 0
}
