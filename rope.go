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

// Package rope implements an insertion-ordered multiset of symbols over a
// fixed six-letter alphabet as a B+ tree whose leaves are run-length
// encoded byte blocks. It supports the three operations an online
// FM-index/BWT builder needs: single-run insertion with its BWT rank,
// prefix rank queries, and a priority-queue-driven multi-string bulk
// insert. See the component files (bucket.go, leaf.go, tree.go, rank.go,
// bulk.go) for the algorithms.
package rope

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
	"github.com/dustin/go-humanize"
)

// minMaxChildren and minBlockBytes are the floors Init rounds up to, per
// §3: max_children is an even number >= 4; block_bytes is an even
// multiple of 8, >= 32.
const (
	minMaxChildren = 4
	minBlockBytes  = 32
)

// Rope is the top-level value described in §3. Its zero value is not
// usable; construct one with Init.
type Rope struct {
	maxChildren int
	blockBytes  int

	// The root is either a bare leaf (rootIsLeaf) or a bucket; it starts
	// as an empty leaf and only grows a bucket wrapper on first overflow.
	rootIsLeaf  bool
	rootLeaf    []byte
	rootLeafLen int
	root        *bucket

	C counts

	la *leafArena
	ba *bucketArena

	sentinels *roaring.Bitmap
	metrics   *Metrics
}

// Option configures a Rope at construction time.
type Option func(*Rope)

// WithMetrics registers m to receive split/growth counters as the rope
// mutates. A nil Rope.metrics (the default) is always safe to use.
func WithMetrics(m *Metrics) Option {
	return func(rp *Rope) { rp.metrics = m }
}

// Init constructs an empty rope. maxChildren is rounded up to the next
// even number (minimum 4); blockBytes is rounded up to a multiple of 8
// (minimum 32).
func Init(maxChildren, blockBytes int, opts ...Option) *Rope {
	if maxChildren < minMaxChildren {
		maxChildren = minMaxChildren
	}
	if maxChildren%2 != 0 {
		maxChildren++
	}
	if blockBytes < minBlockBytes {
		blockBytes = minBlockBytes
	}
	if rem := blockBytes % 8; rem != 0 {
		blockBytes += 8 - rem
	}

	rp := &Rope{
		maxChildren: maxChildren,
		blockBytes:  blockBytes,
		rootIsLeaf:  true,
		la:          newLeafArena(blockBytes),
		ba:          newBucketArena(maxChildren),
		sentinels:   roaring.New(),
	}
	for _, opt := range opts {
		opt(rp)
	}
	return rp
}

// Destroy releases both arenas backing rp. rp must not be used afterward.
func (rp *Rope) Destroy() {
	rp.la.destroy()
	rp.ba.destroy()
	rp.root = nil
	rp.rootLeaf = nil
}

// Len returns the total number of symbols currently stored.
func (rp *Rope) Len() uint64 {
	return rp.C.total()
}

// String reports a short human-readable summary of the rope's size and
// arena footprint, the way the teacher's shard-size summaries are
// formatted with go-humanize.
func (rp *Rope) String() string {
	return fmt.Sprintf(
		"rope{len=%s, C=%v, leaf_arena=%s, buckets=%d}",
		humanize.Comma(int64(rp.C.total())),
		rp.C,
		humanize.Bytes(rp.la.bytesReserved()),
		rp.ba.bucketsAllocated(),
	)
}
