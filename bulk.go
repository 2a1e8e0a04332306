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
	"container/heap"

	"golang.org/x/exp/slices"
)

// bulkTask is one pending group of the multi-string bulk insert: the
// strings in ptr[b:e) currently agree on their first depth characters and
// share the BWT interval [l, u).
type bulkTask struct {
	l, u  uint64
	b, e  int
	depth int
}

// taskHeap is a container/heap min-heap ordered by task.l, so popping it
// always processes the leftmost pending interval next, which is what
// keeps every InsertRun call's position valid against everything inserted
// so far (§4.7).
type taskHeap []bulkTask

func (h taskHeap) Len() int            { return len(h) }
func (h taskHeap) Less(i, j int) bool  { return h[i].l < h[j].l }
func (h taskHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *taskHeap) Push(x interface{}) { *h = append(*h, x.(bulkTask)) }
func (h *taskHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// InsertMulti bulk-inserts the strings packed into buf: a concatenation of
// zero-terminated strings, the buffer itself also ending in a zero byte
// (length, including every sentinel, is simply len(buf)). The strings are
// interleaved by character depth via a min-heap of radix-partitioned
// groups, producing the same final rope as inserting each string
// one-by-one with InsertStringRLO (up to the relative order of strings
// that share a prefix).
func (rp *Rope) InsertMulti(buf []byte) error {
	if len(buf) == 0 || buf[len(buf)-1] != 0 {
		return errMalformedBuffer
	}

	starts := []int{0}
	for idx := 0; idx < len(buf); idx++ {
		if buf[idx] == 0 && idx+1 < len(buf) {
			starts = append(starts, idx+1)
		}
	}
	m := len(starts)
	ptr := slices.Clone(starts)

	live := m
	h := &taskHeap{{l: 0, u: rp.C[Sentinel], b: 0, e: m, depth: 0}}
	heap.Init(h)
	rp.metrics.setTaskQueueLen(h.Len())

	for h.Len() > 0 {
		t := heap.Pop(h).(bulkTask)

		sub := ptr[t.b:t.e]
		oracle := make([]Symbol, len(sub))
		var c [AlphabetSize]int
		for i, p := range sub {
			pos := p + t.depth
			if pos >= len(buf) {
				fatalf("rope: InsertMulti: string index %d runs past buffer end", p)
			}
			sym := Symbol(buf[pos])
			oracle[i] = sym
			c[sym]++
		}

		// ac[a] = ac[a-1] + c[a-1], recomputed fresh for this iteration:
		// the prefix offsets into sub at which each symbol class starts.
		var ac [AlphabetSize]int
		for a := 1; a < AlphabetSize; a++ {
			ac[a] = ac[a-1] + c[a-1]
		}
		cursor := ac
		sorted := make([]int, len(sub))
		for _, p := range sub {
			a := Symbol(buf[p+t.depth])
			sorted[cursor[a]] = p
			cursor[a]++
		}
		copy(sub, sorted)

		tl, tu := rp.Rank2(t.l, t.u)

		x := t.l
		for a := Symbol(0); a < AlphabetSize; a++ {
			if c[a] > 0 {
				rp.InsertRun(x, a, uint64(c[a]))
				x += uint64(c[a])
			}
			x += tu[a] - tl[a]
		}

		// Strings whose sentinel was just inserted are no longer live.
		live -= c[0]

		for a := Symbol(1); a < AlphabetSize; a++ {
			if c[a] == 0 {
				continue
			}
			ac2 := rp.C.prefix(a)
			heap.Push(h, bulkTask{
				l:     ac2 + tl[a] + uint64(live),
				u:     ac2 + tu[a] + uint64(live),
				b:     t.b + ac[a],
				e:     t.b + ac[a] + c[a],
				depth: t.depth + 1,
			})
		}
		rp.metrics.setTaskQueueLen(h.Len())
	}

	return nil
}
