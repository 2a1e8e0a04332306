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

// InsertStringRLO inserts s (a sequence of non-sentinel symbols) under the
// reverse-lexicographic-order discipline of §4.6: equivalent to inserting
// the single string one-by-one via the same interval-narrowing step the
// multi-string bulk inserter runs for every group, specialized to a group
// of one string with no partitioning required.
func (rp *Rope) InsertStringRLO(s []Symbol) {
	for i, c := range s {
		checkSymbol(c)
		if c == Sentinel {
			fatalf("rope: InsertStringRLO: embedded sentinel at index %d", i)
		}
	}

	l, u := uint64(0), rp.C[Sentinel]

	i := 0
	for ; i < len(s); i++ {
		c := s[i]

		tl, tu := rp.Rank2(l, u)
		l += tu.prefix(c) - tl.prefix(c)

		if tl[c] < tu[c] {
			// The prefix built so far already occurs in the rope: narrow
			// the interval via the same LF-style update insert_multi uses.
			delta := tu[c] - tl[c]
			rank := rp.InsertRun(l, c, 1)
			l = rank + 1
			u = rank + delta + 1
			continue
		}

		// First occurrence of this prefix: nothing left to interleave
		// with, so the remaining suffix can be appended literally.
		for ; i < len(s); i++ {
			rp.InsertRun(l, s[i], 1)
			l++
		}
		break
	}

	rp.InsertRun(l, Sentinel, 1)
}
