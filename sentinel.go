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

import "github.com/RoaringBitmap/roaring"

// Sentinels returns a snapshot of the positions that currently hold symbol
// 0, the string-boundary marker in a BWT construction. The returned
// bitmap is a clone; mutating it has no effect on rp.
func (rp *Rope) Sentinels() *roaring.Bitmap {
	return rp.sentinels.Clone()
}

// sentinelsInsert keeps the sentinel-position bitmap in step with an
// InsertRun call: every existing sentinel at or after pos shifts right by
// runLen, and if the inserted run is itself sentinels, their positions are
// added. Positions are tracked as uint32, which bounds the rope at
// slightly over four billion symbols — ample for the online-construction
// workloads this package targets.
func (rp *Rope) sentinelsInsert(pos uint64, sym Symbol, runLen uint64) {
	if runLen == 0 {
		return
	}

	if !rp.sentinels.IsEmpty() {
		shifted := roaring.New()
		it := rp.sentinels.Iterator()
		for it.HasNext() {
			v := uint64(it.Next())
			if v >= pos {
				v += runLen
			}
			shifted.Add(uint32(v))
		}
		rp.sentinels = shifted
	}

	if sym == Sentinel {
		for i := uint64(0); i < runLen; i++ {
			rp.sentinels.Add(uint32(pos + i))
		}
	}
}
