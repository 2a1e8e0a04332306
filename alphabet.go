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

// Symbol is a member of the rope's fixed six-letter alphabet. Symbol 0 is
// the sentinel, used to mark the end of a string in a BWT construction; it
// sorts before every other symbol.
type Symbol uint8

// AlphabetSize is the number of distinct symbols the rope can store.
const AlphabetSize = 6

// Sentinel is the symbol that terminates a string.
const Sentinel Symbol = 0

// counts is a fixed per-symbol tally, used for both interior record
// marginals and the rope-global C array.
type counts [AlphabetSize]uint64

func (c *counts) add(other counts) {
	for a := range c {
		c[a] += other[a]
	}
}

func (c *counts) sub(other counts) {
	for a := range c {
		c[a] -= other[a]
	}
}

func (c counts) total() uint64 {
	var t uint64
	for _, v := range c {
		t += v
	}
	return t
}

// prefix returns the sum of c[0:sym], i.e. the total count of symbols that
// sort strictly before sym.
func (c counts) prefix(sym Symbol) uint64 {
	var t uint64
	for a := Symbol(0); a < sym; a++ {
		t += c[a]
	}
	return t
}
