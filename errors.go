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
	"fmt"

	"github.com/pkg/errors"
)

// fatalError marks a condition spec.md §7 classifies as a programmer error:
// it is never recoverable at runtime, so the rope panics with one instead
// of threading an error return through every call site. pkg/errors gives
// the panic value a stack trace, the same way the teacher's indirect
// dependency on cockroachdb/errors (pulled in through sourcegraph/log)
// favors annotated, traceable errors over bare strings.
type fatalError struct {
	err error
}

func (e *fatalError) Error() string { return e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }

func fatalf(format string, args ...interface{}) {
	panic(&fatalError{err: errors.WithStack(fmt.Errorf(format, args...))})
}

func checkSymbol(sym Symbol) {
	if sym >= AlphabetSize {
		fatalf("rope: symbol %d outside [0, %d)", sym, AlphabetSize)
	}
}

func checkPos(pos, total uint64) {
	if pos > total {
		fatalf("rope: position %d out of range, rope has %d symbols", pos, total)
	}
}

// errMalformedBuffer is returned (not panicked) by InsertMulti, which takes
// a caller-supplied byte slice and can fail on ordinary bad input rather
// than an internal programmer error.
var errMalformedBuffer = errors.New("rope: bulk-insert buffer is empty or not zero-terminated")
