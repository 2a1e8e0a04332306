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

// Command ropebench drives an in-memory random insertion workload against
// a rope and reports timing. It reads no files and writes nothing to
// disk — it exists only to exercise the library's ambient stack (flags,
// structured logging, metrics, maxprocs) the way the rest of this repo
// would wire a production command, not as the file-reading driver the
// library itself deliberately excludes.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/peterbourgon/ff/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/xid"
	"github.com/sourcegraph/log"
	"go.uber.org/automaxprocs/maxprocs"

	rope "github.com/sourcegraph/ropebwt"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("ropebench", flag.ContinueOnError)
	var (
		maxChildren = fs.Int("max-children", 64, "bucket fan-out")
		blockBytes  = fs.Int("block-bytes", 512, "leaf buffer capacity in bytes")
		numSymbols  = fs.Int("symbols", 1_000_000, "number of random symbols to insert")
		seed        = fs.Int64("seed", 1, "PRNG seed")
	)
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("ROPEBENCH")); err != nil {
		return err
	}

	if _, err := maxprocs.Set(); err != nil {
		return err
	}

	liblog := log.Init(log.Resource{Name: "ropebench", Version: "dev"})
	defer liblog.Sync()
	logger := log.Scoped("ropebench", "rope insertion microbenchmark")

	runID := xid.New()
	reg := prometheus.NewRegistry()
	metrics := rope.NewMetrics(reg)

	rp := rope.Init(*maxChildren, *blockBytes, rope.WithMetrics(metrics))
	defer rp.Destroy()

	rng := rand.New(rand.NewSource(*seed))
	start := time.Now()
	for i := 0; i < *numSymbols; i++ {
		sym := rope.Symbol(1 + rng.Intn(rope.AlphabetSize-1))
		pos := uint64(rng.Int63n(int64(rp.Len() + 1)))
		rp.InsertRun(pos, sym, 1)
	}
	elapsed := time.Since(start)

	rate := float64(*numSymbols) / elapsed.Seconds()
	logger.Info("bench complete",
		log.String("run_id", runID.String()),
		log.Duration("elapsed", elapsed),
		log.String("rope", rp.String()),
		log.String("rate", humanize.Comma(int64(rate))+" symbols/sec"),
	)
	return nil
}
