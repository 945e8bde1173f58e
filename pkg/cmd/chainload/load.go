// Copyright 2025 The Sequtil Authors.
//
// Use of this software is governed by the BSD-style license
// included in the /LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/codahale/hdrhistogram"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/sequtil/chain/pkg/list"
	"github.com/sequtil/chain/pkg/util/randutil"
	"golang.org/x/sync/errgroup"
)

const defaultMix = "push-front=10,push-back=25,pop-front=15,pop-back=5,insert=10,remove=10,get=15,find=10"

// Values are drawn from a small domain so find regularly hits duplicates.
const valueDomain = 1 << 10

// Latencies are recorded in nanoseconds and clamped to the histogram range.
const (
	minRecordableLatency = 1
	maxRecordableLatency = int64(10 * time.Second)
	histSigFigs          = 3
)

// config collects the command line knobs.
type config struct {
	workers  int
	ops      int64
	seed     int64
	mix      string
	profile  string
	initial  int
	maxLen   int
	interval time.Duration
}

func defaultConfig() *config {
	return &config{
		workers:  4,
		ops:      1000000,
		mix:      defaultMix,
		initial:  128,
		maxLen:   1 << 16,
		interval: time.Second,
	}
}

// chainLoad runs a pool of workers that each own a private list and apply a
// weighted random mix of operations to it. A monitor goroutine prints
// throughput once per interval; per-op latency histograms are merged into a
// final report.
type chainLoad struct {
	cfg   *config
	mix   *opMix
	stats struct {
		ops    uint64
		misses uint64
	}
	mu struct {
		sync.Mutex
		hists [numOps]*hdrhistogram.Histogram
	}
}

func newChainLoad(cfg *config, mix *opMix) *chainLoad {
	c := &chainLoad{cfg: cfg, mix: mix}
	for kind := range c.mu.hists {
		c.mu.hists[kind] = newHistogram()
	}
	return c
}

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minRecordableLatency, maxRecordableLatency, histSigFigs)
}

func runLoad(cfg *config) error {
	if cfg.workers < 1 {
		return errors.Newf("--workers must be at least 1, got %d", cfg.workers)
	}
	if cfg.interval <= 0 {
		return errors.Newf("--interval must be positive, got %s", cfg.interval)
	}
	mix, err := parseMix(cfg.mix)
	if err != nil {
		return err
	}
	initial := cfg.initial
	if cfg.profile != "" {
		var profileInitial int
		mix, profileInitial, err = loadProfile(cfg.profile)
		if err != nil {
			return err
		}
		if profileInitial > 0 {
			initial = profileInitial
		}
	}

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fmt.Printf("running %s ops across %d workers (seed %d)\n",
		humanize.Comma(cfg.ops), cfg.workers, seed)

	c := newChainLoad(cfg, mix)

	stop := make(chan struct{})
	go c.monitor(cfg.interval, stop)

	var g errgroup.Group
	perWorker := cfg.ops / int64(cfg.workers)
	extra := cfg.ops % int64(cfg.workers)
	start := time.Now()
	for i := 0; i < cfg.workers; i++ {
		workerIdx := i
		workerOps := perWorker
		if workerIdx == 0 {
			workerOps += extra
		}
		g.Go(func() error {
			return c.worker(workerOps, seed+int64(workerIdx), initial)
		})
	}
	err = g.Wait()
	close(stop)
	if err != nil {
		return err
	}
	c.report(time.Since(start))
	return nil
}

// worker applies ops operations to a private list, recording per-kind
// latencies locally and merging them into the shared histograms at the end.
func (c *chainLoad) worker(ops int64, seed int64, initial int) error {
	rng := randutil.NewTestRandWithSeed(seed)
	l := list.New[int64]()
	for i := 0; i < initial; i++ {
		l.PushBack(rng.Int63n(valueDomain))
	}

	var hists [numOps]*hdrhistogram.Histogram
	for kind := range hists {
		hists[kind] = newHistogram()
	}

	for i := int64(0); i < ops; i++ {
		kind := c.mix.sample(rng)
		if c.cfg.maxLen > 0 && l.Len() >= c.cfg.maxLen && grows(kind) {
			// At the cap, growth ops turn into front pops so walk costs
			// stay bounded.
			kind = opPopFront
		}

		start := time.Now()
		ok := applyOp(l, rng, kind)
		lat := time.Since(start).Nanoseconds()
		if lat < minRecordableLatency {
			lat = minRecordableLatency
		} else if lat > maxRecordableLatency {
			lat = maxRecordableLatency
		}
		if err := hists[kind].RecordValue(lat); err != nil {
			return err
		}

		atomic.AddUint64(&c.stats.ops, 1)
		if !ok {
			atomic.AddUint64(&c.stats.misses, 1)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for kind := range hists {
		c.mu.hists[kind].Merge(hists[kind])
	}
	return nil
}

func grows(kind opKind) bool {
	switch kind {
	case opPushFront, opPushBack, opInsert:
		return true
	}
	return false
}

// applyOp issues one operation against the list. It reports false when the
// op came back empty handed: a pop or remove on an empty list, a position
// past the end, or a find with no match. Those are expected outcomes under a
// random mix and are tallied as misses, not failures.
func applyOp(l *list.List[int64], rng *rand.Rand, kind opKind) bool {
	switch kind {
	case opPushFront:
		l.PushFront(rng.Int63n(valueDomain))
	case opPushBack:
		l.PushBack(rng.Int63n(valueDomain))
	case opPopFront:
		if _, err := l.PopFront(); err != nil {
			return false
		}
	case opPopBack:
		if _, err := l.PopBack(); err != nil {
			return false
		}
	case opInsert:
		if err := l.InsertAt(rng.Intn(l.Len()+1), rng.Int63n(valueDomain)); err != nil {
			return false
		}
	case opRemove:
		// Positions run one past the end so the error path gets load too.
		if _, err := l.RemoveAt(rng.Intn(l.Len() + 1)); err != nil {
			return false
		}
	case opGet:
		if _, ok := l.ValueAt(rng.Intn(l.Len() + 1)); !ok {
			return false
		}
	case opFind:
		if len(l.IndexesOf(rng.Int63n(valueDomain))) == 0 {
			return false
		}
	}
	return true
}

func (c *chainLoad) monitor(d time.Duration, stop <-chan struct{}) {
	start := time.Now()
	lastNow := start
	var lastOps uint64

	for ticks := 0; ; ticks++ {
		select {
		case <-stop:
			return
		case <-time.After(d):
		}

		now := time.Now()
		elapsed := now.Sub(lastNow).Seconds()
		ops := atomic.LoadUint64(&c.stats.ops)
		misses := atomic.LoadUint64(&c.stats.misses)

		if ticks%20 == 0 {
			fmt.Println("_elapsed____ops/sec______total_____misses")
		}
		fmt.Printf("%8s %10.1f %10s %10s\n",
			time.Duration(now.Sub(start).Seconds()+0.5)*time.Second,
			float64(ops-lastOps)/elapsed,
			humanize.Comma(int64(ops)),
			humanize.Comma(int64(misses)))
		lastNow = now
		lastOps = ops
	}
}

func (c *chainLoad) report(elapsed time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ops := atomic.LoadUint64(&c.stats.ops)
	misses := atomic.LoadUint64(&c.stats.misses)
	fmt.Printf("\n%s ops (%s misses) in %s: %.1f ops/sec\n\n",
		humanize.Comma(int64(ops)), humanize.Comma(int64(misses)),
		elapsed.Round(time.Millisecond), float64(ops)/elapsed.Seconds())

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"op", "count", "p50(µs)", "p95(µs)", "p99(µs)", "max(µs)"})
	for kind := opKind(0); kind < numOps; kind++ {
		h := c.mu.hists[kind]
		if h.TotalCount() == 0 {
			continue
		}
		table.Append([]string{
			opNames[kind],
			humanize.Comma(h.TotalCount()),
			micros(h.ValueAtQuantile(50)),
			micros(h.ValueAtQuantile(95)),
			micros(h.ValueAtQuantile(99)),
			micros(h.Max()),
		})
	}
	table.Render()
}

func micros(ns int64) string {
	return fmt.Sprintf("%.2f", float64(ns)/float64(time.Microsecond))
}
