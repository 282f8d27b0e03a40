package lcb

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Run drives the full sweep: one worker per opts.Threads, each claiming
// reference chromosomes one at a time from a shared atomic counter until
// none remain, and returns the concatenated, unordered block list.
// Progress is printed as a run of dots bracketed by '[' and ']', matching
// blocksfinder.h's FindBlocks/ChrSweep; this is deliberately raw fmt.Print,
// not the structured log package used everywhere else in this module —
// a bracketed dot run isn't a log line, and no corpus logging library
// attests unbuffered single-character console progress output.
func Run(store *JunctionStore, opts Opts) ([]BlockInstance, error) {
	if err := checkOpts(opts); err != nil {
		return nil, err
	}

	chrCount := store.ChrCount()
	var nextChr int64
	var blocksFound int64
	var progress int64

	progressPortion := int64(chrCount) / 50
	if progressPortion == 0 {
		progressPortion = 1
	}

	results := make([][]BlockInstance, opts.Threads)

	fmt.Print("[")
	var wg sync.WaitGroup
	wg.Add(opts.Threads)
	for w := 0; w < opts.Threads; w++ {
		w := w
		go func() {
			defer wg.Done()
			runWorker(store, opts, chrCount, &nextChr, &blocksFound, &progress, progressPortion, &results[w])
		}()
	}
	wg.Wait()
	fmt.Println("]")

	var total int
	for _, r := range results {
		total += len(r)
	}
	blocks := make([]BlockInstance, 0, total)
	for _, r := range results {
		blocks = append(blocks, r...)
	}
	return blocks, nil
}

// runWorker is one worker's full lifetime: it builds its own InstanceSet
// matrix and vertex table once, then repeatedly claims and sweeps
// chromosomes until the shared counter is exhausted.
func runWorker(store *JunctionStore, opts Opts, chrCount int, nextChr, blocksFound, progress *int64, progressPortion int64, out *[]BlockInstance) {
	var sets [2][]InstanceSet
	for strand := 0; strand < 2; strand++ {
		sets[strand] = make([]InstanceSet, chrCount)
		for chr := 0; chr < chrCount; chr++ {
			sets[strand][chr].Init(chr, strand == 0, store.ChrSize(chr))
		}
	}
	table := newVertexTable(store.MaxVertexID())

	for {
		chr := int(atomic.AddInt64(nextChr, 1)) - 1
		if chr >= chrCount {
			return
		}

		start := NewChrCursor(store, chr)
		sw := NewSweeper(store, opts, start, table, &sets, blocksFound, out)
		sw.Sweep()

		if atomic.AddInt64(progress, 1)%progressPortion == 0 {
			fmt.Print(".")
		}
	}
}
