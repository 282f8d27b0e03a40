package lcb

import "sync/atomic"

// bucketPool is a free-list of reusable Instance slices, pre-reserved the
// way sweeper.h's Sweep pre-allocates `maxBranchSize + 1` buckets up front
// so the hot loop never has to allocate. If the pool ever runs dry (more
// buckets outstanding than the pre-reserved budget — possible since
// reference positions can advance by more than one base per junction) a
// fresh slice is allocated rather than blocking or panicking.
type bucketPool struct {
	free [][]Instance
	cap  int
}

func newBucketPool(n, capHint int) *bucketPool {
	p := &bucketPool{free: make([][]Instance, 0, n), cap: capHint}
	for i := 0; i < n; i++ {
		p.free = append(p.free, make([]Instance, 0, capHint))
	}
	return p
}

func (p *bucketPool) get() []Instance {
	if len(p.free) == 0 {
		return make([]Instance, 0, p.cap)
	}
	last := len(p.free) - 1
	b := p.free[last]
	p.free = p.free[:last]
	return b
}

func (p *bucketPool) put(b []Instance) {
	p.free = append(p.free, b[:0])
}

// Sweeper is the streaming engine for one reference chromosome: it walks
// junctions in order, proposes predecessor instances via the InstanceSet
// matrix and vertex table, and retires instances into emitted blocks once
// they can no longer be extended. Mirrors sweeper.h's Sweeper.
type Sweeper struct {
	store *JunctionStore
	opts  Opts

	start ChrCursor
	table *vertexTable
	sets  *[2][]InstanceSet

	pool      *bucketPool
	purge     []*vertexEntry
	purgeHead int

	blocksFound *int64
	blocks      *[]BlockInstance
}

// NewSweeper builds a Sweeper for one reference chromosome. table and sets
// are owned by the calling worker and persist across every chromosome that
// worker claims; blocksFound is the run-wide shared block-id counter.
func NewSweeper(store *JunctionStore, opts Opts, start ChrCursor, table *vertexTable, sets *[2][]InstanceSet, blocksFound *int64, blocks *[]BlockInstance) *Sweeper {
	return &Sweeper{
		store:       store,
		opts:        opts,
		start:       start,
		table:       table,
		sets:        sets,
		blocksFound: blocksFound,
		blocks:      blocks,
	}
}

func (sw *Sweeper) pushPurge(e *vertexEntry) {
	sw.purge = append(sw.purge, e)
	sw.table.push(e)
}

func (sw *Sweeper) frontPurge() *vertexEntry {
	return sw.purge[sw.purgeHead]
}

func (sw *Sweeper) popPurge() {
	sw.purgeHead++
	if sw.purgeHead > len(sw.purge)/2 && sw.purgeHead > 16 {
		sw.purge = append(sw.purge[:0], sw.purge[sw.purgeHead:]...)
		sw.purgeHead = 0
	}
}

func (sw *Sweeper) purgeEmpty() bool { return sw.purgeHead >= len(sw.purge) }

// Sweep runs the full walk over the reference chromosome, from start to
// its end, then drains the purge deque unconditionally.
func (sw *Sweeper) Sweep() {
	sw.pool = newBucketPool(sw.opts.MaxBranchSize+1, sw.store.Abundance())

	itPrev := ChrCursor{chr: invalidChr}
	for it := sw.start; it.Valid(); it.Inc() {
		bucket := sw.pool.get()
		entry := &vertexEntry{vertexID: it.VertexID(), pointerIdx: it.PointerIndex(), bucket: bucket}

		for jt := it; advanceChain(&jt); {
			idx := jt.Index()
			chr := jt.ChrID()
			strand := 0
			if !jt.IsPositiveStrand() {
				strand = 1
			}
			succ := [2]ChrCursor{it, jt}
			set := &(*sw.sets)[strand][chr]

			cand, score := set.tryRetrieveExact(sw.store, sw.table, succ, itPrev)
			if cand == nil {
				cand, score = set.retrieveBest(sw.store, sw.table, int32(sw.opts.MaxBranchSize), succ)
			}

			if cand != nil {
				cand.hasNext = true
				updated := extendInstance(cand, it, jt, score)
				entry.bucket = append(entry.bucket, updated)
			} else {
				entry.bucket = append(entry.bucket, newInstance(it, jt))
			}
			set.Add(idx)
		}

		sw.pushPurge(entry)
		sw.purgeTo(it.Position())
		itPrev = it
	}

	sw.purgeTo(1<<31 - 1)
}

// advanceChain follows cur.Next() in place and reports whether the result
// is still valid — the loop condition for "all subsequent occurrences of
// it's vertex".
func advanceChain(cur *ChrCursor) bool {
	cur.Next()
	return cur.Valid()
}

// purgeTo retires every purge-deque entry whose bucket is old enough
// (gap since its front instance's reference-side extension exceeds
// MaxBranchSize), emitting maximal valid instances along the way.
// Mirrors sweeper.h's Purge.
func (sw *Sweeper) purgeTo(lastPos int32) {
	for !sw.purgeEmpty() {
		entry := sw.frontPurge()
		if len(entry.bucket) > 0 {
			gap := lastPos - entry.bucket[0].endPos[0]
			if int(gap) < sw.opts.MaxBranchSize {
				return
			}
			for i := range entry.bucket {
				inst := &entry.bucket[i]
				chr := inst.chr
				strand := 0
				if !inst.IsPositiveStrand() {
					strand = 1
				}
				if inst.Valid(sw.opts.MinBlockSize) && !inst.hasNext {
					sw.report(inst)
				}
				set := &(*sw.sets)[strand][chr]
				set.EraseIfMatches(sw.store, sw.table, int32(sw.opts.MaxBranchSize), inst, inst.idx)
			}
			sw.table.pop(entry)
			sw.pool.put(entry.bucket)
			entry.bucket = nil
			sw.popPurge()
		} else {
			if entry.vertexID != sw.currentVertexID() {
				sw.table.pop(entry)
				sw.popPurge()
			} else {
				return
			}
		}
	}
}

// currentVertexID is the in-progress entry's vertex — purgeTo must never
// retire it even when its bucket is (so far) empty.
func (sw *Sweeper) currentVertexID() int64 {
	if sw.purgeEmpty() {
		return 0
	}
	return sw.purge[len(sw.purge)-1].vertexID
}

func (sw *Sweeper) report(inst *Instance) {
	id := atomic.AddInt64(sw.blocksFound, 1)
	rows := emitBlock(sw.start.ChrID(), inst, id, sw.store.K())
	*sw.blocks = append(*sw.blocks, rows[0], rows[1])
}
