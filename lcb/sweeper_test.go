package lcb

import (
	"testing"

	"github.com/grailbio/testutil/assert"
)

// TestRunEmitsSingleBlockPair hand-verifies the full Sweeper/Run path on the
// smallest possible non-trivial graph: two vertices (2 and 3), each
// occurring once on each of two chromosomes, with k=1. The single resulting
// instance must extend across both occurrences and be emitted once the
// purge deque drains, producing exactly one block pair.
//
//	chr0: v2@0 ---- v3@3        (reference walk)
//	chr1: v2@0 ---- v3@3        (chained to from chr0)
//
// Extending from (chr0@0,chr1@0) to (chr0@3,chr1@3) gives a position diff of
// 3 on both sides, which clears MinBlockSize=2; the emitted interval adds k.
func TestRunEmitsSingleBlockPair(t *testing.T) {
	seqs := [][]byte{[]byte("AAAAAA"), []byte("AAAAAA")}
	records := []GraphRecord{
		{VertexID: 2, Chr: 0, Pos: 0},
		{VertexID: 3, Chr: 0, Pos: 3},
		{VertexID: 2, Chr: 1, Pos: 0},
		{VertexID: 3, Chr: 1, Pos: 3},
	}
	store := mustStore(t, 1, 10, seqs, records)

	opts := Opts{KmerLength: 1, MinBlockSize: 2, MaxBranchSize: 2, AbundanceThreshold: 10, Threads: 1}
	blocks, err := Run(store, opts)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(blocks))

	var chr0Row, chr1Row *BlockInstance
	for i := range blocks {
		switch blocks[i].Chr {
		case 0:
			chr0Row = &blocks[i]
		case 1:
			chr1Row = &blocks[i]
		}
	}
	assert.True(t, chr0Row != nil && chr1Row != nil, "expected one row per chromosome")

	assert.Equal(t, chr1Row.BlockID(), chr0Row.BlockID())
	assert.Equal(t, int64(1), chr0Row.BlockID())

	// start=0, end=3, k=1 -> emitted half-open interval [0,4).
	assert.Equal(t, int64(0), chr0Row.Start)
	assert.Equal(t, int64(4), chr0Row.End)
	assert.Equal(t, int64(0), chr1Row.Start)
	assert.Equal(t, int64(4), chr1Row.End)
	assert.Equal(t, byte('+'), chr0Row.Strand())
	assert.Equal(t, byte('+'), chr1Row.Strand())
}

// TestRunEmitsNothingBelowMinBlockSize confirms the same graph produces no
// blocks once MinBlockSize exceeds the only instance's reachable extension.
func TestRunEmitsNothingBelowMinBlockSize(t *testing.T) {
	seqs := [][]byte{[]byte("AAAAAA"), []byte("AAAAAA")}
	records := []GraphRecord{
		{VertexID: 2, Chr: 0, Pos: 0},
		{VertexID: 3, Chr: 0, Pos: 3},
		{VertexID: 2, Chr: 1, Pos: 0},
		{VertexID: 3, Chr: 1, Pos: 3},
	}
	store := mustStore(t, 1, 10, seqs, records)

	opts := Opts{KmerLength: 1, MinBlockSize: 4, MaxBranchSize: 2, AbundanceThreshold: 10, Threads: 1}
	blocks, err := Run(store, opts)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(blocks))
}

// TestRunSingleOccurrenceProducesNoBlock checks that a vertex seen only once
// never contributes a block: its chain never jumps to a second occurrence,
// so the inner loop never runs and no Instance is ever created for it.
func TestRunSingleOccurrenceProducesNoBlock(t *testing.T) {
	seqs := [][]byte{[]byte("AAAA")}
	records := []GraphRecord{{VertexID: 2, Chr: 0, Pos: 0}}
	store := mustStore(t, 1, 10, seqs, records)

	opts := Opts{KmerLength: 1, MinBlockSize: 1, MaxBranchSize: 2, AbundanceThreshold: 10, Threads: 1}
	blocks, err := Run(store, opts)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(blocks))
}

// TestRunWithMultipleWorkers reruns the same two-vertex scenario with more
// worker threads than chromosomes, confirming claiming via the shared atomic
// counter doesn't change the result.
func TestRunWithMultipleWorkers(t *testing.T) {
	seqs := [][]byte{[]byte("AAAAAA"), []byte("AAAAAA")}
	records := []GraphRecord{
		{VertexID: 2, Chr: 0, Pos: 0},
		{VertexID: 3, Chr: 0, Pos: 3},
		{VertexID: 2, Chr: 1, Pos: 0},
		{VertexID: 3, Chr: 1, Pos: 3},
	}
	store := mustStore(t, 1, 10, seqs, records)

	opts := Opts{KmerLength: 1, MinBlockSize: 2, MaxBranchSize: 2, AbundanceThreshold: 10, Threads: 4}
	blocks, err := Run(store, opts)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(blocks))
}

func TestRunRejectsBadOpts(t *testing.T) {
	store := mustStore(t, 1, 10, [][]byte{[]byte("AAAA")}, []GraphRecord{{VertexID: 1, Chr: 0, Pos: 0}})
	_, err := Run(store, Opts{KmerLength: 2, MinBlockSize: 1, MaxBranchSize: 1, Threads: 1})
	assert.True(t, err != nil)
	assert.Equal(t, BadArg, ErrorKind(err))
}
