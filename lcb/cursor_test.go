package lcb

import (
	"testing"

	"github.com/grailbio/testutil/assert"
)

func twoChrStore(t *testing.T) *JunctionStore {
	t.Helper()
	seqs := [][]byte{[]byte("AAAAAA"), []byte("AAAAAA")}
	records := []GraphRecord{
		{VertexID: 2, Chr: 0, Pos: 0},
		{VertexID: 3, Chr: 0, Pos: 3},
		{VertexID: 2, Chr: 1, Pos: 0},
		{VertexID: 3, Chr: 1, Pos: 3},
	}
	return mustStore(t, 1, 10, seqs, records)
}

func TestChrCursorIncAndValid(t *testing.T) {
	s := twoChrStore(t)
	c := NewChrCursor(s, 0)
	assert.True(t, c.Valid(), "fresh cursor should be valid")
	c.Inc()
	assert.True(t, c.Valid(), "cursor at idx1 should still be valid (chr0 has 2 records)")
	c.Inc()
	assert.True(t, !c.Valid(), "cursor at idx2 should be invalid (chr0 has only 2 records)")
}

func TestChrCursorNextFollowsChain(t *testing.T) {
	s := twoChrStore(t)
	c := NewChrCursor(s, 0)
	c.Next()
	assert.True(t, c.Valid(), "Next should land on chr1 idx0")
	assert.Equal(t, 1, c.ChrID())
	assert.Equal(t, uint32(0), c.Index())
	assert.True(t, c.IsPositiveStrand(), "strand should stay positive (no invert on this chain)")
	c.Next()
	assert.True(t, !c.Valid(), "chr1 idx0 is a chain tail; Next should invalidate the cursor")
}

func TestChrCursorPositionSign(t *testing.T) {
	s := twoChrStore(t)
	pos := NewChrCursor(s, 0)
	assert.Equal(t, int32(0), pos.Position())
	neg := newChrCursorAt(s, 0, 0, false)
	// k=1, pos=0: negative strand position is -(pos+k) = -1.
	assert.Equal(t, int32(-1), neg.Position())
}

func TestChrCursorCharStrand(t *testing.T) {
	seqs := [][]byte{[]byte("ACGTAC")}
	records := []GraphRecord{{VertexID: 1, Chr: 0, Pos: 1}}
	s := mustStore(t, 1, 10, seqs, records)

	pos := newChrCursorAt(s, 0, 0, true)
	assert.Equal(t, s.records[0][0].ch, pos.Char())
	neg := newChrCursorAt(s, 0, 0, false)
	assert.Equal(t, s.records[0][0].revCh, neg.Char())
}

func TestChrCursorEqual(t *testing.T) {
	s := twoChrStore(t)
	a := newChrCursorAt(s, 0, 1, true)
	b := newChrCursorAt(s, 0, 1, true)
	c := newChrCursorAt(s, 0, 1, false)
	assert.True(t, a.Equal(b), "identical cursors should be Equal")
	assert.True(t, !a.Equal(c), "cursors differing only in strand should not be Equal")
}
