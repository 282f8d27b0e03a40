package lcb

import (
	"testing"

	"github.com/grailbio/testutil/assert"
)

func TestVertexTablePushPop(t *testing.T) {
	table := newVertexTable(5)
	e := &vertexEntry{vertexID: 3, pointerIdx: 0, bucket: []Instance{{}}}
	table.push(e)
	assert.True(t, table.pos[3] == e, "push should register entry at pos[vertexID]")

	table.pop(e)
	assert.True(t, table.pos[3] == nil, "pop should clear the slot it still owns")
}

func TestVertexTablePopIgnoresStaleEntry(t *testing.T) {
	table := newVertexTable(5)
	e1 := &vertexEntry{vertexID: 3, bucket: []Instance{{}}}
	e2 := &vertexEntry{vertexID: 3, bucket: []Instance{{}}}
	table.push(e1)
	table.push(e2) // e2 replaces e1 at pos[3]

	table.pop(e1) // stale; must not clear e2's slot
	assert.True(t, table.pos[3] == e2, "pop of a superseded entry must not clear the current occupant")
}

func TestVertexTableNegativeVertex(t *testing.T) {
	table := newVertexTable(5)
	e := &vertexEntry{vertexID: -3, bucket: []Instance{{}}}
	table.push(e)
	assert.True(t, table.neg[3] == e, "negative vertex ids should land in the neg half")
	table.pop(e)
	assert.True(t, table.neg[3] == nil, "pop should clear the neg slot")
}

func TestVertexTableMagicIndex(t *testing.T) {
	s := twoChrStore(t)
	table := newVertexTable(s.MaxVertexID())

	// vertex 2 occurs at chr0 idx0 (pointerIdx 0) and chr1 idx0 (pointerIdx 1).
	e := &vertexEntry{vertexID: 2, pointerIdx: 0, bucket: []Instance{{score: 1}}}
	table.push(e)

	got := table.magicIndex(s, 1, 0, false)
	assert.True(t, got != nil, "magicIndex should resolve chr1 idx0 to the pushed bucket's single instance")
	assert.True(t, got == &e.bucket[0], "magicIndex should return a pointer into the entry's own bucket")

	// An occurrence with no corresponding live entry (e.g. vertex 3, never
	// pushed) must resolve to nil rather than panicking.
	assert.True(t, table.magicIndex(s, 1, 1, false) == nil, "magicIndex should return nil when no entry is registered for the vertex")
}

func TestVertexTableMagicIndexOutOfRangeOffset(t *testing.T) {
	s := twoChrStore(t)
	table := newVertexTable(s.MaxVertexID())

	// chr1 idx0 has pointerIdx 1, the entry pointerIdx 0: offset computes to
	// 0, which is out of range for an empty bucket.
	e := &vertexEntry{vertexID: 2, pointerIdx: 0, bucket: nil}
	table.push(e)
	assert.True(t, table.magicIndex(s, 1, 0, false) == nil, "magicIndex must bounds-check and return nil on an out-of-range offset")
}
