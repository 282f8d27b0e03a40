package lcb

// vertexEntry is the per-vertex record pushed onto a Sweeper's purge deque
// each time the reference cursor visits a new junction. It doubles as the
// vertexTable's payload: a pointer to one of these is what vertex_table
// cells hold. Mirrors path.h's VertexEntry plus sweeper.h's purge element.
type vertexEntry struct {
	vertexID   int64
	pointerIdx uint32
	bucket     []Instance
}

// vertexTable maps vertex id -> currently open bucket whose "other
// endpoint" sits on that vertex, split into positive/negative halves so a
// vertex id and its negation never collide. One table per worker.
type vertexTable struct {
	pos []*vertexEntry
	neg []*vertexEntry
}

// newVertexTable allocates a table sized for every vertex id the store can
// produce.
func newVertexTable(maxVertexID int64) *vertexTable {
	return &vertexTable{
		pos: make([]*vertexEntry, maxVertexID+1),
		neg: make([]*vertexEntry, maxVertexID+1),
	}
}

// push registers e at its vertex id's slot (NotifyPush in sweeper.h).
func (t *vertexTable) push(e *vertexEntry) {
	if e.vertexID > 0 {
		t.pos[e.vertexID] = e
	} else {
		t.neg[-e.vertexID] = e
	}
}

// pop clears e's slot, but only if it still points at e — a later push may
// already have replaced it (NotifyPop in sweeper.h).
func (t *vertexTable) pop(e *vertexEntry) {
	if e.vertexID > 0 {
		if t.pos[e.vertexID] == e {
			t.pos[e.vertexID] = nil
		}
	} else {
		if t.neg[-e.vertexID] == e {
			t.neg[-e.vertexID] = nil
		}
	}
}

// magicIndex resolves a chromosome occurrence to its live Instance, if any,
// via the pointer-index arithmetic described in spec §4.4: the vertex's
// open bucket plus the occurrence's position in the chain tells us exactly
// which slot of the bucket (if any) holds it, in O(1).
func (t *vertexTable) magicIndex(store *JunctionStore, chr int, idx uint32, negate bool) *Instance {
	v := store.VertexAt(chr, idx)
	if negate {
		v = -v
	}

	var e *vertexEntry
	if v > 0 {
		e = t.pos[v]
	} else {
		e = t.neg[-v]
	}
	if e == nil {
		return nil
	}

	ptrIdx := int64(store.PointerIndex(chr, idx))
	offset := ptrIdx - int64(e.pointerIdx) - 1
	if offset >= 0 && offset < int64(len(e.bucket)) {
		return &e.bucket[offset]
	}
	return nil
}
