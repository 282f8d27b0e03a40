package lcb

// ChrCursor is a forward-only iterator over one chromosome's junction
// occurrences. It can also jump, via Next, to the next occurrence of the
// same vertex anywhere in the dataset — possibly a different chromosome,
// possibly with the strand flipped. Mirrors junctionstorage.h's Iterator.
type ChrCursor struct {
	store    *JunctionStore
	chr      int
	idx      uint32
	positive bool
}

// invalidChr marks a cursor that has walked off the end of its vertex chain.
const invalidChr = -1

// NewChrCursor returns a cursor positioned at the first junction of chr.
func NewChrCursor(store *JunctionStore, chr int) ChrCursor {
	return ChrCursor{store: store, chr: chr, idx: 0, positive: true}
}

// newChrCursorAt returns a cursor positioned at an arbitrary (chr, idx).
func newChrCursorAt(store *JunctionStore, chr int, idx uint32, positive bool) ChrCursor {
	return ChrCursor{store: store, chr: chr, idx: idx, positive: positive}
}

// Valid reports whether the cursor still refers to a real junction.
func (c ChrCursor) Valid() bool {
	return c.chr != invalidChr && c.chr < c.store.ChrCount() && int(c.idx) < c.store.ChrSize(c.chr)
}

// Inc advances by one junction along the current chromosome, independent of
// strand — this is the reference-chromosome walk's step, never the "follow
// the vertex chain" jump.
func (c *ChrCursor) Inc() {
	c.idx++
}

// DecInSequence moves to the previous junction in sequence order; on the
// negative strand "previous in sequence" is the next array index.
func (c *ChrCursor) DecInSequence() {
	if c.positive {
		c.idx--
	} else {
		c.idx++
	}
}

// Next follows the chain to the same vertex's subsequent occurrence. The
// cursor becomes invalid if no chain link exists.
func (c *ChrCursor) Next() {
	rec := &c.store.records[c.chr][c.idx]
	if rec.nextIdx == noNext {
		c.chr = invalidChr
		return
	}
	if rec.invert {
		c.positive = !c.positive
	}
	c.idx = rec.nextIdx
	c.chr = int(rec.nextChr)
}

// ChrID returns the chromosome the cursor currently sits on.
func (c ChrCursor) ChrID() int { return c.chr }

// Index returns the cursor's array index within its chromosome.
func (c ChrCursor) Index() uint32 { return c.idx }

// IsPositiveStrand reports the cursor's current strand.
func (c ChrCursor) IsPositiveStrand() bool { return c.positive }

// PointerIndex returns the chain ordinal of the cursor's current position.
func (c ChrCursor) PointerIndex() uint32 {
	return c.store.PointerIndex(c.chr, c.idx)
}

// VertexID returns the signed vertex id at the cursor, negated for the
// negative strand.
func (c ChrCursor) VertexID() int64 {
	v := c.store.VertexAt(c.chr, c.idx)
	if !c.positive {
		return -v
	}
	return v
}

// Position returns the signed genomic position: the raw pos on the
// positive strand, or -(pos+k) on the negative strand.
func (c ChrCursor) Position() int32 {
	pos := int32(c.store.records[c.chr][c.idx].pos)
	if c.positive {
		return pos
	}
	return -(pos + int32(c.store.k))
}

// PreviousPosition returns the signed position of the adjacent junction in
// sequence order, without moving the cursor.
func (c ChrCursor) PreviousPosition() int32 {
	if c.positive {
		return int32(c.store.records[c.chr][c.idx-1].pos)
	}
	return -(int32(c.store.records[c.chr][c.idx+1].pos) + int32(c.store.k))
}

// Char returns ch on the positive strand, revCh on the negative strand.
func (c ChrCursor) Char() byte {
	rec := &c.store.records[c.chr][c.idx]
	if c.positive {
		return rec.ch
	}
	return rec.revCh
}

// Equal compares (chr, idx, strand) — cursors are equal iff they name the
// same junction occurrence under the same strand.
func (c ChrCursor) Equal(o ChrCursor) bool {
	return c.chr == o.chr && c.idx == o.idx && c.positive == o.positive
}
