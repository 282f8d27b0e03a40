package lcb

// Instance is a currently open pair of synchronized walks — one junction
// per chromosome, extended in lock-step as the sweep advances. Mirrors
// path.h's Instance, minus the packed-signed-chrId trick C++ used to avoid
// a second field: Go just keeps chr and strand separately.
type Instance struct {
	hasNext bool
	score   uint32

	// idx/chr/strand locate the "other" endpoint — the junction on the
	// non-reference chromosome this instance is currently anchored to.
	idx    uint32
	chr    int
	strand bool

	startPos [2]int32
	endPos   [2]int32

	// parallelEnd is the fast-path guard for exact continuation: it records
	// whether the two endpoints' characters matched on the last extension.
	parallelEnd bool
}

// newInstance opens a fresh singleton instance anchored at (it, jt).
func newInstance(it, jt ChrCursor) Instance {
	pos0, pos1 := it.Position(), jt.Position()
	return Instance{
		score:       1,
		idx:         jt.Index(),
		chr:         jt.ChrID(),
		strand:      jt.IsPositiveStrand(),
		startPos:    [2]int32{pos0, pos1},
		endPos:      [2]int32{pos0, pos1},
		parallelEnd: it.Char() == jt.Char(),
	}
}

// extendInstance produces the next generation of prev, extended to (it, jt)
// with the given score. prev.hasNext is set by the caller before this runs.
func extendInstance(prev *Instance, it, jt ChrCursor, newScore uint32) Instance {
	return Instance{
		score:       newScore,
		idx:         jt.Index(),
		chr:         jt.ChrID(),
		strand:      jt.IsPositiveStrand(),
		startPos:    prev.startPos,
		endPos:      [2]int32{it.Position(), jt.Position()},
		parallelEnd: it.Char() == jt.Char(),
	}
}

// Valid reports whether both sides of the instance reach the minimum block
// size — the emission gate.
func (i *Instance) Valid(minBlockSize int) bool {
	for l := 0; l < 2; l++ {
		if absInt32(i.endPos[l]-i.startPos[l]) < int32(minBlockSize) {
			return false
		}
	}
	return true
}

// IsPositiveStrand reports the strand of the instance's second endpoint.
// Reads the strand field directly rather than re-deriving it from endPos[1]'s
// sign, which is ambiguous at position 0 on the positive strand.
func (i *Instance) IsPositiveStrand() bool { return i.strand }

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// overlapGuard implements the "self-overlap guard" shared by both
// compatibility checks: reject when both successors land on the same
// chromosome and the candidate instance's projected second-side interval
// overlaps its own first-side interval.
func overlapGuard(inst *Instance, succ [2]ChrCursor) bool {
	if succ[0].ChrID() != succ[1].ChrID() {
		return false
	}
	start1 := absInt32(inst.startPos[1])
	end1 := absInt32(inst.endPos[1])
	if start1 > end1 {
		start1, end1 = end1, start1
	}
	if start1 >= inst.startPos[0] && start1 <= inst.endPos[0] {
		return true
	}
	if inst.startPos[0] >= start1 && inst.startPos[0] <= end1 {
		return true
	}
	return false
}

// compatibleBubble is the "within bubble" compatibility test used by
// retrieveBest: both sides' gaps must stay under maxBranchSize, and the
// self-overlap guard must pass. Returns 1 on success, 0 on rejection —
// exactly the gap-score path.h's Compatible returns.
func compatibleBubble(inst *Instance, succ [2]ChrCursor, maxBranchSize int32) uint32 {
	for l := 0; l < 2; l++ {
		if absInt32(inst.endPos[l]-succ[l].Position()) >= maxBranchSize {
			return 0
		}
	}
	if overlapGuard(inst, succ) {
		return 0
	}
	return 1
}

// compatibleExact is the overlap-guard-only check used by the exact
// continuation fast path: no bubble bound, score increment is the
// reference-side gap itself (so a longer exact run scores higher).
func compatibleExact(inst *Instance, succ [2]ChrCursor) uint32 {
	if overlapGuard(inst, succ) {
		return 0
	}
	return uint32(absInt32(inst.endPos[0] - succ[0].Position()))
}
