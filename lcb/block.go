package lcb

// BlockInstance is one row of a terminated, emitted block: a signed,
// half-open interval on a chromosome. Two rows share the same |ID| — one
// per side of the pair the Sweeper matched. Mirrors sweeper.h's
// BlockInstance.
type BlockInstance struct {
	ID    int64
	Chr   int
	Start int64
	End   int64
}

// BlockID returns the unsigned block identifier shared by both rows of a
// pair.
func (b BlockInstance) BlockID() int64 {
	if b.ID < 0 {
		return -b.ID
	}
	return b.ID
}

// Strand reports the row's strand: '+' for a non-negative ID, '-' otherwise.
func (b BlockInstance) Strand() byte {
	if b.ID >= 0 {
		return '+'
	}
	return '-'
}

// Length returns the row's half-open interval length.
func (b BlockInstance) Length() int64 { return b.End - b.Start }

// emitBlock converts a terminated instance into its two BlockInstance rows.
// refChr is the reference chromosome the owning Sweeper walked; the other
// row's chromosome is the instance's own endpoint chromosome. Mirrors
// sweeper.h's ReportBlock.
func emitBlock(refChr int, inst *Instance, blockID int64, k int) [2]BlockInstance {
	chr := [2]int{refChr, inst.chr}
	var rows [2]BlockInstance
	for l := 0; l < 2; l++ {
		end := inst.endPos[l]
		start := inst.startPos[l]
		if end >= 0 {
			rows[l] = BlockInstance{ID: blockID, Chr: chr[l], Start: int64(start), End: int64(end) + int64(k)}
		} else {
			rows[l] = BlockInstance{ID: -blockID, Chr: chr[l], Start: int64(-end) - int64(k), End: int64(-start)}
		}
	}
	return rows
}
