package lcb

import (
	"fmt"

	"github.com/grailbio/bio-lcb/biosimd"
)

// noNext marks a junction record with no successor in its vertex's chain.
const noNext = ^uint32(0)

// junctionRecord is one occurrence of a vertex on a chromosome. Field names
// mirror BubbZ's junctionstorage.h Position struct.
type junctionRecord struct {
	pos        uint32
	vertexID   int64
	ch         byte
	revCh      byte
	nextChr    int32
	nextIdx    uint32
	invert     bool
	pointerIdx uint32
}

// GraphRecord is one record of the external graph builder's binary stream:
// a signed vertex id occurring at (chr, pos). vertex_id == 0 is forbidden.
type GraphRecord struct {
	VertexID int64
	Chr      uint32
	Pos      uint32
}

// JunctionStore owns, per chromosome, the ordered array of junction
// occurrences plus the chain pointers linking successive occurrences of the
// same vertex anywhere in the dataset. It is built once by the graph loader
// and is immutable for the rest of the run — workers only read it.
type JunctionStore struct {
	k           int
	abundance   int
	maxVertexID int64
	description []string
	chrSeqSize  []int
	records     [][]junctionRecord
}

type prevOccurrence struct {
	vertexID int64
	chr      uint32
	idx      uint32
}

// NewJunctionStore builds a JunctionStore from records in chromosome-major,
// position-major arrival order (the contract the graph builder's stream
// honors), plus the raw nucleotide sequence of every chromosome the records
// reference. Records whose vertex id is 0 are rejected.
func NewJunctionStore(k, abundance int, description []string, sequence [][]byte, records []GraphRecord) (*JunctionStore, error) {
	s := &JunctionStore{
		k:           k,
		abundance:   abundance,
		description: description,
		chrSeqSize:  make([]int, len(sequence)),
		records:     make([][]junctionRecord, len(sequence)),
	}
	for i, seq := range sequence {
		s.chrSeqSize[i] = len(seq)
	}

	var prev []prevOccurrence // indexed by abs(vertexID)
	for _, r := range records {
		if r.VertexID == 0 {
			return nil, Errorf(BadGraph, fmt.Sprintf("record with vertex_id == 0 at chr %d pos %d", r.Chr, r.Pos))
		}
		if int(r.Chr) >= len(sequence) {
			return nil, Errorf(BadGraph, fmt.Sprintf("record references unknown chromosome %d", r.Chr))
		}
		seq := sequence[r.Chr]
		if int(r.Pos)+s.k > len(seq) {
			return nil, Errorf(BadGraph, fmt.Sprintf("record position %d+k exceeds chromosome %d length %d", r.Pos, r.Chr, len(seq)))
		}

		rec := junctionRecord{
			pos:      r.Pos,
			vertexID: r.VertexID,
			nextIdx:  noNext,
		}
		if next := int(r.Pos) + s.k; next < len(seq) {
			rec.ch = seq[next]
		} else {
			rec.ch = 'N'
		}
		if r.Pos > 0 {
			rec.revCh = complementBase(seq[r.Pos-1])
		} else {
			rec.revCh = 'N'
		}

		absID := absInt64(r.VertexID)
		if absID > s.maxVertexID {
			s.maxVertexID = absID
		}
		if int(absID) >= len(prev) {
			grown := make([]prevOccurrence, absID+1)
			copy(grown, prev)
			prev = grown
		}

		s.records[r.Chr] = append(s.records[r.Chr], rec)
		newIdx := uint32(len(s.records[r.Chr]) - 1)

		p := prev[absID]
		if p.vertexID != 0 {
			prevRec := &s.records[p.chr][p.idx]
			prevRec.nextChr = int32(r.Chr)
			prevRec.nextIdx = newIdx
			prevRec.invert = p.vertexID != r.VertexID
			s.records[r.Chr][newIdx].pointerIdx = prevRec.pointerIdx + 1
		} else {
			s.records[r.Chr][newIdx].pointerIdx = 0
		}

		prev[absID] = prevOccurrence{vertexID: r.VertexID, chr: r.Chr, idx: newIdx}
	}

	return s, nil
}

func complementBase(b byte) byte {
	var dst [1]byte
	src := [1]byte{b}
	biosimd.ReverseComp8NoValidate(dst[:], src[:])
	return dst[0]
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// ChrCount returns the number of chromosomes in the store.
func (s *JunctionStore) ChrCount() int { return len(s.records) }

// ChrSize returns the number of junction occurrences recorded for chr.
func (s *JunctionStore) ChrSize(chr int) int { return len(s.records[chr]) }

// ChrSeqSize returns the raw nucleotide length of chr's sequence.
func (s *JunctionStore) ChrSeqSize(chr int) int { return s.chrSeqSize[chr] }

// ChrDescription returns the FASTA header recorded for chr.
func (s *JunctionStore) ChrDescription(chr int) string { return s.description[chr] }

// MaxVertexID returns the largest absolute vertex id seen during loading.
func (s *JunctionStore) MaxVertexID() int64 { return s.maxVertexID }

// VertexAt returns the signed vertex id as recorded at (chr, idx), with no
// strand adjustment.
func (s *JunctionStore) VertexAt(chr int, idx uint32) int64 {
	return s.records[chr][idx].vertexID
}

// PointerIndex returns the chain ordinal of occurrence (chr, idx).
func (s *JunctionStore) PointerIndex(chr int, idx uint32) uint32 {
	return s.records[chr][idx].pointerIdx
}

// K returns the k-mer length the graph was built with.
func (s *JunctionStore) K() int { return s.k }

// Abundance returns the abundance threshold the loader applied; the
// Sweeper uses it only to size its bucket pool's pre-reserved capacity.
func (s *JunctionStore) Abundance() int { return s.abundance }
