package lcb

import (
	"testing"

	"github.com/grailbio/testutil/assert"
)

func TestEmitBlockPositiveBothSides(t *testing.T) {
	inst := &Instance{chr: 1, startPos: [2]int32{0, 5}, endPos: [2]int32{10, 15}}
	rows := emitBlock(0, inst, 7, 2)

	assert.Equal(t, BlockInstance{ID: 7, Chr: 0, Start: 0, End: 12}, rows[0])
	assert.Equal(t, BlockInstance{ID: 7, Chr: 1, Start: 5, End: 17}, rows[1])
	assert.Equal(t, byte('+'), rows[0].Strand())
	assert.Equal(t, byte('+'), rows[1].Strand())
	assert.Equal(t, int64(7), rows[0].BlockID())
}

func TestEmitBlockNegativeSide(t *testing.T) {
	// Second side walked on the negative strand: its endPos/startPos are
	// negative signed positions.
	inst := &Instance{chr: 1, startPos: [2]int32{0, -20}, endPos: [2]int32{10, -10}}
	rows := emitBlock(0, inst, 3, 2)

	assert.Equal(t, int64(-3), rows[1].ID)
	assert.Equal(t, byte('-'), rows[1].Strand())
	assert.Equal(t, int64(3), rows[1].BlockID())
	// start = -end - k = 10 - 2 = 8; end = -start = 20.
	assert.Equal(t, int64(8), rows[1].Start)
	assert.Equal(t, int64(20), rows[1].End)
}

func TestBlockInstanceLength(t *testing.T) {
	b := BlockInstance{Start: 5, End: 12}
	assert.Equal(t, int64(7), b.Length())
}
