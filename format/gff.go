// Package format serializes a finished block list to the two on-disk
// output formats: GFF3-flavored feature rows and the legacy multi-section
// text index.
package format

import (
	"context"
	"sort"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
)

// Block is one emitted row, ready for serialization: a single side of a
// block pair, already converted to 1-based inclusive coordinates.
type Block struct {
	ID          int64 // unsigned block id shared by both sides
	Chr         int
	Description string // chromosome description, used as GFF seqid
	Start       int64  // 1-based, inclusive
	End         int64  // 1-based, inclusive
	Strand      byte   // '+' or '-'
}

func sortBlocks(blocks []Block) {
	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].ID != blocks[j].ID {
			return blocks[i].ID < blocks[j].ID
		}
		return blocks[i].Chr < blocks[j].Chr
	})
}

// WriteGFF writes one GFF feature line per block, sorted by block id then
// chromosome so runs are reproducible even though id assignment across
// workers is not. Mirrors blocksfinder.h's GroupBy/compareById bucketing.
func WriteGFF(ctx context.Context, path string, blocks []Block) (err error) {
	sorted := make([]Block, len(blocks))
	copy(sorted, blocks)
	sortBlocks(sorted)

	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)

	w := tsv.NewWriter(out.Writer(ctx))
	for _, b := range sorted {
		w.WriteString(b.Description)           // seqid
		w.WriteString(".")                      // source
		w.WriteString("block")                  // type
		w.WriteString(strconv.FormatInt(b.Start, 10))
		w.WriteString(strconv.FormatInt(b.End, 10))
		w.WriteString(".") // score
		w.WriteByte(b.Strand)
		w.WriteString(".") // frame
		w.WriteString(attrID(b.ID))
		if err = w.EndLine(); err != nil {
			return err
		}
	}
	return w.Flush()
}

func attrID(id int64) string {
	return "id=" + strconv.FormatInt(id, 10)
}
