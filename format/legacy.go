package format

import (
	"context"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
)

// SeqInfo is one row of the legacy index's chromosome header section.
type SeqInfo struct {
	ID          int
	Description string
}

// WriteLegacy writes the legacy multi-section text index: a chromosome
// header section, a blank line and "--------" divider, then the block
// section sorted by block id then chromosome. Shape inferred from
// blocksfinder.h's ListChrs/OutputIndex/OutputBlocks trio (spec.md leaves
// the legacy format's sections unspecified).
func WriteLegacy(ctx context.Context, path string, seqs []SeqInfo, blocks []Block) (err error) {
	sorted := make([]Block, len(blocks))
	copy(sorted, blocks)
	sortBlocks(sorted)

	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)

	w := tsv.NewWriter(out.Writer(ctx))
	w.WriteString("Seq_id")
	w.WriteString("Description")
	if err = w.EndLine(); err != nil {
		return err
	}
	for _, s := range seqs {
		w.WriteString(strconv.Itoa(s.ID))
		w.WriteString(s.Description)
		if err = w.EndLine(); err != nil {
			return err
		}
	}
	if err = w.EndLine(); err != nil {
		return err
	}
	w.WriteString("--------")
	if err = w.EndLine(); err != nil {
		return err
	}

	w.WriteString("Block_id")
	w.WriteString("Chr_id")
	w.WriteString("Strand")
	w.WriteString("Start")
	w.WriteString("End")
	w.WriteString("Length")
	if err = w.EndLine(); err != nil {
		return err
	}
	for _, b := range sorted {
		w.WriteString(strconv.FormatInt(b.ID, 10))
		w.WriteString(strconv.Itoa(b.Chr))
		w.WriteByte(b.Strand)
		w.WriteString(strconv.FormatInt(b.Start, 10))
		w.WriteString(strconv.FormatInt(b.End, 10))
		w.WriteString(strconv.FormatInt(b.End-b.Start+1, 10))
		if err = w.EndLine(); err != nil {
			return err
		}
	}
	return w.Flush()
}
