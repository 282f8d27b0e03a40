// Package fasta reads ordered chromosome sequences out of one or more
// FASTA files, the way lcb's graph loader needs them: not a name-keyed
// random-access index (see github.com/grailbio/bio/encoding/fasta for
// that), but a flat, load-order list — the i-th record across all files,
// in file order, becomes chromosome i.
package fasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/grailbio/base/unsafe"
	"github.com/grailbio/bio-lcb/biosimd"
	"github.com/pkg/errors"
)

const bufferInitSize = 300 * 1024 * 1024

// Chromosome is one FASTA record: its header description and its cleaned,
// uppercase nucleotide sequence.
type Chromosome struct {
	Description string
	Sequence    []byte
}

// LoadAll reads every FASTA record out of rs, in order, across all readers
// in turn (file order, then record order within a file). Sequences are
// uppercased and non-ACGT bytes mapped to 'N' via biosimd.CleanASCIISeqInplace,
// matching encoding/fasta's OptClean behavior.
func LoadAll(rs []io.Reader) ([]Chromosome, error) {
	var chrs []Chromosome
	for _, r := range rs {
		next, err := loadOne(r)
		if err != nil {
			return nil, err
		}
		chrs = append(chrs, next...)
	}
	return chrs, nil
}

func loadOne(r io.Reader) ([]Chromosome, error) {
	var chrs []Chromosome
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, bufferInitSize)

	var description string
	var seq strings.Builder
	flush := func() {
		if description == "" && seq.Len() == 0 {
			return
		}
		s := seq.String()
		b := unsafe.StringToBytes(s)
		biosimd.CleanASCIISeqInplace(b)
		chrs = append(chrs, Chromosome{Description: description, Sequence: b})
		seq.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			description = strings.Split(line[1:], " ")[0]
		} else {
			seq.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read FASTA data")
	}
	flush()

	if len(chrs) == 0 {
		return nil, errors.Errorf("empty FASTA file")
	}
	return chrs, nil
}
