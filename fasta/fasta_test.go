package fasta_test

import (
	"io"
	"strings"
	"testing"

	"github.com/grailbio/bio-lcb/fasta"
	"github.com/grailbio/testutil/assert"
)

func TestLoadAllSingleRecord(t *testing.T) {
	r := strings.NewReader(">chr1 some description\nACGT\nacgt\n")
	chrs, err := fasta.LoadAll([]io.Reader{r})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(chrs))
	assert.Equal(t, "chr1", chrs[0].Description)
	assert.Equal(t, "ACGTACGT", string(chrs[0].Sequence))
}

func TestLoadAllMultipleRecordsAndFiles(t *testing.T) {
	r1 := strings.NewReader(">a\nACGT\n>b\nTTTT\n")
	r2 := strings.NewReader(">c\nGGGG\n")
	chrs, err := fasta.LoadAll([]io.Reader{r1, r2})
	assert.NoError(t, err)
	assert.Equal(t, 3, len(chrs))
	wantDescs := []string{"a", "b", "c"}
	for i, want := range wantDescs {
		assert.Equal(t, want, chrs[i].Description)
	}
}

func TestLoadAllNonACGTBecomesN(t *testing.T) {
	r := strings.NewReader(">a\nACGTXRYZ\n")
	chrs, err := fasta.LoadAll([]io.Reader{r})
	assert.NoError(t, err)
	assert.Equal(t, "ACGTNNNN", string(chrs[0].Sequence))
}

func TestLoadAllRejectsEmptyFile(t *testing.T) {
	r := strings.NewReader("")
	_, err := fasta.LoadAll([]io.Reader{r})
	assert.True(t, err != nil, "expected an error for an empty FASTA file")
}

func TestLoadAllSkipsBlankLines(t *testing.T) {
	r := strings.NewReader(">a\nACGT\n\nTTTT\n")
	chrs, err := fasta.LoadAll([]io.Reader{r})
	assert.NoError(t, err)
	assert.Equal(t, "ACGTTTTT", string(chrs[0].Sequence))
}
