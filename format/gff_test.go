package format_test

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/bio-lcb/format"
	"github.com/grailbio/testutil/assert"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	assert.NoError(t, scanner.Err())
	return lines
}

func TestWriteGFFSortsByIDThenChromosome(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "blocks_coords.gff")

	blocks := []format.Block{
		{ID: 2, Chr: 0, Description: "chr0", Start: 1, End: 10, Strand: '+'},
		{ID: 1, Chr: 1, Description: "chr1", Start: 5, End: 8, Strand: '-'},
		{ID: 1, Chr: 0, Description: "chr0", Start: 1, End: 4, Strand: '+'},
	}
	assert.NoError(t, format.WriteGFF(ctx, path, blocks))

	lines := readLines(t, path)
	assert.Equal(t, 3, len(lines))
	// Sorted by id then chromosome: (1,chr0), (1,chr1), (2,chr0).
	assert.True(t, strings.HasPrefix(lines[0], "chr0\t.\tblock\t1\t4\t.\t+\t.\tid=1"), "lines[0] = %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "chr1\t.\tblock\t5\t8\t.\t-\t.\tid=1"), "lines[1] = %q", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "chr0\t.\tblock\t1\t10\t.\t+\t.\tid=2"), "lines[2] = %q", lines[2])
}

func TestWriteGFFEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.gff")
	assert.NoError(t, format.WriteGFF(ctx, path, nil))
	assert.Equal(t, 0, len(readLines(t, path)))
}
