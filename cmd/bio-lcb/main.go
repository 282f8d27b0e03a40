package main

// bio-lcb finds locally collinear blocks (LCBs) across a set of
// chromosomes, given a pre-built junction graph.
//
// Usage: bio-lcb --graph <file> [flags] <fasta...>

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bio-lcb/fasta"
	"github.com/grailbio/bio-lcb/format"
	"github.com/grailbio/bio-lcb/lcb"
)

func usage() {
	fmt.Fprintln(os.Stderr, `
bio-lcb finds locally collinear blocks across a set of chromosomes, given a
junction graph produced by an external graph builder.

Usage:
  bio-lcb --graph <graph-file> [flags] <fasta...>

  Required Arguments:
    --graph <file>   Binary junction graph stream.
    <fasta...>        One or more FASTA files; records become chromosomes
                       in file order.
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage

	graphFlag := flag.String("graph", "", "Binary junction graph file (required).")
	outDirFlag := flag.String("o", ".", "Output directory.")
	legacyFlag := flag.Bool("legacy", false, "Also emit the legacy blocks_coords.txt index.")
	kFlag := flag.Int("k", lcb.DefaultOpts.KmerLength, "Junction k-mer length (must be odd).")
	mFlag := flag.Int("m", lcb.DefaultOpts.MinBlockSize, "Minimum block size.")
	bFlag := flag.Int("b", lcb.DefaultOpts.MaxBranchSize, "Maximum branch (bubble) size.")
	aFlag := flag.Int("a", lcb.DefaultOpts.AbundanceThreshold, "Abundance threshold; junctions recurring more than this are dropped.")
	tFlag := flag.Int("t", lcb.DefaultOpts.Threads, "Number of worker threads.")

	shutdown := grail.Init()
	defer shutdown()
	ctx := vcontext.Background()

	opts := lcb.Opts{
		KmerLength:         *kFlag,
		MinBlockSize:       *mFlag,
		MaxBranchSize:      *bFlag,
		AbundanceThreshold: *aFlag,
		Threads:            *tFlag,
	}

	if err := run(ctx, *graphFlag, flag.Args(), *outDirFlag, *legacyFlag, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, graphPath string, fastaPaths []string, outDir string, legacy bool, opts lcb.Opts) error {
	if graphPath == "" {
		return lcb.Errorf(lcb.BadArg, "--graph is required")
	}
	if len(fastaPaths) == 0 {
		return lcb.Errorf(lcb.BadArg, "at least one FASTA file is required")
	}

	t0 := time.Now()
	log.Printf("Loading the graph...")
	records, chrs, err := loadInputs(ctx, graphPath, fastaPaths, opts)
	if err != nil {
		return err
	}
	sequences := make([][]byte, len(chrs))
	descriptions := make([]string, len(chrs))
	for i, c := range chrs {
		sequences[i] = c.Sequence
		descriptions[i] = c.Description
	}
	store, err := lcb.NewJunctionStore(opts.KmerLength, opts.AbundanceThreshold, descriptions, sequences, records)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d chromosomes, %d junction records in %s", store.ChrCount(), len(records), time.Since(t0))

	t1 := time.Now()
	log.Printf("Analyzing the graph...")
	blocks, err := lcb.Run(store, opts)
	if err != nil {
		return err
	}
	log.Printf("Found %d block rows in %s", len(blocks), time.Since(t1))

	t2 := time.Now()
	log.Printf("Generating the output...")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return lcb.Errorf(lcb.IO, err, "creating output directory", outDir)
	}
	if err := writeOutputs(ctx, outDir, legacy, store, blocks); err != nil {
		return err
	}
	log.Printf("Wrote output in %s", time.Since(t2))
	return nil
}

func loadInputs(ctx context.Context, graphPath string, fastaPaths []string, opts lcb.Opts) ([]lcb.GraphRecord, []fasta.Chromosome, error) {
	gf, err := file.Open(ctx, graphPath)
	if err != nil {
		return nil, nil, lcb.Errorf(lcb.IO, err, "opening graph file", graphPath)
	}
	defer gf.Close(ctx)

	records, err := lcb.LoadGraph(gf.Reader(ctx), opts)
	if err != nil {
		return nil, nil, err
	}

	files := make([]file.File, len(fastaPaths))
	readers := make([]io.Reader, len(fastaPaths))
	for i, p := range fastaPaths {
		f, err := file.Open(ctx, p)
		if err != nil {
			return nil, nil, lcb.Errorf(lcb.IO, err, "opening FASTA file", p)
		}
		files[i] = f
		readers[i] = f.Reader(ctx)
	}
	defer func() {
		for _, f := range files {
			f.Close(ctx)
		}
	}()

	chrs, err := fasta.LoadAll(readers)
	if err != nil {
		return nil, nil, lcb.Errorf(lcb.IO, err, "reading FASTA input")
	}
	return records, chrs, nil
}

func writeOutputs(ctx context.Context, outDir string, legacy bool, store *lcb.JunctionStore, rows []lcb.BlockInstance) error {
	blocks := make([]format.Block, len(rows))
	for i, r := range rows {
		blocks[i] = format.Block{
			ID:          r.BlockID(),
			Chr:         r.Chr,
			Description: store.ChrDescription(r.Chr),
			Start:       r.Start + 1, // 0-based half-open -> 1-based inclusive
			End:         r.End,
			Strand:      r.Strand(),
		}
	}

	gffPath := filepath.Join(outDir, "blocks_coords.gff")
	if err := format.WriteGFF(ctx, gffPath, blocks); err != nil {
		return lcb.Errorf(lcb.IO, err, "writing", gffPath)
	}

	if legacy {
		seqs := make([]format.SeqInfo, store.ChrCount())
		for i := 0; i < store.ChrCount(); i++ {
			seqs[i] = format.SeqInfo{ID: i, Description: store.ChrDescription(i)}
		}
		txtPath := filepath.Join(outDir, "blocks_coords.txt")
		if err := format.WriteLegacy(ctx, txtPath, seqs, blocks); err != nil {
			return lcb.Errorf(lcb.IO, err, "writing", txtPath)
		}
	}
	return nil
}
