package lcb

import (
	"bufio"
	"encoding/binary"
	"io"

	farm "github.com/dgryski/go-farm"
)

// graphRecordSize is the encoded size in bytes of one stream record:
// signed vertex_id (int64), chr (uint32), pos (uint32).
const graphRecordSize = 8 + 4 + 4

// ReadGraph decodes the external graph builder's binary junction-position
// stream: a flat run of fixed (signed vertex_id, chr, pos) records in
// chromosome-major, position-major order. The stream's own length is the
// only framing — there is no record count header.
func ReadGraph(r io.Reader) ([]GraphRecord, error) {
	br := bufio.NewReaderSize(r, 1<<20)
	var records []GraphRecord
	buf := make([]byte, graphRecordSize)
	for {
		_, err := io.ReadFull(br, buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			if err == io.ErrUnexpectedEOF {
				return nil, Errorf(BadGraph, "truncated graph stream")
			}
			return nil, Errorf(IO, err, "reading graph stream")
		}
		rec := GraphRecord{
			VertexID: int64(binary.LittleEndian.Uint64(buf[0:8])),
			Chr:      binary.LittleEndian.Uint32(buf[8:12]),
			Pos:      binary.LittleEndian.Uint32(buf[12:16]),
		}
		if rec.VertexID == 0 {
			return nil, Errorf(BadGraph, "record with vertex_id == 0")
		}
		records = append(records, rec)
	}
	return records, nil
}

// abundanceShards mirrors fusion/kmer_index.go's sharded hashtable layout:
// splitting the counting structure across shards keeps any one map small,
// even though — unlike kmer_index.go — this counting pass runs
// single-threaded ahead of the worker pool, so no shard-level locking is
// needed.
const abundanceShards = 256

// FilterAbundant drops every occurrence of a vertex whose absolute id
// recurs more than threshold times across records, the mechanics behind
// the -a flag's over-abundant-junction filtering (spec'd as a loader
// responsibility, mechanics left to the implementation).
func FilterAbundant(records []GraphRecord, threshold int) []GraphRecord {
	if threshold <= 0 {
		return records
	}

	var shards [abundanceShards]map[int64]int32
	for i := range shards {
		shards[i] = make(map[int64]int32)
	}

	shardOf := func(absID int64) *map[int64]int32 {
		h := farm.Hash64WithSeed(nil, uint64(absID))
		return &shards[h%abundanceShards]
	}

	for _, r := range records {
		absID := absInt64(r.VertexID)
		m := shardOf(absID)
		(*m)[absID]++
	}

	filtered := records[:0:0]
	for _, r := range records {
		absID := absInt64(r.VertexID)
		if int((*shardOf(absID))[absID]) <= threshold {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// LoadGraph reads and abundance-filters the graph stream in one step.
func LoadGraph(r io.Reader, opts Opts) ([]GraphRecord, error) {
	records, err := ReadGraph(r)
	if err != nil {
		return nil, err
	}
	return FilterAbundant(records, opts.AbundanceThreshold), nil
}
