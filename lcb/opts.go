package lcb

// Opts holds the tunable parameters of the sweep. Field names mirror the
// CLI flags in cmd/bio-lcb (-k, -m, -b, -a, -t).
type Opts struct {
	// KmerLength is the length of the k-mer used to build the junction graph.
	// Must be odd; junction positions and char/revChar annotations are offset
	// by exactly this many bases.
	KmerLength int

	// MinBlockSize (M) is the minimum length, on both sides, an instance must
	// reach before it is allowed to be emitted as a block.
	MinBlockSize int

	// MaxBranchSize (B) is the maximum positional gap tolerated inside a
	// bubble, and the purge threshold: an instance that hasn't been extended
	// within this many reference bases of its last extension is retired.
	MaxBranchSize int

	// AbundanceThreshold (A) caps how many times a vertex may occur across
	// the dataset before the graph loader discards every occurrence of it.
	// Over-abundant junctions are almost always repeats, and keeping them
	// would blow up the sweep's branching factor for no benefit.
	AbundanceThreshold int

	// Threads is the number of worker goroutines driving the sweep. Each
	// worker claims and fully processes one reference chromosome at a time.
	Threads int
}

// DefaultOpts mirrors the BubbZ-LCB command line defaults.
var DefaultOpts = Opts{
	KmerLength:         25,
	MinBlockSize:       50,
	MaxBranchSize:      200,
	AbundanceThreshold: 150,
	Threads:            1,
}
