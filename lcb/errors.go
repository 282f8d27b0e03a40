package lcb

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Kind classifies a lcb error for callers that want to branch on it (the
// CLI itself exits with status 1 for every kind). The corpus's own errors.E doesn't
// attest a stable Kind taxonomy we can reuse, so this package keeps its own.
type Kind int

const (
	// Internal indicates a bug: an invariant the sweep itself is supposed to
	// maintain was violated.
	Internal Kind = iota
	// BadArg indicates a caller supplied an Opts value or argument list the
	// package can't act on (e.g. an even KmerLength).
	BadArg
	// IO indicates a failure reading or writing one of the package's inputs
	// or outputs (FASTA files, the graph stream, emitted blocks).
	IO
	// BadGraph indicates the binary junction stream was malformed or
	// inconsistent with the FASTA files it's supposed to describe.
	BadGraph
)

func (k Kind) String() string {
	switch k {
	case BadArg:
		return "bad argument"
	case IO:
		return "io"
	case BadGraph:
		return "bad graph"
	default:
		return "internal"
	}
}

// kindError wraps errors.E with a Kind so errors.As-free callers can still
// switch on ErrorKind(err) without parsing message text.
type kindError struct {
	kind Kind
	err  error
}

func (e *kindError) Error() string { return e.err.Error() }
func (e *kindError) Unwrap() error { return e.err }

// Errorf builds a Kind-tagged error the way errors.E builds an untagged one:
// args are handed straight to errors.E, which knows how to fold in a wrapped
// error and message strings. errors.E does no format-verb expansion, so
// callers format messages with fmt.Sprintf first.
func Errorf(kind Kind, args ...interface{}) error {
	return &kindError{kind: kind, err: errors.E(args...)}
}

// ErrorKind returns the Kind an Errorf-constructed error was tagged with, or
// Internal if err wasn't built by this package (so callers always get a
// sensible default instead of having to nil-check).
func ErrorKind(err error) Kind {
	if ke, ok := err.(*kindError); ok {
		return ke.kind
	}
	return Internal
}

// checkOpts validates the fields a caller is expected to set explicitly.
// Zero values are not replaced by DefaultOpts: a zero MinBlockSize,
// MaxBranchSize or Threads is rejected like any other non-positive value.
func checkOpts(o Opts) error {
	if o.KmerLength <= 0 || o.KmerLength%2 == 0 {
		return Errorf(BadArg, fmt.Sprintf("KmerLength must be positive and odd, got %d", o.KmerLength))
	}
	if o.MinBlockSize <= 0 {
		return Errorf(BadArg, fmt.Sprintf("MinBlockSize must be positive, got %d", o.MinBlockSize))
	}
	if o.MaxBranchSize <= 0 {
		return Errorf(BadArg, fmt.Sprintf("MaxBranchSize must be positive, got %d", o.MaxBranchSize))
	}
	if o.Threads <= 0 {
		return Errorf(BadArg, fmt.Sprintf("Threads must be positive, got %d", o.Threads))
	}
	return nil
}
