// Package bvherrs collects the recoverable-error surface for
// bvhtraverse: sentinel errors for caller-supplied Options validation,
// and the ContractViolation type used for internal invariant panics.
// Every algorithm returning one of these sentinels MUST be checked via
// errors.Is; do not compare error strings.
package bvherrs

import "errors"

var (
	// ErrInvalidOptions is returned when a traverse.Options value fails
	// validation (NumThreads or MinTraversalsPerThread not positive).
	// Wrap with fmt.Errorf("%w: ...") for context; callers still match
	// via errors.Is.
	ErrInvalidOptions = errors.New("bvhtraverse: invalid options")

	// ErrDimensionMismatch reports that a query batch's dimensionality
	// doesn't match the BVH it's run against. No package in this module
	// returns it: the 2D and 3D entry points take distinct types, so the
	// compiler rejects such a mismatch.
	ErrDimensionMismatch = errors.New("bvhtraverse: dimension mismatch")

	// ErrEmptyLeafSet is returned when a BVH build is requested over
	// zero primitives; there is no tree to build.
	ErrEmptyLeafSet = errors.New("bvhtraverse: no leaves to build")
)

// ContractViolation marks an internal invariant broken by the caller
// rather than a recoverable runtime condition: mismatched query/BVH
// dimensionality, malformed tree metadata, or a zero-length ray
// direction with all-zero components. These are bugs in the caller,
// not conditions to recover from. The traversal core performs none of
// these checks and nothing in this module calls Panic; a malformed BVH
// surfaces only as whatever the indexing does (e.g. an index-out-of-range
// runtime panic).
type ContractViolation struct {
	Msg string
}

func (c ContractViolation) Error() string {
	return "bvhtraverse: contract violation: " + c.Msg
}

// Panic raises a ContractViolation with the given message.
func Panic(msg string) {
	panic(ContractViolation{Msg: msg})
}
