// Package editdist defines the cost policy and error definitions shared by
// the edit-distance kernel and the metrics built on top of it.
package editdist

import "errors"

// ErrNegativeCost is returned when an Options value carries a negative
// operation cost. Distances are minimum sums of non-negative step costs;
// a negative cost would make the recurrence unbounded below.
var ErrNegativeCost = errors.New("editdist: operation costs must be non-negative")

// DefaultCost is the unit cost assigned to every edit operation by
// DefaultOptions. All classic metrics in this package use it.
const DefaultCost = 1

// Options configures the generic edit-distance kernel.
//
// Fields:
//   - InsertCost     — cost of inserting one token of b.
//   - DeleteCost     — cost of deleting one token of a.
//   - SubstituteCost — cost of replacing a token of a with a token of b.
//     Equal tokens always cost 0; this is the mismatch price.
//   - TransposeCost  — cost of swapping two adjacent tokens. Consulted only
//     when Transpositions is true.
//   - Transpositions — enable the adjacent-transposition step. With it the
//     kernel computes the optimal-string-alignment distance: no substring
//     is edited more than once, so transposed pairs cannot be touched again.
//
// All costs must be ≥ 0; zero is allowed and makes the operation free.
type Options struct {
	InsertCost     int
	DeleteCost     int
	SubstituteCost int
	TransposeCost  int
	Transpositions bool
}

// DefaultOptions returns the unit-cost policy with transpositions disabled —
// the exact configuration of the classic Levenshtein distance.
func DefaultOptions() Options {
	return Options{
		InsertCost:     DefaultCost,
		DeleteCost:     DefaultCost,
		SubstituteCost: DefaultCost,
		TransposeCost:  DefaultCost,
		Transpositions: false,
	}
}

// validate reports whether every cost in o is non-negative.
func (o Options) validate() error {
	if o.InsertCost < 0 || o.DeleteCost < 0 || o.SubstituteCost < 0 || o.TransposeCost < 0 {
		return ErrNegativeCost
	}

	return nil
}
