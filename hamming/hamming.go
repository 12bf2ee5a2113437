package hamming

import "fmt"

// Distance returns the Hamming distance between the code points of a and b:
// the number of positions at which the two strings carry different runes.
//
// Contract: both strings must have the same code-point length; otherwise
// ErrLengthMismatch is returned (wrapped with both lengths). This is the
// single checked precondition — unlike the edit-distance metrics, Hamming
// does not degrade gracefully on unequal lengths.
//
// Complexity: O(N) time, O(1) auxiliary memory beyond the rune conversion.
func Distance(a, b string) (int, error) {
	return DistanceOf([]rune(a), []rune(b))
}

// DistanceOf is Distance over arbitrary comparable token sequences.
func DistanceOf[T comparable](a, b []T) (int, error) {
	// 1. The only precondition in the package: equal lengths.
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: len(a)=%d, len(b)=%d", ErrLengthMismatch, len(a), len(b))
	}

	// 2. Single positional sweep.
	var dist int
	for i := range a {
		if a[i] != b[i] {
			dist++
		}
	}

	return dist, nil
}
