// Package hamming counts positional mismatches between two equal-length
// sequences. Error definitions live here; the metric itself is in hamming.go.
package hamming

import "errors"

// ErrLengthMismatch is returned when the two sequences differ in length.
// The Hamming distance is undefined for unequal lengths, and this package
// never truncates or pads to force a result.
var ErrLengthMismatch = errors.New("hamming: sequences must have equal length")
