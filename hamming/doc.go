// Package hamming computes the Hamming distance: the count of positions at
// which two equal-length sequences disagree.
//
// 🚀 What is hamming?
//
//	The simplest of the string metrics — a single positional sweep:
//	  • Distance(a, b string)      — over Unicode code points
//	  • DistanceOf(a, b []T)       — over any comparable token type
//
// ✨ Key properties:
//   - Symmetric, non-negative, zero iff the sequences are equal
//   - Strict precondition: unequal lengths return ErrLengthMismatch,
//     never a truncated or padded result
//   - No allocation beyond the code-point conversion of the string plane
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strsim/hamming"
//
//	d, err := hamming.Distance("karolin", "kathrin") // 3, nil
//	_, err = hamming.Distance("abc", "ab")           // hamming.ErrLengthMismatch
//
// Performance:
//
//   - Time:   O(N)
//   - Memory: O(1)
//
// When sequences may differ in length, use editdist.Levenshtein instead.
package hamming
