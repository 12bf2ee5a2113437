package editdist

// Levenshtein returns the classic unit-cost edit distance between the code
// points of a and b: the minimum number of single-token insertions,
// deletions and substitutions that turn a into b.
//
// Symmetric, non-negative, zero iff the strings are equal. Empty inputs are
// ordinary: Levenshtein("", s) is the code-point length of s.
//
// Complexity: O(N·M) time, O(min(N,M)) memory.
func Levenshtein(a, b string) int {
	// Identical strings need no table at all.
	if a == b {
		return 0
	}

	return LevenshteinOf([]rune(a), []rune(b))
}

// LevenshteinOf is Levenshtein over arbitrary comparable token sequences.
func LevenshteinOf[T comparable](a, b []T) int {
	return distanceOf(a, b, DefaultOptions())
}

// NormalizedLevenshtein rescales Levenshtein into a similarity score in
// [0,1]: 1 - distance/max(N,M), where N and M are code-point lengths.
// Two empty strings score 1.0 (they are identical); a maximally different
// pair scores 0.0.
func NormalizedLevenshtein(a, b string) float64 {
	if a == b {
		return 1
	}

	return NormalizedLevenshteinOf([]rune(a), []rune(b))
}

// NormalizedLevenshteinOf is NormalizedLevenshtein over token sequences.
func NormalizedLevenshteinOf[T comparable](a, b []T) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}

	return 1 - float64(LevenshteinOf(a, b))/float64(max(len(a), len(b)))
}
