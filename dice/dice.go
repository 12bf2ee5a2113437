// Package dice computes the Sorensen-Dice coefficient: bigram-multiset
// overlap between two sequences. See doc.go for the package overview.
package dice

import "unicode"

// Sorensen returns the Sorensen-Dice coefficient of a and b, a similarity
// score in [0,1] over their adjacent code-point bigrams.
//
// Unicode whitespace is removed before comparison, so "na cht" scores
// against "night" exactly as "nacht" does. Code points are otherwise
// compared as-is — no case folding, no normalization.
//
// Complexity: O(N+M) time and memory (hash multiset of bigrams).
func Sorensen(a, b string) float64 {
	return SorensenOf(stripSpace(a), stripSpace(b))
}

// SorensenOf returns the Sorensen-Dice coefficient over arbitrary
// comparable token sequences.
//
// Contract: with bigrams(x) the multiset of adjacent token pairs of x,
//
//	dice = 2·Σ min(count_a(g), count_b(g)) / (|bigrams(a)| + |bigrams(b)|)
//
// Edge policy: identical sequences — including two empty ones — score 1.0;
// if either sequence is too short to form a bigram and the two are not
// identical, the score is 0.0.
func SorensenOf[T comparable](a, b []T) float64 {
	// 1. Identical sequences short-circuit to 1.0; this is also the only
	//    way sub-bigram inputs (empty or single-token) can score above 0.
	if equalSeq(a, b) {
		return 1
	}
	if len(a) < 2 || len(b) < 2 {
		return 0
	}

	// 2. Multiset of a's bigrams.
	counts := make(map[[2]T]int, len(a)-1)
	for i := 0; i+1 < len(a); i++ {
		counts[[2]T{a[i], a[i+1]}]++
	}

	// 3. Multiset intersection: each bigram of b consumes one remaining
	//    occurrence from a's multiset.
	intersection := 0
	for i := 0; i+1 < len(b); i++ {
		g := [2]T{b[i], b[i+1]}
		if counts[g] > 0 {
			counts[g]--
			intersection++
		}
	}

	// 4. Normalize by the total bigram count: (len(a)-1) + (len(b)-1).
	return 2 * float64(intersection) / float64(len(a)+len(b)-2)
}

// equalSeq reports whether the two sequences are element-wise identical.
func equalSeq[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// stripSpace converts s to code points, dropping Unicode whitespace.
func stripSpace(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			out = append(out, r)
		}
	}

	return out
}
