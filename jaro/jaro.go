package jaro

// Similarity returns the Jaro similarity of the code points of a and b,
// a score in [0,1] where 1 means identical and 0 means no matching tokens.
//
// Contract (m = matches, t = transpositions):
//
//	jaro = (m/|a| + m/|b| + (m-t)/m) / 3
//
// A token of a matches a token of b when the two are equal, the b position
// is not already matched, and the positions lie within the matching window
// radius max(|a|,|b|)/2 - 1 (floored at 0). Each b position is used at most
// once; the earliest valid match wins. Transpositions are the ordered
// disagreements between the two matched subsequences, halved.
//
// Edge cases: two empty sequences score 1.0, exactly one empty scores 0.0,
// zero matches score 0.0.
//
// Complexity: O(N·M) worst-case time for the window search, O(N+M) memory.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}

	return SimilarityOf([]rune(a), []rune(b))
}

// SimilarityOf is Similarity over arbitrary comparable token sequences.
func SimilarityOf[T comparable](a, b []T) float64 {
	la, lb := len(a), len(b)

	// 1. Empty-input policy: both empty are identical, one empty shares
	//    nothing with the other.
	if la == 0 && lb == 0 {
		return 1
	}
	if la == 0 || lb == 0 {
		return 0
	}

	// 2. Matching window radius, floored at zero so single-token inputs
	//    still compare position 0 against position 0.
	radius := max(la, lb)/2 - 1
	if radius < 0 {
		radius = 0
	}

	// 3. Greedy window match: for each token of a, claim the earliest
	//    unmatched equal token of b inside the window.
	aMatched := make([]bool, la)
	bMatched := make([]bool, lb)
	matches := 0
	for i := 0; i < la; i++ {
		lo := i - radius
		if lo < 0 {
			lo = 0
		}
		hi := i + radius + 1
		if hi > lb {
			hi = lb
		}
		for j := lo; j < hi; j++ {
			if !bMatched[j] && a[i] == b[j] {
				aMatched[i] = true
				bMatched[j] = true
				matches++

				break
			}
		}
	}
	if matches == 0 {
		return 0
	}

	// 4. Transpositions: walk the matched tokens of a and b in order and
	//    count the positions where they disagree; each swap is counted
	//    twice by this walk, so halve it.
	half := 0
	j := 0
	for i := 0; i < la; i++ {
		if !aMatched[i] {
			continue
		}
		for !bMatched[j] {
			j++
		}
		if a[i] != b[j] {
			half++
		}
		j++
	}
	transpositions := half / 2

	// 5. Average the three match ratios.
	m := float64(matches)

	return (m/float64(la) + m/float64(lb) + (m-float64(transpositions))/m) / 3
}
