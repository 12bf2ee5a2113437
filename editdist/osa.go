package editdist

// osaOptions is the unit-cost policy with the transposition step enabled.
func osaOptions() Options {
	o := DefaultOptions()
	o.Transpositions = true

	return o
}

// OSA returns the optimal-string-alignment distance between the code points
// of a and b: Levenshtein plus adjacent transposition as a fourth unit-cost
// operation, under the restriction that no substring is edited twice.
//
// The restriction matters: OSA("ca", "ac") is 1 (one swap), but
// OSA("ca", "abc") is 3 because the swap would have to be followed by an
// insertion between the swapped tokens. The unrestricted variant that
// allows this is DamerauLevenshtein. OSA also gives up the triangle
// inequality — it is a useful score, not a true metric.
//
// Complexity: O(N·M) time, O(min(N,M)) memory (three rolling rows).
func OSA(a, b string) int {
	if a == b {
		return 0
	}

	return OSAOf([]rune(a), []rune(b))
}

// OSAOf is OSA over arbitrary comparable token sequences.
func OSAOf[T comparable](a, b []T) int {
	return distanceOf(a, b, osaOptions())
}
