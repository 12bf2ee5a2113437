package jaro

// Winkler returns the Jaro-Winkler similarity of the code points of a and b
// under the standard parameters (prefix weight 0.1, boost threshold 0.7).
// The default configuration is always valid, so no error is possible.
func Winkler(a, b string) float64 {
	return winklerOf([]rune(a), []rune(b), DefaultOptions())
}

// WinklerOf is Winkler over arbitrary comparable token sequences.
func WinklerOf[T comparable](a, b []T) float64 {
	return winklerOf(a, b, DefaultOptions())
}

// WinklerWith returns the Jaro-Winkler similarity of the code points of a
// and b under a caller-supplied configuration.
//
// Contract: jw = jaro + l·w·(1-jaro), where l is the shared prefix length
// capped at 4 tokens and w is opts.PrefixWeight — applied only when the
// plain Jaro score reaches opts.BoostThreshold; below it the Jaro score
// passes through unchanged. Returns ErrInvalidOptions when opts could push
// the result outside [0,1] (see Options.Validate).
//
// Complexity: the Jaro pass dominates — O(N·M) worst-case time.
func WinklerWith(a, b string, opts Options) (float64, error) {
	return WinklerWithOf([]rune(a), []rune(b), opts)
}

// WinklerWithOf is WinklerWith over arbitrary comparable token sequences.
func WinklerWithOf[T comparable](a, b []T, opts Options) (float64, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}

	return winklerOf(a, b, opts), nil
}

// winklerOf layers the prefix bonus over SimilarityOf. Callers validate
// opts first.
func winklerOf[T comparable](a, b []T, o Options) float64 {
	score := SimilarityOf(a, b)

	// No bonus below the boost threshold.
	if score < o.BoostThreshold {
		return score
	}

	// Shared prefix length, capped so l·w stays within the bonus budget.
	l := 0
	for l < len(a) && l < len(b) && l < maxPrefixLen && a[l] == b[l] {
		l++
	}

	return score + float64(l)*o.PrefixWeight*(1-score)
}
