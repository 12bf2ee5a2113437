// Package jaro computes the Jaro and Jaro-Winkler similarity scores:
// match-based measures in [0,1] that favor short strings and, in the
// Winkler variant, strings that begin alike.
//
// 🚀 What is jaro?
//
//	Two layered scores:
//	  • Similarity — matching-window + transposition count:
//	    tokens match when equal and within max(N,M)/2 - 1 positions of
//	    each other; transpositions are matched tokens that arrive out of
//	    order. Score = mean of m/N, m/M and (m-t)/m.
//	  • Winkler — the Jaro score plus a bonus of l·w·(1-jaro) for a
//	    shared prefix of l ≤ 4 tokens, applied only when the pair already
//	    scores at or above a boost threshold.
//
// ✨ Key properties:
//   - Dual API: Similarity(a, b string) over Unicode code points,
//     SimilarityOf(a, b []T) over any comparable token type
//   - Always in [0,1]; identical inputs score exactly 1.0
//   - Winkler ≥ Similarity for every pair under valid options
//   - Tunable via Options: PrefixWeight (default 0.1, at most 0.25) and
//     BoostThreshold (default 0.7); invalid values return ErrInvalidOptions
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strsim/jaro"
//
//	jaro.Similarity("MARTHA", "MARHTA") // ≈0.944
//	jaro.Winkler("MARTHA", "MARHTA")    // ≈0.961
//
//	opts := jaro.DefaultOptions()
//	opts.PrefixWeight = 0.2 // double reward for prefix agreement
//	s, err := jaro.WinklerWith("prefix", "preface", opts)
//
// Performance:
//
//   - Time:   O(N·M) worst case (window-bounded match search)
//   - Memory: O(N+M) match flags
//
// See example_test.go for worked scenarios.
package jaro
