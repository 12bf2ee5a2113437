// Package strsim is a pure-function toolkit for fuzzy matching: edit
// distances, alignment-based similarity scores, and set-overlap
// coefficients over strings or arbitrary comparable token sequences.
//
// 🚀 What is strsim?
//
//	A small, allocation-conscious metrics engine that brings together:
//		• Edit distances: Levenshtein, OSA, Damerau–Levenshtein (+ weighted kernel)
//		• Normalized scores: edit distances rescaled into [0,1]
//		• Alignment similarity: Jaro and Jaro–Winkler
//		• Set overlap: Sørensen–Dice bigram coefficient
//		• Positional mismatch: Hamming distance
//		• Batch plane: one-vs-many evaluation across CPU cores
//
// ✨ Why choose strsim?
//
//   - Dual API – every metric works on strings (Unicode code points) and
//     on generic []T sequences for any comparable token type
//   - Strict edge-case contracts – empty inputs, unequal lengths and
//     parameter bounds are documented and tested, never undefined
//   - Pure functions – no shared state, no locks, reentrant by construction
//   - Lean allocation – rolling DP rows, O(min(N,M)) working memory where
//     the recurrence allows it
//
// Everything is organized into per-metric packages:
//
//	editdist/ — DP kernel, Levenshtein, OSA, Damerau–Levenshtein, normalized scores
//	hamming/  — equal-length positional mismatch count
//	jaro/     — Jaro similarity and the Winkler prefix-boosted variant
//	dice/     — Sørensen–Dice bigram overlap coefficient
//	batch/    — parallel one-vs-many wrappers over the metric packages
//
// Quick taste:
//
//	editdist.Levenshtein("kitten", "sitting") // 3
//	jaro.Winkler("MARTHA", "MARHTA")          // ≈0.9611
//	dice.Sorensen("night", "nacht")           // 0.25
//
// Callers that need a different tokenization (bytes, words, IDs) convert
// once and use the *Of forms:
//
//	editdist.LevenshteinOf([]string{"send", "mail"}, []string{"send", "email"}) // 1
//
//	go get github.com/katalvlaran/strsim
package strsim
