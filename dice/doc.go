// Package dice computes the Sorensen-Dice coefficient: a similarity score
// in [0,1] built from the overlap of adjacent-pair bigrams, robust to minor
// reordering and a standard choice for fuzzy string comparison.
//
// 🚀 What is dice?
//
//	One coefficient, two planes:
//	  • Sorensen(a, b string)   — over code-point bigrams, Unicode
//	    whitespace stripped first
//	  • SorensenOf(a, b []T)    — over bigrams of any comparable token type
//
// ✨ Key properties:
//   - Symmetric; identical inputs (including two empty ones) score 1.0
//   - Multiset semantics: repeated bigrams count as often as they occur
//   - Sub-bigram inputs (length < 2) score 0.0 unless identical
//   - Single linear pass per sequence over a hash multiset
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strsim/dice"
//
//	dice.Sorensen("night", "nacht") // 0.25 — only "ht" is shared
//	dice.Sorensen("night", "na cht")// 0.25 — whitespace is ignored
//	dice.SorensenOf([]int{1, 2, 3}, []int{2, 3, 4}) // 0.5
//
// Performance:
//
//   - Time:   O(N+M)
//   - Memory: O(N)
package dice
