// Package editdist computes minimum-cost edit distances between two
// sequences: how many insertions, deletions, substitutions — and optionally
// adjacent transpositions — turn one sequence into the other.
//
// 🚀 What is editdist?
//
//	One dynamic-programming kernel and the classic metrics built on it:
//	  • Levenshtein          — insert/delete/substitute, unit cost
//	  • OSA                  — adds adjacent transposition, each substring
//	                           edited at most once (optimal string alignment)
//	  • Damerau–Levenshtein  — unrestricted transpositions; the triangle
//	                           inequality holds, so it is a true metric
//	  • Normalized scores    — any of the above rescaled into [0,1]
//	  • Weighted kernel      — per-operation costs via Options
//
// ✨ Key properties:
//   - Dual API: Levenshtein(a, b string) works on Unicode code points;
//     LevenshteinOf(a, b []T) works on any comparable token type
//   - DamerauLevenshtein(a,b) ≤ OSA(a,b) ≤ Levenshtein(a,b) for all inputs
//   - Total functions: empty inputs and length mismatches are ordinary
//     cases, not errors; only a negative cost policy is rejected
//   - Rolling-row storage: O(min(N,M)) memory for Levenshtein and OSA;
//     the unrestricted variant needs its full table plus an alphabet map
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strsim/editdist"
//
//	editdist.Levenshtein("kitten", "sitting")        // 3
//	editdist.OSA("ca", "ac")                         // 1
//	editdist.DamerauLevenshtein("ca", "abc")         // 2 (OSA says 3)
//	editdist.NormalizedLevenshtein("kitten", "sitting") // ≈0.571
//
//	// Weighted: substitutions twice as expensive as indels.
//	opts := editdist.DefaultOptions()
//	opts.SubstituteCost = 2
//	d, err := editdist.Distance("flaw", "lawn", opts)
//
// Performance:
//
//   - Time:   O(N·M) for every variant
//   - Memory: O(min(N,M)) (kernel) or O(N·M) (unrestricted transpositions)
//
// See example_test.go for worked scenarios.
package editdist
