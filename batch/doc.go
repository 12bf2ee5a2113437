// Package batch evaluates one needle string against many candidates in
// parallel: the one-vs-many plane of every metric in this module, for
// dictionary scans, dedupe passes, and candidate ranking.
//
// 🚀 What is batch?
//
//	One bounded fan-out engine behind a function per metric:
//	  • Levenshtein / NormalizedLevenshtein
//	  • OSA / DamerauLevenshtein / NormalizedDamerauLevenshtein
//	  • Jaro / JaroWinkler / JaroWinklerWith
//	  • Sorensen
//
//	Hamming is deliberately absent: a one-vs-many scan over mixed-length
//	candidates would fail on almost every element.
//
// ✨ Key properties:
//   - Results are indexed exactly like the candidate slice
//   - workers <= 0 defaults to runtime.NumCPU(); the needle is converted
//     to code points once and shared read-only by all workers
//   - Contiguous chunks, one goroutine per chunk, disjoint writes —
//     no locks, no channels on the hot path
//   - Context cancellation aborts promptly with ctx.Err(); options are
//     validated before any work is spawned
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strsim/batch"
//
//	dists, err := batch.Levenshtein(ctx, 0, "tpyo", dictionary)
//	scores, err := batch.JaroWinkler(ctx, 8, "anthony", candidates)
//
// Performance: per-candidate cost is the single-call metric cost; the
// engine adds one goroutine per chunk and a single result allocation.
package batch
