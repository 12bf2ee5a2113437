package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/strsim/dice"
	"github.com/katalvlaran/strsim/editdist"
	"github.com/katalvlaran/strsim/jaro"
)

// Levenshtein computes editdist.Levenshtein between a and every candidate
// in bs, in parallel. Results are indexed exactly like bs. workers <= 0
// means runtime.NumCPU(); cancellation of ctx aborts the batch and returns
// ctx.Err().
func Levenshtein(ctx context.Context, workers int, a string, bs []string) ([]int, error) {
	needle := []rune(a)

	return evaluate(ctx, workers, len(bs), func(i int) int {
		return editdist.LevenshteinOf(needle, []rune(bs[i]))
	})
}

// NormalizedLevenshtein is the batch plane of editdist.NormalizedLevenshtein.
func NormalizedLevenshtein(ctx context.Context, workers int, a string, bs []string) ([]float64, error) {
	needle := []rune(a)

	return evaluate(ctx, workers, len(bs), func(i int) float64 {
		return editdist.NormalizedLevenshteinOf(needle, []rune(bs[i]))
	})
}

// OSA is the batch plane of editdist.OSA.
func OSA(ctx context.Context, workers int, a string, bs []string) ([]int, error) {
	needle := []rune(a)

	return evaluate(ctx, workers, len(bs), func(i int) int {
		return editdist.OSAOf(needle, []rune(bs[i]))
	})
}

// DamerauLevenshtein is the batch plane of editdist.DamerauLevenshtein.
func DamerauLevenshtein(ctx context.Context, workers int, a string, bs []string) ([]int, error) {
	needle := []rune(a)

	return evaluate(ctx, workers, len(bs), func(i int) int {
		return editdist.DamerauLevenshteinOf(needle, []rune(bs[i]))
	})
}

// NormalizedDamerauLevenshtein is the batch plane of
// editdist.NormalizedDamerauLevenshtein.
func NormalizedDamerauLevenshtein(ctx context.Context, workers int, a string, bs []string) ([]float64, error) {
	needle := []rune(a)

	return evaluate(ctx, workers, len(bs), func(i int) float64 {
		return editdist.NormalizedDamerauLevenshteinOf(needle, []rune(bs[i]))
	})
}

// Jaro is the batch plane of jaro.Similarity.
func Jaro(ctx context.Context, workers int, a string, bs []string) ([]float64, error) {
	needle := []rune(a)

	return evaluate(ctx, workers, len(bs), func(i int) float64 {
		return jaro.SimilarityOf(needle, []rune(bs[i]))
	})
}

// JaroWinkler is the batch plane of jaro.Winkler (default parameters).
func JaroWinkler(ctx context.Context, workers int, a string, bs []string) ([]float64, error) {
	return JaroWinklerWith(ctx, workers, a, bs, jaro.DefaultOptions())
}

// JaroWinklerWith is the batch plane of jaro.WinklerWith. The options are
// validated once, before any goroutine is spawned; an invalid configuration
// fails the whole batch with jaro.ErrInvalidOptions.
func JaroWinklerWith(ctx context.Context, workers int, a string, bs []string, opts jaro.Options) ([]float64, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	needle := []rune(a)

	return evaluate(ctx, workers, len(bs), func(i int) float64 {
		// Validated above; the per-candidate call cannot fail.
		s, _ := jaro.WinklerWithOf(needle, []rune(bs[i]), opts)

		return s
	})
}

// Sorensen is the batch plane of dice.Sorensen, whitespace stripping
// included.
func Sorensen(ctx context.Context, workers int, a string, bs []string) ([]float64, error) {
	return evaluate(ctx, workers, len(bs), func(i int) float64 {
		return dice.Sorensen(a, bs[i])
	})
}

// evaluate fans eval(0..n-1) out over contiguous chunks, one errgroup
// goroutine per chunk, each writing its own disjoint slice of the result.
//
// workers <= 0 defaults to runtime.NumCPU() and is clamped to n so no
// goroutine starts with an empty range. Cancellation is checked before
// every element; the first error (only ever ctx.Err()) aborts the batch
// and discards partial results.
func evaluate[R any](ctx context.Context, workers, n int, eval func(i int) R) ([]R, error) {
	out := make([]R, n)
	if n == 0 {
		return out, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	// Ceiling division keeps every chunk within one element of the others.
	chunk := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				out[i] = eval(i)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
