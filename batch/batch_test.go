package batch_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/strsim/batch"
	"github.com/katalvlaran/strsim/dice"
	"github.com/katalvlaran/strsim/editdist"
	"github.com/katalvlaran/strsim/jaro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// candidates is shared by the equivalence tests: assorted lengths, empty
// strings, unicode, near-duplicates of the needle.
var candidates = []string{
	"", "kitten", "sitting", "mitten", "kitchen", "smitten",
	"kittens", "bitten", "котёнок", "kite", "knitting", "k",
}

const needle = "kitten"

// TestLevenshtein_MatchesSingleCalls verifies the batch plane returns
// exactly the single-call results, in candidate order.
func TestLevenshtein_MatchesSingleCalls(t *testing.T) {
	got, err := batch.Levenshtein(context.Background(), 3, needle, candidates)
	require.NoError(t, err)
	require.Len(t, got, len(candidates), "one result per candidate")
	for i, c := range candidates {
		assert.Equal(t, editdist.Levenshtein(needle, c), got[i],
			"batch result must match the single call for %q", c)
	}
}

// TestAllMetrics_MatchSingleCalls runs the remaining metric planes through
// the same equivalence check.
func TestAllMetrics_MatchSingleCalls(t *testing.T) {
	ctx := context.Background()

	t.Run("NormalizedLevenshtein", func(t *testing.T) {
		got, err := batch.NormalizedLevenshtein(ctx, 4, needle, candidates)
		require.NoError(t, err)
		for i, c := range candidates {
			assert.InDelta(t, editdist.NormalizedLevenshtein(needle, c), got[i], 1e-12, "candidate %q", c)
		}
	})
	t.Run("OSA", func(t *testing.T) {
		got, err := batch.OSA(ctx, 4, needle, candidates)
		require.NoError(t, err)
		for i, c := range candidates {
			assert.Equal(t, editdist.OSA(needle, c), got[i], "candidate %q", c)
		}
	})
	t.Run("DamerauLevenshtein", func(t *testing.T) {
		got, err := batch.DamerauLevenshtein(ctx, 4, needle, candidates)
		require.NoError(t, err)
		for i, c := range candidates {
			assert.Equal(t, editdist.DamerauLevenshtein(needle, c), got[i], "candidate %q", c)
		}
	})
	t.Run("NormalizedDamerauLevenshtein", func(t *testing.T) {
		got, err := batch.NormalizedDamerauLevenshtein(ctx, 4, needle, candidates)
		require.NoError(t, err)
		for i, c := range candidates {
			assert.InDelta(t, editdist.NormalizedDamerauLevenshtein(needle, c), got[i], 1e-12, "candidate %q", c)
		}
	})
	t.Run("Jaro", func(t *testing.T) {
		got, err := batch.Jaro(ctx, 4, needle, candidates)
		require.NoError(t, err)
		for i, c := range candidates {
			assert.InDelta(t, jaro.Similarity(needle, c), got[i], 1e-12, "candidate %q", c)
		}
	})
	t.Run("JaroWinkler", func(t *testing.T) {
		got, err := batch.JaroWinkler(ctx, 4, needle, candidates)
		require.NoError(t, err)
		for i, c := range candidates {
			assert.InDelta(t, jaro.Winkler(needle, c), got[i], 1e-12, "candidate %q", c)
		}
	})
	t.Run("Sorensen", func(t *testing.T) {
		got, err := batch.Sorensen(ctx, 4, needle, candidates)
		require.NoError(t, err)
		for i, c := range candidates {
			assert.InDelta(t, dice.Sorensen(needle, c), got[i], 1e-12, "candidate %q", c)
		}
	})
}

// TestWorkerDefaulting verifies workers <= 0 falls back to NumCPU and
// worker counts above len(bs) are harmless.
func TestWorkerDefaulting(t *testing.T) {
	ctx := context.Background()

	for _, workers := range []int{-1, 0, 1, len(candidates) + 50} {
		got, err := batch.Levenshtein(ctx, workers, needle, candidates)
		require.NoError(t, err, "workers=%d must succeed", workers)
		assert.Len(t, got, len(candidates), "workers=%d must keep the result shape", workers)
	}
}

// TestEmptyCandidates verifies an empty batch completes with an empty,
// non-nil result.
func TestEmptyCandidates(t *testing.T) {
	got, err := batch.Jaro(context.Background(), 4, needle, nil)
	require.NoError(t, err)
	assert.NotNil(t, got, "empty batch should yield an empty slice, not nil")
	assert.Empty(t, got)
}

// TestContextCancellation verifies a canceled context aborts the batch
// with ctx.Err() and no partial result.
func TestContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already canceled before any work starts

	big := make([]string, 10_000)
	for i := range big {
		big[i] = "some moderately long candidate string"
	}

	got, err := batch.Levenshtein(ctx, 4, needle, big)
	assert.ErrorIs(t, err, context.Canceled, "canceled context must surface ctx.Err()")
	assert.Nil(t, got, "aborted batch must not return partial results")
}

// TestJaroWinklerWith_OptionValidation verifies invalid options fail the
// batch before any work is spawned.
func TestJaroWinklerWith_OptionValidation(t *testing.T) {
	bad := jaro.Options{PrefixWeight: 0.5, BoostThreshold: 0.7}
	got, err := batch.JaroWinklerWith(context.Background(), 4, needle, candidates, bad)
	assert.ErrorIs(t, err, jaro.ErrInvalidOptions, "invalid options must reject the whole batch")
	assert.Nil(t, got)

	opts := jaro.DefaultOptions()
	opts.BoostThreshold = 0.5
	got, err = batch.JaroWinklerWith(context.Background(), 4, needle, candidates, opts)
	require.NoError(t, err)
	for i, c := range candidates {
		want, wErr := jaro.WinklerWith(needle, c, opts)
		require.NoError(t, wErr)
		assert.InDelta(t, want, got[i], 1e-12, "candidate %q", c)
	}
}
