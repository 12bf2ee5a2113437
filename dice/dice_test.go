package dice_test

import (
	"testing"

	"github.com/katalvlaran/strsim/dice"
	"github.com/stretchr/testify/assert"
)

// TestSorensen_Reference checks the textbook vector: night/nacht share one
// bigram ("ht") out of eight.
func TestSorensen_Reference(t *testing.T) {
	assert.Equal(t, 0.25, dice.Sorensen("night", "nacht"), "2·1/(4+4)")
	assert.Equal(t, 0.25, dice.Sorensen("night", "na cht"), "whitespace must be ignored")
}

// TestSorensen_EdgePolicy pins the short-input rules.
func TestSorensen_EdgePolicy(t *testing.T) {
	assert.Equal(t, 1.0, dice.Sorensen("", ""), "two empty strings are identical")
	assert.Equal(t, 1.0, dice.Sorensen("a", "a"), "identical single tokens score 1")
	assert.Equal(t, 0.0, dice.Sorensen("", "night"), "one empty string scores 0")
	assert.Equal(t, 0.0, dice.Sorensen("a", "b"), "unequal sub-bigram inputs score 0")
	assert.Equal(t, 0.0, dice.Sorensen("a", "ab"), "no bigram on one side, not identical")
}

// TestSorensen_Properties verifies identity, symmetry and range over a
// mixed corpus.
func TestSorensen_Properties(t *testing.T) {
	corpus := []string{"", "a", "ab", "night", "nacht", "healed", "sealed",
		"context", "contact", "привет", "приветик"}
	for _, a := range corpus {
		assert.Equal(t, 1.0, dice.Sorensen(a, a), "dice(a, a) must be 1 for %q", a)
		for _, b := range corpus {
			ab := dice.Sorensen(a, b)
			assert.Equal(t, ab, dice.Sorensen(b, a), "must be symmetric for %q/%q", a, b)
			assert.GreaterOrEqual(t, ab, 0.0, "score below 0 for %q/%q", a, b)
			assert.LessOrEqual(t, ab, 1.0, "score above 1 for %q/%q", a, b)
		}
	}
}

// TestSorensen_MultisetCounts verifies repeated bigrams intersect by
// occurrence count, not by distinct value.
func TestSorensen_MultisetCounts(t *testing.T) {
	// "aaaa" has bigrams {aa, aa, aa}; "aa" has {aa}. One shared occurrence.
	assert.InDelta(t, 2.0*1/(3+1), dice.Sorensen("aaaa", "aa"), 1e-9,
		"only one aa occurrence can pair up")
}

// TestSorensen_Reordering shows the coefficient's tolerance to word-level
// reordering, its selling point over edit distances.
func TestSorensen_Reordering(t *testing.T) {
	straight := dice.Sorensen("stack overflow", "overflow stack")
	assert.Greater(t, straight, 0.8, "reordered compounds keep most bigrams")
}

// TestSorensenOf_Tokens exercises the generic plane over non-rune tokens.
func TestSorensenOf_Tokens(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{2, 3, 4}
	assert.Equal(t, 0.5, dice.SorensenOf(a, b), "one shared bigram of four")

	words1 := []string{"deep", "blue", "sea"}
	words2 := []string{"deep", "blue", "sky"}
	assert.Equal(t, 0.5, dice.SorensenOf(words1, words2), "word-level bigrams")
}
