// Package jaro defines the configuration and error surface for the
// Jaro-Winkler prefix bonus; the similarity algorithms live in jaro.go
// and winkler.go.
package jaro

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions is returned when an Options value could push the
// Jaro-Winkler score outside [0,1] or carries a nonsensical threshold.
var ErrInvalidOptions = errors.New("jaro: invalid options")

const (
	// DefaultPrefixWeight is the standard Winkler scaling factor applied
	// per shared prefix token.
	DefaultPrefixWeight = 0.1

	// DefaultBoostThreshold is the minimum Jaro score a pair must reach
	// before the prefix bonus applies.
	DefaultBoostThreshold = 0.7

	// MaxPrefixWeight bounds PrefixWeight: with the prefix capped at
	// maxPrefixLen tokens, any weight above 1/maxPrefixLen could lift a
	// score past 1.0.
	MaxPrefixWeight = 0.25

	// maxPrefixLen caps how many shared leading tokens earn the bonus.
	maxPrefixLen = 4
)

// Options configures the Jaro-Winkler prefix bonus.
//
// Fields:
//   - PrefixWeight   — bonus per shared leading token, in [0, MaxPrefixWeight].
//     Larger values favor strings that start alike.
//   - BoostThreshold — minimum Jaro score to receive the bonus, in [0, 1].
//     Pairs scoring below it pass through as plain Jaro.
type Options struct {
	PrefixWeight   float64
	BoostThreshold float64
}

// DefaultOptions returns the standard Winkler parameters:
// PrefixWeight 0.1, BoostThreshold 0.7.
func DefaultOptions() Options {
	return Options{
		PrefixWeight:   DefaultPrefixWeight,
		BoostThreshold: DefaultBoostThreshold,
	}
}

// Validate reports whether o keeps the Jaro-Winkler score inside [0,1]:
// PrefixWeight must lie in [0, MaxPrefixWeight] and BoostThreshold in [0, 1].
func (o Options) Validate() error {
	if o.PrefixWeight < 0 || o.PrefixWeight > MaxPrefixWeight {
		return fmt.Errorf("%w: PrefixWeight %v outside [0, %v]",
			ErrInvalidOptions, o.PrefixWeight, MaxPrefixWeight)
	}
	if o.BoostThreshold < 0 || o.BoostThreshold > 1 {
		return fmt.Errorf("%w: BoostThreshold %v outside [0, 1]",
			ErrInvalidOptions, o.BoostThreshold)
	}

	return nil
}
