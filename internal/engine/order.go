package engine

import (
	"sort"

	"baosam/internal/domain"
)

// OrderStrategy names a combo ordering policy.
type OrderStrategy string

const (
	OrderStrengthDesc OrderStrategy = "strength_desc"
	OrderStrengthAsc  OrderStrategy = "strength_asc"
	OrderPatternBased OrderStrategy = "pattern_based"
	OrderBalanced     OrderStrategy = "balanced"
)

// balanced interleave cutoffs.
const (
	balancedStrongCutoff = 0.7
	balancedMediumCutoff = 0.4
)

// patternPowerThreshold is the power concentration above which the
// pattern-based strategy switches to strongest-first.
const patternPowerThreshold = 0.6

// PatternSource supplies the power-concentration signal the pattern-based
// strategy keys on. The trained pattern model satisfies this; the default
// derives the signal from the hand's own combo distribution.
type PatternSource interface {
	PowerConcentration(hand []domain.Card, combos []domain.Combo) float64
}

// OrderProvider re-derives a combo ordering under a named strategy. The
// same provider is consulted when evaluating a declaration and when playing
// it out, so the declared plan and the realized play can never diverge.
type OrderProvider struct {
	decomposer *Decomposer
	pattern    PatternSource
}

// NewOrderProvider builds a provider over the canonical decomposition.
// A nil pattern source falls back to the hand-derived signal.
func NewOrderProvider(decomposer *Decomposer, pattern PatternSource) *OrderProvider {
	if pattern == nil {
		pattern = comboPatternSource{}
	}
	return &OrderProvider{decomposer: decomposer, pattern: pattern}
}

// Ordered returns the hand's canonical decomposition ordered by the given
// strategy. Unknown strategies fall back to strongest-first. An empty hand
// yields an empty list.
func (p *OrderProvider) Ordered(hand []domain.Card, strategy OrderStrategy) []domain.Combo {
	combos := p.decomposer.Decompose(hand)
	if len(combos) == 0 {
		return nil
	}

	switch strategy {
	case OrderStrengthAsc:
		return sortByStrength(combos, true)
	case OrderBalanced:
		return balancedOrder(combos)
	case OrderPatternBased:
		if p.pattern.PowerConcentration(hand, combos) > patternPowerThreshold {
			return sortByStrength(combos, false)
		}
		return balancedOrder(combos)
	default:
		return sortByStrength(combos, false)
	}
}

func sortByStrength(combos []domain.Combo, ascending bool) []domain.Combo {
	out := append([]domain.Combo(nil), combos...)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Strength < out[j].Strength
		}
		return out[i].Strength > out[j].Strength
	})
	return out
}

// balancedOrder stratifies combos into strong, medium and weak buckets and
// interleaves them strong, weak, medium, ... so power moves are spread
// across the plan instead of dumped consecutively.
func balancedOrder(combos []domain.Combo) []domain.Combo {
	sorted := sortByStrength(combos, false)

	var strong, medium, weak []domain.Combo
	for _, c := range sorted {
		switch {
		case c.Strength >= balancedStrongCutoff:
			strong = append(strong, c)
		case c.Strength >= balancedMediumCutoff:
			medium = append(medium, c)
		default:
			weak = append(weak, c)
		}
	}

	maxLen := len(strong)
	if len(weak) > maxLen {
		maxLen = len(weak)
	}
	if len(medium) > maxLen {
		maxLen = len(medium)
	}

	out := make([]domain.Combo, 0, len(combos))
	for i := 0; i < maxLen; i++ {
		if i < len(strong) {
			out = append(out, strong[i])
		}
		if i < len(weak) {
			out = append(out, weak[i])
		}
		if i < len(medium) {
			out = append(out, medium[i])
		}
	}
	return out
}

// comboPatternSource derives the power-concentration signal from the combos
// themselves when no trained pattern model is wired in.
type comboPatternSource struct{}

func (comboPatternSource) PowerConcentration(_ []domain.Card, combos []domain.Combo) float64 {
	return PowerConcentration(combos)
}
