package engine

import (
	"baosam/internal/domain"
)

// Gate reason codes, one per rule in evaluation order.
const (
	ReasonNoCombos            = "no_combos_found"
	ReasonInsufficientCards   = "insufficient_cards"
	ReasonTooManyWeakCombos   = "too_many_weak_combos"
	ReasonInsufficientStrong  = "insufficient_strong_combos"
	ReasonLowAverageStrength  = "low_avg_strength"
	ReasonNoUnbeatableCombos  = "no_unbeatable_combos"
	ReasonValidationPassed    = "validation_passed"
)

// Strength band cutoffs shared by the gate, the profile and the advisor.
const (
	WeakStrength       = 0.5
	StrongStrength     = 0.7
	UnbeatableStrength = 0.8
)

// GateRules are the declaration floor. Defaults are the production
// thresholds; they are configuration, not law.
type GateRules struct {
	MinTotalCards       int     `json:"min_total_cards"`
	MaxWeakCombos       int     `json:"max_weak_combos"`
	MinStrongCombos     int     `json:"min_strong_combos"`
	MinAvgStrength      float64 `json:"min_avg_strength"`
	MinUnbeatableCombos int     `json:"min_unbeatable_combos"`
}

// DefaultGateRules are the stock declaration thresholds.
var DefaultGateRules = GateRules{
	MinTotalCards:       10,
	MaxWeakCombos:       1,
	MinStrongCombos:     1,
	MinAvgStrength:      0.55,
	MinUnbeatableCombos: 1,
}

// Profile aggregates a decomposition's strength distribution.
type Profile struct {
	TotalCards       int       `json:"total_cards"`
	TotalCombos      int       `json:"total_combos"`
	WeakCombos       int       `json:"weak_combos"`
	StrongCombos     int       `json:"strong_combos"`
	UnbeatableCombos int       `json:"unbeatable_combos"`
	AvgStrength      float64   `json:"avg_strength"`
	Strengths        []float64 `json:"strengths"`
}

// GateResult is the outcome of an eligibility check.
type GateResult struct {
	Eligible bool    `json:"eligible"`
	Reason   string  `json:"reason"`
	Profile  Profile `json:"profile"`
}

// Gate applies the fixed rule floor that decides whether a decomposition may
// even be considered for declaration.
type Gate struct {
	rules  GateRules
	scorer *Scorer
}

// NewGate builds a gate with the given thresholds.
func NewGate(rules GateRules, scorer *Scorer) *Gate {
	return &Gate{rules: rules, scorer: scorer}
}

// ProfileOf computes the strength profile of a combo list, recomputing
// strengths so stale values can never leak into a decision.
func (g *Gate) ProfileOf(combos []domain.Combo) Profile {
	p := Profile{
		TotalCards:  domain.TotalCards(combos),
		TotalCombos: len(combos),
		Strengths:   make([]float64, 0, len(combos)),
	}
	sum := 0.0
	for _, c := range combos {
		s := g.scorer.Strength(c)
		p.Strengths = append(p.Strengths, s)
		sum += s
		if s < WeakStrength {
			p.WeakCombos++
		}
		if s >= StrongStrength {
			p.StrongCombos++
		}
		if s >= UnbeatableStrength {
			p.UnbeatableCombos++
		}
	}
	if len(combos) > 0 {
		p.AvgStrength = sum / float64(len(combos))
	}
	return p
}

// Validate checks the rules in fixed priority order and reports the first
// failure. An empty combo list is always rejected outright.
func (g *Gate) Validate(combos []domain.Combo) GateResult {
	if len(combos) == 0 {
		return GateResult{Eligible: false, Reason: ReasonNoCombos}
	}

	profile := g.ProfileOf(combos)

	switch {
	case profile.TotalCards < g.rules.MinTotalCards:
		return GateResult{Reason: ReasonInsufficientCards, Profile: profile}
	case profile.WeakCombos > g.rules.MaxWeakCombos:
		return GateResult{Reason: ReasonTooManyWeakCombos, Profile: profile}
	case profile.StrongCombos < g.rules.MinStrongCombos:
		return GateResult{Reason: ReasonInsufficientStrong, Profile: profile}
	case profile.AvgStrength < g.rules.MinAvgStrength:
		return GateResult{Reason: ReasonLowAverageStrength, Profile: profile}
	case profile.UnbeatableCombos < g.rules.MinUnbeatableCombos:
		return GateResult{Reason: ReasonNoUnbeatableCombos, Profile: profile}
	}

	return GateResult{Eligible: true, Reason: ReasonValidationPassed, Profile: profile}
}
