// Package advisor wires the decision pipeline for all-in declarations:
// decompose the hand, gate it against the rule floor, search for the best
// full-coverage play sequence, and weigh its win probability against the
// declaration threshold.
package advisor

import (
	"baosam/internal/domain"
	"baosam/internal/engine"
)

// Decision reason codes beyond the gate's own.
const (
	ReasonNoSequence          = "no_sequence_found"
	ReasonProviderUnavailable = "provider_unavailable"
	ReasonBelowThreshold      = "below_threshold"
	ReasonThresholdMet        = "threshold_met"
)

// Config tunes the advisor pipeline.
type Config struct {
	// DeclareThreshold is the minimum win probability to declare.
	DeclareThreshold float64 `json:"declare_threshold"`
	// TopK bounds how many candidate sequences the search returns.
	TopK int `json:"top_k"`
}

// DefaultConfig is the production advisor tuning.
var DefaultConfig = Config{
	DeclareThreshold: 0.7,
	TopK:             5,
}

// Decision is the full declaration verdict: the call, why, the plan that
// backs it and the numbers behind it.
type Decision struct {
	Declare        bool              `json:"declare"`
	Reason         string            `json:"reason"`
	WinProbability float64           `json:"win_probability"`
	Confidence     float64           `json:"confidence"`
	Provider       string            `json:"provider,omitempty"`
	Gate           engine.GateResult `json:"gate"`
	Sequence       *domain.Sequence  `json:"sequence,omitempty"`
}

// Advisor runs the declaration pipeline. It is stateless across calls.
type Advisor struct {
	decomposer *engine.Decomposer
	gate       *engine.Gate
	search     *engine.Search
	chain      *Chain
	cfg        Config
}

// New builds an advisor from the shared scorer, the gate rules, the search
// tuning and a provider chain.
func New(scorer *engine.Scorer, rules engine.GateRules, searchCfg engine.SearchConfig, chain *Chain, cfg Config) *Advisor {
	return &Advisor{
		decomposer: engine.NewDecomposer(scorer),
		gate:       engine.NewGate(rules, scorer),
		search:     engine.NewSearch(scorer, searchCfg),
		chain:      chain,
		cfg:        cfg,
	}
}

// Decide evaluates a hand for declaration. Any failure along the pipeline
// resolves conservatively: no declaration, with the reason attached.
func (a *Advisor) Decide(hand []domain.Card) Decision {
	combos := a.decomposer.Decompose(hand)
	gate := a.gate.Validate(combos)
	if !gate.Eligible {
		return Decision{Reason: gate.Reason, Gate: gate}
	}

	seqs := a.search.TopK(hand, a.cfg.TopK, true)
	if len(seqs) == 0 {
		return Decision{Reason: ReasonNoSequence, Gate: gate}
	}
	best := seqs[0]

	assessment, err := a.chain.Assess(hand, best)
	if err != nil {
		return Decision{Reason: ReasonProviderUnavailable, Gate: gate, Sequence: &best}
	}

	decision := Decision{
		Reason:         ReasonBelowThreshold,
		WinProbability: assessment.WinProbability,
		Confidence:     assessment.Confidence,
		Provider:       assessment.Provider,
		Gate:           gate,
		Sequence:       &best,
	}
	if assessment.WinProbability >= a.cfg.DeclareThreshold {
		decision.Declare = true
		decision.Reason = ReasonThresholdMet
	}
	return decision
}

// Sequences returns the ranked candidate sequences for a hand without
// making a declaration call.
func (a *Advisor) Sequences(hand []domain.Card, k int, enforceCoverage bool) []domain.Sequence {
	return a.search.TopK(hand, k, enforceCoverage)
}
