package advisor

import (
	"baosam/internal/domain"
	"baosam/internal/engine"
)

// Risk bands for a planned sequence.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// planShape summarizes the strategic shape of a sequence.
type planShape struct {
	avgStrength    float64
	strongCombos   int
	highRankCombos int
	weakCombos     int
	winningPattern bool
	risk           string
}

// HeuristicProvider is the always-available rule provider. It scores a plan
// with hand-tuned bonuses and penalties over its shape; it needs no model
// files and never fails its load probe.
type HeuristicProvider struct {
	scorer *engine.Scorer
}

// NewHeuristicProvider builds the rule provider over the given scorer.
func NewHeuristicProvider(scorer *engine.Scorer) *HeuristicProvider {
	return &HeuristicProvider{scorer: scorer}
}

func (h *HeuristicProvider) Name() string { return "heuristic" }

func (h *HeuristicProvider) TryLoad() error { return nil }

// Assess derives the win probability from the plan's shape: average strength
// as the base, bonuses for structure and reach, penalties for filler and
// risk, clamped to [0.05, 0.95] so the rule provider never claims certainty.
func (h *HeuristicProvider) Assess(_ []domain.Card, seq domain.Sequence) (Assessment, error) {
	shape := analyzePlan(seq.Combos)

	prob := shape.avgStrength
	switch {
	case shape.strongCombos >= 2:
		prob += 0.2
	case shape.strongCombos >= 1:
		prob += 0.1
	}
	switch {
	case shape.highRankCombos >= 2:
		prob += 0.15
	case shape.highRankCombos >= 1:
		prob += 0.05
	}
	if shape.winningPattern {
		prob += 0.25
	}
	switch {
	case shape.weakCombos >= 3:
		prob -= 0.3
	case shape.weakCombos >= 2:
		prob -= 0.15
	}
	switch shape.risk {
	case RiskHigh:
		prob -= 0.2
	case RiskMedium:
		prob -= 0.1
	}

	if prob < 0.05 {
		prob = 0.05
	}
	if prob > 0.95 {
		prob = 0.95
	}

	est := engine.EstimateWinProbability(seq.Combos)
	return Assessment{
		WinProbability: prob,
		Confidence:     est.Confidence,
		Provider:       h.Name(),
	}, nil
}

func analyzePlan(combos []domain.Combo) planShape {
	var shape planShape
	if len(combos) == 0 {
		shape.risk = RiskHigh
		return shape
	}

	sum := 0.0
	for _, c := range combos {
		sum += c.Strength
		if isStructure(c.Kind) {
			shape.strongCombos++
		}
		if c.Rank >= 8 {
			shape.highRankCombos++
		}
		if c.Kind == domain.KindSingle || c.Kind == domain.KindPair {
			shape.weakCombos++
		}
	}
	shape.avgStrength = sum / float64(len(combos))

	// A plan that opens and closes with structure, or opens with a
	// high-rank structure, reads as a winning pattern.
	if len(combos) >= 2 {
		first, last := combos[0], combos[len(combos)-1]
		if isStructure(first.Kind) && isStructure(last.Kind) {
			shape.winningPattern = true
		} else if isStructure(first.Kind) && first.Rank >= 9 {
			shape.winningPattern = true
		}
	}

	switch {
	case shape.avgStrength >= 0.8 && shape.strongCombos >= 2:
		shape.risk = RiskLow
	case shape.avgStrength >= 0.6 && shape.strongCombos >= 1:
		shape.risk = RiskMedium
	default:
		shape.risk = RiskHigh
	}
	return shape
}

func isStructure(k domain.ComboKind) bool {
	return k == domain.KindStraight || k == domain.KindFourKind || k == domain.KindDoubleSeq
}
