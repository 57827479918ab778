package engine

import (
	"baosam/internal/domain"
)

// StrengthConfig holds every tunable constant of the strength formula.
// The exact values are policy, not contract: tests assert the ordering
// invariants (bounds, rank monotonicity, rank-12 dominance), never the
// numbers themselves.
type StrengthConfig struct {
	// Fallback for unknown kinds. Upstream enumeration is closed over the
	// known kind set, so this path should never trigger in practice.
	FallbackStrength float64

	// Same-rank combos.
	SingleTwo      float64
	SingleAce      float64
	PairTwo        float64
	PairAce        float64
	PairHighBase   float64 // pairs above PairHighRank
	PairLowBase    float64
	PairHighRank   int32
	TripleTwo      float64
	TripleAce      float64
	TripleFace     float64
	TripleMid      float64 // triples at or above TripleMidRank
	TripleMidRank  int32
	TripleLowBase  float64
	QuadTwo        float64
	QuadAce        float64
	QuadBase       float64
	QuadRankScale  float64
	BaseRankWeight float64 // shared low-card rank ramp, capped at rank 7

	// Straights.
	StraightDragonLen  int     // length scoring an outright 1.0
	StraightRankBase   float64 // rank ramp: base + rank/11 * span
	StraightRankSpan   float64
	StraightLongBonus  float64 // length >= 7
	StraightLongStep   float64
	StraightSixBonus   float64
	StraightFiveBonus  float64
	StraightShortStep  float64 // per rank above 3 for lengths 3-4
	StraightLongCutoff int

	// Double sequences (bomb tier; rank 12 never occurs here).
	DoubleSeqBase      float64
	DoubleSeqPairStep  float64
	DoubleSeqRankScale float64
	DoubleSeqCap       float64
}

// DefaultStrengthConfig is the tuning used across decision and play.
var DefaultStrengthConfig = StrengthConfig{
	FallbackStrength: 0.1,

	SingleTwo:      0.95,
	SingleAce:      0.3,
	PairTwo:        0.96,
	PairAce:        0.8,
	PairHighBase:   0.3,
	PairLowBase:    0.15,
	PairHighRank:   4,
	TripleTwo:      0.98,
	TripleAce:      0.9,
	TripleFace:     0.8,
	TripleMid:      0.5,
	TripleMidRank:  4,
	TripleLowBase:  0.25,
	QuadTwo:        1.0,
	QuadAce:        0.98,
	QuadBase:       0.95,
	QuadRankScale:  0.03,
	BaseRankWeight: 0.1,

	StraightDragonLen:  10,
	StraightRankBase:   0.1,
	StraightRankSpan:   0.6,
	StraightLongBonus:  0.1,
	StraightLongStep:   0.02,
	StraightSixBonus:   0.08,
	StraightFiveBonus:  0.06,
	StraightShortStep:  0.03,
	StraightLongCutoff: 7,

	DoubleSeqBase:      0.8,
	DoubleSeqPairStep:  0.02,
	DoubleSeqRankScale: 0.06,
	DoubleSeqCap:       0.98,
}

// Scorer assigns each combo a strength in [0, 1]. It is stateless and safe
// for concurrent use.
type Scorer struct {
	cfg StrengthConfig
}

// NewScorer builds a scorer from the given tuning.
func NewScorer(cfg StrengthConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Strength returns the combo's strength. Unknown kinds score the fallback
// minimum rather than failing.
func (s *Scorer) Strength(combo domain.Combo) float64 {
	return clamp01(s.raw(combo))
}

// Score returns a copy of the combo with its Strength field populated.
func (s *Scorer) Score(combo domain.Combo) domain.Combo {
	combo.Strength = s.Strength(combo)
	return combo
}

// ScoreAll populates strengths across a combo list in place.
func (s *Scorer) ScoreAll(combos []domain.Combo) {
	for i := range combos {
		combos[i].Strength = s.Strength(combos[i])
	}
}

func (s *Scorer) raw(combo domain.Combo) float64 {
	cfg := s.cfg
	rank := combo.Rank
	isTwo := rank == domain.RankTwo
	isAce := rank == domain.RankAce
	isFace := rank >= 8 && rank <= 10 // J, Q, K

	// Shared low-card ramp: 0.1 .. 0.2 over ranks 0..7, flat above.
	capped := rank
	if capped > 7 {
		capped = 7
	}
	baseRank := cfg.BaseRankWeight + (float64(capped)/7.0)*cfg.BaseRankWeight

	switch combo.Kind {
	case domain.KindSingle:
		if isTwo {
			return cfg.SingleTwo
		}
		if isAce {
			return cfg.SingleAce
		}
		return baseRank

	case domain.KindPair:
		if isTwo {
			return cfg.PairTwo
		}
		if isAce {
			return cfg.PairAce
		}
		if rank > cfg.PairHighRank {
			return cfg.PairHighBase + baseRank
		}
		return cfg.PairLowBase + baseRank

	case domain.KindTriple:
		if isTwo {
			return cfg.TripleTwo
		}
		if isAce {
			return cfg.TripleAce
		}
		if isFace {
			return cfg.TripleFace
		}
		if rank >= cfg.TripleMidRank {
			return cfg.TripleMid
		}
		return cfg.TripleLowBase + (float64(rank)/4.0)*0.05

	case domain.KindFourKind:
		if isTwo {
			return cfg.QuadTwo
		}
		if isAce {
			return cfg.QuadAce
		}
		return cfg.QuadBase + (float64(rank)/11.0)*cfg.QuadRankScale

	case domain.KindStraight:
		length := combo.Size()
		if length >= cfg.StraightDragonLen || isAce {
			return 1.0
		}
		rankStrength := cfg.StraightRankBase + (float64(rank)/11.0)*cfg.StraightRankSpan
		var lengthBonus float64
		switch {
		case length >= cfg.StraightLongCutoff:
			lengthBonus = cfg.StraightLongBonus + float64(length-cfg.StraightLongCutoff)*cfg.StraightLongStep
		case length == 6:
			lengthBonus = cfg.StraightSixBonus
		case length == 5:
			lengthBonus = cfg.StraightFiveBonus
		default:
			lengthBonus = float64(length-3) * cfg.StraightShortStep
		}
		return rankStrength + lengthBonus

	case domain.KindDoubleSeq:
		pairs := combo.Size() / 2
		strength := cfg.DoubleSeqBase +
			float64(pairs-3)*cfg.DoubleSeqPairStep +
			(float64(rank)/11.0)*cfg.DoubleSeqRankScale
		if strength > cfg.DoubleSeqCap {
			strength = cfg.DoubleSeqCap
		}
		return strength
	}

	return cfg.FallbackStrength
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
