package engine

import (
	"baosam/internal/domain"
)

// Probability blend weights. Average strength and peak strength dominate;
// the unbeatable ratio keeps a hand of uniformly decent combos from
// outscoring one with a genuine closer.
const (
	probAvgWeight        = 0.4
	probMaxWeight        = 0.4
	probUnbeatableWeight = 0.2
)

// Estimate is a probability assessment of a play plan.
type Estimate struct {
	WinProbability float64 `json:"win_probability"`
	Confidence     float64 `json:"confidence"`
	AvgStrength    float64 `json:"avg_strength"`
	MaxStrength    float64 `json:"max_strength"`
	MinStrength    float64 `json:"min_strength"`
	UnbeatableRate float64 `json:"unbeatable_rate"`
}

// EstimateWinProbability blends a plan's strength distribution into a
// single win-probability figure in [0, 1]. An empty plan estimates zero.
func EstimateWinProbability(combos []domain.Combo) Estimate {
	if len(combos) == 0 {
		return Estimate{}
	}

	sum := 0.0
	maxS := combos[0].Strength
	minS := combos[0].Strength
	unbeatable := 0
	for _, c := range combos {
		sum += c.Strength
		if c.Strength > maxS {
			maxS = c.Strength
		}
		if c.Strength < minS {
			minS = c.Strength
		}
		if c.Strength >= UnbeatableStrength {
			unbeatable++
		}
	}

	avg := sum / float64(len(combos))
	rate := float64(unbeatable) / float64(len(combos))
	prob := clamp01(probAvgWeight*avg + probMaxWeight*maxS + probUnbeatableWeight*rate)

	return Estimate{
		WinProbability: prob,
		Confidence:     confidence(avg, minS, rate),
		AvgStrength:    avg,
		MaxStrength:    maxS,
		MinStrength:    minS,
		UnbeatableRate: rate,
	}
}

// confidence reflects how much the estimate can be trusted: it drops when
// the plan carries a weak link and rises with unbeatable coverage.
func confidence(avg, minStrength, unbeatableRate float64) float64 {
	c := 0.5*avg + 0.3*minStrength + 0.2*unbeatableRate
	return clamp01(c + 0.2)
}
