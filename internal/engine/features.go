package engine

import (
	"sort"

	"baosam/internal/domain"
)

// PatternFeatures summarizes a hand's combo distribution for the pattern
// model and the pattern-based ordering strategy.
type PatternFeatures struct {
	ComboDiversity     float64 `json:"combo_diversity"`
	PowerConcentration float64 `json:"power_concentration"`
	StrengthVariance   float64 `json:"strength_variance"`
	AvgStrength        float64 `json:"avg_strength"`
	MaxStrength        float64 `json:"max_strength"`
	MinStrength        float64 `json:"min_strength"`
	MedianStrength     float64 `json:"median_strength"`
	SinglesRatio       float64 `json:"singles_ratio"`
	PairsRatio         float64 `json:"pairs_ratio"`
}

// PowerConcentration is the fraction of combos at or above the unbeatable
// cutoff. Zero for an empty combo list.
func PowerConcentration(combos []domain.Combo) float64 {
	if len(combos) == 0 {
		return 0
	}
	power := 0
	for _, c := range combos {
		if c.Strength >= UnbeatableStrength {
			power++
		}
	}
	return float64(power) / float64(len(combos))
}

// ExtractPatternFeatures computes the pattern feature set over a scored
// combo list.
func ExtractPatternFeatures(combos []domain.Combo) PatternFeatures {
	var f PatternFeatures
	if len(combos) == 0 {
		return f
	}

	kinds := make(map[domain.ComboKind]bool)
	strengths := make([]float64, 0, len(combos))
	singles, pairs := 0, 0
	sum := 0.0
	for _, c := range combos {
		kinds[c.Kind] = true
		strengths = append(strengths, c.Strength)
		sum += c.Strength
		switch c.Kind {
		case domain.KindSingle:
			singles++
		case domain.KindPair:
			pairs++
		}
	}

	n := float64(len(combos))
	f.ComboDiversity = float64(len(kinds)) / 6.0
	f.PowerConcentration = PowerConcentration(combos)
	f.AvgStrength = sum / n
	f.SinglesRatio = float64(singles) / n
	f.PairsRatio = float64(pairs) / n

	sort.Float64s(strengths)
	f.MinStrength = strengths[0]
	f.MaxStrength = strengths[len(strengths)-1]
	mid := len(strengths) / 2
	if len(strengths)%2 == 1 {
		f.MedianStrength = strengths[mid]
	} else {
		f.MedianStrength = (strengths[mid-1] + strengths[mid]) / 2
	}

	variance := 0.0
	for _, s := range strengths {
		d := s - f.AvgStrength
		variance += d * d
	}
	f.StrengthVariance = variance / n

	return f
}
