package domain

// Sequence is an ordered play plan: combos with pairwise-disjoint card sets,
// played first to last. Score carries the coverage/order-adjusted ranking
// value assigned by the search; the plain aggregates are kept alongside so
// callers can report them without recomputation.
type Sequence struct {
	Combos        []Combo `json:"sequence"`
	Score         float64 `json:"score"`
	TotalStrength float64 `json:"total_strength"`
	AvgStrength   float64 `json:"avg_strength"`
	Coverage      float64 `json:"coverage"`
	OrderCompl    float64 `json:"order_compliance"`
	EndRuleOK     bool    `json:"end_rule_compliance"`
}

// UsedCards returns the union of the member combos' cards.
func (s Sequence) UsedCards() []Card {
	var used []Card
	for _, c := range s.Combos {
		used = append(used, c.Cards...)
	}
	return used
}

// Disjoint reports whether no card is used by more than one combo.
func (s Sequence) Disjoint() bool {
	seen := make(map[Card]bool)
	for _, combo := range s.Combos {
		for _, card := range combo.Cards {
			if seen[card] {
				return false
			}
			seen[card] = true
		}
	}
	return true
}

// CoverageOf returns the fraction of the hand used by the given combos.
func CoverageOf(combos []Combo, handSize int) float64 {
	if handSize == 0 {
		return 0
	}
	return float64(TotalCards(combos)) / float64(handSize)
}

// OrderCompliance returns the fraction of adjacent combo pairs whose
// strength is non-decreasing. A plan of fewer than two combos is fully
// compliant.
func OrderCompliance(combos []Combo) float64 {
	if len(combos) < 2 {
		return 1.0
	}
	good := 0
	for i := 0; i < len(combos)-1; i++ {
		if combos[i].Strength <= combos[i+1].Strength+1e-9 {
			good++
		}
	}
	return float64(good) / float64(len(combos)-1)
}

// EndRuleCompliant reports whether the plan's last combo may legally end a
// Sam game: finishing on a 2 or a four-of-a-kind draws a penalty.
func EndRuleCompliant(combos []Combo) bool {
	if len(combos) == 0 {
		return true
	}
	last := combos[len(combos)-1]
	return last.Rank != RankTwo && last.Kind != KindFourKind
}
