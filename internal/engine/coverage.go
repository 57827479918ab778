package engine

import (
	"sort"

	"baosam/internal/domain"
)

// Completer extends a play plan so it accounts for every card in the hand.
// The cleanup is deterministic: one pair per rank with two or more leftover
// cards, then singles, the whole tail sorted weak-first before appending.
type Completer struct {
	scorer *Scorer
}

// NewCompleter builds a completer scoring cleanup combos with the given scorer.
func NewCompleter(scorer *Scorer) *Completer {
	return &Completer{scorer: scorer}
}

// Complete returns the plan extended to full coverage of the hand. A plan
// that already uses every card is returned unchanged.
func (c *Completer) Complete(combos []domain.Combo, hand []domain.Card) []domain.Combo {
	used := make(map[domain.Card]bool, len(hand))
	for _, combo := range combos {
		for _, card := range combo.Cards {
			used[card] = true
		}
	}

	var leftover []domain.Card
	for _, card := range hand {
		if !used[card] {
			leftover = append(leftover, card)
		}
	}
	if len(leftover) == 0 {
		return combos
	}

	pool := domain.NewRankPool(leftover)
	var cleanup []domain.Combo
	for _, rank := range pool.Ranks() {
		if pool.Count(rank) >= 2 {
			cards := pool.Take(rank, 2)
			cleanup = append(cleanup, domain.Combo{Kind: domain.KindPair, Rank: rank, Cards: cards})
		}
	}
	for _, rank := range pool.Ranks() {
		for pool.Count(rank) > 0 {
			cards := pool.Take(rank, 1)
			cleanup = append(cleanup, domain.Combo{Kind: domain.KindSingle, Rank: rank, Cards: cards})
		}
	}

	c.scorer.ScoreAll(cleanup)
	sort.SliceStable(cleanup, func(i, j int) bool {
		return cleanup[i].Strength < cleanup[j].Strength
	})

	out := make([]domain.Combo, 0, len(combos)+len(cleanup))
	out = append(out, combos...)
	out = append(out, cleanup...)
	return out
}
