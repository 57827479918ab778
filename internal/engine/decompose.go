package engine

import (
	"baosam/internal/domain"
)

// Decomposer partitions a hand into one canonical, non-overlapping combo set.
// The partition is a fixed greedy strategy, distinct from the exhaustive
// enumeration the search performs: four-of-a-kinds first, then repeated
// longest straights, then triples, pairs and singles.
type Decomposer struct {
	scorer *Scorer
}

// NewDecomposer builds a decomposer scoring combos with the given scorer.
func NewDecomposer(scorer *Scorer) *Decomposer {
	return &Decomposer{scorer: scorer}
}

// Decompose consumes every card of the hand exactly once and returns the
// canonical partition with strengths populated. An empty hand yields an
// empty list.
func (d *Decomposer) Decompose(hand []domain.Card) []domain.Combo {
	pool := domain.NewRankPool(hand)
	var combos []domain.Combo

	// Four-of-a-kinds, ascending rank.
	for _, rank := range pool.Ranks() {
		if pool.Count(rank) >= 4 {
			cards := pool.Take(rank, 4)
			combos = append(combos, domain.Combo{Kind: domain.KindFourKind, Rank: rank, Cards: cards})
		}
	}

	// Straights: repeatedly carve the longest run of consecutive available
	// ranks (2s excluded), one card per rank, until no run of 3+ remains.
	for {
		straight, ok := takeLongestStraight(pool)
		if !ok {
			break
		}
		combos = append(combos, straight)
	}

	// Triples, then pairs, then singles from whatever is left.
	for _, rank := range pool.Ranks() {
		if pool.Count(rank) >= 3 {
			cards := pool.Take(rank, 3)
			combos = append(combos, domain.Combo{Kind: domain.KindTriple, Rank: rank, Cards: cards})
		}
	}
	for _, rank := range pool.Ranks() {
		if pool.Count(rank) >= 2 {
			cards := pool.Take(rank, 2)
			combos = append(combos, domain.Combo{Kind: domain.KindPair, Rank: rank, Cards: cards})
		}
	}
	for _, rank := range pool.Ranks() {
		for pool.Count(rank) > 0 {
			cards := pool.Take(rank, 1)
			combos = append(combos, domain.Combo{Kind: domain.KindSingle, Rank: rank, Cards: cards})
		}
	}

	d.scorer.ScoreAll(combos)
	return combos
}

// takeLongestStraight finds the first longest run of 3+ consecutive
// available ranks below rank 12 and consumes one card per rank, capped at
// 10 ranks trimmed from the high end. If consumption cannot yield a usable
// straight the taken cards are restored and no combo is emitted.
func takeLongestStraight(pool domain.RankPool) (domain.Combo, bool) {
	var ranks []int32
	for _, r := range pool.Ranks() {
		if r != domain.RankTwo {
			ranks = append(ranks, r)
		}
	}
	if len(ranks) < 3 {
		return domain.Combo{}, false
	}

	bestStart := int32(-1)
	bestLen := 0
	i := 0
	for i < len(ranks) {
		j := i
		for j+1 < len(ranks) && ranks[j+1] == ranks[j]+1 {
			j++
		}
		if runLen := j - i + 1; runLen > bestLen {
			bestLen = runLen
			bestStart = ranks[i]
		}
		i = j + 1
	}
	if bestLen < 3 {
		return domain.Combo{}, false
	}
	if bestLen > 10 {
		bestLen = 10
	}

	cards := make([]domain.Card, 0, bestLen)
	for r := bestStart; r < bestStart+int32(bestLen); r++ {
		taken := pool.Take(r, 1)
		if taken != nil {
			cards = append(cards, taken...)
		}
	}
	if len(cards) < 3 {
		// Interleaved availability broke the run mid-build; roll back.
		pool.PutBack(cards)
		return domain.Combo{}, false
	}

	end := bestStart + int32(bestLen) - 1
	return domain.Combo{Kind: domain.KindStraight, Rank: end, Cards: cards}, true
}
