package engine

import (
	"baosam/internal/domain"
)

// EnumerateCombos lists every combo the hand could play: per-rank singles,
// pairs, triples and four-of-a-kinds bounded by availability, every straight
// window of 3..10 consecutive ranks, and every double-sequence window of 3+
// consecutive pair-ranks. Candidates overlap freely; the search later picks
// a card-disjoint subset. Strengths are populated.
func EnumerateCombos(hand []domain.Card, scorer *Scorer) []domain.Combo {
	pool := domain.NewRankPool(hand)
	var combos []domain.Combo

	for _, rank := range pool.Ranks() {
		count := pool.Count(rank)
		cards := pool[rank]
		combos = append(combos, domain.Combo{Kind: domain.KindSingle, Rank: rank, Cards: cards[:1]})
		if count >= 2 {
			combos = append(combos, domain.Combo{Kind: domain.KindPair, Rank: rank, Cards: cards[:2]})
		}
		if count >= 3 {
			combos = append(combos, domain.Combo{Kind: domain.KindTriple, Rank: rank, Cards: cards[:3]})
		}
		if count >= 4 {
			combos = append(combos, domain.Combo{Kind: domain.KindFourKind, Rank: rank, Cards: cards[:4]})
		}
	}

	combos = append(combos, straightWindows(pool)...)
	combos = append(combos, doubleSeqWindows(pool)...)

	scorer.ScoreAll(combos)
	return combos
}

// straightWindows emits every straight of length 3..10 over consecutive
// available ranks. Rank 12 never participates and runs do not wrap.
func straightWindows(pool domain.RankPool) []domain.Combo {
	var combos []domain.Combo
	var ranks []int32
	for _, r := range pool.Ranks() {
		if r != domain.RankTwo {
			ranks = append(ranks, r)
		}
	}

	for i := 0; i < len(ranks); i++ {
		for length := 3; length <= 10 && i+length <= len(ranks); length++ {
			if ranks[i+length-1] != ranks[i]+int32(length-1) {
				break
			}
			cards := make([]domain.Card, length)
			for k := 0; k < length; k++ {
				cards[k] = pool[ranks[i+k]][0]
			}
			combos = append(combos, domain.Combo{
				Kind:  domain.KindStraight,
				Rank:  ranks[i+length-1],
				Cards: cards,
			})
		}
	}
	return combos
}

// doubleSeqWindows emits every run of 3+ consecutive ranks that can each
// contribute a pair.
func doubleSeqWindows(pool domain.RankPool) []domain.Combo {
	var combos []domain.Combo
	var pairRanks []int32
	for _, r := range pool.Ranks() {
		if r != domain.RankTwo && pool.Count(r) >= 2 {
			pairRanks = append(pairRanks, r)
		}
	}

	for i := 0; i < len(pairRanks); i++ {
		for length := 3; i+length <= len(pairRanks); length++ {
			if pairRanks[i+length-1] != pairRanks[i]+int32(length-1) {
				break
			}
			cards := make([]domain.Card, 0, length*2)
			for k := 0; k < length; k++ {
				cards = append(cards, pool[pairRanks[i+k]][:2]...)
			}
			combos = append(combos, domain.Combo{
				Kind:  domain.KindDoubleSeq,
				Rank:  pairRanks[i+length-1],
				Cards: cards,
			})
		}
	}
	return combos
}
