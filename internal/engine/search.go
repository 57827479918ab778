package engine

import (
	"sort"

	"baosam/internal/domain"
)

// SearchConfig tunes the sequence search.
type SearchConfig struct {
	// BeamSize bounds the pool of candidate sequences kept during search.
	BeamSize int
	// CoverageWeight scales the score bonus for using more of the hand.
	CoverageWeight float64
	// OrderWeight scales the score bonus for weak-to-strong progression.
	OrderWeight float64
}

// DefaultSearchConfig mirrors the tuning used in production decisions.
var DefaultSearchConfig = SearchConfig{
	BeamSize:       50,
	CoverageWeight: 0.25,
	OrderWeight:    0.15,
}

// Search enumerates every combo a hand can form and assembles ranked,
// card-disjoint play sequences. It holds no mutable state across calls.
type Search struct {
	scorer    *Scorer
	completer *Completer
	cfg       SearchConfig
}

// NewSearch builds a search over the given scorer and tuning.
func NewSearch(scorer *Scorer, cfg SearchConfig) *Search {
	return &Search{scorer: scorer, completer: NewCompleter(scorer), cfg: cfg}
}

// kindPriority orders candidate kinds for greedy construction: structures
// first, filler last.
func kindPriority(k domain.ComboKind) int {
	switch k {
	case domain.KindFourKind:
		return 6
	case domain.KindDoubleSeq:
		return 5
	case domain.KindStraight:
		return 4
	case domain.KindTriple:
		return 3
	case domain.KindPair:
		return 2
	case domain.KindSingle:
		return 1
	}
	return 0
}

// TopK returns at most k structurally distinct sequences, best first.
// With enforceCoverage set every returned sequence accounts for the whole
// hand, cleanup combos included. An empty hand returns no sequences and no
// error.
func (s *Search) TopK(hand []domain.Card, k int, enforceCoverage bool) []domain.Sequence {
	if len(hand) == 0 || k <= 0 {
		return nil
	}

	candidates := EnumerateCombos(hand, s.scorer)
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if pa, pb := kindPriority(a.Kind), kindPriority(b.Kind); pa != pb {
			return pa > pb
		}
		if a.Strength != b.Strength {
			return a.Strength > b.Strength
		}
		return a.Size() > b.Size()
	})

	// Suffix max of candidate strength: an upper bound on the average
	// strength of any sequence started at or after index i.
	suffixMax := make([]float64, len(candidates)+1)
	for i := len(candidates) - 1; i >= 0; i-- {
		suffixMax[i] = candidates[i].Strength
		if suffixMax[i+1] > suffixMax[i] {
			suffixMax[i] = suffixMax[i+1]
		}
	}
	maxBonus := (1 + s.cfg.CoverageWeight) * (1 + s.cfg.OrderWeight*0.5)

	beam := s.cfg.BeamSize
	if beam <= 0 {
		beam = DefaultSearchConfig.BeamSize
	}

	var kept []domain.Sequence
	seen := make(map[string]bool)
	threshold := -1.0

	for i := range candidates {
		if len(kept) >= beam && suffixMax[i]*maxBonus <= threshold {
			break
		}

		combos := s.construct(hand, candidates, i)
		combos = orderForPlay(combos)
		if enforceCoverage {
			combos = s.completer.Complete(combos, hand)
		}

		sig := domain.ComboSignatures(combos)
		if seen[sig] {
			continue
		}
		seen[sig] = true

		kept = append(kept, s.buildSequence(combos, len(hand)))
		if len(kept) > beam {
			sort.SliceStable(kept, func(a, b int) bool { return kept[a].Score > kept[b].Score })
			kept = kept[:beam]
			threshold = kept[len(kept)-1].Score
		}
	}

	sort.SliceStable(kept, func(a, b int) bool { return kept[a].Score > kept[b].Score })
	if len(kept) > k {
		kept = kept[:k]
	}
	return kept
}

// construct builds one full candidate sequence: the start candidate first,
// then every later candidate in priority order that still fits the
// remaining per-rank pool.
func (s *Search) construct(hand []domain.Card, candidates []domain.Combo, start int) []domain.Combo {
	pool := domain.NewRankPool(hand)
	var combos []domain.Combo

	if accepted, ok := takeCombo(pool, candidates[start]); ok {
		combos = append(combos, accepted)
	}
	for j := start + 1; j < len(candidates); j++ {
		if accepted, ok := takeCombo(pool, candidates[j]); ok {
			combos = append(combos, accepted)
		}
	}
	return combos
}

// takeCombo materializes a candidate from the pool, consuming its cards.
// Card identities come from the pool, not the candidate, so sequences stay
// disjoint even when candidates overlap.
func takeCombo(pool domain.RankPool, cand domain.Combo) (domain.Combo, bool) {
	switch cand.Kind {
	case domain.KindSingle, domain.KindPair, domain.KindTriple, domain.KindFourKind:
		cards := pool.Take(cand.Rank, cand.Size())
		if cards == nil {
			return domain.Combo{}, false
		}
		return domain.Combo{Kind: cand.Kind, Rank: cand.Rank, Cards: cards, Strength: cand.Strength}, true

	case domain.KindStraight:
		length := int32(cand.Size())
		start := cand.Rank - length + 1
		for r := start; r <= cand.Rank; r++ {
			if pool.Count(r) < 1 {
				return domain.Combo{}, false
			}
		}
		cards := make([]domain.Card, 0, length)
		for r := start; r <= cand.Rank; r++ {
			cards = append(cards, pool.Take(r, 1)...)
		}
		return domain.Combo{Kind: cand.Kind, Rank: cand.Rank, Cards: cards, Strength: cand.Strength}, true

	case domain.KindDoubleSeq:
		pairs := int32(cand.Size() / 2)
		start := cand.Rank - pairs + 1
		for r := start; r <= cand.Rank; r++ {
			if pool.Count(r) < 2 {
				return domain.Combo{}, false
			}
		}
		cards := make([]domain.Card, 0, pairs*2)
		for r := start; r <= cand.Rank; r++ {
			cards = append(cards, pool.Take(r, 2)...)
		}
		return domain.Combo{Kind: cand.Kind, Rank: cand.Rank, Cards: cards, Strength: cand.Strength}, true
	}
	return domain.Combo{}, false
}

// orderForPlay puts a plan into its canonical order: weakest combo first,
// strongest last, ascending in between. When everything past the weakest
// combo is already strong the plain ascending ramp is kept as-is.
func orderForPlay(combos []domain.Combo) []domain.Combo {
	sort.SliceStable(combos, func(i, j int) bool {
		if combos[i].Strength != combos[j].Strength {
			return combos[i].Strength < combos[j].Strength
		}
		return combos[i].Rank < combos[j].Rank
	})
	return combos
}

// buildSequence computes a sequence's derived metrics and ranking score.
func (s *Search) buildSequence(combos []domain.Combo, handSize int) domain.Sequence {
	total := 0.0
	for _, c := range combos {
		total += c.Strength
	}
	avg := 0.0
	if len(combos) > 0 {
		avg = total / float64(len(combos))
	}
	coverage := domain.CoverageOf(combos, handSize)
	orderCompl := domain.OrderCompliance(combos)
	score := avg * (1 + s.cfg.CoverageWeight*coverage) * (1 + s.cfg.OrderWeight*(orderCompl-0.5))

	return domain.Sequence{
		Combos:        combos,
		Score:         score,
		TotalStrength: total,
		AvgStrength:   avg,
		Coverage:      coverage,
		OrderCompl:    orderCompl,
		EndRuleOK:     domain.EndRuleCompliant(combos),
	}
}
