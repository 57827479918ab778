package engine

import (
	"testing"

	"baosam/internal/domain"
)

func TestCompleteNoLeftovers(t *testing.T) {
	scorer := NewScorer(DefaultStrengthConfig)
	c := NewCompleter(scorer)

	hand := handOf([2]int32{4, 0}, [2]int32{4, 1})
	combos := []domain.Combo{{Kind: domain.KindPair, Rank: 4, Cards: hand, Strength: 0.5}}

	got := c.Complete(combos, hand)
	if len(got) != 1 {
		t.Fatalf("Complete added combos to a full plan: %v", got)
	}
}

func TestCompletePairsThenSingles(t *testing.T) {
	scorer := NewScorer(DefaultStrengthConfig)
	c := NewCompleter(scorer)

	// Plan covers the straight; leftovers are a pair of sevens and a lone jack.
	straight := domain.Combo{
		Kind: domain.KindStraight, Rank: 2,
		Cards: handOf([2]int32{0, 0}, [2]int32{1, 0}, [2]int32{2, 0}),
	}
	hand := append(append([]domain.Card(nil), straight.Cards...),
		handOf([2]int32{4, 0}, [2]int32{4, 1}, [2]int32{8, 0})...)

	got := c.Complete([]domain.Combo{straight}, hand)

	if domain.TotalCards(got) != len(hand) {
		t.Fatalf("completed plan covers %d cards, want %d", domain.TotalCards(got), len(hand))
	}
	cleanup := got[1:]
	kinds := make(map[domain.ComboKind]int)
	for _, combo := range cleanup {
		kinds[combo.Kind]++
		if combo.Strength == 0 {
			t.Fatalf("cleanup combo unscored: %v", combo)
		}
	}
	if kinds[domain.KindPair] != 1 || kinds[domain.KindSingle] != 1 {
		t.Fatalf("cleanup kinds = %v, want one pair and one single", kinds)
	}

	// Cleanup tail is sorted weak first.
	for i := 2; i < len(got); i++ {
		if got[i].Strength < got[i-1].Strength {
			t.Fatalf("cleanup not sorted weak first: %v", cleanup)
		}
	}
}

func TestCompleteIdempotent(t *testing.T) {
	scorer := NewScorer(DefaultStrengthConfig)
	c := NewCompleter(scorer)

	hand := handOf([2]int32{4, 0}, [2]int32{4, 1}, [2]int32{9, 0})
	once := c.Complete(nil, hand)
	twice := c.Complete(once, hand)

	if len(once) != len(twice) {
		t.Fatalf("Complete not idempotent: %d then %d combos", len(once), len(twice))
	}
	if domain.TotalCards(twice) != len(hand) {
		t.Fatalf("completed plan covers %d cards, want %d", domain.TotalCards(twice), len(hand))
	}
}

func TestCompleteEmptyPlan(t *testing.T) {
	scorer := NewScorer(DefaultStrengthConfig)
	c := NewCompleter(scorer)

	hand := handOf([2]int32{3, 0}, [2]int32{3, 1}, [2]int32{3, 2})
	got := c.Complete(nil, hand)

	// Triples are never cleanup material: a pair and a single instead.
	if len(got) != 2 {
		t.Fatalf("Complete(empty plan) = %v, want pair plus single", got)
	}
	if got[0].Kind == got[1].Kind {
		t.Fatalf("cleanup kinds = %v and %v, want a pair and a single", got[0].Kind, got[1].Kind)
	}
}
