package engine

import (
	"testing"

	"baosam/internal/domain"
)

func newTestSearch() *Search {
	return NewSearch(NewScorer(DefaultStrengthConfig), DefaultSearchConfig)
}

func TestTopKEmptyHand(t *testing.T) {
	s := newTestSearch()
	if got := s.TopK(nil, 5, true); got != nil {
		t.Fatalf("TopK(empty) = %v, want nil", got)
	}
	if got := s.TopK(handOf([2]int32{3, 0}), 0, true); got != nil {
		t.Fatalf("TopK(k=0) = %v, want nil", got)
	}
}

func TestTopKDisjointness(t *testing.T) {
	s := newTestSearch()

	hand := handOf(
		[2]int32{3, 0}, [2]int32{3, 1}, [2]int32{3, 2},
		[2]int32{4, 0}, [2]int32{5, 0}, [2]int32{6, 0},
		[2]int32{9, 0}, [2]int32{9, 1},
		[2]int32{12, 0}, [2]int32{11, 0},
	)
	for _, enforce := range []bool{false, true} {
		for _, seq := range s.TopK(hand, 10, enforce) {
			if !seq.Disjoint() {
				t.Fatalf("enforce=%v: sequence reuses cards: %v", enforce, seq.Combos)
			}
		}
	}
}

func TestTopKFullCoverageWhenEnforced(t *testing.T) {
	s := newTestSearch()

	hand := handOf(
		[2]int32{2, 0}, [2]int32{2, 1},
		[2]int32{5, 0}, [2]int32{6, 0}, [2]int32{7, 0},
		[2]int32{10, 0}, [2]int32{12, 0},
	)
	seqs := s.TopK(hand, 5, true)
	if len(seqs) == 0 {
		t.Fatalf("no sequences returned")
	}
	for _, seq := range seqs {
		if seq.Coverage != 1.0 {
			t.Fatalf("coverage = %g, want 1.0: %v", seq.Coverage, seq.Combos)
		}
		used := seq.UsedCards()
		if len(used) != len(hand) {
			t.Fatalf("sequence uses %d cards, hand has %d", len(used), len(hand))
		}
	}
}

func TestTopKResultOrdering(t *testing.T) {
	s := newTestSearch()

	hand := domain.NewDeck()[:13]
	k := 4
	seqs := s.TopK(hand, k, true)

	if len(seqs) > k {
		t.Fatalf("returned %d sequences, want <= %d", len(seqs), k)
	}
	for i := 1; i < len(seqs); i++ {
		if seqs[i].Score > seqs[i-1].Score {
			t.Fatalf("results not sorted by score: %g before %g", seqs[i-1].Score, seqs[i].Score)
		}
	}
}

func TestTopKDeduplicatesSignatures(t *testing.T) {
	s := newTestSearch()

	hand := handOf(
		[2]int32{4, 0}, [2]int32{4, 1},
		[2]int32{8, 0}, [2]int32{8, 1},
	)
	seqs := s.TopK(hand, 20, true)

	seen := make(map[string]bool)
	for _, seq := range seqs {
		sig := domain.ComboSignatures(seq.Combos)
		if seen[sig] {
			t.Fatalf("duplicate sequence signature %q", sig)
		}
		seen[sig] = true
	}
}

func TestTopKCanonicalOrderIsAscending(t *testing.T) {
	s := newTestSearch()

	hand := handOf(
		[2]int32{0, 0}, [2]int32{5, 0}, [2]int32{9, 0},
		[2]int32{11, 0}, [2]int32{12, 0},
	)
	seqs := s.TopK(hand, 3, true)
	if len(seqs) == 0 {
		t.Fatalf("no sequences returned")
	}
	for _, seq := range seqs {
		for i := 1; i < len(seq.Combos); i++ {
			if seq.Combos[i].Strength < seq.Combos[i-1].Strength {
				t.Fatalf("combos not ascending by strength: %v", seq.Combos)
			}
		}
		if seq.OrderCompl != 1.0 {
			t.Fatalf("order compliance = %g, want 1.0 for canonical order", seq.OrderCompl)
		}
	}
}

func TestTopKJunkHandSequences(t *testing.T) {
	s := newTestSearch()

	hand := handOf(
		[2]int32{0, 0}, [2]int32{1, 0}, [2]int32{3, 0}, [2]int32{4, 0},
		[2]int32{6, 0}, [2]int32{7, 0}, [2]int32{9, 0}, [2]int32{10, 0},
		[2]int32{12, 0},
	)
	seqs := s.TopK(hand, 3, true)
	if len(seqs) == 0 {
		t.Fatalf("no sequences returned")
	}
	for _, seq := range seqs {
		singles := 0
		for _, combo := range seq.Combos {
			if combo.Kind == domain.KindSingle {
				singles++
			}
		}
		if singles < 4 {
			t.Fatalf("junk-hand sequence has %d singles, want >= 4: %v", singles, seq.Combos)
		}
	}
}

func TestTopKCoverageBonusPrefersFullerSequences(t *testing.T) {
	s := newTestSearch()

	// Without enforced coverage the search may return partial plans, but a
	// full-coverage plan of the same strength must not rank below it.
	hand := handOf(
		[2]int32{5, 0}, [2]int32{5, 1},
		[2]int32{8, 0}, [2]int32{8, 1},
	)
	seqs := s.TopK(hand, 10, false)
	if len(seqs) == 0 {
		t.Fatalf("no sequences returned")
	}
	best := seqs[0]
	if best.Coverage != 1.0 {
		t.Fatalf("best sequence coverage = %g, want full plan first", best.Coverage)
	}
}

func TestBuildSequenceScore(t *testing.T) {
	s := newTestSearch()

	combos := []domain.Combo{
		{Kind: domain.KindSingle, Rank: 3, Cards: handOf([2]int32{3, 0}), Strength: 0.2},
		{Kind: domain.KindSingle, Rank: 9, Cards: handOf([2]int32{9, 0}), Strength: 0.6},
	}
	seq := s.buildSequence(combos, 2)

	if seq.AvgStrength != 0.4 {
		t.Fatalf("avg strength = %g, want 0.4", seq.AvgStrength)
	}
	if seq.Coverage != 1.0 {
		t.Fatalf("coverage = %g, want 1.0", seq.Coverage)
	}
	if seq.OrderCompl != 1.0 {
		t.Fatalf("order compliance = %g, want 1.0", seq.OrderCompl)
	}
	want := 0.4 * (1 + s.cfg.CoverageWeight) * (1 + s.cfg.OrderWeight*0.5)
	if diff := seq.Score - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("score = %g, want %g", seq.Score, want)
	}
	if !seq.EndRuleOK {
		t.Fatalf("end rule should hold for a plan ending on rank 9")
	}
}
