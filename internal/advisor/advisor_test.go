package advisor

import (
	"os"
	"path/filepath"
	"testing"

	"baosam/internal/domain"
	"baosam/internal/engine"
)

func newTestAdvisor() *Advisor {
	scorer := engine.NewScorer(engine.DefaultStrengthConfig)
	chain := NewChain(NewHeuristicProvider(scorer))
	return New(scorer, engine.DefaultGateRules, engine.DefaultSearchConfig, chain, DefaultConfig)
}

// powerHand holds three quads: 12 cards, every combo unbeatable.
func powerHand() []domain.Card {
	var hand []domain.Card
	for _, rank := range []int32{10, 11, 12} {
		for suit := int32(0); suit < 4; suit++ {
			hand = append(hand, domain.CardOf(rank, suit))
		}
	}
	return hand
}

// junkHand holds nine unconnected low cards.
func junkHand() []domain.Card {
	var hand []domain.Card
	for _, rank := range []int32{0, 1, 3, 4, 6, 7, 9, 10, 12} {
		hand = append(hand, domain.CardOf(rank, 0))
	}
	return hand
}

func TestDecidePowerHandDeclares(t *testing.T) {
	adv := newTestAdvisor()

	got := adv.Decide(powerHand())
	if !got.Declare {
		t.Fatalf("power hand not declared: %+v", got)
	}
	if got.Reason != ReasonThresholdMet {
		t.Fatalf("reason = %s, want %s", got.Reason, ReasonThresholdMet)
	}
	if got.Sequence == nil || got.Sequence.Coverage != 1.0 {
		t.Fatalf("declared without a full-coverage plan: %+v", got.Sequence)
	}
	if got.WinProbability < DefaultConfig.DeclareThreshold {
		t.Fatalf("win probability %g below threshold", got.WinProbability)
	}
	if got.Provider != "heuristic" {
		t.Fatalf("provider = %s, want heuristic", got.Provider)
	}
}

func TestDecideJunkHandRejected(t *testing.T) {
	adv := newTestAdvisor()

	got := adv.Decide(junkHand())
	if got.Declare {
		t.Fatalf("junk hand declared: %+v", got)
	}
	if got.Reason != engine.ReasonInsufficientCards {
		t.Fatalf("reason = %s, want %s", got.Reason, engine.ReasonInsufficientCards)
	}
}

func TestDecideEmptyHandRejected(t *testing.T) {
	adv := newTestAdvisor()

	got := adv.Decide(nil)
	if got.Declare || got.Reason != engine.ReasonNoCombos {
		t.Fatalf("Decide(empty) = %+v, want rejection with %s", got, engine.ReasonNoCombos)
	}
}

func TestChainFallsBackToHeuristic(t *testing.T) {
	scorer := engine.NewScorer(engine.DefaultStrengthConfig)
	chain := NewChain(
		NewPatternProvider(filepath.Join(t.TempDir(), "missing")),
		NewHeuristicProvider(scorer),
	)

	p, err := chain.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if p.Name() != "heuristic" {
		t.Fatalf("resolved provider = %s, want heuristic", p.Name())
	}
}

func TestChainAllProvidersFail(t *testing.T) {
	chain := NewChain(NewPatternProvider(filepath.Join(t.TempDir(), "missing")))

	if _, err := chain.Resolve(); err == nil {
		t.Fatalf("Resolve succeeded with no loadable provider")
	}
}

func TestPatternProviderLoadsParams(t *testing.T) {
	dir := t.TempDir()
	params := `{"bias": 0.2, "avg_strength": 0.5, "max_strength": 0.3}`
	if err := os.WriteFile(filepath.Join(dir, patternParamsFile), []byte(params), 0o644); err != nil {
		t.Fatalf("write params: %v", err)
	}

	p := NewPatternProvider(dir)
	if err := p.TryLoad(); err != nil {
		t.Fatalf("TryLoad failed: %v", err)
	}

	seq := domain.Sequence{
		Combos: []domain.Combo{
			{Kind: domain.KindFourKind, Rank: 12, Strength: 1.0},
		},
		Coverage: 1.0,
	}
	got, err := p.Assess(nil, seq)
	if err != nil {
		t.Fatalf("Assess failed: %v", err)
	}
	// bias 0.2 + 0.5*avg(1.0) + 0.3*max(1.0) = 1.0.
	if got.WinProbability != 1.0 {
		t.Fatalf("probability = %g, want 1.0", got.WinProbability)
	}
	if got.Provider != "pattern" {
		t.Fatalf("provider = %s, want pattern", got.Provider)
	}
}

func TestPatternProviderMissingDir(t *testing.T) {
	p := NewPatternProvider("")
	if err := p.TryLoad(); err == nil {
		t.Fatalf("TryLoad succeeded with no model directory")
	}
}

func TestHeuristicAssessOrdering(t *testing.T) {
	scorer := engine.NewScorer(engine.DefaultStrengthConfig)
	h := NewHeuristicProvider(scorer)

	strong := domain.Sequence{Combos: []domain.Combo{
		{Kind: domain.KindStraight, Rank: 9, Strength: 0.7},
		{Kind: domain.KindFourKind, Rank: 12, Strength: 1.0},
	}}
	weak := domain.Sequence{Combos: []domain.Combo{
		{Kind: domain.KindSingle, Rank: 0, Strength: 0.1},
		{Kind: domain.KindSingle, Rank: 1, Strength: 0.1},
		{Kind: domain.KindPair, Rank: 2, Strength: 0.25},
	}}

	sa, err := h.Assess(nil, strong)
	if err != nil {
		t.Fatalf("Assess(strong) failed: %v", err)
	}
	wa, err := h.Assess(nil, weak)
	if err != nil {
		t.Fatalf("Assess(weak) failed: %v", err)
	}

	if sa.WinProbability <= wa.WinProbability {
		t.Fatalf("strong plan %g not above weak plan %g", sa.WinProbability, wa.WinProbability)
	}
	for _, a := range []Assessment{sa, wa} {
		if a.WinProbability < 0.05 || a.WinProbability > 0.95 {
			t.Fatalf("probability %g outside [0.05, 0.95]", a.WinProbability)
		}
	}
}

func TestAnalyzePlanRiskBands(t *testing.T) {
	tests := []struct {
		name   string
		combos []domain.Combo
		want   string
	}{
		{
			name: "low risk",
			combos: []domain.Combo{
				{Kind: domain.KindFourKind, Strength: 1.0},
				{Kind: domain.KindDoubleSeq, Strength: 0.85},
			},
			want: RiskLow,
		},
		{
			name: "medium risk",
			combos: []domain.Combo{
				{Kind: domain.KindStraight, Strength: 0.7},
				{Kind: domain.KindTriple, Strength: 0.55},
			},
			want: RiskMedium,
		},
		{
			name: "high risk",
			combos: []domain.Combo{
				{Kind: domain.KindSingle, Strength: 0.1},
				{Kind: domain.KindPair, Strength: 0.3},
			},
			want: RiskHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := analyzePlan(tt.combos).risk; got != tt.want {
				t.Fatalf("risk = %s, want %s", got, tt.want)
			}
		})
	}
}
