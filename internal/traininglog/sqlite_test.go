package traininglog

import (
	"path/filepath"
	"testing"

	"baosam/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "declarations.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndByGame(t *testing.T) {
	store := openTestStore(t)

	rec := Record{
		GameID:   "g1",
		PlayerID: "p1",
		Hand:     []domain.Card{12, 25, 38, 51},
		Sequence: []domain.Combo{
			{Kind: domain.KindFourKind, Rank: 12, Cards: []domain.Card{12, 25, 38, 51}, Strength: 1.0},
		},
		Declared:  true,
		Won:       true,
		NumCombos: 1,
		NumCards:  4,
	}
	if err := store.Append(rec); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := store.Append(Record{GameID: "g2", PlayerID: "p2", NumCards: 9}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := store.ByGame("g1")
	if err != nil {
		t.Fatalf("ByGame failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ByGame returned %d records, want 1", len(got))
	}
	r := got[0]
	if r.PlayerID != "p1" || !r.Declared || !r.Won {
		t.Fatalf("record round trip mismatch: %+v", r)
	}
	if len(r.Hand) != 4 || len(r.Sequence) != 1 {
		t.Fatalf("hand/sequence round trip mismatch: %+v", r)
	}
	if r.Sequence[0].Kind != domain.KindFourKind || r.Sequence[0].Rank != 12 {
		t.Fatalf("sequence combo mismatch: %+v", r.Sequence[0])
	}
	if r.CreatedAt.IsZero() {
		t.Fatalf("created_at not populated")
	}
}

func TestAggregate(t *testing.T) {
	store := openTestStore(t)

	records := []Record{
		{GameID: "g1", PlayerID: "p1", Declared: true, Won: true, NumCombos: 2, NumCards: 10},
		{GameID: "g2", PlayerID: "p1", Declared: true, Won: false, NumCombos: 4, NumCards: 10},
		{GameID: "g3", PlayerID: "p2", Declared: false, Won: false, NumCombos: 6, NumCards: 10},
	}
	for _, r := range records {
		if err := store.Append(r); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	stats, err := store.Aggregate()
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if stats.TotalRecords != 3 || stats.Declarations != 2 || stats.Wins != 1 {
		t.Fatalf("stats = %+v, want 3 records, 2 declarations, 1 win", stats)
	}
	if stats.SuccessRate != 0.5 {
		t.Fatalf("success rate = %g, want 0.5", stats.SuccessRate)
	}
	if stats.AvgCombos != 4.0 {
		t.Fatalf("avg combos = %g, want 4.0", stats.AvgCombos)
	}
}

func TestAggregateEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Aggregate()
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if stats.TotalRecords != 0 || stats.SuccessRate != 0 {
		t.Fatalf("stats of empty log = %+v, want zeros", stats)
	}
}
