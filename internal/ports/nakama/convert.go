package nakama

import (
	"fmt"

	"baosam/internal/domain"
)

// parseHand validates raw card ids into a hand. Ids must be in deck range
// and free of duplicates.
func parseHand(ids []int32) ([]domain.Card, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("empty hand")
	}

	hand := make([]domain.Card, 0, len(ids))
	seen := make(map[int32]bool, len(ids))
	for _, id := range ids {
		if id < 0 || id >= domain.DeckSize {
			return nil, fmt.Errorf("card id %d out of range", id)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate card id %d", id)
		}
		seen[id] = true
		hand = append(hand, domain.Card(id))
	}
	return hand, nil
}
