package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Card is a single playing card identified by an integer in [0, 51].
// Rank ordering follows Sam rules: 3 is rank 0, Ace is rank 11 and
// 2 is rank 12, the top card.
type Card int32

// RankTwo is the rank of the 2, the highest card in Sam. It can never
// appear inside a straight or a double sequence.
const RankTwo int32 = 12

// RankAce is the rank of the Ace, the highest rank allowed in a straight.
const RankAce int32 = 11

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Rank returns the card's rank in [0, 12].
func (c Card) Rank() int32 { return int32(c) % 13 }

// Suit returns the card's suit in [0, 3].
func (c Card) Suit() int32 { return int32(c) / 13 }

var rankNames = [13]string{"3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2"}
var suitNames = [4]string{"s", "c", "d", "h"}

func (c Card) String() string {
	if c < 0 || c >= DeckSize {
		return fmt.Sprintf("card(%d)", int32(c))
	}
	return rankNames[c.Rank()] + suitNames[c.Suit()]
}

// CardOf builds a card id from a rank and suit.
func CardOf(rank, suit int32) Card {
	return Card(suit*13 + rank)
}

// NewDeck returns all 52 cards in id order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for id := int32(0); id < DeckSize; id++ {
		deck = append(deck, Card(id))
	}
	return deck
}

// ParseCard parses a card name like "10h", "As" or "2d".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid card %q", s)
	}
	suitCh := strings.ToLower(s[len(s)-1:])
	rankStr := strings.ToUpper(s[:len(s)-1])

	rank := int32(-1)
	for i, name := range rankNames {
		if name == rankStr {
			rank = int32(i)
			break
		}
	}
	if rank < 0 {
		return 0, fmt.Errorf("invalid card rank %q", rankStr)
	}

	suit := int32(-1)
	for i, name := range suitNames {
		if name == suitCh {
			suit = int32(i)
			break
		}
	}
	if suit < 0 {
		return 0, fmt.Errorf("invalid card suit %q", suitCh)
	}
	return CardOf(rank, suit), nil
}

// ValidHand reports whether the hand holds only in-range, unique card ids.
func ValidHand(hand []Card) bool {
	seen := make(map[Card]bool, len(hand))
	for _, c := range hand {
		if c < 0 || c >= DeckSize || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

// SortCards orders cards by ascending rank, then by suit.
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Rank() != cards[j].Rank() {
			return cards[i].Rank() < cards[j].Rank()
		}
		return cards[i].Suit() < cards[j].Suit()
	})
}

// RankPool groups a hand's cards by rank, each rank's cards sorted by id.
// It is the working availability structure used by decomposition and search;
// callers mutate their own copy and never the hand itself.
type RankPool map[int32][]Card

// NewRankPool builds a pool from a hand.
func NewRankPool(hand []Card) RankPool {
	sorted := append([]Card(nil), hand...)
	SortCards(sorted)
	pool := make(RankPool)
	for _, c := range sorted {
		pool[c.Rank()] = append(pool[c.Rank()], c)
	}
	return pool
}

// Clone deep-copies the pool.
func (p RankPool) Clone() RankPool {
	out := make(RankPool, len(p))
	for r, cards := range p {
		out[r] = append([]Card(nil), cards...)
	}
	return out
}

// Count returns the number of available cards of the given rank.
func (p RankPool) Count(rank int32) int { return len(p[rank]) }

// Take removes and returns n cards of the given rank, lowest ids first.
// Returns nil without mutating the pool if fewer than n are available.
func (p RankPool) Take(rank int32, n int) []Card {
	cards := p[rank]
	if len(cards) < n {
		return nil
	}
	taken := append([]Card(nil), cards[:n]...)
	p[rank] = cards[n:]
	return taken
}

// PutBack returns previously taken cards to the front of their rank's queue.
func (p RankPool) PutBack(cards []Card) {
	for i := len(cards) - 1; i >= 0; i-- {
		c := cards[i]
		p[c.Rank()] = append([]Card{c}, p[c.Rank()]...)
	}
}

// Ranks returns the ranks with at least one available card, ascending.
func (p RankPool) Ranks() []int32 {
	ranks := make([]int32, 0, len(p))
	for r, cards := range p {
		if len(cards) > 0 {
			ranks = append(ranks, r)
		}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	return ranks
}

// Remaining returns all available cards in rank order.
func (p RankPool) Remaining() []Card {
	var out []Card
	for _, r := range p.Ranks() {
		out = append(out, p[r]...)
	}
	return out
}
