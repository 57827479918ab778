package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ComboKind identifies the structural kind of a combo.
type ComboKind int

const (
	KindInvalid ComboKind = iota
	KindSingle
	KindPair
	KindTriple
	KindFourKind
	KindStraight  // 3-10 consecutive ranks, one card each, never rank 12
	KindDoubleSeq // 3+ consecutive ranks, a pair of each, never rank 12
)

var kindNames = map[ComboKind]string{
	KindInvalid:   "invalid",
	KindSingle:    "single",
	KindPair:      "pair",
	KindTriple:    "triple",
	KindFourKind:  "four_kind",
	KindStraight:  "straight",
	KindDoubleSeq: "double_seq",
}

func (k ComboKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseComboKind maps a kind name back to its ComboKind.
func ParseComboKind(s string) ComboKind {
	for k, name := range kindNames {
		if name == s {
			return k
		}
	}
	return KindInvalid
}

// Combo is a meldable set of cards of one structural kind.
// Rank is the combo's defining rank: the shared rank for same-rank kinds,
// the highest rank for straights and double sequences.
// Strength is derived by the scorer and always recomputed, never persisted.
type Combo struct {
	Kind     ComboKind `json:"kind"`
	Rank     int32     `json:"rank_value"`
	Cards    []Card    `json:"cards"`
	Strength float64   `json:"strength"`
}

// Size returns the number of cards in the combo.
func (c Combo) Size() int { return len(c.Cards) }

// Valid checks the combo's structural invariants.
func (c Combo) Valid() bool {
	n := len(c.Cards)
	switch c.Kind {
	case KindSingle, KindPair, KindTriple, KindFourKind:
		want := map[ComboKind]int{KindSingle: 1, KindPair: 2, KindTriple: 3, KindFourKind: 4}[c.Kind]
		if n != want {
			return false
		}
		for _, card := range c.Cards {
			if card.Rank() != c.Rank {
				return false
			}
		}
		return true
	case KindStraight:
		if n < 3 || n > 10 {
			return false
		}
		ranks := comboRanks(c.Cards)
		for i, r := range ranks {
			if r == RankTwo {
				return false
			}
			if i > 0 && r != ranks[i-1]+1 {
				return false
			}
		}
		return ranks[n-1] == c.Rank
	case KindDoubleSeq:
		if n < 6 || n%2 != 0 {
			return false
		}
		ranks := comboRanks(c.Cards)
		pairRanks := make([]int32, 0, n/2)
		for i := 0; i < n; i += 2 {
			if ranks[i] == RankTwo || ranks[i] != ranks[i+1] {
				return false
			}
			pairRanks = append(pairRanks, ranks[i])
		}
		for i := 1; i < len(pairRanks); i++ {
			if pairRanks[i] != pairRanks[i-1]+1 {
				return false
			}
		}
		return pairRanks[len(pairRanks)-1] == c.Rank
	default:
		return false
	}
}

// Signature returns a structural key for the combo, ignoring suits.
func (c Combo) Signature() string {
	return fmt.Sprintf("%s:%d:%d", c.Kind, c.Rank, len(c.Cards))
}

func (c Combo) String() string {
	parts := make([]string, len(c.Cards))
	for i, card := range c.Cards {
		parts[i] = card.String()
	}
	return fmt.Sprintf("%s[%s]", c.Kind, strings.Join(parts, " "))
}

func comboRanks(cards []Card) []int32 {
	ranks := make([]int32, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank()
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	return ranks
}

// ComboSignatures returns the multiset signature of a combo list, usable
// as a dedup key for structurally identical sequences.
func ComboSignatures(combos []Combo) string {
	sigs := make([]string, len(combos))
	for i, c := range combos {
		sigs[i] = c.Signature()
	}
	sort.Strings(sigs)
	return strings.Join(sigs, "|")
}

// TotalCards sums the card counts of a combo list.
func TotalCards(combos []Combo) int {
	total := 0
	for _, c := range combos {
		total += len(c.Cards)
	}
	return total
}
