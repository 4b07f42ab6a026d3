package domain

// Suit identifies one of the four French suits.
type Suit int8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// SuitCount is the number of suits in a standard deck.
const SuitCount = 4

var suitNames = [SuitCount]string{"S", "H", "D", "C"}

func (s Suit) String() string {
	if s < 0 || int(s) >= SuitCount {
		return "?"
	}
	return suitNames[s]
}

// ParseSuit maps a wire suit symbol back to its Suit value.
func ParseSuit(symbol string) (Suit, bool) {
	for i, name := range suitNames {
		if name == symbol {
			return Suit(i), true
		}
	}
	return 0, false
}

// Rank identifies a card rank in required-rank cycle order, Ace low.
type Rank int8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// RankCount is the length of the fixed required-rank cycle.
const RankCount = 13

var rankNames = [RankCount]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (r Rank) String() string {
	if r < 0 || int(r) >= RankCount {
		return "?"
	}
	return rankNames[r]
}

// Next returns the following rank in the cycle, wrapping King back to Ace.
func (r Rank) Next() Rank {
	return (r + 1) % RankCount
}

// ParseRank maps a wire rank symbol back to its Rank value.
func ParseRank(symbol string) (Rank, bool) {
	for i, name := range rankNames {
		if name == symbol {
			return Rank(i), true
		}
	}
	return 0, false
}

// Card is a single playing card. It is a comparable value type so hands can
// be treated as multisets.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
