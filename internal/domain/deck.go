package domain

import "math/rand"

// DeckCount returns how many 52-card decks are combined for the given player
// count: one deck per five players, rounded up, never fewer than one.
func DeckCount(playerCount int) int {
	n := (playerCount + 4) / 5
	if n < 1 {
		n = 1
	}
	return n
}

// MaxPlayable is the ceiling on cards playable in a single turn: four copies
// of the claimed rank exist per deck in play.
func MaxPlayable(playerCount int) int {
	return DeckCount(playerCount) * 4
}

// NewDeck produces deckCount combined standard decks in sorted order. Every
// exact rank-suit pair appears exactly deckCount times.
func NewDeck(deckCount int) []Card {
	deck := make([]Card, 0, deckCount*RankCount*SuitCount)
	for d := 0; d < deckCount; d++ {
		for r := Rank(0); r < RankCount; r++ {
			for s := Suit(0); s < SuitCount; s++ {
				deck = append(deck, Card{Rank: r, Suit: s})
			}
		}
	}
	return deck
}

// ShuffleDeck returns a uniformly shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
