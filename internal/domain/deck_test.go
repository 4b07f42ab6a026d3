package domain

import (
	"math/rand"
	"testing"
)

func TestDeckCount(t *testing.T) {
	tests := []struct {
		players int
		want    int
	}{
		{1, 1}, {2, 1}, {5, 1}, {6, 2}, {10, 2}, {11, 3},
	}
	for _, tt := range tests {
		if got := DeckCount(tt.players); got != tt.want {
			t.Fatalf("DeckCount(%d) = %d, want %d", tt.players, got, tt.want)
		}
	}
}

func TestMaxPlayable(t *testing.T) {
	if got := MaxPlayable(3); got != 4 {
		t.Fatalf("MaxPlayable(3) = %d, want 4", got)
	}
	if got := MaxPlayable(7); got != 8 {
		t.Fatalf("MaxPlayable(7) = %d, want 8", got)
	}
}

func TestNewDeckComposition(t *testing.T) {
	for _, deckCount := range []int{1, 2, 3} {
		deck := NewDeck(deckCount)
		if len(deck) != deckCount*52 {
			t.Fatalf("deck size = %d, want %d", len(deck), deckCount*52)
		}
		counts := make(map[Card]int)
		for _, c := range deck {
			counts[c]++
		}
		if len(counts) != 52 {
			t.Fatalf("distinct cards = %d, want 52", len(counts))
		}
		for c, n := range counts {
			if n != deckCount {
				t.Fatalf("card %s appears %d times, want %d", c, n, deckCount)
			}
		}
	}
}

func TestShuffleDeckPreservesCards(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	deck := NewDeck(2)
	shuffled := ShuffleDeck(deck, rng)

	if len(shuffled) != len(deck) {
		t.Fatalf("shuffled size = %d, want %d", len(shuffled), len(deck))
	}
	before := make(map[Card]int)
	after := make(map[Card]int)
	for _, c := range deck {
		before[c]++
	}
	for _, c := range shuffled {
		after[c]++
	}
	for c, n := range before {
		if after[c] != n {
			t.Fatalf("card %s count changed from %d to %d", c, n, after[c])
		}
	}
}
