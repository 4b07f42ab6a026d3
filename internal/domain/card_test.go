package domain

import "testing"

func TestRankCycleWraps(t *testing.T) {
	r := Ace
	for i := 0; i < RankCount; i++ {
		r = r.Next()
	}
	if r != Ace {
		t.Fatalf("13 steps from A = %s, want A", r)
	}
	if King.Next() != Ace {
		t.Fatalf("K.Next() = %s, want A", King.Next())
	}
}

func TestParseRank(t *testing.T) {
	tests := []struct {
		symbol string
		want   Rank
		ok     bool
	}{
		{"A", Ace, true},
		{"10", Ten, true},
		{"J", Jack, true},
		{"K", King, true},
		{"joker", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseRank(tt.symbol)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("ParseRank(%q) = %v, %v; want %v, %v", tt.symbol, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseSuitRoundTrip(t *testing.T) {
	for s := Suit(0); s < SuitCount; s++ {
		got, ok := ParseSuit(s.String())
		if !ok || got != s {
			t.Fatalf("ParseSuit(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseSuit("X"); ok {
		t.Fatal("ParseSuit(X) should fail")
	}
}

func TestCardString(t *testing.T) {
	c := Card{Rank: Ten, Suit: Hearts}
	if c.String() != "10H" {
		t.Fatalf("card string = %s, want 10H", c.String())
	}
}
