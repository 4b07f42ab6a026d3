package domain

import "testing"

func TestTruthfulInspectsOnlyPlayTail(t *testing.T) {
	pile := []Card{
		{Rank: Two, Suit: Clubs}, // earlier play, rank irrelevant
		{Rank: Five, Suit: Spades},
		{Rank: Five, Suit: Hearts},
	}
	play := &Play{PlayerID: "alice", Count: 2, ClaimedRank: Five}
	if !Truthful(pile, play) {
		t.Fatal("tail of two fives claiming 5 should be truthful")
	}

	pile[2] = Card{Rank: Nine, Suit: Hearts}
	if Truthful(pile, play) {
		t.Fatal("a nine in the tail should make the claim false")
	}
}

func TestResolveChallengeUntruthful(t *testing.T) {
	g := newLobby("alice", "bob")
	g.Started = true
	g.Pile = []Card{{Rank: Five, Suit: Spades}, {Rank: Nine, Suit: Hearts}}
	g.LastPlay = &Play{PlayerID: "alice", Count: 2, ClaimedRank: Five}
	g.Counter = &CounterClaim{PlayerID: "alice"}

	receiver, truthful := g.ResolveChallenge("bob")
	if truthful || receiver != "alice" {
		t.Fatalf("receiver = %s truthful = %v, want alice false", receiver, truthful)
	}
	if len(g.PlayerByID("alice").Hand) != 2 {
		t.Fatalf("alice hand = %d, want the whole pile", len(g.PlayerByID("alice").Hand))
	}
	if len(g.Pile) != 0 || g.LastPlay != nil || g.ChallengeDeadline != nil || g.Counter != nil {
		t.Fatal("settlement must clear the pile and all transient fields")
	}
}

func TestResolveChallengeTruthful(t *testing.T) {
	g := newLobby("alice", "bob")
	g.Started = true
	g.Pile = []Card{{Rank: Five, Suit: Spades}, {Rank: Five, Suit: Hearts}}
	g.LastPlay = &Play{PlayerID: "alice", Count: 2, ClaimedRank: Five}

	receiver, truthful := g.ResolveChallenge("bob")
	if !truthful || receiver != "bob" {
		t.Fatalf("receiver = %s truthful = %v, want bob true", receiver, truthful)
	}
	if len(g.PlayerByID("bob").Hand) != 2 {
		t.Fatalf("bob hand = %d, want the whole pile", len(g.PlayerByID("bob").Hand))
	}
}

func TestResolveCounterTransfersToLatestActor(t *testing.T) {
	g := newLobby("alice", "bob")
	g.Started = true
	g.Pile = []Card{{Rank: Five, Suit: Spades}, {Rank: Nine, Suit: Hearts}, {Rank: Two, Suit: Clubs}}
	g.LastPlay = &Play{PlayerID: "bob", Count: 1, ClaimedRank: Six}
	g.Counter = &CounterClaim{PlayerID: "alice", OtherPlayed: true}

	receiver := g.ResolveCounter()
	if receiver != "bob" {
		t.Fatalf("receiver = %s, want bob", receiver)
	}
	if len(g.PlayerByID("bob").Hand) != 3 {
		t.Fatalf("bob hand = %d, want 3", len(g.PlayerByID("bob").Hand))
	}
	if len(g.Pile) != 0 || g.Counter != nil {
		t.Fatal("counter settlement must clear pile and claim")
	}
}
