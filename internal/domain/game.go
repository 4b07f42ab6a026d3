package domain

import "time"

// Player holds the concealed state for a participant in a session.
type Player struct {
	ID     string
	Name   string
	Host   bool
	ConnID string // transport connection the player is bound to
	Hand   []Card
}

// Play records the most recent play since the last settlement: who acted,
// how many cards went face-down onto the pile, and the rank they claimed.
type Play struct {
	PlayerID    string
	Count       int
	ClaimedRank Rank
}

// CounterClaim tracks peanut-butter eligibility: the player who may invoke
// it, and whether a different player has played since that claimant's play.
type CounterClaim struct {
	PlayerID    string
	OtherPlayed bool
}

// Game is the authoritative per-session aggregate.
type Game struct {
	ID      string
	Players []*Player // ordered; turn rotation follows slice order
	HostID  string
	Started bool

	Turn              int  // index into Players of whose turn it is
	RequiredRank      Rank // cyclic cursor, independent of true card ranks
	Pile              []Card
	LastPlay          *Play
	ChallengeDeadline *time.Time
	Counter           *CounterClaim
}

// PlayerIndex returns the position of the given player, or -1 if absent.
func (g *Game) PlayerIndex(id string) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// PlayerByID returns the player with the given id, or nil if absent.
func (g *Game) PlayerByID(id string) *Player {
	if i := g.PlayerIndex(id); i >= 0 {
		return g.Players[i]
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is, or nil before start.
func (g *Game) CurrentPlayer() *Player {
	if !g.Started || g.Turn < 0 || g.Turn >= len(g.Players) {
		return nil
	}
	return g.Players[g.Turn]
}

// HandSizes returns the hand size of every player in seating order.
func (g *Game) HandSizes() []int {
	sizes := make([]int, len(g.Players))
	for i, p := range g.Players {
		sizes[i] = len(p.Hand)
	}
	return sizes
}

// RemoveCards removes toRemove from hand as a multiset. The second return is
// false, and the hand is returned unchanged, when any requested card is not
// held in sufficient quantity.
func RemoveCards(hand []Card, toRemove []Card) ([]Card, bool) {
	counts := make(map[Card]int, len(toRemove))
	for _, c := range toRemove {
		counts[c]++
	}

	updated := make([]Card, 0, len(hand))
	for _, c := range hand {
		if n, ok := counts[c]; ok && n > 0 {
			counts[c] = n - 1
			continue
		}
		updated = append(updated, c)
	}

	for _, n := range counts {
		if n > 0 {
			return hand, false
		}
	}
	return updated, true
}

// DealRoundRobin replaces every hand by dealing the deck one card at a time,
// starting from the player immediately after dealerIdx, until exhausted.
// Hand sizes end up differing by at most one.
func (g *Game) DealRoundRobin(dealerIdx int, deck []Card) {
	for _, p := range g.Players {
		p.Hand = nil
	}
	idx := (dealerIdx + 1) % len(g.Players)
	for _, c := range deck {
		g.Players[idx].Hand = append(g.Players[idx].Hand, c)
		idx = (idx + 1) % len(g.Players)
	}
}

// AdvanceTurn moves the turn pointer to the next player cyclically.
func (g *Game) AdvanceTurn() {
	g.Turn = (g.Turn + 1) % len(g.Players)
}

// AdvanceRank moves the required-rank cursor one step, wrapping K to A.
func (g *Game) AdvanceRank() {
	g.RequiredRank = g.RequiredRank.Next()
}

// AcceptPlay commits a validated play: the cards leave the actor's hand for
// the pile tail, the play and counter claim are recorded, and the turn and
// required-rank cursors advance. Returns false, with no mutation, when the
// actor does not hold every named card.
func (g *Game) AcceptPlay(actorID string, cards []Card, claimed Rank) bool {
	actor := g.PlayerByID(actorID)
	if actor == nil {
		return false
	}
	hand, ok := RemoveCards(actor.Hand, cards)
	if !ok {
		return false
	}
	actor.Hand = hand
	g.Pile = append(g.Pile, cards...)
	g.LastPlay = &Play{PlayerID: actorID, Count: len(cards), ClaimedRank: claimed}
	g.noteCounterClaim(actorID)
	g.AdvanceTurn()
	g.AdvanceRank()
	return true
}

// noteCounterClaim updates peanut-butter bookkeeping for an accepted play.
// A player's own play (re)arms their claim; anyone else's play opens the
// claimant's gate.
func (g *Game) noteCounterClaim(actorID string) {
	if g.Counter == nil || g.Counter.PlayerID == actorID {
		g.Counter = &CounterClaim{PlayerID: actorID}
		return
	}
	g.Counter.OtherPlayed = true
}

// StampChallengeWindow opens the challenge window against the play just
// accepted.
func (g *Game) StampChallengeWindow(now time.Time, window time.Duration) {
	deadline := now.Add(window)
	g.ChallengeDeadline = &deadline
}

// ChallengeOpen reports whether a challenge arriving at now is still valid.
// The check is a pure timestamp comparison; nothing fires when the window
// lapses on its own.
func (g *Game) ChallengeOpen(now time.Time) bool {
	return g.LastPlay != nil && g.ChallengeDeadline != nil && !now.After(*g.ChallengeDeadline)
}

// RemovePlayer deletes the player from the session and repairs everything
// that referenced them: the turn pointer stays on a present player, the host
// role migrates to the first remaining player, and transient round fields
// that named the departed player are cleared so no settlement can target an
// absent player. Reports whether the player was present.
func (g *Game) RemovePlayer(id string) bool {
	idx := g.PlayerIndex(id)
	if idx < 0 {
		return false
	}
	wasHost := g.Players[idx].ID == g.HostID
	g.Players = append(g.Players[:idx], g.Players[idx+1:]...)

	if len(g.Players) == 0 {
		g.Turn = 0
	} else {
		if idx < g.Turn {
			g.Turn--
		}
		if g.Turn >= len(g.Players) {
			g.Turn = 0
		}
	}

	if wasHost && len(g.Players) > 0 {
		g.HostID = g.Players[0].ID
		g.Players[0].Host = true
	}

	if g.LastPlay != nil && g.LastPlay.PlayerID == id {
		g.LastPlay = nil
		g.ChallengeDeadline = nil
		g.Counter = nil
	}
	if g.Counter != nil && g.Counter.PlayerID == id {
		g.Counter = nil
	}
	return true
}
