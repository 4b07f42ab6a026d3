package app

import "github.com/sribet21/Cardistry/internal/domain"

// buildProjection derives the public view of a session. Concealed hands are
// reduced to counts.
func buildProjection(g *domain.Game) SessionState {
	players := make([]PlayerSummary, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, PlayerSummary{
			ID:        p.ID,
			Name:      p.Name,
			Host:      p.ID == g.HostID,
			CardCount: len(p.Hand),
		})
	}

	state := SessionState{
		SessionID: g.ID,
		Players:   players,
		Started:   g.Started,
		PileSize:  len(g.Pile),
	}

	if g.Started {
		if current := g.CurrentPlayer(); current != nil {
			state.TurnPlayerID = current.ID
		}
		state.RequiredRank = g.RequiredRank.String()
	}
	if g.LastPlay != nil {
		summary := &LastPlaySummary{
			Count:       g.LastPlay.Count,
			ClaimedRank: g.LastPlay.ClaimedRank.String(),
		}
		if actor := g.PlayerByID(g.LastPlay.PlayerID); actor != nil {
			summary.PlayerName = actor.Name
		}
		state.LastPlay = summary
	}
	if g.ChallengeDeadline != nil {
		state.ChallengeDeadline = g.ChallengeDeadline.UnixMilli()
	}
	return state
}

// toCardViews maps domain cards to their wire form.
func toCardViews(cards []domain.Card) []CardView {
	views := make([]CardView, len(cards))
	for i, c := range cards {
		views[i] = CardView{Rank: c.Rank.String(), Suit: c.Suit.String()}
	}
	return views
}

// sessionEvents emits the two outbound shapes for one session: the public
// projection to every member connection, then each player's hand to their
// own connection only.
func sessionEvents(g *domain.Game) []Event {
	conns := make([]string, 0, len(g.Players))
	for _, p := range g.Players {
		conns = append(conns, p.ConnID)
	}

	events := make([]Event, 0, len(g.Players)+1)
	events = append(events, Event{
		SessionID:  g.ID,
		Kind:       EventSessionState,
		Payload:    buildProjection(g),
		Recipients: conns,
	})
	for _, p := range g.Players {
		events = append(events, Event{
			SessionID:  g.ID,
			Kind:       EventHand,
			Payload:    HandPayload{PlayerID: p.ID, Hand: toCardViews(p.Hand)},
			Recipients: []string{p.ConnID},
		})
	}
	return events
}
