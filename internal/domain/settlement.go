package domain

// Truthful reports whether the most recent play's claim holds. It inspects
// exactly the pile tail whose length equals the play's declared count, the
// cards actually placed by that play.
func Truthful(pile []Card, play *Play) bool {
	tail := pile[len(pile)-play.Count:]
	for _, c := range tail {
		if c.Rank != play.ClaimedRank {
			return false
		}
	}
	return true
}

// ResolveChallenge settles a challenge against the most recent play. An
// untruthful play sends the entire pile back to its actor; a truthful one
// sends it to the challenger. The caller must have verified the window is
// open. Returns the receiving player id and the truthfulness verdict.
func (g *Game) ResolveChallenge(challengerID string) (string, bool) {
	play := g.LastPlay
	truthful := Truthful(g.Pile, play)
	receiver := play.PlayerID
	if truthful {
		receiver = challengerID
	}
	g.transferPile(receiver)
	return receiver, truthful
}

// ResolveCounter settles a peanut-butter invocation: the entire pile goes to
// the actor of the most recent play, not the invoker. The caller must have
// verified eligibility. Returns the receiving player id.
func (g *Game) ResolveCounter() string {
	receiver := g.LastPlay.PlayerID
	g.transferPile(receiver)
	return receiver
}

// transferPile hands the whole pile to one player and clears every
// round-transient field, so no second outcome can apply to the same play.
func (g *Game) transferPile(receiverID string) {
	receiver := g.PlayerByID(receiverID)
	receiver.Hand = append(receiver.Hand, g.Pile...)
	g.Pile = nil
	g.LastPlay = nil
	g.ChallengeDeadline = nil
	g.Counter = nil
}
