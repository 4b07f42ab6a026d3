package app

// EventKind identifies the outbound broadcast shapes.
type EventKind string

const (
	// EventSessionState is the public projection sent to every member of a
	// session after each state-changing operation.
	EventSessionState EventKind = "session_state"
	// EventHand is the private full-hand delivery for a single player.
	EventHand EventKind = "hand"
)

// Event is an outbound message produced by a registry operation. Recipients
// holds transport connection ids; the adapter only has to map them to live
// connections.
type Event struct {
	SessionID  string
	Kind       EventKind
	Payload    any
	Recipients []string
}

// PlayerSummary is the public view of a seated player. Hand contents never
// appear here, only the count.
type PlayerSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Host      bool   `json:"host"`
	CardCount int    `json:"cardCount"`
}

// LastPlaySummary describes the most recent unsettled play.
type LastPlaySummary struct {
	PlayerName  string `json:"playerName"`
	Count       int    `json:"count"`
	ClaimedRank string `json:"claimedRank"`
}

// SessionState is the public projection of a session.
type SessionState struct {
	SessionID         string           `json:"sessionId"`
	Players           []PlayerSummary  `json:"players"`
	Started           bool             `json:"started"`
	TurnPlayerID      string           `json:"turnPlayerId,omitempty"`
	RequiredRank      string           `json:"requiredRank,omitempty"`
	LastPlay          *LastPlaySummary `json:"lastPlay,omitempty"`
	PileSize          int              `json:"pileSize"`
	ChallengeDeadline int64            `json:"challengeDeadline,omitempty"` // unix ms
}

// CardView is the wire form of a single card.
type CardView struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// HandPayload carries one player's full current hand.
type HandPayload struct {
	PlayerID string     `json:"playerId"`
	Hand     []CardView `json:"hand"`
}
