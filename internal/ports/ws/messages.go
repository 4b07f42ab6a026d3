package ws

import (
	"encoding/json"

	"github.com/sribet21/Cardistry/internal/app"
)

// envelope frames every message in both directions.
type envelope struct {
	Op   int64           `json:"op"`
	Data json.RawMessage `json:"data,omitempty"`
}

type createRequest struct {
	Username string `json:"username"`
}

type joinRequest struct {
	SessionID string `json:"sessionId"`
	Username  string `json:"username"`
}

type kickRequest struct {
	SessionID string `json:"sessionId"`
	PlayerID  string `json:"playerId"`
	TargetID  string `json:"targetId"`
}

type startRequest struct {
	SessionID string `json:"sessionId"`
	PlayerID  string `json:"playerId"`
}

type playRequest struct {
	SessionID   string         `json:"sessionId"`
	PlayerID    string         `json:"playerId"`
	Cards       []app.CardView `json:"cards"`
	ClaimedRank string         `json:"claimedRank"`
}

type challengeRequest struct {
	SessionID string `json:"sessionId"`
	PlayerID  string `json:"playerId"`
}

// sessionAck confirms a create or join and carries the caller's identifiers.
type sessionAck struct {
	SessionID string `json:"sessionId"`
	PlayerID  string `json:"playerId"`
}

// actionError reports a rejected action to the acting connection only.
type actionError struct {
	Message string `json:"message"`
}
