package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sribet21/Cardistry/internal/app"
	"github.com/sribet21/Cardistry/internal/domain"
)

func TestParseCards(t *testing.T) {
	cards, ok := parseCards([]app.CardView{
		{Rank: "5", Suit: "S"},
		{Rank: "10", Suit: "H"},
		{Rank: "K", Suit: "C"},
	})
	require.True(t, ok)
	assert.Equal(t, []domain.Card{
		{Rank: domain.Five, Suit: domain.Spades},
		{Rank: domain.Ten, Suit: domain.Hearts},
		{Rank: domain.King, Suit: domain.Clubs},
	}, cards)

	_, ok = parseCards([]app.CardView{{Rank: "joker", Suit: "S"}})
	assert.False(t, ok)
	_, ok = parseCards([]app.CardView{{Rank: "5", Suit: "X"}})
	assert.False(t, ok)
}

func dialTestGateway(t *testing.T) (*websocket.Conn, func()) {
	t.Helper()
	reg := app.NewRegistry(app.Options{})
	gw := NewGateway(reg, zap.NewNop())
	srv := httptest.NewServer(gw)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn, func() {
		_ = conn.Close()
		srv.Close()
	}
}

func TestGatewayCreateSessionFlow(t *testing.T) {
	conn, cleanup := dialTestGateway(t)
	defer cleanup()

	data, err := json.Marshal(createRequest{Username: "Alice"})
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(envelope{Op: OpCreateSession, Data: data}))

	var ackEnv envelope
	require.NoError(t, conn.ReadJSON(&ackEnv))
	require.Equal(t, OpSessionAck, ackEnv.Op)
	var ack sessionAck
	require.NoError(t, json.Unmarshal(ackEnv.Data, &ack))
	assert.NotEmpty(t, ack.SessionID)
	assert.NotEmpty(t, ack.PlayerID)

	var stateEnv envelope
	require.NoError(t, conn.ReadJSON(&stateEnv))
	require.Equal(t, OpSessionState, stateEnv.Op)
	var state app.SessionState
	require.NoError(t, json.Unmarshal(stateEnv.Data, &state))
	assert.Equal(t, ack.SessionID, state.SessionID)
	require.Len(t, state.Players, 1)
	assert.True(t, state.Players[0].Host)

	var handEnv envelope
	require.NoError(t, conn.ReadJSON(&handEnv))
	require.Equal(t, OpHand, handEnv.Op)
	var hand app.HandPayload
	require.NoError(t, json.Unmarshal(handEnv.Data, &hand))
	assert.Equal(t, ack.PlayerID, hand.PlayerID)
	assert.Empty(t, hand.Hand)
}

func TestGatewayRejectionGoesToActorOnly(t *testing.T) {
	conn, cleanup := dialTestGateway(t)
	defer cleanup()

	data, err := json.Marshal(joinRequest{SessionID: "missing", Username: "Bob"})
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(envelope{Op: OpJoinSession, Data: data}))

	var env envelope
	require.NoError(t, conn.ReadJSON(&env))
	require.Equal(t, OpActionError, env.Op)
	var payload actionError
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, app.ErrSessionNotFound.Error(), payload.Message)
}
