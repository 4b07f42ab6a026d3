package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/sribet21/Cardistry/internal/app"
	"github.com/sribet21/Cardistry/internal/domain"
)

// Gateway is the websocket transport adapter: it turns inbound envelopes
// into registry calls and fans registry events back out to the bound
// connections. Rejected actions produce an error envelope for the acting
// connection and nothing else.
type Gateway struct {
	registry *app.Registry
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	conns map[string]*client
}

// client is one websocket connection. Writes are serialized by mu; the read
// loop is the only reader.
type client struct {
	id string
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *client) send(op int64, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(envelope{Op: op, Data: data})
}

// NewGateway constructs a Gateway over the given registry.
func NewGateway(registry *app.Registry, log *zap.Logger) *Gateway {
	return &Gateway{
		registry: registry,
		log:      log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[string]*client),
	}
}

// ServeHTTP upgrades the request and runs the connection's read loop until
// the peer goes away, then sweeps the player out of their session.
func (gw *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := gw.upgrader.Upgrade(w, r, nil)
	if err != nil {
		gw.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{id: uuid.NewString(), ws: conn}
	gw.mu.Lock()
	gw.conns[c.id] = c
	gw.mu.Unlock()
	gw.log.Info("connection opened", zap.String("conn", c.id))

	gw.readLoop(c)

	gw.mu.Lock()
	delete(gw.conns, c.id)
	gw.mu.Unlock()
	_ = conn.Close()

	events := gw.registry.HandleDisconnect(c.id)
	gw.deliver(events)
	gw.log.Info("connection closed", zap.String("conn", c.id))
}

func (gw *Gateway) readLoop(c *client) {
	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			return
		}
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			gw.rejected(c, "malformed envelope")
			continue
		}
		gw.dispatch(c, env)
	}
}

func (gw *Gateway) dispatch(c *client, env envelope) {
	switch env.Op {
	case OpCreateSession:
		var req createRequest
		if !gw.decode(c, env.Data, &req) {
			return
		}
		sessionID, playerID, events := gw.registry.CreateSession(req.Username, c.id)
		gw.ack(c, sessionID, playerID)
		gw.deliver(events)
		gw.log.Info("session created",
			zap.String("session", sessionID), zap.String("player", playerID))

	case OpJoinSession:
		var req joinRequest
		if !gw.decode(c, env.Data, &req) {
			return
		}
		playerID, events, err := gw.registry.Join(req.SessionID, req.Username, c.id)
		if err != nil {
			gw.reject(c, "join", req.SessionID, err)
			return
		}
		gw.ack(c, req.SessionID, playerID)
		gw.deliver(events)

	case OpKickPlayer:
		var req kickRequest
		if !gw.decode(c, env.Data, &req) {
			return
		}
		events, err := gw.registry.Kick(req.SessionID, req.TargetID, req.PlayerID)
		if err != nil {
			gw.reject(c, "kick", req.SessionID, err)
			return
		}
		gw.deliver(events)

	case OpStartGame:
		var req startRequest
		if !gw.decode(c, env.Data, &req) {
			return
		}
		events, err := gw.registry.Start(req.SessionID, req.PlayerID)
		if err != nil {
			gw.reject(c, "start", req.SessionID, err)
			return
		}
		gw.deliver(events)

	case OpPlayCards:
		var req playRequest
		if !gw.decode(c, env.Data, &req) {
			return
		}
		cards, ok := parseCards(req.Cards)
		if !ok {
			gw.rejected(c, "unknown card")
			return
		}
		claimed, ok := domain.ParseRank(req.ClaimedRank)
		if !ok {
			gw.rejected(c, "unknown rank")
			return
		}
		events, err := gw.registry.PlayCards(req.SessionID, req.PlayerID, cards, claimed)
		if err != nil {
			gw.reject(c, "play", req.SessionID, err)
			return
		}
		gw.deliver(events)

	case OpCallChallenge:
		var req challengeRequest
		if !gw.decode(c, env.Data, &req) {
			return
		}
		events, err := gw.registry.CallChallenge(req.SessionID, req.PlayerID)
		if err != nil {
			gw.reject(c, "challenge", req.SessionID, err)
			return
		}
		gw.deliver(events)

	case OpPeanutButter:
		var req challengeRequest
		if !gw.decode(c, env.Data, &req) {
			return
		}
		events, err := gw.registry.InvokeCounter(req.SessionID, req.PlayerID)
		if err != nil {
			gw.reject(c, "peanut butter", req.SessionID, err)
			return
		}
		gw.deliver(events)

	default:
		gw.log.Warn("unknown opcode", zap.Int64("op", env.Op))
	}
}

// deliver routes each event payload to its recipient connections.
func (gw *Gateway) deliver(events []app.Event) {
	for _, ev := range events {
		op := OpSessionState
		if ev.Kind == app.EventHand {
			op = OpHand
		}
		for _, connID := range ev.Recipients {
			gw.mu.RLock()
			c, ok := gw.conns[connID]
			gw.mu.RUnlock()
			if !ok {
				continue
			}
			if err := c.send(op, ev.Payload); err != nil {
				gw.log.Warn("send failed",
					zap.String("conn", connID), zap.Error(err))
			}
		}
	}
}

func (gw *Gateway) decode(c *client, data json.RawMessage, target any) bool {
	if err := json.Unmarshal(data, target); err != nil {
		gw.rejected(c, "malformed payload")
		return false
	}
	return true
}

func (gw *Gateway) ack(c *client, sessionID, playerID string) {
	if err := c.send(OpSessionAck, sessionAck{SessionID: sessionID, PlayerID: playerID}); err != nil {
		gw.log.Warn("ack failed", zap.String("conn", c.id), zap.Error(err))
	}
}

// reject logs a rejected action and notifies only the acting connection.
func (gw *Gateway) reject(c *client, action, sessionID string, err error) {
	gw.log.Debug("action rejected",
		zap.String("action", action),
		zap.String("session", sessionID),
		zap.String("conn", c.id),
		zap.Error(err))
	gw.rejected(c, err.Error())
}

func (gw *Gateway) rejected(c *client, message string) {
	_ = c.send(OpActionError, actionError{Message: message})
}

func parseCards(views []app.CardView) ([]domain.Card, bool) {
	cards := make([]domain.Card, len(views))
	for i, v := range views {
		rank, ok := domain.ParseRank(v.Rank)
		if !ok {
			return nil, false
		}
		suit, ok := domain.ParseSuit(v.Suit)
		if !ok {
			return nil, false
		}
		cards[i] = domain.Card{Rank: rank, Suit: suit}
	}
	return cards, true
}
