package app

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sribet21/Cardistry/internal/domain"
)

// Rejection causes. The transport drops rejected actions silently, but the
// causes are explicit here so behavior is assertable.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrStarted         = errors.New("session already started")
	ErrNotStarted      = errors.New("session not started")
	ErrSessionFull     = errors.New("session full")
	ErrNotHost         = errors.New("actor is not session host")
	ErrUnknownPlayer   = errors.New("player not found")
	ErrTooFewPlayers   = errors.New("not enough players to start")
	ErrNotYourTurn     = errors.New("not actor's turn")
	ErrBadCardCount    = errors.New("card count out of range")
	ErrCardNotHeld     = errors.New("card not in actor's hand")
	ErrNoChallenge     = errors.New("no play open to challenge")
	ErrWindowClosed    = errors.New("challenge window closed")
	ErrNoCounter       = errors.New("no counter claim held")
	ErrCounterNotReady = errors.New("no other play since claimant's play")
)

// Defaults applied by NewRegistry when an option is left zero.
const (
	DefaultChallengeWindow = 5 * time.Second
	DefaultMaxPlayers      = 10
	// MinPlayersToStart defines the minimum seated players required to start.
	MinPlayersToStart = 2
)

// Options tune a Registry. Zero values fall back to the defaults above; Rand
// and Now are injectable for deterministic tests.
type Options struct {
	ChallengeWindow time.Duration
	MaxPlayers      int
	MinPlayers      int
	Rand            *rand.Rand
	Now             func() time.Time
}

// session pairs a game with the lock that serializes every mutation against
// it. Operations on distinct sessions only share the registry's read lock.
type session struct {
	mu   sync.Mutex
	game *domain.Game
}

// Registry owns the process-wide collection of live sessions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session

	window     time.Duration
	maxPlayers int
	minPlayers int

	// rng is shared across sessions; shuffles take rngMu.
	rngMu sync.Mutex
	rng   *rand.Rand

	now func() time.Time
}

// NewRegistry constructs a Registry with the provided options.
func NewRegistry(opts Options) *Registry {
	if opts.ChallengeWindow <= 0 {
		opts.ChallengeWindow = DefaultChallengeWindow
	}
	if opts.MaxPlayers <= 0 {
		opts.MaxPlayers = DefaultMaxPlayers
	}
	if opts.MinPlayers <= 0 {
		opts.MinPlayers = MinPlayersToStart
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Registry{
		sessions:   make(map[string]*session),
		window:     opts.ChallengeWindow,
		maxPlayers: opts.MaxPlayers,
		minPlayers: opts.MinPlayers,
		rng:        opts.Rand,
		now:        opts.Now,
	}
}

// CreateSession opens a new lobby with a single host player. It never fails.
func (r *Registry) CreateSession(username, connID string) (sessionID, playerID string, events []Event) {
	sessionID = uuid.NewString()
	playerID = uuid.NewString()

	game := &domain.Game{
		ID:     sessionID,
		HostID: playerID,
		Players: []*domain.Player{{
			ID:     playerID,
			Name:   username,
			Host:   true,
			ConnID: connID,
		}},
	}

	r.mu.Lock()
	r.sessions[sessionID] = &session{game: game}
	r.mu.Unlock()

	return sessionID, playerID, sessionEvents(game)
}

// Join appends a non-host player to a lobby.
func (r *Registry) Join(sessionID, username, connID string) (string, []Event, error) {
	s, err := r.lookup(sessionID)
	if err != nil {
		return "", nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if g.Started {
		return "", nil, ErrStarted
	}
	if len(g.Players) >= r.maxPlayers {
		return "", nil, ErrSessionFull
	}

	playerID := uuid.NewString()
	g.Players = append(g.Players, &domain.Player{
		ID:     playerID,
		Name:   username,
		ConnID: connID,
	})
	return playerID, sessionEvents(g), nil
}

// Kick removes a player from a lobby on the host's behalf.
func (r *Registry) Kick(sessionID, targetID, byID string) ([]Event, error) {
	s, err := r.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if byID != g.HostID {
		return nil, ErrNotHost
	}
	if g.Started {
		return nil, ErrStarted
	}
	if !g.RemovePlayer(targetID) {
		return nil, ErrUnknownPlayer
	}
	return sessionEvents(g), nil
}

// Start deals a fresh multi-deck and moves the session in progress. The host
// deals, so play begins with the player immediately after them.
func (r *Registry) Start(sessionID, byID string) ([]Event, error) {
	s, err := r.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if byID != g.HostID {
		return nil, ErrNotHost
	}
	if g.Started {
		return nil, ErrStarted
	}
	if len(g.Players) < r.minPlayers {
		return nil, ErrTooFewPlayers
	}

	deck := domain.NewDeck(domain.DeckCount(len(g.Players)))
	r.rngMu.Lock()
	deck = domain.ShuffleDeck(deck, r.rng)
	r.rngMu.Unlock()

	dealerIdx := g.PlayerIndex(g.HostID)
	g.DealRoundRobin(dealerIdx, deck)

	g.Started = true
	g.Turn = (dealerIdx + 1) % len(g.Players)
	g.RequiredRank = domain.Ace
	g.Pile = nil
	g.LastPlay = nil
	g.ChallengeDeadline = nil
	g.Counter = nil

	return sessionEvents(g), nil
}

// PlayCards validates and commits a face-down play claiming the given rank,
// then opens the challenge window against it.
func (r *Registry) PlayCards(sessionID, byID string, cards []domain.Card, claimed domain.Rank) ([]Event, error) {
	s, err := r.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if !g.Started {
		return nil, ErrNotStarted
	}
	current := g.CurrentPlayer()
	if current == nil || current.ID != byID {
		return nil, ErrNotYourTurn
	}
	if len(cards) < 1 || len(cards) > domain.MaxPlayable(len(g.Players)) {
		return nil, ErrBadCardCount
	}
	if !g.AcceptPlay(byID, cards, claimed) {
		return nil, ErrCardNotHeld
	}
	g.StampChallengeWindow(r.now(), r.window)

	return sessionEvents(g), nil
}

// CallChallenge accuses the most recent play of lying. Valid only while the
// window stamped at play time is still open; the check is a timestamp
// comparison at the moment the call arrives.
func (r *Registry) CallChallenge(sessionID, byID string) ([]Event, error) {
	s, err := r.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if !g.Started {
		return nil, ErrNotStarted
	}
	if g.PlayerByID(byID) == nil {
		return nil, ErrUnknownPlayer
	}
	if g.LastPlay == nil || g.ChallengeDeadline == nil {
		return nil, ErrNoChallenge
	}
	if !g.ChallengeOpen(r.now()) {
		g.ChallengeDeadline = nil
		return nil, ErrWindowClosed
	}

	g.ResolveChallenge(byID)
	return sessionEvents(g), nil
}

// InvokeCounter is the peanut-butter call: the actor of an earlier unsettled
// play redirects the pile onto the most recent player. The claimant's
// invocation consumes the claim whether or not the gate was open.
func (r *Registry) InvokeCounter(sessionID, byID string) ([]Event, error) {
	s, err := r.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if !g.Started {
		return nil, ErrNotStarted
	}
	if g.PlayerByID(byID) == nil {
		return nil, ErrUnknownPlayer
	}
	if g.Counter == nil || g.Counter.PlayerID != byID {
		return nil, ErrNoCounter
	}
	if !g.Counter.OtherPlayed || g.LastPlay == nil {
		g.Counter = nil
		return nil, ErrCounterNotReady
	}

	g.ResolveCounter()
	return sessionEvents(g), nil
}

// HandleDisconnect removes the player bound to the given connection from any
// session holding one. The session list is snapshotted first so the scan
// never holds the registry lock while mutating a session.
func (r *Registry) HandleDisconnect(connID string) []Event {
	r.mu.RLock()
	snapshot := make([]*session, 0, len(r.sessions))
	for _, s := range r.sessions {
		snapshot = append(snapshot, s)
	}
	r.mu.RUnlock()

	var events []Event
	for _, s := range snapshot {
		s.mu.Lock()
		g := s.game
		var departed string
		for _, p := range g.Players {
			if p.ConnID == connID {
				departed = p.ID
				break
			}
		}
		if departed != "" && g.RemovePlayer(departed) && len(g.Players) > 0 {
			events = append(events, sessionEvents(g)...)
		}
		s.mu.Unlock()
	}
	return events
}

// Snapshot returns the projection of a single session, or an error when the
// session does not exist.
func (r *Registry) Snapshot(sessionID string) (SessionState, error) {
	s, err := r.lookup(sessionID)
	if err != nil {
		return SessionState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildProjection(s.game), nil
}

func (r *Registry) lookup(sessionID string) (*session, error) {
	r.mu.RLock()
	s, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}
