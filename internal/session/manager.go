// Package session keeps a registry of concurrently running games keyed by
// uuid, so a front end can drive many games through one rules engine.
package session

import (
	goerrors "errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Snapshot is a read-only view of a game at one moment.
type Snapshot struct {
	ID            string
	StateString   string
	FEN           string
	CurrentPlayer chess.Player
	Status        engine.Status
	Result        *engine.Result
	Ply           int
}

// entry guards one game; moves on different games do not contend.
type entry struct {
	mu   sync.Mutex
	game *engine.GameState
}

// Manager is a registry of games. It is safe for concurrent use.
type Manager struct {
	cfg   *config.Config
	games map[string]*entry
	mu    sync.RWMutex

	// Every position reached in any game.
	seen *hashing.ThreadSafePositionTable
}

// NewManager creates an empty registry that logs through cfg.
func NewManager(cfg *config.Config) *Manager {
	if cfg == nil {
		cfg = config.NewConfig()
		cfg.Verbosity = 0
	}
	return &Manager{
		cfg:   cfg,
		games: make(map[string]*entry),
		seen:  hashing.NewThreadSafePositionTable(),
	}
}

// Create starts a game from the standard position and returns its id.
func (m *Manager) Create() string {
	return m.register(engine.NewGame())
}

// CreateFromFEN starts a game from a FEN position.
func (m *Manager) CreateFromFEN(fen string) (string, error) {
	game, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return "", errors.Wrap(err, "create game")
	}
	return m.register(game), nil
}

func (m *Manager) register(game *engine.GameState) string {
	id := uuid.New().String()
	m.seen.Add(game.StateString())

	m.mu.Lock()
	m.games[id] = &entry{game: game}
	m.mu.Unlock()

	m.cfg.Logf(2, "game %s created at %s\n", id, game.FEN())
	return id
}

func (m *Manager) lookup(id string) (*entry, error) {
	m.mu.RLock()
	e, ok := m.games[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("game %s: %w", id, errors.ErrUnknownGame)
	}
	return e, nil
}

// Get returns a snapshot of the game.
func (m *Manager) Get(id string) (Snapshot, error) {
	e, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(id, e.game), nil
}

// LegalMoves returns the legal moves of the side to move in coordinate
// notation, sorted.
func (m *Manager) LegalMoves(id string) ([]string, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.game.IsGameOver() {
		return []string{}, nil
	}
	moves := e.game.AllLegalMovesFor(e.game.CurrentPlayer())
	out := make([]string, 0, len(moves))
	for _, move := range moves {
		out = append(out, move.String())
	}
	slices.Sort(out)
	return out, nil
}

// Move plays a move given in coordinate notation and returns the new
// snapshot. Move errors carry the game id.
func (m *Manager) Move(id, text string) (Snapshot, error) {
	e, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.game.MakeMoveString(text); err != nil {
		var moveErr *errors.MoveError
		if goerrors.As(err, &moveErr) {
			moveErr.GameID = id
		}
		m.cfg.Logf(2, "game %s: rejected %s: %v\n", id, text, err)
		return snapshot(id, e.game), err
	}

	m.seen.Add(e.game.StateString())
	if result := e.game.Result(); result != nil {
		m.cfg.Logf(1, "game %s finished: %s\n", id, result)
	}
	return snapshot(id, e.game), nil
}

// Remove drops the game from the registry.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("game %s: %w", id, errors.ErrUnknownGame)
	}
	delete(m.games, id)
	m.cfg.Logf(2, "game %s removed\n", id)
	return nil
}

// IDs returns the registered ids in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	ids := maps.Keys(m.games)
	m.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Len returns the number of registered games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// PositionsSeen returns the number of distinct positions reached across
// all games, removed ones included.
func (m *Manager) PositionsSeen() int {
	return m.seen.UniqueCount()
}

func snapshot(id string, game *engine.GameState) Snapshot {
	return Snapshot{
		ID:            id,
		StateString:   game.StateString(),
		FEN:           game.FEN(),
		CurrentPlayer: game.CurrentPlayer(),
		Status:        game.Status(),
		Result:        game.Result(),
		Ply:           len(game.History()),
	}
}
