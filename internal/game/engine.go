package game

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mendeleevdice/mendeleev-go/internal/game/dice"
	"github.com/mendeleevdice/mendeleev-go/internal/game/market"
	"go.uber.org/zap"
)

var (
	// ErrGameNotFound is returned for an unknown game id.
	ErrGameNotFound = errors.New("game not found")
	// ErrGameEnded is returned for actions on a game closed with EndGame.
	ErrGameEnded = errors.New("game has ended")
)

// lockedSource lets games on different goroutines share one generator.
type lockedSource struct {
	mu  sync.Mutex
	src dice.Source
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Intn(n)
}

type engineGame struct {
	mu      sync.Mutex
	game    *Game
	replay  *Replay
	ended   bool
	started time.Time
}

// Engine runs many games side by side and serializes actions per game.
type Engine struct {
	logger *zap.Logger
	cfg    Rules
	source dice.Source

	mu    sync.RWMutex
	games map[string]*engineGame
}

// NewEngine creates an engine. A nil source draws a random seed.
func NewEngine(logger *zap.Logger, cfg Rules, src dice.Source) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if src == nil {
		src = dice.NewSource(0)
	}
	return &Engine{
		logger: logger,
		cfg:    cfg,
		source: &lockedSource{src: src},
		games:  make(map[string]*engineGame),
	}
}

func copyCards(cards []*market.Card) []*market.Card {
	out := make([]*market.Card, len(cards))
	for i, c := range cards {
		out[i] = c.Copy()
	}
	return out
}

// CreateGame shuffles both decks and starts a new game. It returns the game id.
func (e *Engine) CreateGame(playerCount int, basic, advanced []*market.Card) (string, error) {
	gameID := uuid.New().String()

	decks := Decks{Basic: copyCards(basic), Advanced: copyCards(advanced)}
	market.Shuffle(decks.Basic, e.source)
	market.Shuffle(decks.Advanced, e.source)

	g, err := New(e.cfg, playerCount, decks,
		WithLogger(e.logger.With(zap.String("game_id", gameID))),
		WithSource(e.source),
	)
	if err != nil {
		return "", fmt.Errorf("create game: %w", err)
	}

	eg := &engineGame{game: g, replay: NewReplay(gameID), started: time.Now()}
	if err := e.record(eg, nil); err != nil {
		return "", err
	}

	e.mu.Lock()
	e.games[gameID] = eg
	e.mu.Unlock()

	e.logger.Info("game created",
		zap.String("game_id", gameID),
		zap.Int("players", playerCount),
	)
	return gameID, nil
}

func (e *Engine) lookup(gameID string) (*engineGame, error) {
	e.mu.RLock()
	eg, ok := e.games[gameID]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return eg, nil
}

func (e *Engine) record(eg *engineGame, action *Action) error {
	view := eg.game.View()
	sum, err := view.Checksum()
	if err != nil {
		return err
	}
	eg.replay.RecordState(&Snapshot{
		Action:    action,
		View:      view,
		Checksum:  sum,
		Timestamp: time.Now(),
	})
	return nil
}

// ProcessAction applies one action to a game. Rule violations come back as
// *RuleError and leave the game unchanged.
func (e *Engine) ProcessAction(gameID string, action Action) (*Outcome, error) {
	eg, err := e.lookup(gameID)
	if err != nil {
		return nil, err
	}

	eg.mu.Lock()
	defer eg.mu.Unlock()

	if eg.ended {
		return nil, fmt.Errorf("%w: %s", ErrGameEnded, gameID)
	}

	out, err := eg.game.Apply(action)
	if err != nil {
		var rerr *RuleError
		if !errors.As(err, &rerr) {
			e.logger.Error("action failed",
				zap.String("game_id", gameID),
				zap.Stringer("action", action),
				zap.Error(err),
			)
		}
		return nil, err
	}

	if err := e.record(eg, &action); err != nil {
		e.logger.Warn("failed to record replay state",
			zap.String("game_id", gameID),
			zap.Error(err),
		)
	}
	if eg.game.IsOver() {
		res, _ := eg.game.Result()
		e.logger.Info("game finished",
			zap.String("game_id", gameID),
			zap.Ints("winners", res.Winners),
			zap.Duration("duration", time.Since(eg.started)),
		)
	}
	return out, nil
}

// GetGameView returns a snapshot of a game.
func (e *Engine) GetGameView(gameID string) (*View, error) {
	eg, err := e.lookup(gameID)
	if err != nil {
		return nil, err
	}
	eg.mu.Lock()
	defer eg.mu.Unlock()
	return eg.game.View(), nil
}

// Replay returns the recorded history of a game.
func (e *Engine) Replay(gameID string) (*Replay, error) {
	eg, err := e.lookup(gameID)
	if err != nil {
		return nil, err
	}
	return eg.replay, nil
}

// EndGame closes a game to further actions. Its view and replay stay available.
func (e *Engine) EndGame(gameID string) error {
	eg, err := e.lookup(gameID)
	if err != nil {
		return err
	}
	eg.mu.Lock()
	defer eg.mu.Unlock()
	if eg.ended {
		return nil
	}
	eg.ended = true
	e.logger.Info("game ended",
		zap.String("game_id", gameID),
		zap.Bool("finished", eg.game.IsOver()),
		zap.Int("actions", eg.replay.Size()-1),
	)
	return nil
}

// RemoveGame forgets a game entirely.
func (e *Engine) RemoveGame(gameID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	delete(e.games, gameID)
	e.logger.Debug("game removed", zap.String("game_id", gameID))
	return nil
}

// GameIDs lists every known game in sorted order.
func (e *Engine) GameIDs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ids := make([]string, 0, len(e.games))
	for id := range e.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
