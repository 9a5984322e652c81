package game

import (
	"fmt"
	"slices"

	"github.com/mendeleevdice/mendeleev-go/internal/game/board"
	"github.com/mendeleevdice/mendeleev-go/internal/game/dice"
	"github.com/mendeleevdice/mendeleev-go/internal/game/market"
	"github.com/mendeleevdice/mendeleev-go/internal/game/rules"
	"github.com/mendeleevdice/mendeleev-go/internal/game/skills"
	"github.com/mendeleevdice/mendeleev-go/internal/game/watchers"
	"go.uber.org/zap"
)

// Player is one seat at the table.
type Player struct {
	ID            int
	Color         string
	Score         int
	Cubes         int
	Dice          []*dice.Die
	Elements      []int
	Skills        skills.Set
	SoldCards     []*market.Card
	OutsourceUsed bool
	FinalScore    int

	slideAvailable bool
	pending        []RewardKind
}

// HasSkill reports whether the player holds s.
func (p *Player) HasSkill(s skills.Skill) bool {
	return p.Skills.Has(s)
}

// Owns reports whether the player occupies element n.
func (p *Player) Owns(n int) bool {
	return slices.Contains(p.Elements, n)
}

func (p *Player) adjacentTo(n int) bool {
	for _, owned := range p.Elements {
		if board.IsAdjacent(owned, n) {
			return true
		}
	}
	return false
}

func (p *Player) deselectAll() {
	for _, d := range p.Dice {
		d.Selected = false
	}
}

func (p *Player) takePending(kind RewardKind) {
	if i := slices.Index(p.pending, kind); i >= 0 {
		p.pending = slices.Delete(p.pending, i, i+1)
	}
}

// Decks are the card lists a game deals its market from, in draw order.
type Decks struct {
	Basic    []*market.Card
	Advanced []*market.Card
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the game's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithSource sets the randomness used for rolls.
func WithSource(src dice.Source) Option {
	return func(g *Game) {
		if src != nil {
			g.source = src
		}
	}
}

// Game is a single match. It is not safe for concurrent use; Engine
// serializes access when games are shared.
type Game struct {
	cfg    Rules
	logger *zap.Logger
	source dice.Source

	board   *board.Board
	market  *market.Market
	players []*Player
	turns   *rules.RoundManager

	// selection holds indices into the current player's dice, in selection order.
	selection []int
	operation dice.Operation

	bus      *rules.EventBus
	watchers *rules.WatcherRegistry
	activity *watchers.RoundActivityWatcher
	sales    *watchers.SalesWatcher

	result *Result
	events []rules.Event
}

// New deals the market, seats the players and starts the first production phase.
func New(cfg Rules, playerCount int, decks Decks, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if playerCount < cfg.MinPlayers || playerCount > cfg.MaxPlayers {
		return nil, ErrPlayerCount.
			WithContext("players", playerCount).
			WithContext("min", cfg.MinPlayers).
			WithContext("max", cfg.MaxPlayers)
	}

	g := &Game{
		cfg:      cfg,
		logger:   zap.NewNop(),
		board:    board.New(),
		turns:    rules.NewRoundManager(playerCount),
		bus:      rules.NewEventBus(),
		watchers: rules.NewWatcherRegistry(),
		activity: watchers.NewRoundActivityWatcher(),
		sales:    watchers.NewSalesWatcher(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.source == nil {
		g.source = dice.NewSource(0)
	}
	g.watchers.AddWatcher(g.activity)
	g.watchers.AddWatcher(g.sales)

	g.players = make([]*Player, playerCount)
	for i := range g.players {
		p := &Player{
			ID:    i,
			Color: playerColors[i%len(playerColors)],
			Cubes: cfg.MaxCubes,
		}
		for _, t := range cfg.StartingDice {
			p.Dice = append(p.Dice, dice.New(t))
		}
		g.players[i] = p
	}

	g.market = market.NewMarket(market.NewDeck(decks.Basic), market.NewDeck(decks.Advanced), cfg.MarketSize)

	if err := g.startProductionPhase(); err != nil {
		return nil, err
	}
	g.events = nil

	g.logger.Info("game started",
		zap.Int("players", playerCount),
		zap.Int("basic_cards", len(decks.Basic)),
		zap.Int("advanced_cards", len(decks.Advanced)),
	)
	return g, nil
}

// Rules returns the settings the game was created with.
func (g *Game) Rules() Rules {
	return g.cfg
}

// Events exposes the game's event bus for listeners such as drivers.
func (g *Game) Events() *rules.EventBus {
	return g.bus
}

// Phase returns the phase in progress.
func (g *Game) Phase() rules.Phase {
	return g.turns.Phase()
}

// Round returns the 1-based round number.
func (g *Game) Round() int {
	return g.turns.Round()
}

// CurrentPlayer returns the index of the player to act.
func (g *Game) CurrentPlayer() int {
	return g.turns.CurrentPlayer()
}

// PlayerCount returns the number of seats.
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return g.turns.Phase() == rules.PhaseGameOver
}

// RoundActivity returns each player's tally for the current round.
func (g *Game) RoundActivity() []watchers.Activity {
	return g.activity.All(len(g.players))
}

func (g *Game) emit(evt rules.Event) {
	g.events = append(g.events, evt)
	g.watchers.NotifyWatchers(evt)
	g.bus.Publish(evt)
}

func (g *Game) begin() {
	g.events = nil
}

func (g *Game) outcome(action string, player int) *Outcome {
	out := &Outcome{Events: g.events}
	g.events = nil
	g.logger.Debug("action applied",
		zap.String("action", action),
		zap.Int("player", player),
		zap.Int("events", len(out.Events)),
	)
	return out
}

func (g *Game) reject(action string, player int, err *RuleError) error {
	g.logger.Debug("action rejected",
		zap.String("action", action),
		zap.Int("player", player),
		zap.String("code", err.Code),
	)
	return err
}

func (g *Game) player(idx int) (*Player, *RuleError) {
	if idx < 0 || idx >= len(g.players) {
		return nil, ErrUnknownPlayer.WithContext("player", idx)
	}
	return g.players[idx], nil
}

// actor checks that the game is running, the phase matches and idx holds the turn.
func (g *Game) actor(idx int, phase rules.Phase) (*Player, *RuleError) {
	if g.IsOver() {
		return nil, ErrGameOver
	}
	p, err := g.player(idx)
	if err != nil {
		return nil, err
	}
	if g.turns.Phase() != phase {
		return nil, ErrWrongPhase.
			WithContext("phase", g.turns.Phase().String()).
			WithContext("expected", phase.String())
	}
	if !g.turns.IsCurrent(idx) {
		return nil, ErrNotYourTurn.WithContext("current", g.turns.CurrentPlayer())
	}
	return p, nil
}

func (g *Game) changePhase(to rules.Phase) error {
	if err := g.turns.Transition(to); err != nil {
		g.logger.Error("phase transition refused", zap.Error(err))
		return err
	}
	evt := rules.NewEventWithData(rules.EventPhaseChanged, rules.NoPlayer, to.String())
	evt.Amount = g.turns.Round()
	g.emit(evt)
	return nil
}
