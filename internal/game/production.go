package game

import (
	"slices"

	"github.com/mendeleevdice/mendeleev-go/internal/game/board"
	"github.com/mendeleevdice/mendeleev-go/internal/game/dice"
	"github.com/mendeleevdice/mendeleev-go/internal/game/rules"
	"github.com/mendeleevdice/mendeleev-go/internal/game/skills"
	"go.uber.org/zap"
)

// startProductionPhase opens a round: every unlocked die is re-rolled and
// the per-round state is cleared. Locked dice keep their face.
func (g *Game) startProductionPhase() error {
	if err := g.changePhase(rules.PhaseProduction); err != nil {
		return err
	}
	for _, p := range g.players {
		for _, d := range p.Dice {
			d.Selected = false
			d.Roll(g.source)
		}
		p.OutsourceUsed = false
		p.slideAvailable = false
	}
	g.selection = nil
	g.operation = dice.OpNone
	g.watchers.ResetWatchersByScope(rules.WatcherScopeRound)

	g.emit(rules.NewEventWithAmount(rules.EventRoundStarted, rules.NoPlayer, g.turns.Round()))
	return nil
}

// requiredSkill returns the skill an operation needs, if any.
func requiredSkill(op dice.Operation) (skills.Skill, bool) {
	switch op {
	case dice.OpMultiply, dice.OpDivide:
		return skills.Math, true
	case dice.OpConcat:
		return skills.Concat, true
	}
	return 0, false
}

func operationAllowed(p *Player, op dice.Operation) bool {
	if op.Arity() == 0 {
		return false
	}
	if s, ok := requiredSkill(op); ok {
		return p.HasSkill(s)
	}
	return true
}

// legalOperation picks the operation after the selection changed.
func (g *Game) legalOperation(p *Player) dice.Operation {
	switch len(g.selection) {
	case 0:
		return dice.OpNone
	case 1:
		return dice.OpSingle
	}
	if g.operation.Arity() == 2 && operationAllowed(p, g.operation) {
		return g.operation
	}
	return dice.OpAdd
}

func (g *Game) setOperation(player int, op dice.Operation) {
	if op == g.operation {
		return
	}
	g.operation = op
	g.emit(rules.NewEventWithData(rules.EventOperationChanged, player, op.String()))
}

// ToggleDie selects or deselects one of the current player's dice.
func (g *Game) ToggleDie(player, die int) (*Outcome, error) {
	const action = "toggle_die"
	p, rerr := g.actor(player, rules.PhaseProduction)
	if rerr != nil {
		return nil, g.reject(action, player, rerr)
	}
	if die < 0 || die >= len(p.Dice) {
		return nil, g.reject(action, player, ErrInvalidDie.WithContext("die", die))
	}
	d := p.Dice[die]
	if d.Locked {
		return nil, g.reject(action, player, ErrDieLocked.WithContext("die", die))
	}
	if !d.Selected && len(g.selection) >= 2 {
		return nil, g.reject(action, player, ErrMaxDiceSelected)
	}

	g.begin()
	if d.Selected {
		d.Selected = false
		g.selection = slices.DeleteFunc(g.selection, func(i int) bool { return i == die })
		g.emit(rules.NewEventWithAmount(rules.EventDieDeselected, player, die))
	} else {
		d.Selected = true
		g.selection = append(g.selection, die)
		g.emit(rules.NewEventWithAmount(rules.EventDieSelected, player, die))
	}
	g.setOperation(player, g.legalOperation(p))
	return g.outcome(action, player), nil
}

// ChangeOperation switches how the selected dice combine.
func (g *Game) ChangeOperation(player int, op dice.Operation) (*Outcome, error) {
	const action = "change_operation"
	p, rerr := g.actor(player, rules.PhaseProduction)
	if rerr != nil {
		return nil, g.reject(action, player, rerr)
	}
	if op.Arity() == 0 || op.Arity() != len(g.selection) {
		return nil, g.reject(action, player, ErrInvalidOperation.
			WithContext("operation", op.String()).
			WithContext("selected", len(g.selection)))
	}
	if s, ok := requiredSkill(op); ok && !p.HasSkill(s) {
		return nil, g.reject(action, player, ErrSkillRequired.WithContext("skill", s.ID()))
	}

	g.begin()
	g.setOperation(player, op)
	return g.outcome(action, player), nil
}

// Selection returns the selected dice indices in selection order.
func (g *Game) Selection() []int {
	return slices.Clone(g.selection)
}

// Operation returns the active operation.
func (g *Game) Operation() dice.Operation {
	return g.operation
}

// CalculatedValue derives the element number the current selection produces,
// or 0 when it produces none.
func (g *Game) CalculatedValue() int {
	if g.turns.Phase() != rules.PhaseProduction || len(g.selection) == 0 {
		return 0
	}
	p := g.players[g.turns.CurrentPlayer()]
	faces := make([]int, 0, len(g.selection))
	for _, i := range g.selection {
		faces = append(faces, p.Dice[i].Value)
	}
	return dice.Calculate(g.operation, faces, board.Size())
}

// OccupyElement places a cube on element n using the selected dice.
func (g *Game) OccupyElement(player, n int) (*Outcome, error) {
	const action = "occupy_element"
	p, rerr := g.actor(player, rules.PhaseProduction)
	if rerr != nil {
		return nil, g.reject(action, player, rerr)
	}
	if _, ok := board.Lookup(n); !ok {
		return nil, g.reject(action, player, ErrInvalidElement.WithContext("element", n))
	}
	if value := g.CalculatedValue(); value == 0 || value != n {
		return nil, g.reject(action, player, ErrValueMismatch.
			WithContext("element", n).
			WithContext("value", value))
	}
	if p.Cubes <= 0 {
		return nil, g.reject(action, player, ErrNoCubes)
	}
	if p.Owns(n) {
		return nil, g.reject(action, player, ErrElementOwned.WithContext("element", n))
	}
	if len(p.Elements) > 0 && !p.adjacentTo(n) {
		return nil, g.reject(action, player, ErrNotAdjacent.WithContext("element", n))
	}
	if err := g.board.AddOwner(n, player); err != nil {
		g.logger.Error("board rejected a validated occupation", zap.Int("element", n), zap.Error(err))
		return nil, err
	}

	g.begin()
	p.Elements = append(p.Elements, n)
	p.Cubes--
	locked := slices.Clone(g.selection)
	for _, i := range locked {
		p.Dice[i].Lock()
	}
	g.selection = nil
	g.operation = dice.OpNone

	g.emit(rules.NewEventWithAmount(rules.EventElementOccupied, player, n))
	lockEvt := rules.NewEvent(rules.EventDiceLocked, player)
	lockEvt.Values = locked
	g.emit(lockEvt)
	if p.HasSkill(skills.Slide) {
		p.slideAvailable = true
		g.emit(rules.NewEventWithAmount(rules.EventSlideAvailable, player, n))
	}
	return g.outcome(action, player), nil
}

// SlideAvailable reports whether player may slide a cube right now.
func (g *Game) SlideAvailable(player int) bool {
	p, err := g.player(player)
	return err == nil && p.slideAvailable && p.HasSkill(skills.Slide)
}

// SlideCube moves one of the player's cubes to an adjacent element at no cost.
// It spends the opportunity armed by the last occupation.
func (g *Game) SlideCube(player, from, to int) (*Outcome, error) {
	const action = "slide_cube"
	p, rerr := g.actor(player, rules.PhaseProduction)
	if rerr != nil {
		return nil, g.reject(action, player, rerr)
	}
	if !p.HasSkill(skills.Slide) || !p.slideAvailable {
		return nil, g.reject(action, player, ErrSlideUnavailable)
	}
	if !p.Owns(from) {
		return nil, g.reject(action, player, ErrElementNotOwned.WithContext("element", from))
	}
	if _, ok := board.Lookup(to); !ok {
		return nil, g.reject(action, player, ErrInvalidElement.WithContext("element", to))
	}
	if p.Owns(to) {
		return nil, g.reject(action, player, ErrElementOwned.WithContext("element", to))
	}
	if !board.IsAdjacent(from, to) {
		return nil, g.reject(action, player, ErrNotAdjacent.
			WithContext("from", from).
			WithContext("to", to))
	}
	if err := g.board.Move(player, from, to); err != nil {
		g.logger.Error("board rejected a validated slide", zap.Int("from", from), zap.Int("to", to), zap.Error(err))
		return nil, err
	}

	g.begin()
	p.Elements[slices.Index(p.Elements, from)] = to
	p.slideAvailable = false
	evt := rules.NewEventWithAmount(rules.EventCubeSlid, player, to)
	evt.Values = []int{from, to}
	g.emit(evt)
	return g.outcome(action, player), nil
}

func (g *Game) clearProductionTurn(p *Player) {
	p.deselectAll()
	p.slideAvailable = false
	g.selection = nil
	g.operation = dice.OpNone
}

// EndProductionTurn hands production to the next player. The last player
// passing opens the selling phase.
func (g *Game) EndProductionTurn(player int) (*Outcome, error) {
	const action = "end_production_turn"
	p, rerr := g.actor(player, rules.PhaseProduction)
	if rerr != nil {
		return nil, g.reject(action, player, rerr)
	}

	g.begin()
	g.clearProductionTurn(p)
	g.emit(rules.NewEvent(rules.EventProductionTurnPassed, player))
	if g.turns.AdvancePlayer() {
		if err := g.startSelling(); err != nil {
			return nil, err
		}
	}
	return g.outcome(action, player), nil
}

// StartSellingPhase ends production for everyone.
func (g *Game) StartSellingPhase() (*Outcome, error) {
	const action = "start_selling"
	if g.IsOver() {
		return nil, g.reject(action, rules.NoPlayer, ErrGameOver)
	}
	if g.turns.Phase() != rules.PhaseProduction {
		return nil, g.reject(action, rules.NoPlayer, ErrWrongPhase.WithContext("phase", g.turns.Phase().String()))
	}

	g.begin()
	if err := g.startSelling(); err != nil {
		return nil, err
	}
	return g.outcome(action, rules.NoPlayer), nil
}

func (g *Game) startSelling() error {
	for _, p := range g.players {
		p.deselectAll()
		p.slideAvailable = false
	}
	g.selection = nil
	g.operation = dice.OpNone
	return g.changePhase(rules.PhaseSelling)
}
