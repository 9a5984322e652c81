package game

import (
	"testing"

	"github.com/mendeleevdice/mendeleev-go/internal/game/dice"
	"github.com/mendeleevdice/mendeleev-go/internal/game/rules"
	"github.com/mendeleevdice/mendeleev-go/internal/game/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleDieSelectionLimit(t *testing.T) {
	g := newTestGame(t, 2)

	out, err := g.ToggleDie(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []rules.EventType{rules.EventDieSelected, rules.EventOperationChanged}, out.Types())
	assert.Equal(t, dice.OpSingle, g.Operation())

	toggle(t, g, 0, 1)
	assert.Equal(t, dice.OpAdd, g.Operation())

	_, err = g.ToggleDie(0, 2)
	assert.ErrorIs(t, err, ErrMaxDiceSelected)
	assert.Equal(t, []int{0, 1}, g.Selection())
	assert.False(t, g.players[0].Dice[2].Selected)

	out, err = g.ToggleDie(0, 0)
	require.NoError(t, err)
	evt, ok := out.First(rules.EventDieDeselected)
	require.True(t, ok)
	assert.Equal(t, 0, evt.Amount)
	assert.Equal(t, []int{1}, g.Selection())
	assert.Equal(t, dice.OpSingle, g.Operation())
	assert.False(t, g.players[0].Dice[0].Selected)
}

func TestToggleDieRejections(t *testing.T) {
	g := newTestGame(t, 2)

	_, err := g.ToggleDie(1, 0)
	assert.ErrorIs(t, err, ErrNotYourTurn)
	_, err = g.ToggleDie(0, 5)
	assert.ErrorIs(t, err, ErrInvalidDie)
	_, err = g.ToggleDie(7, 0)
	assert.ErrorIs(t, err, ErrUnknownPlayer)

	g.players[0].Dice[1].Lock()
	_, err = g.ToggleDie(0, 1)
	assert.ErrorIs(t, err, ErrDieLocked)
	assert.Empty(t, g.Selection())

	toSelling(t, g)
	_, err = g.ToggleDie(0, 0)
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestChangeOperation(t *testing.T) {
	g := newTestGame(t, 2)

	_, err := g.ChangeOperation(0, dice.OpAdd)
	assert.ErrorIs(t, err, ErrInvalidOperation, "no dice selected")

	toggle(t, g, 0, 0, 1)

	_, err = g.ChangeOperation(0, dice.OpSingle)
	assert.ErrorIs(t, err, ErrInvalidOperation)
	_, err = g.ChangeOperation(0, dice.OpNone)
	assert.ErrorIs(t, err, ErrInvalidOperation)
	_, err = g.ChangeOperation(0, dice.OpMultiply)
	assert.ErrorIs(t, err, ErrSkillRequired)
	_, err = g.ChangeOperation(0, dice.OpConcat)
	assert.ErrorIs(t, err, ErrSkillRequired)
	assert.Equal(t, dice.OpAdd, g.Operation())

	out, err := g.ChangeOperation(0, dice.OpSubtract)
	require.NoError(t, err)
	evt, ok := out.First(rules.EventOperationChanged)
	require.True(t, ok)
	assert.Equal(t, "SUBTRACT", evt.Data)

	out, err = g.ChangeOperation(0, dice.OpSubtract)
	require.NoError(t, err)
	assert.Empty(t, out.Events, "unchanged operation emits nothing")

	grant(g, 0, skills.Math)
	_, err = g.ChangeOperation(0, dice.OpDivide)
	require.NoError(t, err)
	assert.Equal(t, dice.OpDivide, g.Operation())

	_, err = g.ChangeOperation(1, dice.OpAdd)
	assert.ErrorIs(t, err, ErrNotYourTurn)
}

func TestCalculatedValue(t *testing.T) {
	g := newTestGame(t, 2)
	grant(g, 0, skills.Math, skills.Concat)
	setFaces(g, 0, 6, 3, 8)
	toggle(t, g, 0, 0, 1)

	tests := []struct {
		op   dice.Operation
		want int
	}{
		{dice.OpAdd, 9},
		{dice.OpSubtract, 3},
		{dice.OpMultiply, 18},
		{dice.OpDivide, 2},
		{dice.OpConcat, 36},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			_, err := g.ChangeOperation(0, tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.CalculatedValue())
		})
	}

	// Reselect so die 1 comes first: 3 / 6 does not divide evenly.
	toggle(t, g, 0, 0, 0)
	assert.Equal(t, []int{1, 0}, g.Selection())
	_, err := g.ChangeOperation(0, dice.OpDivide)
	require.NoError(t, err)
	assert.Zero(t, g.CalculatedValue())
	_, err = g.ChangeOperation(0, dice.OpConcat)
	require.NoError(t, err)
	assert.Equal(t, 36, g.CalculatedValue())
}

func TestOccupyElement(t *testing.T) {
	g := newTestGame(t, 2)
	setFaces(g, 0, 3, 5, 1)
	toggle(t, g, 0, 0, 1)

	_, err := g.OccupyElement(0, 7)
	assert.ErrorIs(t, err, ErrValueMismatch)

	out, err := g.OccupyElement(0, 8)
	require.NoError(t, err)
	assert.Equal(t, []rules.EventType{rules.EventElementOccupied, rules.EventDiceLocked}, out.Types())
	evt, _ := out.First(rules.EventDiceLocked)
	assert.Equal(t, []int{0, 1}, evt.Values)

	p := g.players[0]
	assert.Equal(t, 9, p.Cubes)
	assert.Equal(t, []int{8}, p.Elements)
	assert.True(t, p.Dice[0].Locked)
	assert.True(t, p.Dice[1].Locked)
	assert.False(t, p.Dice[2].Locked)
	for _, d := range p.Dice {
		assert.False(t, d.Selected)
	}
	assert.Empty(t, g.Selection())
	assert.Equal(t, dice.OpNone, g.Operation())
	assert.Equal(t, []int{0}, g.board.Occupants(8))
	assert.False(t, g.SlideAvailable(0))

	// Hydrogen is nowhere near oxygen.
	toggle(t, g, 0, 2)
	_, err = g.OccupyElement(0, 1)
	assert.ErrorIs(t, err, ErrNotAdjacent)
	assert.Equal(t, []int{2}, g.Selection(), "rejection keeps the selection")

	p.Dice[2].Value = 7
	_, err = g.OccupyElement(0, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 7}, p.Elements)
	assert.Equal(t, 8, p.Cubes)
}

func TestOccupyRejections(t *testing.T) {
	g := newTestGame(t, 2)
	own(t, g, 0, 8)
	setFaces(g, 0, 3, 5, 4)
	toggle(t, g, 0, 0, 1)

	_, err := g.OccupyElement(0, 8)
	assert.ErrorIs(t, err, ErrElementOwned)

	g.players[0].Cubes = 0
	_, err = g.OccupyElement(0, 8)
	assert.ErrorIs(t, err, ErrNoCubes)
	g.players[0].Cubes = 10

	_, err = g.OccupyElement(0, 200)
	assert.ErrorIs(t, err, ErrInvalidElement)
	_, err = g.OccupyElement(1, 8)
	assert.ErrorIs(t, err, ErrNotYourTurn)

	assert.Equal(t, []int{0, 1}, g.Selection())
	assert.False(t, g.players[0].Dice[0].Locked)
	assert.Equal(t, 10, g.players[0].Cubes)
}

func TestOccupyImpossibleWhenValueOutOfRange(t *testing.T) {
	g := newTestGame(t, 2)
	grant(g, 0, skills.Concat)
	_, err := g.AcquireNewDie(0, dice.D20)
	require.NoError(t, err)
	setFaces(g, 0, 1, 1, 8, 20)

	toggle(t, g, 0, 2, 3)
	_, err = g.ChangeOperation(0, dice.OpConcat)
	require.NoError(t, err)
	assert.Zero(t, g.CalculatedValue(), "820 is off the board")

	_, err = g.OccupyElement(0, 82)
	assert.ErrorIs(t, err, ErrValueMismatch)
}

func TestSlideCube(t *testing.T) {
	g := newTestGame(t, 2)
	grant(g, 0, skills.Slide)
	own(t, g, 0, 8)
	setFaces(g, 0, 3, 4, 1)
	toggle(t, g, 0, 0, 1)

	out, err := g.OccupyElement(0, 7)
	require.NoError(t, err)
	assert.True(t, out.Has(rules.EventSlideAvailable))
	assert.True(t, g.SlideAvailable(0))

	_, err = g.SlideCube(0, 7, 9)
	assert.ErrorIs(t, err, ErrNotAdjacent)
	_, err = g.SlideCube(0, 7, 8)
	assert.ErrorIs(t, err, ErrElementOwned)
	_, err = g.SlideCube(0, 1, 2)
	assert.ErrorIs(t, err, ErrElementNotOwned)

	out, err = g.SlideCube(0, 8, 9)
	require.NoError(t, err)
	evt, ok := out.First(rules.EventCubeSlid)
	require.True(t, ok)
	assert.Equal(t, []int{8, 9}, evt.Values)

	p := g.players[0]
	assert.Equal(t, []int{9, 7}, p.Elements)
	assert.Equal(t, 9, p.Cubes, "sliding is free")
	assert.Empty(t, g.board.Occupants(8))
	assert.Equal(t, []int{0}, g.board.Occupants(9))

	_, err = g.SlideCube(0, 9, 10)
	assert.ErrorIs(t, err, ErrSlideUnavailable, "one slide per occupation")
}

func TestSlideRequiresSkill(t *testing.T) {
	g := newTestGame(t, 2)
	setFaces(g, 0, 2, 3, 1)
	toggle(t, g, 0, 0, 1)

	out, err := g.OccupyElement(0, 5)
	require.NoError(t, err)
	assert.False(t, out.Has(rules.EventSlideAvailable))

	_, err = g.SlideCube(0, 5, 6)
	assert.ErrorIs(t, err, ErrSlideUnavailable)
}

func TestSlideExpiresWhenTurnPasses(t *testing.T) {
	g := newTestGame(t, 2)
	grant(g, 0, skills.Slide)
	setFaces(g, 0, 2, 3, 1)
	toggle(t, g, 0, 0, 1)

	_, err := g.OccupyElement(0, 5)
	require.NoError(t, err)
	require.True(t, g.SlideAvailable(0))

	_, err = g.EndProductionTurn(0)
	require.NoError(t, err)
	assert.False(t, g.SlideAvailable(0))
}

func TestEndProductionTurn(t *testing.T) {
	g := newTestGame(t, 3)
	toggle(t, g, 0, 0)

	out, err := g.EndProductionTurn(0)
	require.NoError(t, err)
	assert.Equal(t, []rules.EventType{rules.EventProductionTurnPassed}, out.Types())
	assert.Equal(t, 1, g.CurrentPlayer())
	assert.Empty(t, g.Selection())
	assert.Equal(t, dice.OpNone, g.Operation())
	assert.False(t, g.players[0].Dice[0].Selected)

	_, err = g.EndProductionTurn(0)
	assert.ErrorIs(t, err, ErrNotYourTurn)

	toggle(t, g, 1, 2)
	_, err = g.EndProductionTurn(1)
	require.NoError(t, err)

	out, err = g.EndProductionTurn(2)
	require.NoError(t, err)
	assert.Equal(t, []rules.EventType{rules.EventProductionTurnPassed, rules.EventPhaseChanged}, out.Types())
	assert.Equal(t, rules.PhaseSelling, g.Phase())
	assert.Equal(t, 0, g.CurrentPlayer())
}

func TestStartSellingPhase(t *testing.T) {
	g := newTestGame(t, 2)
	toggle(t, g, 0, 0)

	out, err := g.StartSellingPhase()
	require.NoError(t, err)
	evt, ok := out.First(rules.EventPhaseChanged)
	require.True(t, ok)
	assert.Equal(t, "SELLING", evt.Data)

	assert.Equal(t, rules.PhaseSelling, g.Phase())
	assert.Equal(t, 0, g.CurrentPlayer())
	assert.Empty(t, g.Selection())
	assert.False(t, g.players[0].Dice[0].Selected)
	assert.Zero(t, g.CalculatedValue())

	_, err = g.StartSellingPhase()
	assert.ErrorIs(t, err, ErrWrongPhase)
}
