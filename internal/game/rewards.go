package game

import (
	"slices"

	"github.com/mendeleevdice/mendeleev-go/internal/game/dice"
	"github.com/mendeleevdice/mendeleev-go/internal/game/rules"
	"github.com/mendeleevdice/mendeleev-go/internal/game/skills"
)

// offerRewards records an offer for every track threshold crossed since before.
func (g *Game) offerRewards(p *Player, before int) {
	for _, step := range g.cfg.sortedTrack() {
		if before < step.Threshold && p.Score >= step.Threshold {
			p.pending = append(p.pending, step.Kind)
			evt := rules.NewEventWithData(rules.EventRewardOffered, p.ID, string(step.Kind))
			evt.Amount = step.Threshold
			g.emit(evt)
		}
	}
}

// PendingRewards returns the offers player has not claimed yet.
func (g *Game) PendingRewards(player int) []RewardKind {
	p, err := g.player(player)
	if err != nil {
		return nil
	}
	return slices.Clone(p.pending)
}

// AcquireNewDie gives the player a freshly rolled die.
func (g *Game) AcquireNewDie(player int, t dice.Type) (*Outcome, error) {
	const action = "acquire_die"
	if g.IsOver() {
		return nil, g.reject(action, player, ErrGameOver)
	}
	p, rerr := g.player(player)
	if rerr != nil {
		return nil, g.reject(action, player, rerr)
	}
	if !t.Valid() {
		return nil, g.reject(action, player, ErrUnknownDieType.WithContext("type", string(t)))
	}
	if len(p.Dice) >= g.cfg.MaxDice {
		return nil, g.reject(action, player, ErrMaxDiceOwned.WithContext("max", g.cfg.MaxDice))
	}

	g.begin()
	d := dice.New(t)
	d.Roll(g.source)
	p.Dice = append(p.Dice, d)
	p.takePending(RewardDie)

	evt := rules.NewEventWithData(rules.EventDieAcquired, player, string(t))
	evt.Amount = len(p.Dice) - 1
	g.emit(evt)
	return g.outcome(action, player), nil
}

// AcquireSkill adds a skill to the player.
func (g *Game) AcquireSkill(player int, s skills.Skill) (*Outcome, error) {
	const action = "acquire_skill"
	if g.IsOver() {
		return nil, g.reject(action, player, ErrGameOver)
	}
	p, rerr := g.player(player)
	if rerr != nil {
		return nil, g.reject(action, player, rerr)
	}
	if !s.Valid() {
		return nil, g.reject(action, player, ErrUnknownSkill)
	}
	if p.HasSkill(s) {
		return nil, g.reject(action, player, ErrSkillOwned.WithContext("skill", s.ID()))
	}

	g.begin()
	p.Skills = p.Skills.With(s)
	p.takePending(RewardSkill)
	g.emit(rules.NewEventWithData(rules.EventSkillAcquired, player, s.ID()))
	return g.outcome(action, player), nil
}
