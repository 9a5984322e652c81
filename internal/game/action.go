package game

import (
	"fmt"

	"github.com/mendeleevdice/mendeleev-go/internal/game/dice"
	"github.com/mendeleevdice/mendeleev-go/internal/game/skills"
)

// ActionType names a player action routed by the engine.
type ActionType string

const (
	ActionToggleDie         ActionType = "TOGGLE_DIE"
	ActionChangeOperation   ActionType = "CHANGE_OPERATION"
	ActionOccupyElement     ActionType = "OCCUPY_ELEMENT"
	ActionSlideCube         ActionType = "SLIDE_CUBE"
	ActionEndProductionTurn ActionType = "END_PRODUCTION_TURN"
	ActionStartSelling      ActionType = "START_SELLING"
	ActionSellCard          ActionType = "SELL_CARD"
	ActionSkipSellingTurn   ActionType = "SKIP_SELLING_TURN"
	ActionAcquireDie        ActionType = "ACQUIRE_DIE"
	ActionAcquireSkill      ActionType = "ACQUIRE_SKILL"
)

// Action is a request from a player. Only the fields its type needs are read.
type Action struct {
	Type      ActionType
	Player    int
	Die       int
	Element   int
	From      int
	To        int
	Operation dice.Operation
	CardID    string
	DieType   dice.Type
	Skill     skills.Skill
}

func (a Action) String() string {
	switch a.Type {
	case ActionToggleDie:
		return fmt.Sprintf("%s p%d die=%d", a.Type, a.Player, a.Die)
	case ActionChangeOperation:
		return fmt.Sprintf("%s p%d op=%s", a.Type, a.Player, a.Operation)
	case ActionOccupyElement:
		return fmt.Sprintf("%s p%d element=%d", a.Type, a.Player, a.Element)
	case ActionSlideCube:
		return fmt.Sprintf("%s p%d %d->%d", a.Type, a.Player, a.From, a.To)
	case ActionSellCard:
		return fmt.Sprintf("%s p%d card=%s", a.Type, a.Player, a.CardID)
	case ActionAcquireDie:
		return fmt.Sprintf("%s p%d type=%s", a.Type, a.Player, a.DieType)
	case ActionAcquireSkill:
		return fmt.Sprintf("%s p%d skill=%s", a.Type, a.Player, a.Skill)
	case ActionStartSelling:
		return string(a.Type)
	default:
		return fmt.Sprintf("%s p%d", a.Type, a.Player)
	}
}

// Apply routes the action to the matching Game method.
func (g *Game) Apply(action Action) (*Outcome, error) {
	switch action.Type {
	case ActionToggleDie:
		return g.ToggleDie(action.Player, action.Die)
	case ActionChangeOperation:
		return g.ChangeOperation(action.Player, action.Operation)
	case ActionOccupyElement:
		return g.OccupyElement(action.Player, action.Element)
	case ActionSlideCube:
		return g.SlideCube(action.Player, action.From, action.To)
	case ActionEndProductionTurn:
		return g.EndProductionTurn(action.Player)
	case ActionStartSelling:
		return g.StartSellingPhase()
	case ActionSellCard:
		return g.SellCard(action.Player, action.CardID)
	case ActionSkipSellingTurn:
		return g.SkipSellingTurn(action.Player)
	case ActionAcquireDie:
		return g.AcquireNewDie(action.Player, action.DieType)
	case ActionAcquireSkill:
		return g.AcquireSkill(action.Player, action.Skill)
	default:
		return nil, fmt.Errorf("unknown action type: %s", action.Type)
	}
}
