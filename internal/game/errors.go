package game

import (
	"fmt"
	"maps"
)

// RuleError is returned when an action breaks a game rule. The game state is
// left untouched. Message is advisory text a driver can show to the player.
type RuleError struct {
	Code    string
	Message string
	Context map[string]interface{}
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is matches any RuleError with the same code, so errors.Is works against the
// sentinels below even for copies carrying context.
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	return ok && t.Code == e.Code
}

// NewRuleError creates a rule error.
func NewRuleError(code, message string) *RuleError {
	return &RuleError{Code: code, Message: message}
}

// WithContext returns a copy with one more context entry.
func (e *RuleError) WithContext(key string, value interface{}) *RuleError {
	out := &RuleError{Code: e.Code, Message: e.Message, Context: maps.Clone(e.Context)}
	if out.Context == nil {
		out.Context = make(map[string]interface{})
	}
	out.Context[key] = value
	return out
}

// Turn and phase
var (
	ErrWrongPhase    = NewRuleError("WRONG_PHASE", "that action is not allowed in the current phase")
	ErrNotYourTurn   = NewRuleError("NOT_YOUR_TURN", "it is not your turn")
	ErrUnknownPlayer = NewRuleError("UNKNOWN_PLAYER", "no such player")
	ErrGameOver      = NewRuleError("GAME_OVER", "the game is over")
	ErrPlayerCount   = NewRuleError("PLAYER_COUNT", "unsupported number of players")
)

// Dice and operations
var (
	ErrInvalidDie       = NewRuleError("INVALID_DIE", "no such die")
	ErrDieLocked        = NewRuleError("DIE_LOCKED", "that die is locked on an element")
	ErrMaxDiceSelected  = NewRuleError("MAX_DICE_SELECTED", "select at most 2 dice")
	ErrInvalidOperation = NewRuleError("INVALID_OPERATION", "that operation does not fit the selected dice")
	ErrSkillRequired    = NewRuleError("SKILL_REQUIRED", "that operation needs a skill you do not have")
)

// Board
var (
	ErrInvalidElement   = NewRuleError("INVALID_ELEMENT", "no such element")
	ErrValueMismatch    = NewRuleError("VALUE_MISMATCH", "the dice do not produce that element")
	ErrElementOwned     = NewRuleError("ELEMENT_OWNED", "you already occupy that element")
	ErrElementNotOwned  = NewRuleError("ELEMENT_NOT_OWNED", "you do not occupy that element")
	ErrNotAdjacent      = NewRuleError("NOT_ADJACENT", "the element must be adjacent to one you occupy")
	ErrNoCubes          = NewRuleError("NO_CUBES", "you have no cubes left")
	ErrSlideUnavailable = NewRuleError("SLIDE_UNAVAILABLE", "no slide is available")
)

// Market and rewards
var (
	ErrCardNotInMarket = NewRuleError("CARD_NOT_IN_MARKET", "that card is not in the market")
	ErrElementsMissing = NewRuleError("ELEMENTS_MISSING", "you do not have the elements for that card")
	ErrMaxDiceOwned    = NewRuleError("MAX_DICE_OWNED", "you already have the maximum number of dice")
	ErrUnknownDieType  = NewRuleError("UNKNOWN_DIE_TYPE", "unknown die type")
	ErrUnknownSkill    = NewRuleError("UNKNOWN_SKILL", "unknown skill")
	ErrSkillOwned      = NewRuleError("SKILL_OWNED", "you already have that skill")
)
