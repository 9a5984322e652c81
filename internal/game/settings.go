package game

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mendeleevdice/mendeleev-go/internal/game/dice"
)

// RewardKind is what a score-track threshold offers.
type RewardKind string

const (
	RewardDie   RewardKind = "die"
	RewardSkill RewardKind = "skill"
)

// Reward is one step on the score track.
type Reward struct {
	Threshold int
	Kind      RewardKind
}

// Rules are the tunable constants of a game.
type Rules struct {
	MinPlayers   int
	MaxPlayers   int
	MaxCubes     int
	MaxDice      int
	StartingDice []dice.Type
	WinningScore int
	MarketSize   int
	// TopCardPurchasable lets players buy the face-up card on top of each deck.
	TopCardPurchasable bool
	ScoreTrack         []Reward
}

// DefaultRules returns the standard game setup.
func DefaultRules() Rules {
	return Rules{
		MinPlayers:   2,
		MaxPlayers:   6,
		MaxCubes:     10,
		MaxDice:      6,
		StartingDice: []dice.Type{dice.D6, dice.D6, dice.D8},
		WinningScore: 50,
		MarketSize:   4,
		ScoreTrack: []Reward{
			{Threshold: 10, Kind: RewardDie},
			{Threshold: 20, Kind: RewardSkill},
			{Threshold: 30, Kind: RewardDie},
			{Threshold: 40, Kind: RewardSkill},
		},
	}
}

// Validate reports settings that cannot produce a playable game.
func (r Rules) Validate() error {
	var errs []error
	if r.MinPlayers < 1 {
		errs = append(errs, fmt.Errorf("min players must be at least 1, got %d", r.MinPlayers))
	}
	if r.MaxPlayers < r.MinPlayers {
		errs = append(errs, fmt.Errorf("max players %d is below min players %d", r.MaxPlayers, r.MinPlayers))
	}
	if r.MaxPlayers > len(playerColors) {
		errs = append(errs, fmt.Errorf("max players %d exceeds the %d available colors", r.MaxPlayers, len(playerColors)))
	}
	if r.MaxCubes < 1 {
		errs = append(errs, fmt.Errorf("max cubes must be positive, got %d", r.MaxCubes))
	}
	if len(r.StartingDice) == 0 {
		errs = append(errs, errors.New("at least one starting die is required"))
	}
	if r.MaxDice < len(r.StartingDice) {
		errs = append(errs, fmt.Errorf("max dice %d is below the %d starting dice", r.MaxDice, len(r.StartingDice)))
	}
	for _, t := range r.StartingDice {
		if !t.Valid() {
			errs = append(errs, fmt.Errorf("unknown starting die %q", t))
		}
	}
	if r.WinningScore < 1 {
		errs = append(errs, fmt.Errorf("winning score must be positive, got %d", r.WinningScore))
	}
	if r.MarketSize < 1 {
		errs = append(errs, fmt.Errorf("market size must be positive, got %d", r.MarketSize))
	}
	for _, step := range r.ScoreTrack {
		if step.Kind != RewardDie && step.Kind != RewardSkill {
			errs = append(errs, fmt.Errorf("unknown reward kind %q at %d", step.Kind, step.Threshold))
		}
	}
	return errors.Join(errs...)
}

func (r Rules) sortedTrack() []Reward {
	track := append([]Reward(nil), r.ScoreTrack...)
	sort.SliceStable(track, func(i, j int) bool { return track[i].Threshold < track[j].Threshold })
	return track
}

var playerColors = []string{"#3b82f6", "#ef4444", "#10b981", "#f59e0b", "#6366f1", "#ec4899"}
