package game

import (
	"sort"

	"github.com/mendeleevdice/mendeleev-go/internal/game/board"
	"github.com/mendeleevdice/mendeleev-go/internal/game/market"
	"github.com/mendeleevdice/mendeleev-go/internal/game/rules"
	"go.uber.org/zap"
)

// Standing is one player's line in the final ranking.
type Standing struct {
	Player        int
	Score         int
	CategoryBonus int
	FinalScore    int
	AdvancedCards int
	DiceCount     int
	// Rank is 1-based; players tied on every key share a rank.
	Rank int
}

// Result is the end-of-game ranking. More than one winner means the tie
// survived every tiebreak.
type Result struct {
	Standings []Standing
	Winners   []int
}

func (r *Result) copy() *Result {
	if r == nil {
		return nil
	}
	return &Result{
		Standings: append([]Standing(nil), r.Standings...),
		Winners:   append([]int(nil), r.Winners...),
	}
}

// categoryBonus counts distinct element categories across every sold card.
func categoryBonus(cards []*market.Card) int {
	seen := make(map[board.Category]bool)
	for _, c := range cards {
		for _, n := range c.RequiredElements {
			if cat, ok := board.CategoryOf(n); ok {
				seen[cat] = true
			}
		}
	}
	return len(seen)
}

func beats(a, b Standing) bool {
	if a.FinalScore != b.FinalScore {
		return a.FinalScore > b.FinalScore
	}
	if a.AdvancedCards != b.AdvancedCards {
		return a.AdvancedCards > b.AdvancedCards
	}
	return a.DiceCount > b.DiceCount
}

// rank orders standings by final score, then advanced cards sold, then dice owned.
func rank(standings []Standing) *Result {
	sort.SliceStable(standings, func(i, j int) bool {
		return beats(standings[i], standings[j])
	})
	res := &Result{Standings: standings}
	for i := range standings {
		if i > 0 && !beats(standings[i-1], standings[i]) {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
		if standings[i].Rank == 1 {
			res.Winners = append(res.Winners, standings[i].Player)
		}
	}
	return res
}

func (g *Game) finish() error {
	if err := g.changePhase(rules.PhaseGameOver); err != nil {
		return err
	}
	standings := make([]Standing, len(g.players))
	for i, p := range g.players {
		bonus := categoryBonus(p.SoldCards)
		p.FinalScore = p.Score + bonus
		advanced := 0
		for _, c := range p.SoldCards {
			if c.Type == market.CardAdvanced {
				advanced++
			}
		}
		standings[i] = Standing{
			Player:        p.ID,
			Score:         p.Score,
			CategoryBonus: bonus,
			FinalScore:    p.FinalScore,
			AdvancedCards: advanced,
			DiceCount:     len(p.Dice),
		}
	}
	g.result = rank(standings)

	evt := rules.NewEvent(rules.EventGameOver, rules.NoPlayer)
	evt.Values = append([]int(nil), g.result.Winners...)
	evt.Amount = g.turns.Round()
	g.emit(evt)

	g.logger.Info("game over",
		zap.Int("round", g.turns.Round()),
		zap.Ints("winners", g.result.Winners),
	)
	return nil
}

// Result returns the final ranking once the game is over.
func (g *Game) Result() (*Result, bool) {
	if g.result == nil {
		return nil, false
	}
	return g.result.copy(), true
}
