package game

import (
	"testing"

	"github.com/mendeleevdice/mendeleev-go/internal/game/dice"
	"github.com/mendeleevdice/mendeleev-go/internal/game/market"
	"github.com/mendeleevdice/mendeleev-go/internal/game/skills"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testCard(id string, points int, t market.CardType, elements ...int) *market.Card {
	return &market.Card{ID: id, Name: id, Points: points, RequiredElements: elements, Type: t}
}

// testDecks deals as follows with the default market size:
//
//	basic:    top b-oxygen, open b-water b-salt b-methane b-co2, deck b-ammonia b-hcl b-lif
//	advanced: top a-helium, open a-rust a-quartz a-brass, deck empty
func testDecks() Decks {
	return Decks{
		Basic: []*market.Card{
			testCard("b-water", 3, market.CardBasic, 1, 1, 8),
			testCard("b-salt", 2, market.CardBasic, 11, 17),
			testCard("b-methane", 4, market.CardBasic, 6, 1, 1, 1, 1),
			testCard("b-oxygen", 1, market.CardBasic, 8),
			testCard("b-co2", 3, market.CardBasic, 6, 8, 8),
			testCard("b-ammonia", 3, market.CardBasic, 7, 1, 1, 1),
			testCard("b-hcl", 2, market.CardBasic, 1, 17),
			testCard("b-lif", 2, market.CardBasic, 3, 9),
		},
		Advanced: []*market.Card{
			testCard("a-rust", 5, market.CardAdvanced, 26, 8),
			testCard("a-quartz", 6, market.CardAdvanced, 14, 8, 8),
			testCard("a-helium", 4, market.CardAdvanced, 2),
			testCard("a-brass", 7, market.CardAdvanced, 29, 30),
		},
	}
}

func newTestGame(t *testing.T, players int, mutate ...func(*Rules)) *Game {
	t.Helper()
	cfg := DefaultRules()
	for _, m := range mutate {
		m(&cfg)
	}
	g, err := New(cfg, players, testDecks(),
		WithLogger(zaptest.NewLogger(t)),
		WithSource(dice.NewSource(1)),
	)
	require.NoError(t, err)
	return g
}

func setFaces(g *Game, player int, faces ...int) {
	for i, f := range faces {
		g.players[player].Dice[i].Value = f
	}
}

// own places cubes without spending dice or cubes.
func own(t *testing.T, g *Game, player int, elements ...int) {
	t.Helper()
	for _, n := range elements {
		require.NoError(t, g.board.AddOwner(n, player))
		g.players[player].Elements = append(g.players[player].Elements, n)
	}
}

func grant(g *Game, player int, list ...skills.Skill) {
	for _, s := range list {
		g.players[player].Skills = g.players[player].Skills.With(s)
	}
}

func toggle(t *testing.T, g *Game, player int, dieIdx ...int) {
	t.Helper()
	for _, d := range dieIdx {
		_, err := g.ToggleDie(player, d)
		require.NoError(t, err)
	}
}

func toSelling(t *testing.T, g *Game) {
	t.Helper()
	_, err := g.StartSellingPhase()
	require.NoError(t, err)
}
