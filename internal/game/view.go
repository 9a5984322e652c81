package game

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"

	"github.com/mendeleevdice/mendeleev-go/internal/game/dice"
	"github.com/mendeleevdice/mendeleev-go/internal/game/market"
	"github.com/mendeleevdice/mendeleev-go/internal/game/watchers"
)

// View is a detached snapshot of everything a driver needs to render a game.
type View struct {
	Phase           string
	Round           int
	CurrentPlayer   int
	Players         []PlayerView
	Board           []CellView
	Market          MarketView
	Selection       []int
	Operation       string
	CalculatedValue int
	SalesTotal      int
	Result          *Result
}

// PlayerView is one player's public state.
type PlayerView struct {
	ID             int
	Color          string
	Score          int
	Cubes          int
	Dice           []DieView
	Elements       []int
	Skills         []string
	SoldCards      []string
	OutsourceUsed  bool
	FinalScore     int
	SlideAvailable bool
	PendingRewards []RewardKind
	Activity       watchers.Activity
}

// DieView is a die as shown to players.
type DieView struct {
	Type     dice.Type
	Value    int
	Selected bool
	Locked   bool
}

// CellView lists the players on an occupied element.
type CellView struct {
	Element int
	Owners  []int
}

// CardView is a card as shown in the market.
type CardView struct {
	ID               string
	Name             string
	Formula          string
	Points           int
	RequiredElements []int
	Description      string
	Type             string
}

// RowView is one market row.
type RowView struct {
	Top      *CardView
	Open     []CardView
	DeckSize int
}

// MarketView holds both market rows.
type MarketView struct {
	Basic    RowView
	Advanced RowView
}

func cardView(c *market.Card) CardView {
	return CardView{
		ID:               c.ID,
		Name:             c.Name,
		Formula:          c.Formula,
		Points:           c.Points,
		RequiredElements: slices.Clone(c.RequiredElements),
		Description:      c.Description,
		Type:             c.Type.String(),
	}
}

func rowView(r *market.Row) RowView {
	out := RowView{DeckSize: r.DeckLen()}
	if r.Top != nil {
		top := cardView(r.Top)
		out.Top = &top
	}
	for _, c := range r.Open {
		out.Open = append(out.Open, cardView(c))
	}
	return out
}

// View builds a snapshot of the game.
func (g *Game) View() *View {
	v := &View{
		Phase:           g.turns.Phase().String(),
		Round:           g.turns.Round(),
		CurrentPlayer:   g.turns.CurrentPlayer(),
		Selection:       slices.Clone(g.selection),
		Operation:       g.operation.String(),
		CalculatedValue: g.CalculatedValue(),
		SalesTotal:      g.sales.Total(),
		Market: MarketView{
			Basic:    rowView(g.market.Basic),
			Advanced: rowView(g.market.Advanced),
		},
		Result: g.result.copy(),
	}
	for _, n := range g.board.Occupied() {
		v.Board = append(v.Board, CellView{Element: n, Owners: g.board.Occupants(n)})
	}
	for _, p := range g.players {
		pv := PlayerView{
			ID:             p.ID,
			Color:          p.Color,
			Score:          p.Score,
			Cubes:          p.Cubes,
			Elements:       slices.Clone(p.Elements),
			Skills:         p.Skills.IDs(),
			OutsourceUsed:  p.OutsourceUsed,
			FinalScore:     p.FinalScore,
			SlideAvailable: p.slideAvailable,
			PendingRewards: slices.Clone(p.pending),
			Activity:       g.activity.Get(p.ID),
		}
		for _, d := range p.Dice {
			pv.Dice = append(pv.Dice, DieView{Type: d.Type, Value: d.Value, Selected: d.Selected, Locked: d.Locked})
		}
		for _, c := range p.SoldCards {
			pv.SoldCards = append(pv.SoldCards, c.ID)
		}
		v.Players = append(v.Players, pv)
	}
	return v
}

// Checksum hashes a canonical rendering of the view. Two views with the same
// game state always produce the same checksum.
func (v *View) Checksum() (string, error) {
	hash := sha256.New()
	if _, err := hash.Write(v.canonical()); err != nil {
		return "", fmt.Errorf("failed to compute hash: %w", err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

func (v *View) canonical() []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "GAME:%s|%d|%d|%v|%s|%d|%d\n",
		v.Phase, v.Round, v.CurrentPlayer, v.Selection, v.Operation, v.CalculatedValue, v.SalesTotal)

	for _, p := range v.Players {
		fmt.Fprintf(&buf, "PLAYER:%d|%d|%d|%v|%v|%v|%t|%d|%t|%v\n",
			p.ID, p.Score, p.Cubes, p.Elements, p.Skills, p.SoldCards,
			p.OutsourceUsed, p.FinalScore, p.SlideAvailable, p.PendingRewards)
		for i, d := range p.Dice {
			fmt.Fprintf(&buf, "  DIE:%d|%s|%d|%t|%t\n", i, d.Type, d.Value, d.Selected, d.Locked)
		}
	}

	for _, c := range v.Board {
		fmt.Fprintf(&buf, "CELL:%d|%v\n", c.Element, c.Owners)
	}

	for _, row := range []struct {
		name string
		r    RowView
	}{{"BASIC", v.Market.Basic}, {"ADVANCED", v.Market.Advanced}} {
		top := ""
		if row.r.Top != nil {
			top = row.r.Top.ID
		}
		fmt.Fprintf(&buf, "ROW:%s|%s|%d\n", row.name, top, row.r.DeckSize)
		for _, c := range row.r.Open {
			fmt.Fprintf(&buf, "  OPEN:%s\n", c.ID)
		}
	}

	if v.Result != nil {
		for _, s := range v.Result.Standings {
			fmt.Fprintf(&buf, "STANDING:%d|%d|%d|%d\n", s.Player, s.FinalScore, s.AdvancedCards, s.Rank)
		}
	}
	return buf.Bytes()
}
