package game

import (
	"github.com/mendeleevdice/mendeleev-go/internal/game/market"
	"github.com/mendeleevdice/mendeleev-go/internal/game/rules"
	"github.com/mendeleevdice/mendeleev-go/internal/game/skills"
	"go.uber.org/zap"
)

func (g *Game) coverage(p *Player, card *market.Card) market.Coverage {
	waivers := 0
	if p.HasSkill(skills.Outsource) && !p.OutsourceUsed {
		waivers = 1
	}
	return market.Covers(card.RequiredElements, p.Elements, waivers)
}

// locate finds a card the current rules let players buy.
func (g *Game) locate(cardID string) *market.Card {
	card, slot := g.market.Locate(cardID)
	if slot == market.SlotTop && !g.cfg.TopCardPurchasable {
		return nil
	}
	return card
}

func (g *Game) checkSale(player int, cardID string) (*Player, *market.Card, market.Coverage, *RuleError) {
	p, rerr := g.actor(player, rules.PhaseSelling)
	if rerr != nil {
		return nil, nil, market.Coverage{}, rerr
	}
	card := g.locate(cardID)
	if card == nil {
		return nil, nil, market.Coverage{}, ErrCardNotInMarket.WithContext("card", cardID)
	}
	cov := g.coverage(p, card)
	if !cov.Covered {
		return nil, nil, cov, ErrElementsMissing.
			WithContext("card", cardID).
			WithContext("missing", cov.Missing)
	}
	return p, card, cov, nil
}

// CanSellCard reports whether player could sell the card right now.
func (g *Game) CanSellCard(player int, cardID string) bool {
	_, _, _, rerr := g.checkSale(player, cardID)
	return rerr == nil
}

// SellCard buys a compound from the market with the player's elements.
// The sale always passes the turn.
func (g *Game) SellCard(player int, cardID string) (*Outcome, error) {
	const action = "sell_card"
	p, card, cov, rerr := g.checkSale(player, cardID)
	if rerr != nil {
		if rerr.Code == ErrCardNotInMarket.Code {
			g.logger.Warn("sale of a card missing from the market",
				zap.Int("player", player),
				zap.String("card", cardID),
			)
		}
		return nil, g.reject(action, player, rerr)
	}
	_, refill, err := g.market.Purchase(card.ID, g.cfg.TopCardPurchasable)
	if err != nil {
		g.logger.Error("market refused a validated sale", zap.String("card", cardID), zap.Error(err))
		return nil, err
	}

	g.begin()
	before := p.Score
	p.Score += card.Points
	p.SoldCards = append(p.SoldCards, card)

	sold := rules.NewEventWithAmount(rules.EventCardSold, player, card.Points)
	sold.Data = card.ID
	sold.Metadata["type"] = card.Type.String()
	g.emit(sold)

	if cov.Waived > 0 {
		p.OutsourceUsed = true
		evt := rules.NewEvent(rules.EventOutsourceUsed, player)
		evt.Values = cov.Missing
		evt.Data = card.ID
		g.emit(evt)
	}
	if refill != nil {
		evt := rules.NewEventWithData(rules.EventMarketRefilled, rules.NoPlayer, refill.ID)
		evt.Metadata["type"] = refill.Type.String()
		evt.Metadata["replaces"] = card.ID
		g.emit(evt)
	}
	g.offerRewards(p, before)

	if err := g.advanceSellingTurn(); err != nil {
		return nil, err
	}
	return g.outcome(action, player), nil
}

// SkipSellingTurn passes without buying.
func (g *Game) SkipSellingTurn(player int) (*Outcome, error) {
	const action = "skip_selling_turn"
	if _, rerr := g.actor(player, rules.PhaseSelling); rerr != nil {
		return nil, g.reject(action, player, rerr)
	}

	g.begin()
	g.emit(rules.NewEvent(rules.EventSellingTurnPassed, player))
	if err := g.advanceSellingTurn(); err != nil {
		return nil, err
	}
	return g.outcome(action, player), nil
}

// advanceSellingTurn passes the turn; wrapping past the last seat ends the round.
func (g *Game) advanceSellingTurn() error {
	if !g.turns.AdvancePlayer() {
		return nil
	}
	for _, p := range g.players {
		if p.Score >= g.cfg.WinningScore {
			return g.finish()
		}
	}
	g.turns.NextRound()
	return g.startProductionPhase()
}

// Market returns the live market. Callers must not mutate it.
func (g *Game) Market() *market.Market {
	return g.market
}
