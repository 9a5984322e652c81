package market

import "errors"

// ErrCardNotInMarket is returned when a card is not visible in any row.
var ErrCardNotInMarket = errors.New("card not in market")

// Slot names where a visible card sits.
type Slot int

const (
	SlotNone Slot = iota
	SlotOpen
	SlotTop
)

// Row is one deck with its face-up top card and open row.
type Row struct {
	Type CardType
	Top  *Card
	Open []*Card
	deck *Deck
}

// DeckLen returns the number of undealt cards behind the row.
func (r *Row) DeckLen() int {
	return r.deck.Len()
}

func (r *Row) refillTop() {
	r.Top = r.deck.DrawPreferring((*Card).SingleElement)
}

// Market is the basic and advanced rows.
type Market struct {
	Basic    *Row
	Advanced *Row
	size     int
}

// NewMarket deals each row: one top card preferring a single-element card,
// then up to size open cards from the deck head.
func NewMarket(basic, advanced *Deck, size int) *Market {
	m := &Market{
		Basic:    &Row{Type: CardBasic, deck: basic},
		Advanced: &Row{Type: CardAdvanced, deck: advanced},
		size:     size,
	}
	for _, row := range m.rows() {
		row.refillTop()
		for len(row.Open) < size {
			c := row.deck.Draw()
			if c == nil {
				break
			}
			row.Open = append(row.Open, c)
		}
	}
	return m
}

// Size is the target number of open cards per row.
func (m *Market) Size() int {
	return m.size
}

func (m *Market) rows() []*Row {
	return []*Row{m.Basic, m.Advanced}
}

// Locate finds a visible card. Open rows are searched before top cards.
func (m *Market) Locate(id string) (*Card, Slot) {
	for _, row := range m.rows() {
		for _, c := range row.Open {
			if c.ID == id {
				return c, SlotOpen
			}
		}
	}
	for _, row := range m.rows() {
		if row.Top != nil && row.Top.ID == id {
			return row.Top, SlotTop
		}
	}
	return nil, SlotNone
}

// Purchase removes a card and backfills its slot. It returns the card and the
// replacement (nil when the deck ran out).
func (m *Market) Purchase(id string, allowTop bool) (card, refill *Card, err error) {
	for _, row := range m.rows() {
		for i, c := range row.Open {
			if c.ID != id {
				continue
			}
			row.Open = append(row.Open[:i:i], row.Open[i+1:]...)
			if next := row.deck.Draw(); next != nil {
				row.Open = append(row.Open, next)
				refill = next
			}
			return c, refill, nil
		}
	}
	if allowTop {
		for _, row := range m.rows() {
			if row.Top != nil && row.Top.ID == id {
				c := row.Top
				row.refillTop()
				return c, row.Top, nil
			}
		}
	}
	return nil, nil, ErrCardNotInMarket
}

// Visible returns every card a player can see, open rows first.
func (m *Market) Visible() []*Card {
	var out []*Card
	for _, row := range m.rows() {
		out = append(out, row.Open...)
	}
	for _, row := range m.rows() {
		if row.Top != nil {
			out = append(out, row.Top)
		}
	}
	return out
}
