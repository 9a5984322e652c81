package market

import "github.com/mendeleevdice/mendeleev-go/internal/game/dice"

// Shuffle permutes cards in place with Fisher-Yates.
func Shuffle(cards []*Card, src dice.Source) {
	for i := len(cards) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Deck is a face-down FIFO pile.
type Deck struct {
	cards []*Card
}

// NewDeck builds a deck in the given order. The slice is copied.
func NewDeck(cards []*Card) *Deck {
	return &Deck{cards: append([]*Card(nil), cards...)}
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Draw removes and returns the head card, or nil when empty.
func (d *Deck) Draw() *Card {
	if len(d.cards) == 0 {
		return nil
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c
}

// DrawPreferring removes the first card matching pred, falling back to the head.
func (d *Deck) DrawPreferring(pred func(*Card) bool) *Card {
	for i, c := range d.cards {
		if pred(c) {
			d.cards = append(d.cards[:i:i], d.cards[i+1:]...)
			return c
		}
	}
	return d.Draw()
}

// Cards returns copies of the remaining cards in draw order.
func (d *Deck) Cards() []*Card {
	out := make([]*Card, len(d.cards))
	for i, c := range d.cards {
		out[i] = c.Copy()
	}
	return out
}
