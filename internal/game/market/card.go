// Package market holds compound cards, their decks, and the two-row market
// players buy from.
package market

import (
	"fmt"
	"strings"
)

// CardType selects which deck and market row a card belongs to.
type CardType int

const (
	CardBasic CardType = iota
	CardAdvanced
)

func (t CardType) String() string {
	switch t {
	case CardBasic:
		return "BASIC"
	case CardAdvanced:
		return "ADVANCED"
	default:
		return fmt.Sprintf("CARD_TYPE_%d", int(t))
	}
}

// ParseCardType accepts "basic" or "advanced" in any case.
func ParseCardType(s string) (CardType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return CardBasic, nil
	case "advanced":
		return CardAdvanced, nil
	}
	return CardBasic, fmt.Errorf("unknown card type %q", s)
}

// Card is a compound players sell for points.
// RequiredElements is a multiset: each duplicate needs its own owned element.
type Card struct {
	ID               string
	Name             string
	Formula          string
	Points           int
	RequiredElements []int
	Description      string
	Type             CardType
}

// Copy returns a deep copy.
func (c *Card) Copy() *Card {
	if c == nil {
		return nil
	}
	out := *c
	out.RequiredElements = append([]int(nil), c.RequiredElements...)
	return &out
}

// SingleElement reports whether the card needs exactly one element.
func (c *Card) SingleElement() bool {
	return len(c.RequiredElements) == 1
}

func (c *Card) String() string {
	return fmt.Sprintf("%s [%s] %dpt %v", c.Name, c.ID, c.Points, c.RequiredElements)
}
