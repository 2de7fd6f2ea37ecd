package game

import (
	"github.com/arcanaland/blackjack/internal/card"
)

const (
	// BustThreshold is the highest total that does not bust
	BustThreshold = 21
	// DealerStopThreshold is the total at which the dealer stops drawing
	DealerStopThreshold = 17
)

// Player holds the running total of one side of the table, the human
// player or the dealer.
type Player struct {
	Score int
}

// Add counts a drawn card into the total
func (p *Player) Add(c card.Card) {
	p.Score += c.Value()
}

// Bust reports whether the total went over BustThreshold
func (p Player) Bust() bool {
	return p.Score > BustThreshold
}
