package deck

import (
	"errors"
	"math/rand"

	"github.com/arcanaland/blackjack/internal/card"
)

// Size is the number of cards in a full deck
const Size = int(card.MaxRanks) * int(card.MaxSuits)

// ErrExhausted is returned when a card is dealt from an empty deck.
// A legal round never draws that many cards, so callers treat it as fatal.
var ErrExhausted = errors.New("deck ran out of cards")

// Deck represents a standard 52 card deck and the position of the next card to deal
type Deck struct {
	cards [Size]card.Card
	next  int
}

// New builds a deck in canonical order: suits outer, ranks inner
// (AC, 2C, ..., KC, AD, ..., KS).
func New() *Deck {
	d := &Deck{}

	count := 0
	for _, suit := range card.AllSuits {
		for _, rank := range card.AllRanks {
			d.cards[count] = card.New(rank, suit)
			count++
		}
	}

	return d
}

// Shuffle permutes the whole deck using r and moves the deal position back
// to the top.
func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	d.next = 0
}

// Deal returns the next card and advances the deal position
func (d *Deck) Deal() (card.Card, error) {
	if d.next >= Size {
		return card.Card{}, ErrExhausted
	}

	c := d.cards[d.next]
	d.next++
	return c, nil
}

// Remaining returns how many cards are left to deal
func (d *Deck) Remaining() int {
	return Size - d.next
}

// Cards returns a copy of the deck in its current order, dealt cards included
func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, Size)
	copy(cards, d.cards[:])
	return cards
}
