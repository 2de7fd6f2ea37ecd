package card

import (
	"fmt"
)

// Rank is the face of a playing card
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King

	MaxRanks
)

// Suit is the suit of a playing card
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades

	MaxSuits
)

// AllRanks lists every rank from ace to king
var AllRanks = [MaxRanks]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// AllSuits lists every suit in deck order
var AllSuits = [MaxSuits]Suit{Clubs, Diamonds, Hearts, Spades}

var (
	rankGlyphs = [MaxRanks]byte{'A', '2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K'}
	suitGlyphs = [MaxSuits]byte{'C', 'D', 'H', 'S'}
	rankValues = [MaxRanks]int{11, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10}

	rankNames = [MaxRanks]string{
		"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
		"Eight", "Nine", "Ten", "Jack", "Queen", "King",
	}
	suitNames = [MaxSuits]string{"Clubs", "Diamonds", "Hearts", "Spades"}
)

// Glyph returns the single character used for the rank in a card code
func (r Rank) Glyph() byte {
	return rankGlyphs[r]
}

func (r Rank) String() string {
	return rankNames[r]
}

// Glyph returns the single character used for the suit in a card code
func (s Suit) Glyph() byte {
	return suitGlyphs[s]
}

func (s Suit) String() string {
	return suitNames[s]
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// New returns the card with the given rank and suit
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Value returns the blackjack points of the card. An ace always counts 11.
func (c Card) Value() int {
	return rankValues[c.Rank]
}

// String renders the two character code, e.g. "AC" or "TH"
func (c Card) String() string {
	return string([]byte{c.Rank.Glyph(), c.Suit.Glyph()})
}

// Name returns the long form of the card, e.g. "Five of Hearts"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Parse reads a two character card code as produced by String
func Parse(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("invalid card code: %q", code)
	}

	rank, ok := rankFromGlyph(code[0])
	if !ok {
		return Card{}, fmt.Errorf("invalid rank in card code: %q", code)
	}

	suit, ok := suitFromGlyph(code[1])
	if !ok {
		return Card{}, fmt.Errorf("invalid suit in card code: %q", code)
	}

	return New(rank, suit), nil
}

func rankFromGlyph(g byte) (Rank, bool) {
	for _, r := range AllRanks {
		if rankGlyphs[r] == g {
			return r, true
		}
	}
	return 0, false
}

func suitFromGlyph(g byte) (Suit, bool) {
	for _, s := range AllSuits {
		if suitGlyphs[s] == g {
			return s, true
		}
	}
	return 0, false
}
