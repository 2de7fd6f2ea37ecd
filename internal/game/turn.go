package game

import (
	"fmt"

	"github.com/arcanaland/blackjack/internal/card"
)

// Dealer is the source of cards for a round. *deck.Deck satisfies it.
type Dealer interface {
	Deal() (card.Card, error)
}

// PlayerTurn lets the player hit until they stand or reach BustThreshold.
// It reports whether the player went bust.
func PlayerTurn(d Dealer, player *Player, con *Console) (bool, error) {
	for player.Score < BustThreshold {
		choice, err := con.Choose()
		if err != nil {
			return false, err
		}

		if choice == Stand {
			break
		}

		c, err := d.Deal()
		if err != nil {
			return false, fmt.Errorf("error dealing to player: %w", err)
		}

		player.Add(c)
		con.playerDealt(c, player.Score)
	}

	if player.Bust() {
		con.playerBust()
		return true, nil
	}

	return false, nil
}

// DealerTurn draws for the dealer until DealerStopThreshold is reached.
// It reports whether the dealer went bust.
func DealerTurn(d Dealer, dealer *Player, con *Console) (bool, error) {
	for dealer.Score < DealerStopThreshold {
		c, err := d.Deal()
		if err != nil {
			return false, fmt.Errorf("error dealing to dealer: %w", err)
		}

		dealer.Add(c)
		con.dealerFlips(c, dealer.Score)
	}

	if dealer.Bust() {
		con.dealerBust()
		return true, nil
	}

	return false, nil
}
