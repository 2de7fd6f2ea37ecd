package game

import (
	"fmt"
	"math/rand"

	"github.com/arcanaland/blackjack/internal/deck"
)

// Outcome is the result of a round from the player's side
type Outcome int

const (
	Lose Outcome = iota
	Win
)

func (o Outcome) String() string {
	if o == Win {
		return "win"
	}
	return "lose"
}

// PlayRound shuffles a fresh deck with r and plays one round on con
func PlayRound(r *rand.Rand, con *Console) (Outcome, error) {
	d := deck.New()
	d.Shuffle(r)

	return Play(d, con)
}

// Play runs one round drawing from d. The dealer gets one card and the
// player two; a player bust loses without the dealer playing, a dealer
// bust wins, otherwise the player wins only with a strictly higher total.
func Play(d Dealer, con *Console) (Outcome, error) {
	var dealer, player Player

	if err := seed(d, &dealer, 1); err != nil {
		return Lose, err
	}
	con.dealerShowing(dealer.Score)

	if err := seed(d, &player, 2); err != nil {
		return Lose, err
	}
	con.playerHas(player.Score)

	playerBust, err := PlayerTurn(d, &player, con)
	if err != nil {
		return Lose, err
	}
	if playerBust {
		con.result(Lose)
		return Lose, nil
	}

	dealerBust, err := DealerTurn(d, &dealer, con)
	if err != nil {
		return Lose, err
	}

	outcome := Lose
	if dealerBust || player.Score > dealer.Score {
		outcome = Win
	}

	con.result(outcome)
	return outcome, nil
}

func seed(d Dealer, p *Player, n int) error {
	for i := 0; i < n; i++ {
		c, err := d.Deal()
		if err != nil {
			return fmt.Errorf("error dealing opening cards: %w", err)
		}
		p.Add(c)
	}
	return nil
}
