package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/deck"
)

// deckCmd represents the deck command
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Print the order of the deck",
	Long: `Deck prints the cards of a new deck in two character form (rank then suit),
in canonical order or shuffled the same way a round would shuffle them.

Examples:
  blackjack deck
  blackjack deck --shuffle --seed 42
  blackjack deck --shuffle --count 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		shuffle, _ := cmd.Flags().GetBool("shuffle")
		count, _ := cmd.Flags().GetInt("count")

		if count < 1 || count > deck.Size {
			return fmt.Errorf("count must be between 1 and %d, got %d", deck.Size, count)
		}

		d := deck.New()

		if shuffle {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			r, err := newRand(cmd, cfg)
			if err != nil {
				return err
			}
			d.Shuffle(r)
		}

		codes := make([]string, 0, count)
		for i := 0; i < count; i++ {
			c, err := d.Deal()
			if err != nil {
				return err
			}
			codes = append(codes, c.String())
		}

		// One line per suit-sized group keeps the canonical order readable
		for start := 0; start < len(codes); start += 13 {
			end := min(start+13, len(codes))
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(codes[start:end], " "))
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)

	deckCmd.Flags().BoolP("shuffle", "s", false, "Shuffle the deck before printing")
	deckCmd.Flags().IntP("count", "n", deck.Size, "Number of cards to print from the top")
}
