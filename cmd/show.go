package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/config"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display a card and its blackjack value",
	Long: `Show displays the name, code and point value of a single card.
Cards are written as a rank (A 2 3 4 5 6 7 8 9 T J Q K) followed by a
suit (C D H S).

Examples:
  blackjack show 5H
  blackjack show AS`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		colored, err := useColor(cmd, cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		displayCard(cmd, c, colored)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// displayCard prints the card details between two rules sized to the terminal
func displayCard(cmd *cobra.Command, c card.Card, colored bool) {
	out := cmd.OutOrStdout()

	label := colorize.New(colorize.FgCyan)
	value := colorize.New(colorize.FgHiWhite)
	suit := colorize.New(suitColor(c.Suit))
	for _, col := range []*colorize.Color{label, value, suit} {
		if colored {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}

	rule := strings.Repeat("─", ruleWidth(out))

	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, label.Sprint("Card:  ")+value.Sprint(c.Name()))
	fmt.Fprintln(out, label.Sprint("Code:  ")+suit.Sprint(c.String()))
	fmt.Fprintln(out, label.Sprint("Value: ")+value.Sprint(c.Value()))
	fmt.Fprintln(out, rule)
}

// suitColor returns red for diamonds and hearts, white for clubs and spades
func suitColor(s card.Suit) colorize.Attribute {
	if s == card.Diamonds || s == card.Hearts {
		return colorize.FgHiRed
	}
	return colorize.FgHiWhite
}

// ruleWidth returns the width of the separator, at most 40 columns
func ruleWidth(out io.Writer) int {
	width := 80 // Default if we can't get terminal width
	if f, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return min(width, 40)
}
