package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/arcanaland/blackjack/internal/card"
)

// ErrInputClosed is returned when the input ends before the player made a choice
var ErrInputClosed = errors.New("input closed before a choice was made")

// Choice is the player's decision at the prompt
type Choice int

const (
	Hit Choice = iota
	Stand
)

func (c Choice) String() string {
	if c == Hit {
		return "hit"
	}
	return "stand"
}

const (
	promptText  = "(h) to hit, or (s) to stand: "
	invalidText = "Not a valid input. Try again: "
)

// Console reads the player's choices and writes the round messages
type Console struct {
	in  *bufio.Reader
	out io.Writer

	cardColor *color.Color
	winColor  *color.Color
	loseColor *color.Color
	bustColor *color.Color
}

// NewConsole wraps in and out. When colored is false no escape sequences
// are written, whatever the terminal supports.
func NewConsole(in io.Reader, out io.Writer, colored bool) *Console {
	c := &Console{
		in:        bufio.NewReader(in),
		out:       out,
		cardColor: color.New(color.FgCyan, color.Bold),
		winColor:  color.New(color.FgGreen, color.Bold),
		loseColor: color.New(color.FgRed, color.Bold),
		bustColor: color.New(color.FgYellow),
	}

	for _, col := range []*color.Color{c.cardColor, c.winColor, c.loseColor, c.bustColor} {
		if colored {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}

	return c
}

// Choose prompts until a line holding only "h" or "s" is read. Leading
// blanks are ignored and empty lines are skipped; anything else discards
// the line and asks again.
func (c *Console) Choose() (Choice, error) {
	fmt.Fprint(c.out, promptText)

	for {
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return 0, ErrInputClosed
			}
			return 0, fmt.Errorf("error reading choice: %w", err)
		}

		switch strings.TrimLeft(strings.TrimRight(line, "\r\n"), " \t") {
		case "h":
			return Hit, nil
		case "s":
			return Stand, nil
		case "":
			continue
		}

		fmt.Fprint(c.out, invalidText)
	}
}

func (c *Console) dealerShowing(score int) {
	fmt.Fprintf(c.out, "The dealer is showing: %d\n", score)
}

func (c *Console) playerHas(score int) {
	fmt.Fprintf(c.out, "You have: %d\n", score)
}

func (c *Console) playerDealt(dealt card.Card, score int) {
	fmt.Fprintf(c.out, "You were dealt a %s. You now have: %d\n", c.cardColor.Sprint(dealt), score)
}

func (c *Console) playerBust() {
	c.bustColor.Fprintln(c.out, "You went bust!")
}

func (c *Console) dealerFlips(flipped card.Card, score int) {
	fmt.Fprintf(c.out, "The dealer flips a %s. They now have: %d\n", c.cardColor.Sprint(flipped), score)
}

func (c *Console) dealerBust() {
	c.bustColor.Fprintln(c.out, "The dealer went bust!")
}

func (c *Console) result(o Outcome) {
	if o == Win {
		c.winColor.Fprintln(c.out, "You win!")
		return
	}
	c.loseColor.Fprintln(c.out, "You lose!")
}
