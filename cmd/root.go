package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/game"
)

// RootCmd represents the base command; on its own it plays one round
var RootCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Play a round of blackjack against the dealer",
	Long: `Blackjack deals you two cards and the dealer one from a freshly shuffled deck.
Hit to draw another card or stand to keep your total. Going over 21 loses at once.
The dealer then draws until reaching 17; you win if the dealer busts or your
total is strictly higher. A tie goes to the dealer.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		r, err := newRand(cmd, cfg)
		if err != nil {
			return err
		}

		colored, err := useColor(cmd, cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		con := game.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(), colored)
		if _, err := game.PlayRound(r, con); err != nil {
			return fmt.Errorf("round aborted: %w", err)
		}

		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Int64("seed", 0, "Seed the shuffle for a reproducible deal")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// newRand returns the generator used for every shuffle of this process.
// The --seed flag wins over the config seed; without either the clock is used.
func newRand(cmd *cobra.Command, cfg *config.Config) (*rand.Rand, error) {
	seed := time.Now().UnixNano()

	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	if cmd.Flags().Changed("seed") {
		flagSeed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return nil, err
		}
		seed = flagSeed
	}

	return rand.New(rand.NewSource(seed)), nil
}

// useColor decides whether to write escape sequences to out
func useColor(cmd *cobra.Command, cfg *config.Config, out io.Writer) (bool, error) {
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return false, err
	}
	if noColor {
		return false, nil
	}

	switch cfg.Color {
	case config.ColorAlways:
		return true, nil
	case config.ColorNever:
		return false, nil
	}

	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())), nil
}
