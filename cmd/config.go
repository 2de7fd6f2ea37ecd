package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the blackjack config file",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFilePath())
	},
}

// configSeedCmd represents the config seed command
var configSeedCmd = &cobra.Command{
	Use:   "seed [value]",
	Short: "Fix the shuffle seed, or clear it with --clear",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clearSeed, _ := cmd.Flags().GetBool("clear")

		if clearSeed {
			if err := config.SetSeed(nil); err != nil {
				return fmt.Errorf("error clearing seed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Seed cleared, rounds are shuffled from the clock.")
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("a seed value or --clear is required")
		}

		seed, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", args[0], err)
		}

		if err := config.SetSeed(&seed); err != nil {
			return fmt.Errorf("error setting seed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seed set to: %d\n", seed)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSeedCmd)

	configSeedCmd.Flags().Bool("clear", false, "Remove the fixed seed")
}
