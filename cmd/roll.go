package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mobinyousefi-cs/dice-roller/internal/dice"
)

func newRollCmd() *cobra.Command {
	rollCmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll dice once and print the outcomes",
		Long: `Rolls the configured number of dice and prints one outcome per line, or a
single total line when --sum is set. Pass --seed to reproduce a roll exactly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoll(cmd)
		},
	}

	addRollFlags(rollCmd)
	return rollCmd
}

// addRollFlags registers the shared roll surface on a command. The root
// command carries the same flags so that "--cli -n 3 --sum" works without
// naming a subcommand.
func addRollFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("num", "n", 1, "Number of dice to roll")
	cmd.Flags().Int("sides", 6, "Number of sides per die")
	cmd.Flags().Bool("sum", false, "Print only the total of all outcomes")
	cmd.Flags().Int64("seed", 0, "Seed for reproducible rolls")
}

// rollParams resolves the effective roll parameters for a command: explicit
// flags win, then config file values, then the built-in defaults.
func rollParams(cmd *cobra.Command) (num, sides int, sumMode bool, opts []dice.Option) {
	num, _ = cmd.Flags().GetInt("num")
	sides, _ = cmd.Flags().GetInt("sides")
	sumMode, _ = cmd.Flags().GetBool("sum")

	if !cmd.Flags().Changed("num") && viper.IsSet("num") {
		num = viper.GetInt("num")
	}
	if !cmd.Flags().Changed("sides") && viper.IsSet("sides") {
		sides = viper.GetInt("sides")
	}

	// Seed zero is a valid seed, so only an explicitly passed flag counts.
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		opts = append(opts, dice.WithSeed(seed))
	}

	return num, sides, sumMode, opts
}

func runRoll(cmd *cobra.Command) error {
	num, sides, sumMode, opts := rollParams(cmd)

	result, err := dice.Roll(sides, num, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if sumMode {
		fmt.Fprintln(out, result.Total)
		return nil
	}
	for _, outcome := range result.Outcomes {
		fmt.Fprintln(out, outcome)
	}
	return nil
}
