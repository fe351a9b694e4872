package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mobinyousefi-cs/dice-roller/internal/dice"
	"github.com/mobinyousefi-cs/dice-roller/internal/histogram"
)

const barWidth = 40

var barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))

func newSimulateCmd() *cobra.Command {
	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Roll many times and print the outcome distribution",
		Long: `Repeats the configured roll a number of trials and prints a histogram of
the totals. Useful for eyeballing the distribution of a roll before using it.`,
		Args: cobra.NoArgs,
		RunE: runSimulate,
	}

	addRollFlags(simulateCmd)
	simulateCmd.Flags().Int("trials", 10000, "Number of rolls to simulate")
	return simulateCmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	num, sides, _, opts := rollParams(cmd)
	trials, _ := cmd.Flags().GetInt("trials")
	if trials < 1 {
		return fmt.Errorf("%w: trials must be at least 1", dice.ErrInvalidArgument)
	}

	die, err := dice.NewDie(sides)
	if err != nil {
		return err
	}
	roller, err := dice.NewRoller(append(opts, dice.WithDie(die))...)
	if err != nil {
		return err
	}

	// Totals of num dice range from num (all ones) to num*sides.
	hist, err := histogram.New(num, num*sides)
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(trials), "Rolling")
	for i := 0; i < trials; i++ {
		total, err := roller.RollSum(num)
		if err != nil {
			return err
		}
		if err := hist.Add(total); err != nil {
			return err
		}
		bar.Add(1)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%dd%d, %d trials:\n", num, sides, trials)

	peak := hist.Peak()
	for v := hist.Min(); v <= hist.Max(); v++ {
		width := 0
		if peak > 0 {
			width = hist.Count(v) * barWidth / peak
		}
		fmt.Fprintf(out, "%4d %s %6.2f%% (%d)\n",
			v,
			barStyle.Render(strings.Repeat("█", width)),
			hist.Share(v)*100,
			hist.Count(v),
		)
	}
	return nil
}
