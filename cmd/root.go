package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// newRootCmd builds the full command tree. Tests build their own tree per
// run so that flag state never leaks between executions.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dice-roller",
		Short: "Dice rolling simulator with an interactive terminal UI and a CLI mode",
		Long: `Simulates rolls of uniform N-sided dice. Running without flags opens the
interactive terminal UI; pass --cli to roll once and print the outcomes:

	dice-roller --cli -n 3 --sum --seed 123`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliMode, _ := cmd.Flags().GetBool("cli")
			if cliMode {
				return runRoll(cmd)
			}
			return RunTUI()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dice-roller.yaml)")

	rootCmd.Flags().Bool("cli", false, "Roll once in CLI mode instead of opening the TUI")
	addRollFlags(rootCmd)

	rootCmd.AddCommand(newRollCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	cobra.OnInitialize(initConfig)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dice-roller")
	}

	viper.SetEnvPrefix("DICE_ROLLER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
