package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, injected via -ldflags at release time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Long:  `Shows the running dice-roller release and the build it was cut from.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dice-roller %s (commit %s)\n", Version, Commit)
			fmt.Fprintf(out, "built %s for %s/%s\n", BuildDate, runtime.GOOS, runtime.GOARCH)
		},
	}
}
