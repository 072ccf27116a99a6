package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "modemctl",
	Short: "modemctl – reboot a network modem over SSH",
	Long:  "modemctl opens an SSH session to a modem, issues a reboot, and reports whether the modem is restarting.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: run the reset.
		return runReset(cmd.Context())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Exit code 0 on success, 1 on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
