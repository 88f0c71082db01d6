package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for passmeter.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passmeter",
		Short: "Password strength meter",
		Long: `passmeter estimates how hard a password is to guess.

It combines an entropy estimate, pattern detection (keyboard runs, sequences,
repetitions, dates, common words) and dictionary lookups into a 0-100 score,
a strength tier, a crack-time estimate and actionable feedback.

Passwords are masked in reports unless --show-password is given, and are
never written to logs or to the audit history.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
