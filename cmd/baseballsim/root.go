package main

import (
	"github.com/spf13/cobra"
)

// RootCmd builds the baseballsim root command (grounded on
// stormlightlabs-baseball/cli/cli.go's RootCmd + AddCommand wiring).
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "baseballsim",
		Short: "Deterministic season simulation CLI",
		Long:  "Runs long-term baseball season simulations with synthetic league-average rosters.",
	}
	root.AddCommand(RunLongTermSimCmd())
	return root
}
