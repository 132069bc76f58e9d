// Package cli implements the planctl command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"planner-backend/internal/shared/telemetry"
)

// NewRootCmd builds the planctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "planctl",
		Short: "Turn codebase assessments into improvement plans",
		Long: `planctl reads an assessment report (JSON or YAML) and prints a prioritised
improvement plan: roadmap items, AI opportunities, milestones, and a recommendation.`,
		SilenceUsage: true,
	}
	root.AddCommand(newPlanCmd(), newCatalogCmd())
	return root
}

// Execute runs the root command. Logs go to stderr so stdout carries only the report.
func Execute() error {
	telemetry.SetOutput(os.Stderr)
	return NewRootCmd().Execute()
}
