package cli

import (
	"github.com/spf13/cobra"

	"planner-backend/internal/assessment"
	"planner-backend/internal/planning"
)

func newCatalogCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the built-in AI opportunity catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := assessment.ParseFormat(format)
			if err != nil {
				return err
			}
			return writeValue(cmd.OutOrStdout(), planning.Catalog(), f)
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	return cmd
}
