package cmd

import (
	"github.com/spf13/cobra"

	"github.com/weijiayao/finance-tracker/internal/config"
	"github.com/weijiayao/finance-tracker/internal/domain"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Solve the required monthly contribution and project the plan",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	settings, err := config.NewSettingsParser().LoadFromFile(flagSettings)
	if err != nil {
		return err
	}

	summary, rows, err := newEngine().BuildPlan(*settings)
	if err != nil {
		return err
	}

	return emitReport(&domain.Report{Summary: summary, Projection: rows})
}
