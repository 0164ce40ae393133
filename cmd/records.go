package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weijiayao/finance-tracker/internal/output"
	"github.com/weijiayao/finance-tracker/pkg/dateutil"
	"github.com/weijiayao/finance-tracker/pkg/money"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List all recorded months",
	RunE:  runRecords,
}

func init() {
	rootCmd.AddCommand(recordsCmd)
}

func runRecords(cmd *cobra.Command, args []string) error {
	ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = ledger.Close() }()

	records, err := ledger.List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no records yet")
		return nil
	}

	table := output.Table{
		Title:   "Recorded Months",
		Headers: []string{"Month", "Earned Income", "Expense", "Adjustment", "Total Asset"},
	}
	for _, rec := range records {
		total := "-"
		if rec.TotalAsset != nil {
			total = money.Format(*rec.TotalAsset)
		}
		table.Rows = append(table.Rows, []string{
			dateutil.FormatMonth(rec.Month),
			money.Format(rec.EarnedIncome),
			money.Format(rec.Expense),
			money.FormatSigned(rec.AssetAdjustment),
			total,
		})
	}

	fmt.Fprint(os.Stdout, table.Render())
	return nil
}
