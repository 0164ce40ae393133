package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/weijiayao/finance-tracker/internal/domain"
	"github.com/weijiayao/finance-tracker/pkg/dateutil"
	"github.com/weijiayao/finance-tracker/pkg/money"
)

var (
	flagRecordMonth       string
	flagRecordIncome      string
	flagRecordExpense     string
	flagRecordAdjust      string
	flagRecordTotal       string
	flagRecordDeleteMonth string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record (or overwrite) one month of actual activity",
	Long: "record stores earned income, expense, asset adjustments and the\n" +
		"observed total asset for one calendar month. Recording a month again\n" +
		"replaces it. Omitted amounts are stored as zero; an omitted\n" +
		"--total-asset stays unobserved.",
	RunE: runRecord,
}

var recordDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the record for one month",
	RunE:  runRecordDelete,
}

func init() {
	recordCmd.Flags().StringVarP(&flagRecordMonth, "month", "m", dateutil.FormatMonth(time.Now()), "Calendar month (YYYY-MM)")
	recordCmd.Flags().StringVar(&flagRecordIncome, "income", "", "Earned income for the month")
	recordCmd.Flags().StringVar(&flagRecordExpense, "expense", "", "Expense for the month")
	recordCmd.Flags().StringVar(&flagRecordAdjust, "adjust", "", "Manual asset adjustment (transfers, corrections)")
	recordCmd.Flags().StringVar(&flagRecordTotal, "total-asset", "", "Observed total asset at month end")

	recordDeleteCmd.Flags().StringVarP(&flagRecordDeleteMonth, "month", "m", "", "Calendar month (YYYY-MM)")

	recordCmd.AddCommand(recordDeleteCmd)
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	month, err := dateutil.ParseMonth(flagRecordMonth)
	if err != nil {
		return fmt.Errorf("--month must be YYYY-MM: %w", err)
	}

	rec := domain.MonthlyRecord{Month: month}
	if rec.EarnedIncome, err = money.Parse(flagRecordIncome); err != nil {
		return fmt.Errorf("--income: %w", err)
	}
	if rec.Expense, err = money.Parse(flagRecordExpense); err != nil {
		return fmt.Errorf("--expense: %w", err)
	}
	if rec.AssetAdjustment, err = money.Parse(flagRecordAdjust); err != nil {
		return fmt.Errorf("--adjust: %w", err)
	}
	if flagRecordTotal != "" {
		total, err := money.Parse(flagRecordTotal)
		if err != nil {
			return fmt.Errorf("--total-asset: %w", err)
		}
		rec.TotalAsset = &total
	}

	ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = ledger.Close() }()

	if err := ledger.Upsert(rec); err != nil {
		return err
	}
	fmt.Printf("recorded %s\n", dateutil.FormatMonth(month))
	return nil
}

func runRecordDelete(cmd *cobra.Command, args []string) error {
	if flagRecordDeleteMonth == "" {
		return fmt.Errorf("--month is required")
	}
	month, err := dateutil.ParseMonth(flagRecordDeleteMonth)
	if err != nil {
		return fmt.Errorf("--month must be YYYY-MM: %w", err)
	}

	ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = ledger.Close() }()

	if err := ledger.Delete(month); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", dateutil.FormatMonth(month))
	return nil
}
