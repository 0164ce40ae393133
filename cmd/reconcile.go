package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/weijiayao/finance-tracker/internal/config"
	"github.com/weijiayao/finance-tracker/internal/domain"
	"github.com/weijiayao/finance-tracker/pkg/dateutil"
	"github.com/weijiayao/finance-tracker/pkg/money"
)

var (
	flagAnchorMonth string
	flagAnchorAsset string
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Merge recorded activity with the plan on one timeline",
	Long: "reconcile regenerates the plan from the settings file, loads the\n" +
		"recorded months from the ledger and merges both onto one timeline\n" +
		"with derived saving and gain metrics. When the settings file cannot\n" +
		"be loaded and both --anchor-month and --anchor-asset are given, the\n" +
		"timeline is built from the records alone.",
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&flagAnchorMonth, "anchor-month", "", "Override the anchor month (YYYY-MM)")
	reconcileCmd.Flags().StringVar(&flagAnchorAsset, "anchor-asset", "", "Override the initial asset at the anchor month")
	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	engine := newEngine()

	// The plan is optional here: reconciliation still works over records
	// alone when no settings file exists.
	var summary *domain.PlanSummary
	var planned []domain.ProjectionRow
	var anchorMonth time.Time
	anchorAsset := decimal.Zero

	// Explicit anchor flags take precedence over a failed settings load,
	// so a broken or absent plan never blocks a records-only run.
	settings, err := config.NewSettingsParser().LoadFromFile(flagSettings)
	switch {
	case err == nil:
		summary, planned, err = engine.BuildPlan(*settings)
		if err != nil {
			return err
		}
		anchorMonth = settings.InitialMonth
		anchorAsset = settings.InitialAsset
	case flagAnchorMonth != "" && flagAnchorAsset != "":
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "ignoring settings file %s: %v\n", flagSettings, err)
		}
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("no settings file at %s: pass --anchor-month and --anchor-asset to reconcile records alone", flagSettings)
	default:
		return err
	}

	if flagAnchorMonth != "" {
		m, err := dateutil.ParseMonth(flagAnchorMonth)
		if err != nil {
			return fmt.Errorf("--anchor-month must be YYYY-MM: %w", err)
		}
		anchorMonth = m
	}
	if flagAnchorAsset != "" {
		a, err := money.Parse(flagAnchorAsset)
		if err != nil {
			return fmt.Errorf("--anchor-asset: %w", err)
		}
		anchorAsset = a
	}

	ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = ledger.Close() }()

	records, err := ledger.List()
	if err != nil {
		return err
	}

	reconciled := engine.ReconcileAt(planned, records, anchorMonth, anchorAsset)

	return emitReport(&domain.Report{Summary: summary, Reconciled: reconciled})
}
