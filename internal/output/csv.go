package output

import (
	"bytes"
	"encoding/csv"

	"github.com/shopspring/decimal"

	"github.com/weijiayao/finance-tracker/internal/domain"
	"github.com/weijiayao/finance-tracker/pkg/dateutil"
)

// CSVFormatter exports the richest table in the report: the reconciled
// timeline when present, the planned timeline otherwise. Absent values are
// empty cells.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	var err error
	if len(report.Reconciled) > 0 {
		err = c.writeReconciled(w, report.Reconciled)
	} else {
		err = c.writeProjection(w, report.Projection)
	}
	if err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c CSVFormatter) writeProjection(w *csv.Writer, rows []domain.ProjectionRow) error {
	header := []string{"month", "planned_total_asset", "cumulative_contribution", "planned_income", "planned_expense_budget"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			dateutil.FormatMonth(row.Month),
			row.PlannedTotalAsset.StringFixed(2),
			row.CumulativeContribution.StringFixed(2),
			csvOptional(row.PlannedIncome),
			csvOptional(row.PlannedExpenseBudget),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func (c CSVFormatter) writeReconciled(w *csv.Writer, rows []domain.ReconciledRow) error {
	header := []string{
		"month",
		"plan_total_asset", "plan_cumulative_contribution", "plan_income", "plan_expense_budget",
		"earned_income", "expense", "asset_adjustment", "total_asset",
		"saving", "cumulative_saving",
		"total_gain", "cumulative_total_gain",
		"investment_gain", "cumulative_investment_gain",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			dateutil.FormatMonth(row.Month),
			csvOptional(row.PlanTotalAsset),
			csvOptional(row.PlanCumulativeContribution),
			csvOptional(row.PlanIncome),
			csvOptional(row.PlanExpenseBudget),
			row.EarnedIncome.StringFixed(2),
			row.Expense.StringFixed(2),
			row.AssetAdjustment.StringFixed(2),
			row.TotalAsset.StringFixed(2),
			csvOptional(row.Saving),
			csvOptional(row.CumulativeSaving),
			csvOptional(row.TotalGain),
			csvOptional(row.CumulativeTotalGain),
			csvOptional(row.InvestmentGain),
			csvOptional(row.CumulativeInvestmentGain),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func csvOptional(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
