package calculation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/weijiayao/finance-tracker/internal/domain"
	"github.com/weijiayao/finance-tracker/pkg/dateutil"
)

// Reconcile merges actually recorded monthly activity onto the planned month
// axis and computes the derived actual-side metrics, anchored at anchorMonth.
//
// The timeline is the union of planned and recorded months, sorted ascending:
// records falling outside the plan horizon get their own rows with the plan
// columns absent rather than being dropped. On plan months without a record
// the raw actual fields are zero, so saving for an unedited month is 0, not
// undefined. Rows strictly before the anchor month carry no derived values.
//
// Reconcile is pure: same inputs, same output, and neither input is mutated.
func Reconcile(planned []domain.ProjectionRow, actual []domain.MonthlyRecord, anchorMonth time.Time, anchorInitialAsset decimal.Decimal) []domain.ReconciledRow {
	if len(planned) == 0 && len(actual) == 0 {
		return []domain.ReconciledRow{}
	}

	recordsByMonth := make(map[time.Time]domain.MonthlyRecord, len(actual))
	for _, rec := range actual {
		recordsByMonth[dateutil.MonthOf(rec.Month)] = rec
	}
	plannedByMonth := make(map[time.Time]domain.ProjectionRow, len(planned))
	for _, row := range planned {
		plannedByMonth[dateutil.MonthOf(row.Month)] = row
	}

	months := make([]time.Time, 0, len(plannedByMonth)+len(recordsByMonth))
	for m := range plannedByMonth {
		months = append(months, m)
	}
	for m := range recordsByMonth {
		if _, ok := plannedByMonth[m]; !ok {
			months = append(months, m)
		}
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	rows := make([]domain.ReconciledRow, 0, len(months))
	for _, m := range months {
		row := domain.ReconciledRow{Month: m}

		if plan, ok := plannedByMonth[m]; ok {
			row.PlanTotalAsset = dec(plan.PlannedTotalAsset)
			row.PlanCumulativeContribution = dec(plan.CumulativeContribution)
			if plan.PlannedIncome != nil {
				row.PlanIncome = dec(*plan.PlannedIncome)
			}
			if plan.PlannedExpenseBudget != nil {
				row.PlanExpenseBudget = dec(*plan.PlannedExpenseBudget)
			}
		}

		if rec, ok := recordsByMonth[m]; ok {
			row.EarnedIncome = rec.EarnedIncome
			row.Expense = rec.Expense
			row.AssetAdjustment = rec.AssetAdjustment
			if rec.TotalAsset != nil {
				row.TotalAsset = *rec.TotalAsset
			}
		}

		rows = append(rows, row)
	}

	deriveActualMetrics(rows, dateutil.MonthOf(anchorMonth), anchorInitialAsset)
	return rows
}

// deriveActualMetrics fills the derived columns in place, starting at the
// first row whose month is at or after the anchor. Each value depends only on
// the current row and the previous derived row.
func deriveActualMetrics(rows []domain.ReconciledRow, anchor time.Time, anchorInitialAsset decimal.Decimal) {
	cumSaving := decimal.Zero
	cumTotalGain := decimal.Zero
	cumInvestmentGain := decimal.Zero
	prevTotalAsset := anchorInitialAsset

	for i := range rows {
		if rows[i].Month.Before(anchor) {
			continue
		}

		saving := rows[i].EarnedIncome.Sub(rows[i].Expense)
		cumSaving = cumSaving.Add(saving)

		totalGain := rows[i].TotalAsset.Sub(prevTotalAsset)
		prevTotalAsset = rows[i].TotalAsset
		cumTotalGain = cumTotalGain.Add(totalGain)

		investmentGain := totalGain.Sub(saving)
		cumInvestmentGain = cumInvestmentGain.Add(investmentGain)

		rows[i].Saving = dec(saving)
		rows[i].CumulativeSaving = dec(cumSaving)
		rows[i].TotalGain = dec(totalGain)
		rows[i].CumulativeTotalGain = dec(cumTotalGain)
		rows[i].InvestmentGain = dec(investmentGain)
		rows[i].CumulativeInvestmentGain = dec(cumInvestmentGain)
	}
}

func dec(d decimal.Decimal) *decimal.Decimal { return &d }
