package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/weijiayao/finance-tracker/internal/domain"
	"github.com/weijiayao/finance-tracker/pkg/dateutil"
)

// ProjectionParams are the inputs to GeneratePlanProjection. MonthlyIncome
// nil disables income tracking; the escalation rate is ignored without it.
type ProjectionParams struct {
	InitialAsset                    decimal.Decimal
	InitialMonth                    time.Time
	MonthlyContribution             decimal.Decimal
	TargetMonth                     time.Time
	AnnualReturnRatePercent         decimal.Decimal
	MonthlyIncome                   *decimal.Decimal
	AnnualIncomeIncreaseRatePercent decimal.Decimal
}

// GeneratePlanProjection simulates the planned asset evolution one calendar
// month at a time, from the month after InitialMonth through TargetMonth
// inclusive. Each month the balance compounds at the effective monthly rate,
// then the contribution lands at month end. When income tracking is enabled
// the income escalates once per crossing into a new calendar year (January),
// and a contribution larger than that month's income fails the whole call
// with InfeasiblePlanError; no partial rows are returned.
func GeneratePlanProjection(p ProjectionParams) ([]domain.ProjectionRow, error) {
	months := dateutil.MonthsBetween(p.InitialMonth, p.TargetMonth)
	if months <= 0 {
		return nil, domain.NewInvalidInputError("target month %s must be after initial month %s",
			dateutil.FormatMonth(p.TargetMonth), dateutil.FormatMonth(p.InitialMonth))
	}
	if p.MonthlyContribution.IsNegative() {
		return nil, domain.NewInvalidInputError("monthly contribution must not be negative, got %s",
			p.MonthlyContribution.StringFixed(2))
	}
	if p.AnnualReturnRatePercent.IsNegative() {
		return nil, domain.NewInvalidInputError("annual return rate must not be negative, got %s%%",
			p.AnnualReturnRatePercent)
	}

	one := decimal.NewFromInt(1)
	growth := one.Add(EffectiveMonthlyRate(p.AnnualReturnRatePercent))

	tracking := p.MonthlyIncome != nil
	var income decimal.Decimal
	if tracking {
		income = *p.MonthlyIncome
	}
	escalation := one.Add(p.AnnualIncomeIncreaseRatePercent.Div(decimal.NewFromInt(100)))
	incomeYear := dateutil.MonthOf(p.InitialMonth).Year()

	asset := p.InitialAsset
	cumulative := decimal.Zero
	rows := make([]domain.ProjectionRow, 0, months)

	for i := 1; i <= months; i++ {
		month := dateutil.AddMonths(p.InitialMonth, i)

		// At most one escalation per calendar-year boundary.
		if tracking && dateutil.IsJanuary(month) && month.Year() > incomeYear {
			income = income.Mul(escalation)
			incomeYear = month.Year()
		}

		// Balance grows first, then the contribution lands.
		asset = asset.Mul(growth).Add(p.MonthlyContribution)
		cumulative = cumulative.Add(p.MonthlyContribution)

		row := domain.ProjectionRow{
			Month:                  month,
			PlannedTotalAsset:      asset,
			CumulativeContribution: cumulative,
		}

		if tracking {
			budget := income.Sub(p.MonthlyContribution)
			if budget.IsNegative() {
				return nil, &domain.InfeasiblePlanError{
					Month:        month,
					Income:       income,
					Contribution: p.MonthlyContribution,
				}
			}
			rowIncome := income
			row.PlannedIncome = &rowIncome
			row.PlannedExpenseBudget = &budget
		}

		rows = append(rows, row)
	}

	return rows, nil
}
