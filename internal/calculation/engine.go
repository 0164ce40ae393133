package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/weijiayao/finance-tracker/internal/domain"
	"github.com/weijiayao/finance-tracker/pkg/dateutil"
)

// Engine ties the annuity solver, the projection generator and the
// reconciler together behind PlanSettings. It holds no state beyond a
// logger; every call is a pure function of its arguments.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// BuildPlan validates the settings, solves for the required monthly
// contribution and generates the full planned timeline. It returns the plan
// summary alongside the rows; on any error neither is produced.
func (e *Engine) BuildPlan(settings domain.PlanSettings) (*domain.PlanSummary, []domain.ProjectionRow, error) {
	if err := ValidateSettings(settings); err != nil {
		return nil, nil, err
	}

	months := dateutil.MonthsBetween(settings.InitialMonth, settings.TargetMonth)

	contribution, err := RequiredMonthlyContribution(
		settings.InitialAsset, settings.TargetAsset, months, settings.AnnualReturnRatePercent)
	if err != nil {
		return nil, nil, err
	}
	e.Logger.Debugf("solved contribution %s over %d months at %s%%",
		contribution.StringFixed(2), months, settings.AnnualReturnRatePercent)

	rows, err := GeneratePlanProjection(ProjectionParams{
		InitialAsset:                    settings.InitialAsset,
		InitialMonth:                    settings.InitialMonth,
		MonthlyContribution:             contribution,
		TargetMonth:                     settings.TargetMonth,
		AnnualReturnRatePercent:         settings.AnnualReturnRatePercent,
		MonthlyIncome:                   settings.MonthlyIncome,
		AnnualIncomeIncreaseRatePercent: settings.AnnualIncomeIncreaseRatePercent,
	})
	if err != nil {
		return nil, nil, err
	}

	summary := &domain.PlanSummary{
		Settings:            settings,
		HorizonMonths:       months,
		MonthlyContribution: contribution,
		FinalPlannedAsset:   rows[len(rows)-1].PlannedTotalAsset,
	}
	if settings.IncomeTrackingEnabled() {
		budget := SuggestedExpenseBudget(*settings.MonthlyIncome, contribution)
		summary.SuggestedExpenseBudget = &budget
	}

	return summary, rows, nil
}

// ReconcilePlan merges recorded activity onto a planned timeline using the
// settings' initial month and asset as the anchor.
func (e *Engine) ReconcilePlan(planned []domain.ProjectionRow, actual []domain.MonthlyRecord, settings domain.PlanSettings) []domain.ReconciledRow {
	return e.ReconcileAt(planned, actual, settings.InitialMonth, settings.InitialAsset)
}

// ReconcileAt merges recorded activity onto a planned timeline with an
// explicit anchor, for callers that track the initial-asset configuration
// separately from a generated plan.
func (e *Engine) ReconcileAt(planned []domain.ProjectionRow, actual []domain.MonthlyRecord, anchorMonth time.Time, anchorInitialAsset decimal.Decimal) []domain.ReconciledRow {
	rows := Reconcile(planned, actual, anchorMonth, anchorInitialAsset)
	e.Logger.Debugf("reconciled %d planned rows with %d records into %d rows",
		len(planned), len(actual), len(rows))
	return rows
}

// ValidateSettings checks the PlanSettings invariants: the target month must
// be at least one full month after the initial month, the target asset must
// exceed the initial asset, and the rates must not be negative.
func ValidateSettings(settings domain.PlanSettings) error {
	if settings.InitialMonth.IsZero() {
		return domain.NewInvalidInputError("initial month is required")
	}
	if settings.TargetMonth.IsZero() {
		return domain.NewInvalidInputError("target month is required")
	}
	if dateutil.MonthsBetween(settings.InitialMonth, settings.TargetMonth) < 1 {
		return domain.NewInvalidInputError("target month %s must be after initial month %s",
			dateutil.FormatMonth(settings.TargetMonth), dateutil.FormatMonth(settings.InitialMonth))
	}
	if settings.InitialAsset.GreaterThanOrEqual(settings.TargetAsset) {
		return domain.NewInvalidInputError("target asset %s must exceed initial asset %s",
			settings.TargetAsset.StringFixed(2), settings.InitialAsset.StringFixed(2))
	}
	if settings.AnnualReturnRatePercent.IsNegative() {
		return domain.NewInvalidInputError("annual return rate must not be negative, got %s%%",
			settings.AnnualReturnRatePercent)
	}
	if settings.MonthlyIncome != nil && settings.MonthlyIncome.IsNegative() {
		return domain.NewInvalidInputError("monthly income must not be negative, got %s",
			settings.MonthlyIncome.StringFixed(2))
	}
	return nil
}
