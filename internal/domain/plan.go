package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanSettings holds the user-entered parameters a plan is generated from.
// It is a plain value: construct it, hand it to the engine, and build a new
// one whenever the plan is regenerated. The engine never mutates it.
type PlanSettings struct {
	InitialAsset decimal.Decimal `json:"initial_asset" yaml:"initial_asset"`
	InitialMonth time.Time       `json:"initial_month" yaml:"initial_month"`
	TargetAsset  decimal.Decimal `json:"target_asset" yaml:"target_asset"`
	TargetMonth  time.Time       `json:"target_month" yaml:"target_month"`

	// AnnualReturnRatePercent is the assumed average annual return,
	// expressed as a percentage (8.0 means 8%).
	AnnualReturnRatePercent decimal.Decimal `json:"annual_return_rate_percent" yaml:"annual_return_rate_percent"`

	// MonthlyIncome enables income tracking in the projection when set.
	MonthlyIncome *decimal.Decimal `json:"monthly_income,omitempty" yaml:"monthly_income,omitempty"`

	// AnnualIncomeIncreaseRatePercent escalates MonthlyIncome each January.
	// Ignored when MonthlyIncome is nil.
	AnnualIncomeIncreaseRatePercent decimal.Decimal `json:"annual_income_increase_rate_percent" yaml:"annual_income_increase_rate_percent"`
}

// IncomeTrackingEnabled reports whether the projection should carry planned
// income and expense-budget columns.
func (ps PlanSettings) IncomeTrackingEnabled() bool {
	return ps.MonthlyIncome != nil
}

// ProjectionRow is one month of the generated plan, from the month after the
// initial month through the target month inclusive.
type ProjectionRow struct {
	Month                  time.Time       `json:"month"`
	PlannedTotalAsset      decimal.Decimal `json:"planned_total_asset"`
	CumulativeContribution decimal.Decimal `json:"cumulative_contribution"`

	// PlannedIncome and PlannedExpenseBudget are only present when income
	// tracking is enabled in the settings.
	PlannedIncome        *decimal.Decimal `json:"planned_income,omitempty"`
	PlannedExpenseBudget *decimal.Decimal `json:"planned_expense_budget,omitempty"`
}

// MonthlyRecord is one month of actually recorded activity, supplied by the
// caller (typically loaded from the ledger store). The engine only reads it.
type MonthlyRecord struct {
	Month        time.Time       `json:"month"`
	EarnedIncome decimal.Decimal `json:"earned_income"`
	Expense      decimal.Decimal `json:"expense"`

	// AssetAdjustment captures manual corrections and transfers that the
	// income/expense flow does not explain.
	AssetAdjustment decimal.Decimal `json:"asset_adjustment"`

	// TotalAsset is the directly observed total asset value, when the user
	// recorded one.
	TotalAsset *decimal.Decimal `json:"total_asset,omitempty"`
}

// ReconciledRow is one month of the merged plan/actual timeline. Plan columns
// are nil on months outside the plan horizon; derived columns are nil on
// months before the anchor month.
type ReconciledRow struct {
	Month time.Time `json:"month"`

	// Plan side, copied from the matching ProjectionRow.
	PlanTotalAsset             *decimal.Decimal `json:"plan_total_asset,omitempty"`
	PlanCumulativeContribution *decimal.Decimal `json:"plan_cumulative_contribution,omitempty"`
	PlanIncome                 *decimal.Decimal `json:"plan_income,omitempty"`
	PlanExpenseBudget          *decimal.Decimal `json:"plan_expense_budget,omitempty"`

	// Actual side, zero-filled for months without a record so derived
	// values stay defined.
	EarnedIncome    decimal.Decimal `json:"earned_income"`
	Expense         decimal.Decimal `json:"expense"`
	AssetAdjustment decimal.Decimal `json:"asset_adjustment"`
	TotalAsset      decimal.Decimal `json:"total_asset"`

	// Derived actual-side metrics, anchored at the reconciliation anchor
	// month. Nil before the anchor.
	Saving                   *decimal.Decimal `json:"saving,omitempty"`
	CumulativeSaving         *decimal.Decimal `json:"cumulative_saving,omitempty"`
	TotalGain                *decimal.Decimal `json:"total_gain,omitempty"`
	CumulativeTotalGain      *decimal.Decimal `json:"cumulative_total_gain,omitempty"`
	InvestmentGain           *decimal.Decimal `json:"investment_gain,omitempty"`
	CumulativeInvestmentGain *decimal.Decimal `json:"cumulative_investment_gain,omitempty"`
}

// PlanSummary reports the headline numbers of a generated plan.
type PlanSummary struct {
	Settings            PlanSettings    `json:"settings"`
	HorizonMonths       int             `json:"horizon_months"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	FinalPlannedAsset   decimal.Decimal `json:"final_planned_asset"`

	// SuggestedExpenseBudget is income minus contribution, clamped at zero.
	// Only present when income tracking is enabled.
	SuggestedExpenseBudget *decimal.Decimal `json:"suggested_expense_budget,omitempty"`
}

// Report bundles everything the output formatters render.
type Report struct {
	Summary    *PlanSummary    `json:"summary,omitempty"`
	Projection []ProjectionRow `json:"projection,omitempty"`
	Reconciled []ReconciledRow `json:"reconciled,omitempty"`
}
