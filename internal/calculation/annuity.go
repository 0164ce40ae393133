package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/weijiayao/finance-tracker/internal/domain"
)

// RequiredMonthlyContribution solves for the constant end-of-month
// contribution C that grows initialAsset to targetAsset over the given number
// of months at the given annual return rate:
//
//	target = initial*(1+r)^n + C * ((1+r)^n - 1) / r
//
// where r is the effective monthly rate. The balance compounds before each
// contribution lands. With a zero rate the formula degenerates to a linear
// split of the gap.
func RequiredMonthlyContribution(initialAsset, targetAsset decimal.Decimal, months int, annualRatePercent decimal.Decimal) (decimal.Decimal, error) {
	if months <= 0 {
		return decimal.Zero, domain.NewInvalidInputError("horizon must be at least one month, got %d", months)
	}
	if annualRatePercent.IsNegative() {
		return decimal.Zero, domain.NewInvalidInputError("annual return rate must not be negative, got %s%%", annualRatePercent)
	}
	if initialAsset.GreaterThanOrEqual(targetAsset) {
		return decimal.Zero, domain.NewInvalidInputError("target asset %s must exceed initial asset %s",
			targetAsset.StringFixed(2), initialAsset.StringFixed(2))
	}

	monthlyRate := EffectiveMonthlyRate(annualRatePercent)
	if monthlyRate.IsZero() {
		return targetAsset.Sub(initialAsset).Div(decimal.NewFromInt(int64(months))), nil
	}

	one := decimal.NewFromInt(1)
	growthFactor := one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(months)))
	annuityFactor := growthFactor.Sub(one).Div(monthlyRate)

	contribution := targetAsset.Sub(initialAsset.Mul(growthFactor)).Div(annuityFactor)

	// The preconditions make a negative solution impossible, but floor it
	// anyway rather than return a payment the caller would have to negate.
	if contribution.IsNegative() {
		return decimal.Zero, nil
	}
	return contribution, nil
}

// SuggestedExpenseBudget is what remains of the monthly income after the
// contribution, clamped at zero when the income cannot cover it. Advisory
// only: the projection generator rejects infeasible plans outright.
func SuggestedExpenseBudget(monthlyIncome, contribution decimal.Decimal) decimal.Decimal {
	budget := monthlyIncome.Sub(contribution)
	if budget.IsNegative() {
		return decimal.Zero
	}
	return budget
}
