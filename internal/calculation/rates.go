package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// EffectiveMonthlyRate converts an annual return rate in percent (8.0 means
// 8%) to the equivalent monthly compounding rate via the 12th-root identity
// (1+annual)^(1/12) - 1. This reflects true compounding; dividing the nominal
// annual rate by 12 would overstate the monthly rate.
func EffectiveMonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	if annualRatePercent.IsZero() {
		return decimal.Zero
	}
	annual := annualRatePercent.InexactFloat64() / 100.0
	monthly := math.Pow(1.0+annual, 1.0/12.0) - 1.0
	return decimal.NewFromFloat(monthly)
}
