package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvalidInputError reports malformed or logically inconsistent plan
// parameters. It is always raised before any computation produces output.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// NewInvalidInputError builds an InvalidInputError from a format string.
func NewInvalidInputError(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// InfeasiblePlanError reports that the required monthly contribution exceeds
// the stated income for at least one simulated month. The caller receives no
// partial projection.
type InfeasiblePlanError struct {
	Month        time.Time
	Income       decimal.Decimal
	Contribution decimal.Decimal
}

func (e *InfeasiblePlanError) Error() string {
	return fmt.Sprintf("infeasible plan: contribution %s exceeds income %s in %s",
		e.Contribution.StringFixed(2), e.Income.StringFixed(2), e.Month.Format("2006-01"))
}
