package output

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/weijiayao/finance-tracker/internal/domain"
	"github.com/weijiayao/finance-tracker/pkg/dateutil"
	"github.com/weijiayao/finance-tracker/pkg/money"
)

// absent marks a value a row does not carry (plan columns outside the plan
// horizon, derived columns before the anchor month).
const absent = "-"

// ConsoleFormatter renders the report as styled text tables.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}

	if report.Summary != nil {
		c.writeSummary(buf, report.Summary)
	}
	if len(report.Projection) > 0 {
		c.writeProjection(buf, report.Projection)
	}
	if len(report.Reconciled) > 0 {
		c.writeReconciled(buf, report.Reconciled)
	}
	if buf.Len() == 0 {
		buf.WriteString("nothing to report\n")
	}

	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writeSummary(buf *bytes.Buffer, s *domain.PlanSummary) {
	buf.WriteString(titleStyle.Render("Plan Summary"))
	buf.WriteString("\n")

	fmt.Fprintf(buf, "  %-28s %s\n", "Initial asset:", money.Format(s.Settings.InitialAsset))
	fmt.Fprintf(buf, "  %-28s %s\n", "Initial month:", dateutil.FormatMonth(s.Settings.InitialMonth))
	fmt.Fprintf(buf, "  %-28s %s\n", "Target asset:", money.Format(s.Settings.TargetAsset))
	fmt.Fprintf(buf, "  %-28s %s\n", "Target month:", dateutil.FormatMonth(s.Settings.TargetMonth))
	fmt.Fprintf(buf, "  %-28s %s%%\n", "Annual return rate:", s.Settings.AnnualReturnRatePercent)
	fmt.Fprintf(buf, "  %-28s %d\n", "Horizon (months):", s.HorizonMonths)
	fmt.Fprintf(buf, "  %-28s %s\n", "Monthly contribution:", money.Format(money.Round(s.MonthlyContribution)))
	if s.SuggestedExpenseBudget != nil {
		fmt.Fprintf(buf, "  %-28s %s\n", "Suggested expense budget:", money.Format(money.Round(*s.SuggestedExpenseBudget)))
	}
	fmt.Fprintf(buf, "  %-28s %s\n", "Final planned asset:", money.Format(money.Round(s.FinalPlannedAsset)))
	buf.WriteString("\n")
}

func (c ConsoleFormatter) writeProjection(buf *bytes.Buffer, rows []domain.ProjectionRow) {
	withIncome := rows[0].PlannedIncome != nil

	headers := []string{"Month", "Planned Asset", "Cum. Contribution"}
	if withIncome {
		headers = append(headers, "Planned Income", "Expense Budget")
	}

	table := Table{Title: "Planned Timeline", Headers: headers}
	for _, row := range rows {
		cells := []string{
			dateutil.FormatMonth(row.Month),
			money.Format(money.Round(row.PlannedTotalAsset)),
			money.Format(money.Round(row.CumulativeContribution)),
		}
		if withIncome {
			cells = append(cells, fmtOptional(row.PlannedIncome), fmtOptional(row.PlannedExpenseBudget))
		}
		table.Rows = append(table.Rows, cells)
	}

	buf.WriteString(table.Render())
	buf.WriteString("\n")
}

func (c ConsoleFormatter) writeReconciled(buf *bytes.Buffer, rows []domain.ReconciledRow) {
	table := Table{
		Title: "Reconciled Timeline",
		Headers: []string{
			"Month", "Plan Asset", "Income", "Expense", "Total Asset",
			"Saving", "Cum. Saving", "Total Gain", "Invest. Gain",
		},
	}

	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			dateutil.FormatMonth(row.Month),
			fmtOptional(row.PlanTotalAsset),
			money.Format(row.EarnedIncome),
			money.Format(row.Expense),
			money.Format(row.TotalAsset),
			fmtOptional(row.Saving),
			fmtOptional(row.CumulativeSaving),
			fmtOptionalSigned(row.TotalGain),
			fmtOptionalSigned(row.InvestmentGain),
		})
	}

	buf.WriteString(table.Render())
	buf.WriteString("\n")
}

func fmtOptional(d *decimal.Decimal) string {
	if d == nil {
		return absent
	}
	return money.Format(money.Round(*d))
}

func fmtOptionalSigned(d *decimal.Decimal) string {
	if d == nil {
		return absent
	}
	return money.FormatSigned(money.Round(*d))
}
