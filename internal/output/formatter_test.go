package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weijiayao/finance-tracker/internal/calculation"
	"github.com/weijiayao/finance-tracker/internal/domain"
)

func sampleReport(t *testing.T) *domain.Report {
	t.Helper()

	income := decimal.NewFromInt(10000)
	settings := domain.PlanSettings{
		InitialAsset:            decimal.NewFromInt(3000),
		InitialMonth:            time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		TargetAsset:             decimal.NewFromInt(50000),
		TargetMonth:             time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		AnnualReturnRatePercent: decimal.NewFromInt(8),
		MonthlyIncome:           &income,
	}

	engine := calculation.NewEngine()
	summary, rows, err := engine.BuildPlan(settings)
	require.NoError(t, err)

	total := decimal.NewFromInt(12000)
	actual := []domain.MonthlyRecord{
		{
			Month:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			EarnedIncome: decimal.NewFromInt(10000),
			Expense:      decimal.NewFromInt(2000),
			TotalAsset:   &total,
		},
	}

	return &domain.Report{
		Summary:    summary,
		Projection: rows,
		Reconciled: engine.ReconcilePlan(rows, actual, settings),
	}
}

func TestGetFormatterByName(t *testing.T) {
	assert.Equal(t, "console", GetFormatterByName("console").Name())
	assert.Equal(t, "console", GetFormatterByName("TEXT").Name())
	assert.Equal(t, "console", GetFormatterByName(" table ").Name())
	assert.Equal(t, "csv", GetFormatterByName("csv").Name())
	assert.Equal(t, "json", GetFormatterByName("json-pretty").Name())
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json"}, AvailableFormatterNames())
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleReport(t))
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Plan Summary")
	assert.Contains(t, text, "Planned Timeline")
	assert.Contains(t, text, "Reconciled Timeline")
	assert.Contains(t, text, "2026-01")
	assert.Contains(t, text, "Monthly contribution:")
}

func TestConsoleFormatter_EmptyReport(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(&domain.Report{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "nothing to report")
}

func TestCSVFormatter_PrefersReconciled(t *testing.T) {
	report := sampleReport(t)

	data, err := CSVFormatter{}.Format(report)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	require.NotEmpty(t, records)
	assert.Equal(t, "month", records[0][0])
	assert.Contains(t, records[0], "investment_gain")
	// header + one row per reconciled month
	assert.Len(t, records, len(report.Reconciled)+1)
}

func TestCSVFormatter_ProjectionOnly(t *testing.T) {
	report := sampleReport(t)
	report.Reconciled = nil

	data, err := CSVFormatter{}.Format(report)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	assert.Contains(t, records[0], "planned_total_asset")
	assert.Len(t, records, len(report.Projection)+1)
}

func TestJSONFormatter(t *testing.T) {
	report := sampleReport(t)

	data, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, decoded, "projection")
	assert.Contains(t, decoded, "reconciled")
}

func TestWriteFormatted_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	report := sampleReport(t)

	// Back-to-back writes land within the same second often enough that a
	// purely time-based name would collide.
	first, err := WriteFormatted(JSONFormatter{}, report)
	require.NoError(t, err)
	second, err := WriteFormatted(JSONFormatter{}, report)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	for _, name := range []string{first, second} {
		fi, err := os.Stat(name)
		require.NoError(t, err, name)
		assert.Greater(t, fi.Size(), int64(0), name)
	}
}
