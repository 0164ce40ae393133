package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weijiayao/finance-tracker/internal/calculation"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeSettingsFile(t, `
initial_asset: 3000
initial_month: "2025-12"
target_asset: 50000
target_month: "2028-12"
annual_return_rate_percent: 8.0
monthly_income: 10000
annual_income_increase_rate_percent: 5.0
`)

	settings, err := NewSettingsParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, settings.InitialAsset.Equal(decimal.NewFromInt(3000)))
	assert.True(t, settings.TargetAsset.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, "2025-12", settings.InitialMonth.Format("2006-01"))
	assert.Equal(t, "2028-12", settings.TargetMonth.Format("2006-01"))
	assert.True(t, settings.AnnualReturnRatePercent.Equal(decimal.NewFromInt(8)))
	require.NotNil(t, settings.MonthlyIncome)
	assert.True(t, settings.MonthlyIncome.Equal(decimal.NewFromInt(10000)))
	assert.True(t, settings.AnnualIncomeIncreaseRatePercent.Equal(decimal.NewFromInt(5)))
}

func TestLoadFromFile_IncomeOptional(t *testing.T) {
	path := writeSettingsFile(t, `
initial_asset: 1000
initial_month: "2026-01"
target_asset: 20000
target_month: "2027-01"
annual_return_rate_percent: 3.0
`)

	settings, err := NewSettingsParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Nil(t, settings.MonthlyIncome)
	assert.False(t, settings.IncomeTrackingEnabled())
}

func TestLoadFromFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errLike string
	}{
		{
			name: "bad month format",
			content: `
initial_asset: 1000
initial_month: "Dec 2025"
target_asset: 20000
target_month: "2027-01"
annual_return_rate_percent: 3.0
`,
			errLike: "initial_month",
		},
		{
			name: "missing target month",
			content: `
initial_asset: 1000
initial_month: "2026-01"
target_asset: 20000
annual_return_rate_percent: 3.0
`,
			errLike: "target_month",
		},
		{
			name: "target not after initial",
			content: `
initial_asset: 1000
initial_month: "2026-01"
target_asset: 20000
target_month: "2026-01"
annual_return_rate_percent: 3.0
`,
			errLike: "validation failed",
		},
		{
			name: "target asset below initial",
			content: `
initial_asset: 50000
initial_month: "2026-01"
target_asset: 20000
target_month: "2027-01"
annual_return_rate_percent: 3.0
`,
			errLike: "validation failed",
		},
		{
			name:    "not yaml",
			content: "{{{",
			errLike: "parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettingsFile(t, tt.content)
			_, err := NewSettingsParser().LoadFromFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errLike)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := NewSettingsParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestWriteExampleSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, WriteExampleSettings(path))

	settings, err := NewSettingsParser().LoadFromFile(path)
	require.NoError(t, err)

	example := CreateExampleSettings()
	assert.True(t, settings.InitialAsset.Equal(example.InitialAsset))
	assert.Equal(t, example.InitialMonth, settings.InitialMonth)
	assert.True(t, settings.TargetAsset.Equal(example.TargetAsset))
	assert.Equal(t, example.TargetMonth, settings.TargetMonth)

	// Never clobber an existing file.
	assert.Error(t, WriteExampleSettings(path))
}

func TestExampleSettingsAreValid(t *testing.T) {
	assert.NoError(t, calculation.ValidateSettings(CreateExampleSettings()))
}
