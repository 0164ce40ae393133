package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/weijiayao/finance-tracker/internal/calculation"
	"github.com/weijiayao/finance-tracker/internal/domain"
	"github.com/weijiayao/finance-tracker/pkg/dateutil"
)

// SettingsParser handles parsing of plan settings files.
type SettingsParser struct{}

// NewSettingsParser creates a new settings parser.
func NewSettingsParser() *SettingsParser {
	return &SettingsParser{}
}

// fileSettings is the YAML schema of a settings file. Months are "YYYY-MM"
// strings; amounts and rates are plain numbers.
type fileSettings struct {
	InitialAsset                    decimal.Decimal  `yaml:"initial_asset"`
	InitialMonth                    string           `yaml:"initial_month"`
	TargetAsset                     decimal.Decimal  `yaml:"target_asset"`
	TargetMonth                     string           `yaml:"target_month"`
	AnnualReturnRatePercent         decimal.Decimal  `yaml:"annual_return_rate_percent"`
	MonthlyIncome                   *decimal.Decimal `yaml:"monthly_income"`
	AnnualIncomeIncreaseRatePercent decimal.Decimal  `yaml:"annual_income_increase_rate_percent"`
}

// LoadFromFile loads and validates plan settings from a YAML file.
func (sp *SettingsParser) LoadFromFile(filename string) (*domain.PlanSettings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	settings, err := sp.convert(fs)
	if err != nil {
		return nil, err
	}

	if err := calculation.ValidateSettings(*settings); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	return settings, nil
}

func (sp *SettingsParser) convert(fs fileSettings) (*domain.PlanSettings, error) {
	if fs.InitialMonth == "" {
		return nil, fmt.Errorf("initial_month is required")
	}
	initialMonth, err := dateutil.ParseMonth(fs.InitialMonth)
	if err != nil {
		return nil, fmt.Errorf("initial_month must be YYYY-MM: %w", err)
	}

	if fs.TargetMonth == "" {
		return nil, fmt.Errorf("target_month is required")
	}
	targetMonth, err := dateutil.ParseMonth(fs.TargetMonth)
	if err != nil {
		return nil, fmt.Errorf("target_month must be YYYY-MM: %w", err)
	}

	return &domain.PlanSettings{
		InitialAsset:                    fs.InitialAsset,
		InitialMonth:                    initialMonth,
		TargetAsset:                     fs.TargetAsset,
		TargetMonth:                     targetMonth,
		AnnualReturnRatePercent:         fs.AnnualReturnRatePercent,
		MonthlyIncome:                   fs.MonthlyIncome,
		AnnualIncomeIncreaseRatePercent: fs.AnnualIncomeIncreaseRatePercent,
	}, nil
}

// CreateExampleSettings returns example plan settings: a 3,000 starting
// asset in December 2025 growing to 50,000 by December 2028 at 8% with a
// 10,000 monthly income escalating 5% a year.
func CreateExampleSettings() domain.PlanSettings {
	income := decimal.NewFromInt(10000)
	return domain.PlanSettings{
		InitialAsset:                    decimal.NewFromInt(3000),
		InitialMonth:                    time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		TargetAsset:                     decimal.NewFromInt(50000),
		TargetMonth:                     time.Date(2028, 12, 1, 0, 0, 0, 0, time.UTC),
		AnnualReturnRatePercent:         decimal.NewFromInt(8),
		MonthlyIncome:                   &income,
		AnnualIncomeIncreaseRatePercent: decimal.NewFromInt(5),
	}
}

const exampleYAML = `# Plan settings for the finance tracker.
#
# Months are calendar months in YYYY-MM form; amounts are unit currency;
# rates are percentages (8.0 means 8%).

initial_asset: 3000
initial_month: "2025-12"
target_asset: 50000
target_month: "2028-12"
annual_return_rate_percent: 8.0

# Optional: enables planned income and expense-budget columns. Remove both
# keys to project assets only.
monthly_income: 10000
annual_income_increase_rate_percent: 5.0
`

// WriteExampleSettings writes a commented example settings file. It refuses
// to overwrite an existing file.
func WriteExampleSettings(filename string) error {
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("%s already exists", filename)
	}
	if err := os.WriteFile(filename, []byte(exampleYAML), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
