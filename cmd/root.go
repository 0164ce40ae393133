package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/weijiayao/finance-tracker/internal/calculation"
	"github.com/weijiayao/finance-tracker/internal/domain"
	"github.com/weijiayao/finance-tracker/internal/output"
	"github.com/weijiayao/finance-tracker/internal/store"
)

var (
	flagSettings string
	flagDB       string
	flagFormat   string
	flagOutput   string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "finance-tracker",
	Short: "Plan and track personal net worth against a savings goal",
	Long: "finance-tracker solves the monthly contribution needed to reach a target\n" +
		"asset value, projects the planned asset growth month by month, and\n" +
		"reconciles recorded income and expenses against the plan.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	homeDir, _ := os.UserHomeDir()
	defaultDB := filepath.Join(homeDir, ".finance-tracker", "ledger.db")

	rootCmd.PersistentFlags().StringVarP(&flagSettings, "settings", "s", "settings.yaml", "Plan settings file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", defaultDB, "Monthly record ledger database")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console", "Output format (console, csv, json)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Output file; empty writes to stdout, 'auto' picks a timestamped name")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log engine details to stderr")
}

// newEngine builds the calculation engine, wiring the verbose logger when
// requested.
func newEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	if flagVerbose {
		engine.SetLogger(calculation.WriterLogger{W: os.Stderr})
	}
	return engine
}

// openLedger opens the record store at --db.
func openLedger() (*store.Ledger, error) {
	ledger, err := store.Open(flagDB)
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", flagDB, err)
	}
	return ledger, nil
}

// emitReport formats the report per --format and writes it per --output.
func emitReport(report *domain.Report) error {
	formatter := output.GetFormatterByName(flagFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %v)", flagFormat, output.AvailableFormatterNames())
	}

	switch flagOutput {
	case "":
		data, err := formatter.Format(report)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	case "auto":
		filename, err := output.WriteFormatted(formatter, report)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", filename)
		return nil
	default:
		data, err := formatter.Format(report)
		if err != nil {
			return err
		}
		return os.WriteFile(flagOutput, data, 0o644)
	}
}
