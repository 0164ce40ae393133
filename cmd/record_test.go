package cmd

import (
	"testing"
	"time"

	"github.com/weijiayao/finance-tracker/pkg/dateutil"
)

func TestRecordMonthDefaultsToCurrentMonth(t *testing.T) {
	flag := recordCmd.Flags().Lookup("month")
	if flag == nil {
		t.Fatal("record has no --month flag")
	}

	want := dateutil.FormatMonth(time.Now())
	if flag.DefValue != want {
		t.Fatalf("record --month default = %q, want current month %q", flag.DefValue, want)
	}
	if flagRecordMonth != want {
		t.Fatalf("record month variable = %q, want current month %q", flagRecordMonth, want)
	}
}

func TestRecordDeleteMonthIsIndependent(t *testing.T) {
	flag := recordDeleteCmd.Flags().Lookup("month")
	if flag == nil {
		t.Fatal("record delete has no --month flag")
	}
	if flag.DefValue != "" {
		t.Fatalf("record delete --month default = %q, want empty", flag.DefValue)
	}

	// Registering the delete flag must not clobber the record command's
	// month, and setting one must not leak into the other.
	before := flagRecordMonth
	if before == "" {
		t.Fatal("record month variable lost its default")
	}
	if err := recordDeleteCmd.Flags().Set("month", "2026-01"); err != nil {
		t.Fatalf("set delete month: %v", err)
	}
	if flagRecordDeleteMonth != "2026-01" {
		t.Fatalf("delete month variable = %q, want 2026-01", flagRecordDeleteMonth)
	}
	if flagRecordMonth != before {
		t.Fatalf("record month variable changed from %q to %q", before, flagRecordMonth)
	}
}
