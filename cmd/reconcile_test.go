package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setReconcileFlags points the package flag variables at temp paths and
// restores them when the test finishes.
func setReconcileFlags(t *testing.T, settings, db, output, anchorMonth, anchorAsset string) {
	t.Helper()

	prevSettings, prevDB := flagSettings, flagDB
	prevFormat, prevOutput := flagFormat, flagOutput
	prevMonth, prevAsset := flagAnchorMonth, flagAnchorAsset
	t.Cleanup(func() {
		flagSettings, flagDB = prevSettings, prevDB
		flagFormat, flagOutput = prevFormat, prevOutput
		flagAnchorMonth, flagAnchorAsset = prevMonth, prevAsset
	})

	flagSettings = settings
	flagDB = db
	flagFormat = "json"
	flagOutput = output
	flagAnchorMonth = anchorMonth
	flagAnchorAsset = anchorAsset
}

func TestReconcileAnchorFlagsOverrideBrokenSettings(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(settingsPath, []byte("{{{ not yaml"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	outPath := filepath.Join(dir, "report.json")

	setReconcileFlags(t, settingsPath, filepath.Join(dir, "ledger.db"), outPath, "2025-12", "3000")

	if err := runReconcile(reconcileCmd, nil); err != nil {
		t.Fatalf("anchor flags should unblock a broken settings file, got %v", err)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("expected report file, err: %v", err)
	}
}

func TestReconcileMissingSettingsWithAnchorFlags(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "report.json")

	setReconcileFlags(t, filepath.Join(dir, "no-such.yaml"), filepath.Join(dir, "ledger.db"), outPath, "2025-12", "3000")

	if err := runReconcile(reconcileCmd, nil); err != nil {
		t.Fatalf("records-only reconcile: %v", err)
	}
}

func TestReconcileMissingSettingsWithoutAnchorFlags(t *testing.T) {
	dir := t.TempDir()

	setReconcileFlags(t, filepath.Join(dir, "no-such.yaml"), filepath.Join(dir, "ledger.db"), "", "", "")

	err := runReconcile(reconcileCmd, nil)
	if err == nil {
		t.Fatal("expected an error without settings or anchor flags")
	}
	if !strings.Contains(err.Error(), "--anchor-month") {
		t.Fatalf("error should point at the anchor flags, got %v", err)
	}
}
