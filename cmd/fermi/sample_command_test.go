package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"fermi/internal/statepoint"
)

func TestSampleRecordsRunAndPrintsSummary(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "results")
	path := writeSettingsFile(t, "[output]\npath = "+quoteTOML(outputDir)+"\n")

	out, _, err := runCLI(t, []string{"sample", "--particles", "500", "--seed", "7"}, path)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	requireContains(t, out, "Sampled 500 particles from 1 source(s)")
	requireContains(t, out, "showing 10 of 500")
	requireContains(t, out, "Recorded run ")

	store, err := statepoint.Open(outputDir)
	if err != nil {
		t.Fatalf("open run database: %v", err)
	}
	defer store.Close()

	run, err := store.LatestRun(context.Background())
	if err != nil {
		t.Fatalf("LatestRun: %v", err)
	}
	if run.Seed != 7 || run.SourceCount != 1 {
		t.Fatalf("unexpected run record: %+v", run)
	}
	if run.RunID == "" {
		t.Fatal("expected a run identifier")
	}
	requireContains(t, out, run.RunID)
}

func TestSampleNoRecordSkipsDatabase(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "results")
	path := writeSettingsFile(t, "[output]\npath = "+quoteTOML(outputDir)+"\n")

	if _, _, err := runCLI(t, []string{"sample", "-n", "50", "--no-record"}, path); err != nil {
		t.Fatalf("sample --no-record: %v", err)
	}

	store, err := statepoint.Open(outputDir)
	if err != nil {
		t.Fatalf("open run database: %v", err)
	}
	defer store.Close()
	if _, err := store.LatestRun(context.Background()); !errors.Is(err, statepoint.ErrNoRuns) {
		t.Fatalf("expected no recorded runs, got %v", err)
	}
}

func TestSampleRejectsNonPositiveParticleCount(t *testing.T) {
	path := writeSettingsFile(t, "")

	_, _, err := runCLI(t, []string{"sample", "--particles", "0", "--no-record"}, path)
	if err == nil {
		t.Fatal("expected error for zero particles")
	}
	requireContains(t, err.Error(), "--particles must be at least 1")
}

func quoteTOML(value string) string {
	return `"` + value + `"`
}
