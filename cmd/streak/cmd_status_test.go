package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/OjusWiZard/streak/internal/git"
)

func TestRunStatus_table(t *testing.T) {
	clone, _ := setupRepo(t)

	// Run once so there is something to report.
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--repo", clone, "run", "--hits", "1", "--message", "tick"})
	if err := root.Execute(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var buf bytes.Buffer
	root2 := newRootCmd()
	root2.SetOut(&buf)
	root2.SetArgs([]string{"--repo", clone, "status"})
	if err := root2.Execute(); err != nil {
		t.Fatalf("status failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Repository:", "Branch:", "Tracked entries:", "Streak:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunStatus_json(t *testing.T) {
	clone, _ := setupRepo(t)

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--repo", clone, "run", "--hits", "1", "--message", "tick"})
	if err := root.Execute(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var buf bytes.Buffer
	root2 := newRootCmd()
	root2.SetOut(&buf)
	root2.SetArgs([]string{"--repo", clone, "status", "--json"})
	if err := root2.Execute(); err != nil {
		t.Fatalf("status --json failed: %v", err)
	}

	var report statusReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if report.Entries != 1 {
		t.Errorf("entries = %d, want 1", report.Entries)
	}
	if report.Branch != "main" {
		t.Errorf("branch = %q, want %q", report.Branch, "main")
	}
	if report.Dirty {
		t.Error("repo should be clean after a pushed run")
	}
	if report.StreakDays != 1 {
		t.Errorf("streak days = %d, want 1", report.StreakDays)
	}
	if report.LastEntry == "" {
		t.Error("last entry should be set")
	}
}

func TestRunStatus_notARepository(t *testing.T) {
	dir := t.TempDir()

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--repo", dir, "status"})
	err := root.Execute()
	if !errors.Is(err, git.ErrNotRepository) {
		t.Fatalf("err = %v, want ErrNotRepository", err)
	}
}
