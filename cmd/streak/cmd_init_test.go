package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OjusWiZard/streak/internal/config"
	"github.com/OjusWiZard/streak/internal/testutil"
)

func TestRunInit_defaults(t *testing.T) {
	work := testutil.InitRepo(t)

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--repo", work, "init", "--defaults"})
	if err := root.Execute(); err != nil {
		t.Fatalf("init --defaults failed: %v", err)
	}

	cfg, err := config.Load(filepath.Join(work, "streak.yaml"))
	if err != nil {
		t.Fatalf("loading written config: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("version = %d, want 1", cfg.Version)
	}
	if cfg.Message.Source != config.SourceFixed {
		t.Errorf("message source = %q, want %q", cfg.Message.Source, config.SourceFixed)
	}
	if !strings.Contains(buf.String(), "Config written to") {
		t.Errorf("output missing confirmation:\n%s", buf.String())
	}
}

func TestRunInit_fromFlags(t *testing.T) {
	work := testutil.InitRepo(t)

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--repo", work, "init",
		"--message-source", "remote", "--message-url", "https://example.com/line.txt",
		"--fallback", "fixed", "--message", "backup plan",
		"--remote", "upstream", "--hits", "2"})
	if err := root.Execute(); err != nil {
		t.Fatalf("init from flags failed: %v", err)
	}

	cfg, err := config.Load(filepath.Join(work, "streak.yaml"))
	if err != nil {
		t.Fatalf("loading written config: %v", err)
	}
	if cfg.Message.Source != config.SourceRemote {
		t.Errorf("message source = %q, want %q", cfg.Message.Source, config.SourceRemote)
	}
	if cfg.Message.URL != "https://example.com/line.txt" {
		t.Errorf("message url = %q, unexpected", cfg.Message.URL)
	}
	if cfg.Message.Fallback != config.FallbackFixed {
		t.Errorf("fallback = %q, want %q", cfg.Message.Fallback, config.FallbackFixed)
	}
	if cfg.Push.Remote != "upstream" {
		t.Errorf("push remote = %q, want %q", cfg.Push.Remote, "upstream")
	}
	if cfg.Hits.Mode != config.ModeFixed || cfg.Hits.Count != 2 {
		t.Errorf("hits = %+v, want fixed count 2", cfg.Hits)
	}
}

func TestRunInit_invalidFlags(t *testing.T) {
	work := testutil.InitRepo(t)

	// Remote source without a URL fails validation before anything is written.
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--repo", work, "init", "--message-source", "remote"})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected validation error for remote source without URL")
	}
	if !strings.Contains(err.Error(), "message.url") {
		t.Errorf("err = %v, want mention of message.url", err)
	}
	if _, statErr := os.Stat(filepath.Join(work, "streak.yaml")); !os.IsNotExist(statErr) {
		t.Errorf("config should not be written on validation failure, stat err = %v", statErr)
	}
}

func TestRunInit_alreadyExists(t *testing.T) {
	work := testutil.InitRepo(t)
	if err := os.WriteFile(filepath.Join(work, "streak.yaml"), []byte("version: 1\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--repo", work, "init", "--defaults"})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error when config already exists")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("err = %v, want mention of existing config", err)
	}
}

func TestRunInit_force(t *testing.T) {
	work := testutil.InitRepo(t)
	if err := os.WriteFile(filepath.Join(work, "streak.yaml"), []byte("not: valid: yaml\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--repo", work, "init", "--defaults", "--force"})
	if err := root.Execute(); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}

	if _, err := config.Load(filepath.Join(work, "streak.yaml")); err != nil {
		t.Errorf("config not replaced with --force: %v", err)
	}
}

func TestRunInit_notARepository(t *testing.T) {
	dir := t.TempDir()

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--repo", dir, "init", "--defaults"})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error outside a git repository")
	}
	if !strings.Contains(err.Error(), "not a git repository") {
		t.Errorf("err = %v, want mention of missing repository", err)
	}
}

func TestRunInit_gitMissing(t *testing.T) {
	work := testutil.InitRepo(t)
	t.Setenv("PATH", t.TempDir())

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--repo", work, "init", "--defaults"})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error when git is not on PATH")
	}
	if !strings.Contains(err.Error(), "git is not installed") {
		t.Errorf("err = %v, want mention of missing git", err)
	}
	if _, statErr := os.Stat(filepath.Join(work, "streak.yaml")); !os.IsNotExist(statErr) {
		t.Errorf("config should not be written without git, stat err = %v", statErr)
	}
}
