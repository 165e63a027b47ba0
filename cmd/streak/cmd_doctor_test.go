package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OjusWiZard/streak/internal/testutil"
)

func TestRunDoctor_allChecksPass(t *testing.T) {
	clone, _ := setupRepo(t)

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--repo", clone, "doctor"})
	if err := root.Execute(); err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, buf.String())
	}

	out := buf.String()
	if !strings.Contains(out, "All checks passed.") {
		t.Errorf("output missing pass notice:\n%s", out)
	}
	if !strings.Contains(out, "none yet (created on first run)") {
		t.Errorf("output missing tracking file check:\n%s", out)
	}
}

func TestRunDoctor_trackingFileEntries(t *testing.T) {
	clone, _ := setupRepo(t)

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--repo", clone, "run", "--hits", "1", "--message", "tick"})
	if err := root.Execute(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var buf bytes.Buffer
	doctor := newRootCmd()
	doctor.SetOut(&buf)
	doctor.SetArgs([]string{"--repo", clone, "doctor"})
	if err := doctor.Execute(); err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, buf.String())
	}

	if !strings.Contains(buf.String(), "OK (1 entries)") {
		t.Errorf("output missing tracking entry count:\n%s", buf.String())
	}
}

func TestRunDoctor_notARepository(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--repo", dir, "doctor"})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected doctor to fail outside a git repository")
	}

	if !strings.Contains(buf.String(), "NOT A GIT REPOSITORY") {
		t.Errorf("output missing repository check failure:\n%s", buf.String())
	}
}

func TestRunDoctor_missingRemote(t *testing.T) {
	work := testutil.InitRepo(t)

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--repo", work, "doctor"})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected doctor to fail without a remote")
	}

	out := buf.String()
	if !strings.Contains(out, "MISSING") {
		t.Errorf("output missing remote check failure:\n%s", out)
	}
	if !strings.Contains(out, "git remote add origin") {
		t.Errorf("output missing remote hint:\n%s", out)
	}
}

func TestRunDoctor_remoteEndpoint(t *testing.T) {
	clone, _ := setupRepo(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "hello")
	}))
	defer srv.Close()

	cfgYAML := fmt.Sprintf(`version: 1
message:
  source: remote
  url: %s
`, srv.URL)
	if err := os.WriteFile(filepath.Join(clone, "streak.yaml"), []byte(cfgYAML), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--repo", clone, "doctor"})
	if err := root.Execute(); err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, buf.String())
	}

	if !strings.Contains(buf.String(), `OK ("hello")`) {
		t.Errorf("output missing endpoint check:\n%s", buf.String())
	}
}

func TestRunDoctor_deadEndpointWithFallback(t *testing.T) {
	clone, _ := setupRepo(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	deadURL := srv.URL
	srv.Close()

	cfgYAML := fmt.Sprintf(`version: 1
message:
  source: remote
  url: %s
  fallback: fixed
  fixed: backup plan
`, deadURL)
	if err := os.WriteFile(filepath.Join(clone, "streak.yaml"), []byte(cfgYAML), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--repo", clone, "doctor"})
	if err := root.Execute(); err != nil {
		t.Fatalf("doctor should pass with a configured fallback: %v\n%s", err, buf.String())
	}

	out := buf.String()
	if !strings.Contains(out, "FAILED") {
		t.Errorf("output missing endpoint failure:\n%s", out)
	}
	if !strings.Contains(out, "Fallback message configured") {
		t.Errorf("output missing fallback notice:\n%s", out)
	}
}
