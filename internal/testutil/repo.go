package testutil

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// CreateBareRepo creates a bare git repository with an initial commit in a temp
// directory. Returns the path to the bare repo, suitable as a clone/push remote.
func CreateBareRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	bare := filepath.Join(dir, "origin.git")

	// Create a working repo first, then clone it bare.
	work := filepath.Join(dir, "seed")
	run(t, dir, "git", "init", "-b", "main", work)
	run(t, work, "git", "config", "user.email", "test@example.com")
	run(t, work, "git", "config", "user.name", "Test")

	readme := filepath.Join(work, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	run(t, work, "git", "add", ".")
	run(t, work, "git", "commit", "-m", "initial commit")

	run(t, dir, "git", "clone", "--bare", work, bare)
	return bare
}

// CloneRepo clones the bare repo into a fresh temp directory and configures a
// commit identity. The clone has "origin" pointing at bare, like a real checkout.
func CloneRepo(t *testing.T, bare string) string {
	t.Helper()
	work := filepath.Join(t.TempDir(), "work")
	run(t, filepath.Dir(work), "git", "clone", bare, work)
	run(t, work, "git", "config", "user.email", "test@example.com")
	run(t, work, "git", "config", "user.name", "Test")
	return work
}

// InitRepo creates a standalone repository with an initial commit and no remote.
func InitRepo(t *testing.T) string {
	t.Helper()
	work := filepath.Join(t.TempDir(), "local")
	run(t, filepath.Dir(work), "git", "init", "-b", "main", work)
	run(t, work, "git", "config", "user.email", "test@example.com")
	run(t, work, "git", "config", "user.name", "Test")
	seed := filepath.Join(work, "README.md")
	if err := os.WriteFile(seed, []byte("# local\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	run(t, work, "git", "add", ".")
	run(t, work, "git", "commit", "-m", "initial commit")
	return work
}

// AdvanceRemote pushes an extra commit to the bare repo through a throwaway
// clone, so that other clones' pushes are rejected as non-fast-forward.
func AdvanceRemote(t *testing.T, bare string) {
	t.Helper()
	side := filepath.Join(t.TempDir(), "side")
	run(t, filepath.Dir(side), "git", "clone", bare, side)
	run(t, side, "git", "config", "user.email", "other@example.com")
	run(t, side, "git", "config", "user.name", "Other")
	f := filepath.Join(side, "notes.txt")
	if err := os.WriteFile(f, []byte("diverge\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	run(t, side, "git", "add", ".")
	run(t, side, "git", "commit", "-m", "diverging commit")
	run(t, side, "git", "push", "origin", "main")
}

// CommitSubjects returns the newest n commit subjects of the repo, newest first.
func CommitSubjects(t *testing.T, dir string, n int) []string {
	t.Helper()
	out := output(t, dir, "git", "log", "--pretty=format:%s", "-n", strconv.Itoa(n))
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// CommitCount returns the number of commits reachable from HEAD.
func CommitCount(t *testing.T, dir string) int {
	t.Helper()
	out := output(t, dir, "git", "rev-list", "--count", "HEAD")
	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("parsing rev-list count %q: %v", out, err)
	}
	return n
}

// WriteWordlist writes a newline-delimited word list file and returns its path.
func WriteWordlist(t *testing.T, dir string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, "words.txt")
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
}

func output(t *testing.T, dir string, name string, args ...string) string {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
	return stdout.String()
}
