package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/m-mizutani/ctxlog"
)

// Sentinel errors surfaced by Repo operations. Callers match them with errors.Is.
var (
	// ErrNotRepository indicates the directory is not inside a git work tree.
	ErrNotRepository = errors.New("not a git repository")

	// ErrNoRemote indicates the requested remote is not configured.
	ErrNoRemote = errors.New("remote not configured")

	// ErrNothingToCommit indicates a commit was attempted on a clean work tree.
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrPushRejected indicates the remote refused the push (e.g. diverged history).
	ErrPushRejected = errors.New("push rejected by remote")
)

// CommandError reports a failed git invocation with its captured stderr.
type CommandError struct {
	Op     string   // git subcommand, e.g. "commit"
	Args   []string // full argument list passed to git
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s failed", e.Op)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *CommandError) Unwrap() error { return e.Err }

// Repo is a git repository rooted at Dir.
type Repo struct {
	Dir string
}

// NewRepo returns a Repo bound to the given working directory.
func NewRepo(dir string) *Repo {
	return &Repo{Dir: dir}
}

// IsRepository reports whether Dir is inside a git work tree.
// Git answers "not a repository" with exit code 128, which maps to (false, nil);
// other failures (git missing, permissions) are returned as errors.
func (r *Repo) IsRepository(ctx context.Context) (bool, error) {
	_, err := r.output(ctx, "rev-parse", "--is-inside-work-tree")
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 128 {
		return false, nil
	}
	return false, err
}

// CurrentBranch returns the current branch name, or empty string if detached.
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.output(ctx, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		// Detached HEAD: symbolic-ref fails.
		return "", nil
	}
	return strings.TrimSpace(out), nil
}

// HeadCommit returns the short SHA of HEAD.
func (r *Repo) HeadCommit(ctx context.Context) (string, error) {
	out, err := r.output(ctx, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// HasRemote reports whether the named remote is configured.
func (r *Repo) HasRemote(ctx context.Context, name string) (bool, error) {
	_, err := r.output(ctx, "remote", "get-url", name)
	if err != nil {
		if isExitError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RemoteURL returns the fetch URL of the named remote.
func (r *Repo) RemoteURL(ctx context.Context, name string) (string, error) {
	out, err := r.output(ctx, "remote", "get-url", name)
	if err != nil {
		if isExitError(err) {
			return "", fmt.Errorf("remote %q: %w", name, ErrNoRemote)
		}
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsDirty reports whether the work tree has uncommitted changes.
func (r *Repo) IsDirty(ctx context.Context) (bool, error) {
	out, err := r.output(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// AddAll stages every change in the work tree, including untracked files.
func (r *Repo) AddAll(ctx context.Context) error {
	return r.run(ctx, "add", "--all")
}

// Commit creates a commit with the given message.
// If user.name or user.email is not configured, repo-local fallback values are
// set first. Committing a clean tree unwraps to ErrNothingToCommit.
func (r *Repo) Commit(ctx context.Context, message string) error {
	if err := r.ensureCommitIdentity(ctx); err != nil {
		return fmt.Errorf("setting commit identity: %w", err)
	}
	out, err := r.output(ctx, "commit", "-m", message)
	if err == nil {
		return nil
	}
	// Git reports a clean tree on stdout, not stderr.
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && strings.Contains(out+cmdErr.Stderr, "nothing to commit") {
		cmdErr.Err = ErrNothingToCommit
		return cmdErr
	}
	return err
}

// Push pushes the current branch to the named remote. A refused push
// (non-fast-forward or remote hook) unwraps to ErrPushRejected.
func (r *Repo) Push(ctx context.Context, remote string) error {
	err := r.run(ctx, "push", remote, "HEAD")
	if err == nil {
		return nil
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && isRejection(cmdErr.Stderr) {
		cmdErr.Err = ErrPushRejected
		return cmdErr
	}
	return err
}

// CommitSubjects returns the subjects of the newest n commits, newest first.
func (r *Repo) CommitSubjects(ctx context.Context, n int) ([]string, error) {
	out, err := r.output(ctx, "log", "--pretty=format:%s", "-n", strconv.Itoa(n))
	if err != nil {
		return nil, err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// AheadOfRemote returns how many commits HEAD is ahead of remote/branch.
func (r *Repo) AheadOfRemote(ctx context.Context, remote, branch string) (int, error) {
	out, err := r.output(ctx, "rev-list", "--count", remote+"/"+branch+"..HEAD")
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(out))
	if convErr != nil {
		return 0, fmt.Errorf("parsing rev-list count %q: %w", out, convErr)
	}
	return n, nil
}

// ensureCommitIdentity sets repo-local user.name/user.email if they are not configured.
func (r *Repo) ensureCommitIdentity(ctx context.Context) error {
	if _, err := r.output(ctx, "config", "user.name"); err != nil {
		if err2 := r.run(ctx, "config", "user.name", "streak"); err2 != nil {
			return err2
		}
	}
	if _, err := r.output(ctx, "config", "user.email"); err != nil {
		if err2 := r.run(ctx, "config", "user.email", "streak@localhost"); err2 != nil {
			return err2
		}
	}
	return nil
}

// run executes a git command in the repo directory, discarding stdout.
func (r *Repo) run(ctx context.Context, args ...string) error {
	_, err := r.output(ctx, args...)
	return err
}

// output executes a git command in the repo directory and returns its stdout.
// On failure the stdout captured so far is returned alongside a *CommandError
// carrying the stderr.
func (r *Repo) output(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	ctxlog.From(ctx).Debug("git", "args", strings.Join(args, " "), "dir", r.Dir, "err", err)
	if err != nil {
		op := ""
		if len(args) > 0 {
			op = args[0]
		}
		return stdout.String(), &CommandError{Op: op, Args: args, Stderr: stderr.String(), Err: err}
	}
	return stdout.String(), nil
}

// IsInstalled returns true if git is available on the system PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// isRejection reports whether push stderr indicates the remote refused the ref
// update, as opposed to connectivity or authentication failures.
func isRejection(stderr string) bool {
	return strings.Contains(stderr, "[rejected]") ||
		strings.Contains(stderr, "[remote rejected]") ||
		strings.Contains(stderr, "failed to push some refs")
}
