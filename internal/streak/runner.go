package streak

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/m-mizutani/ctxlog"

	"github.com/OjusWiZard/streak/internal/git"
	"github.com/OjusWiZard/streak/internal/message"
	"github.com/OjusWiZard/streak/internal/tracking"
)

// Config controls a single run.
type Config struct {
	// TrackingFile is the resolved path of the file each hit appends to.
	TrackingFile string

	// MaxHits bounds the random hit count drawn for a run.
	MaxHits int

	// FixedHits, when positive, pins the hit count instead of drawing one.
	FixedHits int

	// Remote is the git remote the run pushes to.
	Remote string
}

// Repo is the subset of git operations a run needs.
type Repo interface {
	IsRepository(ctx context.Context) (bool, error)
	HasRemote(ctx context.Context, name string) (bool, error)
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context, remote string) error
}

// Clock supplies the timestamps written to the tracking file.
type Clock interface {
	Now() time.Time
}

// Dice supplies the randomness for the hit count draw.
type Dice interface {
	Intn(n int) int
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type systemDice struct{}

func (systemDice) Intn(n int) int { return rand.Intn(n) }

// Result reports what a run accomplished. On error it still carries the
// hits that already became local commits.
type Result struct {
	Hits     int      // commits created
	Messages []string // commit message per hit, in order
	Pushed   bool
}

// Runner performs runs against one repository.
type Runner struct {
	config Config
	repo   Repo
	source message.Source
	clock  Clock
	dice   Dice

	// OnHit, when set, is called after each commit with the hit number,
	// the total drawn for this run, and the commit message.
	OnHit func(hit, total int, message string)
}

// NewRunner returns a Runner using the system clock and randomness.
func NewRunner(config Config, repo Repo, source message.Source) *Runner {
	return NewRunnerWithDeps(config, repo, source, systemClock{}, systemDice{})
}

// NewRunnerWithDeps returns a Runner with explicit clock and randomness,
// letting tests make runs deterministic.
func NewRunnerWithDeps(config Config, repo Repo, source message.Source, clock Clock, dice Dice) *Runner {
	return &Runner{
		config: config,
		repo:   repo,
		source: source,
		clock:  clock,
		dice:   dice,
	}
}

// Run performs one run: verify the repository, draw the hit count, create
// that many tracked commits, then push them in a single batch.
//
// The message is fetched before the tracking file is touched, so a dead
// source never leaves an uncommitted append behind. A failed push leaves
// the local commits in place and is reported through the error.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	res := &Result{}

	ok, err := r.repo.IsRepository(ctx)
	if err != nil {
		return res, err
	}
	if !ok {
		return res, git.ErrNotRepository
	}

	ok, err = r.repo.HasRemote(ctx, r.config.Remote)
	if err != nil {
		return res, err
	}
	if !ok {
		return res, fmt.Errorf("remote %q: %w", r.config.Remote, git.ErrNoRemote)
	}

	n := r.hits()
	ctxlog.From(ctx).Debug("starting run", "hits", n, "remote", r.config.Remote)

	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		msg, err := r.source.Message(ctx)
		if err != nil {
			return res, fmt.Errorf("hit %d/%d: %w", i, n, err)
		}
		if err := tracking.Append(r.config.TrackingFile, r.clock.Now()); err != nil {
			return res, fmt.Errorf("hit %d/%d: %w", i, n, err)
		}
		if err := r.repo.AddAll(ctx); err != nil {
			return res, fmt.Errorf("hit %d/%d: %w", i, n, err)
		}
		if err := r.repo.Commit(ctx, msg); err != nil {
			return res, fmt.Errorf("hit %d/%d: %w", i, n, err)
		}

		res.Hits++
		res.Messages = append(res.Messages, msg)
		ctxlog.From(ctx).Info("created commit", "hit", i, "total", n, "message", msg)
		if r.OnHit != nil {
			r.OnHit(i, n, msg)
		}
	}

	if err := r.repo.Push(ctx, r.config.Remote); err != nil {
		return res, err
	}
	res.Pushed = true
	ctxlog.From(ctx).Info("pushed", "remote", r.config.Remote, "commits", res.Hits)

	return res, nil
}

// hits returns the number of commits this run should create.
func (r *Runner) hits() int {
	if r.config.FixedHits > 0 {
		return r.config.FixedHits
	}
	max := r.config.MaxHits
	if max < 1 {
		max = 1
	}
	return 1 + r.dice.Intn(max)
}
