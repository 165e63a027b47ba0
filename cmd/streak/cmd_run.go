package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OjusWiZard/streak/internal/config"
	"github.com/OjusWiZard/streak/internal/git"
	"github.com/OjusWiZard/streak/internal/message"
	"github.com/OjusWiZard/streak/internal/streak"
	"github.com/OjusWiZard/streak/internal/ui"
	"github.com/OjusWiZard/streak/internal/workdir"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Create tracked streak commits and push them",
		RunE:  runRun,
	}
	addConfigFlags(cmd)
	return cmd
}

func runRun(cmd *cobra.Command, _ []string) error {
	wd, err := loadWorkdir(cmd)
	if err != nil {
		return err
	}
	cfg, err := applyConfigFlags(cmd, wd.Config)
	if err != nil {
		return err
	}

	src, err := buildSource(wd, cfg)
	if err != nil {
		return err
	}

	runCfg := streak.Config{
		TrackingFile: wd.ResolvePath(cfg.EffectiveTrackingFile()),
		Remote:       cfg.Push.EffectiveRemote(),
	}
	if cfg.Hits.EffectiveMode() == config.ModeFixed {
		runCfg.FixedHits = cfg.Hits.EffectiveCount()
	} else {
		runCfg.MaxHits = cfg.Hits.EffectiveMax()
	}

	runner := streak.NewRunner(runCfg, git.NewRepo(wd.Root), src)

	out := cmd.OutOrStdout()
	var progress *ui.Progress
	runner.OnHit = func(hit, total int, msg string) {
		if progress == nil {
			progress = ui.NewProgress(cmd.ErrOrStderr(), total)
		}
		progress.Step("committed: " + msg)
	}

	res, err := runner.Run(cmd.Context())
	if err != nil {
		if errors.Is(err, git.ErrNotRepository) {
			return fmt.Errorf("%s: %w", wd.Root, err)
		}
		if res.Hits > 0 && !res.Pushed {
			progress.Log("%d commit(s) created locally but not pushed.", res.Hits)
		}
		return err
	}

	_, _ = fmt.Fprintf(out, "Run complete: %d commit(s) pushed to %s.\n", res.Hits, runCfg.Remote)
	return nil
}

// buildSource assembles the message source the config describes, wrapping it
// in the fixed fallback when that policy is configured.
func buildSource(wd *workdir.Context, cfg *config.Config) (message.Source, error) {
	var src message.Source
	switch cfg.Message.Source {
	case config.SourceFixed:
		src = message.NewFixed(cfg.Message.Fixed)
	case config.SourceRemote:
		src = message.NewRemote(cfg.Message.URL)
	case config.SourceWordlist:
		src = message.NewWordlist(wd.ResolvePath(cfg.Message.Wordlist))
	default:
		return nil, fmt.Errorf("unknown message source: %q", cfg.Message.Source)
	}

	if cfg.Message.Source != config.SourceFixed && cfg.Message.EffectiveFallback() == config.FallbackFixed {
		src = message.NewFallback(src, cfg.Message.Fixed)
	}
	return src, nil
}
