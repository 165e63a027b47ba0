package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/OjusWiZard/streak/internal/git"
	"github.com/OjusWiZard/streak/internal/tracking"
	"github.com/OjusWiZard/streak/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show streak and repository status",
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type statusReport struct {
	Repository string `json:"repository"`
	Branch     string `json:"branch,omitempty"`
	Head       string `json:"head,omitempty"`
	Dirty      bool   `json:"dirty"`
	Remote     string `json:"remote"`
	Entries    int    `json:"entries"`
	LastEntry  string `json:"last_entry,omitempty"`
	StreakDays int    `json:"streak_days"`
	Ahead      int    `json:"ahead,omitempty"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	wd, err := loadWorkdir(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	repo := git.NewRepo(wd.Root)

	ok, err := repo.IsRepository(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", wd.Root, git.ErrNotRepository)
	}

	entries, err := tracking.Read(wd.TrackingPath)
	if err != nil {
		return err
	}

	report := statusReport{
		Repository: wd.Root,
		Remote:     wd.Config.Push.EffectiveRemote(),
		Entries:    len(entries),
		StreakDays: tracking.Streak(entries, time.Now()),
	}
	if last, ok := tracking.Last(entries); ok {
		report.LastEntry = last.Raw
	}

	if branch, err := repo.CurrentBranch(ctx); err == nil {
		if branch == "" {
			report.Branch = "(detached)"
		} else {
			report.Branch = branch
		}
	}
	if head, err := repo.HeadCommit(ctx); err == nil {
		report.Head = head
	}
	if dirty, err := repo.IsDirty(ctx); err == nil {
		report.Dirty = dirty
	}
	if report.Branch != "" && report.Branch != "(detached)" {
		if ahead, err := repo.AheadOfRemote(ctx, report.Remote, report.Branch); err == nil {
			report.Ahead = ahead
		}
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fields := ui.NewFields(out)
	fields.Add("Repository", report.Repository)
	fields.Add("Branch", report.Branch)
	fields.Add("HEAD", report.Head)
	fields.Add("Dirty", report.Dirty)
	fields.Add("Tracked entries", report.Entries)
	if report.LastEntry != "" {
		fields.Add("Last entry", report.LastEntry)
	}
	fields.Add("Streak", fmt.Sprintf("%d day(s)", report.StreakDays))
	fields.Add("Unpushed commits", report.Ahead)
	return fields.Flush()
}
