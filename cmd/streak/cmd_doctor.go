package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OjusWiZard/streak/internal/config"
	"github.com/OjusWiZard/streak/internal/git"
	"github.com/OjusWiZard/streak/internal/message"
	"github.com/OjusWiZard/streak/internal/tracking"
	"github.com/OjusWiZard/streak/internal/workdir"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	ok := true

	// Check git.
	fmt.Fprint(out, "Checking git... ")
	gitPath, err := exec.LookPath("git")
	if err != nil {
		fmt.Fprintln(out, "NOT FOUND")
		fmt.Fprintln(out, "  git is required. Install it from https://git-scm.com/")
		ok = false
	} else {
		fmt.Fprintf(out, "found at %s\n", gitPath)
	}

	// Check git version.
	if err == nil {
		fmt.Fprint(out, "Checking git version... ")
		ver, verr := exec.CommandContext(ctx, "git", "version").Output()
		if verr != nil {
			fmt.Fprintln(out, "ERROR")
			ok = false
		} else {
			fmt.Fprintln(out, strings.TrimSpace(string(ver)))
		}
	}

	wd, loadErr := loadWorkdir(cmd)
	if loadErr != nil {
		fmt.Fprintf(out, "Config: INVALID (%v)\n", loadErr)
		ok = false
	} else {
		if wd.HasConfig {
			fmt.Fprintf(out, "Config: %s\n", wd.ConfigPath)
		} else {
			fmt.Fprintln(out, "Config: none (using defaults; run 'streak init' to create one)")
		}

		repo := git.NewRepo(wd.Root)
		fmt.Fprint(out, "Checking repository... ")
		isRepo, rerr := repo.IsRepository(ctx)
		if rerr != nil || !isRepo {
			fmt.Fprintf(out, "NOT A GIT REPOSITORY (%s)\n", wd.Root)
			ok = false
		} else {
			fmt.Fprintln(out, "OK")

			remote := wd.Config.Push.EffectiveRemote()
			fmt.Fprintf(out, "Checking remote %q... ", remote)
			url, uerr := repo.RemoteURL(ctx, remote)
			if uerr != nil {
				fmt.Fprintf(out, "MISSING (%v)\n", uerr)
				fmt.Fprintf(out, "  Add one with: git remote add %s <url>\n", remote)
				ok = false
			} else {
				fmt.Fprintf(out, "%s\n", url)
				fmt.Fprint(out, "Checking remote reachability... ")
				if checkGitLsRemote(ctx, url) {
					fmt.Fprintln(out, "OK")
				} else {
					fmt.Fprintln(out, "FAILED (cannot access)")
					ok = false
				}
			}
		}

		checkSource(ctx, out, wd, &ok)
		checkTrackingFile(out, wd, &ok)
	}

	if ok {
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

// checkSource probes the configured message source so a broken endpoint or
// wordlist shows up here instead of mid-run.
func checkSource(ctx context.Context, out io.Writer, wd *workdir.Context, ok *bool) {
	msg := wd.Config.Message
	switch msg.Source {
	case config.SourceRemote:
		fmt.Fprint(out, "Checking message endpoint... ")
		text, err := message.NewRemote(msg.URL).Message(ctx)
		if err != nil {
			fmt.Fprintf(out, "FAILED (%v)\n", err)
			if msg.EffectiveFallback() == config.FallbackFixed {
				fmt.Fprintln(out, "  Fallback message configured; runs will still succeed.")
			} else {
				*ok = false
			}
		} else {
			fmt.Fprintf(out, "OK (%q)\n", text)
		}
	case config.SourceWordlist:
		fmt.Fprint(out, "Checking wordlist... ")
		text, err := message.NewWordlist(wd.ResolvePath(msg.Wordlist)).Message(ctx)
		if err != nil {
			fmt.Fprintf(out, "FAILED (%v)\n", err)
			*ok = false
		} else {
			fmt.Fprintf(out, "OK (sample: %q)\n", text)
		}
	default:
		fmt.Fprintf(out, "Message source: fixed (%q)\n", wd.Config.Message.Fixed)
	}
}

// checkTrackingFile verifies an existing tracking file can be appended to.
// A missing file is fine, the first run creates it.
func checkTrackingFile(out io.Writer, wd *workdir.Context, ok *bool) {
	fmt.Fprint(out, "Checking tracking file... ")
	if _, err := os.Stat(wd.TrackingPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(out, "none yet (created on first run)")
		} else {
			fmt.Fprintf(out, "FAILED (%v)\n", err)
			*ok = false
		}
		return
	}

	f, err := os.OpenFile(wd.TrackingPath, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		fmt.Fprintf(out, "NOT APPENDABLE (%v)\n", err)
		*ok = false
		return
	}
	_ = f.Close()

	entries, err := tracking.Read(wd.TrackingPath)
	if err != nil {
		fmt.Fprintf(out, "FAILED (%v)\n", err)
		*ok = false
		return
	}
	fmt.Fprintf(out, "OK (%d entries)\n", len(entries))
}

// checkGitLsRemote verifies that a remote URL is reachable.
func checkGitLsRemote(ctx context.Context, url string) bool {
	cmd := exec.CommandContext(ctx, "git", "ls-remote", "--exit-code", "--quiet", url)
	return cmd.Run() == nil
}
