package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/OjusWiZard/streak/internal/config"
	"github.com/OjusWiZard/streak/internal/git"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a streak.yaml config",
		RunE:  runInit,
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config")
	cmd.Flags().Bool("defaults", false, "Write the default config without prompting")
	addConfigFlags(cmd)
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	repoPath, _ := cmd.Flags().GetString("repo")
	force, _ := cmd.Flags().GetBool("force")
	useDefaults, _ := cmd.Flags().GetBool("defaults")

	root, err := filepath.Abs(repoPath)
	if err != nil {
		return fmt.Errorf("resolving repository root: %w", err)
	}
	configPath := filepath.Join(root, config.Filename)
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		if configPath, err = filepath.Abs(p); err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
	}

	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed (install it from https://git-scm.com/)")
	}

	ok, err := git.NewRepo(root).IsRepository(cmd.Context())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s is not a git repository (run git init first)", root)
	}

	if _, statErr := os.Stat(configPath); statErr == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}

	var cfg *config.Config
	switch {
	case configFlagsChanged(cmd):
		cfg, err = applyConfigFlags(cmd, config.Default())
		if err != nil {
			return err
		}
	case useDefaults:
		cfg = config.Default()
	default:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive init requires a TTY; use --defaults or config flags to run non-interactively")
		}
		cfg, err = buildConfigInteractive()
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
	}

	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", configPath)
	return nil
}
