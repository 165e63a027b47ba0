package main

import (
	"github.com/m-mizutani/ctxlog"
	"github.com/spf13/cobra"

	"github.com/OjusWiZard/streak/internal/logging"
	"github.com/OjusWiZard/streak/internal/workdir"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "streak",
		Short:   "Keep a commit streak alive with tracked timestamp commits",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level, _ := cmd.Flags().GetString("log-level")
			logJSON, _ := cmd.Flags().GetBool("log-json")
			logger := logging.New(cmd.ErrOrStderr(), logging.Options{Level: level, JSON: logJSON})
			cmd.SetContext(ctxlog.With(cmd.Context(), logger))
		},
	}

	cmd.PersistentFlags().String("repo", ".", "Path to the git repository to operate on")
	cmd.PersistentFlags().String("config", "", "Config file (default <repo>/streak.yaml when present)")
	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("log-json", false, "Output logs in JSON format")

	cmd.AddCommand(
		newInitCmd(),
		newRunCmd(),
		newStatusCmd(),
		newLogCmd(),
		newDoctorCmd(),
	)

	return cmd
}

// loadWorkdir resolves the target repository and its config from the
// persistent flags.
func loadWorkdir(cmd *cobra.Command) (*workdir.Context, error) {
	repoPath, _ := cmd.Flags().GetString("repo")
	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		return workdir.LoadFile(repoPath, configPath)
	}
	return workdir.Load(repoPath)
}
