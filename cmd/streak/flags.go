package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OjusWiZard/streak/internal/config"
)

// configFlagNames are the flags addConfigFlags registers, in help order.
var configFlagNames = []string{
	"message-source", "message", "message-url", "wordlist", "fallback",
	"hits", "max-hits", "remote", "tracking-file",
}

// addConfigFlags registers the config-overriding flags shared by run and
// init. Run layers them over the loaded config, init over the defaults.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("message-source", "", "Message source: fixed, remote or wordlist (overrides config)")
	cmd.Flags().String("message", "", "Fixed message literal, also used as fallback text (overrides config)")
	cmd.Flags().String("message-url", "", "HTTP endpoint for remote messages (overrides config)")
	cmd.Flags().String("wordlist", "", "Wordlist file for random messages (overrides config)")
	cmd.Flags().String("fallback", "", "Policy when the source is unavailable: abort or fixed")
	cmd.Flags().Int("hits", 0, "Create exactly this many commits instead of drawing a random count")
	cmd.Flags().Int("max-hits", 0, "Upper bound for the random commit count")
	cmd.Flags().String("remote", "", "Git remote to push to (overrides config)")
	cmd.Flags().String("tracking-file", "", "Tracking file path relative to the repo (overrides config)")
}

// configFlagsChanged reports whether any config-overriding flag was set.
func configFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range configFlagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// applyConfigFlags layers command line overrides over the base config and
// validates the result. Flags win over the file, the file over defaults.
func applyConfigFlags(cmd *cobra.Command, base *config.Config) (*config.Config, error) {
	cfg := *base

	flags := cmd.Flags()
	if flags.Changed("message-source") {
		cfg.Message.Source, _ = flags.GetString("message-source")
	}
	if flags.Changed("message") {
		cfg.Message.Fixed, _ = flags.GetString("message")
	}
	if flags.Changed("message-url") {
		cfg.Message.URL, _ = flags.GetString("message-url")
	}
	if flags.Changed("wordlist") {
		cfg.Message.Wordlist, _ = flags.GetString("wordlist")
	}
	if flags.Changed("fallback") {
		cfg.Message.Fallback, _ = flags.GetString("fallback")
	}
	if flags.Changed("max-hits") {
		v, _ := flags.GetInt("max-hits")
		if v < 1 {
			return nil, fmt.Errorf("--max-hits must be >= 1 (got %d)", v)
		}
		cfg.Hits.Mode = config.ModeRandom
		cfg.Hits.Max = v
	}
	if flags.Changed("hits") {
		v, _ := flags.GetInt("hits")
		if v < 1 {
			return nil, fmt.Errorf("--hits must be >= 1 (got %d)", v)
		}
		cfg.Hits.Mode = config.ModeFixed
		cfg.Hits.Count = v
	}
	if flags.Changed("remote") {
		cfg.Push.Remote, _ = flags.GetString("remote")
	}
	if flags.Changed("tracking-file") {
		cfg.TrackingFile, _ = flags.GetString("tracking-file")
	}

	if err := config.Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
