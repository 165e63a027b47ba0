package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OjusWiZard/streak/internal/tracking"
	"github.com/OjusWiZard/streak/internal/ui"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent tracking file entries",
		RunE:  runLog,
	}
	cmd.Flags().IntP("number", "n", 10, "Number of entries to show (0 for all)")
	return cmd
}

func runLog(cmd *cobra.Command, _ []string) error {
	n, _ := cmd.Flags().GetInt("number")

	wd, err := loadWorkdir(cmd)
	if err != nil {
		return err
	}

	entries, err := tracking.Read(wd.TrackingPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(out, "No tracking entries yet.")
		return nil
	}

	total := len(entries)
	if n > 0 && total > n {
		entries = entries[total-n:]
	}
	start := total - len(entries)

	tbl := ui.NewTable(out, "#", "ENTRY")
	for i, e := range entries {
		tbl.Row(start+i+1, e.Raw)
	}
	return tbl.Flush()
}
