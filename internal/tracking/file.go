package tracking

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Layout is the timestamp format of tracking file lines.
const Layout = time.UnixDate

// Append writes one timestamp line to the tracking file, creating it (and
// any parent directories) if needed. The file is opened in append mode so
// existing lines are never rewritten.
func Append(path string, at time.Time) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil { //nolint:gosec // tracking dir lives inside the repo
			return fmt.Errorf("creating tracking directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // tracking file is committed to the repo
	if err != nil {
		return fmt.Errorf("opening tracking file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, at.Format(Layout)); err != nil {
		return fmt.Errorf("appending to tracking file: %w", err)
	}
	return nil
}

// Read returns the entries of the tracking file, oldest first.
// A missing file is not an error: it means no run has happened yet.
// Lines that do not parse as timestamps keep their raw text and a zero Time.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path) //nolint:gosec // tracking file path comes from config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading tracking file: %w", err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		e := Entry{Raw: line}
		if ts, err := time.ParseInLocation(Layout, line, time.Local); err == nil {
			e.Time = ts
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning tracking file: %w", err)
	}
	return entries, nil
}
