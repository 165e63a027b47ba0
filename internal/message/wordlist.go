package message

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

// Wordlist picks a random line from a local words file on every call.
// The file is re-read each time so edits take effect between hits.
type Wordlist struct {
	Path string

	// Pick returns an index in [0, n). Defaults to the shared math/rand source.
	Pick func(n int) int
}

// NewWordlist returns a source drawing uniformly from the lines of path.
func NewWordlist(path string) *Wordlist {
	return &Wordlist{Path: path, Pick: rand.Intn}
}

func (w *Wordlist) Message(ctx context.Context) (string, error) {
	lines, err := readLines(w.Path)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("%w: wordlist %s has no usable lines", ErrUnavailable, w.Path)
	}
	pick := w.Pick
	if pick == nil {
		pick = rand.Intn
	}
	return lines[pick(len(lines))], nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // wordlist path comes from config
	if err != nil {
		return nil, fmt.Errorf("%w: opening wordlist: %v", ErrUnavailable, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading wordlist: %v", ErrUnavailable, err)
	}
	return lines, nil
}
