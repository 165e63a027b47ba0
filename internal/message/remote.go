package message

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
)

// maxResponseBytes caps how much of the endpoint's response is read.
const maxResponseBytes = 64 << 10

// Remote fetches a message from an HTTP endpoint with a GET request.
// The first non-empty line of the response body becomes the message.
type Remote struct {
	URL    string
	Client *http.Client
}

// NewRemote returns a source that queries url on every call.
func NewRemote(url string) *Remote {
	return &Remote{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Remote) Message(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request for %s: %w", r.URL, err)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: fetching %s: %v", ErrUnavailable, r.URL, err)
	}
	defer resp.Body.Close()
	ctxlog.From(ctx).Debug("fetched message", "url", r.URL, "status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d from %s", ErrUnavailable, resp.StatusCode, r.URL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: reading response from %s: %v", ErrUnavailable, r.URL, err)
	}
	msg := firstLine(string(body))
	if msg == "" {
		return "", fmt.Errorf("%w: empty response from %s", ErrUnavailable, r.URL)
	}
	return msg, nil
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}
