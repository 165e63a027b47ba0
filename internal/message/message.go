// Package message provides the commit message sources a run draws from.
package message

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
)

// ErrUnavailable indicates a source could not produce a message.
var ErrUnavailable = errors.New("message source unavailable")

// Source yields one commit message per call.
type Source interface {
	Message(ctx context.Context) (string, error)
}

// Fixed always returns the same configured literal.
type Fixed struct {
	Text string
}

// NewFixed returns a source that always yields text.
func NewFixed(text string) *Fixed {
	return &Fixed{Text: text}
}

func (f *Fixed) Message(ctx context.Context) (string, error) {
	return f.Text, nil
}

// Fallback wraps a source and substitutes a literal when it is unavailable.
// Other errors, including context cancellation, pass through.
type Fallback struct {
	Primary Source
	Literal string
}

// NewFallback returns a source that answers literal whenever primary cannot.
func NewFallback(primary Source, literal string) *Fallback {
	return &Fallback{Primary: primary, Literal: literal}
}

func (f *Fallback) Message(ctx context.Context) (string, error) {
	msg, err := f.Primary.Message(ctx)
	if err == nil {
		return msg, nil
	}
	if ctx.Err() != nil {
		return "", err
	}
	if errors.Is(err, ErrUnavailable) {
		ctxlog.From(ctx).Warn("message source unavailable, using fallback", "error", err)
		return f.Literal, nil
	}
	return "", err
}
