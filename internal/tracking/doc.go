// Package tracking handles the append-only tracking file.
// Each run appends one human-readable timestamp line per commit,
// leaving a plain-text activity trail that git versions alongside the code.
package tracking
