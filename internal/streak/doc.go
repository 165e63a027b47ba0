// Package streak orchestrates a single run against a repository.
// A run appends timestamp lines to the tracking file and commits each one
// with a message drawn from the configured source, then pushes the batch.
package streak
