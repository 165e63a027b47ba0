// Package git provides a wrapper around Git CLI commands used by streak.
// It handles work-tree detection, staging, committing, and pushing without
// depending on other internal packages. Repository operations hang off the
// Repo type, bound to a working directory, so callers inject it rather than
// reading ambient process state.
package git
