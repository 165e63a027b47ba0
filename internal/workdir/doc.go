// Package workdir integrates config loading with repository path resolution.
// It provides the Context type that holds the resolved paths and loaded
// configuration for the repository a command operates on.
package workdir
