package workdir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/OjusWiZard/streak/internal/config"
)

// Context holds the resolved paths and loaded config for a repository.
type Context struct {
	Root         string
	ConfigPath   string
	TrackingPath string
	Config       *config.Config
	HasConfig    bool // true when streak.yaml exists on disk
}

// Load resolves repository paths and loads streak.yaml if present.
// A repository without a config file gets the defaults.
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving repository root: %w", err)
	}

	configPath := filepath.Join(root, config.Filename)

	cfg := config.Default()
	hasConfig := false
	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
		hasConfig = true
	}

	return &Context{
		Root:         root,
		ConfigPath:   configPath,
		TrackingPath: filepath.Join(root, cfg.EffectiveTrackingFile()),
		Config:       cfg,
		HasConfig:    hasConfig,
	}, nil
}

// LoadFile loads config from an explicit file instead of discovering
// <root>/streak.yaml. Unlike Load, the file must exist.
func LoadFile(root, configPath string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving repository root: %w", err)
	}
	configPath, err = filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	return &Context{
		Root:         root,
		ConfigPath:   configPath,
		TrackingPath: filepath.Join(root, cfg.EffectiveTrackingFile()),
		Config:       cfg,
		HasConfig:    true,
	}, nil
}

// ResolvePath returns the absolute path for a config-relative path.
func (c *Context) ResolvePath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Root, rel)
}
