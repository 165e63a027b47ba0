package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Validate checks a config for errors.
func Validate(c *Config) error { return validate(c) }

// Save validates and writes a config to disk.
func Save(path string, c *Config) error {
	if err := validate(c); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Load reads and validates a streak.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates streak.yaml content.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func validate(c *Config) error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", c.Version)
	}

	if c.TrackingFile != "" {
		if err := validatePath(c.TrackingFile, "tracking_file"); err != nil {
			return err
		}
	}

	if err := validateHits(c.Hits); err != nil {
		return err
	}
	if err := validateMessage(c.Message); err != nil {
		return err
	}

	return nil
}

func validateHits(h Hits) error {
	switch h.Mode {
	case "", ModeRandom, ModeFixed:
	default:
		return fmt.Errorf("config: hits.mode must be %q or %q: %q", ModeRandom, ModeFixed, h.Mode)
	}
	if h.Max < 0 {
		return fmt.Errorf("config: hits.max must be positive: %d", h.Max)
	}
	if h.Count < 0 {
		return fmt.Errorf("config: hits.count must be positive: %d", h.Count)
	}
	return nil
}

func validateMessage(m Message) error {
	switch m.Source {
	case SourceFixed:
		if m.Fixed == "" {
			return fmt.Errorf("config: message.fixed is required when source is %q", SourceFixed)
		}
	case SourceRemote:
		if m.URL == "" {
			return fmt.Errorf("config: message.url is required when source is %q", SourceRemote)
		}
		u, err := url.Parse(m.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("config: message.url must be an http(s) URL: %s", m.URL)
		}
	case SourceWordlist:
		if m.Wordlist == "" {
			return fmt.Errorf("config: message.wordlist is required when source is %q", SourceWordlist)
		}
		if err := validatePath(m.Wordlist, "message.wordlist"); err != nil {
			return err
		}
	case "":
		return fmt.Errorf("config: message.source is required")
	default:
		return fmt.Errorf("config: unknown message.source: %q", m.Source)
	}

	switch m.Fallback {
	case "", FallbackAbort:
	case FallbackFixed:
		if m.Fixed == "" {
			return fmt.Errorf("config: message.fixed is required when fallback is %q", FallbackFixed)
		}
	default:
		return fmt.Errorf("config: message.fallback must be %q or %q: %q", FallbackAbort, FallbackFixed, m.Fallback)
	}

	return nil
}

// validatePath ensures a path is relative and does not escape the repository.
func validatePath(p, label string) error {
	if filepath.IsAbs(p) {
		return fmt.Errorf("config: %s: absolute path is not allowed: %s", label, p)
	}
	cleaned := filepath.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("config: %s: path must not escape repository (contains ..): %s", label, p)
	}
	return nil
}
