package config

// Filename is the config file streak looks for in the repository root.
const Filename = "streak.yaml"

// Message source kinds.
const (
	SourceFixed    = "fixed"
	SourceRemote   = "remote"
	SourceWordlist = "wordlist"
)

// Hit count modes.
const (
	ModeRandom = "random"
	ModeFixed  = "fixed"
)

// Fallback policies for an unreachable remote source.
const (
	FallbackAbort = "abort"
	FallbackFixed = "fixed"
)

// Config represents the top-level streak.yaml file.
type Config struct {
	Version      int     `yaml:"version"`
	TrackingFile string  `yaml:"tracking_file,omitempty"`
	Hits         Hits    `yaml:"hits,omitempty"`
	Message      Message `yaml:"message"`
	Push         Push    `yaml:"push,omitempty"`
}

// Hits controls how many commits a single run produces.
type Hits struct {
	Mode  string `yaml:"mode,omitempty"`  // "random" or "fixed"
	Max   int    `yaml:"max,omitempty"`   // upper bound for random mode
	Count int    `yaml:"count,omitempty"` // exact count for fixed mode
}

// Message selects where commit messages come from.
type Message struct {
	Source   string `yaml:"source"` // "fixed", "remote" or "wordlist"
	Fixed    string `yaml:"fixed,omitempty"`
	URL      string `yaml:"url,omitempty"`
	Wordlist string `yaml:"wordlist,omitempty"`
	Fallback string `yaml:"fallback,omitempty"` // "abort" or "fixed"
}

// Push controls where commits are pushed.
type Push struct {
	Remote string `yaml:"remote,omitempty"`
}

// Default returns a config with every optional field at its default value.
func Default() *Config {
	return &Config{
		Version:      1,
		TrackingFile: ".streak",
		Hits:         Hits{Mode: ModeRandom, Max: 3},
		Message:      Message{Source: SourceFixed, Fixed: "keep the streak alive", Fallback: FallbackAbort},
		Push:         Push{Remote: "origin"},
	}
}

// EffectiveTrackingFile returns the tracking file path, defaulting to ".streak".
func (c *Config) EffectiveTrackingFile() string {
	if c.TrackingFile != "" {
		return c.TrackingFile
	}
	return ".streak"
}

// EffectiveMode returns the hit count mode, defaulting to random.
func (h Hits) EffectiveMode() string {
	if h.Mode != "" {
		return h.Mode
	}
	return ModeRandom
}

// EffectiveMax returns the random mode upper bound, defaulting to 3.
func (h Hits) EffectiveMax() int {
	if h.Max > 0 {
		return h.Max
	}
	return 3
}

// EffectiveCount returns the fixed mode count, defaulting to 1.
func (h Hits) EffectiveCount() int {
	if h.Count > 0 {
		return h.Count
	}
	return 1
}

// EffectiveFallback returns the fallback policy, defaulting to abort.
func (m Message) EffectiveFallback() string {
	if m.Fallback != "" {
		return m.Fallback
	}
	return FallbackAbort
}

// EffectiveRemote returns the push remote, defaulting to "origin".
func (p Push) EffectiveRemote() string {
	if p.Remote != "" {
		return p.Remote
	}
	return "origin"
}
