package domain

import "time"

// Config represents the linkcheck configuration loaded from linkcheck.yaml.
type Config struct {
	Probe ProbeConfig
	Paths PathsConfig
	Runs  RunsConfig
}

type ProbeConfig struct {
	Timeout         time.Duration
	UserAgent       string
	MaxBodyBytes    int64
	RatePerSecond   float64 // 0 means unlimited
	DetailedReasons bool
}

type PathsConfig struct {
	ExportsDir string
	RunsDir    string
}

type RunsConfig struct {
	Save bool
}

// DefaultProbeTimeout is the per-request timeout used when none is configured.
const DefaultProbeTimeout = 10 * time.Second

// DefaultConfig provides sane defaults if linkcheck.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Probe: ProbeConfig{
			Timeout:      DefaultProbeTimeout,
			UserAgent:    "linkcheck/dev",
			MaxBodyBytes: 256 * 1024,
		},
		Paths: PathsConfig{
			ExportsDir: "exports",
			RunsDir:    "runs",
		},
	}
}

// WorkspaceSpec describes where a workspace is initialized.
type WorkspaceSpec struct {
	Root string
}
