package config

import (
	"time"

	"github.com/caarlos0/env/v6"

	"github.com/aalvaropc/linkcheck/internal/domain"
)

type envOverrides struct {
	Timeout         time.Duration `env:"LINKCHECK_TIMEOUT"`
	UserAgent       string        `env:"LINKCHECK_USER_AGENT"`
	RatePerSecond   float64       `env:"LINKCHECK_RATE"`
	DetailedReasons bool          `env:"LINKCHECK_DETAILED_REASONS"`
	ExportsDir      string        `env:"LINKCHECK_EXPORTS_DIR"`
	RunsDir         string        `env:"LINKCHECK_RUNS_DIR"`
	SaveRuns        bool          `env:"LINKCHECK_SAVE_RUNS"`
}

// ApplyEnv overrides cfg with LINKCHECK_* variables. Unset variables leave
// the current value untouched.
func ApplyEnv(cfg domain.Config) (domain.Config, error) {
	o := envOverrides{
		Timeout:         cfg.Probe.Timeout,
		UserAgent:       cfg.Probe.UserAgent,
		RatePerSecond:   cfg.Probe.RatePerSecond,
		DetailedReasons: cfg.Probe.DetailedReasons,
		ExportsDir:      cfg.Paths.ExportsDir,
		RunsDir:         cfg.Paths.RunsDir,
		SaveRuns:        cfg.Runs.Save,
	}
	if err := env.Parse(&o); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.env",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	cfg.Probe.Timeout = o.Timeout
	cfg.Probe.UserAgent = o.UserAgent
	cfg.Probe.RatePerSecond = o.RatePerSecond
	cfg.Probe.DetailedReasons = o.DetailedReasons
	cfg.Paths.ExportsDir = o.ExportsDir
	cfg.Paths.RunsDir = o.RunsDir
	cfg.Runs.Save = o.SaveRuns

	if err := Validate("env", cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
