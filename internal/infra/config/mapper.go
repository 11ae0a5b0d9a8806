package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/aalvaropc/linkcheck/internal/domain"
)

// MapConfig applies a parsed linkcheck.yaml on top of domain.DefaultConfig.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	lc := y.Linkcheck

	if s := strings.TrimSpace(lc.Probe.Timeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return cfg, invalidField(path, "probe.timeout", err.Error())
		}
		cfg.Probe.Timeout = d
	}
	if ua := strings.TrimSpace(lc.Probe.UserAgent); ua != "" {
		cfg.Probe.UserAgent = ua
	}
	if lc.Probe.MaxBodyBytes != nil {
		cfg.Probe.MaxBodyBytes = *lc.Probe.MaxBodyBytes
	}
	if lc.Probe.RatePerSecond != nil {
		cfg.Probe.RatePerSecond = *lc.Probe.RatePerSecond
	}
	if lc.Probe.DetailedReasons != nil {
		cfg.Probe.DetailedReasons = *lc.Probe.DetailedReasons
	}

	if lc.Paths.ExportsDir != "" {
		cfg.Paths.ExportsDir = lc.Paths.ExportsDir
	}
	if lc.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = lc.Paths.RunsDir
	}
	if lc.Runs.Save != nil {
		cfg.Runs.Save = *lc.Runs.Save
	}

	if err := Validate(path, cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the prober cannot run with.
func Validate(path string, cfg domain.Config) error {
	if cfg.Probe.Timeout <= 0 {
		return invalidField(path, "probe.timeout", "must be positive")
	}
	if cfg.Probe.MaxBodyBytes <= 0 {
		return invalidField(path, "probe.max_body_bytes", "must be positive")
	}
	if cfg.Probe.RatePerSecond < 0 {
		return invalidField(path, "probe.rate_per_second", "must be >= 0")
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
