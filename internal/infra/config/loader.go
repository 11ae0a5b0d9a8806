package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/linkcheck/internal/domain"
)

// Load reads linkcheck.yaml at path. On any error the returned Config is
// still usable (defaults).
func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	cfg, err := MapConfig(path, dto)
	if err != nil {
		return domain.DefaultConfig(), err
	}
	return cfg, nil
}
