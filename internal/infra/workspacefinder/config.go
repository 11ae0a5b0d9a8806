package workspacefinder

import (
	"path/filepath"

	"github.com/aalvaropc/linkcheck/internal/domain"
	"github.com/aalvaropc/linkcheck/internal/infra/config"
)

// LoadConfig loads linkcheck.yaml from the workspace root, applies defaults
// and then LINKCHECK_* environment overrides.
//
// A missing file is reported as KindNotFound together with a usable config
// (defaults plus environment), so callers may run without a workspace.
func LoadConfig(root string) (domain.Config, error) {
	cfg, loadErr := config.Load(filepath.Join(root, ConfigFile))
	if loadErr != nil && !domain.IsKind(loadErr, domain.KindNotFound) {
		return cfg, loadErr
	}

	cfg, err := config.ApplyEnv(cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, loadErr
}
