package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/linkcheck/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "linkcheck.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	p := writeConfig(t, "linkcheck:\n  probe:\n    timeout: 3s\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, 3*time.Second, cfg.Probe.Timeout)
	require.Equal(t, "linkcheck/dev", cfg.Probe.UserAgent)
	require.Equal(t, int64(256*1024), cfg.Probe.MaxBodyBytes)
	require.Equal(t, "exports", cfg.Paths.ExportsDir)
	require.Equal(t, "runs", cfg.Paths.RunsDir)
	require.False(t, cfg.Runs.Save)
}

func TestLoad_FullFile(t *testing.T) {
	p := writeConfig(t, `linkcheck:
  probe:
    timeout: 1500ms
    user_agent: probe/1.0
    max_body_bytes: 1024
    rate_per_second: 2.5
    detailed_reasons: true
  paths:
    exports_dir: out
    runs_dir: history
  runs:
    save: true
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, 1500*time.Millisecond, cfg.Probe.Timeout)
	require.Equal(t, "probe/1.0", cfg.Probe.UserAgent)
	require.Equal(t, int64(1024), cfg.Probe.MaxBodyBytes)
	require.Equal(t, 2.5, cfg.Probe.RatePerSecond)
	require.True(t, cfg.Probe.DetailedReasons)
	require.Equal(t, "out", cfg.Paths.ExportsDir)
	require.Equal(t, "history", cfg.Paths.RunsDir)
	require.True(t, cfg.Runs.Save)
}

func TestLoad_MissingFileReturnsDefaultsAndNotFound(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "linkcheck.yaml"))
	require.True(t, domain.IsKind(err, domain.KindNotFound), "got %v", err)
	require.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	p := writeConfig(t, "linkcheck: [\n")

	_, err := Load(p)
	require.True(t, domain.IsKind(err, domain.KindInvalidConfig), "got %v", err)
}

func TestMapConfig_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"probe.timeout":         "linkcheck:\n  probe:\n    timeout: soon\n",
		"probe.max_body_bytes":  "linkcheck:\n  probe:\n    max_body_bytes: 0\n",
		"probe.rate_per_second": "linkcheck:\n  probe:\n    rate_per_second: -1\n",
	}
	for field, content := range cases {
		_, err := Load(writeConfig(t, content))
		require.Error(t, err, field)
		require.True(t, domain.IsKind(err, domain.KindInvalidConfig), "%s: %v", field, err)
		require.True(t, strings.Contains(err.Error(), field), "%s: %v", field, err)
	}
}

func TestApplyEnv_OverridesOnlySetVars(t *testing.T) {
	t.Setenv("LINKCHECK_TIMEOUT", "2s")
	t.Setenv("LINKCHECK_SAVE_RUNS", "true")
	t.Setenv("LINKCHECK_RATE", "4")

	base := domain.DefaultConfig()
	base.Paths.ExportsDir = "custom"

	cfg, err := ApplyEnv(base)
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, cfg.Probe.Timeout)
	require.True(t, cfg.Runs.Save)
	require.Equal(t, 4.0, cfg.Probe.RatePerSecond)
	require.Equal(t, "custom", cfg.Paths.ExportsDir)
	require.Equal(t, "linkcheck/dev", cfg.Probe.UserAgent)
}

func TestApplyEnv_RejectsUnparsableValue(t *testing.T) {
	t.Setenv("LINKCHECK_TIMEOUT", "forever")

	_, err := ApplyEnv(domain.DefaultConfig())
	require.True(t, domain.IsKind(err, domain.KindInvalidConfig), "got %v", err)
}
