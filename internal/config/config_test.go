package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_DIR", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8501", cfg.Server.Addr)
	assert.Equal(t, SourceCSV, cfg.Data.Source)
	assert.Equal(t, filepath.Join("simulation_results", "fantasy_projections.csv"), cfg.Resolve(cfg.Data.ProjectionsPath))
	assert.Equal(t, filepath.Join("simulation_results", "win_probability.csv"), cfg.Resolve(cfg.Data.WinProbabilityPath))
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_DIR", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: "127.0.0.1:9000"
  read_timeout_seconds: 3
data:
  source: sqlite
  dir: /srv/data
  sqlite_path: ipl.db
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 3, cfg.Server.ReadTimeoutSeconds)
	assert.Equal(t, 30, cfg.Server.WriteTimeoutSeconds)
	assert.Equal(t, SourceSQLite, cfg.Data.Source)
	assert.Equal(t, filepath.Join("/srv/data", "ipl.db"), cfg.Resolve(cfg.Data.SQLitePath))
	assert.Equal(t, "/abs/p.csv", cfg.Resolve("/abs/p.csv"))
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("DATA_DIR", "/mnt/volume")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "/mnt/volume", cfg.Data.Dir)
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("data:\n  source: PARQUET\n"), 0o644))
	_, err := LoadConfig(bad)
	assert.ErrorContains(t, err, "invalid data.source")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("server: [unclosed"), 0o644))
	_, err = LoadConfig(broken)
	assert.ErrorContains(t, err, "parse")
}
