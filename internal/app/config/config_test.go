package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
app:
  name: dashboard
  env: dev
  log_level: debug
server:
  port: "9090"
mysql:
  dsn: "root:root@tcp(127.0.0.1:3306)/shopos?parseTime=True"
dashboard:
  overview_recent_limit: 3
  recent_limit: 20
  top_limit: 15
  revenue_days: 7
  metric_timeout: 500ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dashboard", cfg.App.Name)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Dashboard.OverviewRecentLimit)
	assert.Equal(t, 20, cfg.Dashboard.RecentLimit)
	assert.Equal(t, 15, cfg.Dashboard.TopLimit)
	assert.Equal(t, 7, cfg.Dashboard.RevenueDays)
	assert.Equal(t, 500*time.Millisecond, cfg.Dashboard.MetricTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  name: dashboard
mysql:
  dsn: "root:root@tcp(127.0.0.1:3306)/shopos"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Dashboard.OverviewRecentLimit)
	assert.Equal(t, 10, cfg.Dashboard.RecentLimit)
	assert.Equal(t, 10, cfg.Dashboard.TopLimit)
	assert.Equal(t, 30, cfg.Dashboard.RevenueDays)
	assert.Equal(t, 3*time.Second, cfg.Dashboard.MetricTimeout)
}

func TestValidateRequiresDSN(t *testing.T) {
	path := writeConfig(t, `
app:
  name: dashboard
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}
