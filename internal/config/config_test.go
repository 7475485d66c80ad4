package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FPL_DATA_DIR", "")
	t.Setenv("FPL_BASE_URL", "")
	t.Setenv("FPL_TEAM_ID", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, "https://fantasy.premierleague.com/api", cfg.BaseURL)
	require.Equal(t, defaultTeamID, cfg.TeamID)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FPL_DATA_DIR", "/tmp/cache")
	t.Setenv("FPL_TEAM_ID", "12345")
	t.Setenv("FPL_MCP_API_KEY", "secret")
	t.Setenv("FPL_EXPERTS_FILE", "experts.yaml")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/cache", cfg.DataDir)
	require.Equal(t, 12345, cfg.TeamID)
	require.Equal(t, "secret", cfg.APIKey)
	require.Equal(t, "experts.yaml", cfg.ExpertsFile)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadBadTeamID(t *testing.T) {
	t.Setenv("FPL_TEAM_ID", "not-a-number")
	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "FPL_TEAM_ID")
}
