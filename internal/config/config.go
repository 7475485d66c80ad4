// Package config loads server settings from the environment, with
// optional .env support for local runs.
package config

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

// defaultTeamID is the preconfigured manager inspected by
// get_team_picks when FPL_TEAM_ID is not set.
const defaultTeamID = 4118472

type Config struct {
	DataDir     string // cache directory, one JSON file per dataset
	BaseURL     string // FPL API base
	TeamID      int    // entry id for the team-picks tool
	APIKey      string // optional key for the HTTP auth middleware
	ExpertsFile string // optional YAML roster overriding the built-in experts
	LogLevel    string // zap level name
}

// Load reads configuration from the environment. A .env file in the
// working directory is honoured if present but is never required.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DataDir:     getenv("FPL_DATA_DIR", "data"),
		BaseURL:     getenv("FPL_BASE_URL", "https://fantasy.premierleague.com/api"),
		TeamID:      defaultTeamID,
		APIKey:      os.Getenv("FPL_MCP_API_KEY"),
		ExpertsFile: os.Getenv("FPL_EXPERTS_FILE"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
	}

	if v := os.Getenv("FPL_TEAM_ID"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.Wrap(err, "parse FPL_TEAM_ID")
		}
		cfg.TeamID = id
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
