package main

import (
	"crypto/subtle"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fpl-stats-mcp/internal/config"
	"fpl-stats-mcp/internal/experts"
	"fpl-stats-mcp/internal/fetch"
	"fpl-stats-mcp/internal/store"
	"fpl-stats-mcp/internal/transcript"
)

func main() {
	var (
		addr        = flag.String("addr", ":8080", "HTTP listen address")
		mcpPath     = flag.String("path", "/mcp", "HTTP path for MCP endpoint")
		dataDir     = flag.String("data-dir", "", "cache directory (overrides FPL_DATA_DIR)")
		requireAuth = flag.Bool("require-auth", true, "require API key auth via FPL_MCP_API_KEY")
		authHeader  = flag.String("auth-header", "X-API-Key", "HTTP header to read API key from")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	client := fetch.NewClient(store.NewJSONStore(cfg.DataDir), logger)
	if cfg.BaseURL != "" {
		client.BaseURL = cfg.BaseURL
	}

	roster := experts.Default()
	if cfg.ExpertsFile != "" {
		roster, err = experts.Load(cfg.ExpertsFile)
		if err != nil {
			logger.Fatal("load experts roster", zap.String("path", cfg.ExpertsFile), zap.Error(err))
		}
	}

	app := &App{
		Client: client,
		Video:  transcript.NewClient(logger),
		Roster: roster,
		TeamID: cfg.TeamID,
		Logger: logger,
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fpl-stats-mcp",
			Version: "0.1.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 16)

	addTool(server, &registry, &mcp.Tool{
		Name:        "query_fpl_data",
		Description: "Filter, sort, and limit FPL players, teams, or fixtures",
	}, queryDataHandler(app))

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_team_summary",
		Description: "Win/draw/loss and goals record for a Premier League team's recent games",
	}, teamSummaryHandler(app))

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_player_history",
		Description: "Per-gameweek stat lines for a player this season",
	}, playerHistoryHandler(app))

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_team_picks",
		Description: "Squad picks for the configured FPL manager in a gameweek",
	}, teamPicksHandler(app))

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_expert_teams_summary",
		Description: "Which players well-known FPL managers own in a gameweek",
	}, expertTeamsHandler(app))

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_expert_transfers",
		Description: "Latest transfers made by a well-known FPL manager",
	}, expertTransfersHandler(app))

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_manager_history",
		Description: "Past seasons, chip usage, and current-season scores for a manager",
	}, managerHistoryHandler(app))

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_game_status",
		Description: "Current/next gameweek, fixture progress, and next deadline",
	}, gameStatusHandler(app))

	addTool(server, &registry, &mcp.Tool{
		Name:        "fetch_youtube_transcript",
		Description: "Download the English transcript of a YouTube video",
	}, transcriptHandler(app))

	addTool(server, &registry, &mcp.Tool{
		Name:        "summarise_fpl_youtube",
		Description: "Summarise an FPL YouTube video: key points and players discussed",
	}, videoSummaryHandler(app))

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(cfg.APIKey)
	if *requireAuth && apiKey == "" {
		logger.Fatal("FPL_MCP_API_KEY is required (set env var or run with --require-auth=false)")
	}

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(*authHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/health", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	http.HandleFunc("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))

	http.HandleFunc(*mcpPath, withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	logger.Info("MCP HTTP server listening", zap.String("addr", *addr), zap.String("path", *mcpPath))
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
