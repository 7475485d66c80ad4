package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"fpl-stats-mcp/internal/fetch"
	"fpl-stats-mcp/internal/query"
	"fpl-stats-mcp/internal/summary"
	"fpl-stats-mcp/internal/table"
)

// PlayerHistoryArgs is the input schema for the get_player_history tool.
type PlayerHistoryArgs struct {
	Player     string `json:"player" jsonschema:"Player name or element id (partial names allowed)"`
	LastNGames *int   `json:"last_n_games,omitempty" jsonschema:"Most recent gameweeks to include (all when omitted)"`
}

// buildPlayerHistory returns a player's gameweek rows in chronological
// order, optionally clipped to the latest N via a tail-take.
func buildPlayerHistory(ctx context.Context, app *App, args PlayerHistoryArgs) (string, error) {
	bs, err := app.Client.Bootstrap(ctx, false)
	if err != nil {
		return "", err
	}
	player, ok := table.ResolvePlayer(bs, args.Player)
	if !ok {
		return fmt.Sprintf("Player %q not found.", args.Player), nil
	}

	es, err := app.Client.ElementSummary(ctx, player.ID)
	if err != nil {
		return "", err
	}
	if len(es.History) == 0 {
		return fmt.Sprintf("No gameweek history available for player %q.", args.Player), nil
	}

	lastN := 0
	if args.LastNGames != nil {
		lastN = *args.LastNGames
	}
	rows := summary.TailRounds(es.History, lastN)

	tbl := table.PlayerHistory(&fetch.ElementSummary{History: rows}, bs)
	noLimit := -1
	result, err := query.Run(tbl, query.Options{TopN: &noLimit})
	if err != nil {
		return "", err
	}
	return query.Format(result), nil
}

func playerHistoryHandler(app *App) func(context.Context, *mcp.CallToolRequest, PlayerHistoryArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args PlayerHistoryArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildPlayerHistory(ctx, app, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolText(out), nil, nil
	}
}
