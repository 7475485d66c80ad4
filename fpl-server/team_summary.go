package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"fpl-stats-mcp/internal/summary"
	"fpl-stats-mcp/internal/table"
)

// TeamSummaryArgs is the input schema for the get_team_summary tool.
type TeamSummaryArgs struct {
	Team       string `json:"team" jsonschema:"Team name, short name or id (partial names allowed)"`
	LastNGames int    `json:"last_n_games,omitempty" jsonschema:"Number of completed games to include (default 5)"`
}

// buildTeamSummary resolves the team and reports its recent form. An
// unresolved name is a routine outcome and yields a not-found message,
// not an error.
func buildTeamSummary(ctx context.Context, app *App, args TeamSummaryArgs) (string, error) {
	bs, err := app.Client.Bootstrap(ctx, false)
	if err != nil {
		return "", err
	}
	team, ok := table.ResolveTeam(bs, args.Team)
	if !ok {
		return fmt.Sprintf("Team %q not found.", args.Team), nil
	}

	lastN := args.LastNGames
	if lastN <= 0 {
		lastN = 5
	}
	fixtures, err := app.Client.Fixtures(ctx, false)
	if err != nil {
		return "", err
	}
	form := summary.ComputeTeamForm(fixtures, team.ID, lastN)

	return fmt.Sprintf(
		"Summary for %s (last %d completed games):\n"+
			"Wins: %d, Draws: %d, Losses: %d\n"+
			"Goals scored: %d, Goals conceded: %d\n"+
			"Total points: %d",
		team.Name, form.Games,
		form.Wins, form.Draws, form.Losses,
		form.GoalsScored, form.GoalsConceded,
		form.Points,
	), nil
}

func teamSummaryHandler(app *App) func(context.Context, *mcp.CallToolRequest, TeamSummaryArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args TeamSummaryArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildTeamSummary(ctx, app, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolText(out), nil, nil
	}
}
