package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"fpl-stats-mcp/internal/fetch"
)

// GameStatusArgs is the input schema for get_game_status (no parameters).
type GameStatusArgs struct{}

// FixtureProgress tracks how many fixtures have started/finished in a GW.
type FixtureProgress struct {
	Total    int `json:"total"`
	Started  int `json:"started"`
	Finished int `json:"finished"`
}

// GameStatusResult is the output of the get_game_status tool.
type GameStatusResult struct {
	CurrentGW          int             `json:"current_gw"`
	CurrentGWFinished  bool            `json:"current_gw_finished"`
	NextGW             int             `json:"next_gw"`
	NextDeadline       string          `json:"next_deadline,omitempty"`
	NextGWFirstKickoff string          `json:"next_gw_first_kickoff,omitempty"`
	CurrentGWFixtures  FixtureProgress `json:"current_gw_fixtures"`
	PointsStatus       string          `json:"points_status"`
}

// fixtureProgress counts started/finished fixtures scheduled in a GW.
func fixtureProgress(fixtures []fetch.Fixture, gw int) FixtureProgress {
	var progress FixtureProgress
	for _, f := range fixtures {
		if f.Event == nil || *f.Event != gw {
			continue
		}
		progress.Total++
		if f.Started {
			progress.Started++
		}
		if f.Finished {
			progress.Finished++
		}
	}
	return progress
}

// derivePointsStatus determines whether points are final, live, or pending.
func derivePointsStatus(finished bool, fixtures FixtureProgress) string {
	if finished {
		return "final"
	}
	if fixtures.Started > 0 {
		return "live"
	}
	return "pending"
}

// earliestKickoff finds the earliest kickoff_time among a GW's fixtures.
// RFC 3339 timestamps compare correctly as strings.
func earliestKickoff(fixtures []fetch.Fixture, gw int) string {
	earliest := ""
	for _, f := range fixtures {
		if f.Event == nil || *f.Event != gw || f.KickoffTime == nil {
			continue
		}
		if earliest == "" || *f.KickoffTime < earliest {
			earliest = *f.KickoffTime
		}
	}
	return earliest
}

// buildGameStatus assembles the season-clock snapshot: which gameweek
// is live, how far through its fixtures we are, and the next deadline.
func buildGameStatus(ctx context.Context, app *App) (*GameStatusResult, error) {
	bs, err := app.Client.Bootstrap(ctx, false)
	if err != nil {
		return nil, err
	}
	fixtures, err := app.Client.Fixtures(ctx, false)
	if err != nil {
		return nil, err
	}

	result := &GameStatusResult{CurrentGW: currentGameweek(bs)}
	for _, ev := range bs.Events {
		if ev.ID == result.CurrentGW {
			result.CurrentGWFinished = ev.Finished
		}
		if ev.IsNext {
			result.NextGW = ev.ID
			result.NextDeadline = ev.DeadlineTime
		}
	}

	if result.NextGW > 0 {
		result.NextGWFirstKickoff = earliestKickoff(fixtures, result.NextGW)
	}
	result.CurrentGWFixtures = fixtureProgress(fixtures, result.CurrentGW)
	result.PointsStatus = derivePointsStatus(result.CurrentGWFinished, result.CurrentGWFixtures)

	return result, nil
}

// gameStatusHandler is the MCP tool handler for get_game_status.
func gameStatusHandler(app *App) func(context.Context, *mcp.CallToolRequest, GameStatusArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args GameStatusArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildGameStatus(ctx, app)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
