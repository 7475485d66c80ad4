package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"fpl-stats-mcp/internal/fetch"
	"fpl-stats-mcp/internal/table"
)

// TeamPicksArgs is the input schema for the get_team_picks tool.
type TeamPicksArgs struct {
	GW int `json:"gw" jsonschema:"Gameweek number (1-38, required)"`
}

type pickRow struct {
	typeID   int
	Position string
	Player   string
	Team     string
	PriceM   float64
	Points   int
	Mult     int
	CapFlag  string
}

// buildTeamPicks lists the preconfigured manager's squad for one
// gameweek, ordered GKP/DEF/MID/FWD with the captain's multiplier
// breaking ties inside a position.
func buildTeamPicks(ctx context.Context, app *App, args TeamPicksArgs) (string, error) {
	if args.GW <= 0 {
		return "", fmt.Errorf("gw is required")
	}
	picks, err := app.Client.Picks(ctx, app.TeamID, args.GW)
	if err != nil {
		return "", err
	}
	bs, err := app.Client.Bootstrap(ctx, false)
	if err != nil {
		return "", err
	}
	elements := make(map[int]fetch.Element, len(bs.Elements))
	for _, e := range bs.Elements {
		elements[e.ID] = e
	}
	teamNames := make(map[int]string, len(bs.Teams))
	for _, t := range bs.Teams {
		teamNames[t.ID] = t.Name
	}
	positions := make(map[int]string, len(bs.ElementTypes))
	for _, et := range bs.ElementTypes {
		positions[et.ID] = et.SingularNameShort
	}

	rows := make([]pickRow, 0, len(picks.Picks))
	for _, p := range picks.Picks {
		e, ok := elements[p.Element]
		if !ok {
			continue
		}
		flag := ""
		if p.IsCaptain {
			flag = "C"
		} else if p.IsViceCaptain {
			flag = "V"
		}
		rows = append(rows, pickRow{
			typeID:   e.ElementType,
			Position: positions[e.ElementType],
			Player:   table.FullName(e),
			Team:     teamNames[e.Team],
			PriceM:   float64(e.NowCost) / 10.0,
			Points:   e.TotalPoints,
			Mult:     p.Multiplier,
			CapFlag:  flag,
		})
	}
	if len(rows) == 0 {
		return fmt.Sprintf("No picks found for team %d in gameweek %d.", app.TeamID, args.GW), nil
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].typeID != rows[j].typeID {
			return rows[i].typeID < rows[j].typeID
		}
		return rows[i].Mult > rows[j].Mult
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Team picks for GW%d (team %d):\n", args.GW, app.TeamID)
	b.WriteString("Position  Player                        Team               Price  Pts  Mult  C/V\n")
	b.WriteString("-----------------------------------------------------------------------------\n")
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-8s  %-28s  %-18s %-5.1f  %-4d %-4d  %s",
			r.Position, r.Player, r.Team, r.PriceM, r.Points, r.Mult, r.CapFlag)
	}
	return b.String(), nil
}

func teamPicksHandler(app *App) func(context.Context, *mcp.CallToolRequest, TeamPicksArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args TeamPicksArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildTeamPicks(ctx, app, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolText(out), nil, nil
	}
}
