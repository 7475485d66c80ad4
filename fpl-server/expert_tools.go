package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"fpl-stats-mcp/internal/experts"
	"fpl-stats-mcp/internal/fetch"
	"fpl-stats-mcp/internal/summary"
	"fpl-stats-mcp/internal/table"
)

// ExpertTeamsArgs is the input schema for get_expert_teams_summary.
type ExpertTeamsArgs struct {
	GW      *int     `json:"gw,omitempty" jsonschema:"Gameweek to inspect (current when omitted)"`
	Experts []string `json:"experts,omitempty" jsonschema:"Expert names or entry ids to include (all when omitted)"`
}

// buildExpertTeams cross-tabulates which players the reference experts
// own in a gameweek. A failed fetch for one expert excludes that
// expert from the run instead of aborting the whole batch.
func buildExpertTeams(ctx context.Context, app *App, args ExpertTeamsArgs) (string, error) {
	bs, err := app.Client.Bootstrap(ctx, false)
	if err != nil {
		return "", err
	}
	gw := 0
	if args.GW != nil {
		gw = *args.GW
	}
	if gw <= 0 {
		gw = currentGameweek(bs)
	}

	var selected []experts.Entry
	if len(args.Experts) > 0 {
		for _, q := range args.Experts {
			if entry, ok := app.Roster.Resolve(q); ok {
				selected = append(selected, entry)
			}
		}
	} else {
		selected = app.Roster
	}
	if len(selected) == 0 {
		return "No experts found. Please provide valid names or IDs.", nil
	}

	picksByExpert := make(map[string][]fetch.Pick, len(selected))
	for _, expert := range selected {
		picks, err := app.Client.Picks(ctx, expert.EntryID, gw)
		if err != nil {
			// partial results beat total failure here
			app.Logger.Warn("expert picks fetch failed",
				zap.String("expert", expert.Name), zap.Int("gw", gw), zap.Error(err))
			continue
		}
		picksByExpert[expert.Name] = picks.Picks
	}
	if len(picksByExpert) == 0 {
		return fmt.Sprintf("No picks found for the selected experts in gameweek %d.", gw), nil
	}

	rows := summary.Ownership(picksByExpert, bs)

	var b strings.Builder
	fmt.Fprintf(&b, "Expert ownership summary for GW%d:\n", gw)
	fmt.Fprintf(&b, "%-25s %-20s %-4s %-5s Owned by\n", "Player", "Team", "Pos", "Price")
	b.WriteString(strings.Repeat("-", 80))
	for _, r := range rows {
		fmt.Fprintf(&b, "\n%-25s %-20s %-4s %-5.1f %s",
			r.PlayerName, r.Team, r.Position, r.PriceM, strings.Join(r.OwnedBy, ", "))
	}
	return b.String(), nil
}

// ExpertTransfersArgs is the input schema for get_expert_transfers.
type ExpertTransfersArgs struct {
	Expert string `json:"expert" jsonschema:"Expert name or entry id (required)"`
	LastN  int    `json:"last_n,omitempty" jsonschema:"Most recent transfers to show (default 5)"`
}

// buildExpertTransfers reports an expert's latest transfers with the
// incoming and outgoing player names and prices.
func buildExpertTransfers(ctx context.Context, app *App, args ExpertTransfersArgs) (string, error) {
	entry, ok := app.Roster.Resolve(args.Expert)
	if !ok {
		return fmt.Sprintf("Expert %q not found.", args.Expert), nil
	}
	lastN := args.LastN
	if lastN <= 0 {
		lastN = 5
	}

	transfers, err := app.Client.Transfers(ctx, entry.EntryID)
	if err != nil {
		return "", err
	}
	if len(transfers) == 0 {
		return fmt.Sprintf("No transfers recorded for %s this season.", entry.Name), nil
	}

	bs, err := app.Client.Bootstrap(ctx, false)
	if err != nil {
		return "", err
	}
	elements := make(map[int]fetch.Element, len(bs.Elements))
	for _, e := range bs.Elements {
		elements[e.ID] = e
	}

	sort.SliceStable(transfers, func(i, j int) bool {
		return transfers[i].Time > transfers[j].Time
	})
	if len(transfers) > lastN {
		transfers = transfers[:lastN]
	}

	lines := []string{fmt.Sprintf("Latest %d transfers for %s:", len(transfers), entry.Name)}
	for _, tr := range transfers {
		inName, inPrice := transferPlayer(elements, tr.ElementIn)
		outName, outPrice := transferPlayer(elements, tr.ElementOut)
		lines = append(lines, fmt.Sprintf("GW%d: In %s (£%.1fm), Out %s (£%.1fm)",
			tr.Event, inName, inPrice, outName, outPrice))
	}
	return strings.Join(lines, "\n"), nil
}

func transferPlayer(elements map[int]fetch.Element, id int) (string, float64) {
	e, ok := elements[id]
	if !ok {
		return fmt.Sprintf("%d", id), 0
	}
	return table.FullName(e), float64(e.NowCost) / 10.0
}

// ManagerHistoryArgs is the input schema for get_manager_history.
type ManagerHistoryArgs struct {
	Manager string `json:"manager" jsonschema:"Manager name or entry id (required)"`
}

// buildManagerHistory summarises past seasons, chip usage and the
// current season's scores for a manager.
func buildManagerHistory(ctx context.Context, app *App, args ManagerHistoryArgs) (string, error) {
	entry, ok := app.Roster.Resolve(args.Manager)
	if !ok {
		return fmt.Sprintf("Manager %q not found.", args.Manager), nil
	}

	history, err := app.Client.History(ctx, entry.EntryID)
	if err != nil {
		return "", err
	}

	lines := []string{fmt.Sprintf("History for %s (ID %d):", entry.Name, entry.EntryID)}
	if len(history.Past) > 0 {
		lines = append(lines, "Past seasons:")
		for _, season := range history.Past {
			lines = append(lines, fmt.Sprintf("- %s: %d pts, Rank %d",
				season.SeasonName, season.TotalPoints, season.Rank))
		}
	}
	if len(history.Chips) > 0 {
		used := make([]string, 0, len(history.Chips))
		for _, c := range history.Chips {
			used = append(used, fmt.Sprintf("GW%d: %s", c.Event, chipTitle(c.Name)))
		}
		lines = append(lines, "Chips used this season: "+strings.Join(used, ", "))
	}
	if len(history.Current) > 0 {
		total := 0
		highGW, highPts := 0, -1
		for _, ev := range history.Current {
			total += ev.Points
			if ev.Points > highPts {
				highPts = ev.Points
				highGW = ev.Event
			}
		}
		avg := float64(total) / float64(len(history.Current))
		lines = append(lines, fmt.Sprintf(
			"Current season: %d gameweeks, total %d pts, average %.1f pts, highest GW%d with %d pts.",
			len(history.Current), total, avg, highGW, highPts))
	}
	return strings.Join(lines, "\n"), nil
}

// chipTitle turns an API chip name like "bench_boost" into "Bench Boost".
func chipTitle(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func expertTeamsHandler(app *App) func(context.Context, *mcp.CallToolRequest, ExpertTeamsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args ExpertTeamsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildExpertTeams(ctx, app, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolText(out), nil, nil
	}
}

func expertTransfersHandler(app *App) func(context.Context, *mcp.CallToolRequest, ExpertTransfersArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args ExpertTransfersArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildExpertTransfers(ctx, app, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolText(out), nil, nil
	}
}

func managerHistoryHandler(app *App) func(context.Context, *mcp.CallToolRequest, ManagerHistoryArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args ManagerHistoryArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildManagerHistory(ctx, app, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolText(out), nil, nil
	}
}
