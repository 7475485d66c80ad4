package main

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"fpl-stats-mcp/internal/query"
	"fpl-stats-mcp/internal/table"
)

// QueryFPLDataArgs is the input schema for the query_fpl_data tool.
type QueryFPLDataArgs struct {
	Entity    string         `json:"entity" jsonschema:"Dataset to query: players, fixtures or teams"`
	Filters   map[string]any `json:"filters,omitempty" jsonschema:"Column filters: raw value for equality, or {op: value} with op one of eq, lt, lte, gt, gte, contains"`
	SortBy    string         `json:"sort_by,omitempty" jsonschema:"Column to sort by (entity default when omitted)"`
	SortOrder string         `json:"sort_order,omitempty" jsonschema:"asc or desc (default desc)"`
	TopN      *int           `json:"top_n,omitempty" jsonschema:"Max rows to return (default 20, negative for no limit)"`
}

var supportedEntities = []string{"players", "fixtures", "teams"}

// buildQueryData materializes the requested entity table and runs the
// filter/sort/project pipeline over it.
func buildQueryData(ctx context.Context, app *App, args QueryFPLDataArgs) (string, error) {
	var tbl *table.Table
	entity := strings.ToLower(strings.TrimSpace(args.Entity))
	switch entity {
	case "players":
		bs, err := app.Client.Bootstrap(ctx, false)
		if err != nil {
			return "", err
		}
		tbl = table.Players(bs)
	case "teams":
		bs, err := app.Client.Bootstrap(ctx, false)
		if err != nil {
			return "", err
		}
		tbl = table.Teams(bs)
	case "fixtures":
		bs, err := app.Client.Bootstrap(ctx, false)
		if err != nil {
			return "", err
		}
		fixtures, err := app.Client.Fixtures(ctx, false)
		if err != nil {
			return "", err
		}
		tbl = table.Fixtures(fixtures, bs)
	default:
		return "", &query.UnsupportedEntityError{Entity: args.Entity, Valid: supportedEntities}
	}

	conds, err := query.ParseFilters(args.Filters)
	if err != nil {
		return "", err
	}
	result, err := query.Run(tbl, query.Options{
		Filters:   conds,
		SortBy:    args.SortBy,
		SortOrder: args.SortOrder,
		TopN:      args.TopN,
		OnDropColumn: func(column string) {
			app.Logger.Warn("display column missing from table",
				zap.String("entity", entity), zap.String("column", column))
		},
	})
	if err != nil {
		return "", err
	}
	return query.Format(result), nil
}

func queryDataHandler(app *App) func(context.Context, *mcp.CallToolRequest, QueryFPLDataArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args QueryFPLDataArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildQueryData(ctx, app, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolText(out), nil, nil
	}
}
