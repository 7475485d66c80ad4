package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"fpl-stats-mcp/internal/experts"
	"fpl-stats-mcp/internal/fetch"
	"fpl-stats-mcp/internal/transcript"
)

// App bundles the collaborators every tool handler needs.
type App struct {
	Client *fetch.Client
	Video  *transcript.Client
	Roster experts.Roster
	TeamID int
	Logger *zap.Logger
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(ctx context.Context, req *mcp.CallToolRequest, args T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

func toolText(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: s},
		},
	}
}

func toolMarshal(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolText(string(b)), nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}

// currentGameweek reads the active gameweek from the bootstrap events:
// the current event, else the next one, else 1 (off-season).
func currentGameweek(bs *fetch.Bootstrap) int {
	for _, ev := range bs.Events {
		if ev.IsCurrent {
			return ev.ID
		}
	}
	for _, ev := range bs.Events {
		if ev.IsNext {
			return ev.ID
		}
	}
	return 1
}
