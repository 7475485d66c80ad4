package main

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"fpl-stats-mcp/internal/fetch"
	"fpl-stats-mcp/internal/table"
	"fpl-stats-mcp/internal/transcript"
)

const (
	msgInvalidURL    = "Invalid YouTube URL. Please provide a standard watch or youtu.be link."
	msgNoTranscript  = "Transcript not available or failed to download."
	transcriptJoiner = "\n"
)

// TranscriptArgs is the input schema for fetch_youtube_transcript.
type TranscriptArgs struct {
	URL string `json:"url" jsonschema:"YouTube video URL (required)"`
}

// TranscriptResult is the output of fetch_youtube_transcript. VideoID
// is null when the URL could not be parsed.
type TranscriptResult struct {
	Transcript string  `json:"transcript"`
	VideoID    *string `json:"video_id"`
}

// VideoSummaryResult is the output of summarise_fpl_youtube. Players
// and MainPoints are empty (never null) when no transcript exists.
type VideoSummaryResult struct {
	Summary    string                     `json:"summary"`
	Players    []transcript.PlayerMention `json:"players"`
	MainPoints []transcript.Point         `json:"main_points"`
	VideoID    *string                    `json:"video_id"`
}

func buildTranscript(ctx context.Context, app *App, args TranscriptArgs) *TranscriptResult {
	id := transcript.ExtractVideoID(args.URL)
	if id == "" {
		return &TranscriptResult{Transcript: msgInvalidURL}
	}
	lines := app.Video.Fetch(ctx, id)
	if len(lines) == 0 {
		return &TranscriptResult{Transcript: msgNoTranscript, VideoID: &id}
	}
	return &TranscriptResult{Transcript: strings.Join(lines, transcriptJoiner), VideoID: &id}
}

// playerLookup maps lowercase full names to price and position so the
// miner can annotate mentions.
func playerLookup(bs *fetch.Bootstrap) map[string]transcript.PlayerInfo {
	positions := make(map[int]string, len(bs.ElementTypes))
	for _, et := range bs.ElementTypes {
		positions[et.ID] = et.SingularNameShort
	}
	lookup := make(map[string]transcript.PlayerInfo, len(bs.Elements))
	for _, e := range bs.Elements {
		lookup[strings.ToLower(table.FullName(e))] = transcript.PlayerInfo{
			PriceM:   float64(e.NowCost) / 10.0,
			Position: positions[e.ElementType],
		}
	}
	return lookup
}

func buildVideoSummary(ctx context.Context, app *App, args TranscriptArgs) (*VideoSummaryResult, error) {
	result := &VideoSummaryResult{
		Players:    []transcript.PlayerMention{},
		MainPoints: []transcript.Point{},
	}
	id := transcript.ExtractVideoID(args.URL)
	if id == "" {
		result.Summary = msgInvalidURL
		return result, nil
	}
	result.VideoID = &id

	lines := app.Video.Fetch(ctx, id)
	if len(lines) == 0 {
		result.Summary = msgNoTranscript
		return result, nil
	}

	bs, err := app.Client.Bootstrap(ctx, false)
	if err != nil {
		return nil, err
	}

	result.Summary = transcript.Summarize(lines)
	result.Players = transcript.ExtractPlayers(lines, playerLookup(bs))
	result.MainPoints = transcript.MainPoints(lines)
	return result, nil
}

func transcriptHandler(app *App) func(context.Context, *mcp.CallToolRequest, TranscriptArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args TranscriptArgs) (*mcp.CallToolResult, any, error) {
		return toolMarshal(buildTranscript(ctx, app, args))
	}
}

func videoSummaryHandler(app *App) func(context.Context, *mcp.CallToolRequest, TranscriptArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args TranscriptArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildVideoSummary(ctx, app, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
