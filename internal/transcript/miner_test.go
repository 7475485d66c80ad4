package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var testLookup = map[string]PlayerInfo{
	"mohamed salah":  {PriceM: 13.2, Position: "MID"},
	"erling haaland": {PriceM: 15.1, Position: "FWD"},
	"martin ødegaard": {PriceM: 8.4, Position: "MID"},
}

func TestExtractPlayersEmptyTranscript(t *testing.T) {
	require.Empty(t, ExtractPlayers(nil, testLookup))
	require.Empty(t, ExtractPlayers([]string{}, testLookup))
}

func TestExtractPlayersRankedByMentions(t *testing.T) {
	lines := []string{
		"erling haaland is the obvious pick this week",
		"mohamed salah has great fixtures coming up",
		"and mohamed salah is on penalties too",
	}
	out := ExtractPlayers(lines, testLookup)
	require.Len(t, out, 2)
	require.Equal(t, "Mohamed Salah", out[0].PlayerName)
	require.Equal(t, "Erling Haaland", out[1].PlayerName)
}

func TestExtractPlayersReasoningPrefersKeywordLines(t *testing.T) {
	lines := []string{
		"mohamed salah scored again at the weekend",
		"mohamed salah is nailed and on penalties",
	}
	out := ExtractPlayers(lines, testLookup)
	require.Len(t, out, 1)
	require.Contains(t, out[0].Reasoning, "nailed")
	require.NotContains(t, out[0].Reasoning, "weekend")
	require.Contains(t, out[0].Reasoning, "(Price: £13.2m, Position: MID)")
}

func TestExtractPlayersReasoningFallsBackToMentions(t *testing.T) {
	lines := []string{
		"erling haaland scored",
		"erling haaland scored again",
		"erling haaland celebrated",
		"erling haaland went home",
	}
	out := ExtractPlayers(lines, testLookup)
	require.Len(t, out, 1)
	// No reasoning keyword anywhere: first three mentions are used.
	require.Contains(t, out[0].Reasoning, "celebrated")
	require.NotContains(t, out[0].Reasoning, "went home")
}

func TestExtractPlayersNonASCIIName(t *testing.T) {
	out := ExtractPlayers([]string{"martin ødegaard keeps creating chances"}, testLookup)
	require.Len(t, out, 1)
	require.Equal(t, "Martin Ødegaard", out[0].PlayerName)
}

func TestMainPointsFirstMatchWins(t *testing.T) {
	lines := []string{
		"who should captain given these fixtures",
		"the captain pick is tough this week",
		"fixtures for the top six look kind",
	}
	out := MainPoints(lines)
	require.Len(t, out, 2)
	// The first line mentions both captaincy and fixtures but counts
	// only toward Captaincy.
	require.Equal(t, "Captaincy", out[0].Topic)
	require.Equal(t, "Fixtures Analysis", out[1].Topic)
	require.Contains(t, out[0].Summary, "who should captain")
}

func TestMainPointsEmptyTranscript(t *testing.T) {
	require.Empty(t, MainPoints(nil))
}

func TestMainPointsTruncation(t *testing.T) {
	long := "the captain call " + strings.Repeat("really ", 60) + "matters"
	out := MainPoints([]string{long})
	require.Len(t, out, 1)
	require.LessOrEqual(t, len(out[0].Summary), 300)
	require.True(t, strings.HasSuffix(out[0].Summary, "…"))
	// No mid-word cut before the ellipsis.
	require.NotContains(t, strings.TrimSuffix(out[0].Summary, "…"), "reall…")
}

func TestSummarize(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		require.Equal(t, "", Summarize(nil))
	})

	t.Run("PrefersPriorityLines", func(t *testing.T) {
		lines := []string{
			"hello and welcome back",
			"three players I am watching this week",
			"the captain choice is clear",
		}
		out := Summarize(lines)
		require.True(t, strings.HasPrefix(out, "three players"))
		require.Contains(t, out, "captain choice")
	})

	t.Run("FillsFromPlainLines", func(t *testing.T) {
		out := Summarize([]string{"just a chat today", "nothing tactical at all"})
		require.Equal(t, "just a chat today nothing tactical at all", out)
	})

	t.Run("RespectsBudget", func(t *testing.T) {
		lines := make([]string, 20)
		for i := range lines {
			lines[i] = strings.Repeat("captain picks matter a lot here ", 4)
		}
		out := Summarize(lines)
		require.LessOrEqual(t, len(out), 600)
		require.NotEmpty(t, out)
	})
}

func TestExtractVideoID(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":      "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ":                     "dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":        "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42": "dQw4w9WgXcQ",
		"https://example.com/watch?v=dQw4w9WgXcQ":          "",
		"not a url":                                        "",
	}
	for url, want := range cases {
		require.Equal(t, want, ExtractVideoID(url), url)
	}
}
