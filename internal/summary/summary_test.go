package summary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fpl-stats-mcp/internal/fetch"
)

func fx(id int, event int, kickoff string, h, a int, hs, as int, finished bool) fetch.Fixture {
	f := fetch.Fixture{ID: id, Event: &event, TeamH: h, TeamA: a, Finished: finished}
	if kickoff != "" {
		f.KickoffTime = &kickoff
	}
	if finished {
		f.TeamHScore = &hs
		f.TeamAScore = &as
	}
	return f
}

func TestComputeTeamForm(t *testing.T) {
	fixtures := []fetch.Fixture{
		fx(1, 1, "2026-08-15T14:00:00Z", 1, 2, 2, 0, true), // win
		fx(2, 2, "2026-08-22T14:00:00Z", 3, 1, 1, 1, true), // away draw
		fx(3, 3, "2026-08-29T14:00:00Z", 1, 4, 0, 3, true), // loss
		fx(4, 4, "2026-09-05T14:00:00Z", 1, 5, 0, 0, false),
		fx(5, 1, "2026-08-15T14:00:00Z", 2, 3, 4, 0, true), // other teams
	}

	form := ComputeTeamForm(fixtures, 1, 5)
	require.Equal(t, 3, form.Games)
	require.Equal(t, form.Games, form.Wins+form.Draws+form.Losses)
	require.Equal(t, TeamForm{
		Games: 3, Wins: 1, Draws: 1, Losses: 1,
		GoalsScored: 3, GoalsConceded: 4, Points: 4,
	}, form)
}

func TestComputeTeamFormTakesMostRecent(t *testing.T) {
	fixtures := []fetch.Fixture{
		fx(1, 1, "2026-08-15T14:00:00Z", 1, 2, 0, 1, true), // oldest: loss
		fx(2, 2, "2026-08-22T14:00:00Z", 1, 3, 2, 0, true), // win
		fx(3, 3, "2026-08-29T14:00:00Z", 1, 4, 3, 0, true), // newest: win
	}

	form := ComputeTeamForm(fixtures, 1, 2)
	require.Equal(t, 2, form.Games)
	require.Equal(t, 2, form.Wins)
	require.Equal(t, 0, form.Losses)
}

func TestComputeTeamFormEventFallback(t *testing.T) {
	// No fixture carries a kickoff: ordering falls back to gameweek.
	fixtures := []fetch.Fixture{
		fx(1, 1, "", 1, 2, 0, 2, true),
		fx(2, 3, "", 1, 3, 1, 0, true),
	}

	form := ComputeTeamForm(fixtures, 1, 1)
	require.Equal(t, TeamForm{Games: 1, Wins: 1, GoalsScored: 1, Points: 3}, form)
}

func TestComputeTeamFormNoCompletedGames(t *testing.T) {
	fixtures := []fetch.Fixture{
		fx(1, 1, "2026-08-15T14:00:00Z", 1, 2, 0, 0, false),
	}
	require.Equal(t, TeamForm{}, ComputeTeamForm(fixtures, 1, 5))
}

func TestTailRounds(t *testing.T) {
	history := []fetch.HistoryEntry{
		{Round: 1, TotalPoints: 2},
		{Round: 2, TotalPoints: 9},
		{Round: 3, TotalPoints: 6},
	}

	t.Run("TailTake", func(t *testing.T) {
		out := TailRounds(history, 2)
		require.Len(t, out, 2)
		require.Equal(t, 2, out[0].Round)
		require.Equal(t, 3, out[1].Round)
	})

	t.Run("NonPositiveReturnsAll", func(t *testing.T) {
		require.Len(t, TailRounds(history, 0), 3)
		require.Len(t, TailRounds(history, -1), 3)
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		shuffled := []fetch.HistoryEntry{{Round: 3}, {Round: 1}, {Round: 2}}
		_ = TailRounds(shuffled, 1)
		require.Equal(t, 3, shuffled[0].Round)
	})
}

func TestOwnership(t *testing.T) {
	bs := &fetch.Bootstrap{
		Teams: []fetch.Team{{ID: 12, Name: "Liverpool"}, {ID: 13, Name: "Man City"}},
		Elements: []fetch.Element{
			{ID: 1, FirstName: "Mohamed", SecondName: "Salah", Team: 12, ElementType: 3, NowCost: 132},
			{ID: 2, FirstName: "Erling", SecondName: "Haaland", Team: 13, ElementType: 4, NowCost: 151},
			{ID: 3, FirstName: "Virgil", SecondName: "van Dijk", Team: 12, ElementType: 2, NowCost: 60},
		},
		ElementTypes: []fetch.ElementType{
			{ID: 2, SingularNameShort: "DEF"},
			{ID: 3, SingularNameShort: "MID"},
			{ID: 4, SingularNameShort: "FWD"},
		},
	}
	picks := map[string][]fetch.Pick{
		"FPL Zeta":  {{Element: 1}, {Element: 2}},
		"FPL Alpha": {{Element: 1}, {Element: 3}},
	}

	rows := Ownership(picks, bs)
	require.Len(t, rows, 3)

	require.Equal(t, "Mohamed Salah", rows[0].PlayerName)
	require.Equal(t, 2, rows[0].Count)
	require.Equal(t, []string{"FPL Alpha", "FPL Zeta"}, rows[0].OwnedBy)
	require.Equal(t, "Liverpool", rows[0].Team)
	require.Equal(t, 13.2, rows[0].PriceM)

	// Equal counts rank alphabetically by player name.
	require.Equal(t, "Erling Haaland", rows[1].PlayerName)
	require.Equal(t, "Virgil van Dijk", rows[2].PlayerName)
}

func TestOwnershipSkipsUnknownElements(t *testing.T) {
	bs := &fetch.Bootstrap{
		Elements: []fetch.Element{{ID: 1, FirstName: "A", SecondName: "B"}},
	}
	rows := Ownership(map[string][]fetch.Pick{"X": {{Element: 1}, {Element: 999}}}, bs)
	require.Len(t, rows, 1)
}
