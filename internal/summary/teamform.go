// Package summary holds the pure aggregation helpers layered on top of
// the fetched FPL data: team form, history slicing and expert
// ownership. Nothing here performs I/O.
package summary

import (
	"sort"
	"time"

	"fpl-stats-mcp/internal/fetch"
	"fpl-stats-mcp/internal/table"
)

// TeamForm aggregates a team's last N completed games using standard
// football scoring (win 3, draw 1, loss 0).
type TeamForm struct {
	Games         int `json:"games"`
	Wins          int `json:"wins"`
	Draws         int `json:"draws"`
	Losses        int `json:"losses"`
	GoalsScored   int `json:"goals_scored"`
	GoalsConceded int `json:"goals_conceded"`
	Points        int `json:"points"`
}

// ComputeTeamForm selects finished fixtures involving teamID, orders
// them most recent first and accumulates results over the first
// lastN. Ordering uses kickoff_time; when no qualifying fixture
// carries a kickoff at all, the gameweek number is used instead. A
// team with no completed fixtures yields an all-zero summary.
func ComputeTeamForm(fixtures []fetch.Fixture, teamID, lastN int) TeamForm {
	var played []fetch.Fixture
	anyKickoff := false
	for _, f := range fixtures {
		if !f.Finished || (f.TeamH != teamID && f.TeamA != teamID) {
			continue
		}
		played = append(played, f)
		if kickoff(f) != nil {
			anyKickoff = true
		}
	}

	if anyKickoff {
		sort.SliceStable(played, func(i, j int) bool {
			a, b := kickoff(played[i]), kickoff(played[j])
			if a == nil || b == nil {
				// fixtures without a kickoff go last
				return a != nil && b == nil
			}
			return a.After(*b)
		})
	} else {
		sort.SliceStable(played, func(i, j int) bool {
			return eventOf(played[i]) > eventOf(played[j])
		})
	}

	if lastN >= 0 && len(played) > lastN {
		played = played[:lastN]
	}

	var form TeamForm
	for _, f := range played {
		goalsFor, goalsAgainst := 0, 0
		if f.TeamH == teamID {
			goalsFor, goalsAgainst = score(f.TeamHScore), score(f.TeamAScore)
		} else {
			goalsFor, goalsAgainst = score(f.TeamAScore), score(f.TeamHScore)
		}
		form.Games++
		form.GoalsScored += goalsFor
		form.GoalsConceded += goalsAgainst
		switch {
		case goalsFor > goalsAgainst:
			form.Wins++
			form.Points += 3
		case goalsFor == goalsAgainst:
			form.Draws++
			form.Points++
		default:
			form.Losses++
		}
	}
	return form
}

func kickoff(f fetch.Fixture) *time.Time {
	v := table.ParseKickoff(f.KickoffTime)
	if v == nil {
		return nil
	}
	ts := v.(time.Time)
	return &ts
}

func eventOf(f fetch.Fixture) int {
	if f.Event == nil {
		return 0
	}
	return *f.Event
}

func score(s *int) int {
	if s == nil {
		return 0
	}
	return *s
}
