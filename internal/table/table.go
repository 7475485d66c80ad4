// Package table materializes row-oriented views of the FPL reference
// data with foreign keys joined to human-readable names. The resulting
// tables are what the query engine filters and sorts.
package table

import (
	"strconv"
	"time"

	"fpl-stats-mcp/internal/fetch"
)

// Row is one record keyed by column name. Values are ints, float64s,
// strings, bools, time.Time, or nil for missing data.
type Row = map[string]any

// Table is a named, row-oriented view. Columns is the full queryable
// set in order; Display is the subset shown to the caller.
type Table struct {
	Name    string
	Columns []string
	Display []string
	Rows    []Row
}

var playerColumns = []string{
	"id", "first_name", "second_name", "web_name",
	"element_type", "position", "team", "team_name",
	"now_cost", "price_m", "total_points", "minutes",
	"goals_scored", "assists", "yellow_cards", "red_cards",
	"selected_by_percent",
}

// Raw now_cost stays queryable but is hidden from display in favour of
// the derived price_m column.
var playerDisplay = []string{
	"id", "first_name", "second_name", "element_type", "position",
	"team_name", "price_m", "total_points", "minutes",
	"goals_scored", "assists", "yellow_cards", "red_cards",
	"selected_by_percent",
}

var fixtureColumns = []string{
	"id", "event", "kickoff_time", "team_h", "team_a",
	"team_h_name", "team_a_name", "team_h_score", "team_a_score",
	"finished",
}

var fixtureDisplay = []string{
	"id", "event", "kickoff_time", "team_h_name", "team_a_name",
	"team_h_score", "team_a_score", "finished",
}

var teamColumns = []string{
	"id", "name", "short_name",
	"strength_attack_home", "strength_defence_home",
	"strength_attack_away", "strength_defence_away",
}

var historyColumns = []string{
	"round", "opponent_team", "opponent_team_name", "minutes",
	"goals_scored", "assists", "total_points", "goals_conceded",
	"yellow_cards", "red_cards",
}

var historyDisplay = []string{
	"round", "opponent_team_name", "minutes", "goals_scored",
	"assists", "total_points", "goals_conceded", "yellow_cards",
	"red_cards",
}

// Players builds the player table, left-joining team and position
// names. Rows with unmatched foreign keys keep nil name fields rather
// than being dropped.
func Players(bs *fetch.Bootstrap) *Table {
	teamNames := make(map[int]string, len(bs.Teams))
	for _, t := range bs.Teams {
		teamNames[t.ID] = t.Name
	}
	positions := make(map[int]string, len(bs.ElementTypes))
	for _, et := range bs.ElementTypes {
		positions[et.ID] = et.SingularNameShort
	}

	rows := make([]Row, 0, len(bs.Elements))
	for _, e := range bs.Elements {
		row := Row{
			"id":                  e.ID,
			"first_name":          e.FirstName,
			"second_name":         e.SecondName,
			"web_name":            e.WebName,
			"element_type":        e.ElementType,
			"position":            nil,
			"team":                e.Team,
			"team_name":           nil,
			"now_cost":            e.NowCost,
			"price_m":             float64(e.NowCost) / 10.0,
			"total_points":        e.TotalPoints,
			"minutes":             e.Minutes,
			"goals_scored":        e.GoalsScored,
			"assists":             e.Assists,
			"yellow_cards":        e.YellowCards,
			"red_cards":           e.RedCards,
			"selected_by_percent": parsePercent(e.SelectedByPercent),
		}
		if name, ok := teamNames[e.Team]; ok {
			row["team_name"] = name
		}
		if pos, ok := positions[e.ElementType]; ok {
			row["position"] = pos
		}
		rows = append(rows, row)
	}
	return &Table{Name: "players", Columns: playerColumns, Display: playerDisplay, Rows: rows}
}

// Teams builds the static team reference table.
func Teams(bs *fetch.Bootstrap) *Table {
	rows := make([]Row, 0, len(bs.Teams))
	for _, t := range bs.Teams {
		rows = append(rows, Row{
			"id":                    t.ID,
			"name":                  t.Name,
			"short_name":            t.ShortName,
			"strength_attack_home":  t.StrengthAttackHome,
			"strength_defence_home": t.StrengthDefenceHome,
			"strength_attack_away":  t.StrengthAttackAway,
			"strength_defence_away": t.StrengthDefenceAway,
		})
	}
	return &Table{Name: "teams", Columns: teamColumns, Display: teamColumns, Rows: rows}
}

// Fixtures builds the fixture table with home/away team names joined.
// Kickoff times are parsed to time.Time; missing or unparsable values
// become nil, which the engine sorts after every real timestamp.
func Fixtures(fixtures []fetch.Fixture, bs *fetch.Bootstrap) *Table {
	teamNames := make(map[int]string, len(bs.Teams))
	for _, t := range bs.Teams {
		teamNames[t.ID] = t.Name
	}

	rows := make([]Row, 0, len(fixtures))
	for _, f := range fixtures {
		row := Row{
			"id":           f.ID,
			"event":        nil,
			"kickoff_time": ParseKickoff(f.KickoffTime),
			"team_h":       f.TeamH,
			"team_a":       f.TeamA,
			"team_h_name":  nil,
			"team_a_name":  nil,
			"team_h_score": nil,
			"team_a_score": nil,
			"finished":     f.Finished,
		}
		if f.Event != nil {
			row["event"] = *f.Event
		}
		if name, ok := teamNames[f.TeamH]; ok {
			row["team_h_name"] = name
		}
		if name, ok := teamNames[f.TeamA]; ok {
			row["team_a_name"] = name
		}
		if f.TeamHScore != nil {
			row["team_h_score"] = *f.TeamHScore
		}
		if f.TeamAScore != nil {
			row["team_a_score"] = *f.TeamAScore
		}
		rows = append(rows, row)
	}
	return &Table{Name: "fixtures", Columns: fixtureColumns, Display: fixtureDisplay, Rows: rows}
}

// PlayerHistory builds a player's gameweek history table in the API's
// chronological (oldest-first) order, joining opponent team names.
func PlayerHistory(summary *fetch.ElementSummary, bs *fetch.Bootstrap) *Table {
	teamNames := make(map[int]string, len(bs.Teams))
	for _, t := range bs.Teams {
		teamNames[t.ID] = t.Name
	}

	rows := make([]Row, 0, len(summary.History))
	for _, h := range summary.History {
		row := Row{
			"round":              h.Round,
			"opponent_team":      h.OpponentTeam,
			"opponent_team_name": nil,
			"minutes":            h.Minutes,
			"goals_scored":       h.GoalsScored,
			"assists":            h.Assists,
			"total_points":       h.TotalPoints,
			"goals_conceded":     h.GoalsConceded,
			"yellow_cards":       h.YellowCards,
			"red_cards":          h.RedCards,
		}
		if name, ok := teamNames[h.OpponentTeam]; ok {
			row["opponent_team_name"] = name
		}
		rows = append(rows, row)
	}
	return &Table{Name: "player_history", Columns: historyColumns, Display: historyDisplay, Rows: rows}
}

// ParseKickoff converts an RFC3339 kickoff timestamp into a time.Time,
// returning nil for missing or unparsable values.
func ParseKickoff(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return ts
}

func parsePercent(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
