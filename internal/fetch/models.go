package fetch

// Bootstrap is the decoded bootstrap-static dataset: the core FPL
// reference tables (players, teams, positions, gameweeks).
type Bootstrap struct {
	Events       []Event       `json:"events"`
	Teams        []Team        `json:"teams"`
	Elements     []Element     `json:"elements"`
	ElementTypes []ElementType `json:"element_types"`
}

// Event is one gameweek in the season schedule.
type Event struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DeadlineTime string `json:"deadline_time"`
	Finished     bool   `json:"finished"`
	IsCurrent    bool   `json:"is_current"`
	IsNext       bool   `json:"is_next"`
}

type Team struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	ShortName           string `json:"short_name"`
	StrengthAttackHome  int    `json:"strength_attack_home"`
	StrengthAttackAway  int    `json:"strength_attack_away"`
	StrengthDefenceHome int    `json:"strength_defence_home"`
	StrengthDefenceAway int    `json:"strength_defence_away"`
}

// Element is the API's term for a player. NowCost is in integer tenths
// of a million; SelectedByPercent arrives as a string ("12.5").
type Element struct {
	ID                int    `json:"id"`
	FirstName         string `json:"first_name"`
	SecondName        string `json:"second_name"`
	WebName           string `json:"web_name"`
	Team              int    `json:"team"`
	ElementType       int    `json:"element_type"`
	NowCost           int    `json:"now_cost"`
	TotalPoints       int    `json:"total_points"`
	Minutes           int    `json:"minutes"`
	GoalsScored       int    `json:"goals_scored"`
	Assists           int    `json:"assists"`
	YellowCards       int    `json:"yellow_cards"`
	RedCards          int    `json:"red_cards"`
	SelectedByPercent string `json:"selected_by_percent"`
}

// ElementType is a position (1=GKP, 2=DEF, 3=MID, 4=FWD).
type ElementType struct {
	ID                int    `json:"id"`
	SingularNameShort string `json:"singular_name_short"`
}

// Fixture is one scheduled match. Event and KickoffTime are null before
// the fixture is scheduled; scores are null until the match finishes.
type Fixture struct {
	ID          int     `json:"id"`
	Event       *int    `json:"event"`
	KickoffTime *string `json:"kickoff_time"`
	TeamH       int     `json:"team_h"`
	TeamA       int     `json:"team_a"`
	TeamHScore  *int    `json:"team_h_score"`
	TeamAScore  *int    `json:"team_a_score"`
	Started     bool    `json:"started"`
	Finished    bool    `json:"finished"`
}

// ElementSummary is the per-player detail endpoint payload. Only the
// current-season history is consumed here.
type ElementSummary struct {
	History []HistoryEntry `json:"history"`
}

// HistoryEntry is one gameweek row of a player's season, stored
// oldest-first by the API.
type HistoryEntry struct {
	Round         int `json:"round"`
	OpponentTeam  int `json:"opponent_team"`
	TotalPoints   int `json:"total_points"`
	Minutes       int `json:"minutes"`
	GoalsScored   int `json:"goals_scored"`
	Assists       int `json:"assists"`
	GoalsConceded int `json:"goals_conceded"`
	YellowCards   int `json:"yellow_cards"`
	RedCards      int `json:"red_cards"`
}

// PicksResponse is a manager's squad for one gameweek.
type PicksResponse struct {
	ActiveChip string `json:"active_chip"`
	Picks      []Pick `json:"picks"`
}

// Pick is one player's slot in a manager's squad. Multiplier is 0 for
// benched players, 2 for the captain (3 with triple captain active).
type Pick struct {
	Element       int  `json:"element"`
	Position      int  `json:"position"`
	Multiplier    int  `json:"multiplier"`
	IsCaptain     bool `json:"is_captain"`
	IsViceCaptain bool `json:"is_vice_captain"`
}

// Transfer is one append-only transfer record for a manager.
type Transfer struct {
	ElementIn  int    `json:"element_in"`
	ElementOut int    `json:"element_out"`
	Event      int    `json:"event"`
	Time       string `json:"time"`
}

// ManagerHistory is the per-manager history endpoint payload.
type ManagerHistory struct {
	Current []SeasonEvent `json:"current"`
	Past    []PastSeason  `json:"past"`
	Chips   []ChipPlay    `json:"chips"`
}

// SeasonEvent is one gameweek of the manager's current season.
type SeasonEvent struct {
	Event       int `json:"event"`
	Points      int `json:"points"`
	TotalPoints int `json:"total_points"`
	OverallRank int `json:"overall_rank"`
}

type PastSeason struct {
	SeasonName  string `json:"season_name"`
	TotalPoints int    `json:"total_points"`
	Rank        int    `json:"rank"`
}

type ChipPlay struct {
	Name  string `json:"name"`
	Event int    `json:"event"`
}
