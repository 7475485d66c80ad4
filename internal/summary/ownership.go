package summary

import (
	"sort"

	"fpl-stats-mcp/internal/fetch"
	"fpl-stats-mcp/internal/table"
)

// OwnedPlayer is one row of the expert ownership cross-tabulation.
type OwnedPlayer struct {
	PlayerName string   `json:"player_name"`
	Team       string   `json:"team"`
	Position   string   `json:"position"`
	PriceM     float64  `json:"price_m"`
	OwnedBy    []string `json:"owned_by"`
	Count      int      `json:"count"`
}

// Ownership inverts per-expert pick sets into a ranked player list:
// owner count descending, player name ascending on ties. Picked
// element ids missing from the bootstrap snapshot are skipped.
func Ownership(picksByExpert map[string][]fetch.Pick, bs *fetch.Bootstrap) []OwnedPlayer {
	owners := make(map[int][]string)
	for expert, picks := range picksByExpert {
		for _, p := range picks {
			owners[p.Element] = append(owners[p.Element], expert)
		}
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

	rows := make([]OwnedPlayer, 0, len(owners))
	for id, names := range owners {
		e, ok := elements[id]
		if !ok {
			continue
		}
		sort.Strings(names)
		rows = append(rows, OwnedPlayer{
			PlayerName: table.FullName(e),
			Team:       teamNames[e.Team],
			Position:   positions[e.ElementType],
			PriceM:     float64(e.NowCost) / 10.0,
			OwnedBy:    names,
			Count:      len(names),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].PlayerName < rows[j].PlayerName
	})
	return rows
}
