package summary

import (
	"sort"

	"fpl-stats-mcp/internal/fetch"
)

// TailRounds returns a player's history clipped to the chronologically
// latest lastN rounds, still in ascending round order. History arrives
// oldest-first from the API, so the slice is a tail-take, not a
// head-take. A non-positive lastN returns everything.
func TailRounds(history []fetch.HistoryEntry, lastN int) []fetch.HistoryEntry {
	out := append([]fetch.HistoryEntry(nil), history...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Round < out[j].Round
	})
	if lastN > 0 && len(out) > lastN {
		out = out[len(out)-lastN:]
	}
	return out
}
