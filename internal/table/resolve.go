package table

import (
	"strconv"
	"strings"

	"fpl-stats-mcp/internal/fetch"
)

// ResolveTeam maps user-entered text to a team: integer id first, then
// case-insensitive exact name or short name, then the first substring
// match in table order. Absence is routine for free-text lookups, so a
// miss returns ok=false rather than an error.
func ResolveTeam(bs *fetch.Bootstrap, q string) (fetch.Team, bool) {
	q = strings.TrimSpace(q)
	if id, err := strconv.Atoi(q); err == nil {
		for _, t := range bs.Teams {
			if t.ID == id {
				return t, true
			}
		}
		return fetch.Team{}, false
	}
	for _, t := range bs.Teams {
		if strings.EqualFold(t.Name, q) || strings.EqualFold(t.ShortName, q) {
			return t, true
		}
	}
	needle := strings.ToLower(q)
	for _, t := range bs.Teams {
		if strings.Contains(strings.ToLower(t.Name), needle) ||
			strings.Contains(strings.ToLower(t.ShortName), needle) {
			return t, true
		}
	}
	return fetch.Team{}, false
}

// ResolvePlayer maps user-entered text to a player using the same
// strategy order as ResolveTeam: id, exact full name, then substring on
// any name field.
func ResolvePlayer(bs *fetch.Bootstrap, q string) (fetch.Element, bool) {
	q = strings.TrimSpace(q)
	if id, err := strconv.Atoi(q); err == nil {
		for _, e := range bs.Elements {
			if e.ID == id {
				return e, true
			}
		}
		return fetch.Element{}, false
	}
	for _, e := range bs.Elements {
		if strings.EqualFold(FullName(e), q) {
			return e, true
		}
	}
	needle := strings.ToLower(q)
	for _, e := range bs.Elements {
		if strings.Contains(strings.ToLower(e.FirstName), needle) ||
			strings.Contains(strings.ToLower(e.SecondName), needle) ||
			strings.Contains(strings.ToLower(e.WebName), needle) {
			return e, true
		}
	}
	return fetch.Element{}, false
}

// FullName joins a player's first and second names.
func FullName(e fetch.Element) string {
	return strings.TrimSpace(e.FirstName + " " + e.SecondName)
}
