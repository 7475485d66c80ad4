// Package experts holds the roster of reference FPL managers used by
// the ownership and transfer tools. The roster is injected
// configuration, not package state, so tests can supply fixtures and
// operators can override the list from a YAML file.
package experts

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one named reference manager.
type Entry struct {
	Name    string `yaml:"name"`
	EntryID int    `yaml:"entry_id"`
}

// Roster is an ordered, immutable-by-convention list of experts.
type Roster []Entry

// Default returns the built-in reference roster.
func Default() Roster {
	return Roster{
		{"FPL Focal", 200},
		{"FPL Harry", 1320},
		{"FPL Raptor", 1587},
		{"FPL Pickle", 14501},
		{"FPL Mate", 16267},
		{"Ben Crellin", 6586},
		{"Az Phillips", 441},
		{"Kelly Somers", 1924811},
		{"Julien Laurens", 1514450},
		{"Sam Bonfield", 260},
		{"Lee Bonfield", 341},
		{"Holly Shand", 135},
		{"Ian Irwing", 7577129},
		{"FPL Sonaldo", 16725},
		{"Pras", 3570},
		{"Gianni Buttice", 17614},
		{"BigMan Bakar", 963},
		{"Yelena", 251},
		{"Stormzy", 698910},
		{"Chunkz", 2253812},
	}
}

// Load reads a roster from a YAML file shaped as a list of
// {name, entry_id} entries.
func Load(path string) (Roster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var roster Roster
	if err := yaml.Unmarshal(raw, &roster); err != nil {
		return nil, err
	}
	return roster, nil
}

// Resolve maps a display name or numeric entry id to a roster entry.
// A numeric input outside the roster still resolves, with the id as
// its display name, so arbitrary entry ids remain usable. A name miss
// returns ok=false.
func (r Roster) Resolve(nameOrID string) (Entry, bool) {
	q := strings.TrimSpace(nameOrID)
	if id, err := strconv.Atoi(q); err == nil {
		for _, e := range r {
			if e.EntryID == id {
				return e, true
			}
		}
		return Entry{Name: q, EntryID: id}, true
	}
	for _, e := range r {
		if strings.EqualFold(e.Name, q) {
			return e, true
		}
	}
	return Entry{}, false
}
