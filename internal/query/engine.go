// Package query is a generic filter/sort/project engine over the
// entity tables. It performs no I/O: every operation is a pure
// transformation of already-materialized rows.
package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"fpl-stats-mcp/internal/table"
)

// DefaultLimit is the row cap applied when the caller gives no top_n.
const DefaultLimit = 20

// Options controls one query run. TopN semantics: nil means the
// default limit, a negative value means no limit. OnDropColumn is
// invoked for each display column missing from the underlying table
// (best-effort projection under schema drift).
type Options struct {
	Filters      map[string]Condition
	SortBy       string
	SortOrder    string // "asc" or "desc"; default "desc"
	TopN         *int
	OnDropColumn func(column string)
}

// Run validates the query against the table's columns, applies the
// filter conjunction, sorts, truncates, and projects to the display
// columns. Validation failures happen before any row is examined.
func Run(t *table.Table, opts Options) (*table.Table, error) {
	known := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		known[c] = true
	}

	var unknown []string
	for col := range opts.Filters {
		if !known[col] {
			unknown = append(unknown, col)
		}
	}
	if opts.SortBy != "" && !known[opts.SortBy] {
		unknown = append(unknown, opts.SortBy)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &UnknownFieldError{Fields: unknown, Valid: t.Columns}
	}

	rows := make([]table.Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		if matchesAll(row, opts.Filters) {
			rows = append(rows, row)
		}
	}

	sortRows(t.Name, rows, opts.SortBy, opts.SortOrder)

	limit := DefaultLimit
	if opts.TopN != nil {
		limit = *opts.TopN
	}
	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	return project(t, rows, opts.OnDropColumn), nil
}

func matchesAll(row table.Row, filters map[string]Condition) bool {
	for col, cond := range filters {
		if !matches(row[col], cond) {
			return false
		}
	}
	return true
}

func matches(v any, cond Condition) bool {
	switch cond.Op {
	case OpContains:
		if v == nil {
			return false
		}
		return strings.Contains(
			strings.ToLower(stringify(v)),
			strings.ToLower(stringify(cond.Value)),
		)
	case OpEq:
		if v == nil || cond.Value == nil {
			return v == nil && cond.Value == nil
		}
		if c, ok := compare(v, cond.Value); ok {
			return c == 0
		}
		return stringify(v) == stringify(cond.Value)
	case OpLt, OpLte, OpGt, OpGte:
		c, ok := compare(v, cond.Value)
		if !ok {
			return false
		}
		switch cond.Op {
		case OpLt:
			return c < 0
		case OpLte:
			return c <= 0
		case OpGt:
			return c > 0
		default:
			return c >= 0
		}
	}
	return false
}

// compare orders two cell values of compatible kinds. Numeric values
// compare across int/float64 (JSON numbers decode as float64), so a
// filter value of 80 matches an integer column. Returns ok=false for
// incomparable kinds; nil is handled by the callers.
func compare(a, b any) (int, bool) {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1, true
			case fa > fb:
				return 1, true
			}
			return 0, true
		}
		return 0, false
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(av, bv), true
	case bool:
		bv, ok := b.(bool)
		if !ok {
			return 0, false
		}
		switch {
		case av == bv:
			return 0, true
		case !av:
			return -1, true
		}
		return 1, true
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		switch {
		case av.Before(bv):
			return -1, true
		case av.After(bv):
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}

// sortRows sorts in place. With no explicit sort key the per-entity
// default applies: players by total_points descending (cheaper player
// first on ties), fixtures by kickoff_time ascending, everything else
// keeps input order. Nil cells sort last under both directions, so
// unscheduled fixtures trail the real schedule. The sort is stable.
func sortRows(entity string, rows []table.Row, sortBy, order string) {
	key := sortBy
	asc := strings.EqualFold(order, "asc")
	var tiebreak string
	if key == "" {
		switch entity {
		case "players":
			key, asc = "total_points", false
			tiebreak = "now_cost"
		case "fixtures":
			key, asc = "kickoff_time", true
		default:
			return
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		va, vb := rows[i][key], rows[j][key]
		if va == nil || vb == nil {
			// nil never sorts before a real value
			return vb == nil && va != nil
		}
		c, ok := compare(va, vb)
		if !ok {
			return false
		}
		if c == 0 && tiebreak != "" {
			if tc, ok := compare(rows[i][tiebreak], rows[j][tiebreak]); ok {
				return tc < 0
			}
			return false
		}
		if asc {
			return c < 0
		}
		return c > 0
	})
}

// project narrows rows to the table's display columns, silently
// dropping any display column the underlying table no longer carries
// and reporting each drop through the hook.
func project(t *table.Table, rows []table.Row, onDrop func(string)) *table.Table {
	known := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		known[c] = true
	}
	kept := make([]string, 0, len(t.Display))
	for _, c := range t.Display {
		if !known[c] {
			if onDrop != nil {
				onDrop(c)
			}
			continue
		}
		kept = append(kept, c)
	}

	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		p := make(table.Row, len(kept))
		for _, c := range kept {
			p[c] = row[c]
		}
		out = append(out, p)
	}
	return &table.Table{Name: t.Name, Columns: kept, Display: kept, Rows: out}
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case string:
		return x
	case float64:
		return trimFloat(x)
	case time.Time:
		return x.Format("2006-01-02 15:04")
	}
	return fmt.Sprintf("%v", v)
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
