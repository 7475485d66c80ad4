package query

// Op identifies a comparison operator in a filter condition.
type Op int

const (
	OpEq Op = iota
	OpLt
	OpLte
	OpGt
	OpGte
	OpContains
)

var opByName = map[string]Op{
	"eq":       OpEq,
	"lt":       OpLt,
	"lte":      OpLte,
	"gt":       OpGt,
	"gte":      OpGte,
	"contains": OpContains,
}

func (o Op) String() string {
	switch o {
	case OpEq:
		return "eq"
	case OpLt:
		return "lt"
	case OpLte:
		return "lte"
	case OpGt:
		return "gt"
	case OpGte:
		return "gte"
	case OpContains:
		return "contains"
	}
	return "unknown"
}

func opNames() []string {
	return []string{"eq", "lt", "lte", "gt", "gte", "contains"}
}

// Condition is one decoded filter predicate. The untyped wire format
// (raw scalar, or an object like {"lt": 80}) is decoded exactly once at
// the query boundary so the engine core matches on Op exhaustively.
type Condition struct {
	Op    Op
	Value any
}

// ParseFilters decodes the raw filter mapping supplied by the caller.
// A bare scalar means equality; an object must contain exactly one
// supported operator.
func ParseFilters(raw map[string]any) (map[string]Condition, error) {
	out := make(map[string]Condition, len(raw))
	for col, v := range raw {
		obj, ok := v.(map[string]any)
		if !ok {
			out[col] = Condition{Op: OpEq, Value: v}
			continue
		}
		if len(obj) == 0 {
			return nil, &UnsupportedOperatorError{Column: col, Op: ""}
		}
		if len(obj) > 1 {
			ops := make([]string, 0, len(obj))
			for name := range obj {
				ops = append(ops, name)
			}
			return nil, &MultiOperatorError{Column: col, Ops: ops}
		}
		for name, value := range obj {
			op, known := opByName[name]
			if !known {
				return nil, &UnsupportedOperatorError{Column: col, Op: name}
			}
			out[col] = Condition{Op: op, Value: value}
		}
	}
	return out, nil
}
