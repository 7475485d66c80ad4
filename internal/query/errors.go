package query

import (
	"fmt"
	"sort"
	"strings"
)

// The caller of these tools is a language model guessing field names,
// so every validation error enumerates the valid options.

// UnsupportedEntityError reports a query against an unknown table name.
type UnsupportedEntityError struct {
	Entity string
	Valid  []string
}

func (e *UnsupportedEntityError) Error() string {
	return fmt.Sprintf("unsupported entity %q. Supported entities: %s",
		e.Entity, strings.Join(e.Valid, ", "))
}

// UnknownFieldError reports filter or sort keys that do not exist among
// the entity's columns. All unknown fields are collected before
// failing, and no row data is touched.
type UnknownFieldError struct {
	Fields []string
	Valid  []string
}

func (e *UnknownFieldError) Error() string {
	valid := append([]string(nil), e.Valid...)
	sort.Strings(valid)
	return fmt.Sprintf("unknown field(s): %s. Available fields: %s",
		strings.Join(e.Fields, ", "), strings.Join(valid, ", "))
}

// UnsupportedOperatorError reports an operator outside the supported
// set for a filter column.
type UnsupportedOperatorError struct {
	Column string
	Op     string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator %q for filter %q. Supported operators: %s",
		e.Op, e.Column, strings.Join(opNames(), ", "))
}

// MultiOperatorError rejects filter objects carrying more than one
// operator. The contract is one operator per key; a range needs two
// separate filter keys.
type MultiOperatorError struct {
	Column string
	Ops    []string
}

func (e *MultiOperatorError) Error() string {
	ops := append([]string(nil), e.Ops...)
	sort.Strings(ops)
	return fmt.Sprintf("filter %q specifies multiple operators (%s); use one operator per filter key",
		e.Column, strings.Join(ops, ", "))
}
