package querybuilder

import (
	"fmt"
	"reflect"
	"time"
)

// Condition is one conjunct of a WHERE clause. It renders to SQL and can be
// evaluated against an in-memory Row.
type Condition interface {
	writeSQL(w *sqlWriter)
	match(row Row) (bool, error)
}

// Row exposes column values of an in-memory record by column name.
type Row interface {
	Value(column string) (any, bool)
}

// RowMap is a Row backed by a plain map.
type RowMap map[string]any

func (m RowMap) Value(column string) (any, bool) {
	v, ok := m[column]
	return v, ok
}

// Matches reports whether row satisfies every condition. No conditions match
// every row; an unknown column is an error.
func Matches(row Row, conditions ...Condition) (bool, error) {
	for _, c := range conditions {
		ok, err := c.match(row)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) writeSQL(w *sqlWriter) {
	w.WriteString(c.column)
	w.WriteString(" = ")
	w.bind(c.value)
}

func (c eqCondition) match(row Row) (bool, error) {
	v, err := lookup(row, c.column)
	if err != nil {
		return false, err
	}
	return equalValues(v, c.value), nil
}

type isNullCondition struct {
	column string
}

func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func (c isNullCondition) writeSQL(w *sqlWriter) {
	w.WriteString(c.column)
	w.WriteString(" IS NULL")
}

func (c isNullCondition) match(row Row) (bool, error) {
	v, err := lookup(row, c.column)
	if err != nil {
		return false, err
	}
	return normalize(v) == nil, nil
}

func lookup(row Row, column string) (any, error) {
	v, ok := row.Value(column)
	if !ok {
		return nil, fmt.Errorf("unknown column %q", column)
	}
	return v, nil
}

func equalValues(a, b any) bool {
	na, nb := normalize(a), normalize(b)
	if na == nil || nb == nil {
		return na == nil && nb == nil
	}
	if ta, ok := na.(time.Time); ok {
		tb, ok := nb.(time.Time)
		return ok && ta.Equal(tb)
	}
	return na == nb
}

// normalize collapses pointers, named string types and numeric kinds so that
// values coming from typed structs compare equal to untyped query arguments.
func normalize(v any) any {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if t, ok := rv.Interface().(time.Time); ok {
		return t
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	default:
		return rv.Interface()
	}
}
