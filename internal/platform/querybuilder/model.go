package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModels renders one multi-row INSERT for models sharing a struct type.
// Columns come from `db` struct tags in declaration order.
func InsertModels[M any](table string, models []M) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("insert into %s: %w", table, errNoRows)
	}

	b := InsertInto(table)
	for i := range models {
		cols, vals, err := modelFields(models[i])
		if err != nil {
			return "", nil, fmt.Errorf("model %d: %w", i, err)
		}
		if i == 0 {
			b.Columns(cols...)
		}
		b.Values(vals...)
	}
	return b.ToSQL()
}

// ColumnsFromModel lists the db-tagged columns of a model in declaration order.
func ColumnsFromModel(model any) ([]string, error) {
	cols, _, err := modelFields(model)
	return cols, err
}

func modelFields(model any) ([]string, []any, error) {
	value := reflect.Indirect(reflect.ValueOf(model))
	if !value.IsValid() {
		return nil, nil, fmt.Errorf("model cannot be nil")
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be a struct, got %s", value.Kind())
	}

	typ := value.Type()
	var (
		cols []string
		vals []any
	)
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		cols = append(cols, name)
		vals = append(vals, value.Field(i).Interface())
	}
	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("%s has no db columns", typ.Name())
	}
	return cols, vals, nil
}
