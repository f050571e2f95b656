package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/market"
	qb "github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/querybuilder"
)

// insertBatchSize keeps multi-row inserts under the 65535 bind parameter limit.
const insertBatchSize = 500

type validatable interface {
	Validate() error
}

// table maps one domain row type R onto its table model M. Rows are returned
// in insertion order through the row_id serial column.
type table[R market.Row, M any] struct {
	db        *sqlx.DB
	name      string
	columns   []string
	toModel   func(R) M
	fromModel func(M) R
	mutable   bool
	assignKey func(*R) error
}

func newTable[R market.Row, M any](db *sqlx.DB, name string, toModel func(R) M, fromModel func(M) R) *table[R, M] {
	var zero M
	columns, err := qb.ColumnsFromModel(zero)
	if err != nil {
		panic(fmt.Sprintf("table %s: %v", name, err))
	}
	return &table[R, M]{
		db:        db,
		name:      name,
		columns:   columns,
		toModel:   toModel,
		fromModel: fromModel,
	}
}

func (t *table[R, M]) Insert(ctx context.Context, rows ...R) error {
	return t.insert(ctx, t.db, rows)
}

func (t *table[R, M]) insert(ctx context.Context, exec sqlx.ExecerContext, rows []R) error {
	if len(rows) == 0 {
		return nil
	}

	models := make([]M, 0, len(rows))
	for _, row := range rows {
		if t.assignKey != nil {
			if err := t.assignKey(&row); err != nil {
				return fmt.Errorf("assign %s key: %w", t.name, err)
			}
		}
		if v, ok := any(row).(validatable); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("insert into %s: %w", t.name, err)
			}
		}
		models = append(models, t.toModel(row))
	}

	for start := 0; start < len(models); start += insertBatchSize {
		end := min(start+insertBatchSize, len(models))
		query, args, err := qb.InsertModels(t.name, models[start:end])
		if err != nil {
			return fmt.Errorf("build insert %s query: %w", t.name, err)
		}
		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert into %s: %w", t.name, err)
		}
	}

	return nil
}

func (t *table[R, M]) All(ctx context.Context) ([]R, error) {
	return t.Filtered(ctx)
}

func (t *table[R, M]) Filtered(ctx context.Context, where ...qb.Condition) ([]R, error) {
	query, args, err := qb.Select(t.columns...).From(t.name).
		Where(where...).
		OrderBy("row_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", t.name, err)
	}

	var models []M
	if err := t.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", t.name, err)
	}

	out := make([]R, 0, len(models))
	for _, m := range models {
		out = append(out, t.fromModel(m))
	}
	return out, nil
}

func (t *table[R, M]) Delete(ctx context.Context, where ...qb.Condition) (int64, error) {
	if !t.mutable {
		return 0, fmt.Errorf("delete from %s: %w", t.name, market.ErrAppendOnly)
	}

	query, args, err := qb.DeleteFrom(t.name).Where(where...).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete %s query: %w", t.name, err)
	}

	res, err := t.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", t.name, err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete from %s rows affected: %w", t.name, err)
	}
	return removed, nil
}

func (t *table[R, M]) Count(ctx context.Context) (int64, error) {
	return t.count(ctx, t.db)
}

func (t *table[R, M]) count(ctx context.Context, q sqlx.QueryerContext) (int64, error) {
	var n int64
	if err := sqlx.GetContext(ctx, q, &n, `SELECT COUNT(1) FROM `+t.name); err != nil {
		return 0, fmt.Errorf("count %s: %w", t.name, err)
	}
	return n, nil
}
