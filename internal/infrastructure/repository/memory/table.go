package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/market"
	qb "github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/querybuilder"
)

type validatable interface {
	Validate() error
}

// table is an append-ordered in-memory relation. Predicates are evaluated
// against the column view of each row.
type table[R market.Row] struct {
	mu        sync.RWMutex
	name      string
	rows      []R
	columns   func(R) qb.Row
	mutable   bool
	assignKey func(*R) error
}

func newTable[R market.Row](name string, columns func(R) qb.Row) *table[R] {
	return &table[R]{name: name, columns: columns}
}

func (t *table[R]) Insert(_ context.Context, rows ...R) error {
	prepared, err := t.prepare(rows)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.rows = append(t.rows, prepared...)
	t.mu.Unlock()

	return nil
}

func (t *table[R]) prepare(rows []R) ([]R, error) {
	out := make([]R, 0, len(rows))
	for _, row := range rows {
		if t.assignKey != nil {
			if err := t.assignKey(&row); err != nil {
				return nil, fmt.Errorf("assign %s key: %w", t.name, err)
			}
		}
		if v, ok := any(row).(validatable); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("insert into %s: %w", t.name, err)
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (t *table[R]) All(_ context.Context) ([]R, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]R, 0, len(t.rows))
	out = append(out, t.rows...)
	return out, nil
}

func (t *table[R]) Filtered(_ context.Context, where ...qb.Condition) ([]R, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]R, 0)
	for _, row := range t.rows {
		ok, err := qb.Matches(t.columns(row), where...)
		if err != nil {
			return nil, fmt.Errorf("filter %s: %w", t.name, err)
		}
		if ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (t *table[R]) Delete(_ context.Context, where ...qb.Condition) (int64, error) {
	if !t.mutable {
		return 0, fmt.Errorf("delete from %s: %w", t.name, market.ErrAppendOnly)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	kept := make([]R, 0, len(t.rows))
	var removed int64
	for _, row := range t.rows {
		ok, err := qb.Matches(t.columns(row), where...)
		if err != nil {
			return 0, fmt.Errorf("delete from %s: %w", t.name, err)
		}
		if ok {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	t.rows = kept

	return removed, nil
}

func (t *table[R]) Count(_ context.Context) (int64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return int64(len(t.rows)), nil
}
