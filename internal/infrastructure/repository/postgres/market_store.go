package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/market"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/player"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/playerstats"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/transfer"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/valuation"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/watchlist"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/id"
)

// bootstrapLockKey identifies the transaction-scoped advisory lock taken while
// the dataset is generated.
const bootstrapLockKey int64 = 0x544d424f4f54

// Store implements market.Store on postgres. The schema lives in db/migrations.
type Store struct {
	db *sqlx.DB

	players    *table[player.Player, playerTableModel]
	history    *table[valuation.Point, historyTableModel]
	statistics *table[playerstats.SeasonStatistic, statisticTableModel]
	transfers  *table[transfer.Record, transferTableModel]
	rumours    *table[transfer.Rumour, rumourTableModel]
	watchlist  *table[watchlist.Entry, watchlistTableModel]
}

var _ market.Store = (*Store)(nil)

func NewStore(db *sqlx.DB) *Store {
	return NewStoreWithKeys(db, id.NewUUIDGenerator(), time.Now)
}

func NewStoreWithKeys(db *sqlx.DB, entryKeys id.Generator, now func() time.Time) *Store {
	s := &Store{
		db:         db,
		players:    newTable(db, market.TablePlayers, playerToModel, playerFromModel),
		history:    newTable(db, market.TableHistory, historyToModel, historyFromModel),
		statistics: newTable(db, market.TableStatistics, statisticToModel, statisticFromModel),
		transfers:  newTable(db, market.TableTransfers, transferToModel, transferFromModel),
		rumours:    newTable(db, market.TableRumours, rumourToModel, rumourFromModel),
		watchlist:  newTable(db, market.TableWatchlist, watchlistToModel, watchlistFromModel),
	}
	s.watchlist.mutable = true
	s.watchlist.assignKey = func(e *watchlist.Entry) error {
		if e.ID == "" {
			key, err := entryKeys.NewID()
			if err != nil {
				return err
			}
			e.ID = key
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now().UTC()
		}
		return nil
	}
	return s
}

func (s *Store) Players() market.Repository[player.Player] { return s.players }

func (s *Store) History() market.Repository[valuation.Point] { return s.history }

func (s *Store) Statistics() market.Repository[playerstats.SeasonStatistic] { return s.statistics }

func (s *Store) Transfers() market.Repository[transfer.Record] { return s.transfers }

func (s *Store) Rumours() market.Repository[transfer.Rumour] { return s.rumours }

func (s *Store) Watchlist() market.Repository[watchlist.Entry] { return s.watchlist }

// Bootstrap checks the player table and writes the generated rows inside one
// transaction holding an advisory lock, so a concurrent caller in any process
// waits and then observes the rows.
func (s *Store) Bootstrap(ctx context.Context, build market.BuildFunc) (bool, error) {
	count, err := s.players.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin bootstrap tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, bootstrapLockKey); err != nil {
		return false, fmt.Errorf("acquire bootstrap lock: %w", err)
	}
	count, err = s.players.count(ctx, tx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	ds, err := build(ctx, market.NewPlayerKeys())
	if err != nil {
		return false, fmt.Errorf("build dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return false, fmt.Errorf("validate dataset: %w", err)
	}

	if err := s.players.insert(ctx, tx, ds.Players); err != nil {
		return false, err
	}
	if err := s.history.insert(ctx, tx, ds.History); err != nil {
		return false, err
	}
	if err := s.statistics.insert(ctx, tx, ds.Statistics); err != nil {
		return false, err
	}
	if err := s.transfers.insert(ctx, tx, ds.Transfers); err != nil {
		return false, err
	}
	if err := s.rumours.insert(ctx, tx, ds.Rumours); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit bootstrap tx: %w", err)
	}
	return true, nil
}
