package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/market"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/player"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/playerstats"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/transfer"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/valuation"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/watchlist"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/id"
)

// Store keeps every market table in process memory.
type Store struct {
	bootstrapMu sync.Mutex

	players    *table[player.Player]
	history    *table[valuation.Point]
	statistics *table[playerstats.SeasonStatistic]
	transfers  *table[transfer.Record]
	rumours    *table[transfer.Rumour]
	watchlist  *table[watchlist.Entry]
}

var _ market.Store = (*Store)(nil)

func NewStore() *Store {
	return NewStoreWithKeys(id.NewUUIDGenerator(), time.Now)
}

// NewStoreWithKeys lets callers fix watchlist keys and timestamps.
func NewStoreWithKeys(entryKeys id.Generator, now func() time.Time) *Store {
	s := &Store{
		players:    newTable(market.TablePlayers, playerColumns),
		history:    newTable(market.TableHistory, historyColumns),
		statistics: newTable(market.TableStatistics, statisticColumns),
		transfers:  newTable(market.TableTransfers, transferColumns),
		rumours:    newTable(market.TableRumours, rumourColumns),
		watchlist:  newTable(market.TableWatchlist, watchlistColumns),
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

// Bootstrap serializes callers on bootstrapMu and publishes the dataset while
// holding the write lock of every generated table, so readers see either no
// rows or all of them.
func (s *Store) Bootstrap(ctx context.Context, build market.BuildFunc) (bool, error) {
	s.bootstrapMu.Lock()
	defer s.bootstrapMu.Unlock()

	if err := ctx.Err(); err != nil {
		return false, err
	}
	n, err := s.players.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count players: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	ds, err := build(ctx, market.NewPlayerKeys())
	if err != nil {
		return false, fmt.Errorf("build dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return false, fmt.Errorf("validate dataset: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.players.mu.Lock()
	defer s.players.mu.Unlock()
	s.history.mu.Lock()
	defer s.history.mu.Unlock()
	s.statistics.mu.Lock()
	defer s.statistics.mu.Unlock()
	s.transfers.mu.Lock()
	defer s.transfers.mu.Unlock()
	s.rumours.mu.Lock()
	defer s.rumours.mu.Unlock()

	// Direct inserts bypass bootstrapMu.
	if len(s.players.rows) > 0 {
		return false, nil
	}

	s.players.rows = append(s.players.rows, ds.Players...)
	s.history.rows = append(s.history.rows, ds.History...)
	s.statistics.rows = append(s.statistics.rows, ds.Statistics...)
	s.transfers.rows = append(s.transfers.rows, ds.Transfers...)
	s.rumours.rows = append(s.rumours.rows, ds.Rumours...)

	return true, nil
}
