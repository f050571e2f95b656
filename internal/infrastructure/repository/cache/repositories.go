package cache

import (
	"context"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/market"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/player"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/playerstats"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/transfer"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/valuation"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/watchlist"
	basecache "github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/cache"
	qb "github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/querybuilder"
)

// KeyPrefix namespaces every market cache entry.
const KeyPrefix = "market:"

// Repository caches full-table reads and counts. Filtered reads go straight
// to the wrapped repository.
type Repository[R market.Row] struct {
	next  market.Repository[R]
	cache *basecache.Store
	table string
}

func NewRepository[R market.Row](next market.Repository[R], cache *basecache.Store, table string) *Repository[R] {
	return &Repository[R]{next: next, cache: cache, table: table}
}

func (r *Repository[R]) Insert(ctx context.Context, rows ...R) error {
	if err := r.next.Insert(ctx, rows...); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *Repository[R]) All(ctx context.Context) ([]R, error) {
	items, err := basecache.Load(ctx, r.cache, r.key("all"), func(ctx context.Context) ([]R, error) {
		items, err := r.next.All(ctx)
		if err != nil {
			return nil, err
		}
		return append([]R(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]R(nil), items...), nil
}

func (r *Repository[R]) Filtered(ctx context.Context, where ...qb.Condition) ([]R, error) {
	return r.next.Filtered(ctx, where...)
}

func (r *Repository[R]) Delete(ctx context.Context, where ...qb.Condition) (int64, error) {
	removed, err := r.next.Delete(ctx, where...)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		r.invalidate(ctx)
	}
	return removed, nil
}

func (r *Repository[R]) Count(ctx context.Context) (int64, error) {
	return basecache.Load(ctx, r.cache, r.key("count"), r.next.Count)
}

func (r *Repository[R]) key(suffix string) string {
	return KeyPrefix + r.table + ":" + suffix
}

func (r *Repository[R]) invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	r.cache.DeletePrefix(ctx, KeyPrefix+r.table+":")
}

// Store decorates a market.Store with read-through caching per table.
type Store struct {
	next  market.Store
	cache *basecache.Store

	players    *Repository[player.Player]
	history    *Repository[valuation.Point]
	statistics *Repository[playerstats.SeasonStatistic]
	transfers  *Repository[transfer.Record]
	rumours    *Repository[transfer.Rumour]
	watchlist  *Repository[watchlist.Entry]
}

var _ market.Store = (*Store)(nil)

func NewStore(next market.Store, cache *basecache.Store) *Store {
	return &Store{
		next:       next,
		cache:      cache,
		players:    NewRepository(next.Players(), cache, market.TablePlayers),
		history:    NewRepository(next.History(), cache, market.TableHistory),
		statistics: NewRepository(next.Statistics(), cache, market.TableStatistics),
		transfers:  NewRepository(next.Transfers(), cache, market.TableTransfers),
		rumours:    NewRepository(next.Rumours(), cache, market.TableRumours),
		watchlist:  NewRepository(next.Watchlist(), cache, market.TableWatchlist),
	}
}

func (s *Store) Players() market.Repository[player.Player] { return s.players }

func (s *Store) History() market.Repository[valuation.Point] { return s.history }

func (s *Store) Statistics() market.Repository[playerstats.SeasonStatistic] { return s.statistics }

func (s *Store) Transfers() market.Repository[transfer.Record] { return s.transfers }

func (s *Store) Rumours() market.Repository[transfer.Rumour] { return s.rumours }

func (s *Store) Watchlist() market.Repository[watchlist.Entry] { return s.watchlist }

// Bootstrap drops every cached market entry once new rows are written, so an
// empty count cached before the bootstrap is not served afterwards.
func (s *Store) Bootstrap(ctx context.Context, build market.BuildFunc) (bool, error) {
	created, err := s.next.Bootstrap(ctx, build)
	if err != nil {
		return false, err
	}
	if created && s.cache != nil {
		s.cache.DeletePrefix(ctx, KeyPrefix)
	}
	return created, nil
}
