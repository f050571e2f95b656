package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/catalog"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/market"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/cache"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/id"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/logging"
)

const defaultGeneratorWorkers = 8

type DatasetOptions struct {
	Seed    int64
	Season  string
	Workers int
}

// DatasetService generates the market tables once per empty store.
type DatasetService struct {
	store   market.Store
	catalog *catalog.Catalog
	seed    catalog.Seed
	opts    DatasetOptions
	cache   *cache.Store
	logger  *logging.Logger
	now     func() time.Time
}

func NewDatasetService(
	store market.Store,
	cat *catalog.Catalog,
	seed catalog.Seed,
	opts DatasetOptions,
	cache *cache.Store,
	logger *logging.Logger,
) *DatasetService {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.Workers < 1 {
		opts.Workers = defaultGeneratorWorkers
	}
	return &DatasetService{
		store:   store,
		catalog: cat,
		seed:    seed,
		opts:    opts,
		cache:   cache,
		logger:  logger,
		now:     time.Now,
	}
}

// EnsureDataset generates and stores the dataset when the player table is
// empty. It reports whether rows were written.
func (s *DatasetService) EnsureDataset(ctx context.Context) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.EnsureDataset")
	defer span.End()

	if s.catalog == nil {
		return false, fmt.Errorf("%w: catalog is required", ErrConfiguration)
	}
	if strings.TrimSpace(s.opts.Season) == "" {
		return false, fmt.Errorf("%w: season label is required", ErrConfiguration)
	}

	started := s.now()
	var generated market.Dataset
	created, err := s.store.Bootstrap(ctx, func(ctx context.Context, keys id.Generator) (market.Dataset, error) {
		ds, err := s.build(ctx, keys)
		generated = ds
		return ds, err
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, fmt.Errorf("bootstrap dataset: %w", err)
		}
		return false, fmt.Errorf("%w: bootstrap dataset: %w", ErrDependencyUnavailable, err)
	}
	if !created {
		s.logger.DebugContext(ctx, "market dataset already present")
		return false, nil
	}

	if s.cache != nil {
		s.cache.Delete(ctx, snapshotCacheKey)
	}
	s.logger.InfoContext(ctx, "market dataset generated",
		"players", len(generated.Players),
		"history_points", len(generated.History),
		"transfers", len(generated.Transfers),
		"rumours", len(generated.Rumours),
		"seed", s.opts.Seed,
		"season", s.opts.Season,
		"duration_ms", s.now().Sub(started).Milliseconds(),
	)
	return true, nil
}

// build assigns ids and derives one source per player up front, then draws
// each player's rows on the worker pool. Rumours come from the master source
// afterwards, so the result only depends on the seed.
func (s *DatasetService) build(ctx context.Context, keys id.Generator) (market.Dataset, error) {
	players := s.seed.Players
	opts := market.GenerateOptions{Season: s.opts.Season, Today: s.now()}
	master := market.NewRand(s.opts.Seed)

	ids := make([]string, len(players))
	sources := make([]*rand.Rand, len(players))
	for i := range players {
		playerID, err := keys.NewID()
		if err != nil {
			return market.Dataset{}, fmt.Errorf("assign player id: %w", err)
		}
		ids[i] = playerID
		sources[i] = market.SubRand(master)
	}

	pool, err := ants.NewPool(min(s.opts.Workers, max(len(players), 1)))
	if err != nil {
		return market.Dataset{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	rows := make([]market.PlayerRows, len(players))
	var workers sync.WaitGroup
	for i := range players {
		if err := ctx.Err(); err != nil {
			workers.Wait()
			return market.Dataset{}, err
		}
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			rows[i] = market.GeneratePlayer(s.catalog, ids[i], players[i], opts, sources[i])
		}); err != nil {
			workers.Done()
			workers.Wait()
			return market.Dataset{}, fmt.Errorf("submit player %s to worker pool: %w", ids[i], err)
		}
	}
	workers.Wait()

	var ds market.Dataset
	for _, r := range rows {
		ds.Append(r)
	}
	ds.Rumours = market.GenerateRumours(ds.Players, s.seed.Rumours, master)

	if len(ds.Rumours) < len(s.seed.Rumours) {
		s.logger.DebugContext(ctx, "seed rumours skipped for unknown players",
			"skipped", len(s.seed.Rumours)-len(ds.Rumours),
		)
	}
	return ds, nil
}
