package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/catalog"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/market"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/player"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/cache"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/logging"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/resilience"
)

const snapshotCacheKey = "market:snapshot"

// MarketService answers read queries from an in-process snapshot of the
// generated tables.
type MarketService struct {
	store   market.Store
	catalog *catalog.Catalog
	cache   *cache.Store
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

func NewMarketService(
	store market.Store,
	cat *catalog.Catalog,
	cache *cache.Store,
	breaker *resilience.CircuitBreaker,
	logger *logging.Logger,
) *MarketService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MarketService{
		store:   store,
		catalog: cat,
		cache:   cache,
		breaker: breaker,
		logger:  logger,
	}
}

func (s *MarketService) Catalog() *catalog.Catalog {
	return s.catalog
}

// Snapshot returns the cached snapshot or loads every generated table.
func (s *MarketService) Snapshot(ctx context.Context) (*market.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Snapshot")
	defer span.End()

	snap, err := cache.Load(ctx, s.cache, snapshotCacheKey, s.loadSnapshot)
	recordSpanError(span, err)
	return snap, err
}

func (s *MarketService) loadSnapshot(ctx context.Context) (*market.Snapshot, error) {
	var ds market.Dataset
	err := s.breaker.Execute(ctx, func(ctx context.Context) error {
		p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
		p.Go(func(ctx context.Context) (err error) {
			ds.Players, err = s.store.Players().All(ctx)
			return err
		})
		p.Go(func(ctx context.Context) (err error) {
			ds.History, err = s.store.History().All(ctx)
			return err
		})
		p.Go(func(ctx context.Context) (err error) {
			ds.Statistics, err = s.store.Statistics().All(ctx)
			return err
		})
		p.Go(func(ctx context.Context) (err error) {
			ds.Transfers, err = s.store.Transfers().All(ctx)
			return err
		})
		p.Go(func(ctx context.Context) (err error) {
			ds.Rumours, err = s.store.Rumours().All(ctx)
			return err
		})
		return p.Wait()
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("load market snapshot: %w", err)
		}
		if !errors.Is(err, resilience.ErrCircuitOpen) {
			s.logger.WarnContext(ctx, "load market snapshot failed", "error", err)
		}
		return nil, fmt.Errorf("%w: load market snapshot: %w", ErrDependencyUnavailable, err)
	}

	return market.NewSnapshot(s.catalog, ds), nil
}

type SearchInput struct {
	Name        string
	League      string
	Position    string
	Nationality string
	MinValue    *int64
	MaxValue    *int64
	MinAge      *int
	MaxAge      *int
	SortBy      string
	Ascending   bool
}

func (s *MarketService) Search(ctx context.Context, input SearchInput) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Search")
	defer span.End()

	filter := market.Filter{
		Name:        strings.TrimSpace(input.Name),
		League:      strings.TrimSpace(input.League),
		Position:    strings.TrimSpace(input.Position),
		Nationality: strings.TrimSpace(input.Nationality),
		MinValue:    input.MinValue,
		MaxValue:    input.MaxValue,
		MinAge:      input.MinAge,
		MaxAge:      input.MaxAge,
		SortBy:      market.SortField(strings.ToLower(strings.TrimSpace(input.SortBy))),
		Ascending:   input.Ascending,
	}
	if filter.SortBy == "" {
		filter.SortBy = market.SortByMarketValue
	}
	if !market.ValidSortField(filter.SortBy) {
		return nil, fmt.Errorf("%w: unsupported sort field %q", ErrInvalidInput, input.SortBy)
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Search(filter), nil
}

func (s *MarketService) Profile(ctx context.Context, playerID string) (market.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Profile", attribute.String("player.id", playerID))
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return market.Profile{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return market.Profile{}, err
	}
	profile, err := snap.Profile(playerID)
	if err != nil {
		return market.Profile{}, mapMarketError(err)
	}
	return profile, nil
}

func (s *MarketService) Compare(ctx context.Context, leftID, rightID string) (market.Comparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Compare")
	defer span.End()

	leftID = strings.TrimSpace(leftID)
	rightID = strings.TrimSpace(rightID)
	if leftID == "" || rightID == "" {
		return market.Comparison{}, fmt.Errorf("%w: two player ids are required", ErrInvalidInput)
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return market.Comparison{}, err
	}
	out, err := snap.Compare(leftID, rightID)
	if err != nil {
		return market.Comparison{}, mapMarketError(err)
	}
	return out, nil
}

func (s *MarketService) ClubSquad(ctx context.Context, club string) (market.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.ClubSquad", attribute.String("club.name", club))
	defer span.End()

	club = strings.TrimSpace(club)
	if club == "" {
		return market.Squad{}, fmt.Errorf("%w: club is required", ErrInvalidInput)
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return market.Squad{}, err
	}
	squad, err := snap.ClubSquad(club)
	if err != nil {
		return market.Squad{}, mapMarketError(err)
	}
	return squad, nil
}

// Ranking selects one of the top-N player rankings.
type Ranking string

const (
	RankingValue       Ranking = "value"
	RankingU21         Ranking = "u21"
	RankingPosition    Ranking = "position"
	RankingNationality Ranking = "nationality"
)

type RankingInput struct {
	Ranking Ranking
	// Key is the position code or nationality for the keyed rankings.
	Key   string
	Limit int
}

func (s *MarketService) TopPlayers(ctx context.Context, input RankingInput) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.TopPlayers",
		attribute.String("ranking", string(input.Ranking)),
		attribute.Int("limit", input.Limit),
	)
	defer span.End()

	key := strings.TrimSpace(input.Key)
	switch input.Ranking {
	case RankingValue, RankingU21:
	case RankingPosition, RankingNationality:
		if key == "" {
			return nil, fmt.Errorf("%w: %s ranking requires a key", ErrInvalidInput, input.Ranking)
		}
	default:
		return nil, fmt.Errorf("%w: unknown ranking %q", ErrInvalidInput, input.Ranking)
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	switch input.Ranking {
	case RankingU21:
		return snap.TopU21(input.Limit), nil
	case RankingPosition:
		return snap.TopByPosition(key, input.Limit), nil
	case RankingNationality:
		return snap.TopByNationality(key, input.Limit), nil
	default:
		return snap.TopByValue(input.Limit), nil
	}
}

func (s *MarketService) PlayersWithStatus(ctx context.Context, status player.Status) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.PlayersWithStatus")
	defer span.End()

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	switch status {
	case player.StatusFreeAgent:
		return snap.FreeAgents(), nil
	case player.StatusTransferListed:
		return snap.TransferListed(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported status %q", ErrInvalidInput, status)
	}
}

// StatMetric selects the season statistic a leaderboard ranks by.
type StatMetric string

const (
	StatGoals         StatMetric = "goals"
	StatAssists       StatMetric = "assists"
	StatContributions StatMetric = "contributions"
)

func (s *MarketService) Leaderboard(ctx context.Context, metric StatMetric, limit int) ([]market.StatLine, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Leaderboard")
	defer span.End()

	switch metric {
	case StatGoals, StatAssists, StatContributions:
	default:
		return nil, fmt.Errorf("%w: unknown statistic %q", ErrInvalidInput, metric)
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	switch metric {
	case StatAssists:
		return snap.TopAssists(limit), nil
	case StatContributions:
		return snap.TopGoalContributions(limit), nil
	default:
		return snap.TopScorers(limit), nil
	}
}

func (s *MarketService) RecentTransfers(ctx context.Context, limit int) ([]market.TransferView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.RecentTransfers")
	defer span.End()

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.RecentTransfers(limit), nil
}

func (s *MarketService) Rumours(ctx context.Context) ([]market.RumourView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Rumours")
	defer span.End()

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Rumours(), nil
}

func (s *MarketService) Nationalities(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Nationalities")
	defer span.End()

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Nationalities(), nil
}

// Grouping selects one of the grouped aggregations.
type Grouping string

const (
	GroupValueByLeague      Grouping = "league"
	GroupValueByNationality Grouping = "nationality"
	GroupCountByPosition    Grouping = "position"
)

func (s *MarketService) Aggregate(ctx context.Context, grouping Grouping) ([]market.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Aggregate")
	defer span.End()

	switch grouping {
	case GroupValueByLeague, GroupValueByNationality, GroupCountByPosition:
	default:
		return nil, fmt.Errorf("%w: unknown grouping %q", ErrInvalidInput, grouping)
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	switch grouping {
	case GroupValueByNationality:
		return snap.ValueByNationality(), nil
	case GroupCountByPosition:
		return snap.CountByPosition(), nil
	default:
		return snap.ValueByLeague(), nil
	}
}

func (s *MarketService) AgeHistogram(ctx context.Context) ([]market.AgeBucket, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.AgeHistogram")
	defer span.End()

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.AgeHistogram(), nil
}

func (s *MarketService) Summary(ctx context.Context) (market.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Summary")
	defer span.End()

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return market.Summary{}, err
	}
	return snap.Summary(), nil
}

func mapMarketError(err error) error {
	switch {
	case errors.Is(err, market.ErrPlayerNotFound), errors.Is(err, market.ErrClubNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return err
	}
}
