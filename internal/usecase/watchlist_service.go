package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/market"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/watchlist"
	idgen "github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/id"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/logging"
	qb "github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/querybuilder"
)

const maxWatchlistNoteLength = 280

type AddWatchlistInput struct {
	UserID   string
	PlayerID string
	Note     string
}

type snapshotSource interface {
	Snapshot(ctx context.Context) (*market.Snapshot, error)
}

type WatchlistService struct {
	store     market.Store
	snapshots snapshotSource
	idGen     idgen.Generator
	logger    *logging.Logger
	now       func() time.Time
}

func NewWatchlistService(store market.Store, snapshots snapshotSource, idGen idgen.Generator, logger *logging.Logger) *WatchlistService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WatchlistService{
		store:     store,
		snapshots: snapshots,
		idGen:     idGen,
		logger:    logger,
		now:       time.Now,
	}
}

// Add stores a new entry. Repeated adds of the same player are kept.
func (s *WatchlistService) Add(ctx context.Context, input AddWatchlistInput) (watchlist.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WatchlistService.Add")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	input.Note = strings.TrimSpace(input.Note)
	if input.UserID == "" {
		return watchlist.Entry{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.PlayerID == "" {
		return watchlist.Entry{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if len([]rune(input.Note)) > maxWatchlistNoteLength {
		return watchlist.Entry{}, fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, maxWatchlistNoteLength)
	}

	found, err := s.store.Players().Filtered(ctx, qb.Eq(market.ColPlayerID, input.PlayerID))
	if err != nil {
		return watchlist.Entry{}, fmt.Errorf("%w: lookup player: %w", ErrDependencyUnavailable, err)
	}
	if len(found) == 0 {
		return watchlist.Entry{}, fmt.Errorf("%w: player=%s", ErrInvalidReference, input.PlayerID)
	}

	entryID, err := s.idGen.NewID()
	if err != nil {
		return watchlist.Entry{}, fmt.Errorf("generate watchlist entry id: %w", err)
	}
	entry := watchlist.Entry{
		ID:        entryID,
		UserID:    input.UserID,
		PlayerID:  input.PlayerID,
		Note:      input.Note,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Watchlist().Insert(ctx, entry); err != nil {
		return watchlist.Entry{}, fmt.Errorf("%w: insert watchlist entry: %w", ErrDependencyUnavailable, err)
	}

	s.logger.DebugContext(ctx, "watchlist entry added", "user_id", entry.UserID, "player_id", entry.PlayerID)
	return entry, nil
}

// Remove deletes every entry of the user for the player and returns how many
// were removed. Removing nothing is not an error.
func (s *WatchlistService) Remove(ctx context.Context, userID, playerID string) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WatchlistService.Remove")
	defer span.End()

	userID = strings.TrimSpace(userID)
	playerID = strings.TrimSpace(playerID)
	if userID == "" {
		return 0, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if playerID == "" {
		return 0, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	removed, err := s.store.Watchlist().Delete(ctx,
		qb.Eq(market.ColUserID, userID),
		qb.Eq(market.ColPlayerID, playerID),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: delete watchlist entries: %w", ErrDependencyUnavailable, err)
	}
	return removed, nil
}

// List returns the user's entries joined with current player data, oldest
// first.
func (s *WatchlistService) List(ctx context.Context, userID string) ([]market.WatchedPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WatchlistService.List")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	entries, err := s.store.Watchlist().Filtered(ctx, qb.Eq(market.ColUserID, userID))
	if err != nil {
		return nil, fmt.Errorf("%w: list watchlist entries: %w", ErrDependencyUnavailable, err)
	}
	slices.SortStableFunc(entries, func(a, b watchlist.Entry) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.JoinWatchlist(entries), nil
}
