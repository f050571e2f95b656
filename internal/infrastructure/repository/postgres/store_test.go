package postgres_test

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/market"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/player"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/transfer"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/valuation"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/watchlist"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/infrastructure/repository/postgres"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/id"
	qb "github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/querybuilder"
)

// newTestDB starts a Postgres container, applies db/migrations and returns a
// connected *sqlx.DB. The container is terminated when the test ends.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	_, thisFile, _, _ := runtime.Caller(0)
	migrationDir := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "..", "db", "migrations")

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("transfer_market_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err, "starting postgres container")

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := migrate.New("file://"+filepath.ToSlash(migrationDir), connStr)
	require.NoError(t, err, "creating migrator")
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("applying migrations: %v", err)
	}
	srcErr, dbErr := m.Close()
	require.NoError(t, srcErr)
	require.NoError(t, dbErr)

	db, err := postgres.Open(ctx, connStr)
	require.NoError(t, err, "connecting to test database")
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func smallDataset(ctx context.Context, keys id.Generator) (market.Dataset, error) {
	var ds market.Dataset
	for _, club := range []string{"Arsenal", "Free Agent"} {
		playerID, err := keys.NewID()
		if err != nil {
			return market.Dataset{}, err
		}
		status := player.StatusActive
		if club == "Free Agent" {
			status = player.StatusFreeAgent
		}
		ds.Players = append(ds.Players, player.Player{
			ID:            playerID,
			Name:          "Player " + playerID,
			Position:      "CF",
			Foot:          player.FootRight,
			Club:          club,
			Status:        status,
			ContractUntil: time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC),
			MarketValue:   1_000_000,
			HighestValue:  1_000_000,
		})
		ds.History = append(ds.History, valuation.Point{PlayerID: playerID, Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Value: 1_000_000})
	}
	from := "Ajax"
	fee := int64(500_000)
	ds.Players[0].PreviousClub = &from
	ds.Players[0].TransferFee = &fee
	ds.Transfers = []transfer.Record{{PlayerID: ds.Players[0].ID, Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), FromClub: from, ToClub: "Arsenal", Fee: fee, Type: transfer.TypePermanent}}
	ds.Rumours = []transfer.Rumour{{ID: "R-0001", PlayerID: ds.Players[0].ID, FromClub: "Arsenal", ToClub: "Chelsea", Probability: transfer.ProbabilityHigh, Source: "Sky Sports", EstimatedFee: 2_000_000, Status: transfer.RumourStatusActive}}
	return ds, ctx.Err()
}

func TestStore_Bootstrap(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	store := postgres.NewStore(db)

	var created atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.Bootstrap(ctx, smallDataset)
			if err != nil {
				t.Errorf("Bootstrap error: %v", err)
				return
			}
			if ok {
				created.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, created.Load(), "exactly one caller writes the dataset")

	players, err := store.Players().All(ctx)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "TM-00001", players[0].ID)
	require.NotNil(t, players[0].PreviousClub)
	assert.Equal(t, "Ajax", *players[0].PreviousClub)
	assert.Nil(t, players[1].PreviousClub)
	assert.Nil(t, players[1].TransferFee)

	history, err := store.History().Filtered(ctx, qb.Eq(market.ColPlayerID, "TM-00002"))
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].Date.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	rumours, err := store.Rumours().All(ctx)
	require.NoError(t, err)
	require.Len(t, rumours, 1)
	assert.Equal(t, transfer.ProbabilityHigh, rumours[0].Probability)

	_, err = store.Transfers().Delete(ctx)
	assert.ErrorIs(t, err, market.ErrAppendOnly)
}

func TestStore_BootstrapRollsBackInvalidDataset(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	store := postgres.NewStore(db)

	_, err := store.Bootstrap(ctx, func(ctx context.Context, keys id.Generator) (market.Dataset, error) {
		ds, err := smallDataset(ctx, keys)
		ds.Rumours[0].PlayerID = "TM-99999"
		return ds, err
	})
	require.Error(t, err)

	n, err := store.Players().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_Watchlist(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	store := postgres.NewStoreWithKeys(db, id.NewSequence("WL", 3), func() time.Time { return now })

	_, err := store.Bootstrap(ctx, smallDataset)
	require.NoError(t, err)

	repo := store.Watchlist()
	require.NoError(t, repo.Insert(ctx,
		watchlist.Entry{UserID: "u1", PlayerID: "TM-00001", Note: "left back cover"},
		watchlist.Entry{UserID: "u1", PlayerID: "TM-00002"},
	))

	entries, err := repo.Filtered(ctx, qb.Eq(market.ColUserID, "u1"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "WL-001", entries[0].ID)
	assert.True(t, entries[0].CreatedAt.Equal(now))

	removed, err := repo.Delete(ctx, qb.Eq(market.ColUserID, "u1"), qb.Eq(market.ColPlayerID, "TM-00001"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	err = repo.Insert(ctx, watchlist.Entry{UserID: "u1", PlayerID: "TM-77777"})
	assert.Error(t, err, "foreign key rejects unknown players")
}
