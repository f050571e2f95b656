package usecase

import (
	"testing"
	"time"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/catalog"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/market"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/infrastructure/repository/memory"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/cache"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/logging"
)

var fixedNow = time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)

const testSeed int64 = 20240701

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

func referenceData(t *testing.T) (*catalog.Catalog, catalog.Seed) {
	t.Helper()
	cat, seed, err := LoadReferenceData()
	if err != nil {
		t.Fatalf("load reference data: %v", err)
	}
	return cat, seed
}

func newDatasetService(t *testing.T, store market.Store, workers int, c *cache.Store) *DatasetService {
	t.Helper()
	cat, seed := referenceData(t)
	svc := NewDatasetService(store, cat, seed, DatasetOptions{Seed: testSeed, Season: "2024/25", Workers: workers}, c, logging.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// generatedServices returns services over a bootstrapped memory store.
func generatedServices(t *testing.T) (*memory.Store, *MarketService) {
	t.Helper()
	store := memory.NewStore()
	shared := cache.NewStore(time.Minute)
	if _, err := newDatasetService(t, store, 4, shared).EnsureDataset(t.Context()); err != nil {
		t.Fatalf("ensure dataset: %v", err)
	}
	cat, _ := referenceData(t)
	return store, NewMarketService(store, cat, shared, nil, logging.NewNop())
}
