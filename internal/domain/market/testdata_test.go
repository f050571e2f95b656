package market

import (
	"testing"
	"time"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/catalog"
)

var testToday = time.Date(2025, time.March, 14, 16, 30, 0, 0, time.UTC)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

// generateDataset runs the generation rules sequentially with the default seed.
func generateDataset(t *testing.T, seed int64) Dataset {
	t.Helper()

	c := testCatalog(t)
	s, err := catalog.DefaultSeed()
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}

	keys := NewPlayerKeys()
	master := NewRand(seed)
	opts := GenerateOptions{Season: "2024/25", Today: testToday}

	var ds Dataset
	for _, sp := range s.Players {
		playerID, err := keys.NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		ds.Append(GeneratePlayer(c, playerID, sp, opts, SubRand(master)))
	}
	ds.Rumours = GenerateRumours(ds.Players, s.Rumours, master)
	return ds
}
