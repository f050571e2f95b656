package usecase

import (
	"fmt"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/catalog"
)

// LoadReferenceData decodes the embedded catalog and seed documents. Any
// failure is a startup configuration error.
func LoadReferenceData() (*catalog.Catalog, catalog.Seed, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, catalog.Seed{}, fmt.Errorf("%w: load catalog: %w", ErrConfiguration, err)
	}
	seed, err := catalog.DefaultSeed()
	if err != nil {
		return nil, catalog.Seed{}, fmt.Errorf("%w: load seed: %w", ErrConfiguration, err)
	}
	return cat, seed, nil
}
