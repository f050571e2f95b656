package catalog

import (
	_ "embed"
	"sync"

	"github.com/cockroachdb/errors"
)

//go:embed seed.yaml
var seedYAML []byte

var (
	seedOnce  sync.Once
	seedValue Seed
	seedErr   error
)

// Pointer fields let validation tell a missing key from a zero value.
type seedPlayerDocument struct {
	Name        string   `yaml:"name" validate:"required"`
	Club        string   `yaml:"club" validate:"required"`
	Position    string   `yaml:"position" validate:"required"`
	Nationality string   `yaml:"nationality" validate:"required"`
	Age         *int     `yaml:"age" validate:"required,min=15,max=50"`
	Value       *float64 `yaml:"value" validate:"required,min=0"`
	Number      *int     `yaml:"number" validate:"required,min=0,max=99"`
}

type seedRumourDocument struct {
	Player      string   `yaml:"player" validate:"required"`
	From        string   `yaml:"from" validate:"required"`
	To          string   `yaml:"to" validate:"required"`
	Probability string   `yaml:"probability" validate:"required,oneof=Low Medium High"`
	Fee         *float64 `yaml:"fee" validate:"required,min=0"`
}

type seedDocument struct {
	Players []seedPlayerDocument `yaml:"players" validate:"required,min=1,dive"`
	Rumours []seedRumourDocument `yaml:"rumours" validate:"dive"`
}

// DefaultSeed returns the embedded seed, checked against the default catalog.
func DefaultSeed() (Seed, error) {
	seedOnce.Do(func() {
		c, err := Default()
		if err != nil {
			seedErr = err
			return
		}
		seedValue, seedErr = LoadSeed(seedYAML, c)
	})
	return seedValue, seedErr
}

// LoadSeed decodes and validates a seed document. Positions must exist in c.
// Clubs are not checked: players at uncatalogued clubs are valid and simply
// have no league.
func LoadSeed(raw []byte, c *Catalog) (Seed, error) {
	var doc seedDocument
	if err := decodeStrict(raw, &doc); err != nil {
		return Seed{}, errors.Mark(errors.Wrap(err, "decode seed"), ErrInvalidData)
	}
	if err := validate.Struct(doc); err != nil {
		return Seed{}, errors.Mark(errors.Wrap(err, "validate seed"), ErrInvalidData)
	}

	out := Seed{
		Players: make([]SeedPlayer, 0, len(doc.Players)),
		Rumours: make([]SeedRumour, 0, len(doc.Rumours)),
	}
	for i, p := range doc.Players {
		if _, ok := c.Position(p.Position); !ok {
			return Seed{}, errors.Mark(errors.Newf("seed player %d (%s): unknown position %q", i, p.Name, p.Position), ErrInvalidData)
		}
		out.Players = append(out.Players, SeedPlayer{
			Name:        p.Name,
			Club:        p.Club,
			Position:    p.Position,
			Nationality: p.Nationality,
			Age:         *p.Age,
			Value:       *p.Value,
			Number:      *p.Number,
		})
	}
	for _, r := range doc.Rumours {
		out.Rumours = append(out.Rumours, SeedRumour{
			Player:      r.Player,
			From:        r.From,
			To:          r.To,
			Probability: r.Probability,
			Fee:         *r.Fee,
		})
	}

	return out, nil
}
