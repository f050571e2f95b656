package catalog

import (
	"bytes"
	_ "embed"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidData marks malformed catalog or seed documents.
var ErrInvalidData = errors.New("invalid reference data")

//go:embed catalog.yaml
var catalogYAML []byte

var (
	validate     = validator.New(validator.WithRequiredStructEnabled())
	defaultOnce  sync.Once
	defaultValue *Catalog
	defaultErr   error
)

// Catalog is the immutable reference data: leagues, clubs and positions.
// Accessors return copies.
type Catalog struct {
	leagues      []League
	leagueByName map[string]int
	clubs        []Club
	clubByName   map[string]int
	positions    []Position
	positionByID map[string]int
}

type catalogDocument struct {
	Leagues   []League   `yaml:"leagues" validate:"required,min=1,dive"`
	Clubs     []Club     `yaml:"clubs" validate:"required,min=1,dive"`
	Positions []Position `yaml:"positions" validate:"required,min=1,dive"`
}

// Default returns the embedded catalog. It is decoded once per process.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultValue, defaultErr = Load(catalogYAML)
	})
	return defaultValue, defaultErr
}

// Load decodes a catalog document.
func Load(raw []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := decodeStrict(raw, &doc); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode catalog"), ErrInvalidData)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "validate catalog"), ErrInvalidData)
	}

	c := &Catalog{
		leagues:      doc.Leagues,
		leagueByName: make(map[string]int, len(doc.Leagues)),
		clubs:        doc.Clubs,
		clubByName:   make(map[string]int, len(doc.Clubs)),
		positions:    doc.Positions,
		positionByID: make(map[string]int, len(doc.Positions)),
	}
	for i, l := range doc.Leagues {
		if _, dup := c.leagueByName[l.Name]; dup {
			return nil, errors.Mark(errors.Newf("duplicate league %q", l.Name), ErrInvalidData)
		}
		c.leagueByName[l.Name] = i
	}
	for i, club := range doc.Clubs {
		if _, dup := c.clubByName[club.Name]; dup {
			return nil, errors.Mark(errors.Newf("duplicate club %q", club.Name), ErrInvalidData)
		}
		if _, ok := c.leagueByName[club.League]; !ok && club.League != NoLeague {
			return nil, errors.Mark(errors.Newf("club %q references unknown league %q", club.Name, club.League), ErrInvalidData)
		}
		c.clubByName[club.Name] = i
	}
	if _, ok := c.clubByName[FreeAgentClub]; !ok {
		return nil, errors.Mark(errors.Newf("catalog is missing the %q club", FreeAgentClub), ErrInvalidData)
	}
	for i, p := range doc.Positions {
		if _, dup := c.positionByID[p.Code]; dup {
			return nil, errors.Mark(errors.Newf("duplicate position %q", p.Code), ErrInvalidData)
		}
		c.positionByID[p.Code] = i
	}

	return c, nil
}

func (c *Catalog) Leagues() []League {
	return append([]League(nil), c.leagues...)
}

func (c *Catalog) League(name string) (League, bool) {
	i, ok := c.leagueByName[name]
	if !ok {
		return League{}, false
	}
	return c.leagues[i], true
}

func (c *Catalog) Clubs() []Club {
	return append([]Club(nil), c.clubs...)
}

func (c *Catalog) Club(name string) (Club, bool) {
	i, ok := c.clubByName[name]
	if !ok {
		return Club{}, false
	}
	return c.clubs[i], true
}

func (c *Catalog) ClubsInLeague(league string) []Club {
	out := make([]Club, 0)
	for _, club := range c.clubs {
		if club.League == league {
			out = append(out, club)
		}
	}
	return out
}

// LeagueOfClub is an optional lookup: it reports false for clubs missing from
// the catalog and for the free-agent club.
func (c *Catalog) LeagueOfClub(club string) (League, bool) {
	cl, ok := c.Club(club)
	if !ok {
		return League{}, false
	}
	return c.League(cl.League)
}

func (c *Catalog) Positions() []Position {
	return append([]Position(nil), c.positions...)
}

func (c *Catalog) Position(code string) (Position, bool) {
	i, ok := c.positionByID[code]
	if !ok {
		return Position{}, false
	}
	return c.positions[i], true
}

func (c *Catalog) IsFreeAgent(club string) bool {
	return club == FreeAgentClub
}

func decodeStrict(raw []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty document")
		}
		return err
	}
	return nil
}
