package market

import (
	"context"
	"errors"
	"fmt"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/player"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/playerstats"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/transfer"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/valuation"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/watchlist"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/id"
	qb "github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/querybuilder"
)

// Table names. They are part of the external contract together with the
// column names below; see db/migrations.
const (
	TablePlayers    = "tm_players"
	TableHistory    = "tm_value_history"
	TableStatistics = "tm_statistics"
	TableTransfers  = "tm_transfers"
	TableRumours    = "tm_rumours"
	TableWatchlist  = "tm_watchlist"
)

// Columns usable in predicate expressions.
const (
	ColPlayerID    = "player_id"
	ColName        = "name"
	ColClub        = "club"
	ColPosition    = "position"
	ColNationality = "nationality"
	ColStatus      = "status"
	ColAge         = "age"
	ColMarketValue = "market_value"
	ColDate        = "date"
	ColValue       = "value"
	ColSeason      = "season"
	ColCompetition = "competition"
	ColFromClub    = "from_club"
	ColToClub      = "to_club"
	ColRumourID    = "rumour_id"
	ColProbability = "probability"
	ColEntryID     = "entry_id"
	ColUserID      = "user_id"
)

// PlayerIDPrefix and PlayerIDWidth shape player identifiers, e.g. TM-00001.
const (
	PlayerIDPrefix = "TM"
	PlayerIDWidth  = 5
)

var (
	// ErrAppendOnly is returned when deleting from a generated table.
	ErrAppendOnly = errors.New("table is append-only")
)

// Row is the closed set of persisted entity variants.
type Row interface {
	player.Player | valuation.Point | playerstats.SeasonStatistic | transfer.Record | transfer.Rumour | watchlist.Entry
}

// Repository is the primitive table access shared by every store.
type Repository[R Row] interface {
	Insert(ctx context.Context, rows ...R) error
	All(ctx context.Context) ([]R, error)
	Filtered(ctx context.Context, where ...qb.Condition) ([]R, error)
	Delete(ctx context.Context, where ...qb.Condition) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// BuildFunc produces the generated tables. keys hands out player identifiers
// in order.
type BuildFunc func(ctx context.Context, keys id.Generator) (Dataset, error)

// Store groups the tables of the market.
type Store interface {
	Players() Repository[player.Player]
	History() Repository[valuation.Point]
	Statistics() Repository[playerstats.SeasonStatistic]
	Transfers() Repository[transfer.Record]
	Rumours() Repository[transfer.Rumour]
	Watchlist() Repository[watchlist.Entry]

	// Bootstrap runs build and writes its rows only if the player table is
	// empty. The guard and the writes form one unit, so concurrent callers
	// never observe a partial dataset. It reports whether rows were written.
	Bootstrap(ctx context.Context, build BuildFunc) (bool, error)
}

// NewPlayerKeys returns the identifier sequence used for a fresh dataset.
func NewPlayerKeys() id.Generator {
	return id.NewSequence(PlayerIDPrefix, PlayerIDWidth)
}

// Dataset is the output of one generation run.
type Dataset struct {
	Players    []player.Player
	History    []valuation.Point
	Statistics []playerstats.SeasonStatistic
	Transfers  []transfer.Record
	Rumours    []transfer.Rumour
}

// Validate checks row validity and referential integrity.
func (d Dataset) Validate() error {
	clubs := make(map[string]string, len(d.Players))
	for _, p := range d.Players {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := clubs[p.ID]; dup {
			return fmt.Errorf("duplicate player id %s", p.ID)
		}
		clubs[p.ID] = p.Club
	}
	for _, h := range d.History {
		if err := h.Validate(); err != nil {
			return err
		}
		if _, ok := clubs[h.PlayerID]; !ok {
			return fmt.Errorf("value point references unknown player %s", h.PlayerID)
		}
	}
	for _, s := range d.Statistics {
		if err := s.Validate(); err != nil {
			return err
		}
		if _, ok := clubs[s.PlayerID]; !ok {
			return fmt.Errorf("statistic references unknown player %s", s.PlayerID)
		}
	}
	for _, t := range d.Transfers {
		if err := t.Validate(); err != nil {
			return err
		}
		club, ok := clubs[t.PlayerID]
		if !ok {
			return fmt.Errorf("transfer references unknown player %s", t.PlayerID)
		}
		if club != t.ToClub {
			return fmt.Errorf("transfer of %s ends at %s, player is at %s", t.PlayerID, t.ToClub, club)
		}
	}
	rumourIDs := make(map[string]struct{}, len(d.Rumours))
	for _, r := range d.Rumours {
		if err := r.Validate(); err != nil {
			return err
		}
		if _, ok := clubs[r.PlayerID]; !ok {
			return fmt.Errorf("rumour references unknown player %s", r.PlayerID)
		}
		if _, dup := rumourIDs[r.ID]; dup {
			return fmt.Errorf("duplicate rumour id %s", r.ID)
		}
		rumourIDs[r.ID] = struct{}{}
	}
	return nil
}
