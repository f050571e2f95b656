package market

import (
	"cmp"
	"slices"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/catalog"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/player"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/playerstats"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/transfer"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/valuation"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/id"
)

// Snapshot is a read-only view of the generated tables joined with the
// catalog. All query methods are pure and safe for concurrent use.
type Snapshot struct {
	catalog *catalog.Catalog

	players    []player.Player
	statistics []playerstats.SeasonStatistic
	transfers  []transfer.Record
	rumours    []transfer.Rumour

	byID        map[string]int
	history     map[string][]valuation.Point
	statsBy     map[string][]playerstats.SeasonStatistic
	transfersBy map[string][]transfer.Record
}

// NewSnapshot indexes ds. Players are ordered by sequence number, which is
// also their generation order; rankings break ties on that order.
func NewSnapshot(cat *catalog.Catalog, ds Dataset) *Snapshot {
	s := &Snapshot{
		catalog:     cat,
		players:     append([]player.Player(nil), ds.Players...),
		statistics:  append([]playerstats.SeasonStatistic(nil), ds.Statistics...),
		transfers:   append([]transfer.Record(nil), ds.Transfers...),
		rumours:     append([]transfer.Rumour(nil), ds.Rumours...),
		byID:        make(map[string]int, len(ds.Players)),
		history:     make(map[string][]valuation.Point, len(ds.Players)),
		statsBy:     make(map[string][]playerstats.SeasonStatistic, len(ds.Players)),
		transfersBy: make(map[string][]transfer.Record),
	}

	slices.SortStableFunc(s.players, func(a, b player.Player) int { return id.Compare(a.ID, b.ID) })
	for i, p := range s.players {
		s.byID[p.ID] = i
	}
	for _, h := range ds.History {
		s.history[h.PlayerID] = append(s.history[h.PlayerID], h)
	}
	for pid := range s.history {
		valuation.SortAscending(s.history[pid])
	}
	for _, st := range s.statistics {
		s.statsBy[st.PlayerID] = append(s.statsBy[st.PlayerID], st)
	}
	for _, t := range s.transfers {
		s.transfersBy[t.PlayerID] = append(s.transfersBy[t.PlayerID], t)
	}
	slices.SortStableFunc(s.rumours, func(a, b transfer.Rumour) int { return cmp.Compare(a.ID, b.ID) })

	return s
}

func (s *Snapshot) Catalog() *catalog.Catalog {
	return s.catalog
}

// Players returns a copy of all players in sequence order.
func (s *Snapshot) Players() []player.Player {
	return append([]player.Player(nil), s.players...)
}

func (s *Snapshot) Len() int {
	return len(s.players)
}

func (s *Snapshot) Player(id string) (player.Player, bool) {
	i, ok := s.byID[id]
	if !ok {
		return player.Player{}, false
	}
	return s.players[i], true
}

// History returns the value series of a player, oldest first.
func (s *Snapshot) History(playerID string) []valuation.Point {
	return append([]valuation.Point(nil), s.history[playerID]...)
}

// Transfers returns the moves of a player, newest first.
func (s *Snapshot) Transfers(playerID string) []transfer.Record {
	out := append([]transfer.Record(nil), s.transfersBy[playerID]...)
	slices.SortStableFunc(out, func(a, b transfer.Record) int { return b.Date.Compare(a.Date) })
	return out
}

// Statistics returns the season rows of a player, latest season first.
func (s *Snapshot) Statistics(playerID string) []playerstats.SeasonStatistic {
	out := append([]playerstats.SeasonStatistic(nil), s.statsBy[playerID]...)
	slices.SortStableFunc(out, func(a, b playerstats.SeasonStatistic) int { return cmp.Compare(b.Season, a.Season) })
	return out
}

func (s *Snapshot) latestStatistic(playerID string) (playerstats.SeasonStatistic, bool) {
	stats := s.statsBy[playerID]
	if len(stats) == 0 {
		return playerstats.SeasonStatistic{}, false
	}
	latest := stats[0]
	for _, st := range stats[1:] {
		if st.Season > latest.Season {
			latest = st
		}
	}
	return latest, true
}

// leagueOf is the optional club to league lookup used for filters and grouping.
func (s *Snapshot) leagueOf(p player.Player) (string, bool) {
	l, ok := s.catalog.LeagueOfClub(p.Club)
	if !ok {
		return "", false
	}
	return l.Name, true
}
