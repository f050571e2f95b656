package market

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/catalog"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/player"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/playerstats"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/transfer"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/valuation"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/watchlist"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrClubNotFound   = errors.New("club not found")
)

// U21MaxAge is the oldest age that still counts as under 21.
const U21MaxAge = 21

// SortField selects the ordering of a search result.
type SortField string

const (
	SortByMarketValue  SortField = "market_value"
	SortByHighestValue SortField = "highest_value"
	SortByAge          SortField = "age"
	SortByName         SortField = "name"
	SortByHeight       SortField = "height"
)

// Filter is a conjunction of optional constraints. Empty strings and nil
// bounds do not constrain. Inverted ranges match nothing.
type Filter struct {
	Name        string
	League      string
	Position    string
	Nationality string
	MinValue    *int64
	MaxValue    *int64
	MinAge      *int
	MaxAge      *int
	SortBy      SortField
	Ascending   bool
}

func (f Filter) matches(s *Snapshot, p player.Player) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.League != "" {
		league, ok := s.leagueOf(p)
		if !ok || league != f.League {
			return false
		}
	}
	if f.Position != "" && p.Position != f.Position {
		return false
	}
	if f.Nationality != "" && p.Nationality != f.Nationality {
		return false
	}
	if f.MinValue != nil && p.MarketValue < *f.MinValue {
		return false
	}
	if f.MaxValue != nil && p.MarketValue > *f.MaxValue {
		return false
	}
	if f.MinAge != nil && p.Age < *f.MinAge {
		return false
	}
	if f.MaxAge != nil && p.Age > *f.MaxAge {
		return false
	}
	return true
}

// Search returns matching players ordered by f.SortBy, market value
// descending by default. Ties keep identifier order.
func (s *Snapshot) Search(f Filter) []player.Player {
	out := make([]player.Player, 0)
	for _, p := range s.players {
		if f.matches(s, p) {
			out = append(out, p)
		}
	}
	sortPlayers(out, f.SortBy, f.Ascending)
	return out
}

// TopByValue is the n most valuable players.
func (s *Snapshot) TopByValue(n int) []player.Player {
	return truncate(s.Search(Filter{}), n)
}

// TopU21 is the n most valuable players aged 21 or younger.
func (s *Snapshot) TopU21(n int) []player.Player {
	maxAge := U21MaxAge
	return truncate(s.Search(Filter{MaxAge: &maxAge}), n)
}

func (s *Snapshot) TopByPosition(position string, n int) []player.Player {
	return truncate(s.Search(Filter{Position: position}), n)
}

func (s *Snapshot) TopByNationality(nationality string, n int) []player.Player {
	return truncate(s.Search(Filter{Nationality: nationality}), n)
}

// FreeAgents is every player without a club, most valuable first.
func (s *Snapshot) FreeAgents() []player.Player {
	return s.withStatus(player.StatusFreeAgent)
}

func (s *Snapshot) TransferListed() []player.Player {
	return s.withStatus(player.StatusTransferListed)
}

func (s *Snapshot) withStatus(status player.Status) []player.Player {
	out := make([]player.Player, 0)
	for _, p := range s.players {
		if p.Status == status {
			out = append(out, p)
		}
	}
	sortPlayers(out, SortByMarketValue, false)
	return out
}

// Nationalities lists the distinct nationalities, sorted.
func (s *Snapshot) Nationalities() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range s.players {
		if _, ok := seen[p.Nationality]; ok {
			continue
		}
		seen[p.Nationality] = struct{}{}
		out = append(out, p.Nationality)
	}
	slices.Sort(out)
	return out
}

// Profile is the composite view of one player.
type Profile struct {
	Player     player.Player
	History    []valuation.Point
	Transfers  []transfer.Record
	Statistics []playerstats.SeasonStatistic
	Rumours    []transfer.Rumour
	League     string
}

func (s *Snapshot) Profile(playerID string) (Profile, error) {
	p, ok := s.Player(playerID)
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}

	out := Profile{
		Player:     p,
		History:    s.History(playerID),
		Transfers:  s.Transfers(playerID),
		Statistics: s.Statistics(playerID),
		Rumours:    make([]transfer.Rumour, 0),
	}
	out.League, _ = s.leagueOf(p)
	for _, r := range s.rumours {
		if r.PlayerID == playerID {
			out.Rumours = append(out.Rumours, r)
		}
	}
	return out, nil
}

// ComparisonRow is one line of a side-by-side table.
type ComparisonRow struct {
	Label string
	Left  string
	Right string
}

type Comparison struct {
	Left       player.Player
	Right      player.Player
	Attributes []ComparisonRow
	// Statistics is nil unless both players have season statistics.
	Statistics []ComparisonRow
}

func (s *Snapshot) Compare(leftID, rightID string) (Comparison, error) {
	left, ok := s.Player(leftID)
	if !ok {
		return Comparison{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, leftID)
	}
	right, ok := s.Player(rightID)
	if !ok {
		return Comparison{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, rightID)
	}

	out := Comparison{
		Left:  left,
		Right: right,
		Attributes: []ComparisonRow{
			{Label: "Age", Left: strconv.Itoa(left.Age), Right: strconv.Itoa(right.Age)},
			{Label: "Position", Left: left.Position, Right: right.Position},
			{Label: "Club", Left: left.Club, Right: right.Club},
			{Label: "Nation", Left: left.Nationality, Right: right.Nationality},
			{Label: "Value", Left: FormatMoney(left.MarketValue), Right: FormatMoney(right.MarketValue)},
			{Label: "Height", Left: fmt.Sprintf("%dcm", left.HeightCM), Right: fmt.Sprintf("%dcm", right.HeightCM)},
			{Label: "Foot", Left: string(left.Foot), Right: string(right.Foot)},
			{Label: "Status", Left: string(left.Status), Right: string(right.Status)},
			{Label: "Int. Caps", Left: strconv.Itoa(left.InternationalCaps), Right: strconv.Itoa(right.InternationalCaps)},
		},
	}

	ls, lok := s.latestStatistic(leftID)
	rs, rok := s.latestStatistic(rightID)
	if lok && rok {
		out.Statistics = []ComparisonRow{
			{Label: "Appearances", Left: strconv.Itoa(ls.Appearances), Right: strconv.Itoa(rs.Appearances)},
			{Label: "Goals", Left: strconv.Itoa(ls.Goals), Right: strconv.Itoa(rs.Goals)},
			{Label: "Assists", Left: strconv.Itoa(ls.Assists), Right: strconv.Itoa(rs.Assists)},
			{Label: "Minutes", Left: strconv.Itoa(ls.Minutes), Right: strconv.Itoa(rs.Minutes)},
		}
	}
	return out, nil
}

// Squad is the club view: players, total value and the value per position.
type Squad struct {
	Club       catalog.Club
	Catalogued bool
	Players    []player.Player
	TotalValue int64
	ByPosition []Group
}

// ClubSquad fails only for a club that is neither catalogued nor the current
// club of any player.
func (s *Snapshot) ClubSquad(club string) (Squad, error) {
	out := Squad{Players: make([]player.Player, 0)}
	out.Club, out.Catalogued = s.catalog.Club(club)
	if !out.Catalogued {
		out.Club = catalog.Club{Name: club}
	}

	g := newGrouper()
	for _, p := range s.players {
		if p.Club != club {
			continue
		}
		out.Players = append(out.Players, p)
		out.TotalValue += p.MarketValue
		g.add(p.Position, p.MarketValue)
	}
	if !out.Catalogued && len(out.Players) == 0 {
		return Squad{}, fmt.Errorf("%w: %s", ErrClubNotFound, club)
	}

	sortPlayers(out.Players, SortByMarketValue, false)
	out.ByPosition = g.byValue()
	return out, nil
}

// StatLine is a player ranked by a statistic.
type StatLine struct {
	Player    player.Player
	Statistic playerstats.SeasonStatistic
	// PerAppearance is the ranked metric per appearance, two decimals.
	PerAppearance float64
}

func (s *Snapshot) TopScorers(n int) []StatLine {
	return s.rankStatistic(n, func(st playerstats.SeasonStatistic) int { return st.Goals })
}

func (s *Snapshot) TopAssists(n int) []StatLine {
	return s.rankStatistic(n, func(st playerstats.SeasonStatistic) int { return st.Assists })
}

func (s *Snapshot) TopGoalContributions(n int) []StatLine {
	return s.rankStatistic(n, playerstats.SeasonStatistic.GoalContributions)
}

func (s *Snapshot) rankStatistic(n int, metric func(playerstats.SeasonStatistic) int) []StatLine {
	out := make([]StatLine, 0, len(s.players))
	for _, p := range s.players {
		st, ok := s.latestStatistic(p.ID)
		if !ok {
			continue
		}
		out = append(out, StatLine{
			Player:        p,
			Statistic:     st,
			PerAppearance: st.PerAppearance(metric(st)),
		})
	}
	slices.SortStableFunc(out, func(a, b StatLine) int {
		return cmp.Compare(metric(b.Statistic), metric(a.Statistic))
	})
	return truncate(out, n)
}

// TransferView is a transfer joined with its player.
type TransferView struct {
	Record     transfer.Record
	PlayerName string
	Position   string
}

// RecentTransfers is the n latest moves, newest first.
func (s *Snapshot) RecentTransfers(n int) []TransferView {
	out := make([]TransferView, 0, len(s.transfers))
	for _, t := range s.transfers {
		p, ok := s.Player(t.PlayerID)
		if !ok {
			continue
		}
		out = append(out, TransferView{Record: t, PlayerName: p.Name, Position: p.Position})
	}
	slices.SortStableFunc(out, func(a, b TransferView) int { return b.Record.Date.Compare(a.Record.Date) })
	return truncate(out, n)
}

// RumourView is a rumour joined with its player.
type RumourView struct {
	Rumour      transfer.Rumour
	PlayerName  string
	Position    string
	MarketValue int64
}

func (s *Snapshot) Rumours() []RumourView {
	out := make([]RumourView, 0, len(s.rumours))
	for _, r := range s.rumours {
		p, ok := s.Player(r.PlayerID)
		if !ok {
			continue
		}
		out = append(out, RumourView{Rumour: r, PlayerName: p.Name, Position: p.Position, MarketValue: p.MarketValue})
	}
	return out
}

// WatchedPlayer is a watchlist entry joined with the current player row.
type WatchedPlayer struct {
	Entry  watchlist.Entry
	Player player.Player
}

// JoinWatchlist keeps entry order and drops entries of unknown players.
func (s *Snapshot) JoinWatchlist(entries []watchlist.Entry) []WatchedPlayer {
	out := make([]WatchedPlayer, 0, len(entries))
	for _, e := range entries {
		p, ok := s.Player(e.PlayerID)
		if !ok {
			continue
		}
		out = append(out, WatchedPlayer{Entry: e, Player: p})
	}
	return out
}

func sortPlayers(players []player.Player, by SortField, ascending bool) {
	var compare func(a, b player.Player) int
	switch by {
	case SortByHighestValue:
		compare = func(a, b player.Player) int { return cmp.Compare(a.HighestValue, b.HighestValue) }
	case SortByAge:
		compare = func(a, b player.Player) int { return cmp.Compare(a.Age, b.Age) }
	case SortByName:
		compare = func(a, b player.Player) int { return cmp.Compare(a.Name, b.Name) }
	case SortByHeight:
		compare = func(a, b player.Player) int { return cmp.Compare(a.HeightCM, b.HeightCM) }
	default:
		compare = func(a, b player.Player) int { return cmp.Compare(a.MarketValue, b.MarketValue) }
	}

	slices.SortStableFunc(players, func(a, b player.Player) int {
		if ascending {
			return compare(a, b)
		}
		return compare(b, a)
	})
}

func truncate[T any](items []T, n int) []T {
	if n <= 0 {
		return items[:0]
	}
	if n < len(items) {
		return items[:n]
	}
	return items
}

// ValidSortField reports whether f names a supported ordering.
func ValidSortField(f SortField) bool {
	switch f {
	case "", SortByMarketValue, SortByHighestValue, SortByAge, SortByName, SortByHeight:
		return true
	}
	return false
}
