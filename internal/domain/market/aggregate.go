package market

import (
	"cmp"
	"slices"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/player"
)

// Group is one bucket of a grouped aggregation.
type Group struct {
	Key   string
	Value int64
	Count int
}

type grouper struct {
	index  map[string]int
	groups []Group
}

func newGrouper() *grouper {
	return &grouper{index: make(map[string]int)}
}

func (g *grouper) add(key string, value int64) {
	i, ok := g.index[key]
	if !ok {
		i = len(g.groups)
		g.index[key] = i
		g.groups = append(g.groups, Group{Key: key})
	}
	g.groups[i].Value += value
	g.groups[i].Count++
}

// byValue orders groups by summed value descending, then key.
func (g *grouper) byValue() []Group {
	out := append([]Group{}, g.groups...)
	slices.SortFunc(out, func(a, b Group) int {
		return cmp.Or(cmp.Compare(b.Value, a.Value), cmp.Compare(a.Key, b.Key))
	})
	return out
}

func (g *grouper) byCount() []Group {
	out := append([]Group{}, g.groups...)
	slices.SortFunc(out, func(a, b Group) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Key, b.Key))
	})
	return out
}

// ValueByLeague sums market value per league. Players whose club has no
// league in the catalog, free agents included, are left out.
func (s *Snapshot) ValueByLeague() []Group {
	g := newGrouper()
	for _, p := range s.players {
		league, ok := s.leagueOf(p)
		if !ok {
			continue
		}
		g.add(league, p.MarketValue)
	}
	return g.byValue()
}

func (s *Snapshot) ValueByNationality() []Group {
	g := newGrouper()
	for _, p := range s.players {
		g.add(p.Nationality, p.MarketValue)
	}
	return g.byValue()
}

// CountByPosition counts players per position. Value carries the summed
// market value of the position.
func (s *Snapshot) CountByPosition() []Group {
	g := newGrouper()
	for _, p := range s.players {
		g.add(p.Position, p.MarketValue)
	}
	return g.byCount()
}

// AgeBucket is one bar of the age histogram.
type AgeBucket struct {
	Age   int
	Count int
}

// AgeHistogram counts players per age, youngest first.
func (s *Snapshot) AgeHistogram() []AgeBucket {
	counts := make(map[int]int)
	for _, p := range s.players {
		counts[p.Age]++
	}
	out := make([]AgeBucket, 0, len(counts))
	for age, n := range counts {
		out = append(out, AgeBucket{Age: age, Count: n})
	}
	slices.SortFunc(out, func(a, b AgeBucket) int { return cmp.Compare(a.Age, b.Age) })
	return out
}

// Summary holds the headline market figures.
type Summary struct {
	Players       int
	TotalValue    int64
	AverageValue  int64
	Leagues       int
	Clubs         int
	Nationalities int
	FreeAgents    int
	Rumours       int
}

func (s *Snapshot) Summary() Summary {
	out := Summary{
		Players:       len(s.players),
		Leagues:       len(s.catalog.Leagues()),
		Nationalities: len(s.Nationalities()),
		Rumours:       len(s.rumours),
	}
	for _, c := range s.catalog.Clubs() {
		if !s.catalog.IsFreeAgent(c.Name) {
			out.Clubs++
		}
	}
	for _, p := range s.players {
		out.TotalValue += p.MarketValue
		if p.Status == player.StatusFreeAgent {
			out.FreeAgents++
		}
	}
	if out.Players > 0 {
		out.AverageValue = out.TotalValue / int64(out.Players)
	}
	return out
}
