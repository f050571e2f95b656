package market

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/catalog"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/player"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/playerstats"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/transfer"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/valuation"
)

const (
	HistoryPoints      = 12
	historyStepDays    = 30
	transferListedOdds = 0.04
	previousClubOdds   = 0.70
	unknownCompetition = "Unknown"
	pcgStream          = 0x9e3779b97f4a7c15
	millions           = 1_000_000
)

// PreviousClubPool is where players with a previous club came from.
var PreviousClubPool = []string{"Ajax", "Benfica", "Monaco", "Dortmund", "Salzburg", "Porto", "Sporting CP", "Lyon", "Lille"}

// RumourSources are the outlets a rumour is attributed to.
var RumourSources = []string{"Fabrizio Romano", "Sky Sports", "Marca", "L'Equipe", "BILD", "The Athletic"}

// GenerateOptions fixes the non-random inputs of a run.
type GenerateOptions struct {
	Season string
	Today  time.Time
}

// PlayerRows are all generated rows that belong to one player.
type PlayerRows struct {
	Player    player.Player
	History   []valuation.Point
	Statistic playerstats.SeasonStatistic
	Transfer  *transfer.Record
}

// NewRand returns the master source of a run.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), pcgStream))
}

// SubRand derives an independent source from master. Deriving all sub sources
// up front keeps the output independent of the order work is scheduled in.
func SubRand(master *rand.Rand) *rand.Rand {
	return rand.New(rand.NewPCG(master.Uint64(), master.Uint64()))
}

// GeneratePlayer draws every randomized field of one seed player.
func GeneratePlayer(cat *catalog.Catalog, playerID string, seed catalog.SeedPlayer, opts GenerateOptions, rng *rand.Rand) PlayerRows {
	day := startOfDay(opts.Today)
	base := seed.Value * millions

	p := player.Player{
		ID:           playerID,
		Name:         seed.Name,
		Age:          seed.Age,
		Nationality:  seed.Nationality,
		Position:     seed.Position,
		Club:         seed.Club,
		JerseyNumber: seed.Number,
		MarketValue:  roundMoney(base),
	}
	p.ContractUntil = day.AddDate(0, 0, randInt(rng, 180, 1500))

	switch {
	case cat.IsFreeAgent(seed.Club):
		p.Status = player.StatusFreeAgent
	case rng.Float64() < transferListedOdds:
		p.Status = player.StatusTransferListed
	default:
		p.Status = player.StatusActive
	}

	highest := roundMoney(base * uniform(rng, 1.0, 1.2))

	var move *transfer.Record
	if rng.Float64() < previousClubOdds {
		pool := previousClubsFor(seed.Club)
		from := pool[rng.IntN(len(pool))]
		fee := roundMoney(base * uniform(rng, 0.3, 0.8))
		p.PreviousClub = &from
		p.TransferFee = &fee
		move = &transfer.Record{
			PlayerID: playerID,
			Date:     day.AddDate(0, 0, -randInt(rng, 365, 1500)),
			FromClub: from,
			ToClub:   seed.Club,
			Fee:      fee,
			Type:     transfer.TypePermanent,
		}
	}

	p.Foot = player.AllFeet[rng.IntN(len(player.AllFeet))]
	p.HeightCM = randInt(rng, 168, 198)
	p.InternationalCaps = randInt(rng, 0, 120)
	p.InternationalGoals = randInt(rng, 0, min(40, p.InternationalCaps))

	history := make([]valuation.Point, 0, HistoryPoints)
	for m := HistoryPoints - 1; m >= 0; m-- {
		history = append(history, valuation.Point{
			PlayerID: playerID,
			Date:     day.AddDate(0, 0, -m*historyStepDays),
			Value:    roundMoney(base * uniform(rng, 0.85, 1.05)),
		})
	}
	p.HighestValue = max(highest, p.MarketValue, valuation.Peak(history))

	apps := randInt(rng, 20, 45)
	goalsLo, goalsHi := goalRange(seed.Position)
	assistsLo, assistsHi := assistRange(seed.Position)
	stat := playerstats.SeasonStatistic{
		PlayerID:    playerID,
		Season:      opts.Season,
		Competition: Competition(cat, seed.Club),
		Appearances: apps,
		Goals:       randInt(rng, goalsLo, goalsHi),
		Assists:     randInt(rng, assistsLo, assistsHi),
		Minutes:     apps * randInt(rng, 60, 90),
	}

	return PlayerRows{
		Player:    p,
		History:   history,
		Statistic: stat,
		Transfer:  move,
	}
}

// GenerateRumours resolves seed rumours against generated players by exact
// name. Rumours about unknown players are skipped.
func GenerateRumours(players []player.Player, seeds []catalog.SeedRumour, rng *rand.Rand) []transfer.Rumour {
	byName := make(map[string]player.Player, len(players))
	for _, p := range players {
		if _, seen := byName[p.Name]; !seen {
			byName[p.Name] = p
		}
	}

	out := make([]transfer.Rumour, 0, len(seeds))
	used := make(map[string]struct{}, len(seeds))
	for _, s := range seeds {
		p, ok := byName[s.Player]
		if !ok {
			continue
		}

		rumourID := nextRumourID(rng, namePrefix(p.Name, 3), used)

		out = append(out, transfer.Rumour{
			ID:           rumourID,
			PlayerID:     p.ID,
			FromClub:     s.From,
			ToClub:       s.To,
			Probability:  transfer.Probability(s.Probability),
			Source:       RumourSources[rng.IntN(len(RumourSources))],
			EstimatedFee: roundMoney(s.Fee * millions),
			Status:       transfer.RumourStatusActive,
		})
	}
	return out
}

// Append adds the rows of one player to d.
func (d *Dataset) Append(rows PlayerRows) {
	d.Players = append(d.Players, rows.Player)
	d.History = append(d.History, rows.History...)
	d.Statistics = append(d.Statistics, rows.Statistic)
	if rows.Transfer != nil {
		d.Transfers = append(d.Transfers, *rows.Transfer)
	}
}

// nextRumourID draws RUM-<prefix>-<100..999> until it is unused. Once the
// three digit space of a prefix is exhausted it counts upwards from 1000.
func nextRumourID(rng *rand.Rand, prefix string, used map[string]struct{}) string {
	for attempt := 0; attempt < 4*900; attempt++ {
		candidate := fmt.Sprintf("RUM-%s-%d", prefix, randInt(rng, 100, 999))
		if _, dup := used[candidate]; !dup {
			used[candidate] = struct{}{}
			return candidate
		}
	}
	for n := 1000; ; n++ {
		candidate := fmt.Sprintf("RUM-%s-%d", prefix, n)
		if _, dup := used[candidate]; !dup {
			used[candidate] = struct{}{}
			return candidate
		}
	}
}

// Competition is the league label of a club: the league name, catalog.NoLeague
// for free agents, or Unknown for uncatalogued clubs.
func Competition(cat *catalog.Catalog, club string) string {
	c, ok := cat.Club(club)
	if !ok {
		return unknownCompetition
	}
	return c.League
}

func goalRange(position string) (int, int) {
	switch position {
	case "ST", "CF":
		return 12, 35
	case "LW", "RW", "CAM":
		return 8, 20
	case "CM", "CDM":
		return 2, 10
	default:
		return 0, 3
	}
}

func assistRange(position string) (int, int) {
	switch position {
	case "CAM", "LW", "RW", "CM":
		return 5, 18
	default:
		return 2, 8
	}
}

// The pool without the current club, so a move never starts and ends at the same club.
func previousClubsFor(club string) []string {
	if !slices.Contains(PreviousClubPool, club) {
		return PreviousClubPool
	}
	out := make([]string, 0, len(PreviousClubPool)-1)
	for _, c := range PreviousClubPool {
		if c != club {
			out = append(out, c)
		}
	}
	return out
}

func namePrefix(name string, n int) string {
	r := []rune(name)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// randInt is inclusive on both ends.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

func roundMoney(v float64) int64 {
	return int64(math.Round(v))
}
