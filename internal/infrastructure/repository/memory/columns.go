package memory

import (
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/market"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/player"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/playerstats"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/transfer"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/valuation"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/watchlist"
	qb "github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/querybuilder"
)

// Column views mirror the postgres column names so the same predicates work
// against both stores.

func playerColumns(p player.Player) qb.Row {
	return qb.RowMap{
		market.ColPlayerID:    p.ID,
		market.ColName:        p.Name,
		market.ColAge:         p.Age,
		market.ColNationality: p.Nationality,
		market.ColPosition:    p.Position,
		"foot":                p.Foot,
		"height_cm":           p.HeightCM,
		market.ColClub:        p.Club,
		"jersey_number":       p.JerseyNumber,
		"contract_until":      p.ContractUntil,
		market.ColMarketValue: p.MarketValue,
		"highest_value":       p.HighestValue,
		market.ColStatus:      p.Status,
		"international_caps":  p.InternationalCaps,
		"international_goals": p.InternationalGoals,
		"previous_club":       p.PreviousClub,
		"transfer_fee":        p.TransferFee,
	}
}

func historyColumns(h valuation.Point) qb.Row {
	return qb.RowMap{
		market.ColPlayerID: h.PlayerID,
		market.ColDate:     h.Date,
		market.ColValue:    h.Value,
	}
}

func statisticColumns(s playerstats.SeasonStatistic) qb.Row {
	return qb.RowMap{
		market.ColPlayerID:    s.PlayerID,
		market.ColSeason:      s.Season,
		market.ColCompetition: s.Competition,
		"appearances":         s.Appearances,
		"goals":               s.Goals,
		"assists":             s.Assists,
		"minutes":             s.Minutes,
	}
}

func transferColumns(t transfer.Record) qb.Row {
	return qb.RowMap{
		market.ColPlayerID: t.PlayerID,
		"transfer_date":    t.Date,
		market.ColFromClub: t.FromClub,
		market.ColToClub:   t.ToClub,
		"fee":              t.Fee,
		"transfer_type":    t.Type,
	}
}

func rumourColumns(r transfer.Rumour) qb.Row {
	return qb.RowMap{
		market.ColRumourID:    r.ID,
		market.ColPlayerID:    r.PlayerID,
		market.ColFromClub:    r.FromClub,
		market.ColToClub:      r.ToClub,
		market.ColProbability: r.Probability,
		"source":              r.Source,
		"estimated_fee":       r.EstimatedFee,
		market.ColStatus:      r.Status,
	}
}

func watchlistColumns(e watchlist.Entry) qb.Row {
	return qb.RowMap{
		market.ColEntryID:  e.ID,
		market.ColUserID:   e.UserID,
		market.ColPlayerID: e.PlayerID,
		"note":             e.Note,
		"created_at":       e.CreatedAt,
	}
}
