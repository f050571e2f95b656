package postgres

import (
	"database/sql"
	"time"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/player"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/playerstats"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/transfer"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/valuation"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/watchlist"
)

type playerTableModel struct {
	PlayerID           string         `db:"player_id"`
	Name               string         `db:"name"`
	Age                int            `db:"age"`
	Nationality        string         `db:"nationality"`
	Position           string         `db:"position"`
	Foot               string         `db:"foot"`
	HeightCM           int            `db:"height_cm"`
	Club               string         `db:"club"`
	JerseyNumber       int            `db:"jersey_number"`
	ContractUntil      time.Time      `db:"contract_until"`
	MarketValue        int64          `db:"market_value"`
	HighestValue       int64          `db:"highest_value"`
	Status             string         `db:"status"`
	InternationalCaps  int            `db:"international_caps"`
	InternationalGoals int            `db:"international_goals"`
	PreviousClub       sql.NullString `db:"previous_club"`
	TransferFee        sql.NullInt64  `db:"transfer_fee"`
}

func playerToModel(p player.Player) playerTableModel {
	m := playerTableModel{
		PlayerID:           p.ID,
		Name:               p.Name,
		Age:                p.Age,
		Nationality:        p.Nationality,
		Position:           p.Position,
		Foot:               string(p.Foot),
		HeightCM:           p.HeightCM,
		Club:               p.Club,
		JerseyNumber:       p.JerseyNumber,
		ContractUntil:      p.ContractUntil,
		MarketValue:        p.MarketValue,
		HighestValue:       p.HighestValue,
		Status:             string(p.Status),
		InternationalCaps:  p.InternationalCaps,
		InternationalGoals: p.InternationalGoals,
	}
	if p.PreviousClub != nil {
		m.PreviousClub = sql.NullString{String: *p.PreviousClub, Valid: true}
	}
	if p.TransferFee != nil {
		m.TransferFee = sql.NullInt64{Int64: *p.TransferFee, Valid: true}
	}
	return m
}

func playerFromModel(m playerTableModel) player.Player {
	p := player.Player{
		ID:                 m.PlayerID,
		Name:               m.Name,
		Age:                m.Age,
		Nationality:        m.Nationality,
		Position:           m.Position,
		Foot:               player.Foot(m.Foot),
		HeightCM:           m.HeightCM,
		Club:               m.Club,
		JerseyNumber:       m.JerseyNumber,
		ContractUntil:      m.ContractUntil.UTC(),
		MarketValue:        m.MarketValue,
		HighestValue:       m.HighestValue,
		Status:             player.Status(m.Status),
		InternationalCaps:  m.InternationalCaps,
		InternationalGoals: m.InternationalGoals,
	}
	if m.PreviousClub.Valid {
		club := m.PreviousClub.String
		p.PreviousClub = &club
	}
	if m.TransferFee.Valid {
		fee := m.TransferFee.Int64
		p.TransferFee = &fee
	}
	return p
}

type historyTableModel struct {
	PlayerID string    `db:"player_id"`
	Date     time.Time `db:"date"`
	Value    int64     `db:"value"`
}

func historyToModel(h valuation.Point) historyTableModel {
	return historyTableModel{PlayerID: h.PlayerID, Date: h.Date, Value: h.Value}
}

func historyFromModel(m historyTableModel) valuation.Point {
	return valuation.Point{PlayerID: m.PlayerID, Date: m.Date.UTC(), Value: m.Value}
}

type statisticTableModel struct {
	PlayerID    string `db:"player_id"`
	Season      string `db:"season"`
	Competition string `db:"competition"`
	Appearances int    `db:"appearances"`
	Goals       int    `db:"goals"`
	Assists     int    `db:"assists"`
	Minutes     int    `db:"minutes"`
}

func statisticToModel(s playerstats.SeasonStatistic) statisticTableModel {
	return statisticTableModel(s)
}

func statisticFromModel(m statisticTableModel) playerstats.SeasonStatistic {
	return playerstats.SeasonStatistic(m)
}

type transferTableModel struct {
	PlayerID string    `db:"player_id"`
	Date     time.Time `db:"transfer_date"`
	FromClub string    `db:"from_club"`
	ToClub   string    `db:"to_club"`
	Fee      int64     `db:"fee"`
	Type     string    `db:"transfer_type"`
}

func transferToModel(t transfer.Record) transferTableModel {
	return transferTableModel(t)
}

func transferFromModel(m transferTableModel) transfer.Record {
	r := transfer.Record(m)
	r.Date = r.Date.UTC()
	return r
}

type rumourTableModel struct {
	RumourID     string `db:"rumour_id"`
	PlayerID     string `db:"player_id"`
	FromClub     string `db:"from_club"`
	ToClub       string `db:"to_club"`
	Probability  string `db:"probability"`
	Source       string `db:"source"`
	EstimatedFee int64  `db:"estimated_fee"`
	Status       string `db:"status"`
}

func rumourToModel(r transfer.Rumour) rumourTableModel {
	return rumourTableModel{
		RumourID:     r.ID,
		PlayerID:     r.PlayerID,
		FromClub:     r.FromClub,
		ToClub:       r.ToClub,
		Probability:  string(r.Probability),
		Source:       r.Source,
		EstimatedFee: r.EstimatedFee,
		Status:       r.Status,
	}
}

func rumourFromModel(m rumourTableModel) transfer.Rumour {
	return transfer.Rumour{
		ID:           m.RumourID,
		PlayerID:     m.PlayerID,
		FromClub:     m.FromClub,
		ToClub:       m.ToClub,
		Probability:  transfer.Probability(m.Probability),
		Source:       m.Source,
		EstimatedFee: m.EstimatedFee,
		Status:       m.Status,
	}
}

type watchlistTableModel struct {
	EntryID   string    `db:"entry_id"`
	UserID    string    `db:"user_id"`
	PlayerID  string    `db:"player_id"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

func watchlistToModel(e watchlist.Entry) watchlistTableModel {
	return watchlistTableModel{
		EntryID:   e.ID,
		UserID:    e.UserID,
		PlayerID:  e.PlayerID,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

func watchlistFromModel(m watchlistTableModel) watchlist.Entry {
	return watchlist.Entry{
		ID:        m.EntryID,
		UserID:    m.UserID,
		PlayerID:  m.PlayerID,
		Note:      m.Note,
		CreatedAt: m.CreatedAt.UTC(),
	}
}
