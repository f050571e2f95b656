package httpapi

import (
	"time"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/catalog"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/market"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/player"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/playerstats"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/transfer"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/valuation"
)

const dateLayout = "2006-01-02"

type searchQuery struct {
	Name        string `validate:"max=100"`
	League      string `validate:"max=100"`
	Position    string `validate:"max=10"`
	Nationality string `validate:"max=100"`
	Sort        string `validate:"omitempty,oneof=market_value highest_value age name height"`
	Order       string `validate:"omitempty,oneof=asc desc"`
}

type limitQuery struct {
	Limit int `validate:"gte=0,lte=500"`
}

type addWatchlistRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=32"`
	Note     string `json:"note" validate:"max=280"`
}

// moneyDTO carries an amount in base units next to its display form.
type moneyDTO struct {
	Amount    int64  `json:"amount"`
	Formatted string `json:"formatted"`
}

func money(v int64) moneyDTO {
	return moneyDTO{Amount: v, Formatted: market.FormatMoney(v)}
}

func optionalMoney(v *int64) *moneyDTO {
	if v == nil {
		return nil
	}
	out := money(*v)
	return &out
}

type leagueDTO struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Tier    int    `json:"tier"`
	Code    string `json:"code"`
}

type clubDTO struct {
	Name    string `json:"name"`
	League  string `json:"league"`
	Stadium string `json:"stadium,omitempty"`
	Coach   string `json:"coach,omitempty"`
	// SquadValue is the catalogued figure, in millions.
	SquadValue int64 `json:"squad_value_millions"`
}

type positionDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type playerDTO struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Age                int       `json:"age"`
	Nationality        string    `json:"nationality"`
	Position           string    `json:"position"`
	Foot               string    `json:"foot"`
	HeightCM           int       `json:"height_cm"`
	Club               string    `json:"club"`
	JerseyNumber       int       `json:"jersey_number"`
	ContractUntil      string    `json:"contract_until"`
	MarketValue        moneyDTO  `json:"market_value"`
	HighestValue       moneyDTO  `json:"highest_value"`
	Status             string    `json:"status"`
	InternationalCaps  int       `json:"international_caps"`
	InternationalGoals int       `json:"international_goals"`
	PreviousClub       *string   `json:"previous_club,omitempty"`
	TransferFee        *moneyDTO `json:"transfer_fee,omitempty"`
}

type valuePointDTO struct {
	Date  string   `json:"date"`
	Value moneyDTO `json:"value"`
}

type transferDTO struct {
	PlayerID   string   `json:"player_id"`
	PlayerName string   `json:"player_name,omitempty"`
	Position   string   `json:"position,omitempty"`
	Date       string   `json:"date"`
	FromClub   string   `json:"from_club"`
	ToClub     string   `json:"to_club"`
	Fee        moneyDTO `json:"fee"`
	Type       string   `json:"type"`
}

type statisticDTO struct {
	Season      string `json:"season"`
	Competition string `json:"competition"`
	Appearances int    `json:"appearances"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	Minutes     int    `json:"minutes"`
}

type rumourDTO struct {
	ID           string    `json:"id"`
	PlayerID     string    `json:"player_id"`
	PlayerName   string    `json:"player_name,omitempty"`
	Position     string    `json:"position,omitempty"`
	MarketValue  *moneyDTO `json:"market_value,omitempty"`
	FromClub     string    `json:"from_club"`
	ToClub       string    `json:"to_club"`
	Probability  string    `json:"probability"`
	Source       string    `json:"source"`
	EstimatedFee moneyDTO  `json:"estimated_fee"`
	Status       string    `json:"status"`
}

type profileDTO struct {
	Player     playerDTO       `json:"player"`
	League     string          `json:"league"`
	History    []valuePointDTO `json:"value_history"`
	Transfers  []transferDTO   `json:"transfers"`
	Statistics []statisticDTO  `json:"statistics"`
	Rumours    []rumourDTO     `json:"rumours"`
}

type comparisonRowDTO struct {
	Label string `json:"label"`
	Left  string `json:"left"`
	Right string `json:"right"`
}

type comparisonDTO struct {
	Left       playerDTO          `json:"left"`
	Right      playerDTO          `json:"right"`
	Attributes []comparisonRowDTO `json:"attributes"`
	Statistics []comparisonRowDTO `json:"statistics,omitempty"`
}

type groupDTO struct {
	Key   string   `json:"key"`
	Value moneyDTO `json:"value"`
	Count int      `json:"count"`
}

type squadDTO struct {
	Club       clubDTO     `json:"club"`
	Catalogued bool        `json:"catalogued"`
	Players    []playerDTO `json:"players"`
	TotalValue moneyDTO    `json:"total_value"`
	ByPosition []groupDTO  `json:"value_by_position"`
}

type statLineDTO struct {
	Player        playerDTO    `json:"player"`
	Statistic     statisticDTO `json:"statistic"`
	PerAppearance float64      `json:"per_appearance"`
}

type ageBucketDTO struct {
	Age   int `json:"age"`
	Count int `json:"count"`
}

type summaryDTO struct {
	Players       int      `json:"players"`
	TotalValue    moneyDTO `json:"total_value"`
	AverageValue  moneyDTO `json:"average_value"`
	Leagues       int      `json:"leagues"`
	Clubs         int      `json:"clubs"`
	Nationalities int      `json:"nationalities"`
	FreeAgents    int      `json:"free_agents"`
	Rumours       int      `json:"rumours"`
}

type watchlistEntryDTO struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"player_id"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type watchedPlayerDTO struct {
	Entry  watchlistEntryDTO `json:"entry"`
	Player playerDTO         `json:"player"`
}

type removedDTO struct {
	Removed int64 `json:"removed"`
}

func leagueToDTO(v catalog.League) leagueDTO {
	return leagueDTO{Name: v.Name, Country: v.Country, Tier: v.Tier, Code: v.Code}
}

func clubToDTO(v catalog.Club) clubDTO {
	return clubDTO{
		Name:       v.Name,
		League:     v.League,
		Stadium:    v.Stadium,
		Coach:      v.Coach,
		SquadValue: v.SquadValue,
	}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:                 p.ID,
		Name:               p.Name,
		Age:                p.Age,
		Nationality:        p.Nationality,
		Position:           p.Position,
		Foot:               string(p.Foot),
		HeightCM:           p.HeightCM,
		Club:               p.Club,
		JerseyNumber:       p.JerseyNumber,
		ContractUntil:      p.ContractUntil.Format(dateLayout),
		MarketValue:        money(p.MarketValue),
		HighestValue:       money(p.HighestValue),
		Status:             string(p.Status),
		InternationalCaps:  p.InternationalCaps,
		InternationalGoals: p.InternationalGoals,
		PreviousClub:       p.PreviousClub,
		TransferFee:        optionalMoney(p.TransferFee),
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerToDTO(p))
	}
	return out
}

func valuePointsToDTO(items []valuation.Point) []valuePointDTO {
	out := make([]valuePointDTO, 0, len(items))
	for _, v := range items {
		out = append(out, valuePointDTO{Date: v.Date.Format(dateLayout), Value: money(v.Value)})
	}
	return out
}

func transferToDTO(v transfer.Record) transferDTO {
	return transferDTO{
		PlayerID: v.PlayerID,
		Date:     v.Date.Format(dateLayout),
		FromClub: v.FromClub,
		ToClub:   v.ToClub,
		Fee:      money(v.Fee),
		Type:     v.Type,
	}
}

func statisticToDTO(v playerstats.SeasonStatistic) statisticDTO {
	return statisticDTO{
		Season:      v.Season,
		Competition: v.Competition,
		Appearances: v.Appearances,
		Goals:       v.Goals,
		Assists:     v.Assists,
		Minutes:     v.Minutes,
	}
}

func rumourToDTO(v transfer.Rumour) rumourDTO {
	return rumourDTO{
		ID:           v.ID,
		PlayerID:     v.PlayerID,
		FromClub:     v.FromClub,
		ToClub:       v.ToClub,
		Probability:  string(v.Probability),
		Source:       v.Source,
		EstimatedFee: money(v.EstimatedFee),
		Status:       v.Status,
	}
}

func profileToDTO(v market.Profile) profileDTO {
	out := profileDTO{
		Player:     playerToDTO(v.Player),
		League:     v.League,
		History:    valuePointsToDTO(v.History),
		Transfers:  make([]transferDTO, 0, len(v.Transfers)),
		Statistics: make([]statisticDTO, 0, len(v.Statistics)),
		Rumours:    make([]rumourDTO, 0, len(v.Rumours)),
	}
	for _, t := range v.Transfers {
		out.Transfers = append(out.Transfers, transferToDTO(t))
	}
	for _, s := range v.Statistics {
		out.Statistics = append(out.Statistics, statisticToDTO(s))
	}
	for _, r := range v.Rumours {
		out.Rumours = append(out.Rumours, rumourToDTO(r))
	}
	return out
}

func comparisonRowsToDTO(rows []market.ComparisonRow) []comparisonRowDTO {
	if rows == nil {
		return nil
	}
	out := make([]comparisonRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, comparisonRowDTO{Label: r.Label, Left: r.Left, Right: r.Right})
	}
	return out
}

func comparisonToDTO(v market.Comparison) comparisonDTO {
	return comparisonDTO{
		Left:       playerToDTO(v.Left),
		Right:      playerToDTO(v.Right),
		Attributes: comparisonRowsToDTO(v.Attributes),
		Statistics: comparisonRowsToDTO(v.Statistics),
	}
}

func groupsToDTO(items []market.Group) []groupDTO {
	out := make([]groupDTO, 0, len(items))
	for _, g := range items {
		out = append(out, groupDTO{Key: g.Key, Value: money(g.Value), Count: g.Count})
	}
	return out
}

func squadToDTO(v market.Squad) squadDTO {
	return squadDTO{
		Club:       clubToDTO(v.Club),
		Catalogued: v.Catalogued,
		Players:    playersToDTO(v.Players),
		TotalValue: money(v.TotalValue),
		ByPosition: groupsToDTO(v.ByPosition),
	}
}

func statLinesToDTO(items []market.StatLine) []statLineDTO {
	out := make([]statLineDTO, 0, len(items))
	for _, v := range items {
		out = append(out, statLineDTO{
			Player:        playerToDTO(v.Player),
			Statistic:     statisticToDTO(v.Statistic),
			PerAppearance: v.PerAppearance,
		})
	}
	return out
}

func transferViewsToDTO(items []market.TransferView) []transferDTO {
	out := make([]transferDTO, 0, len(items))
	for _, v := range items {
		item := transferToDTO(v.Record)
		item.PlayerName = v.PlayerName
		item.Position = v.Position
		out = append(out, item)
	}
	return out
}

func rumourViewsToDTO(items []market.RumourView) []rumourDTO {
	out := make([]rumourDTO, 0, len(items))
	for _, v := range items {
		item := rumourToDTO(v.Rumour)
		item.PlayerName = v.PlayerName
		item.Position = v.Position
		item.MarketValue = optionalMoney(&v.MarketValue)
		out = append(out, item)
	}
	return out
}

func ageBucketsToDTO(items []market.AgeBucket) []ageBucketDTO {
	out := make([]ageBucketDTO, 0, len(items))
	for _, v := range items {
		out = append(out, ageBucketDTO{Age: v.Age, Count: v.Count})
	}
	return out
}

func summaryToDTO(v market.Summary) summaryDTO {
	return summaryDTO{
		Players:       v.Players,
		TotalValue:    money(v.TotalValue),
		AverageValue:  money(v.AverageValue),
		Leagues:       v.Leagues,
		Clubs:         v.Clubs,
		Nationalities: v.Nationalities,
		FreeAgents:    v.FreeAgents,
		Rumours:       v.Rumours,
	}
}

func watchedPlayersToDTO(items []market.WatchedPlayer) []watchedPlayerDTO {
	out := make([]watchedPlayerDTO, 0, len(items))
	for _, v := range items {
		out = append(out, watchedPlayerDTO{
			Entry: watchlistEntryDTO{
				ID:        v.Entry.ID,
				PlayerID:  v.Entry.PlayerID,
				Note:      v.Entry.Note,
				CreatedAt: v.Entry.CreatedAt,
			},
			Player: playerToDTO(v.Player),
		})
	}
	return out
}
