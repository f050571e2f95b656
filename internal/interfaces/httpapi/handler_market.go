package httpapi

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/catalog"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/player"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/usecase"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues := h.marketService.Catalog().Leagues()
	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubs")
	defer span.End()

	cat := h.marketService.Catalog()
	var clubs []catalog.Club
	if league := strings.TrimSpace(r.URL.Query().Get("league")); league != "" {
		clubs = cat.ClubsInLeague(league)
	} else {
		clubs = cat.Clubs()
	}

	items := make([]clubDTO, 0, len(clubs))
	for _, c := range clubs {
		items = append(items, clubToDTO(c))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPositions")
	defer span.End()

	positions := h.marketService.Catalog().Positions()
	items := make([]positionDTO, 0, len(positions))
	for _, p := range positions {
		items = append(items, positionDTO{Code: p.Code, Name: p.Name})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListNationalities(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNationalities")
	defer span.End()

	items, err := h.marketService.Nationalities(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list nationalities failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	q := r.URL.Query()
	query := searchQuery{
		Name:        q.Get("name"),
		League:      q.Get("league"),
		Position:    q.Get("position"),
		Nationality: q.Get("nationality"),
		Sort:        strings.ToLower(strings.TrimSpace(q.Get("sort"))),
		Order:       strings.ToLower(strings.TrimSpace(q.Get("order"))),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.SearchInput{
		Name:        query.Name,
		League:      query.League,
		Position:    query.Position,
		Nationality: query.Nationality,
		SortBy:      query.Sort,
		Ascending:   query.Order == "asc",
	}
	var err error
	if input.MinValue, err = queryInt64(r, "min_value"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if input.MaxValue, err = queryInt64(r, "max_value"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if input.MinAge, err = queryInt(r, "min_age"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if input.MaxAge, err = queryInt(r, "max_age"); err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.marketService.Search(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	playerID := r.PathValue("playerID")
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerProfile", attribute.String("player.id", playerID))
	defer span.End()

	profile, err := h.marketService.Profile(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player profile failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, profileToDTO(profile))
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	leftID := r.URL.Query().Get("left")
	rightID := r.URL.Query().Get("right")
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers",
		attribute.String("player.left_id", leftID),
		attribute.String("player.right_id", rightID),
	)
	defer span.End()

	comparison, err := h.marketService.Compare(ctx, leftID, rightID)
	if err != nil {
		h.logger.WarnContext(ctx, "compare players failed", "left", leftID, "right", rightID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, comparisonToDTO(comparison))
}

func (h *Handler) ListFreeAgents(w http.ResponseWriter, r *http.Request) {
	h.listPlayersWithStatus(w, r, "httpapi.Handler.ListFreeAgents", player.StatusFreeAgent)
}

func (h *Handler) ListTransferListed(w http.ResponseWriter, r *http.Request) {
	h.listPlayersWithStatus(w, r, "httpapi.Handler.ListTransferListed", player.StatusTransferListed)
}

func (h *Handler) listPlayersWithStatus(w http.ResponseWriter, r *http.Request, spanName string, status player.Status) {
	ctx, span := startSpan(r.Context(), spanName, attribute.String("player.status", string(status)))
	defer span.End()

	players, err := h.marketService.PlayersWithStatus(ctx, status)
	if err != nil {
		h.logger.WarnContext(ctx, "list players by status failed", "status", status, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

// ListTopPlayers serves /v1/rankings/{ranking}; position and nationality
// rankings take the key from the "key" query parameter.
func (h *Handler) ListTopPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopPlayers")
	defer span.End()

	limit, ok := h.limitFromRequest(w, r)
	if !ok {
		return
	}

	input := usecase.RankingInput{
		Ranking: usecase.Ranking(strings.ToLower(r.PathValue("ranking"))),
		Key:     r.URL.Query().Get("key"),
		Limit:   limit,
	}
	players, err := h.marketService.TopPlayers(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "list top players failed", "ranking", input.Ranking, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) ListLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaderboard")
	defer span.End()

	limit, ok := h.limitFromRequest(w, r)
	if !ok {
		return
	}

	metric := usecase.StatMetric(strings.ToLower(r.PathValue("metric")))
	lines, err := h.marketService.Leaderboard(ctx, metric, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list leaderboard failed", "metric", metric, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, statLinesToDTO(lines))
}

func (h *Handler) GetClubSquad(w http.ResponseWriter, r *http.Request) {
	club := r.PathValue("club")
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubSquad", attribute.String("club.name", club))
	defer span.End()

	squad, err := h.marketService.ClubSquad(ctx, club)
	if err != nil {
		h.logger.WarnContext(ctx, "get club squad failed", "club", club, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, squadToDTO(squad))
}

func (h *Handler) ListRecentTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentTransfers")
	defer span.End()

	limit, ok := h.limitFromRequest(w, r)
	if !ok {
		return
	}

	items, err := h.marketService.RecentTransfers(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list recent transfers failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, transferViewsToDTO(items))
}

func (h *Handler) ListRumours(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRumours")
	defer span.End()

	items, err := h.marketService.Rumours(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list rumours failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, rumourViewsToDTO(items))
}

func (h *Handler) GetMarketSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMarketSummary")
	defer span.End()

	summary, err := h.marketService.Summary(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get market summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}

func (h *Handler) ListAggregate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAggregate")
	defer span.End()

	grouping := usecase.Grouping(strings.ToLower(r.PathValue("grouping")))
	groups, err := h.marketService.Aggregate(ctx, grouping)
	if err != nil {
		h.logger.WarnContext(ctx, "aggregate market failed", "grouping", grouping, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, groupsToDTO(groups))
}

func (h *Handler) GetAgeHistogram(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAgeHistogram")
	defer span.End()

	buckets, err := h.marketService.AgeHistogram(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get age histogram failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, ageBucketsToDTO(buckets))
}

func (h *Handler) limitFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	ctx := r.Context()
	limit, err := queryLimit(r)
	if err == nil {
		err = h.validateRequest(ctx, limitQuery{Limit: limit})
	}
	if err != nil {
		writeError(ctx, w, err)
		return 0, false
	}
	return limit, true
}
