package httpapi

import (
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/usecase"
)

func (h *Handler) ListWatchlist(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWatchlist")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user id is missing from request context", usecase.ErrInvalidInput))
		return
	}

	items, err := h.watchlistService.List(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "list watchlist failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, watchedPlayersToDTO(items))
}

func (h *Handler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddToWatchlist")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user id is missing from request context", usecase.ErrInvalidInput))
		return
	}

	req, err := decodeAddWatchlistRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entry, err := h.watchlistService.Add(ctx, usecase.AddWatchlistInput{
		UserID:   userID,
		PlayerID: req.PlayerID,
		Note:     req.Note,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add to watchlist failed", "user_id", userID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, watchlistEntryDTO{
		ID:        entry.ID,
		PlayerID:  entry.PlayerID,
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt,
	})
}

func (h *Handler) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveFromWatchlist")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user id is missing from request context", usecase.ErrInvalidInput))
		return
	}

	playerID := r.PathValue("playerID")
	removed, err := h.watchlistService.Remove(ctx, userID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "remove from watchlist failed", "user_id", userID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, removedDTO{Removed: removed})
}

func decodeAddWatchlistRequest(r *http.Request) (addWatchlistRequest, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		return addWatchlistRequest{}, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if len(raw) == 0 {
		return addWatchlistRequest{}, fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
	}

	var req addWatchlistRequest
	if err := sonic.Unmarshal(raw, &req); err != nil {
		return addWatchlistRequest{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return req, nil
}
