package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /openapi.json", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/clubs", handler.ListClubs)
	mux.HandleFunc("GET /v1/clubs/{club}/squad", handler.GetClubSquad)
	mux.HandleFunc("GET /v1/positions", handler.ListPositions)
	mux.HandleFunc("GET /v1/nationalities", handler.ListNationalities)
}

func registerMarketRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/players/compare", handler.ComparePlayers)
	mux.HandleFunc("GET /v1/players/free-agents", handler.ListFreeAgents)
	mux.HandleFunc("GET /v1/players/transfer-listed", handler.ListTransferListed)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayerProfile)
	mux.HandleFunc("GET /v1/rankings/{ranking}", handler.ListTopPlayers)
	mux.HandleFunc("GET /v1/leaderboards/{metric}", handler.ListLeaderboard)
	mux.HandleFunc("GET /v1/transfers", handler.ListRecentTransfers)
	mux.HandleFunc("GET /v1/rumours", handler.ListRumours)
	mux.HandleFunc("GET /v1/market/summary", handler.GetMarketSummary)
	mux.HandleFunc("GET /v1/market/aggregates/{grouping}", handler.ListAggregate)
	mux.HandleFunc("GET /v1/market/ages", handler.GetAgeHistogram)
}

func registerWatchlistRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("GET /v1/watchlist", RequireUser(http.HandlerFunc(handler.ListWatchlist)))
	mux.Handle("POST /v1/watchlist", RequireUser(http.HandlerFunc(handler.AddToWatchlist)))
	mux.Handle("DELETE /v1/watchlist/{playerID}", RequireUser(http.HandlerFunc(handler.RemoveFromWatchlist)))
}
