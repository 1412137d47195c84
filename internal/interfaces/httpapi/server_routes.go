package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueCode}", handler.GetLeague)

	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/latest", handler.LatestSeasons)
	mux.HandleFunc("GET /v1/seasons/{seasonCode}", handler.GetSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonCode}/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/seasons/{seasonCode}/streaks", handler.GetStreaks)
	mux.HandleFunc("GET /v1/seasons/{seasonCode}/bracket", handler.GetBracket)
	mux.HandleFunc("GET /v1/seasons/{seasonCode}/schedule", handler.ListSchedule)
	mux.HandleFunc("GET /v1/scores/recent", handler.ListRecentScores)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamCode}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamCode}/history", handler.GetTeamHistory)
	mux.HandleFunc("GET /v1/teams/{teamCode}/roster", handler.GetTeamRoster)

	mux.HandleFunc("GET /v1/managers", handler.ListManagers)
	mux.HandleFunc("GET /v1/managers/head-to-head", handler.GetHeadToHead)
	mux.HandleFunc("GET /v1/managers/{name}", handler.GetManagerProfile)

	mux.HandleFunc("GET /v1/players", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/players/compare", handler.ComparePlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayerCareer)

	mux.HandleFunc("GET /v1/streams/live", handler.ListLiveStreams)
	mux.HandleFunc("GET /v1/events", handler.ListEvents)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/cache/purge", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.PurgeCaches)))
}
