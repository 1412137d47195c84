package httpapi

import (
	"net/http"
	"sort"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	code := r.PathValue("leagueCode")
	item, err := h.leagueService.GetByCode(ctx, code)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league", code, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	leagueCode := r.URL.Query().Get("league")
	seasons, err := h.seasonService.List(ctx, leagueCode)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "league", leagueCode, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, s := range seasons {
		items = append(items, seasonToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// LatestSeasons maps each league code to its most recent season.
func (h *Handler) LatestSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LatestSeasons")
	defer span.End()

	latest, err := h.seasonService.LatestByLeague(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "latest seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(latest))
	for _, s := range latest {
		items = append(items, seasonToDTO(s))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].LeagueCode < items[j].LeagueCode })

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
	defer span.End()

	code := r.PathValue("seasonCode")
	item, err := h.seasonService.GetByCode(ctx, code)
	if err != nil {
		h.logger.WarnContext(ctx, "get season failed", "season", code, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}
