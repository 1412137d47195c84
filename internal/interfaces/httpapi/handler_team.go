package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rinksidehq/rinkside/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	leagueCode := r.URL.Query().Get("league")
	teams, err := h.teamService.List(ctx, leagueCode)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league", leagueCode, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	code := r.PathValue("teamCode")
	item, err := h.teamService.GetByCode(ctx, code)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team", code, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) GetTeamHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamHistory")
	defer span.End()

	code := r.PathValue("teamCode")
	history, err := h.teamService.History(ctx, code)
	if err != nil {
		h.logger.WarnContext(ctx, "get team history failed", "team", code, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamHistoryToDTO(history))
}

type rosterQuery struct {
	Year          int  `validate:"required,gt=1900"`
	IncludeFuture bool `validate:"-"`
}

func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRoster")
	defer span.End()

	code := r.PathValue("teamCode")

	query := rosterQuery{}
	if raw := strings.TrimSpace(r.URL.Query().Get("year")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: year must be an integer", usecase.ErrInvalidInput))
			return
		}
		query.Year = parsed
	}
	query.IncludeFuture = parseBoolParam(r.URL.Query().Get("includeFuture"))
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.teamService.Roster(ctx, code, query.Year, query.IncludeFuture)
	if err != nil {
		h.logger.WarnContext(ctx, "get team roster failed", "team", code, "year", query.Year, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rosterEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, rosterEntryToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func parseBoolParam(raw string) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && parsed
}
