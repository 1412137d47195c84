package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rinksidehq/rinkside/internal/domain/game"
	"github.com/rinksidehq/rinkside/internal/usecase"
)

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	seasonCode := r.PathValue("seasonCode")
	rows, err := h.standingsService.ListBySeason(ctx, seasonCode)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "season", seasonCode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTOs(rows))
}

func (h *Handler) GetStreaks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStreaks")
	defer span.End()

	seasonCode := r.PathValue("seasonCode")
	report, err := h.streakService.BySeason(ctx, seasonCode)
	if err != nil {
		h.logger.WarnContext(ctx, "get streaks failed", "season", seasonCode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, streakReportToDTO(report))
}

// GetBracket serves the first playoff round, or null when the season's field
// is not complete yet.
func (h *Handler) GetBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBracket")
	defer span.End()

	seasonCode := r.PathValue("seasonCode")
	bracket, ok, err := h.standingsService.Bracket(ctx, seasonCode)
	if err != nil {
		h.logger.WarnContext(ctx, "get bracket failed", "season", seasonCode, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bracketToDTO(bracket))
}

func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchedule")
	defer span.End()

	seasonCode := r.PathValue("seasonCode")
	mode := game.Mode(strings.TrimSpace(r.URL.Query().Get("mode")))
	teamCode := r.URL.Query().Get("team")

	games, err := h.scheduleService.ListBySeason(ctx, seasonCode, mode, teamCode)
	if err != nil {
		h.logger.WarnContext(ctx, "list schedule failed", "season", seasonCode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gamesToDTOs(games))
}

func (h *Handler) ListRecentScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentScores")
	defer span.End()

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be a non-negative integer", usecase.ErrInvalidInput))
			return
		}
		limit = parsed
	}

	games, err := h.scheduleService.RecentScores(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list recent scores failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gamesToDTOs(games))
}
