package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rinksidehq/rinkside/internal/usecase"
)

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	query := r.URL.Query().Get("q")
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be a non-negative integer", usecase.ErrInvalidInput))
			return
		}
		limit = parsed
	}

	players, err := h.playerService.Search(ctx, query, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "query", query, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerDTO{ID: p.ID, Name: p.Name})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerCareer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerCareer")
	defer span.End()

	id, err := parsePlayerID(r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	career, err := h.playerService.Career(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get player career failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerCareerToDTO(career))
}

type compareQuery struct {
	LeftID  int64 `validate:"required,gt=0"`
	RightID int64 `validate:"required,gt=0"`
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	leftID, err := parsePlayerID(r.URL.Query().Get("left"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	rightID, err := parsePlayerID(r.URL.Query().Get("right"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, compareQuery{LeftID: leftID, RightID: rightID}); err != nil {
		writeError(ctx, w, err)
		return
	}

	comparison, err := h.playerService.Compare(ctx, leftID, rightID)
	if err != nil {
		h.logger.WarnContext(ctx, "compare players failed", "left", leftID, "right", rightID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, comparisonDTO{
		Left:  playerCareerToDTO(comparison.Left),
		Right: playerCareerToDTO(comparison.Right),
	})
}

func parsePlayerID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: player id must be a positive integer", usecase.ErrInvalidInput)
	}
	return id, nil
}
