package httpapi

import (
	"net/http"
)

func (h *Handler) ListManagers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListManagers")
	defer span.End()

	managers, err := h.managerService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list managers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]managerDTO, 0, len(managers))
	for _, m := range managers {
		items = append(items, managerToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetManagerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManagerProfile")
	defer span.End()

	name := r.PathValue("name")
	profile, err := h.managerService.Profile(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "get manager profile failed", "manager", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, managerProfileToDTO(profile))
}

type headToHeadQuery struct {
	ManagerA string `validate:"required"`
	ManagerB string `validate:"required"`
}

func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadToHead")
	defer span.End()

	query := headToHeadQuery{
		ManagerA: r.URL.Query().Get("a"),
		ManagerB: r.URL.Query().Get("b"),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	h2h, err := h.managerService.HeadToHead(ctx, query.ManagerA, query.ManagerB)
	if err != nil {
		h.logger.WarnContext(ctx, "head-to-head failed", "manager_a", query.ManagerA, "manager_b", query.ManagerB, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, headToHeadToDTO(h2h))
}
