package httpapi

import "net/http"

func (h *Handler) ListLiveStreams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveStreams")
	defer span.End()

	statuses, err := h.liveStreamService.Statuses(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list live streams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]streamStatusDTO, 0, len(statuses))
	for _, status := range statuses {
		items = append(items, streamStatusToDTO(status))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	events, err := h.eventService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list events failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]eventDTO, 0, len(events))
	for _, e := range events {
		items = append(items, eventToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
