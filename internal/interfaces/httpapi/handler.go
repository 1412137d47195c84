package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/rinksidehq/rinkside/internal/platform/cache"
	"github.com/rinksidehq/rinkside/internal/platform/logging"
	"github.com/rinksidehq/rinkside/internal/usecase"
)

type Handler struct {
	leagueService     *usecase.LeagueService
	seasonService     *usecase.SeasonService
	standingsService  *usecase.StandingsService
	streakService     *usecase.StreakService
	scheduleService   *usecase.ScheduleService
	teamService       *usecase.TeamService
	managerService    *usecase.ManagerService
	playerService     *usecase.PlayerService
	liveStreamService *usecase.LiveStreamService
	eventService      *usecase.EventService
	caches            []*cache.Store
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	seasonService *usecase.SeasonService,
	standingsService *usecase.StandingsService,
	streakService *usecase.StreakService,
	scheduleService *usecase.ScheduleService,
	teamService *usecase.TeamService,
	managerService *usecase.ManagerService,
	playerService *usecase.PlayerService,
	liveStreamService *usecase.LiveStreamService,
	eventService *usecase.EventService,
	caches []*cache.Store,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:     leagueService,
		seasonService:     seasonService,
		standingsService:  standingsService,
		streakService:     streakService,
		scheduleService:   scheduleService,
		teamService:       teamService,
		managerService:    managerService,
		playerService:     playerService,
		liveStreamService: liveStreamService,
		eventService:      eventService,
		caches:            caches,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// PurgeCaches drops every TTL cache so the next reads hit storage and the
// upstream providers. Used after out-of-band data entry.
func (h *Handler) PurgeCaches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PurgeCaches")
	defer span.End()

	for _, store := range h.caches {
		store.Purge(ctx)
	}
	h.logger.InfoContext(ctx, "caches purged", "count", len(h.caches))

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"purged": len(h.caches),
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
