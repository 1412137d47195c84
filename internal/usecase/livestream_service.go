package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/rinksidehq/rinkside/internal/domain/manager"
	"github.com/rinksidehq/rinkside/internal/domain/season"
	"github.com/rinksidehq/rinkside/internal/domain/standing"
	"github.com/rinksidehq/rinkside/internal/domain/stream"
	"github.com/rinksidehq/rinkside/internal/platform/cache"
	"github.com/rinksidehq/rinkside/internal/platform/logging"
)

const streamsCacheKey = "streams:live"

// StreamChecker resolves the live status of a batch of channel handles.
// Handles absent from the returned map are offline.
type StreamChecker interface {
	CheckLive(ctx context.Context, usernames []string) (map[string]stream.Metadata, error)
}

type LiveStreamService struct {
	managerRepo  manager.Repository
	seasonRepo   season.Repository
	standingRepo standing.Repository
	checker      StreamChecker
	cache        *cache.Store
	logger       *logging.Logger
	workerCount  int
}

func NewLiveStreamService(
	managerRepo manager.Repository,
	seasonRepo season.Repository,
	standingRepo standing.Repository,
	checker StreamChecker,
	store *cache.Store,
	logger *logging.Logger,
) *LiveStreamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LiveStreamService{
		managerRepo:  managerRepo,
		seasonRepo:   seasonRepo,
		standingRepo: standingRepo,
		checker:      checker,
		cache:        store,
		logger:       logger,
		workerCount:  4,
	}
}

// Statuses returns one live-or-not row per streaming manager coaching in any
// league's current season. Results come from the TTL cache; concurrent cold
// loads collapse to one upstream call.
func (s *LiveStreamService) Statuses(ctx context.Context) ([]stream.Status, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveStreamService.Statuses")
	defer span.End()

	value, err := s.cache.GetOrLoad(ctx, streamsCacheKey, func(ctx context.Context) (any, error) {
		return s.load(ctx)
	})
	if err != nil {
		return nil, err
	}

	statuses, ok := value.([]stream.Status)
	if !ok {
		return nil, fmt.Errorf("unexpected cache payload %T", value)
	}
	return statuses, nil
}

func (s *LiveStreamService) load(ctx context.Context) ([]stream.Status, error) {
	coaches, err := s.activeCoaches(ctx)
	if err != nil {
		return nil, err
	}

	managers, err := s.managerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}

	type candidate struct {
		username  string
		coachName string
	}
	candidates := make([]candidate, 0, len(managers))
	usernames := make([]string, 0, len(managers))
	for _, m := range managers {
		username := strings.TrimSpace(m.TwitchUsername)
		if username == "" {
			continue
		}
		active := false
		for _, coach := range coaches {
			if manager.NamesMatch(m.Name, coach) {
				active = true
				break
			}
		}
		if !active {
			continue
		}
		candidates = append(candidates, candidate{username: username, coachName: m.Name})
		usernames = append(usernames, username)
	}
	if len(candidates) == 0 {
		return []stream.Status{}, nil
	}

	liveByUsername, err := s.checker.CheckLive(ctx, usernames)
	if err != nil {
		return nil, fmt.Errorf("%w: check live status: %v", ErrDependencyUnavailable, err)
	}

	statuses := make([]stream.Status, 0, len(candidates))
	for _, c := range candidates {
		row := stream.Status{Username: c.username, CoachName: c.coachName}
		if meta, ok := liveByUsername[strings.ToLower(c.username)]; ok {
			live := meta
			row.IsLive = true
			row.Live = &live
		}
		statuses = append(statuses, row)
	}

	// Live channels first; alphabetical within each group.
	sort.SliceStable(statuses, func(i, j int) bool {
		if statuses[i].IsLive != statuses[j].IsLive {
			return statuses[i].IsLive
		}
		return strings.ToLower(statuses[i].Username) < strings.ToLower(statuses[j].Username)
	})

	return statuses, nil
}

// activeCoaches gathers the coach names appearing in each league's latest
// season, fanning the per-league standings reads out over a worker pool. A
// failed league read skips that league rather than failing the endpoint.
func (s *LiveStreamService) activeCoaches(ctx context.Context) ([]string, error) {
	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	latest := season.LatestByPrefix(seasons)
	if len(latest) == 0 {
		return nil, nil
	}

	pool, err := ants.NewPool(s.workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		coaches []string
		seen    = make(map[string]struct{})
		workers sync.WaitGroup
	)
	for prefix, item := range latest {
		prefix, seasonCode := prefix, item.Code
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			rows, rowsErr := s.standingRepo.ListBySeason(ctx, seasonCode)
			if rowsErr != nil {
				s.logger.WarnContext(ctx, "skipping league for live streams",
					"league", prefix,
					"season", seasonCode,
					"error", rowsErr,
				)
				return
			}

			mu.Lock()
			for _, row := range rows {
				key := manager.NormalizeName(row.Coach)
				if key == "" {
					continue
				}
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				coaches = append(coaches, row.Coach)
			}
			mu.Unlock()
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit league lookup: %w", err)
		}
	}
	workers.Wait()

	sort.Strings(coaches)
	return coaches, nil
}
