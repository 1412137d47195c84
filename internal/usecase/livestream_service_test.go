package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rinksidehq/rinkside/internal/domain/manager"
	"github.com/rinksidehq/rinkside/internal/domain/season"
	"github.com/rinksidehq/rinkside/internal/domain/standing"
	"github.com/rinksidehq/rinkside/internal/domain/stream"
	"github.com/rinksidehq/rinkside/internal/platform/cache"
	"github.com/rinksidehq/rinkside/internal/platform/logging"
)

type stubStreamChecker struct {
	calls      atomic.Int32
	live       map[string]stream.Metadata
	err        error
	sawHandles []string
}

func (s *stubStreamChecker) CheckLive(_ context.Context, usernames []string) (map[string]stream.Metadata, error) {
	s.calls.Add(1)
	s.sawHandles = append([]string(nil), usernames...)
	if s.err != nil {
		return nil, s.err
	}
	return s.live, nil
}

func liveStreamFixture(checker StreamChecker) *LiveStreamService {
	managerRepo := &stubManagerRepository{
		byName: map[string]manager.Manager{
			"alice": {Name: "alice", TwitchUsername: "AliceTV"},
			"bob_w": {Name: "bob_w", TwitchUsername: "bobw"},
			// Retired: no current-season standings row.
			"carol": {Name: "carol", TwitchUsername: "carol_live"},
			// Active but not a streamer.
			"dave": {Name: "dave"},
		},
	}
	seasonRepo := &stubSeasonRepository{
		byCode: map[string]season.Season{
			"W15": {Code: "W15"},
			"W16": {Code: "W16"},
		},
	}
	standingRepo := &stubStandingRepository{
		bySeason: map[string][]standing.Standing{
			"W16": {
				{SeasonCode: "W16", TeamCode: "CGY", Coach: "Alice"},
				{SeasonCode: "W16", TeamCode: "EDM", Coach: "Bob W"},
				{SeasonCode: "W16", TeamCode: "VAN", Coach: "dave"},
			},
			"W15": {
				{SeasonCode: "W15", TeamCode: "SEA", Coach: "carol"},
			},
		},
	}
	return NewLiveStreamService(managerRepo, seasonRepo, standingRepo, checker, cache.NewStore(time.Minute), logging.NewNop())
}

func TestLiveStreamService_Statuses_ScopedToCurrentCoaches(t *testing.T) {
	t.Parallel()

	checker := &stubStreamChecker{
		live: map[string]stream.Metadata{
			"alicetv": {Title: "game night", ViewerCount: 12},
		},
	}
	service := liveStreamFixture(checker)

	got, err := service.Statuses(context.Background())
	if err != nil {
		t.Fatalf("Statuses error: %v", err)
	}

	// carol is not in the latest season, dave has no handle.
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(got), got)
	}
	if !got[0].IsLive || got[0].Username != "AliceTV" || got[0].Live == nil || got[0].Live.ViewerCount != 12 {
		t.Fatalf("expected live AliceTV first, got %+v", got[0])
	}
	if got[1].IsLive || got[1].Username != "bobw" || got[1].Live != nil {
		t.Fatalf("expected offline bobw second, got %+v", got[1])
	}
}

func TestLiveStreamService_Statuses_CachedWithinTTL(t *testing.T) {
	t.Parallel()

	checker := &stubStreamChecker{}
	service := liveStreamFixture(checker)

	for i := 0; i < 5; i++ {
		if _, err := service.Statuses(context.Background()); err != nil {
			t.Fatalf("Statuses error: %v", err)
		}
	}
	if calls := checker.calls.Load(); calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls)
	}
}

func TestLiveStreamService_Statuses_LeagueReadFailureNonFatal(t *testing.T) {
	t.Parallel()

	checker := &stubStreamChecker{}
	service := liveStreamFixture(checker)
	service.standingRepo = &stubStandingRepository{
		bySeason: map[string][]standing.Standing{
			"W16": {{SeasonCode: "W16", TeamCode: "CGY", Coach: "alice"}},
		},
		errSeason: map[string]error{"AAA3": errors.New("table scan failed")},
	}
	service.seasonRepo = &stubSeasonRepository{
		byCode: map[string]season.Season{
			"W16":  {Code: "W16"},
			"AAA3": {Code: "AAA3"},
		},
	}

	got, err := service.Statuses(context.Background())
	if err != nil {
		t.Fatalf("expected failed league to be skipped, got error: %v", err)
	}
	if len(got) != 1 || got[0].Username != "AliceTV" {
		t.Fatalf("expected alice only, got %+v", got)
	}
}

func TestLiveStreamService_Statuses_CheckerFailure(t *testing.T) {
	t.Parallel()

	checker := &stubStreamChecker{err: errors.New("upstream 500")}
	service := liveStreamFixture(checker)

	_, err := service.Statuses(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
