package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rinksidehq/rinkside/internal/domain/game"
	"github.com/rinksidehq/rinkside/internal/domain/manager"
	"github.com/rinksidehq/rinkside/internal/domain/standing"
)

func TestManagerService_Profile_FuzzyCareerMatch(t *testing.T) {
	t.Parallel()

	managerRepo := &stubManagerRepository{
		byName: map[string]manager.Manager{
			"Bob W": {Name: "Bob W", TwitchUsername: "bobw_tv"},
		},
		championships: map[string][]manager.Championship{
			"Bob W": {{Coach: "Bob W", Label: "W15 Champion"}},
		},
	}
	// Coach spellings differ per season; all normalize into each other.
	standingRepo := &stubStandingRepository{
		bySeason: map[string][]standing.Standing{
			"W15": {{SeasonCode: "W15", TeamCode: "CGY", Coach: "bob_w", GamesPlayed: 20, Wins: 12, Losses: 6, Ties: 2, Points: 26, GoalsFor: 70, GoalsAgainst: 50}},
			"W16": {{SeasonCode: "W16", TeamCode: "CGY", Coach: "BobW", GamesPlayed: 20, Wins: 10, Losses: 8, Ties: 2, Points: 22, GoalsFor: 60, GoalsAgainst: 58}},
			"AAA3": {
				{SeasonCode: "AAA3", TeamCode: "SEA", Coach: "someone else", GamesPlayed: 20, Wins: 20},
			},
		},
	}
	service := NewManagerService(managerRepo, standingRepo, &stubGameRepository{})

	got, err := service.Profile(context.Background(), "Bob W")
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}

	if len(got.Seasons) != 2 {
		t.Fatalf("expected 2 matched seasons, got %d: %+v", len(got.Seasons), got.Seasons)
	}
	// Newest season first.
	if got.Seasons[0].SeasonCode != "W16" || got.Seasons[1].SeasonCode != "W15" {
		t.Fatalf("unexpected season order: %+v", got.Seasons)
	}
	if got.Career.Wins != 22 || got.Career.GamesPlayed != 40 || got.Career.Points != 48 {
		t.Fatalf("unexpected career totals: %+v", got.Career)
	}
	if pct, ok := got.Career.WinPct(); !ok || pct != 0.55 {
		t.Fatalf("expected win pct 0.55, got %v ok=%v", pct, ok)
	}
	if len(got.Championships) != 1 {
		t.Fatalf("expected 1 championship, got %+v", got.Championships)
	}
}

func TestManagerService_Profile_Unknown(t *testing.T) {
	t.Parallel()

	service := NewManagerService(&stubManagerRepository{}, &stubStandingRepository{}, &stubGameRepository{})

	_, err := service.Profile(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestManagerService_HeadToHead_TalliesSharedSeasons(t *testing.T) {
	t.Parallel()

	standingRepo := &stubStandingRepository{
		bySeason: map[string][]standing.Standing{
			"W16": {
				{SeasonCode: "W16", TeamCode: "CGY", Coach: "alice"},
				{SeasonCode: "W16", TeamCode: "EDM", Coach: "zed"},
			},
			// Only alice coached in W15, so it contributes nothing.
			"W15": {
				{SeasonCode: "W15", TeamCode: "CGY", Coach: "alice"},
			},
		},
	}
	gameRepo := &stubGameRepository{
		betweenTeams: map[string][]game.Game{},
	}
	gameRepo.betweenTeams["W16|CGY|EDM"] = []game.Game{
		playedGame("W16", 3, "CGY", "EDM", "W", "L"),
		playedGame("W16", 7, "EDM", "CGY", "OTW", "OTL"),
		playedGame("W16", 9, "CGY", "EDM", "T", "T"),
	}
	service := NewManagerService(&stubManagerRepository{
		byName: map[string]manager.Manager{
			"alice": {Name: "alice"},
			"zed":   {Name: "zed"},
		},
	}, standingRepo, gameRepo)

	got, err := service.HeadToHead(context.Background(), "alice", "zed")
	if err != nil {
		t.Fatalf("HeadToHead error: %v", err)
	}
	if got.WinsA != 1 || got.WinsB != 1 || got.Ties != 1 {
		t.Fatalf("unexpected tally: %+v", got)
	}
	if len(got.Games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(got.Games))
	}
}

func TestManagerService_HeadToHead_SameManagerRejected(t *testing.T) {
	t.Parallel()

	service := NewManagerService(&stubManagerRepository{}, &stubStandingRepository{}, &stubGameRepository{})

	_, err := service.HeadToHead(context.Background(), "bob_w", "Bob W")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

type stubManagerRepository struct {
	byName        map[string]manager.Manager
	championships map[string][]manager.Championship
	listErr       error
}

func (s *stubManagerRepository) List(_ context.Context) ([]manager.Manager, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]manager.Manager, 0, len(s.byName))
	for _, item := range s.byName {
		out = append(out, item)
	}
	return out, nil
}

func (s *stubManagerRepository) GetByName(_ context.Context, name string) (manager.Manager, bool, error) {
	item, ok := s.byName[name]
	return item, ok, nil
}

func (s *stubManagerRepository) ListChampionships(_ context.Context, coach string) ([]manager.Championship, error) {
	return s.championships[coach], nil
}
