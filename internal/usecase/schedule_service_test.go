package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/rinksidehq/rinkside/internal/domain/game"
	"github.com/rinksidehq/rinkside/internal/domain/season"
)

func TestScheduleService_ListBySeason_TeamFilter(t *testing.T) {
	t.Parallel()

	seasonRepo := &stubSeasonRepository{
		byCode: map[string]season.Season{"W16": {Code: "W16"}},
	}
	gameRepo := &stubGameRepository{
		bySeason: map[string][]game.Game{
			"W16|Season": {
				playedGame("W16", 3, "CGY", "EDM", "W", "L"),
				playedGame("W16", 2, "VAN", "SEA", "L", "W"),
				playedGame("W16", 1, "EDM", "cgy", "T", "T"),
			},
		},
	}
	service := NewScheduleService(seasonRepo, gameRepo)

	got, err := service.ListBySeason(context.Background(), "W16", game.ModeSeason, "CGY")
	if err != nil {
		t.Fatalf("ListBySeason error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 CGY games, got %d: %+v", len(got), got)
	}
	if got[0].GameNumber != 3 || got[1].GameNumber != 1 {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestScheduleService_ListBySeason_RejectsUnknownMode(t *testing.T) {
	t.Parallel()

	service := NewScheduleService(&stubSeasonRepository{}, &stubGameRepository{})

	_, err := service.ListBySeason(context.Background(), "W16", game.Mode("Friendly"), "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestScheduleService_RecentScores_UsesLatestSeasons(t *testing.T) {
	t.Parallel()

	seasonRepo := &stubSeasonRepository{
		byCode: map[string]season.Season{
			"W15":  {Code: "W15"},
			"W16":  {Code: "W16"},
			"AAA2": {Code: "AAA2"},
			"AAA3": {Code: "AAA3"},
		},
	}
	gameRepo := &stubGameRepository{
		recent: []game.Game{
			playedGame("W16", 40, "CGY", "EDM", "W", "L"),
			playedGame("AAA3", 22, "SEA", "VAN", "L", "W"),
		},
	}
	service := NewScheduleService(seasonRepo, gameRepo)

	got, err := service.RecentScores(context.Background(), 0)
	if err != nil {
		t.Fatalf("RecentScores error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 games, got %d", len(got))
	}

	sort.Strings(gameRepo.recentSeasons)
	if len(gameRepo.recentSeasons) != 2 || gameRepo.recentSeasons[0] != "AAA3" || gameRepo.recentSeasons[1] != "W16" {
		t.Fatalf("expected latest seasons [AAA3 W16], got %v", gameRepo.recentSeasons)
	}
}
