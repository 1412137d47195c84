package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rinksidehq/rinkside/internal/domain/game"
	"github.com/rinksidehq/rinkside/internal/domain/season"
)

const defaultTickerSize = 10

type ScheduleService struct {
	seasonRepo season.Repository
	gameRepo   game.Repository
}

func NewScheduleService(seasonRepo season.Repository, gameRepo game.Repository) *ScheduleService {
	return &ScheduleService{
		seasonRepo: seasonRepo,
		gameRepo:   gameRepo,
	}
}

// ListBySeason returns the season's games most recent first, optionally
// filtered by mode and by team.
func (s *ScheduleService) ListBySeason(ctx context.Context, seasonCode string, mode game.Mode, teamCode string) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ListBySeason")
	defer span.End()

	seasonCode = strings.TrimSpace(seasonCode)
	if seasonCode == "" {
		return nil, fmt.Errorf("%w: season code is required", ErrInvalidInput)
	}
	switch mode {
	case "", game.ModeSeason, game.ModePlayoff:
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, mode)
	}

	_, exists, err := s.seasonRepo.GetByCode(ctx, seasonCode)
	if err != nil {
		return nil, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: season=%s", ErrNotFound, seasonCode)
	}

	games, err := s.gameRepo.ListBySeason(ctx, seasonCode, mode)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	teamCode = strings.TrimSpace(teamCode)
	if teamCode != "" {
		filtered := games[:0]
		for _, g := range games {
			if strings.EqualFold(g.HomeTeam, teamCode) || strings.EqualFold(g.AwayTeam, teamCode) {
				filtered = append(filtered, g)
			}
		}
		games = filtered
	}

	return games, nil
}

// RecentScores feeds the scores ticker: the most recently played games across
// every league's latest season.
func (s *ScheduleService) RecentScores(ctx context.Context, limit int) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.RecentScores")
	defer span.End()

	if limit <= 0 {
		limit = defaultTickerSize
	}

	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	latest := season.LatestByPrefix(seasons)
	codes := make([]string, 0, len(latest))
	for _, item := range latest {
		codes = append(codes, item.Code)
	}
	if len(codes) == 0 {
		return nil, nil
	}

	games, err := s.gameRepo.ListRecent(ctx, codes, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent games: %w", err)
	}
	return games, nil
}
