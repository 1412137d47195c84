package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rinksidehq/rinkside/internal/domain/season"
)

type SeasonService struct {
	seasonRepo season.Repository
}

func NewSeasonService(seasonRepo season.Repository) *SeasonService {
	return &SeasonService{seasonRepo: seasonRepo}
}

// List returns seasons, optionally filtered to one league prefix, ordered
// newest first within a league.
func (s *SeasonService) List(ctx context.Context, leagueCode string) ([]season.Season, error) {
	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	leagueCode = strings.TrimSpace(leagueCode)
	if leagueCode != "" {
		filtered := items[:0]
		for _, item := range items {
			if strings.EqualFold(season.LeaguePrefix(item.Code), leagueCode) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := season.LeaguePrefix(items[i].Code), season.LeaguePrefix(items[j].Code)
		if pi != pj {
			return pi < pj
		}
		return season.SequenceNumber(items[i].Code) > season.SequenceNumber(items[j].Code)
	})

	return items, nil
}

func (s *SeasonService) GetByCode(ctx context.Context, code string) (season.Season, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return season.Season{}, fmt.Errorf("%w: season code is required", ErrInvalidInput)
	}

	item, exists, err := s.seasonRepo.GetByCode(ctx, code)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, code)
	}
	return item, nil
}

// LatestByLeague returns the most recent season per league prefix.
func (s *SeasonService) LatestByLeague(ctx context.Context) (map[string]season.Season, error) {
	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return season.LatestByPrefix(items), nil
}
