package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rinksidehq/rinkside/internal/domain/league"
)

type LeagueService struct {
	leagueRepo  league.Repository
	defaultCode string
}

func NewLeagueService(leagueRepo league.Repository, defaultCode string) *LeagueService {
	return &LeagueService{
		leagueRepo:  leagueRepo,
		defaultCode: strings.ToUpper(strings.TrimSpace(defaultCode)),
	}
}

func (s *LeagueService) List(ctx context.Context) ([]league.League, error) {
	items, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	// Older datasets predate the is_default column; fall back to the
	// configured league so exactly one entry carries the flag.
	hasDefault := false
	for _, item := range items {
		if item.IsDefault {
			hasDefault = true
			break
		}
	}
	if !hasDefault && s.defaultCode != "" {
		for i := range items {
			if strings.EqualFold(items[i].Code, s.defaultCode) {
				items[i].IsDefault = true
				break
			}
		}
	}
	return items, nil
}

func (s *LeagueService) GetByCode(ctx context.Context, code string) (league.League, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return league.League{}, fmt.Errorf("%w: league code is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByCode(ctx, code)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, code)
	}
	return item, nil
}
