package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rinksidehq/rinkside/internal/domain/season"
	"github.com/rinksidehq/rinkside/internal/domain/standing"
)

// BracketSide is one seeded team in a first-round matchup.
type BracketSide struct {
	Seed     int
	TeamCode string
	Coach    string
}

// Matchup pairs the higher seed against the lower seed.
type Matchup struct {
	High BracketSide
	Low  BracketSide
}

// Bracket is the first playoff round for one season. Later rounds depend on
// results and are out of scope.
type Bracket struct {
	SeasonCode string
	FieldSize  int
	Matchups   []Matchup
}

type StandingsService struct {
	seasonRepo   season.Repository
	standingRepo standing.Repository
}

func NewStandingsService(seasonRepo season.Repository, standingRepo standing.Repository) *StandingsService {
	return &StandingsService{
		seasonRepo:   seasonRepo,
		standingRepo: standingRepo,
	}
}

// ListBySeason returns the season's table ordered by stored rank, with
// division labels attached from the historical mapping when one exists.
func (s *StandingsService) ListBySeason(ctx context.Context, seasonCode string) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.ListBySeason")
	defer span.End()

	seasonCode = strings.TrimSpace(seasonCode)
	if seasonCode == "" {
		return nil, fmt.Errorf("%w: season code is required", ErrInvalidInput)
	}

	if _, err := s.requireSeason(ctx, seasonCode); err != nil {
		return nil, err
	}

	rows, err := s.standingRepo.ListBySeason(ctx, seasonCode)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	divisions, err := s.seasonRepo.ListDivisionMap(ctx, seasonCode)
	if err != nil {
		return nil, fmt.Errorf("list division map: %w", err)
	}
	if len(divisions) > 0 {
		byTeam := make(map[string]string, len(divisions))
		for _, d := range divisions {
			byTeam[strings.ToUpper(d.TeamCode)] = d.Division
		}
		for i := range rows {
			if label, ok := byTeam[strings.ToUpper(rows[i].TeamCode)]; ok {
				rows[i].Division = label
			}
		}
	}

	return rows, nil
}

// Bracket seeds the first playoff round from the final table. The second
// return is false when the season has no playoff field or fewer ranked teams
// than the field size; a partial bracket is never produced.
func (s *StandingsService) Bracket(ctx context.Context, seasonCode string) (Bracket, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Bracket")
	defer span.End()

	seasonCode = strings.TrimSpace(seasonCode)
	if seasonCode == "" {
		return Bracket{}, false, fmt.Errorf("%w: season code is required", ErrInvalidInput)
	}

	item, err := s.requireSeason(ctx, seasonCode)
	if err != nil {
		return Bracket{}, false, err
	}
	if item.PlayoffTeams < 2 {
		return Bracket{}, false, nil
	}

	rows, err := s.standingRepo.ListBySeason(ctx, seasonCode)
	if err != nil {
		return Bracket{}, false, fmt.Errorf("list standings: %w", err)
	}
	if len(rows) < item.PlayoffTeams {
		return Bracket{}, false, nil
	}

	return seedBracket(seasonCode, rows, item.PlayoffTeams), true, nil
}

// seedBracket pairs seed i against seed n+1-i over the top n ranked rows.
func seedBracket(seasonCode string, rows []standing.Standing, fieldSize int) Bracket {
	out := Bracket{
		SeasonCode: seasonCode,
		FieldSize:  fieldSize,
		Matchups:   make([]Matchup, 0, fieldSize/2),
	}
	for i := 0; i < fieldSize/2; i++ {
		high, low := rows[i], rows[fieldSize-1-i]
		out.Matchups = append(out.Matchups, Matchup{
			High: BracketSide{Seed: i + 1, TeamCode: high.TeamCode, Coach: high.Coach},
			Low:  BracketSide{Seed: fieldSize - i, TeamCode: low.TeamCode, Coach: low.Coach},
		})
	}
	return out
}

func (s *StandingsService) requireSeason(ctx context.Context, seasonCode string) (season.Season, error) {
	item, exists, err := s.seasonRepo.GetByCode(ctx, seasonCode)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonCode)
	}
	return item, nil
}
