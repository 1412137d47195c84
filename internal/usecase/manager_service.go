package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rinksidehq/rinkside/internal/domain/game"
	"github.com/rinksidehq/rinkside/internal/domain/manager"
	"github.com/rinksidehq/rinkside/internal/domain/season"
	"github.com/rinksidehq/rinkside/internal/domain/standing"
)

// CareerTotals sums a manager's standings lines across every season the
// fuzzy name match attributes to them.
type CareerTotals struct {
	Seasons      int
	GamesPlayed  int
	Wins         int
	Losses       int
	Ties         int
	OTLosses     int
	Points       int
	GoalsFor     int
	GoalsAgainst int
}

// WinPct returns wins over games played; false when no games were played.
func (c CareerTotals) WinPct() (float64, bool) {
	if c.GamesPlayed <= 0 {
		return 0, false
	}
	return float64(c.Wins) / float64(c.GamesPlayed), true
}

// ManagerProfile is the full manager page payload.
type ManagerProfile struct {
	Manager       manager.Manager
	Seasons       []standing.Standing
	Career        CareerTotals
	Championships []manager.Championship
}

// HeadToHead tallies the games played between two managers' teams across the
// seasons both coached in.
type HeadToHead struct {
	ManagerA string
	ManagerB string
	WinsA    int
	WinsB    int
	Ties     int
	Games    []game.Game
}

type ManagerService struct {
	managerRepo  manager.Repository
	standingRepo standing.Repository
	gameRepo     game.Repository
}

func NewManagerService(managerRepo manager.Repository, standingRepo standing.Repository, gameRepo game.Repository) *ManagerService {
	return &ManagerService{
		managerRepo:  managerRepo,
		standingRepo: standingRepo,
		gameRepo:     gameRepo,
	}
}

func (s *ManagerService) List(ctx context.Context) ([]manager.Manager, error) {
	items, err := s.managerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	return items, nil
}

// Profile assembles a manager's page: season lines, career totals and
// championships. Season lines are joined by fuzzy coach-name matching since
// the standings store coach names as free text.
func (s *ManagerService) Profile(ctx context.Context, name string) (ManagerProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.Profile")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return ManagerProfile{}, fmt.Errorf("%w: manager name is required", ErrInvalidInput)
	}

	item, exists, err := s.managerRepo.GetByName(ctx, name)
	if err != nil {
		return ManagerProfile{}, fmt.Errorf("get manager: %w", err)
	}
	if !exists {
		return ManagerProfile{}, fmt.Errorf("%w: manager=%s", ErrNotFound, name)
	}

	seasons, err := s.careerLines(ctx, item.Name)
	if err != nil {
		return ManagerProfile{}, err
	}

	titles, err := s.managerRepo.ListChampionships(ctx, item.Name)
	if err != nil {
		return ManagerProfile{}, fmt.Errorf("list championships: %w", err)
	}

	profile := ManagerProfile{
		Manager:       item,
		Seasons:       seasons,
		Championships: titles,
	}
	for _, row := range seasons {
		profile.Career.Seasons++
		profile.Career.GamesPlayed += row.GamesPlayed
		profile.Career.Wins += row.Wins
		profile.Career.Losses += row.Losses
		profile.Career.Ties += row.Ties
		profile.Career.OTLosses += row.OTLosses
		profile.Career.Points += row.Points
		profile.Career.GoalsFor += row.GoalsFor
		profile.Career.GoalsAgainst += row.GoalsAgainst
	}

	return profile, nil
}

// HeadToHead resolves both managers' team per season and tallies the games
// those teams played against each other.
func (s *ManagerService) HeadToHead(ctx context.Context, nameA, nameB string) (HeadToHead, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.HeadToHead")
	defer span.End()

	nameA, nameB = strings.TrimSpace(nameA), strings.TrimSpace(nameB)
	if nameA == "" || nameB == "" {
		return HeadToHead{}, fmt.Errorf("%w: two manager names are required", ErrInvalidInput)
	}
	if manager.NamesMatch(nameA, nameB) {
		return HeadToHead{}, fmt.Errorf("%w: managers must differ", ErrInvalidInput)
	}

	linesA, err := s.careerLines(ctx, nameA)
	if err != nil {
		return HeadToHead{}, err
	}
	linesB, err := s.careerLines(ctx, nameB)
	if err != nil {
		return HeadToHead{}, err
	}

	teamBySeasonB := make(map[string]string, len(linesB))
	for _, row := range linesB {
		teamBySeasonB[row.SeasonCode] = row.TeamCode
	}

	out := HeadToHead{ManagerA: nameA, ManagerB: nameB}
	for _, rowA := range linesA {
		teamB, ok := teamBySeasonB[rowA.SeasonCode]
		if !ok {
			continue
		}
		games, err := s.gameRepo.ListBetweenTeams(ctx, rowA.SeasonCode, rowA.TeamCode, teamB)
		if err != nil {
			return HeadToHead{}, fmt.Errorf("list head-to-head games: %w", err)
		}
		for _, g := range games {
			if !g.Played() {
				continue
			}
			out.Games = append(out.Games, g)
			switch {
			case game.IsWinResult(g.ResultFor(rowA.TeamCode)):
				out.WinsA++
			case game.IsWinResult(g.ResultFor(teamB)):
				out.WinsB++
			default:
				out.Ties++
			}
		}
	}

	return out, nil
}

// careerLines fetches every standings row whose coach name fuzzily matches,
// ordered newest season first within each league. The standings set is small
// enough to scan in memory.
func (s *ManagerService) careerLines(ctx context.Context, name string) ([]standing.Standing, error) {
	rows, err := s.standingRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	matched := make([]standing.Standing, 0, 8)
	for _, row := range rows {
		if manager.NamesMatch(row.Coach, name) {
			matched = append(matched, row)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		pi, pj := season.LeaguePrefix(matched[i].SeasonCode), season.LeaguePrefix(matched[j].SeasonCode)
		if pi != pj {
			return pi < pj
		}
		return season.SequenceNumber(matched[i].SeasonCode) > season.SequenceNumber(matched[j].SeasonCode)
	})

	return matched, nil
}
