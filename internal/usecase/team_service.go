package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rinksidehq/rinkside/internal/domain/manager"
	"github.com/rinksidehq/rinkside/internal/domain/player"
	"github.com/rinksidehq/rinkside/internal/domain/season"
	"github.com/rinksidehq/rinkside/internal/domain/standing"
	"github.com/rinksidehq/rinkside/internal/domain/team"
)

// TeamHistory is the team page's season-by-season record plus the titles its
// coaches brought home.
type TeamHistory struct {
	Seasons       []standing.Standing
	Championships []manager.Championship
}

// RosterEntry is one player on a team's rated roster for a year, with the
// later-year rating rows attached when projections were requested.
type RosterEntry struct {
	Player     player.Player
	Attributes player.SeasonAttributes
	Future     []player.SeasonAttributes
}

type TeamService struct {
	teamRepo     team.Repository
	standingRepo standing.Repository
	playerRepo   player.Repository
	managerRepo  manager.Repository
}

func NewTeamService(teamRepo team.Repository, standingRepo standing.Repository, playerRepo player.Repository, managerRepo manager.Repository) *TeamService {
	return &TeamService{
		teamRepo:     teamRepo,
		standingRepo: standingRepo,
		playerRepo:   playerRepo,
		managerRepo:  managerRepo,
	}
}

func (s *TeamService) List(ctx context.Context, leagueCode string) ([]team.Team, error) {
	items, err := s.teamRepo.List(ctx, strings.TrimSpace(leagueCode))
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *TeamService) GetByCode(ctx context.Context, code string) (team.Team, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return team.Team{}, fmt.Errorf("%w: team code is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByCode(ctx, code)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, code)
	}
	return item, nil
}

// History returns every season line the team has in the standings, newest
// season first within each league, plus the championships won by the coaches
// on those lines.
func (s *TeamService) History(ctx context.Context, teamCode string) (TeamHistory, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.History")
	defer span.End()

	teamCode = strings.TrimSpace(teamCode)
	if teamCode == "" {
		return TeamHistory{}, fmt.Errorf("%w: team code is required", ErrInvalidInput)
	}

	if _, err := s.GetByCode(ctx, teamCode); err != nil {
		return TeamHistory{}, err
	}

	rows, err := s.standingRepo.ListByTeam(ctx, teamCode)
	if err != nil {
		return TeamHistory{}, fmt.Errorf("list team standings: %w", err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		pi, pj := season.LeaguePrefix(rows[i].SeasonCode), season.LeaguePrefix(rows[j].SeasonCode)
		if pi != pj {
			return pi < pj
		}
		return season.SequenceNumber(rows[i].SeasonCode) > season.SequenceNumber(rows[j].SeasonCode)
	})

	coaches := make([]string, 0, len(rows))
	seenCoach := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		coach := strings.TrimSpace(row.Coach)
		if coach == "" {
			continue
		}
		key := manager.NormalizeName(coach)
		if _, ok := seenCoach[key]; ok {
			continue
		}
		seenCoach[key] = struct{}{}
		coaches = append(coaches, coach)
	}

	var titles []manager.Championship
	seenTitle := make(map[string]struct{})
	for _, coach := range coaches {
		items, err := s.managerRepo.ListChampionships(ctx, coach)
		if err != nil {
			return TeamHistory{}, fmt.Errorf("list championships: %w", err)
		}
		for _, item := range items {
			if _, ok := seenTitle[item.Label]; ok {
				continue
			}
			seenTitle[item.Label] = struct{}{}
			titles = append(titles, item)
		}
	}

	return TeamHistory{Seasons: rows, Championships: titles}, nil
}

// Roster returns the players rated on the team for the given year, sorted by
// overall grade descending. With includeFuture set, each entry also carries
// the player's rating rows for later years.
func (s *TeamService) Roster(ctx context.Context, teamCode string, year int, includeFuture bool) ([]RosterEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Roster")
	defer span.End()

	teamCode = strings.TrimSpace(teamCode)
	if teamCode == "" {
		return nil, fmt.Errorf("%w: team code is required", ErrInvalidInput)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}

	if _, err := s.GetByCode(ctx, teamCode); err != nil {
		return nil, err
	}

	attrs, err := s.playerRepo.ListRoster(ctx, teamCode, year)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	if len(attrs) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(attrs))
	for _, a := range attrs {
		ids = append(ids, a.PlayerID)
	}

	players, err := s.playerRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	nameByID := make(map[int64]player.Player, len(players))
	for _, p := range players {
		nameByID[p.ID] = p
	}

	futureByID := make(map[int64][]player.SeasonAttributes)
	if includeFuture {
		future, err := s.playerRepo.ListFuture(ctx, ids, year)
		if err != nil {
			return nil, fmt.Errorf("list future attributes: %w", err)
		}
		for _, a := range future {
			futureByID[a.PlayerID] = append(futureByID[a.PlayerID], a)
		}
	}

	entries := make([]RosterEntry, 0, len(attrs))
	for _, a := range attrs {
		entries = append(entries, RosterEntry{
			Player:     nameByID[a.PlayerID],
			Attributes: a,
			Future:     futureByID[a.PlayerID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Attributes.Overall != entries[j].Attributes.Overall {
			return entries[i].Attributes.Overall > entries[j].Attributes.Overall
		}
		return entries[i].Player.Name < entries[j].Player.Name
	})

	return entries, nil
}
