package usecase

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rinksidehq/rinkside/internal/domain/manager"
	"github.com/rinksidehq/rinkside/internal/domain/player"
	"github.com/rinksidehq/rinkside/internal/domain/standing"
	"github.com/rinksidehq/rinkside/internal/domain/team"
)

func TestTeamService_History_NewestFirst(t *testing.T) {
	t.Parallel()

	teamRepo := &stubTeamRepository{
		byCode: map[string]team.Team{"CGY": {Code: "CGY", Name: "Calgary"}},
	}
	standingRepo := &stubStandingRepository{
		byTeam: map[string][]standing.Standing{
			"CGY": {
				{SeasonCode: "W2", TeamCode: "CGY", Coach: "Bob W"},
				{SeasonCode: "W10", TeamCode: "CGY", Coach: "Bob W"},
				{SeasonCode: "AAA1", TeamCode: "CGY", Coach: "Alice"},
			},
		},
	}
	managerRepo := &stubManagerRepository{
		championships: map[string][]manager.Championship{
			"Bob W": {{Coach: "Bob W", Label: "W10 Champion"}},
		},
	}
	service := NewTeamService(teamRepo, standingRepo, &stubPlayerRepository{}, managerRepo)

	got, err := service.History(context.Background(), "CGY")
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if len(got.Seasons) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got.Seasons))
	}
	// Leagues alphabetical, seasons newest first within a league. "W10"
	// outranks "W2" because ordering is by sequence number, not string.
	if got.Seasons[0].SeasonCode != "AAA1" || got.Seasons[1].SeasonCode != "W10" || got.Seasons[2].SeasonCode != "W2" {
		t.Fatalf("unexpected order: %+v", got.Seasons)
	}
	if len(got.Championships) != 1 || got.Championships[0].Label != "W10 Champion" {
		t.Fatalf("unexpected championships: %+v", got.Championships)
	}
}

func TestTeamService_Roster_SortedWithProjections(t *testing.T) {
	t.Parallel()

	teamRepo := &stubTeamRepository{
		byCode: map[string]team.Team{"SEA": {Code: "SEA", Name: "Seattle"}},
	}
	playerRepo := &stubPlayerRepository{
		players: map[int64]player.Player{
			1: {ID: 1, Name: "Anders"},
			2: {ID: 2, Name: "Borje"},
		},
		rosters: map[string][]player.SeasonAttributes{
			"SEA|2016": {
				{PlayerID: 1, Year: 2016, TeamCode: "SEA", Overall: 6},
				{PlayerID: 2, Year: 2016, TeamCode: "SEA", Overall: 8},
			},
		},
		future: []player.SeasonAttributes{
			{PlayerID: 2, Year: 2017, TeamCode: "SEA", Overall: 7},
		},
	}
	service := NewTeamService(teamRepo, &stubStandingRepository{}, playerRepo, &stubManagerRepository{})

	got, err := service.Roster(context.Background(), "SEA", 2016, true)
	if err != nil {
		t.Fatalf("Roster error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Player.Name != "Borje" || got[0].Attributes.Overall != 8 {
		t.Fatalf("expected highest overall first, got %+v", got[0])
	}
	if len(got[0].Future) != 1 || got[0].Future[0].Year != 2017 {
		t.Fatalf("expected one projection row for Borje, got %+v", got[0].Future)
	}
	if len(got[1].Future) != 0 {
		t.Fatalf("expected no projections for Anders, got %+v", got[1].Future)
	}
}

func TestTeamService_Roster_UnknownTeam(t *testing.T) {
	t.Parallel()

	service := NewTeamService(&stubTeamRepository{}, &stubStandingRepository{}, &stubPlayerRepository{}, &stubManagerRepository{})

	_, err := service.Roster(context.Background(), "XXX", 2016, false)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

type stubTeamRepository struct {
	byCode map[string]team.Team
}

func (s *stubTeamRepository) List(_ context.Context, leagueCode string) ([]team.Team, error) {
	out := make([]team.Team, 0, len(s.byCode))
	for _, item := range s.byCode {
		if leagueCode != "" && item.LeagueCode != leagueCode {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *stubTeamRepository) GetByCode(_ context.Context, code string) (team.Team, bool, error) {
	item, ok := s.byCode[code]
	return item, ok, nil
}

type stubPlayerRepository struct {
	players map[int64]player.Player
	attrs   map[int64][]player.SeasonAttributes
	rosters map[string][]player.SeasonAttributes
	future  []player.SeasonAttributes
}

func rosterKey(teamCode string, year int) string {
	return teamCode + "|" + strconv.Itoa(year)
}

func (s *stubPlayerRepository) Search(_ context.Context, query string, limit int) ([]player.Player, error) {
	out := make([]player.Player, 0, len(s.players))
	for _, item := range s.players {
		out = append(out, item)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubPlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	item, ok := s.players[id]
	return item, ok, nil
}

func (s *stubPlayerRepository) ListByIDs(_ context.Context, ids []int64) ([]player.Player, error) {
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.players[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubPlayerRepository) ListAttributes(_ context.Context, playerID int64) ([]player.SeasonAttributes, error) {
	return s.attrs[playerID], nil
}

func (s *stubPlayerRepository) ListRoster(_ context.Context, teamCode string, year int) ([]player.SeasonAttributes, error) {
	return s.rosters[rosterKey(teamCode, year)], nil
}

func (s *stubPlayerRepository) ListFuture(_ context.Context, playerIDs []int64, afterYear int) ([]player.SeasonAttributes, error) {
	allowed := make(map[int64]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		allowed[id] = struct{}{}
	}
	var out []player.SeasonAttributes
	for _, item := range s.future {
		if _, ok := allowed[item.PlayerID]; !ok {
			continue
		}
		if item.Year <= afterYear {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}
