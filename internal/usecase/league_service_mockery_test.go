package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/rinksidehq/rinkside/internal/domain/league"
	leaguemock "github.com/rinksidehq/rinkside/internal/mocks/domain/league"
)

func TestLeagueService_GetByCode_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)

	service := NewLeagueService(leagueRepo, "W")
	want := league.League{Code: "W", Name: "World League", IsDefault: true}

	leagueRepo.
		On("GetByCode", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "W").
		Return(want, true, nil).
		Once()

	got, err := service.GetByCode(ctx, "W")
	if err != nil {
		t.Fatalf("get league: %v", err)
	}
	if got.Code != want.Code || got.Name != want.Name {
		t.Fatalf("unexpected league: %+v", got)
	}
}

func TestLeagueService_GetByCode_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)

	service := NewLeagueService(leagueRepo, "W")

	leagueRepo.
		On("GetByCode", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "Q").
		Return(league.League{}, false, nil).
		Once()

	_, err := service.GetByCode(ctx, "Q")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeagueService_List_FlagsConfiguredDefaultUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)

	service := NewLeagueService(leagueRepo, "w")

	leagueRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return([]league.League{{Code: "AAA"}, {Code: "W"}}, nil).
		Once()

	got, err := service.List(ctx)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if got[0].IsDefault || !got[1].IsDefault {
		t.Fatalf("expected only W flagged default, got %+v", got)
	}
}

func TestLeagueService_List_KeepsStoredDefaultUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)

	service := NewLeagueService(leagueRepo, "W")

	leagueRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return([]league.League{{Code: "AAA", IsDefault: true}, {Code: "W"}}, nil).
		Once()

	got, err := service.List(ctx)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if !got[0].IsDefault || got[1].IsDefault {
		t.Fatalf("expected stored default preserved, got %+v", got)
	}
}

func TestLeagueService_List_PropagatesErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)

	service := NewLeagueService(leagueRepo, "W")
	repoErr := errors.New("connection reset")

	leagueRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(nil, repoErr).
		Once()

	_, err := service.List(ctx)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
