package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/rinksidehq/rinkside/internal/domain/season"
	seasonmock "github.com/rinksidehq/rinkside/internal/mocks/domain/season"
)

func TestSeasonService_GetByCode_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasonRepo := seasonmock.NewRepository(t)

	service := NewSeasonService(seasonRepo)
	want := season.Season{Code: "W16", Year: 2026, PlayoffTeams: 8}

	seasonRepo.
		On("GetByCode", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "W16").
		Return(want, true, nil).
		Once()

	got, err := service.GetByCode(ctx, "W16")
	if err != nil {
		t.Fatalf("get season: %v", err)
	}
	if got.Code != want.Code || got.PlayoffTeams != want.PlayoffTeams {
		t.Fatalf("unexpected season: %+v", got)
	}
}

func TestSeasonService_GetByCode_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasonRepo := seasonmock.NewRepository(t)

	service := NewSeasonService(seasonRepo)

	seasonRepo.
		On("GetByCode", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "W99").
		Return(season.Season{}, false, nil).
		Once()

	_, err := service.GetByCode(ctx, "W99")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
