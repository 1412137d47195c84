package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rinksidehq/rinkside/internal/domain/player"
)

func TestPlayerService_Compare_BothCareers(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{
		players: map[int64]player.Player{
			1: {ID: 1, Name: "Anders"},
			2: {ID: 2, Name: "Borje"},
		},
		attrs: map[int64][]player.SeasonAttributes{
			1: {{PlayerID: 1, Year: 2015, Overall: 5}, {PlayerID: 1, Year: 2016, Overall: 6}},
			2: {{PlayerID: 2, Year: 2016, Overall: 8}},
		},
	}
	service := NewPlayerService(repo)

	got, err := service.Compare(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if got.Left.Player.Name != "Anders" || len(got.Left.Attributes) != 2 {
		t.Fatalf("unexpected left career: %+v", got.Left)
	}
	if got.Right.Player.Name != "Borje" || len(got.Right.Attributes) != 1 {
		t.Fatalf("unexpected right career: %+v", got.Right)
	}
}

func TestPlayerService_Compare_UnknownPlayer(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{
		players: map[int64]player.Player{1: {ID: 1, Name: "Anders"}},
	}
	service := NewPlayerService(repo)

	_, err := service.Compare(context.Background(), 1, 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Compare_SamePlayerRejected(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(&stubPlayerRepository{})

	_, err := service.Compare(context.Background(), 7, 7)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_Search_RequiresQuery(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(&stubPlayerRepository{})

	_, err := service.Search(context.Background(), "   ", 10)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
