package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/rinksidehq/rinkside/internal/domain/player"
)

const (
	defaultSearchLimit = 25
	maxSearchLimit     = 100
)

// PlayerCareer is a player with every rating sheet on record, oldest year
// first.
type PlayerCareer struct {
	Player     player.Player
	Attributes []player.SeasonAttributes
}

// Comparison carries two full careers side by side.
type Comparison struct {
	Left  PlayerCareer
	Right PlayerCareer
}

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) Search(ctx context.Context, query string, limit int) ([]player.Player, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	items, err := s.playerRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) Career(ctx context.Context, id int64) (PlayerCareer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Career")
	defer span.End()

	if id <= 0 {
		return PlayerCareer{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return PlayerCareer{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return PlayerCareer{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	attrs, err := s.playerRepo.ListAttributes(ctx, id)
	if err != nil {
		return PlayerCareer{}, fmt.Errorf("list player attributes: %w", err)
	}

	return PlayerCareer{Player: item, Attributes: attrs}, nil
}

// Compare fetches both careers concurrently.
func (s *PlayerService) Compare(ctx context.Context, leftID, rightID int64) (Comparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Compare")
	defer span.End()

	if leftID <= 0 || rightID <= 0 {
		return Comparison{}, fmt.Errorf("%w: two player ids are required", ErrInvalidInput)
	}
	if leftID == rightID {
		return Comparison{}, fmt.Errorf("%w: players must differ", ErrInvalidInput)
	}

	var (
		left, right       PlayerCareer
		leftErr, rightErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		left, leftErr = s.Career(ctx, leftID)
	})
	wg.Go(func() {
		right, rightErr = s.Career(ctx, rightID)
	})
	wg.Wait()

	if leftErr != nil {
		return Comparison{}, leftErr
	}
	if rightErr != nil {
		return Comparison{}, rightErr
	}

	return Comparison{Left: left, Right: right}, nil
}
