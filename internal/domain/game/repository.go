package game

import "context"

type Repository interface {
	// ListBySeason returns games ordered by game number descending, i.e.
	// most recent first. Streak detection depends on that ordering.
	ListBySeason(ctx context.Context, seasonCode string, mode Mode) ([]Game, error)
	ListBetweenTeams(ctx context.Context, seasonCode, teamA, teamB string) ([]Game, error)
	ListRecent(ctx context.Context, seasonCodes []string, limit int) ([]Game, error)
}
