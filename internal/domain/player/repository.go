package player

import "context"

type Repository interface {
	Search(ctx context.Context, query string, limit int) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	ListByIDs(ctx context.Context, ids []int64) ([]Player, error)
	ListAttributes(ctx context.Context, playerID int64) ([]SeasonAttributes, error)
	// ListRoster returns the attribute rows of every player rated on the
	// given team for the given year.
	ListRoster(ctx context.Context, teamCode string, year int) ([]SeasonAttributes, error)
	// ListFuture returns attribute rows for years strictly after the given
	// year, used for roster projections.
	ListFuture(ctx context.Context, playerIDs []int64, afterYear int) ([]SeasonAttributes, error)
}
