package team

import "context"

type Repository interface {
	// List reads the deduplicated team view; a team that appeared in
	// multiple leagues over the years surfaces once per league code.
	List(ctx context.Context, leagueCode string) ([]Team, error)
	GetByCode(ctx context.Context, code string) (Team, bool, error)
}
