package standing

import "context"

type Repository interface {
	// ListBySeason returns rows ordered by stored rank ascending.
	ListBySeason(ctx context.Context, seasonCode string) ([]Standing, error)
	ListByTeam(ctx context.Context, teamCode string) ([]Standing, error)
	// ListAll returns every standings row across all seasons. Coach names
	// are free text, so career aggregation fuzzy-matches in memory over
	// the full set; at league scale that is a few hundred rows.
	ListAll(ctx context.Context) ([]Standing, error)
}
