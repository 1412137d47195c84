package manager

import "context"

type Repository interface {
	// List reads the deduplicated manager view.
	List(ctx context.Context) ([]Manager, error)
	GetByName(ctx context.Context, name string) (Manager, bool, error)
	ListChampionships(ctx context.Context, coach string) ([]Championship, error)
}
