package season

import "context"

type Repository interface {
	List(ctx context.Context) ([]Season, error)
	GetByCode(ctx context.Context, code string) (Season, bool, error)
	ListDivisionMap(ctx context.Context, seasonCode string) ([]DivisionMapping, error)
}
