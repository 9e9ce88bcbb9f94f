package litters

import "context"

type Repository interface {
	Create(ctx context.Context, l Litter) error
	GetByID(ctx context.Context, id string) (Litter, error)
	List(ctx context.Context) ([]Litter, error)
	ListByMother(ctx context.Context, motherID string) ([]Litter, error)
	ListByYear(ctx context.Context, year int) ([]Litter, error)
	ListRecent(ctx context.Context, limit int) ([]Litter, error)
}
