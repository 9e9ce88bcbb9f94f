package tutors

import "context"

type Repository interface {
	Create(ctx context.Context, t Tutor) error
	Update(ctx context.Context, t Tutor) error
	GetByID(ctx context.Context, id string) (Tutor, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]Tutor, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}
