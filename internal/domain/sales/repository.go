package sales

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, s Sale) error
	GetByDog(ctx context.Context, dogID string) (Sale, error)
	// DeleteByDog borra la venta del perro si existe; sin venta es no-op.
	DeleteByDog(ctx context.Context, dogID string) error
	List(ctx context.Context) ([]Sale, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]Sale, error)
	ListAfter(ctx context.Context, from time.Time) ([]Sale, error)
	ListRecent(ctx context.Context, limit int) ([]Sale, error)
}
