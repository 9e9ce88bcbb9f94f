package dogs

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, d Dog) error
	Update(ctx context.Context, d Dog) error
	GetByID(ctx context.Context, id string) (Dog, error)
	// GetByIDs carga en batch; los ids inexistentes simplemente no aparecen
	// en el mapa.
	GetByIDs(ctx context.Context, ids []string) (map[string]Dog, error)
	List(ctx context.Context) ([]Dog, error)
	ListByLitter(ctx context.Context, litterID string) ([]Dog, error)
	Delete(ctx context.Context, id string) error

	CountByTutor(ctx context.Context, tutorID string) (int, error)
	CountByStatus(ctx context.Context, st Status) (int, error)

	AddExpense(ctx context.Context, e Expense) error
	ListExpensesByDog(ctx context.Context, dogID string) ([]Expense, error)
	ListExpensesAfter(ctx context.Context, from time.Time) ([]Expense, error)
	ListRecentExpenses(ctx context.Context, limit int) ([]Expense, error)
}
