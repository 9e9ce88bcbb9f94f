package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"kennel-records/internal/domain/dogs"
)

type dogsRepo struct {
	mu       sync.RWMutex
	byID     map[string]dogs.Dog
	expenses map[string]dogs.Expense
}

func NewDogsRepo() dogs.Repository {
	return &dogsRepo{
		byID:     make(map[string]dogs.Dog),
		expenses: make(map[string]dogs.Expense),
	}
}

func (r *dogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("dog already exists")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *dogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[d.ID]; !exists {
		return dogs.ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *dogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	return d, nil
}

func (r *dogsRepo) GetByIDs(ctx context.Context, ids []string) (map[string]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]dogs.Dog, len(ids))
	for _, id := range ids {
		if d, ok := r.byID[id]; ok {
			out[id] = d
		}
	}
	return out, nil
}

func (r *dogsRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Dog, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}
	sortDogs(out)
	return out, nil
}

func (r *dogsRepo) ListByLitter(ctx context.Context, litterID string) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Dog, 0)
	for _, d := range r.byID {
		if d.LitterID != nil && *d.LitterID == litterID {
			out = append(out, d)
		}
	}
	sortDogs(out)
	return out, nil
}

func (r *dogsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return dogs.ErrNotFound
	}
	delete(r.byID, id)

	// los gastos viven y mueren con su perro
	for eid, e := range r.expenses {
		if e.DogID == id {
			delete(r.expenses, eid)
		}
	}
	return nil
}

func (r *dogsRepo) CountByTutor(ctx context.Context, tutorID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, d := range r.byID {
		if d.TutorID != nil && *d.TutorID == tutorID {
			n++
		}
	}
	return n, nil
}

func (r *dogsRepo) CountByStatus(ctx context.Context, st dogs.Status) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, d := range r.byID {
		if d.Status == st {
			n++
		}
	}
	return n, nil
}

func (r *dogsRepo) AddExpense(ctx context.Context, e dogs.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("expense id required")
	}
	if _, exists := r.byID[e.DogID]; !exists {
		return dogs.ErrNotFound
	}
	r.expenses[e.ID] = e
	return nil
}

func (r *dogsRepo) ListExpensesByDog(ctx context.Context, dogID string) ([]dogs.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Expense, 0)
	for _, e := range r.expenses {
		if e.DogID == dogID {
			out = append(out, e)
		}
	}
	sortExpenses(out)
	return out, nil
}

func (r *dogsRepo) ListExpensesAfter(ctx context.Context, from time.Time) ([]dogs.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Expense, 0)
	for _, e := range r.expenses {
		if !e.Date.Before(from) {
			out = append(out, e)
		}
	}
	sortExpenses(out)
	return out, nil
}

func (r *dogsRepo) ListRecentExpenses(ctx context.Context, limit int) ([]dogs.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Orden estable por fecha de alta (consistencia en dev y tests).
func sortDogs(items []dogs.Dog) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

func sortExpenses(items []dogs.Expense) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Date.Equal(items[j].Date) {
			return items[i].ID < items[j].ID
		}
		return items[i].Date.Before(items[j].Date)
	})
}
