package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"kennel-records/internal/domain/sales"
)

type salesRepo struct {
	mu    sync.RWMutex
	byID  map[string]sales.Sale
	byDog map[string]string // dogID -> saleID, una venta por perro
}

func NewSalesRepo() sales.Repository {
	return &salesRepo{
		byID:  make(map[string]sales.Sale),
		byDog: make(map[string]string),
	}
}

func (r *salesRepo) Create(ctx context.Context, s sales.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("sale id required")
	}
	if _, exists := r.byDog[s.DogID]; exists {
		return errors.New("sale already recorded for dog")
	}
	r.byID[s.ID] = s
	r.byDog[s.DogID] = s.ID
	return nil
}

func (r *salesRepo) GetByDog(ctx context.Context, dogID string) (sales.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byDog[dogID]
	if !ok {
		return sales.Sale{}, sales.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *salesRepo) DeleteByDog(ctx context.Context, dogID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byDog[dogID]
	if !ok {
		return nil
	}
	delete(r.byID, id)
	delete(r.byDog, dogID)
	return nil
}

func (r *salesRepo) List(ctx context.Context) ([]sales.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sales.Sale, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	sortSales(out)
	return out, nil
}

func (r *salesRepo) ListBetween(ctx context.Context, from, to time.Time) ([]sales.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sales.Sale, 0)
	for _, s := range r.byID {
		if !s.Date.Before(from) && !s.Date.After(to) {
			out = append(out, s)
		}
	}
	sortSales(out)
	return out, nil
}

func (r *salesRepo) ListAfter(ctx context.Context, from time.Time) ([]sales.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sales.Sale, 0)
	for _, s := range r.byID {
		if !s.Date.Before(from) {
			out = append(out, s)
		}
	}
	sortSales(out)
	return out, nil
}

func (r *salesRepo) ListRecent(ctx context.Context, limit int) ([]sales.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sales.Sale, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func sortSales(items []sales.Sale) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Date.Equal(items[j].Date) {
			return items[i].ID < items[j].ID
		}
		return items[i].Date.Before(items[j].Date)
	})
}
