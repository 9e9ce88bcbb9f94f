package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"kennel-records/internal/domain/litters"
)

type littersRepo struct {
	mu   sync.RWMutex
	byID map[string]litters.Litter
}

func NewLittersRepo() litters.Repository {
	return &littersRepo{byID: make(map[string]litters.Litter)}
}

func (r *littersRepo) Create(ctx context.Context, l litters.Litter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(l.ID) == "" {
		return errors.New("litter id required")
	}
	if _, exists := r.byID[l.ID]; exists {
		return errors.New("litter already exists")
	}
	r.byID[l.ID] = l
	return nil
}

func (r *littersRepo) GetByID(ctx context.Context, id string) (litters.Litter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return litters.Litter{}, litters.ErrNotFound
	}
	return l, nil
}

func (r *littersRepo) List(ctx context.Context) ([]litters.Litter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]litters.Litter, 0, len(r.byID))
	for _, l := range r.byID {
		out = append(out, l)
	}
	sortLitters(out)
	return out, nil
}

func (r *littersRepo) ListByMother(ctx context.Context, motherID string) ([]litters.Litter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]litters.Litter, 0)
	for _, l := range r.byID {
		if l.MotherID == motherID {
			out = append(out, l)
		}
	}
	sortLitters(out)
	return out, nil
}

func (r *littersRepo) ListByYear(ctx context.Context, year int) ([]litters.Litter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]litters.Litter, 0)
	for _, l := range r.byID {
		if l.BirthDate.Year() == year {
			out = append(out, l)
		}
	}
	sortLitters(out)
	return out, nil
}

func (r *littersRepo) ListRecent(ctx context.Context, limit int) ([]litters.Litter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]litters.Litter, 0, len(r.byID))
	for _, l := range r.byID {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BirthDate.After(out[j].BirthDate) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func sortLitters(items []litters.Litter) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].BirthDate.Equal(items[j].BirthDate) {
			return items[i].ID < items[j].ID
		}
		return items[i].BirthDate.Before(items[j].BirthDate)
	})
}
