package tutors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	// ErrHasDogs bloquea el borrado de un tutor con perros asociados.
	ErrHasDogs = errors.New("tutor has associated dogs")
)

// DogCounter cuenta los perros que referencian a un tutor. Interfaz local
// para no importar el paquete dogs (mismo patrón que dogs.TutorDirectory).
type DogCounter interface {
	CountByTutor(ctx context.Context, tutorID string) (int, error)
}

type Service struct {
	repo Repository
	dogs DogCounter
	now  func() time.Time
}

func NewService(repo Repository, dogs DogCounter) *Service {
	return &Service{
		repo: repo,
		dogs: dogs,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name  string
	Email string
	Phone string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Tutor, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Tutor{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Email) == "" {
		return Tutor{}, ErrInvalidInput
	}

	now := s.now()
	t := Tutor{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Tutor{}, err
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Tutor, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Tutor{}, fmt.Errorf("tutor %s: %w", id, ErrNotFound)
		}
		return Tutor{}, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context) ([]Tutor, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, in CreateInput) (Tutor, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return Tutor{}, ErrInvalidInput
	}

	t, err := s.GetByID(ctx, id)
	if err != nil {
		return Tutor{}, err
	}

	t.Name = strings.TrimSpace(in.Name)
	t.Email = strings.TrimSpace(in.Email)
	t.Phone = strings.TrimSpace(in.Phone)
	t.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, t); err != nil {
		return Tutor{}, err
	}
	return t, nil
}

// FieldError señala un campo inválido dentro de un PATCH.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return "field " + e.Field + ": " + e.Reason
}

// Patch de tutor: nil = no tocar.
type Patch struct {
	Name  *string
	Email *string
	Phone *string
}

func ParsePatch(raw map[string]json.RawMessage) (Patch, error) {
	var p Patch
	for field, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return Patch{}, &FieldError{Field: field, Reason: "must be a string"}
		}
		switch field {
		case "name":
			p.Name = &s
		case "email":
			p.Email = &s
		case "phone":
			p.Phone = &s
		default:
			return Patch{}, &FieldError{Field: field, Reason: "unknown field"}
		}
	}
	return p, nil
}

func (s *Service) ApplyPartial(ctx context.Context, id string, p Patch) (Tutor, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return Tutor{}, err
	}

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return Tutor{}, &FieldError{Field: "name", Reason: "must not be blank"}
		}
		t.Name = name
	}
	if p.Email != nil {
		email := strings.TrimSpace(*p.Email)
		if email == "" {
			return Tutor{}, &FieldError{Field: "email", Reason: "must not be blank"}
		}
		t.Email = email
	}
	if p.Phone != nil {
		t.Phone = strings.TrimSpace(*p.Phone)
	}

	t.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, t); err != nil {
		return Tutor{}, err
	}
	return t, nil
}

// Delete falla con ErrHasDogs mientras algún perro siga referenciando al
// tutor.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	n, err := s.dogs.CountByTutor(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w (%d)", ErrHasDogs, n)
	}

	return s.repo.Delete(ctx, id)
}
