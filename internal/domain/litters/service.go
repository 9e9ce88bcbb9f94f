package litters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kennel-records/internal/domain/dogs"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	dogs *dogs.Service
	now  func() time.Time
}

func NewService(repo Repository, dogsSvc *dogs.Service) *Service {
	return &Service{
		repo: repo,
		dogs: dogsSvc,
		now:  time.Now,
	}
}

type OffspringSpec struct {
	Name string
	Sex  dogs.Sex
}

type CreateInput struct {
	BirthDate time.Time
	MotherID  string
	FatherID  string
	Offspring []OffspringSpec // vacía es legal: camada sin crías registradas
}

// Create valida los padres y registra la camada junto con sus crías. El
// orden de las validaciones es parte del contrato: faltante(madre),
// faltante(padre), sexo(madre), sexo(padre) y recién al final identidad,
// para que una hembra enviada en ambos roles reporte el error de sexo del
// padre y no el de identidad.
func (s *Service) Create(ctx context.Context, in CreateInput) (Litter, []dogs.Dog, error) {
	if in.BirthDate.IsZero() {
		return Litter{}, nil, ErrInvalidInput
	}
	motherID := strings.TrimSpace(in.MotherID)
	fatherID := strings.TrimSpace(in.FatherID)
	if motherID == "" || fatherID == "" {
		return Litter{}, nil, ErrInvalidInput
	}
	for _, spec := range in.Offspring {
		if strings.TrimSpace(spec.Name) == "" || !dogs.ValidSex(spec.Sex) {
			return Litter{}, nil, ErrInvalidInput
		}
	}

	parents, err := s.dogs.GetMany(ctx, []string{motherID, fatherID})
	if err != nil {
		return Litter{}, nil, err
	}

	mother, err := s.validateParents(parents, motherID, fatherID)
	if err != nil {
		return Litter{}, nil, err
	}

	l := Litter{
		ID:        uuid.NewString(),
		BirthDate: in.BirthDate,
		MotherID:  motherID,
		FatherID:  fatherID,
		CreatedAt: s.now(),
	}

	// La camada se persiste antes que las crías: cada cría la referencia vía
	// LitterID y no puede apuntar a una fila que todavía no existe.
	if err := s.repo.Create(ctx, l); err != nil {
		return Litter{}, nil, err
	}

	// Las crías heredan la fecha de la camada y la raza de la madre; nacen
	// disponibles y sin tutor.
	offspring := make([]dogs.Dog, 0, len(in.Offspring))
	for _, spec := range in.Offspring {
		pup, err := s.dogs.Create(ctx, dogs.CreateInput{
			Name:      spec.Name,
			Sex:       spec.Sex,
			Breed:     mother.Breed,
			BirthDate: l.BirthDate,
			MotherID:  &l.MotherID,
			FatherID:  &l.FatherID,
			LitterID:  &l.ID,
		})
		if err != nil {
			return Litter{}, nil, err
		}
		offspring = append(offspring, pup)
	}

	return l, offspring, nil
}

func (s *Service) validateParents(parents map[string]dogs.Dog, motherID, fatherID string) (dogs.Dog, error) {
	mother, motherOK := parents[motherID]
	father, fatherOK := parents[fatherID]

	if !motherOK {
		return dogs.Dog{}, fmt.Errorf("mother dog %s: %w", motherID, dogs.ErrNotFound)
	}
	if !fatherOK {
		return dogs.Dog{}, fmt.Errorf("father dog %s: %w", fatherID, dogs.ErrNotFound)
	}
	if mother.Sex != dogs.SexFemale {
		return dogs.Dog{}, fmt.Errorf("%w: the dog selected as mother (%s) is not female", ErrInvalidInput, motherID)
	}
	if father.Sex != dogs.SexMale {
		return dogs.Dog{}, fmt.Errorf("%w: the dog selected as father (%s) is not male", ErrInvalidInput, fatherID)
	}
	if motherID == fatherID {
		return dogs.Dog{}, fmt.Errorf("%w: mother and father cannot be the same dog", ErrInvalidInput)
	}
	return mother, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Litter, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Litter{}, fmt.Errorf("litter %s: %w", id, ErrNotFound)
		}
		return Litter{}, err
	}
	return l, nil
}

func (s *Service) List(ctx context.Context) ([]Litter, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByMother(ctx context.Context, motherID string) ([]Litter, error) {
	if _, err := s.dogs.GetByID(ctx, motherID); err != nil {
		return nil, err
	}
	return s.repo.ListByMother(ctx, motherID)
}

func (s *Service) ListByYear(ctx context.Context, year int) ([]Litter, error) {
	if year <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByYear(ctx, year)
}

// Offspring lista las crías registradas de una camada.
func (s *Service) Offspring(ctx context.Context, litterID string) ([]dogs.Dog, error) {
	if _, err := s.GetByID(ctx, litterID); err != nil {
		return nil, err
	}
	return s.dogs.ListByLitter(ctx, litterID)
}

// Parents carga madre y padre de una camada para armar respuestas de detalle.
func (s *Service) Parents(ctx context.Context, l Litter) (mother, father *dogs.Dog, err error) {
	found, err := s.dogs.GetMany(ctx, []string{l.MotherID, l.FatherID})
	if err != nil {
		return nil, nil, err
	}
	if m, ok := found[l.MotherID]; ok {
		mother = &m
	}
	if f, ok := found[l.FatherID]; ok {
		father = &f
	}
	return mother, father, nil
}
