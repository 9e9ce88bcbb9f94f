package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kennel-records/internal/domain/dogs"
	"kennel-records/internal/domain/tutors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo   Repository
	dogs   *dogs.Service
	tutors *tutors.Service
	now    func() time.Time
}

func NewService(repo Repository, dogsSvc *dogs.Service, tutorsSvc *tutors.Service) *Service {
	return &Service{
		repo:   repo,
		dogs:   dogsSvc,
		tutors: tutorsSvc,
		now:    time.Now,
	}
}

type SellInput struct {
	TutorID string
	Amount  decimal.Decimal
	Date    time.Time // zero = hoy
}

// Sell vende un perro a un tutor existente. Con el perro ya vendido falla
// con dogs.ErrAlreadySold sin crear nada: no hay re-venta ni no-op.
func (s *Service) Sell(ctx context.Context, dogID string, in SellInput) (Sale, error) {
	if in.Amount.Sign() <= 0 {
		return Sale{}, ErrInvalidInput
	}

	d, err := s.dogs.GetByID(ctx, dogID)
	if err != nil {
		return Sale{}, err
	}
	if d.Status == dogs.StatusSold {
		return Sale{}, dogs.ErrAlreadySold
	}

	buyer, err := s.tutors.GetByID(ctx, in.TutorID)
	if err != nil {
		return Sale{}, err
	}

	return s.finalize(ctx, d.ID, buyer.ID, in.Amount, in.Date)
}

type SellFlexInput struct {
	// Exactamente uno de los dos: un tutor existente o los datos de uno
	// nuevo. Ambos o ninguno es un error de entrada.
	TutorID  *string
	NewTutor *tutors.CreateInput

	Amount decimal.Decimal
	Date   time.Time
}

// SellFlex resuelve el comprador (lookup o alta) y ejecuta la venta.
func (s *Service) SellFlex(ctx context.Context, dogID string, in SellFlexInput) (Sale, error) {
	if (in.TutorID == nil) == (in.NewTutor == nil) {
		return Sale{}, fmt.Errorf("%w: provide either tutor_id or new_tutor, not both", ErrInvalidInput)
	}
	if in.Amount.Sign() <= 0 {
		return Sale{}, ErrInvalidInput
	}

	d, err := s.dogs.GetByID(ctx, dogID)
	if err != nil {
		return Sale{}, err
	}
	if d.Status == dogs.StatusSold {
		return Sale{}, dogs.ErrAlreadySold
	}

	var buyerID string
	if in.TutorID != nil {
		buyer, err := s.tutors.GetByID(ctx, *in.TutorID)
		if err != nil {
			return Sale{}, err
		}
		buyerID = buyer.ID
	} else {
		buyer, err := s.tutors.Create(ctx, *in.NewTutor)
		if err != nil {
			return Sale{}, err
		}
		buyerID = buyer.ID
	}

	return s.finalize(ctx, d.ID, buyerID, in.Amount, in.Date)
}

// finalize crea el registro de venta y dispara la transición one-way del
// perro (SOLD + tutor nuevo). MarkSold re-chequea el estado; dos ventas
// concurrentes sobre el mismo perro las serializa la capa transaccional.
func (s *Service) finalize(ctx context.Context, dogID, tutorID string, amount decimal.Decimal, date time.Time) (Sale, error) {
	if date.IsZero() {
		date = s.now()
	}

	sale := Sale{
		ID:        uuid.NewString(),
		DogID:     dogID,
		TutorID:   tutorID,
		Amount:    amount,
		Date:      date,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return Sale{}, err
	}

	if _, err := s.dogs.MarkSold(ctx, dogID, tutorID); err != nil {
		return Sale{}, err
	}
	return sale, nil
}

func (s *Service) GetByDog(ctx context.Context, dogID string) (Sale, error) {
	sale, err := s.repo.GetByDog(ctx, dogID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Sale{}, fmt.Errorf("sale for dog %s: %w", dogID, ErrNotFound)
		}
		return Sale{}, err
	}
	return sale, nil
}

func (s *Service) List(ctx context.Context) ([]Sale, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListBetween(ctx context.Context, from, to time.Time) ([]Sale, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}
	return s.repo.ListBetween(ctx, from, to)
}
