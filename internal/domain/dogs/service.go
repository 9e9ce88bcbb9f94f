package dogs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	// ErrAlreadySold bloquea la re-venta: la transición a SOLD es one-way.
	ErrAlreadySold = errors.New("this dog has already been sold")
)

// TutorDirectory resuelve existencia de tutores sin importar el paquete
// tutors (evita ciclos de import; el router inyecta el repo concreto).
type TutorDirectory interface {
	Exists(ctx context.Context, tutorID string) (bool, error)
}

// SaleRemover borra el registro de venta de un perro. La venta es propiedad
// del perro y no lo sobrevive; misma interfaz local anti-ciclos que
// TutorDirectory (el router inyecta el repo de sales).
type SaleRemover interface {
	DeleteByDog(ctx context.Context, dogID string) error
}

type Service struct {
	repo   Repository
	tutors TutorDirectory
	sales  SaleRemover
	now    func() time.Time
}

func NewService(repo Repository, tutors TutorDirectory, sales SaleRemover) *Service {
	return &Service{
		repo:   repo,
		tutors: tutors,
		sales:  sales,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name      string
	Sex       Sex
	Breed     string
	BirthDate time.Time

	TutorID  *string
	MotherID *string
	FatherID *string
	LitterID *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Dog, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Dog{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Breed) == "" {
		return Dog{}, ErrInvalidInput
	}
	if !ValidSex(in.Sex) {
		return Dog{}, ErrInvalidInput
	}
	if in.BirthDate.IsZero() {
		return Dog{}, ErrInvalidInput
	}

	if in.TutorID != nil {
		if err := s.requireTutor(ctx, *in.TutorID); err != nil {
			return Dog{}, err
		}
	}
	if err := s.requireParents(ctx, in.MotherID, in.FatherID); err != nil {
		return Dog{}, err
	}

	now := s.now()
	d := Dog{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Sex:       in.Sex,
		Breed:     strings.TrimSpace(in.Breed),
		BirthDate: in.BirthDate,
		Status:    StatusAvailable,
		TutorID:   in.TutorID,
		MotherID:  in.MotherID,
		FatherID:  in.FatherID,
		LitterID:  in.LitterID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Dog, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Dog{}, fmt.Errorf("dog %s: %w", id, ErrNotFound)
		}
		return Dog{}, err
	}
	return d, nil
}

// GetMany carga varios perros de una vez; los ids ausentes no figuran en el
// mapa (el caller decide si eso es un error).
func (s *Service) GetMany(ctx context.Context, ids []string) (map[string]Dog, error) {
	return s.repo.GetByIDs(ctx, ids)
}

func (s *Service) List(ctx context.Context) ([]Dog, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByLitter(ctx context.Context, litterID string) ([]Dog, error) {
	return s.repo.ListByLitter(ctx, litterID)
}

// Delete elimina el perro con todo lo que le pertenece: sus gastos (en el
// repo) y su registro de venta, que no lo sobrevive.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if s.sales != nil {
		if err := s.sales.DeleteByDog(ctx, id); err != nil {
			return err
		}
	}
	return s.repo.Delete(ctx, id)
}

// Update reemplaza los datos editables del perro (PUT completo). El status
// no entra acá: tiene su propia operación.
func (s *Service) Update(ctx context.Context, id string, in CreateInput) (Dog, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Breed) == "" {
		return Dog{}, ErrInvalidInput
	}
	if !ValidSex(in.Sex) || in.BirthDate.IsZero() {
		return Dog{}, ErrInvalidInput
	}

	d, err := s.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}

	if in.TutorID != nil {
		if err := s.requireTutor(ctx, *in.TutorID); err != nil {
			return Dog{}, err
		}
	}
	if err := s.requireParents(ctx, in.MotherID, in.FatherID); err != nil {
		return Dog{}, err
	}

	d.Name = strings.TrimSpace(in.Name)
	d.Sex = in.Sex
	d.Breed = strings.TrimSpace(in.Breed)
	d.BirthDate = in.BirthDate
	d.TutorID = in.TutorID
	d.MotherID = in.MotherID
	d.FatherID = in.FatherID
	d.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

// UpdateStatus sobreescribe el status sin guardas de transición: la única
// transición protegida del sistema es la venta (ver MarkSold).
func (s *Service) UpdateStatus(ctx context.Context, id string, st Status) (Dog, error) {
	if !ValidStatus(st) {
		return Dog{}, ErrInvalidInput
	}

	d, err := s.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}

	d.Status = st
	d.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

// MarkSold ejecuta la transición one-way de la venta: status SOLD y tutor
// reasignado al comprador. Con el perro ya vendido devuelve ErrAlreadySold.
func (s *Service) MarkSold(ctx context.Context, id, tutorID string) (Dog, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}
	if d.Status == StatusSold {
		return Dog{}, ErrAlreadySold
	}

	d.Status = StatusSold
	d.TutorID = &tutorID
	d.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

type ExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Date        *time.Time // nil = hoy
}

func (s *Service) AddExpense(ctx context.Context, dogID string, in ExpenseInput) (Expense, error) {
	if strings.TrimSpace(in.Description) == "" {
		return Expense{}, ErrInvalidInput
	}
	if in.Amount.Sign() <= 0 {
		return Expense{}, ErrInvalidInput
	}

	if _, err := s.GetByID(ctx, dogID); err != nil {
		return Expense{}, err
	}

	date := s.now()
	if in.Date != nil {
		date = *in.Date
	}

	e := Expense{
		ID:          uuid.NewString(),
		DogID:       dogID,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Date:        date,
	}

	if err := s.repo.AddExpense(ctx, e); err != nil {
		return Expense{}, err
	}
	return e, nil
}

func (s *Service) ListExpenses(ctx context.Context, dogID string) ([]Expense, error) {
	if _, err := s.GetByID(ctx, dogID); err != nil {
		return nil, err
	}
	return s.repo.ListExpensesByDog(ctx, dogID)
}

// ApplyPartial aplica un Patch sobre el perro persistido. Los campos no
// presentes quedan como estaban; las referencias se re-resuelven contra su
// repositorio antes de asignarse, así un id inexistente falla sin mutar nada.
func (s *Service) ApplyPartial(ctx context.Context, id string, p Patch) (Dog, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return Dog{}, &FieldError{Field: "name", Reason: "must not be blank"}
		}
		d.Name = name
	}
	if p.Breed != nil {
		breed := strings.TrimSpace(*p.Breed)
		if breed == "" {
			return Dog{}, &FieldError{Field: "breed", Reason: "must not be blank"}
		}
		d.Breed = breed
	}
	if p.Sex != nil {
		d.Sex = *p.Sex
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.BirthDate != nil {
		d.BirthDate = *p.BirthDate
	}

	if p.TutorID.Present {
		if p.TutorID.Value == nil {
			d.TutorID = nil
		} else {
			if err := s.requireTutor(ctx, *p.TutorID.Value); err != nil {
				return Dog{}, err
			}
			d.TutorID = p.TutorID.Value
		}
	}
	if p.MotherID.Present {
		if err := s.applyParentRef(ctx, &d.MotherID, p.MotherID); err != nil {
			return Dog{}, err
		}
	}
	if p.FatherID.Present {
		if err := s.applyParentRef(ctx, &d.FatherID, p.FatherID); err != nil {
			return Dog{}, err
		}
	}

	d.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) applyParentRef(ctx context.Context, dst **string, ref Ref) error {
	if ref.Value == nil {
		*dst = nil
		return nil
	}
	if _, err := s.GetByID(ctx, *ref.Value); err != nil {
		return err
	}
	*dst = ref.Value
	return nil
}

// requireParents verifica que las referencias a madre/padre apunten a perros
// existentes, igual que hace ApplyPartial con applyParentRef.
func (s *Service) requireParents(ctx context.Context, motherID, fatherID *string) error {
	if motherID != nil {
		if _, err := s.GetByID(ctx, *motherID); err != nil {
			return err
		}
	}
	if fatherID != nil {
		if _, err := s.GetByID(ctx, *fatherID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) requireTutor(ctx context.Context, tutorID string) error {
	if s.tutors == nil {
		return nil
	}
	ok, err := s.tutors.Exists(ctx, tutorID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("tutor %s: %w", tutorID, ErrNotFound)
	}
	return nil
}
