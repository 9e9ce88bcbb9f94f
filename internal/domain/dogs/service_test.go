package dogs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID     map[string]Dog
	expenses map[string]Expense
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Dog{}, expenses: map[string]Expense{}}
}

func (r *testRepo) Create(ctx context.Context, d Dog) error {
	if d.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[d.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *testRepo) Update(ctx context.Context, d Dog) error {
	if _, ok := r.byID[d.ID]; !ok {
		return ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Dog, error) {
	d, ok := r.byID[id]
	if !ok {
		return Dog{}, ErrNotFound
	}
	return d, nil
}

func (r *testRepo) GetByIDs(ctx context.Context, ids []string) (map[string]Dog, error) {
	out := map[string]Dog{}
	for _, id := range ids {
		if d, ok := r.byID[id]; ok {
			out[id] = d
		}
	}
	return out, nil
}

func (r *testRepo) List(ctx context.Context) ([]Dog, error) {
	out := make([]Dog, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}
	return out, nil
}

func (r *testRepo) ListByLitter(ctx context.Context, litterID string) ([]Dog, error) {
	out := make([]Dog, 0)
	for _, d := range r.byID {
		if d.LitterID != nil && *d.LitterID == litterID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) CountByTutor(ctx context.Context, tutorID string) (int, error) {
	n := 0
	for _, d := range r.byID {
		if d.TutorID != nil && *d.TutorID == tutorID {
			n++
		}
	}
	return n, nil
}

func (r *testRepo) CountByStatus(ctx context.Context, st Status) (int, error) {
	n := 0
	for _, d := range r.byID {
		if d.Status == st {
			n++
		}
	}
	return n, nil
}

func (r *testRepo) AddExpense(ctx context.Context, e Expense) error {
	r.expenses[e.ID] = e
	return nil
}

func (r *testRepo) ListExpensesByDog(ctx context.Context, dogID string) ([]Expense, error) {
	out := make([]Expense, 0)
	for _, e := range r.expenses {
		if e.DogID == dogID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testRepo) ListExpensesAfter(ctx context.Context, from time.Time) ([]Expense, error) {
	out := make([]Expense, 0)
	for _, e := range r.expenses {
		if !e.Date.Before(from) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testRepo) ListRecentExpenses(ctx context.Context, limit int) ([]Expense, error) {
	out := make([]Expense, 0)
	for _, e := range r.expenses {
		out = append(out, e)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// testTutors es un TutorDirectory de ids fijos.
type testTutors struct {
	ids map[string]bool
}

func (t *testTutors) Exists(ctx context.Context, id string) (bool, error) {
	return t.ids[id], nil
}

// testSales registra las cascadas de venta pedidas.
type testSales struct {
	deleted []string
}

func (s *testSales) DeleteByDog(ctx context.Context, dogID string) error {
	s.deleted = append(s.deleted, dogID)
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_DefaultsToAvailable(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	d, err := svc.Create(context.Background(), CreateInput{
		Name:      "Rex",
		Sex:       SexMale,
		Breed:     "Border Collie",
		BirthDate: time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if d.Status != StatusAvailable {
		t.Fatalf("expected status AVAILABLE, got %s", d.Status)
	}
	if d.ID == "" {
		t.Fatalf("expected generated id")
	}
	if d.CreatedAt != now || d.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
	if d.TutorID != nil {
		t.Fatalf("expected no tutor, got %v", *d.TutorID)
	}
}

func TestService_Create_RejectsBlankAndBadSex(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	cases := []CreateInput{
		{Name: "  ", Sex: SexMale, Breed: "Mixed", BirthDate: time.Now()},
		{Name: "Rex", Sex: SexMale, Breed: "", BirthDate: time.Now()},
		{Name: "Rex", Sex: Sex("OTHER"), Breed: "Mixed", BirthDate: time.Now()},
		{Name: "Rex", Sex: SexMale, Breed: "Mixed"},
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_Create_UnknownTutorFails(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testTutors{ids: map[string]bool{"t1": true}}, nil)

	ghost := "t-ghost"
	_, err := svc.Create(context.Background(), CreateInput{
		Name:      "Rex",
		Sex:       SexMale,
		Breed:     "Mixed",
		BirthDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		TutorID:   &ghost,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown tutor, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted, got %d dogs", len(repo.byID))
	}
}

func TestService_Create_UnknownParentFails(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	ghost := "d-ghost"
	_, err := svc.Create(context.Background(), CreateInput{
		Name:      "Pip",
		Sex:       SexMale,
		Breed:     "Mixed",
		BirthDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		MotherID:  &ghost,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown mother, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted, got %d dogs", len(repo.byID))
	}
}

func TestService_Update_UnknownParentFails(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	d, err := svc.Create(context.Background(), CreateInput{
		Name: "Pip", Sex: SexMale, Breed: "Mixed",
		BirthDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	ghost := "d-ghost"
	_, err = svc.Update(context.Background(), d.ID, CreateInput{
		Name: "Pip", Sex: SexMale, Breed: "Mixed",
		BirthDate: d.BirthDate,
		FatherID:  &ghost,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown father, got %v", err)
	}
	kept, _ := repo.GetByID(context.Background(), d.ID)
	if kept.FatherID != nil {
		t.Fatalf("expected no partial mutation, father is %v", kept.FatherID)
	}
}

func TestService_Delete_CascadesSaleRecord(t *testing.T) {
	repo := newTestRepo()
	salesStub := &testSales{}
	svc := NewService(repo, nil, salesStub)

	d, err := svc.Create(context.Background(), CreateInput{
		Name: "Toby", Sex: SexMale, Breed: "Beagle",
		BirthDate: time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.MarkSold(context.Background(), d.ID, "t1"); err != nil {
		t.Fatalf("MarkSold error: %v", err)
	}

	if err := svc.Delete(context.Background(), d.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	// la venta cae junto con el perro
	if len(salesStub.deleted) != 1 || salesStub.deleted[0] != d.ID {
		t.Fatalf("expected sale cascade for %s, got %v", d.ID, salesStub.deleted)
	}
	if _, err := repo.GetByID(context.Background(), d.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected dog gone, got %v", err)
	}
}

func TestService_UpdateStatus_OverwritesWithoutGuards(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	d, err := svc.Create(context.Background(), CreateInput{
		Name: "Luna", Sex: SexFemale, Breed: "Mixed",
		BirthDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// cualquier transición vale, incluso salir de SOLD
	for _, st := range []Status{StatusSold, StatusBreedingStock, StatusAvailable} {
		got, err := svc.UpdateStatus(context.Background(), d.ID, st)
		if err != nil {
			t.Fatalf("UpdateStatus(%s) error: %v", st, err)
		}
		if got.Status != st {
			t.Fatalf("expected %s, got %s", st, got.Status)
		}
	}

	if _, err := svc.UpdateStatus(context.Background(), d.ID, Status("NOPE")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad status, got %v", err)
	}
}

func TestService_MarkSold_RejectsSecondSale(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	d, err := svc.Create(context.Background(), CreateInput{
		Name: "Toby", Sex: SexMale, Breed: "Beagle",
		BirthDate: time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	sold, err := svc.MarkSold(context.Background(), d.ID, "t1")
	if err != nil {
		t.Fatalf("MarkSold error: %v", err)
	}
	if sold.Status != StatusSold || sold.TutorID == nil || *sold.TutorID != "t1" {
		t.Fatalf("expected SOLD with tutor t1, got %s %v", sold.Status, sold.TutorID)
	}

	if _, err := svc.MarkSold(context.Background(), d.ID, "t2"); !errors.Is(err, ErrAlreadySold) {
		t.Fatalf("expected ErrAlreadySold, got %v", err)
	}
	// el comprador original no cambia
	kept, _ := repo.GetByID(context.Background(), d.ID)
	if kept.TutorID == nil || *kept.TutorID != "t1" {
		t.Fatalf("expected tutor t1 kept, got %v", kept.TutorID)
	}
}

func TestService_AddExpense_DefaultsDateToToday(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	d, err := svc.Create(context.Background(), CreateInput{
		Name: "Nina", Sex: SexFemale, Breed: "Poodle",
		BirthDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	e, err := svc.AddExpense(context.Background(), d.ID, ExpenseInput{
		Description: "vaccines",
		Amount:      decimal.NewFromInt(120),
	})
	if err != nil {
		t.Fatalf("AddExpense error: %v", err)
	}
	if !e.Date.Equal(now) {
		t.Fatalf("expected date defaulted to now, got %v", e.Date)
	}

	if _, err := svc.AddExpense(context.Background(), d.ID, ExpenseInput{
		Description: "negative",
		Amount:      decimal.NewFromInt(-5),
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-positive amount, got %v", err)
	}
}

func TestService_ApplyPartial_NameOnly(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	d, err := svc.Create(context.Background(), CreateInput{
		Name: "Rex", Sex: SexMale, Breed: "Border Collie",
		BirthDate: time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	name := "Rex II"
	got, err := svc.ApplyPartial(context.Background(), d.ID, Patch{Name: &name})
	if err != nil {
		t.Fatalf("ApplyPartial error: %v", err)
	}
	if got.Name != "Rex II" {
		t.Fatalf("expected renamed dog, got %s", got.Name)
	}
	// el resto queda intacto
	if got.Breed != d.Breed || got.Sex != d.Sex || !got.BirthDate.Equal(d.BirthDate) {
		t.Fatalf("expected other fields untouched")
	}
}

func TestService_ApplyPartial_UnknownTutorLeavesDogUntouched(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testTutors{ids: map[string]bool{"t1": true}}, nil)

	t1 := "t1"
	d, err := svc.Create(context.Background(), CreateInput{
		Name: "Rex", Sex: SexMale, Breed: "Mixed",
		BirthDate: time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
		TutorID:   &t1,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	ghost := "t-ghost"
	name := "Should Not Apply"
	_, err = svc.ApplyPartial(context.Background(), d.ID, Patch{
		Name:    &name,
		TutorID: Ref{Present: true, Value: &ghost},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	kept, _ := repo.GetByID(context.Background(), d.ID)
	if kept.Name != "Rex" {
		t.Fatalf("expected no partial mutation, name is %s", kept.Name)
	}
	if kept.TutorID == nil || *kept.TutorID != "t1" {
		t.Fatalf("expected tutor t1 kept, got %v", kept.TutorID)
	}
}

func TestService_ApplyPartial_ClearTutorWithNull(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testTutors{ids: map[string]bool{"t1": true}}, nil)

	t1 := "t1"
	d, err := svc.Create(context.Background(), CreateInput{
		Name: "Rex", Sex: SexMale, Breed: "Mixed",
		BirthDate: time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
		TutorID:   &t1,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := svc.ApplyPartial(context.Background(), d.ID, Patch{
		TutorID: Ref{Present: true, Value: nil},
	})
	if err != nil {
		t.Fatalf("ApplyPartial error: %v", err)
	}
	if got.TutorID != nil {
		t.Fatalf("expected tutor cleared, got %v", *got.TutorID)
	}
}
