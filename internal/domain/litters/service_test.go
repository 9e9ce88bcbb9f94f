package litters_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	mem "kennel-records/internal/adapters/storage/memory"
	"kennel-records/internal/domain/dogs"
	"kennel-records/internal/domain/litters"
)

func newFixture(t *testing.T) (*litters.Service, *dogs.Service) {
	t.Helper()
	dogsSvc := dogs.NewService(mem.NewDogsRepo(), nil, nil)
	littersSvc := litters.NewService(mem.NewLittersRepo(), dogsSvc)
	return littersSvc, dogsSvc
}

func seedDog(t *testing.T, svc *dogs.Service, name string, sex dogs.Sex, breed string) dogs.Dog {
	t.Helper()
	d, err := svc.Create(context.Background(), dogs.CreateInput{
		Name:      name,
		Sex:       sex,
		Breed:     breed,
		BirthDate: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed dog %s: %v", name, err)
	}
	return d
}

func TestCreate_RegistersLitterAndOffspring(t *testing.T) {
	littersSvc, dogsSvc := newFixture(t)

	bella := seedDog(t, dogsSvc, "Bella", dogs.SexFemale, "Border Collie")
	rex := seedDog(t, dogsSvc, "Rex", dogs.SexMale, "Labrador")

	birth := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	l, pups, err := littersSvc.Create(context.Background(), litters.CreateInput{
		BirthDate: birth,
		MotherID:  bella.ID,
		FatherID:  rex.ID,
		Offspring: []litters.OffspringSpec{
			{Name: "Pip", Sex: dogs.SexMale},
			{Name: "Mia", Sex: dogs.SexFemale},
		},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(pups) != 2 {
		t.Fatalf("expected 2 offspring, got %d", len(pups))
	}

	for _, pup := range pups {
		// heredan raza de la madre y fecha de la camada
		if pup.Breed != "Border Collie" {
			t.Fatalf("pup %s: expected mother's breed, got %s", pup.Name, pup.Breed)
		}
		if !pup.BirthDate.Equal(birth) {
			t.Fatalf("pup %s: expected litter birth date, got %v", pup.Name, pup.BirthDate)
		}
		if pup.Status != dogs.StatusAvailable {
			t.Fatalf("pup %s: expected AVAILABLE, got %s", pup.Name, pup.Status)
		}
		if pup.TutorID != nil {
			t.Fatalf("pup %s: expected no tutor", pup.Name)
		}
		if pup.MotherID == nil || *pup.MotherID != bella.ID {
			t.Fatalf("pup %s: expected mother back-reference", pup.Name)
		}
		if pup.LitterID == nil || *pup.LitterID != l.ID {
			t.Fatalf("pup %s: expected litter back-reference", pup.Name)
		}
	}

	listed, err := littersSvc.Offspring(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("Offspring error: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 offspring listed, got %d", len(listed))
	}
}

func TestCreate_EmptyOffspringIsLegal(t *testing.T) {
	littersSvc, dogsSvc := newFixture(t)

	bella := seedDog(t, dogsSvc, "Bella", dogs.SexFemale, "Mixed")
	rex := seedDog(t, dogsSvc, "Rex", dogs.SexMale, "Mixed")

	l, pups, err := littersSvc.Create(context.Background(), litters.CreateInput{
		BirthDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		MotherID:  bella.ID,
		FatherID:  rex.ID,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(pups) != 0 {
		t.Fatalf("expected no offspring, got %d", len(pups))
	}
	if _, err := littersSvc.GetByID(context.Background(), l.ID); err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
}

func TestCreate_MissingParentNamesTheRole(t *testing.T) {
	littersSvc, dogsSvc := newFixture(t)

	rex := seedDog(t, dogsSvc, "Rex", dogs.SexMale, "Mixed")

	_, _, err := littersSvc.Create(context.Background(), litters.CreateInput{
		BirthDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		MotherID:  "missing-mother",
		FatherID:  rex.ID,
	})
	if !errors.Is(err, dogs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "mother") {
		t.Fatalf("expected error to name the mother role, got %q", err)
	}
}

func TestCreate_WrongSexParents(t *testing.T) {
	littersSvc, dogsSvc := newFixture(t)

	bella := seedDog(t, dogsSvc, "Bella", dogs.SexFemale, "Mixed")
	luna := seedDog(t, dogsSvc, "Luna", dogs.SexFemale, "Mixed")
	rex := seedDog(t, dogsSvc, "Rex", dogs.SexMale, "Mixed")

	// madre macho
	_, _, err := littersSvc.Create(context.Background(), litters.CreateInput{
		BirthDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		MotherID:  rex.ID,
		FatherID:  rex.ID,
	})
	if !errors.Is(err, litters.ErrInvalidInput) || !strings.Contains(err.Error(), "not female") {
		t.Fatalf("expected mother-not-female error, got %v", err)
	}

	// padre hembra
	_, _, err = littersSvc.Create(context.Background(), litters.CreateInput{
		BirthDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		MotherID:  bella.ID,
		FatherID:  luna.ID,
	})
	if !errors.Is(err, litters.ErrInvalidInput) || !strings.Contains(err.Error(), "not male") {
		t.Fatalf("expected father-not-male error, got %v", err)
	}
}

func TestCreate_FemaleInBothRolesReportsFatherSex(t *testing.T) {
	littersSvc, dogsSvc := newFixture(t)

	bella := seedDog(t, dogsSvc, "Bella", dogs.SexFemale, "Mixed")

	// la misma hembra como madre y padre: gana el error de sexo del padre,
	// no el de identidad
	_, _, err := littersSvc.Create(context.Background(), litters.CreateInput{
		BirthDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		MotherID:  bella.ID,
		FatherID:  bella.ID,
	})
	if !errors.Is(err, litters.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "not male") {
		t.Fatalf("expected father sex error, got %q", err)
	}
}

// failingLittersRepo rechaza el alta de la camada; el resto delega.
type failingLittersRepo struct {
	litters.Repository
}

func (r *failingLittersRepo) Create(ctx context.Context, l litters.Litter) error {
	return errors.New("insert failed")
}

func TestCreate_NoOrphanOffspringWhenLitterInsertFails(t *testing.T) {
	dogsSvc := dogs.NewService(mem.NewDogsRepo(), nil, nil)
	littersSvc := litters.NewService(&failingLittersRepo{mem.NewLittersRepo()}, dogsSvc)

	bella := seedDog(t, dogsSvc, "Bella", dogs.SexFemale, "Mixed")
	rex := seedDog(t, dogsSvc, "Rex", dogs.SexMale, "Mixed")

	_, _, err := littersSvc.Create(context.Background(), litters.CreateInput{
		BirthDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		MotherID:  bella.ID,
		FatherID:  rex.ID,
		Offspring: []litters.OffspringSpec{
			{Name: "Pip", Sex: dogs.SexMale},
			{Name: "Mia", Sex: dogs.SexFemale},
		},
	})
	if err == nil {
		t.Fatalf("expected error from litter insert")
	}

	// la camada se persiste antes que las crías: si el alta falla no pueden
	// quedar cachorros apuntando a una camada inexistente
	all, listErr := dogsSvc.List(context.Background())
	if listErr != nil {
		t.Fatalf("List error: %v", listErr)
	}
	if len(all) != 2 {
		t.Fatalf("expected only the 2 parents, got %d dogs", len(all))
	}
}

func TestListByYear_FiltersByBirthYear(t *testing.T) {
	littersSvc, dogsSvc := newFixture(t)

	bella := seedDog(t, dogsSvc, "Bella", dogs.SexFemale, "Mixed")
	rex := seedDog(t, dogsSvc, "Rex", dogs.SexMale, "Mixed")

	for _, y := range []int{2025, 2025, 2026} {
		_, _, err := littersSvc.Create(context.Background(), litters.CreateInput{
			BirthDate: time.Date(y, 6, 1, 0, 0, 0, 0, time.UTC),
			MotherID:  bella.ID,
			FatherID:  rex.ID,
		})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	got, err := littersSvc.ListByYear(context.Background(), 2025)
	if err != nil {
		t.Fatalf("ListByYear error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 litters in 2025, got %d", len(got))
	}

	if _, err := littersSvc.ListByYear(context.Background(), 0); !errors.Is(err, litters.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for year 0, got %v", err)
	}
}
