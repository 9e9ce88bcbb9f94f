package reports_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mem "kennel-records/internal/adapters/storage/memory"
	"kennel-records/internal/domain/dogs"
	"kennel-records/internal/domain/reports"
	"kennel-records/internal/domain/sales"
	"kennel-records/internal/domain/tutors"

	"github.com/shopspring/decimal"
)

type fixture struct {
	dogs    *dogs.Service
	tutors  *tutors.Service
	sales   *sales.Service
	reports *reports.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dogsRepo := mem.NewDogsRepo()
	tutorsRepo := mem.NewTutorsRepo()
	littersRepo := mem.NewLittersRepo()
	salesRepo := mem.NewSalesRepo()

	dogsSvc := dogs.NewService(dogsRepo, tutorsRepo, salesRepo)
	tutorsSvc := tutors.NewService(tutorsRepo, dogsRepo)
	salesSvc := sales.NewService(salesRepo, dogsSvc, tutorsSvc)
	reportsSvc := reports.NewService(reports.Deps{
		Dogs:    dogsRepo,
		Tutors:  tutorsRepo,
		Sales:   salesRepo,
		Litters: littersRepo,
	})
	return &fixture{dogs: dogsSvc, tutors: tutorsSvc, sales: salesSvc, reports: reportsSvc}
}

func (f *fixture) seedDog(t *testing.T, name string) dogs.Dog {
	t.Helper()
	d, err := f.dogs.Create(context.Background(), dogs.CreateInput{
		Name:      name,
		Sex:       dogs.SexFemale,
		Breed:     "Mixed",
		BirthDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed dog: %v", err)
	}
	return d
}

func (f *fixture) addExpense(t *testing.T, dogID string, amount int64) {
	t.Helper()
	date := time.Now().AddDate(0, 0, -1)
	if _, err := f.dogs.AddExpense(context.Background(), dogID, dogs.ExpenseInput{
		Description: "care",
		Amount:      decimal.NewFromInt(amount),
		Date:        &date,
	}); err != nil {
		t.Fatalf("add expense: %v", err)
	}
}

func TestDogReport_UnsoldWithNoExpenses(t *testing.T) {
	f := newFixture(t)
	d := f.seedDog(t, "Nina")

	report, err := f.reports.DogReport(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("DogReport returned error: %v", err)
	}
	if !report.TotalCost.IsZero() {
		t.Fatalf("expected total cost 0, got %s", report.TotalCost)
	}
	if report.Sold {
		t.Fatalf("expected unsold report")
	}
	// sin venta no hay lucro, ni siquiera cero
	if report.Sale != nil || report.Profit != nil {
		t.Fatalf("expected sale and profit absent, got %+v", report)
	}
	if len(report.Expenses) != 0 {
		t.Fatalf("expected no expenses, got %d", len(report.Expenses))
	}
}

func TestDogReport_SoldComputesProfit(t *testing.T) {
	f := newFixture(t)
	d := f.seedDog(t, "Nina")
	f.addExpense(t, d.ID, 100)
	f.addExpense(t, d.ID, 50)

	buyer, err := f.tutors.Create(context.Background(), tutors.CreateInput{
		Name: "Ana", Email: "ana@example.com",
	})
	if err != nil {
		t.Fatalf("create tutor: %v", err)
	}
	if _, err := f.sales.Sell(context.Background(), d.ID, sales.SellInput{
		TutorID: buyer.ID,
		Amount:  decimal.NewFromInt(300),
	}); err != nil {
		t.Fatalf("sell: %v", err)
	}

	report, err := f.reports.DogReport(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("DogReport returned error: %v", err)
	}
	if !report.TotalCost.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected total cost 150, got %s", report.TotalCost)
	}
	if !report.Sold || report.Sale == nil || report.Profit == nil {
		t.Fatalf("expected sold report with sale and profit")
	}
	if !report.Profit.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected profit 150, got %s", report.Profit)
	}
	if report.Sale.TutorName != "Ana" {
		t.Fatalf("expected buyer name resolved, got %q", report.Sale.TutorName)
	}
}

func TestDogReport_UnknownDog(t *testing.T) {
	f := newFixture(t)

	_, err := f.reports.DogReport(context.Background(), "ghost")
	if !errors.Is(err, dogs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStats_CountsAvailableDogsAndTutors(t *testing.T) {
	f := newFixture(t)
	d1 := f.seedDog(t, "Nina")
	f.seedDog(t, "Luna")

	buyer, err := f.tutors.Create(context.Background(), tutors.CreateInput{
		Name: "Ana", Email: "ana@example.com",
	})
	if err != nil {
		t.Fatalf("create tutor: %v", err)
	}
	if _, err := f.sales.Sell(context.Background(), d1.ID, sales.SellInput{
		TutorID: buyer.ID,
		Amount:  decimal.NewFromInt(500),
	}); err != nil {
		t.Fatalf("sell: %v", err)
	}

	stats, err := f.reports.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.AvailableDogs != 1 {
		t.Fatalf("expected 1 available dog, got %d", stats.AvailableDogs)
	}
	if stats.TotalTutors != 1 {
		t.Fatalf("expected 1 tutor, got %d", stats.TotalTutors)
	}
}

func TestFinancesLast30Days_SumsRecentMovements(t *testing.T) {
	f := newFixture(t)
	d := f.seedDog(t, "Nina")
	f.addExpense(t, d.ID, 80)

	buyer, err := f.tutors.Create(context.Background(), tutors.CreateInput{
		Name: "Ana", Email: "ana@example.com",
	})
	if err != nil {
		t.Fatalf("create tutor: %v", err)
	}
	if _, err := f.sales.Sell(context.Background(), d.ID, sales.SellInput{
		TutorID: buyer.ID,
		Amount:  decimal.NewFromInt(500),
	}); err != nil {
		t.Fatalf("sell: %v", err)
	}

	fin, err := f.reports.FinancesLast30Days(context.Background())
	if err != nil {
		t.Fatalf("FinancesLast30Days returned error: %v", err)
	}
	if !fin.Revenue.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected revenue 500, got %s", fin.Revenue)
	}
	if !fin.Expenses.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("expected expenses 80, got %s", fin.Expenses)
	}
	if !fin.Profit.Equal(decimal.NewFromInt(420)) {
		t.Fatalf("expected profit 420, got %s", fin.Profit)
	}
}

func TestFinances_ExcludeMovementsOfDeletedDogs(t *testing.T) {
	f := newFixture(t)
	d := f.seedDog(t, "Nina")
	f.addExpense(t, d.ID, 80)

	buyer, err := f.tutors.Create(context.Background(), tutors.CreateInput{
		Name: "Ana", Email: "ana@example.com",
	})
	if err != nil {
		t.Fatalf("create tutor: %v", err)
	}
	if _, err := f.sales.Sell(context.Background(), d.ID, sales.SellInput{
		TutorID: buyer.ID,
		Amount:  decimal.NewFromInt(500),
	}); err != nil {
		t.Fatalf("sell: %v", err)
	}

	// al borrar el perro caen su venta y sus gastos; el dashboard no debe
	// seguir contándolos
	if err := f.dogs.Delete(context.Background(), d.ID); err != nil {
		t.Fatalf("delete dog: %v", err)
	}

	fin, err := f.reports.FinancesLast30Days(context.Background())
	if err != nil {
		t.Fatalf("FinancesLast30Days returned error: %v", err)
	}
	if !fin.Revenue.IsZero() || !fin.Expenses.IsZero() {
		t.Fatalf("expected zero movements after delete, got revenue=%s expenses=%s", fin.Revenue, fin.Expenses)
	}
}

func TestRecentActivity_MergesAndCaps(t *testing.T) {
	f := newFixture(t)

	// 4 perros con gasto + 2 ventas: más de 5 movimientos en total
	var sold []dogs.Dog
	for _, name := range []string{"A", "B", "C", "D"} {
		d := f.seedDog(t, name)
		f.addExpense(t, d.ID, 10)
		sold = append(sold, d)
	}
	buyer, err := f.tutors.Create(context.Background(), tutors.CreateInput{
		Name: "Ana", Email: "ana@example.com",
	})
	if err != nil {
		t.Fatalf("create tutor: %v", err)
	}
	for _, d := range sold[:2] {
		if _, err := f.sales.Sell(context.Background(), d.ID, sales.SellInput{
			TutorID: buyer.ID,
			Amount:  decimal.NewFromInt(100),
		}); err != nil {
			t.Fatalf("sell: %v", err)
		}
	}

	items, err := f.reports.RecentActivity(context.Background())
	if err != nil {
		t.Fatalf("RecentActivity returned error: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected activity capped at 5, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Date.After(items[i-1].Date) {
			t.Fatalf("expected newest-first ordering")
		}
	}
}
