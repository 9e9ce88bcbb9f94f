package reports

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"kennel-records/internal/domain/dogs"
	"kennel-records/internal/domain/litters"
	"kennel-records/internal/domain/sales"
	"kennel-records/internal/domain/tutors"

	"github.com/shopspring/decimal"
)

// Service agrega datos de varios repositorios para reportes y dashboard.
// Es solo-lectura: trabaja directo contra las interfaces de repositorio.
type Service struct {
	dogs    dogs.Repository
	tutors  tutors.Repository
	sales   sales.Repository
	litters litters.Repository
	now     func() time.Time
}

type Deps struct {
	Dogs    dogs.Repository
	Tutors  tutors.Repository
	Sales   sales.Repository
	Litters litters.Repository
}

func NewService(d Deps) *Service {
	return &Service{
		dogs:    d.Dogs,
		tutors:  d.Tutors,
		sales:   d.Sales,
		litters: d.Litters,
		now:     time.Now,
	}
}

type ExpenseLine struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

type SaleInfo struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	TutorID   string          `json:"tutor_id"`
	TutorName string          `json:"tutor_name,omitempty"`
}

// DogReport distingue "todavía no vendido" (Sale y Profit ausentes) de
// "vendido a pérdida" (Profit presente y negativo).
type DogReport struct {
	DogID     string           `json:"dog_id"`
	Name      string           `json:"name"`
	Expenses  []ExpenseLine    `json:"expenses"`
	TotalCost decimal.Decimal  `json:"total_cost"`
	Sold      bool             `json:"sold"`
	Sale      *SaleInfo        `json:"sale,omitempty"`
	Profit    *decimal.Decimal `json:"profit,omitempty"`
}

func (s *Service) DogReport(ctx context.Context, dogID string) (DogReport, error) {
	d, err := s.dogs.GetByID(ctx, dogID)
	if err != nil {
		if errors.Is(err, dogs.ErrNotFound) {
			return DogReport{}, fmt.Errorf("dog %s: %w", dogID, dogs.ErrNotFound)
		}
		return DogReport{}, err
	}

	expenses, err := s.dogs.ListExpensesByDog(ctx, dogID)
	if err != nil {
		return DogReport{}, err
	}

	report := DogReport{
		DogID:     d.ID,
		Name:      d.Name,
		Expenses:  make([]ExpenseLine, 0, len(expenses)),
		TotalCost: decimal.Zero,
	}
	for _, e := range expenses {
		report.Expenses = append(report.Expenses, ExpenseLine{
			ID:          e.ID,
			Description: e.Description,
			Amount:      e.Amount,
			Date:        e.Date.Format("2006-01-02"),
		})
		report.TotalCost = report.TotalCost.Add(e.Amount)
	}

	sale, err := s.sales.GetByDog(ctx, dogID)
	if err != nil {
		if errors.Is(err, sales.ErrNotFound) {
			// no vendido: sin venta y sin lucro (que no es lo mismo que 0)
			return report, nil
		}
		return DogReport{}, err
	}

	info := SaleInfo{
		ID:      sale.ID,
		Amount:  sale.Amount,
		Date:    sale.Date.Format("2006-01-02"),
		TutorID: sale.TutorID,
	}
	if buyer, err := s.tutors.GetByID(ctx, sale.TutorID); err == nil {
		info.TutorName = buyer.Name
	}

	profit := sale.Amount.Sub(report.TotalCost)

	report.Sold = true
	report.Sale = &info
	report.Profit = &profit
	return report, nil
}

type Stats struct {
	AvailableDogs int `json:"available_dogs"`
	TotalTutors   int `json:"total_tutors"`
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	available, err := s.dogs.CountByStatus(ctx, dogs.StatusAvailable)
	if err != nil {
		return Stats{}, err
	}
	totalTutors, err := s.tutors.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{AvailableDogs: available, TotalTutors: totalTutors}, nil
}

type Finances struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// FinancesLast30Days suma ventas y gastos de los últimos 30 días.
func (s *Service) FinancesLast30Days(ctx context.Context) (Finances, error) {
	from := s.now().AddDate(0, 0, -30)

	soldSales, err := s.sales.ListAfter(ctx, from)
	if err != nil {
		return Finances{}, err
	}
	expenses, err := s.dogs.ListExpensesAfter(ctx, from)
	if err != nil {
		return Finances{}, err
	}

	revenue := decimal.Zero
	for _, sale := range soldSales {
		revenue = revenue.Add(sale.Amount)
	}
	spent := decimal.Zero
	for _, e := range expenses {
		spent = spent.Add(e.Amount)
	}

	return Finances{
		Revenue:  revenue,
		Expenses: spent,
		Profit:   revenue.Sub(spent),
	}, nil
}

type Activity struct {
	Type        string    `json:"type"` // SALE, LITTER, EXPENSE
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	EntityID    string    `json:"entity_id"`
}

const recentActivityLimit = 5

// RecentActivity mezcla las últimas ventas, camadas y gastos en una sola
// línea de tiempo. El UNION nativo del esquema relacional se reemplazó por
// un merge en memoria para que funcione igual con cualquier adaptador.
func (s *Service) RecentActivity(ctx context.Context) ([]Activity, error) {
	out := make([]Activity, 0, 3*recentActivityLimit)

	recentSales, err := s.sales.ListRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	for _, sale := range recentSales {
		desc := fmt.Sprintf("Dog %s sold for %s", s.dogName(ctx, sale.DogID), sale.Amount.StringFixed(2))
		if buyer, err := s.tutors.GetByID(ctx, sale.TutorID); err == nil {
			desc = fmt.Sprintf("Dog %s sold to %s for %s",
				s.dogName(ctx, sale.DogID), buyer.Name, sale.Amount.StringFixed(2))
		}
		out = append(out, Activity{Type: "SALE", Description: desc, Date: sale.Date, EntityID: sale.DogID})
	}

	recentLitters, err := s.litters.ListRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	for _, l := range recentLitters {
		desc := fmt.Sprintf("Litter recorded for %s and %s",
			s.dogName(ctx, l.MotherID), s.dogName(ctx, l.FatherID))
		out = append(out, Activity{Type: "LITTER", Description: desc, Date: l.BirthDate, EntityID: l.ID})
	}

	recentExpenses, err := s.dogs.ListRecentExpenses(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	for _, e := range recentExpenses {
		desc := fmt.Sprintf("Expense of %s for %s: %s",
			e.Amount.StringFixed(2), s.dogName(ctx, e.DogID), e.Description)
		out = append(out, Activity{Type: "EXPENSE", Description: desc, Date: e.Date, EntityID: e.DogID})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > recentActivityLimit {
		out = out[:recentActivityLimit]
	}
	return out, nil
}

func (s *Service) dogName(ctx context.Context, dogID string) string {
	d, err := s.dogs.GetByID(ctx, dogID)
	if err != nil {
		return dogID
	}
	return d.Name
}
