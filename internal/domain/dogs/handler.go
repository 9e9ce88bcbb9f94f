package dogs

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"kennel-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Post("/", createDogHandler(svc))
		dr.Get("/", listDogsHandler(svc))

		dr.Get("/{dogID}", getDogHandler(svc))
		dr.Put("/{dogID}", updateDogHandler(svc))
		dr.Delete("/{dogID}", deleteDogHandler(svc))
		dr.Patch("/{dogID}", patchDogHandler(svc))
		dr.Put("/{dogID}/status", updateStatusHandler(svc))

		dr.Post("/{dogID}/expenses", addExpenseHandler(svc))
		dr.Get("/{dogID}/expenses", listExpensesHandler(svc))
	})
}

type createDogRequest struct {
	Name      string  `json:"name"`
	Sex       string  `json:"sex"`
	Breed     string  `json:"breed"`
	BirthDate string  `json:"birth_date"` // YYYY-MM-DD
	TutorID   *string `json:"tutor_id"`
	MotherID  *string `json:"mother_id"`
	FatherID  *string `json:"father_id"`
}

type dogResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Sex       Sex       `json:"sex"`
	Breed     string    `json:"breed"`
	BirthDate string    `json:"birth_date"`
	Status    Status    `json:"status"`
	TutorID   *string   `json:"tutor_id,omitempty"`
	MotherID  *string   `json:"mother_id,omitempty"`
	FatherID  *string   `json:"father_id,omitempty"`
	LitterID  *string   `json:"litter_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type expenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // YYYY-MM-DD, opcional
}

type expenseResponse struct {
	ID          string          `json:"id"`
	DogID       string          `json:"dog_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

type statusUpdateRequest struct {
	Status Status `json:"status"`
}

// createDogHandler godoc
// @Summary Registra un perro nuevo (nace AVAILABLE)
// @Tags dogs
// @Router /dogs [post]
func createDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		bd, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
			return
		}

		d, err := svc.Create(r.Context(), CreateInput{
			Name:      req.Name,
			Sex:       Sex(req.Sex),
			Breed:     req.Breed,
			BirthDate: bd,
			TutorID:   req.TutorID,
			MotherID:  req.MotherID,
			FatherID:  req.FatherID,
		})
		if err != nil {
			writeDogError(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toDogResponse(d))
	}
}

func listDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeDogError(w, err)
			return
		}

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDogResponse(d))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func getDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			writeDogError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toDogResponse(d))
	}
}

func deleteDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "dogID")); err != nil {
			writeDogError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func updateDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		bd, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
			return
		}

		d, err := svc.Update(r.Context(), chi.URLParam(r, "dogID"), CreateInput{
			Name:      req.Name,
			Sex:       Sex(req.Sex),
			Breed:     req.Breed,
			BirthDate: bd,
			TutorID:   req.TutorID,
			MotherID:  req.MotherID,
			FatherID:  req.FatherID,
		})
		if err != nil {
			writeDogError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toDogResponse(d))
	}
}

// patchDogHandler aplica un PATCH real: solo los campos enviados cambian.
func patchDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		patch, err := ParsePatch(raw)
		if err != nil {
			writeDogError(w, err)
			return
		}

		d, err := svc.ApplyPartial(r.Context(), chi.URLParam(r, "dogID"), patch)
		if err != nil {
			writeDogError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toDogResponse(d))
	}
}

func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statusUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		d, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "dogID"), req.Status)
		if err != nil {
			writeDogError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toDogResponse(d))
	}
}

// addExpenseHandler godoc
// @Summary Registra un gasto para un perro (fecha default: hoy)
// @Tags dogs
// @Router /dogs/{dogID}/expenses [post]
func addExpenseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req expenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		var date *time.Time
		if req.Date != "" {
			t, err := time.Parse("2006-01-02", req.Date)
			if err != nil {
				httpjson.WriteError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
				return
			}
			date = &t
		}

		e, err := svc.AddExpense(r.Context(), chi.URLParam(r, "dogID"), ExpenseInput{
			Description: req.Description,
			Amount:      req.Amount,
			Date:        date,
		})
		if err != nil {
			writeDogError(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toExpenseResponse(e))
	}
}

func listExpensesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListExpenses(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			writeDogError(w, err)
			return
		}

		out := make([]expenseResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toExpenseResponse(e))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:        d.ID,
		Name:      d.Name,
		Sex:       d.Sex,
		Breed:     d.Breed,
		BirthDate: d.BirthDate.Format("2006-01-02"),
		Status:    d.Status,
		TutorID:   d.TutorID,
		MotherID:  d.MotherID,
		FatherID:  d.FatherID,
		LitterID:  d.LitterID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toExpenseResponse(e Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		DogID:       e.DogID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date.Format("2006-01-02"),
	}
}

func writeDogError(w http.ResponseWriter, err error) {
	var fe *FieldError
	switch {
	case errors.As(err, &fe):
		httpjson.WriteError(w, http.StatusBadRequest, fe.Error())
	case errors.Is(err, ErrNotFound):
		httpjson.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput):
		httpjson.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrAlreadySold):
		httpjson.WriteError(w, http.StatusConflict, err.Error())
	default:
		httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
