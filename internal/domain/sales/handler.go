package sales

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"kennel-records/internal/domain/dogs"
	"kennel-records/internal/domain/tutors"
	"kennel-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// La venta cuelga del perro; el listado general vive en /sales.
	r.Post("/dogs/{dogID}/sale", sellHandler(svc))
	r.Post("/dogs/{dogID}/sale/flex", sellFlexHandler(svc))

	r.Get("/sales", listSalesHandler(svc))
}

type sellRequest struct {
	TutorID string          `json:"tutor_id"`
	Amount  decimal.Decimal `json:"amount"`
	Date    string          `json:"date"` // YYYY-MM-DD, opcional
}

type newTutorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type sellFlexRequest struct {
	TutorID  *string          `json:"tutor_id"`
	NewTutor *newTutorRequest `json:"new_tutor"`
	Amount   decimal.Decimal  `json:"amount"`
	Date     string           `json:"date"`
}

type saleResponse struct {
	ID      string          `json:"id"`
	DogID   string          `json:"dog_id"`
	TutorID string          `json:"tutor_id"`
	Amount  decimal.Decimal `json:"amount"`
	Date    string          `json:"date"`
}

// sellHandler godoc
// @Summary Vende un perro a un tutor existente
// @Tags sales
// @Router /dogs/{dogID}/sale [post]
func sellHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sellRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		date, ok := parseOptionalDate(w, req.Date)
		if !ok {
			return
		}

		sale, err := svc.Sell(r.Context(), chi.URLParam(r, "dogID"), SellInput{
			TutorID: req.TutorID,
			Amount:  req.Amount,
			Date:    date,
		})
		if err != nil {
			writeSaleError(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toSaleResponse(sale))
	}
}

// sellFlexHandler acepta tutor_id o new_tutor (exactamente uno).
func sellFlexHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sellFlexRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		date, ok := parseOptionalDate(w, req.Date)
		if !ok {
			return
		}

		in := SellFlexInput{
			TutorID: req.TutorID,
			Amount:  req.Amount,
			Date:    date,
		}
		if req.NewTutor != nil {
			in.NewTutor = &tutors.CreateInput{
				Name:  req.NewTutor.Name,
				Email: req.NewTutor.Email,
				Phone: req.NewTutor.Phone,
			}
		}

		sale, err := svc.SellFlex(r.Context(), chi.URLParam(r, "dogID"), in)
		if err != nil {
			writeSaleError(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toSaleResponse(sale))
	}
}

func listSalesHandler(svc *Service) http.HandlerFunc {
	// Filtro opcional por rango: ?from=YYYY-MM-DD&to=YYYY-MM-DD
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []Sale
			err   error
		)

		fromStr := r.URL.Query().Get("from")
		toStr := r.URL.Query().Get("to")
		if fromStr != "" || toStr != "" {
			from, err1 := time.Parse("2006-01-02", fromStr)
			to, err2 := time.Parse("2006-01-02", toStr)
			if err1 != nil || err2 != nil {
				httpjson.WriteError(w, http.StatusBadRequest, "from and to must be YYYY-MM-DD")
				return
			}
			items, err = svc.ListBetween(r.Context(), from, to)
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			writeSaleError(w, err)
			return
		}

		out := make([]saleResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toSaleResponse(s))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func toSaleResponse(s Sale) saleResponse {
	return saleResponse{
		ID:      s.ID,
		DogID:   s.DogID,
		TutorID: s.TutorID,
		Amount:  s.Amount,
		Date:    s.Date.Format("2006-01-02"),
	}
}

func parseOptionalDate(w http.ResponseWriter, s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

func writeSaleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dogs.ErrAlreadySold):
		httpjson.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotFound), errors.Is(err, dogs.ErrNotFound), errors.Is(err, tutors.ErrNotFound):
		httpjson.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput), errors.Is(err, dogs.ErrInvalidInput), errors.Is(err, tutors.ErrInvalidInput):
		httpjson.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
