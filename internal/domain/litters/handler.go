package litters

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"kennel-records/internal/domain/dogs"
	"kennel-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/litters", func(lr chi.Router) {
		lr.Post("/", createLitterHandler(svc))
		lr.Get("/", listLittersHandler(svc))
		lr.Get("/{litterID}", getLitterHandler(svc))
	})
}

type offspringSpecRequest struct {
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

type createLitterRequest struct {
	BirthDate string                 `json:"birth_date"` // YYYY-MM-DD
	MotherID  string                 `json:"mother_id"`
	FatherID  string                 `json:"father_id"`
	Offspring []offspringSpecRequest `json:"offspring"`
}

type dogSummary struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Sex  dogs.Sex `json:"sex"`
}

type litterResponse struct {
	ID             string       `json:"id"`
	BirthDate      string       `json:"birth_date"`
	Mother         *dogSummary  `json:"mother"`
	Father         *dogSummary  `json:"father"`
	TotalOffspring int          `json:"total_offspring"`
	Offspring      []dogSummary `json:"offspring"`
}

// createLitterHandler godoc
// @Summary Registra una camada con sus crías
// @Tags litters
// @Router /litters [post]
func createLitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createLitterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		bd, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
			return
		}

		specs := make([]OffspringSpec, 0, len(req.Offspring))
		for _, o := range req.Offspring {
			specs = append(specs, OffspringSpec{Name: o.Name, Sex: dogs.Sex(o.Sex)})
		}

		l, offspring, err := svc.Create(r.Context(), CreateInput{
			BirthDate: bd,
			MotherID:  req.MotherID,
			FatherID:  req.FatherID,
			Offspring: specs,
		})
		if err != nil {
			writeLitterError(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toLitterResponse(r, svc, l, offspring))
	}
}

func listLittersHandler(svc *Service) http.HandlerFunc {
	// Filtros opcionales: ?mother_id=... o ?year=...
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []Litter
			err   error
		)

		switch {
		case r.URL.Query().Get("mother_id") != "":
			items, err = svc.ListByMother(r.Context(), r.URL.Query().Get("mother_id"))
		case r.URL.Query().Get("year") != "":
			var year int
			year, err = strconv.Atoi(r.URL.Query().Get("year"))
			if err != nil {
				httpjson.WriteError(w, http.StatusBadRequest, "year must be a number")
				return
			}
			items, err = svc.ListByYear(r.Context(), year)
		default:
			items, err = svc.List(r.Context())
		}
		if err != nil {
			writeLitterError(w, err)
			return
		}

		out := make([]litterResponse, 0, len(items))
		for _, l := range items {
			offspring, err := svc.Offspring(r.Context(), l.ID)
			if err != nil {
				writeLitterError(w, err)
				return
			}
			out = append(out, toLitterResponse(r, svc, l, offspring))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func getLitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := svc.GetByID(r.Context(), chi.URLParam(r, "litterID"))
		if err != nil {
			writeLitterError(w, err)
			return
		}

		offspring, err := svc.Offspring(r.Context(), l.ID)
		if err != nil {
			writeLitterError(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toLitterResponse(r, svc, l, offspring))
	}
}

func toLitterResponse(r *http.Request, svc *Service, l Litter, offspring []dogs.Dog) litterResponse {
	resp := litterResponse{
		ID:             l.ID,
		BirthDate:      l.BirthDate.Format("2006-01-02"),
		TotalOffspring: len(offspring),
		Offspring:      make([]dogSummary, 0, len(offspring)),
	}

	mother, father, err := svc.Parents(r.Context(), l)
	if err == nil {
		if mother != nil {
			resp.Mother = &dogSummary{ID: mother.ID, Name: mother.Name, Sex: mother.Sex}
		}
		if father != nil {
			resp.Father = &dogSummary{ID: father.ID, Name: father.Name, Sex: father.Sex}
		}
	}

	for _, pup := range offspring {
		resp.Offspring = append(resp.Offspring, dogSummary{ID: pup.ID, Name: pup.Name, Sex: pup.Sex})
	}
	return resp
}

func writeLitterError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, dogs.ErrNotFound):
		httpjson.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput), errors.Is(err, dogs.ErrInvalidInput):
		httpjson.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
