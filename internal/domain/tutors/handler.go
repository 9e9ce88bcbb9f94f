package tutors

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"kennel-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/tutors", func(tr chi.Router) {
		tr.Post("/", createTutorHandler(svc))
		tr.Get("/", listTutorsHandler(svc))

		tr.Get("/{tutorID}", getTutorHandler(svc))
		tr.Put("/{tutorID}", updateTutorHandler(svc))
		tr.Patch("/{tutorID}", patchTutorHandler(svc))
		tr.Delete("/{tutorID}", deleteTutorHandler(svc))
	})
}

type tutorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type tutorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func createTutorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tutorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		t, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			writeTutorError(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toTutorResponse(t))
	}
}

func listTutorsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeTutorError(w, err)
			return
		}

		out := make([]tutorResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTutorResponse(t))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func getTutorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.GetByID(r.Context(), chi.URLParam(r, "tutorID"))
		if err != nil {
			writeTutorError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toTutorResponse(t))
	}
}

func updateTutorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tutorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		t, err := svc.Update(r.Context(), chi.URLParam(r, "tutorID"), CreateInput(req))
		if err != nil {
			writeTutorError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toTutorResponse(t))
	}
}

func patchTutorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		patch, err := ParsePatch(raw)
		if err != nil {
			writeTutorError(w, err)
			return
		}

		t, err := svc.ApplyPartial(r.Context(), chi.URLParam(r, "tutorID"), patch)
		if err != nil {
			writeTutorError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toTutorResponse(t))
	}
}

// deleteTutorHandler godoc
// @Summary Borra un tutor (409 si tiene perros asociados)
// @Tags tutors
// @Router /tutors/{tutorID} [delete]
func deleteTutorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "tutorID")); err != nil {
			writeTutorError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toTutorResponse(t Tutor) tutorResponse {
	return tutorResponse{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Phone:     t.Phone,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func writeTutorError(w http.ResponseWriter, err error) {
	var fe *FieldError
	switch {
	case errors.As(err, &fe):
		httpjson.WriteError(w, http.StatusBadRequest, fe.Error())
	case errors.Is(err, ErrNotFound):
		httpjson.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrHasDogs):
		httpjson.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidInput):
		httpjson.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
