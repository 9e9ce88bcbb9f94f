package reports

import (
	"errors"
	"net/http"

	"kennel-records/internal/domain/dogs"
	"kennel-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/dogs/{dogID}/report", dogReportHandler(svc))

	r.Route("/dashboard", func(dr chi.Router) {
		dr.Get("/stats", statsHandler(svc))
		dr.Get("/finances", financesHandler(svc))
		dr.Get("/activity", activityHandler(svc))
	})
}

// dogReportHandler godoc
// @Summary Reporte financiero de un perro (gastos, costo total, lucro)
// @Tags reports
// @Router /dogs/{dogID}/report [get]
func dogReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.DogReport(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			if errors.Is(err, dogs.ErrNotFound) {
				httpjson.WriteError(w, http.StatusNotFound, err.Error())
				return
			}
			httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpjson.Write(w, http.StatusOK, report)
	}
}

func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpjson.Write(w, http.StatusOK, stats)
	}
}

func financesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fin, err := svc.FinancesLast30Days(r.Context())
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpjson.Write(w, http.StatusOK, fin)
	}
}

func activityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.RecentActivity(r.Context())
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpjson.Write(w, http.StatusOK, items)
	}
}
