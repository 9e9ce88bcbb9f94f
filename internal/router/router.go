package router

import (
	"database/sql"
	"net/http"
	"os"

	_ "kennel-records/docs"
	mem "kennel-records/internal/adapters/storage/memory"
	pg "kennel-records/internal/adapters/storage/postgres"
	"kennel-records/internal/domain/dogs"
	"kennel-records/internal/domain/litters"
	"kennel-records/internal/domain/reports"
	"kennel-records/internal/domain/sales"
	"kennel-records/internal/domain/tutors"
	"kennel-records/internal/middleware"
	"kennel-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si no viene, se arma desde el env.
	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.AccessLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		dogsRepo    dogs.Repository
		tutorsRepo  tutors.Repository
		littersRepo litters.Repository
		salesRepo   sales.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		dogsRepo = pg.NewDogsRepo(db)
		tutorsRepo = pg.NewTutorsRepo(db)
		littersRepo = pg.NewLittersRepo(db)
		salesRepo = pg.NewSalesRepo(db)
	} else {
		dogsRepo = mem.NewDogsRepo()
		tutorsRepo = mem.NewTutorsRepo()
		littersRepo = mem.NewLittersRepo()
		salesRepo = mem.NewSalesRepo()
	}

	// Services por módulo. Los cruces entre dominios (perros valida tutores y
	// cascadea su venta, tutores cuenta perros) entran como interfaces chicas
	// que los repos del otro módulo satisfacen solos.
	dogsSvc := dogs.NewService(dogsRepo, tutorsRepo, salesRepo)
	tutorsSvc := tutors.NewService(tutorsRepo, dogsRepo)
	littersSvc := litters.NewService(littersRepo, dogsSvc)
	salesSvc := sales.NewService(salesRepo, dogsSvc, tutorsSvc)
	reportsSvc := reports.NewService(reports.Deps{
		Dogs:    dogsRepo,
		Tutors:  tutorsRepo,
		Sales:   salesRepo,
		Litters: littersRepo,
	})

	// Rutas por módulo
	dogs.RegisterRoutes(r, dogsSvc)
	tutors.RegisterRoutes(r, tutorsSvc)
	litters.RegisterRoutes(r, littersSvc)
	sales.RegisterRoutes(r, salesSvc)
	reports.RegisterRoutes(r, reportsSvc)

	return r
}
