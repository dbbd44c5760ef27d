package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-shelter-registry/docs"
	mem "pet-shelter-registry/internal/adapters/storage/memory"
	pg "pet-shelter-registry/internal/adapters/storage/postgres"
	"pet-shelter-registry/internal/domain/audit"
	"pet-shelter-registry/internal/domain/pets"
	"pet-shelter-registry/internal/middleware"
	"pet-shelter-registry/internal/platform/logger"
	"pet-shelter-registry/internal/ports/auth"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si no viene, se arma desde env.
	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.RequestLog(log))
	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		petRepo   pets.Repository
		auditRepo audit.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", "error", err.Error())
			}
		}
	}

	if db != nil {
		petRepo = pg.NewPetsRepo(db)
		auditRepo = pg.NewAuditRepo(db)
	} else {
		petRepo = mem.NewPetRepo()
		auditRepo = mem.NewAuditRepo()
	}

	auditSvc := audit.NewService(auditRepo)
	petsSvc := pets.NewService(petRepo, auditSvc)

	pets.RegisterRoutes(r, petsSvc)

	return r
}
