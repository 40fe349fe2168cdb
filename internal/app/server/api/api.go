// Package api wires the HTTP surface: one chi mux, one huma API, and one
// explicitly constructed handler per resource. Every route is registered
// before the listener accepts traffic, and the OpenAPI document huma
// serves at /openapi.json is generated from the same contract types the
// handlers validate against.
//
// GET    /api/v1/health
// GET    /api/v1/persons              GET    /api/v1/organizations
// POST   /api/v1/persons              POST   /api/v1/organizations
// GET    /api/v1/persons/{id}         GET    /api/v1/organizations/{id}
// PUT    /api/v1/persons/{id}         PUT    /api/v1/organizations/{id}
// DELETE /api/v1/persons/{id}         DELETE /api/v1/organizations/{id}
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"peopledir/internal/app/server/api/http/health"
	"peopledir/internal/app/server/api/http/middleware/cors"
	"peopledir/internal/app/server/api/http/middleware/logger"
	orgAPI "peopledir/internal/app/server/api/http/org"
	personAPI "peopledir/internal/app/server/api/http/person"
	"peopledir/internal/app/server/config"
	"peopledir/internal/domain/org"
	"peopledir/internal/domain/person"
	"peopledir/internal/infrastructure/storage/postgres"
)

const apiVersion = "1.0.0"

type Handlers struct {
	Health       *health.Handler
	Person       *personAPI.Handler
	Organization *orgAPI.Handler
}

// New builds the chi mux with every operation registered through
// huma.Register.
func New(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(cors.New(cfg.CORS.AllowedOrigins).Handler)

	api := humachi.New(mux, huma.DefaultConfig("peopledir API", apiVersion))

	h := handlers(storage, log)
	h.Health.SetupRoutes(api)
	h.Person.SetupRoutes(api)
	h.Organization.SetupRoutes(api)

	return mux
}

// handlers constructs one repository, service and handler per resource.
// Instances live for the whole process and are passed by reference;
// nothing here is a package-level singleton.
func handlers(storage *postgres.Storage, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := huma.Middlewares{loggerMW.Middleware()}

	healthHandler := health.NewHandler(storage, log, middlewares)

	personRepo := postgres.NewPersonRepository(storage.Pool(), log)
	personService := person.NewService(personRepo, log)
	personHandler := personAPI.NewHandler(personService, log, middlewares)

	orgRepo := postgres.NewOrganizationRepository(storage.Pool(), log)
	orgService := org.NewService(orgRepo, log)
	orgHandler := orgAPI.NewHandler(orgService, log, middlewares)

	return &Handlers{
		Health:       healthHandler,
		Person:       personHandler,
		Organization: orgHandler,
	}
}
