package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/nobug-il/leadgen/internal/http/middleware"
	"github.com/nobug-il/leadgen/internal/leads"
	"github.com/nobug-il/leadgen/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	FormHandler    *leads.Handler
	MetricsHandler http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(httpmiddleware.CORS())
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.FormHandler.HealthCheck)

	// The submission handler owns its method guard so the serverless
	// adapter shares the identical contract, hence HandleFunc.
	r.HandleFunc("/api/form/submit", cfg.FormHandler.SubmitForm)

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
