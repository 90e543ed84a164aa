package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/soccer-data-service/internal/http/handlers"
)

// RouterOptions tunes cross-cutting router behavior.
type RouterOptions struct {
	AllowedOrigins []string
}

// NewRouter registers the API routes on a chi router.
func NewRouter(handler *handlers.Handler, opts RouterOptions) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Get("/api", handler.Players)
	r.Get("/api/player/{"+handlers.ParamName+"}", handler.PlayerByName)
	r.Get("/api/country/{"+handlers.ParamCountry+"}", handler.PlayersByCountry)
	r.Get("/api/club/{"+handlers.ParamClub+"}", handler.PlayersByClub)
	r.Get("/api/attributes", handler.Attributes)
	r.Get("/api/names", handler.Names)
	return r
}
