package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mpatel-dev/wanderplan/backend/internal/middleware"
)

// maxBodyBytes caps request bodies at 1 MiB; no endpoint accepts uploads.
const maxBodyBytes = 1 << 20

// RouterOptions carries the cross-cutting configuration the router needs.
type RouterOptions struct {
	Logger      *slog.Logger
	JWTSecret   string
	CORSOrigins []string
}

// NewRouter wires the full middleware stack and every route.
// Middleware order: RequestID → RealIP → structured logging → Recoverer →
// CORS → body size cap. Auth applies only to the /v1 routes that need an
// owner identity; health and destination suggestions stay public.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(opts.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(opts.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	r.Get("/healthz", s.GetHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/destinations", s.SuggestDestinations)

		r.Group(func(r chi.Router) {
			r.Use(middleware.NewAuthenticator(opts.JWTSecret))

			r.Route("/trips", func(r chi.Router) {
				r.Post("/", s.CreateTrip)
				r.Get("/", s.ListTrips)
				r.Get("/{tripID}", s.GetTrip)
				r.Delete("/{tripID}", s.DeleteTrip)
				r.Put("/{tripID}/days/{dayIndex}/activities/{activityIndex}", s.UpdateActivity)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", s.CreateExpense)
				r.Get("/", s.ListExpenses)
				r.Put("/{expenseID}", s.UpdateExpense)
				r.Delete("/{expenseID}", s.DeleteExpense)
			})

			r.Post("/advice", s.GetAdvice)
		})
	})

	return r
}
