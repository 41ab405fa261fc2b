package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/wodmeet/wodmeet/internal/api/middleware"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Users       *UserHandler
	Events      *EventHandler
	Workouts    *WorkoutHandler
	Competitors *CompetitorHandler
}

// NewRouter builds the application router with its middleware chain and
// every API route.
func NewRouter(h Handlers, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Trace(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Actor)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.Users.CreateUser)
			r.Post("/authenticate", h.Users.Authenticate)
			r.Get("/{id}", h.Users.GetUser)
			r.Delete("/{id}", h.Users.DeleteUser)
			r.Put("/{id}/password", h.Users.ChangePassword)
		})

		r.Route("/events", func(r chi.Router) {
			r.Post("/", h.Events.CreateEvent)
			r.Get("/", h.Events.ListEvents)
			r.Route("/{ident}", func(r chi.Router) {
				r.Get("/", h.Events.GetEvent)
				r.Post("/close", h.Events.CloseEvent)
				r.Put("/workouts", h.Events.AssignWorkouts)
				r.Put("/sequence", h.Events.SetSequence)
				r.Post("/named", h.Events.IncrementNamed)
				r.Post("/ident", h.Events.RegenerateIdent)
				r.Post("/competitors", h.Competitors.RegisterCompetitor)
				r.Get("/competitors", h.Competitors.ListCompetitors)
				r.Get("/standings", h.Competitors.Standings)
				r.Get("/standings.xlsx", h.Competitors.StandingsWorkbook)
			})
		})

		r.Route("/workouts", func(r chi.Router) {
			r.Post("/", h.Workouts.CreateWorkout)
			r.Get("/{id}", h.Workouts.GetWorkout)
			r.Put("/{id}/plan", h.Workouts.UpdatePlan)
		})

		r.Route("/exercises", func(r chi.Router) {
			r.Post("/", h.Workouts.CreateExercise)
			r.Get("/", h.Workouts.ListExercises)
			r.Get("/{id}", h.Workouts.GetExercise)
		})

		r.Route("/competitors/{id}", func(r chi.Router) {
			r.Post("/result", h.Competitors.IncrementResult)
			r.Post("/category", h.Competitors.RecalculateCategory)
			r.Post("/finish", h.Competitors.MarkFinished)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
