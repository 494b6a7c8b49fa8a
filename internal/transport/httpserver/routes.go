package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"kidpoints/internal/config"
	"kidpoints/internal/domain/auth"
	"kidpoints/internal/transport/httpserver/handler"
	authmw "kidpoints/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, codec *auth.TokenCodec) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.AllowedOrigins))

	tokenAuth := authmw.NewTokenAuth(codec)
	parentOnly := authmw.RequireRole(auth.RoleParent)
	kidOnly := authmw.RequireRole(auth.RoleKid)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Post("/auth/login", handlers.Login)

		r.Group(func(r chi.Router) {
			r.Use(tokenAuth.Middleware)

			r.With(parentOnly).Post("/auth/kid-session", handlers.KidSession)

			r.With(parentOnly).Get("/kids", handlers.ListKids)
			r.With(parentOnly).Post("/kids", handlers.CreateKid)
			r.With(parentOnly).Put("/kids/{kid_id}", handlers.RenameKid)

			r.Get("/tasks", handlers.ListTasks)
			r.With(parentOnly).Post("/tasks", handlers.CreateTask)
			r.With(kidOnly).Put("/tasks/{task_id}/complete", handlers.CompleteTask)
			r.With(parentOnly).Delete("/tasks/{task_id}", handlers.DeleteTask)

			r.Get("/points", handlers.GetPoints)

			r.Get("/rewards", handlers.ListRewards)
			r.With(parentOnly).Post("/rewards", handlers.CreateReward)
			r.With(kidOnly).Post("/rewards/{reward_id}/redeem", handlers.RedeemReward)

			r.Get("/todos", handlers.ListTodos)
			r.Post("/todos", handlers.CreateTodo)
			r.Put("/todos/{todo_id}", handlers.UpdateTodo)
			r.Delete("/todos/{todo_id}", handlers.DeleteTodo)
		})
	})

	return r
}
