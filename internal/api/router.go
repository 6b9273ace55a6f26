package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sharktalent/backend/internal/api/handlers"
	"github.com/sharktalent/backend/internal/api/httpx"
	"github.com/sharktalent/backend/internal/auth"
	"github.com/sharktalent/backend/internal/config"
	"github.com/sharktalent/backend/internal/metrics"
	"github.com/sharktalent/backend/internal/middleware"
	"github.com/sharktalent/backend/internal/services"
)

type RouterDeps struct {
	Cfg         config.Config
	TM          *auth.TokenManager
	UserSvc     *services.UserService
	ProjectSvc  *services.ProjectService
	ProposalSvc *services.ProposalService
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	health := func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"message": "SharkTalent API is Functional!",
		})
	}
	r.Get("/health", health)
	r.Handle("/metrics", metrics.Handler())

	authH := handlers.NewAuthHandler(d.TM, d.UserSvc)
	projectH := handlers.NewProjectHandler(d.ProjectSvc)
	proposalH := handlers.NewProposalHandler(d.ProposalSvc)

	authMW := middleware.NewAuthMiddleware(d.TM)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health)

		// public
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/refresh", authH.Refresh)

		// bearer-protected
		r.Group(func(r chi.Router) {
			r.Use(authMW.Auth)

			r.Get("/auth/profile", authH.Profile)
			r.Put("/auth/profile", authH.UpdateProfile)
			r.Post("/auth/change-password", authH.ChangePassword)
			r.Get("/auth/verify", authH.Verify)

			r.Get("/projects", projectH.List)
			r.Post("/projects", projectH.Create)
			r.Get("/projects/my-projects", projectH.ListMine)
			r.Get("/projects/{id}", projectH.Get)
			r.Put("/projects/{id}", projectH.Update)
			r.Delete("/projects/{id}", projectH.Delete)

			r.Post("/proposals", proposalH.Create)
			r.Get("/proposals/project/{projectId}", proposalH.ListForProject)
			r.Get("/proposals/my-proposals", proposalH.ListMine)
			r.Get("/proposals/{id}", proposalH.Get)
			r.Put("/proposals/{id}/status", proposalH.SetStatus)
		})
	})

	return r
}
