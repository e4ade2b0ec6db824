package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gujjar-pranav/portfolio/internal/api"
	"github.com/gujjar-pranav/portfolio/internal/api/handlers"
	"github.com/gujjar-pranav/portfolio/internal/api/middleware"
)

type RouterConfig struct {
	ChatHandler      *handlers.ChatHandler
	RepoHandler      *handlers.RepoHandler
	PortfolioHandler *handlers.PortfolioHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Chat messages are short; a small cap is plenty.
	const maxBodyBytes int64 = 64 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/github/repos", cfg.RepoHandler.List)

	r.Route("/chat", func(r chi.Router) {
		r.Post("/ask", cfg.ChatHandler.Ask)
		r.Get("/topics", cfg.ChatHandler.Topics)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", cfg.ChatHandler.CreateSession)
			r.Get("/{sessionID}", cfg.ChatHandler.GetSession)
			r.Delete("/{sessionID}", cfg.ChatHandler.DeleteSession)
			r.Post("/{sessionID}/messages", cfg.ChatHandler.SendMessage)
			r.Post("/{sessionID}/reset", cfg.ChatHandler.ResetSession)
		})
	})

	r.Route("/portfolio", func(r chi.Router) {
		r.Get("/profile", cfg.PortfolioHandler.Profile)
		r.Get("/projects", cfg.PortfolioHandler.Projects)
		r.Get("/experience", cfg.PortfolioHandler.Experience)
		r.Get("/education", cfg.PortfolioHandler.Education)
		r.Get("/certifications", cfg.PortfolioHandler.Certifications)
		r.Get("/skills", cfg.PortfolioHandler.Skills)
	})

	return r
}
