package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.ping)
		r.Get("/version", h.getServerVersion)

		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Post("/auth/reset-password", h.resetPassword)

		r.Get("/expenses", h.listExpenses)
		r.Post("/expenses", h.createExpense)
		r.Delete("/expenses", h.deleteExpense)

		r.Get("/categories", h.listCategories)
		r.Post("/categories", h.createCategory)
		r.Delete("/categories", h.deleteCategory)

		r.Get("/settings", h.getSettings)
		r.Post("/settings", h.setCurrency)
	})

	return router
}
