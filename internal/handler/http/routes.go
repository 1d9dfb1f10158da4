package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Post("/login", h.login)
		r.Post("/pacientes", h.createPatient)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/pacientes", h.listPatients)
		r.Get("/pacientes/{id}", h.getPatient)
		r.Put("/pacientes/{id}", h.updatePatient)
		r.Delete("/pacientes/{id}", h.deletePatient)
	})

	return router
}
