package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andesbank/core-banking/internal/api"
	apiMiddleware "github.com/andesbank/core-banking/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.MetricsMiddleware)

	clientHandler := api.NewClientHandler(app.clientService, app.logger)

	r.Route("/api/clients", func(r chi.Router) {
		r.Get("/", clientHandler.ListClients)
		r.Post("/", clientHandler.CreateClient)
		r.Get("/detail/{id}", clientHandler.GetClientDetail)

		// Peer-facing endpoints consumed by the account service.
		r.Get("/external/{id}", clientHandler.GetExternalClient)
		r.Post("/external", clientHandler.RegisterExternalLink)
		r.Delete("/external", clientHandler.RemoveExternalLink)

		r.Get("/{id}", clientHandler.GetClient)
		r.Put("/{id}", clientHandler.UpdateClient)
		r.Delete("/{id}", clientHandler.DeleteClient)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
