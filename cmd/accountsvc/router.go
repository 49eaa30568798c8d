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

	accountHandler := api.NewAccountHandler(app.accountService, app.logger)

	r.Route("/api/accounts", func(r chi.Router) {
		r.Get("/", accountHandler.ListAccounts)
		r.Post("/", accountHandler.CreateAccount)
		r.Get("/detail/{id}", accountHandler.GetAccountDetail)

		// Peer-facing projection consumed by the client service.
		r.Get("/external", accountHandler.ListExternalAccounts)

		r.Get("/{id}", accountHandler.GetAccount)
		r.Put("/{id}", accountHandler.UpdateAccount)
		r.Patch("/{id}/balance", accountHandler.UpdateAccountBalance)
		r.Delete("/{id}", accountHandler.DeleteAccount)
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
