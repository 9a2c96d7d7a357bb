// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/accounts", h.listAccounts)
		r.Post("/api/accounts", h.addAccount)
		r.Delete("/api/accounts/{account_id}", h.removeAccount)
		r.Put("/api/accounts/selected", h.selectAccount)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
