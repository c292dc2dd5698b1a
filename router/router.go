// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/pressure-log/cliparse"
	"github.com/danielhkuo/pressure-log/handlers"
	"github.com/danielhkuo/pressure-log/middleware"
	"github.com/danielhkuo/pressure-log/notify"
	"github.com/danielhkuo/pressure-log/store"
)

func NewRouter(st store.Store, notifier notify.Notifier, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	readingHandler := handlers.NewReadingHandler(st, notifier, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Reading lifecycle
	mux.HandleFunc("POST /submit", middleware.WithLogging(readingHandler.Submit))
	mux.HandleFunc("GET /readings/{userId}", middleware.WithLogging(readingHandler.ListRecent))
	mux.HandleFunc("GET /stats/{userId}", middleware.WithLogging(readingHandler.WeeklyStats))
	mux.HandleFunc("DELETE /readings/{id}", middleware.WithLogging(readingHandler.Remove))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pressure-log API v1"))
	})

	// CORS allow-list applies at the edge, before routing
	return middleware.CORS(cfg.AllowedOrigins)(mux)
}
