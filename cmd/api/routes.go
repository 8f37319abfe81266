package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"bookstore/internal/auth"
	"bookstore/internal/book"
	"bookstore/internal/config"
	"bookstore/internal/httpx"
	"bookstore/internal/seller"
)

type handlers struct {
	sellers *seller.HTTPHandler
	books   *book.HTTPHandler
	auth    *auth.HTTPHandler
}

// newRouter registers every /api/v1 route plus the health checks. Collection
// routes answer with and without the trailing slash.
func newRouter(h handlers, jwtSecret string, ping func(context.Context) error) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	requireAuth := httpx.AuthMiddleware(jwtSecret)

	router.HandleFunc("POST /api/v1/token", h.auth.Token)

	for _, p := range []string{"/api/v1/sellers", "/api/v1/sellers/{$}"} {
		router.HandleFunc("POST "+p, h.sellers.Create)
		router.HandleFunc("GET "+p, h.sellers.List)
	}
	router.Handle("GET /api/v1/sellers/{id}", requireAuth(http.HandlerFunc(h.sellers.Get)))
	router.HandleFunc("PUT /api/v1/sellers/{id}", h.sellers.Update)
	router.HandleFunc("DELETE /api/v1/sellers/{id}", h.sellers.Delete)

	for _, p := range []string{"/api/v1/books", "/api/v1/books/{$}"} {
		router.HandleFunc("POST "+p, h.books.Create)
		router.HandleFunc("GET "+p, h.books.List)
	}
	router.HandleFunc("GET /api/v1/books/{id}", h.books.Get)
	router.HandleFunc("PUT /api/v1/books/{id}", h.books.Update)
	router.HandleFunc("DELETE /api/v1/books/{id}", h.books.Delete)

	return router
}

// newHandler wraps router in the server middleware. The access log must stay
// outside recovery: panicking requests are then logged with their final status.
func newHandler(ctx context.Context, cfg config.Config, logger *slog.Logger, router http.Handler) http.Handler {
	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)
	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.RecoveryMiddleware(logger),
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		rateLimiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)
}
