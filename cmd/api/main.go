package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookstore/internal/auth"
	"bookstore/internal/book"
	"bookstore/internal/config"
	"bookstore/internal/platform/crypto"
	"bookstore/internal/platform/database"
	"bookstore/internal/platform/logging"
	"bookstore/internal/seller"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("database connection OK", "dsn", database.RedactDSN(cfg.DatabaseDSN))

	tx := database.NewTransactor(dbPool)
	hasher := crypto.BcryptHasher{}

	bookRepository := book.NewPostgresRepo(cfg.DBTimeout)
	sellerRepository := seller.NewPostgresRepo(cfg.DBTimeout)

	bookService := book.NewService(tx, bookRepository)
	sellerService := seller.NewService(tx, sellerRepository, bookRepository, hasher)
	authService := auth.NewService(cfg.JWTSecret, cfg.TokenTTL, sellerService, hasher)

	router := newRouter(handlers{
		sellers: seller.NewHTTPHandler(sellerService, logger),
		books:   book.NewHTTPHandler(bookService, logger),
		auth:    auth.NewHTTPHandler(authService, logger),
	}, cfg.JWTSecret, dbPool.Ping)

	handler := newHandler(ctx, cfg, logger, router)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "addr", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
