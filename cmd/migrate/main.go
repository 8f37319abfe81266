package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"bookstore/internal/config"
	"bookstore/internal/platform/database"
	"bookstore/internal/platform/logging"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	logger := logging.New(os.Getenv("LOG_LEVEL"), os.Stderr)
	if err := run(*command, *name, logger); err != nil {
		logger.Error("migrate", "command", *command, "error", err)
		os.Exit(1)
	}
}

func run(command, name string, logger *slog.Logger) error {
	dsn := config.DatabaseDSN()
	migrationsDir := config.MigrationsDir()

	if command == "create" {
		if name == "" {
			return fmt.Errorf("name is required for 'create' command")
		}
		if err := goose.Create(nil, migrationsDir, name, "sql"); err != nil {
			return fmt.Errorf("create migration: %w", err)
		}
		logger.Info("migration created", "name", name, "dir", migrationsDir)
		return nil
	}

	pool, err := database.Open(context.Background(), dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		if err := goose.Up(db, migrationsDir); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied", "dir", migrationsDir)
	case "down":
		if err := goose.Down(db, migrationsDir); err != nil {
			return fmt.Errorf("rollback migration: %w", err)
		}
		logger.Info("migration rolled back", "dir", migrationsDir)
	case "status":
		if err := goose.Status(db, migrationsDir); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
	default:
		return fmt.Errorf("unknown command %q, use: up, down, status, create", command)
	}
	return nil
}
