package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"bookstore/internal/book"
	"bookstore/internal/config"
	"bookstore/internal/platform/crypto"
	"bookstore/internal/platform/database"
	"bookstore/internal/platform/logging"
	"bookstore/internal/seller"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	firstNames = []string{"Maxim", "Anton", "Olga", "Irina", "Sergey", "Daria", "Pavel", "Elena"}
	lastNames  = []string{"Konovalov", "Antonov", "Petrova", "Smirnova", "Ivanov", "Volkova", "Orlov", "Sokolova"}
	authors    = []string{"Pushkin", "Tolstoy", "Dostoevsky", "Chekhov", "Gogol", "Bulgakov", "Turgenev", "Lermontov"}
	titleWords = []string{"Onegin", "Winter", "River", "Station", "Garden", "Letters", "Steppe", "Journey", "Masters", "Night"}
)

func main() {
	var (
		sellers        = flag.Int("sellers", 20, "Number of sellers to create")
		booksPerSeller = flag.Int("books-per-seller", 50, "Books generated for each seller")
		password       = flag.String("password", "qwerty", "Password set on every seeded seller")
	)
	flag.Parse()

	logger := logging.New(os.Getenv("LOG_LEVEL"), os.Stderr)
	if err := run(context.Background(), logger, *sellers, *booksPerSeller, *password); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, sellerCount, booksPerSeller int, password string) error {
	pool, err := database.Open(ctx, config.DatabaseDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	timeout := 10 * time.Second
	sellerService := seller.NewService(
		database.NewTransactor(pool),
		seller.NewPostgresRepo(timeout),
		book.NewPostgresRepo(timeout),
		crypto.BcryptHasher{Cost: bcrypt.MinCost},
	)

	var rows [][]any
	for i := range sellerCount {
		p := seller.Profile{
			FirstName: firstNames[i%len(firstNames)],
			LastName:  lastNames[rand.Intn(len(lastNames))],
			Email:     fmt.Sprintf("seller%04d@bookstore.test", i+1),
		}
		created, err := sellerService.Create(ctx, p, password)
		if errors.Is(err, seller.ErrConflict) {
			logger.Info("seller exists, skipping", "email", p.Email)
			continue
		}
		if err != nil {
			return fmt.Errorf("create seller %s: %w", p.Email, err)
		}
		for range booksPerSeller {
			rows = append(rows, []any{
				authors[rand.Intn(len(authors))],
				fmt.Sprintf("%s %s", titleWords[rand.Intn(len(titleWords))], titleWords[rand.Intn(len(titleWords))]),
				1800 + rand.Intn(225),
				50 + rand.Intn(900),
				created.ID,
			})
		}
	}

	n, err := pool.CopyFrom(ctx,
		pgx.Identifier{"books"},
		[]string{"author", "title", "year", "count_pages", "seller_id"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy books: %w", err)
	}
	logger.Info("seed complete", "books", n)
	return nil
}
