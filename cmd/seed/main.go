// Command seed loads the starter categories and articles into the database.
// Rows that already exist (matched by category name or article slug) are skipped,
// so running it twice is harmless. -reset drops the schema first.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"newsdesk/internal/infra/adapter/persistence"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/infra/seed"
	"newsdesk/internal/observability/logging"
)

func main() {
	file := flag.String("file", "", "YAML fixture to load (default: built-in fixture)")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	reset := flag.Bool("reset", false, "drop all tables before migrating (destroys data)")
	flag.Parse()

	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	if err := run(ctx, *file, *reset, logger); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, file string, reset bool, logger *slog.Logger) error {
	fixture, err := loadFixture(file)
	if err != nil {
		return err
	}

	cfg := db.ConfigFromEnv()
	database, err := db.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warn("failed to close database", slog.Any("error", err))
		}
	}()

	if reset {
		logger.Warn("dropping schema", slog.String("driver", cfg.Driver))
		if err := db.MigrateDown(ctx, database); err != nil {
			return err
		}
	}
	if err := db.MigrateUp(ctx, database, cfg.Driver); err != nil {
		return err
	}

	repos := persistence.New(cfg.Driver, database, nil)
	res, err := seed.Apply(ctx, fixture, repos.Categories, repos.Articles, logger)
	if err != nil {
		return err
	}

	logger.Info("seed complete",
		slog.String("driver", cfg.Driver),
		slog.Int("categories_created", res.CategoriesCreated),
		slog.Int("categories_skipped", res.CategoriesSkipped),
		slog.Int("articles_created", res.ArticlesCreated),
		slog.Int("articles_skipped", res.ArticlesSkipped))
	return nil
}

func loadFixture(file string) (*seed.Fixture, error) {
	if file == "" {
		return seed.Default()
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return seed.Read(f)
}
