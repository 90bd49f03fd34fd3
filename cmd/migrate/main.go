// Command migrate applies or rolls back the embedded schema migrations.
//
// Usage:
//
//	migrate up|down|status
//
// Requires DATABASE_DSN environment variable to be set. The full server
// configuration is not loaded, so migrations run before secrets exist.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/crm-backend/internal/app"
	"github.com/heartmarshall/crm-backend/internal/config"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: migrate up|down|status")
		os.Exit(2)
	}
	command := os.Args[1]

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}
	logger := app.NewLogger(config.LogConfig{Level: os.Getenv("LOG_LEVEL"), Format: "text"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	m, err := app.NewMigrator(dsn)
	if err != nil {
		logger.Error("open migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer m.Close()

	switch command {
	case "up":
		err = m.Up(ctx, logger)
	case "down":
		err = m.Down(ctx, logger)
	case "status":
		err = printStatus(ctx, m)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", command)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("migrate "+command, slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func printStatus(ctx context.Context, m *app.Migrator) error {
	statuses, err := m.Status(ctx)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		applied := "pending"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Printf("%5d  %-8s  %-25s  %s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}
	return nil
}
