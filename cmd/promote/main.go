// Command promote sets a user's global role by email address.
// It is used to bootstrap the first admin user.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin]
//
// Requires DATABASE_DSN environment variable to be set. When REDIS_ADDR is
// set the user's cached profile is dropped so the new role applies at once.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/crm-backend/internal/adapter/cache"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/audit"
	userrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/crm-backend/internal/app"
	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/auditlog"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", "", "email of the user to promote")
	roleFlag := flag.String("role", string(domain.RoleAdmin), "global role to grant: admin, manager or user")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin]")
		os.Exit(1)
	}
	role := domain.Role(*roleFlag)
	if !role.IsValid() {
		fmt.Fprintf(os.Stderr, "invalid role %q\n", *roleFlag)
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	logger := app.NewLogger(config.LogConfig{Level: "info", Format: "text"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		DSN:             dsn,
		MaxConns:        2,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
	})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	audit := auditlog.NewService(logger, auditrepo.New(pool), 0)

	profile, err := users.GetByEmail(ctx, *email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Printf("No user found with email %q.\n", *email)
			os.Exit(1)
		}
		log.Fatalf("find user: %v", err)
	}
	if profile.Role == role {
		fmt.Printf("User %q already has role %s.\n", *email, role)
		return
	}

	if err := users.SetRole(ctx, profile.ID, role); err != nil {
		log.Fatalf("update role: %v", err)
	}

	if err := audit.LogSystem(ctx, domain.AuditRecord{
		Action:     domain.AuditUserUpdateRole,
		EntityType: domain.EntityTypeUser,
		EntityID:   &profile.ID,
		OldValues:  map[string]any{"role": profile.Role},
		NewValues:  map[string]any{"role": role, "source": "promote"},
	}); err != nil {
		logger.Warn("audit write failed", slog.String("error", err.Error()))
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := cache.NewClient(config.RedisConfig{Addr: addr, Password: os.Getenv("REDIS_PASSWORD")})
		defer client.Close()
		prefix := os.Getenv("REDIS_KEY_PREFIX")
		if prefix == "" {
			prefix = "crm:"
		}
		if err := cache.NewProfileCache(client, prefix, 0).Invalidate(ctx, profile.ID); err != nil {
			logger.Warn("profile cache invalidation failed", slog.String("error", err.Error()))
		}
	}

	fmt.Printf("User %q granted role %s.\n", *email, role)
}
