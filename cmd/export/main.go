// Command export writes the Leads and Deals workbook to a file, the same
// spreadsheet served by GET /reports/export.
//
// Usage:
//
//	export --as=manager@example.com [--out=crm-export-2026-01-31.xlsx]
//
// The export runs with the identity of the --as user, who must be a
// manager or admin. Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	dealrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/deal"
	leadrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/lead"
	userrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/crm-backend/internal/app"
	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/export"
)

const defaultMaxRows = 10000

func main() {
	_ = godotenv.Load()

	as := flag.String("as", "", "email of the manager or admin running the export")
	out := flag.String("out", "", "output path (default crm-export-<date>.xlsx)")
	flag.Parse()

	if *as == "" {
		fmt.Fprintln(os.Stderr, "Usage: export --as=manager@example.com [--out=file.xlsx]")
		os.Exit(1)
	}

	if *out == "" {
		*out = fmt.Sprintf("crm-export-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	maxRows := defaultMaxRows
	if v := os.Getenv("CRM_EXPORT_MAX_ROWS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Fatalf("invalid CRM_EXPORT_MAX_ROWS %q", v)
		}
		maxRows = n
	}

	logger := app.NewLogger(config.LogConfig{Level: "info", Format: "text"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		DSN:             dsn,
		MaxConns:        4,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
	})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	operator, err := users.GetByEmail(ctx, *as)
	if err != nil {
		log.Fatalf("find user %q: %v", *as, err)
	}
	if operator.Status != domain.ProfileStatusActive {
		log.Fatalf("user %q is not active", *as)
	}

	svc := export.NewService(logger,
		leadrepo.New(pool), dealrepo.New(pool), users,
		config.CRMConfig{ExportMaxRows: maxRows},
	)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}

	ctx = auth.WithActor(ctx, domain.Actor{UserID: operator.ID, Role: operator.Role})

	res, err := svc.Write(ctx, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(*out)
		logger.Error("export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var size uint64
	if st, err := os.Stat(*out); err == nil {
		size = uint64(st.Size())
	}

	logger.Info("export written",
		slog.String("path", *out),
		slog.String("size", humanize.Bytes(size)),
		slog.Int("leads", res.Leads),
		slog.Int("deals", res.Deals),
		slog.Bool("truncated", res.Truncated),
	)
}
