package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/crm-backend/internal/adapter/cache"
	"github.com/heartmarshall/crm-backend/internal/adapter/objectstore"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/activity"
	analyticsrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/analytics"
	auditrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/audit"
	commrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/communication"
	contactrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/contact"
	dealrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/deal"
	documentrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/document"
	leadrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/lead"
	noterepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/note"
	taskrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/task"
	teamrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/team"
	userrepo "github.com/heartmarshall/crm-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/analytics"
	"github.com/heartmarshall/crm-backend/internal/service/auditlog"
	authsvc "github.com/heartmarshall/crm-backend/internal/service/auth"
	"github.com/heartmarshall/crm-backend/internal/service/communication"
	"github.com/heartmarshall/crm-backend/internal/service/contact"
	"github.com/heartmarshall/crm-backend/internal/service/deal"
	"github.com/heartmarshall/crm-backend/internal/service/document"
	"github.com/heartmarshall/crm-backend/internal/service/export"
	"github.com/heartmarshall/crm-backend/internal/service/lead"
	"github.com/heartmarshall/crm-backend/internal/service/note"
	"github.com/heartmarshall/crm-backend/internal/service/task"
	"github.com/heartmarshall/crm-backend/internal/service/team"
	"github.com/heartmarshall/crm-backend/internal/service/user"
	"github.com/heartmarshall/crm-backend/internal/transport/dataloader"
	"github.com/heartmarshall/crm-backend/internal/transport/middleware"
	"github.com/heartmarshall/crm-backend/internal/transport/rest"
)

// profileCache is satisfied by the redis cache and by cache.Disabled.
type profileCache interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Profile, error)
	Set(ctx context.Context, p domain.Profile) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// Run is the server entry point. It loads configuration, connects to the
// database and cache, wires services and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
	)

	checks := []rest.Check{{Name: "database", Pinger: pool}}

	var profiles profileCache = cache.Disabled{}
	if cfg.Redis.Enabled() {
		client := cache.NewClient(cfg.Redis)
		defer client.Close()

		redisCache := cache.NewProfileCache(client, cfg.Redis.KeyPrefix, cfg.Redis.ProfileTTL)
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("redis unavailable at startup", slog.String("error", err.Error()))
		}
		profiles = redisCache
		checks = append(checks, rest.Check{Name: "redis", Pinger: redisCache})
	} else {
		logger.Info("redis not configured, profile cache disabled")
	}

	apiLimiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer apiLimiter.Stop()
	authLimiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer authLimiter.Stop()

	handler := buildHandler(cfg, logger, pool, profiles, checks, apiLimiter, authLimiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func migrate(ctx context.Context, dsn string, logger *slog.Logger) error {
	m, err := NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up(ctx, logger)
}

func buildHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	profiles profileCache,
	checks []rest.Check,
	apiLimiter, authLimiter *middleware.RateLimiter,
) http.Handler {
	txm := postgres.NewTxManager(pool)

	// Repositories
	users := userrepo.New(pool)
	leads := leadrepo.New(pool)
	contacts := contactrepo.New(pool)
	deals := dealrepo.New(pool)
	tasks := taskrepo.New(pool)
	notes := noterepo.New(pool)
	comms := commrepo.New(pool)
	documents := documentrepo.New(pool)
	activities := activityrepo.New(pool)
	audits := auditrepo.New(pool)
	teams := teamrepo.New(pool)
	stats := analyticsrepo.New(pool)

	store := objectstore.New(cfg.Storage)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services
	auditSvc := auditlog.NewService(logger, audits, cfg.CRM.AuditListLimit)
	authService := authsvc.NewService(logger, users, profiles, txm, jwt, auditSvc, cfg.Auth)
	userSvc := user.NewService(logger, users, profiles, auditSvc, cfg.CRM)
	leadSvc := lead.NewService(logger, leads, contacts, activities, users, auditSvc, txm, cfg.CRM)
	contactSvc := contact.NewService(logger, contacts, activities, users, auditSvc, txm, cfg.CRM)
	dealSvc := deal.NewService(logger, deals, activities, users, auditSvc, txm, cfg.CRM)
	taskSvc := task.NewService(logger, tasks, users, auditSvc, cfg.CRM)
	noteSvc := note.NewService(logger, notes, auditSvc, cfg.CRM)
	commSvc := communication.NewService(logger, comms, auditSvc, cfg.CRM)
	documentSvc := document.NewService(logger, documents, store, auditSvc, cfg.Storage, cfg.CRM)
	teamSvc := team.NewService(logger, teams, users, auditSvc, txm)
	analyticsSvc := analytics.NewService(logger, stats, tasks, activities, cfg.CRM)
	exportSvc := export.NewService(logger, leads, deals, users, cfg.CRM)

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(Version, checks...),
		Auth:      rest.NewAuthHandler(authService, logger),
		Profile:   rest.NewProfileHandler(userSvc, logger),
		Leads:     rest.NewLeadHandler(leadSvc, logger),
		Contacts:  rest.NewContactHandler(contactSvc, logger),
		Deals:     rest.NewDealHandler(dealSvc, logger),
		Tasks:     rest.NewTaskHandler(taskSvc, logger),
		Records:   rest.NewRecordHandler(noteSvc, commSvc, logger),
		Documents: rest.NewDocumentHandler(documentSvc, cfg.Storage.MaxUploadBytes, logger),
		Reports:   rest.NewReportHandler(analyticsSvc, exportSvc, logger),
		Admin:     rest.NewAdminHandler(userSvc, auditSvc, logger),
		Teams:     rest.NewTeamHandler(teamSvc, logger),
	}, authLimiter.Limit(cfg.RateLimit.AuthPerMinute))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.ClientInfo(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		apiLimiter.Limit(cfg.RateLimit.RequestsPerMinute),
		middleware.Auth(authService, logger),
		dataloader.Middleware(users),
	)(router)
}
