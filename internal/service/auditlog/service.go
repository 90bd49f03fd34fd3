// Package auditlog appends and queries the system-wide audit trail.
package auditlog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

type auditRepo interface {
	Create(ctx context.Context, record domain.AuditRecord) error
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
}

// Service writes audit records on behalf of other services and serves the
// admin audit log listing.
type Service struct {
	log       *slog.Logger
	repo      auditRepo
	listLimit int
	now       func() time.Time
}

// NewService creates a new audit log service. listLimit is the default page
// size of List.
func NewService(logger *slog.Logger, repo auditRepo, listLimit int) *Service {
	return &Service{
		log:       logger.With("service", "auditlog"),
		repo:      repo,
		listLimit: listLimit,
		now:       time.Now,
	}
}

// Log appends record on behalf of the authenticated caller in ctx.
//
// Log never fails: without an actor it only warns, and a failed insert is
// logged and dropped so the business operation that triggered it stands.
func (s *Service) Log(ctx context.Context, record domain.AuditRecord) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "audit skipped: no authenticated actor",
			slog.String("action", record.Action.String()),
		)
		return
	}

	record.UserID = &actor.UserID
	if err := s.write(ctx, record); err != nil {
		s.log.WarnContext(ctx, "audit write failed",
			slog.String("action", record.Action.String()),
			slog.String("user_id", actor.UserID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// LogSystem appends a record without an actor, for actions taken by
// operators through command-line tools. Unlike Log it reports failures.
func (s *Service) LogSystem(ctx context.Context, record domain.AuditRecord) error {
	record.UserID = nil
	return s.write(ctx, record)
}

func (s *Service) write(ctx context.Context, record domain.AuditRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now().UTC()
	}
	if ip := ctxutil.ClientIPFromCtx(ctx); ip != "" && record.IPAddress == nil {
		record.IPAddress = &ip
	}
	if ua := ctxutil.UserAgentFromCtx(ctx); ua != "" && record.UserAgent == nil {
		record.UserAgent = &ua
	}
	// The caller's request may already be cancelled; the record still goes in.
	return s.repo.Create(context.WithoutCancel(ctx), record)
}

// List returns audit entries newest first. Admin only.
func (s *Service) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}

	if f.Action != nil && !f.Action.IsValid() {
		return nil, domain.NewValidationError("action", "unknown audit action")
	}
	if f.EntityType != nil && !f.EntityType.IsValid() {
		return nil, domain.NewValidationError("entity_type", "unknown entity type")
	}
	if f.Limit <= 0 {
		f.Limit = s.listLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	return s.repo.List(ctx, f)
}
