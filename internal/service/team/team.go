package team

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// manager resolves the caller and requires a manager or admin.
func manager(ctx context.Context) (domain.Actor, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Actor{}, err
	}
	if err := auth.RequireRole(actor, domain.RoleManager); err != nil {
		return domain.Actor{}, err
	}
	return actor, nil
}

// ListTeams returns all teams. Any authenticated user may read them.
func (s *Service) ListTeams(ctx context.Context) ([]domain.Team, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return nil, err
	}
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("team.ListTeams: %w", err)
	}
	return teams, nil
}

// GetTeam returns a team together with its members.
func (s *Service) GetTeam(ctx context.Context, id uuid.UUID) (domain.Team, []domain.TeamMemberWithProfile, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return domain.Team{}, nil, err
	}

	t, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return domain.Team{}, nil, fmt.Errorf("team.GetTeam: %w", err)
	}
	members, err := s.teams.ListMembers(ctx, id)
	if err != nil {
		return domain.Team{}, nil, fmt.Errorf("team.GetTeam members: %w", err)
	}
	return t, members, nil
}

// CreateTeam creates a team owned by the caller and enrols the caller as
// its owner member in the same transaction.
func (s *Service) CreateTeam(ctx context.Context, input CreateTeamInput) (domain.Team, error) {
	actor, err := manager(ctx)
	if err != nil {
		return domain.Team{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Team{}, err
	}

	now := time.Now().UTC()
	t := domain.Team{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: domain.TrimOptional(input.Description),
		OwnerID:     actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created domain.Team
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.teams.Create(ctx, t)
		if err != nil {
			return err
		}
		_, err = s.teams.AddMember(ctx, domain.TeamMember{
			ID:       uuid.New(),
			TeamID:   created.ID,
			UserID:   actor.UserID,
			Role:     domain.TeamRoleOwner,
			JoinedAt: now,
		})
		return err
	})
	if err != nil {
		return domain.Team{}, fmt.Errorf("team.CreateTeam: %w", err)
	}

	s.audit.Log(ctx, domain.AuditRecord{
		Action:     domain.AuditTeamCreate,
		EntityType: domain.EntityTypeTeam,
		EntityID:   &created.ID,
		NewValues:  snapshot(created),
	})

	s.log.InfoContext(ctx, "team created",
		slog.String("team_id", created.ID.String()),
		slog.String("owner_id", actor.UserID.String()),
	)
	return created, nil
}

// UpdateTeam renames a team or changes its description.
func (s *Service) UpdateTeam(ctx context.Context, input UpdateTeamInput) (domain.Team, error) {
	if _, err := manager(ctx); err != nil {
		return domain.Team{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Team{}, err
	}

	before, err := s.teams.GetByID(ctx, input.TeamID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("team.UpdateTeam get: %w", err)
	}

	next := before
	if input.Name != nil {
		next.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		next.Description = domain.TrimOptional(input.Description)
	}
	next.UpdatedAt = time.Now().UTC()

	updated, err := s.teams.Update(ctx, next)
	if err != nil {
		return domain.Team{}, fmt.Errorf("team.UpdateTeam: %w", err)
	}

	s.audit.Log(ctx, domain.AuditRecord{
		Action:     domain.AuditTeamUpdate,
		EntityType: domain.EntityTypeTeam,
		EntityID:   &updated.ID,
		OldValues:  snapshot(before),
		NewValues:  snapshot(updated),
	})
	return updated, nil
}

// DeleteTeam removes a team and, by cascade, its memberships.
func (s *Service) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if _, err := manager(ctx); err != nil {
		return err
	}

	before, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("team.DeleteTeam get: %w", err)
	}
	if err := s.teams.Delete(ctx, id); err != nil {
		return fmt.Errorf("team.DeleteTeam: %w", err)
	}

	s.audit.Log(ctx, domain.AuditRecord{
		Action:     domain.AuditTeamDelete,
		EntityType: domain.EntityTypeTeam,
		EntityID:   &id,
		OldValues:  snapshot(before),
	})

	s.log.InfoContext(ctx, "team deleted", slog.String("team_id", id.String()))
	return nil
}

func snapshot(t domain.Team) map[string]any {
	return map[string]any{
		"name":        t.Name,
		"description": t.Description,
		"owner_id":    t.OwnerID,
	}
}
