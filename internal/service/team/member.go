package team

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// AddMember enrols a user in a team with the given per-team role.
func (s *Service) AddMember(ctx context.Context, input MemberInput) (domain.TeamMember, error) {
	if _, err := manager(ctx); err != nil {
		return domain.TeamMember{}, err
	}
	if err := input.validate(true); err != nil {
		return domain.TeamMember{}, err
	}

	if _, err := s.teams.GetByID(ctx, input.TeamID); err != nil {
		return domain.TeamMember{}, fmt.Errorf("team.AddMember team: %w", err)
	}
	if _, err := s.profiles.GetByID(ctx, input.UserID); err != nil {
		return domain.TeamMember{}, fmt.Errorf("team.AddMember user: %w", err)
	}

	m, err := s.teams.AddMember(ctx, domain.TeamMember{
		ID:       uuid.New(),
		TeamID:   input.TeamID,
		UserID:   input.UserID,
		Role:     input.Role,
		JoinedAt: time.Now().UTC(),
	})
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("team.AddMember: %w", err)
	}

	s.audit.Log(ctx, memberRecord(domain.AuditTeamAddMember, input.TeamID, nil, map[string]any{
		"user_id": input.UserID,
		"role":    input.Role,
	}))

	s.log.InfoContext(ctx, "team member added",
		slog.String("team_id", input.TeamID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.String("role", input.Role.String()),
	)
	return m, nil
}

// UpdateMemberRole changes a member's per-team role.
func (s *Service) UpdateMemberRole(ctx context.Context, input MemberInput) error {
	if _, err := manager(ctx); err != nil {
		return err
	}
	if err := input.validate(true); err != nil {
		return err
	}

	prev, err := s.currentRole(ctx, input.TeamID, input.UserID)
	if err != nil {
		return fmt.Errorf("team.UpdateMemberRole get: %w", err)
	}
	if prev == input.Role {
		return nil
	}

	if err := s.teams.UpdateMemberRole(ctx, input.TeamID, input.UserID, input.Role); err != nil {
		return fmt.Errorf("team.UpdateMemberRole: %w", err)
	}

	s.audit.Log(ctx, memberRecord(domain.AuditTeamUpdateMemberRole, input.TeamID,
		map[string]any{"user_id": input.UserID, "role": prev},
		map[string]any{"user_id": input.UserID, "role": input.Role},
	))
	return nil
}

// RemoveMember removes a user from a team.
func (s *Service) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	if _, err := manager(ctx); err != nil {
		return err
	}
	if err := (MemberInput{TeamID: teamID, UserID: userID}).validate(false); err != nil {
		return err
	}

	if err := s.teams.RemoveMember(ctx, teamID, userID); err != nil {
		return fmt.Errorf("team.RemoveMember: %w", err)
	}

	s.audit.Log(ctx, memberRecord(domain.AuditTeamRemoveMember, teamID,
		map[string]any{"user_id": userID}, nil))

	s.log.InfoContext(ctx, "team member removed",
		slog.String("team_id", teamID.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}

func (s *Service) currentRole(ctx context.Context, teamID, userID uuid.UUID) (domain.TeamRole, error) {
	members, err := s.teams.ListMembers(ctx, teamID)
	if err != nil {
		return "", err
	}
	for _, m := range members {
		if m.UserID == userID {
			return m.Role, nil
		}
	}
	return "", fmt.Errorf("team_member %s: %w", userID, domain.ErrNotFound)
}

func memberRecord(action domain.AuditAction, teamID uuid.UUID, oldValues, newValues map[string]any) domain.AuditRecord {
	return domain.AuditRecord{
		Action:     action,
		EntityType: domain.EntityTypeTeamMember,
		EntityID:   &teamID,
		OldValues:  oldValues,
		NewValues:  newValues,
	}
}
