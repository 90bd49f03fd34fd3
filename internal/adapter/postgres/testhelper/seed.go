package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedProfile creates an active profile with the given global role.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.Profile {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	ts := now()
	name := "Test User " + suffix
	p := domain.Profile{
		ID:        uuid.New(),
		Email:     "user-" + suffix + "@example.com",
		FullName:  &name,
		Status:    domain.ProfileStatusActive,
		Role:      role,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO profiles (id, email, full_name, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Email, p.FullName, string(p.Status), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert profile: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`,
		p.ID, string(role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert role: %v", err)
	}

	return p
}

// SeedLead creates a lead in status "new" owned by ownerID.
func SeedLead(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Lead {
	t.Helper()

	ts := now()
	l := domain.NewLead("Lead "+uniqueSuffix(), domain.LeadSourceWebsite, ownerID, time.Time{}, ts)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO leads (id, name, source, status, owner_id, inquiry_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.ID, l.Name, string(l.Source), string(l.Status), l.OwnerID, l.InquiryDate, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLead: %v", err)
	}
	return l
}

// SeedContact creates a contact owned by ownerID without phones or e-mails.
func SeedContact(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Contact {
	t.Helper()

	ts := now()
	c := domain.Contact{
		ID:        uuid.New(),
		FirstName: "Contact " + uniqueSuffix(),
		OwnerID:   ownerID,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO contacts (id, first_name, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.FirstName, c.OwnerID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContact: %v", err)
	}
	return c
}

// SeedDeal creates an "inquiry" deal with an estimated value and its seed
// stage history row.
func SeedDeal(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, estimated decimal.Decimal) domain.Deal {
	t.Helper()
	ctx := context.Background()

	d := domain.NewDeal("Deal "+uniqueSuffix(), ownerID, now())
	d.EstimatedValue = &estimated

	_, err := pool.Exec(ctx,
		`INSERT INTO deals (id, name, owner_id, stage, estimated_value, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.Name, d.OwnerID, string(d.Stage), d.EstimatedValue, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeal insert deal: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO deal_stage_history (id, deal_id, new_stage, changed_by, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), d.ID, string(d.Stage), ownerID, domain.DealCreatedNote, d.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeal insert history: %v", err)
	}
	return d
}
