// Package contact implements the Contact repository using PostgreSQL,
// including the phone and e-mail child rows.
package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

var contactColumns = []string{
	"id", "first_name", "last_name", "company", "job_title", "address", "city",
	"state", "country", "postal_code", "lead_id", "owner_id", "notes", "created_at", "updated_at",
}

var phoneColumns = []string{"id", "contact_id", "phone", "phone_type", "is_primary", "created_at"}

var emailColumns = []string{"id", "contact_id", "email", "email_type", "is_primary", "created_at"}

// Repo provides contact persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new contact repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Contacts
// ---------------------------------------------------------------------------

// GetByID returns a contact without its phones and e-mails.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Contact, error) {
	query, args, err := postgres.Builder().
		Select(contactColumns...).
		From("contacts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Contact{}, fmt.Errorf("build get contact: %w", err)
	}

	var row contactRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Contact{}, postgres.MapError(err, "contact", id)
	}
	return row.toDomain(), nil
}

// List returns contacts matching the filter, newest first, and the total count.
func (r *Repo) List(ctx context.Context, f domain.ContactFilter) ([]domain.Contact, int, error) {
	where := sq.And{}
	if f.Search != nil && *f.Search != "" {
		where = append(where, postgres.AnyILike(*f.Search, "first_name", "last_name", "company"))
	}
	if f.OwnerID != nil {
		where = append(where, sq.Eq{"owner_id": *f.OwnerID})
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("contacts").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count contacts: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapListError(err, "count contacts")
	}

	b := postgres.Builder().Select(contactColumns...).From("contacts").Where(where).OrderBy("created_at DESC", "id")
	query, args, err := postgres.Paginate(b, f.Limit, f.Offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list contacts: %w", err)
	}

	var rows []contactRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, postgres.MapListError(err, "list contacts")
	}

	contacts := make([]domain.Contact, len(rows))
	for i, row := range rows {
		contacts[i] = row.toDomain()
	}
	return contacts, total, nil
}

// Create inserts a contact row. Children are written with ReplacePhones and
// ReplaceEmails.
func (r *Repo) Create(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	query, args, err := postgres.Builder().
		Insert("contacts").
		Columns(contactColumns...).
		Values(c.ID, c.FirstName, c.LastName, c.Company, c.JobTitle, c.Address, c.City,
			c.State, c.Country, c.PostalCode, c.LeadID, c.OwnerID, c.Notes, c.CreatedAt, c.UpdatedAt).
		Suffix(postgres.Returning(contactColumns...)).
		ToSql()
	if err != nil {
		return domain.Contact{}, fmt.Errorf("build insert contact: %w", err)
	}

	var row contactRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Contact{}, postgres.MapError(err, "contact", c.ID)
	}
	return row.toDomain(), nil
}

// Update writes every mutable column of c.
func (r *Repo) Update(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	query, args, err := postgres.Builder().
		Update("contacts").
		SetMap(map[string]any{
			"first_name":  c.FirstName,
			"last_name":   c.LastName,
			"company":     c.Company,
			"job_title":   c.JobTitle,
			"address":     c.Address,
			"city":        c.City,
			"state":       c.State,
			"country":     c.Country,
			"postal_code": c.PostalCode,
			"owner_id":    c.OwnerID,
			"notes":       c.Notes,
			"updated_at":  c.UpdatedAt,
		}).
		Where(sq.Eq{"id": c.ID}).
		Suffix(postgres.Returning(contactColumns...)).
		ToSql()
	if err != nil {
		return domain.Contact{}, fmt.Errorf("build update contact: %w", err)
	}

	var row contactRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Contact{}, postgres.MapError(err, "contact", c.ID)
	}
	return row.toDomain(), nil
}

// Delete removes a contact; phones and e-mails cascade. A contact still
// referenced by a converted lead cannot be deleted (ErrConflict).
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().Delete("contacts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete contact: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("contact %s: %w", id, domain.ErrConflict)
		}
		return postgres.MapError(err, "contact", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("contact %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// ---------------------------------------------------------------------------
// Phones and e-mails
// ---------------------------------------------------------------------------

// ListPhones returns a contact's phones, primary first.
func (r *Repo) ListPhones(ctx context.Context, contactID uuid.UUID) ([]domain.ContactPhone, error) {
	query, args, err := postgres.Builder().
		Select(phoneColumns...).
		From("contact_phones").
		Where(sq.Eq{"contact_id": contactID}).
		OrderBy("is_primary DESC", "created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list phones: %w", err)
	}

	var rows []phoneRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list contact_phones")
	}

	phones := make([]domain.ContactPhone, len(rows))
	for i, row := range rows {
		phones[i] = domain.ContactPhone(row)
	}
	return phones, nil
}

// ListEmails returns a contact's e-mails, primary first.
func (r *Repo) ListEmails(ctx context.Context, contactID uuid.UUID) ([]domain.ContactEmail, error) {
	query, args, err := postgres.Builder().
		Select(emailColumns...).
		From("contact_emails").
		Where(sq.Eq{"contact_id": contactID}).
		OrderBy("is_primary DESC", "created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list emails: %w", err)
	}

	var rows []emailRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list contact_emails")
	}

	emails := make([]domain.ContactEmail, len(rows))
	for i, row := range rows {
		emails[i] = domain.ContactEmail(row)
	}
	return emails, nil
}

// ReplacePhones deletes a contact's phones and inserts phones in one
// statement pair. Callers run it inside a transaction.
func (r *Repo) ReplacePhones(ctx context.Context, contactID uuid.UUID, phones []domain.ContactPhone) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().Delete("contact_phones").Where(sq.Eq{"contact_id": contactID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete phones: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "contact_phones", contactID)
	}

	if len(phones) == 0 {
		return nil
	}

	ins := postgres.Builder().Insert("contact_phones").Columns(phoneColumns...)
	for _, p := range phones {
		ins = ins.Values(p.ID, contactID, p.Phone, p.Type, p.IsPrimary, p.CreatedAt)
	}
	query, args, err = ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert phones: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "contact_phones", contactID)
	}
	return nil
}

// ReplaceEmails deletes a contact's e-mails and inserts emails.
// Callers run it inside a transaction.
func (r *Repo) ReplaceEmails(ctx context.Context, contactID uuid.UUID, emails []domain.ContactEmail) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().Delete("contact_emails").Where(sq.Eq{"contact_id": contactID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete emails: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "contact_emails", contactID)
	}

	if len(emails) == 0 {
		return nil
	}

	ins := postgres.Builder().Insert("contact_emails").Columns(emailColumns...)
	for _, e := range emails {
		ins = ins.Values(e.ID, contactID, e.Email, e.Type, e.IsPrimary, e.CreatedAt)
	}
	query, args, err = ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert emails: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "contact_emails", contactID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row types
// ---------------------------------------------------------------------------

type contactRow struct {
	ID         uuid.UUID  `db:"id"`
	FirstName  string     `db:"first_name"`
	LastName   *string    `db:"last_name"`
	Company    *string    `db:"company"`
	JobTitle   *string    `db:"job_title"`
	Address    *string    `db:"address"`
	City       *string    `db:"city"`
	State      *string    `db:"state"`
	Country    *string    `db:"country"`
	PostalCode *string    `db:"postal_code"`
	LeadID     *uuid.UUID `db:"lead_id"`
	OwnerID    uuid.UUID  `db:"owner_id"`
	Notes      *string    `db:"notes"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

func (r contactRow) toDomain() domain.Contact {
	return domain.Contact{
		ID:         r.ID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Company:    r.Company,
		JobTitle:   r.JobTitle,
		Address:    r.Address,
		City:       r.City,
		State:      r.State,
		Country:    r.Country,
		PostalCode: r.PostalCode,
		LeadID:     r.LeadID,
		OwnerID:    r.OwnerID,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// phoneRow mirrors domain.ContactPhone field for field so it converts directly.
type phoneRow struct {
	ID        uuid.UUID        `db:"id"`
	ContactID uuid.UUID        `db:"contact_id"`
	Phone     string           `db:"phone"`
	Type      domain.PhoneType `db:"phone_type"`
	IsPrimary bool             `db:"is_primary"`
	CreatedAt time.Time        `db:"created_at"`
}

type emailRow struct {
	ID        uuid.UUID        `db:"id"`
	ContactID uuid.UUID        `db:"contact_id"`
	Email     string           `db:"email"`
	Type      domain.EmailType `db:"email_type"`
	IsPrimary bool             `db:"is_primary"`
	CreatedAt time.Time        `db:"created_at"`
}
