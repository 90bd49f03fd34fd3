package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Shared
// ---------------------------------------------------------------------------

type ownerResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName *string   `json:"full_name"`
	Email    string    `json:"email"`
}

func toOwner(o *domain.OwnerSummary) *ownerResponse {
	if o == nil {
		return nil
	}
	return &ownerResponse{ID: o.ID, FullName: o.FullName, Email: o.Email}
}

type linkResponse struct {
	LeadID    *uuid.UUID `json:"lead_id"`
	ContactID *uuid.UUID `json:"contact_id"`
	DealID    *uuid.UUID `json:"deal_id"`
}

func toLink(l domain.Link) linkResponse {
	return linkResponse{LeadID: l.LeadID, ContactID: l.ContactID, DealID: l.DealID}
}

type linkRequest struct {
	LeadID    *uuid.UUID `json:"lead_id"`
	ContactID *uuid.UUID `json:"contact_id"`
	DealID    *uuid.UUID `json:"deal_id"`
}

func (l linkRequest) toDomain() domain.Link {
	return domain.Link{LeadID: l.LeadID, ContactID: l.ContactID, DealID: l.DealID}
}

type activityResponse struct {
	ID          uuid.UUID `json:"id"`
	EntityType  string    `json:"entity_type"`
	EntityID    uuid.UUID `json:"entity_id"`
	UserID      uuid.UUID `json:"user_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toActivity(a domain.Activity) activityResponse {
	return activityResponse{
		ID:          a.ID,
		EntityType:  string(a.EntityType),
		EntityID:    a.EntityID,
		UserID:      a.UserID,
		Type:        string(a.Type),
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}

type activityRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type historyResponse struct {
	ID        uuid.UUID `json:"id"`
	From      *string   `json:"from"`
	To        string    `json:"to"`
	ChangedBy uuid.UUID `json:"changed_by"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// ---------------------------------------------------------------------------
// Leads
// ---------------------------------------------------------------------------

type leadResponse struct {
	ID                   uuid.UUID      `json:"id"`
	Name                 string         `json:"name"`
	Phone                *string        `json:"phone"`
	Email                *string        `json:"email"`
	Source               string         `json:"source"`
	Status               string         `json:"status"`
	OwnerID              uuid.UUID      `json:"owner_id"`
	Owner                *ownerResponse `json:"owner,omitempty"`
	InquiryDate          time.Time      `json:"inquiry_date"`
	Notes                *string        `json:"notes"`
	ConvertedToContactID *uuid.UUID     `json:"converted_to_contact_id"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

func toLead(l domain.Lead, owner *domain.OwnerSummary) leadResponse {
	return leadResponse{
		ID:                   l.ID,
		Name:                 l.Name,
		Phone:                l.Phone,
		Email:                l.Email,
		Source:               string(l.Source),
		Status:               string(l.Status),
		OwnerID:              l.OwnerID,
		Owner:                toOwner(owner),
		InquiryDate:          l.InquiryDate,
		Notes:                l.Notes,
		ConvertedToContactID: l.ConvertedToContactID,
		CreatedAt:            l.CreatedAt,
		UpdatedAt:            l.UpdatedAt,
	}
}

func toLeadHistory(c domain.LeadStatusChange) historyResponse {
	var from *string
	if c.OldStatus != nil {
		s := string(*c.OldStatus)
		from = &s
	}
	return historyResponse{
		ID:        c.ID,
		From:      from,
		To:        string(c.NewStatus),
		ChangedBy: c.ChangedBy,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Contacts
// ---------------------------------------------------------------------------

type phoneDTO struct {
	Phone     string `json:"phone"`
	Type      string `json:"type"`
	IsPrimary bool   `json:"is_primary"`
}

type emailDTO struct {
	Email     string `json:"email"`
	Type      string `json:"type"`
	IsPrimary bool   `json:"is_primary"`
}

type contactRequest struct {
	FirstName  string     `json:"first_name"`
	LastName   *string    `json:"last_name"`
	Company    *string    `json:"company"`
	JobTitle   *string    `json:"job_title"`
	Address    *string    `json:"address"`
	City       *string    `json:"city"`
	State      *string    `json:"state"`
	Country    *string    `json:"country"`
	PostalCode *string    `json:"postal_code"`
	Notes      *string    `json:"notes"`
	Phones     []phoneDTO `json:"phones"`
	Emails     []emailDTO `json:"emails"`
}

func (c contactRequest) toDraft() domain.ContactDraft {
	d := domain.ContactDraft{
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Company:    c.Company,
		JobTitle:   c.JobTitle,
		Address:    c.Address,
		City:       c.City,
		State:      c.State,
		Country:    c.Country,
		PostalCode: c.PostalCode,
		Notes:      c.Notes,
	}
	for _, p := range c.Phones {
		d.Phones = append(d.Phones, domain.ContactPhone{Phone: p.Phone, Type: domain.PhoneType(p.Type), IsPrimary: p.IsPrimary})
	}
	for _, e := range c.Emails {
		d.Emails = append(d.Emails, domain.ContactEmail{Email: e.Email, Type: domain.EmailType(e.Type), IsPrimary: e.IsPrimary})
	}
	return d
}

type contactResponse struct {
	ID         uuid.UUID      `json:"id"`
	FirstName  string         `json:"first_name"`
	LastName   *string        `json:"last_name"`
	FullName   string         `json:"full_name"`
	Company    *string        `json:"company"`
	JobTitle   *string        `json:"job_title"`
	Address    *string        `json:"address"`
	City       *string        `json:"city"`
	State      *string        `json:"state"`
	Country    *string        `json:"country"`
	PostalCode *string        `json:"postal_code"`
	LeadID     *uuid.UUID     `json:"lead_id"`
	OwnerID    uuid.UUID      `json:"owner_id"`
	Owner      *ownerResponse `json:"owner,omitempty"`
	Notes      *string        `json:"notes"`
	Phones     []phoneDTO     `json:"phones"`
	Emails     []emailDTO     `json:"emails"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func toContact(c domain.Contact, owner *domain.OwnerSummary) contactResponse {
	return contactResponse{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		FullName:   c.FullName(),
		Company:    c.Company,
		JobTitle:   c.JobTitle,
		Address:    c.Address,
		City:       c.City,
		State:      c.State,
		Country:    c.Country,
		PostalCode: c.PostalCode,
		LeadID:     c.LeadID,
		OwnerID:    c.OwnerID,
		Owner:      toOwner(owner),
		Notes:      c.Notes,
		Phones: mapSlice(c.Phones, func(p domain.ContactPhone) phoneDTO {
			return phoneDTO{Phone: p.Phone, Type: string(p.Type), IsPrimary: p.IsPrimary}
		}),
		Emails: mapSlice(c.Emails, func(e domain.ContactEmail) emailDTO {
			return emailDTO{Email: e.Email, Type: string(e.Type), IsPrimary: e.IsPrimary}
		}),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Deals
// ---------------------------------------------------------------------------

type dealResponse struct {
	ID                uuid.UUID        `json:"id"`
	Name              string           `json:"name"`
	LeadID            *uuid.UUID       `json:"lead_id"`
	ContactID         *uuid.UUID       `json:"contact_id"`
	OwnerID           uuid.UUID        `json:"owner_id"`
	Owner             *ownerResponse   `json:"owner,omitempty"`
	Stage             string           `json:"stage"`
	EstimatedValue    *decimal.Decimal `json:"estimated_value"`
	ConfirmedValue    *decimal.Decimal `json:"confirmed_value"`
	Value             *decimal.Decimal `json:"value"`
	ExpectedCloseDate *time.Time       `json:"expected_close_date"`
	ActualCloseDate   *time.Time       `json:"actual_close_date"`
	Notes             *string          `json:"notes"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func toDeal(d domain.Deal, owner *domain.OwnerSummary) dealResponse {
	return dealResponse{
		ID:                d.ID,
		Name:              d.Name,
		LeadID:            d.LeadID,
		ContactID:         d.ContactID,
		OwnerID:           d.OwnerID,
		Owner:             toOwner(owner),
		Stage:             string(d.Stage),
		EstimatedValue:    d.EstimatedValue,
		ConfirmedValue:    d.ConfirmedValue,
		Value:             d.DisplayValue(),
		ExpectedCloseDate: d.ExpectedCloseDate,
		ActualCloseDate:   d.ActualCloseDate,
		Notes:             d.Notes,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func toDealHistory(c domain.DealStageChange) historyResponse {
	var from *string
	if c.OldStage != nil {
		s := string(*c.OldStage)
		from = &s
	}
	return historyResponse{
		ID:        c.ID,
		From:      from,
		To:        string(c.NewStage),
		ChangedBy: c.ChangedBy,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

type pipelineColumnResponse struct {
	Stage string          `json:"stage"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
	Deals []dealResponse  `json:"deals"`
}

// ---------------------------------------------------------------------------
// Tasks
// ---------------------------------------------------------------------------

type taskResponse struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Priority    string       `json:"priority"`
	Status      string       `json:"status"`
	DueDate     *time.Time   `json:"due_date"`
	ReminderAt  *time.Time   `json:"reminder_at"`
	Link        linkResponse `json:"link"`
	AssignedTo  *uuid.UUID   `json:"assigned_to"`
	CreatedBy   uuid.UUID    `json:"created_by"`
	CompletedAt *time.Time   `json:"completed_at"`
	CompletedBy *uuid.UUID   `json:"completed_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func toTask(t domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		ReminderAt:  t.ReminderAt,
		Link:        toLink(t.Link),
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		CompletedAt: t.CompletedAt,
		CompletedBy: t.CompletedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Notes, communications, documents
// ---------------------------------------------------------------------------

type noteResponse struct {
	ID        uuid.UUID    `json:"id"`
	Content   string       `json:"content"`
	Link      linkResponse `json:"link"`
	CreatedBy uuid.UUID    `json:"created_by"`
	CreatedAt time.Time    `json:"created_at"`
}

func toNote(n domain.Note) noteResponse {
	return noteResponse{ID: n.ID, Content: n.Content, Link: toLink(n.Link), CreatedBy: n.CreatedBy, CreatedAt: n.CreatedAt}
}

type communicationResponse struct {
	ID              uuid.UUID    `json:"id"`
	Type            string       `json:"type"`
	Direction       string       `json:"direction"`
	Subject         *string      `json:"subject"`
	Content         *string      `json:"content"`
	DurationMinutes *int         `json:"duration_minutes"`
	ScheduledAt     *time.Time   `json:"scheduled_at"`
	Link            linkResponse `json:"link"`
	CreatedBy       uuid.UUID    `json:"created_by"`
	CreatedAt       time.Time    `json:"created_at"`
}

func toCommunication(c domain.Communication) communicationResponse {
	return communicationResponse{
		ID:              c.ID,
		Type:            string(c.Type),
		Direction:       string(c.Direction),
		Subject:         c.Subject,
		Content:         c.Content,
		DurationMinutes: c.DurationMinutes,
		ScheduledAt:     c.ScheduledAt,
		Link:            toLink(c.Link),
		CreatedBy:       c.CreatedBy,
		CreatedAt:       c.CreatedAt,
	}
}

type documentResponse struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	SizeBytes  int64        `json:"size_bytes"`
	SizeLabel  string       `json:"size_label"`
	MimeType   string       `json:"mime_type"`
	Category   string       `json:"category"`
	Link       linkResponse `json:"link"`
	UploadedBy uuid.UUID    `json:"uploaded_by"`
	CreatedAt  time.Time    `json:"created_at"`
}

func toDocument(d domain.Document) documentResponse {
	return documentResponse{
		ID:         d.ID,
		Name:       d.Name,
		SizeBytes:  d.SizeBytes,
		SizeLabel:  d.SizeLabel(),
		MimeType:   d.MimeType,
		Category:   string(d.Category),
		Link:       toLink(d.Link),
		UploadedBy: d.UploadedBy,
		CreatedAt:  d.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Users, teams, audit
// ---------------------------------------------------------------------------

type profileResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	AvatarURL *string   `json:"avatar_url"`
	Status    string    `json:"status"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toProfile(p domain.Profile) profileResponse {
	return profileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		Status:    string(p.Status),
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type teamResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	OwnerID     uuid.UUID        `json:"owner_id"`
	Members     []memberResponse `json:"members,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func toTeam(t domain.Team) teamResponse {
	return teamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type memberResponse struct {
	UserID   uuid.UUID      `json:"user_id"`
	Role     string         `json:"role"`
	JoinedAt time.Time      `json:"joined_at"`
	Profile  *ownerResponse `json:"profile,omitempty"`
}

func toMember(m domain.TeamMemberWithProfile) memberResponse {
	profile := m.Profile
	return memberResponse{
		UserID:   m.UserID,
		Role:     string(m.Role),
		JoinedAt: m.JoinedAt,
		Profile:  toOwner(&profile),
	}
}

type auditResponse struct {
	ID         uuid.UUID      `json:"id"`
	UserID     *uuid.UUID     `json:"user_id"`
	UserEmail  *string        `json:"user_email"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   *uuid.UUID     `json:"entity_id"`
	OldValues  map[string]any `json:"old_values"`
	NewValues  map[string]any `json:"new_values"`
	IPAddress  *string        `json:"ip_address"`
	UserAgent  *string        `json:"user_agent"`
	CreatedAt  time.Time      `json:"created_at"`
}

func toAudit(e domain.AuditEntry) auditResponse {
	return auditResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		UserEmail:  e.UserEmail,
		Action:     string(e.Action),
		EntityType: string(e.EntityType),
		EntityID:   e.EntityID,
		OldValues:  e.OldValues,
		NewValues:  e.NewValues,
		IPAddress:  e.IPAddress,
		UserAgent:  e.UserAgent,
		CreatedAt:  e.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Analytics
// ---------------------------------------------------------------------------

type stageStatResponse struct {
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}

type dashboardResponse struct {
	TotalLeads       int                          `json:"total_leads"`
	LeadsByStatus    map[string]int               `json:"leads_by_status"`
	LeadsBySource    map[string]int               `json:"leads_by_source"`
	DealsByStage     map[string]stageStatResponse `json:"deals_by_stage"`
	ConversionRate   float64                      `json:"conversion_rate"`
	TotalDealValue   decimal.Decimal              `json:"total_deal_value"`
	ClosedWonValue   decimal.Decimal              `json:"closed_won_value"`
	OverdueTasks     int                          `json:"overdue_tasks"`
	PendingTasks     int                          `json:"pending_tasks"`
	RecentActivities int                          `json:"recent_activities"`
}

func toDashboard(s domain.DashboardStats) dashboardResponse {
	out := dashboardResponse{
		TotalLeads:       s.TotalLeads,
		LeadsByStatus:    make(map[string]int, len(s.LeadsByStatus)),
		LeadsBySource:    make(map[string]int, len(s.LeadsBySource)),
		DealsByStage:     make(map[string]stageStatResponse, len(s.DealsByStage)),
		ConversionRate:   s.ConversionRate,
		TotalDealValue:   s.TotalDealValue,
		ClosedWonValue:   s.ClosedWonValue,
		OverdueTasks:     s.OverdueTasks,
		PendingTasks:     s.PendingTasks,
		RecentActivities: s.RecentActivities,
	}
	for k, v := range s.LeadsByStatus {
		out.LeadsByStatus[string(k)] = v
	}
	for k, v := range s.LeadsBySource {
		out.LeadsBySource[string(k)] = v
	}
	for k, v := range s.DealsByStage {
		out.DealsByStage[string(k)] = stageStatResponse{Count: v.Count, Value: v.Value}
	}
	return out
}
