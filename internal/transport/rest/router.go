package rest

import (
	"net/http"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Profile   *ProfileHandler
	Leads     *LeadHandler
	Contacts  *ContactHandler
	Deals     *DealHandler
	Tasks     *TaskHandler
	Records   *RecordHandler
	Documents *DocumentHandler
	Reports   *ReportHandler
	Admin     *AdminHandler
	Teams     *TeamHandler
}

// NewRouter mounts the REST surface. authLimit wraps the credential
// endpoints; role gates are applied per route.
func NewRouter(h Handlers, authLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	manager := middleware.RequireRole(domain.RoleManager)
	admin := middleware.RequireRole(domain.RoleAdmin)
	gate := func(mw middleware.Middleware, fn http.HandlerFunc) http.Handler {
		return mw(fn)
	}

	// Health
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Auth
	mux.Handle("POST /auth/register", gate(authLimit, h.Auth.Register))
	mux.Handle("POST /auth/login", gate(authLimit, h.Auth.Login))
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /me", h.Profile.Get)
	mux.HandleFunc("PATCH /me", h.Profile.Update)

	// Leads
	mux.HandleFunc("GET /leads", h.Leads.List)
	mux.HandleFunc("POST /leads", h.Leads.Create)
	mux.HandleFunc("GET /leads/{id}", h.Leads.Get)
	mux.HandleFunc("PATCH /leads/{id}", h.Leads.Update)
	mux.HandleFunc("POST /leads/{id}/status", h.Leads.ChangeStatus)
	mux.Handle("POST /leads/{id}/reassign", gate(manager, h.Leads.Reassign))
	mux.HandleFunc("POST /leads/{id}/convert", h.Leads.Convert)
	mux.HandleFunc("GET /leads/{id}/history", h.Leads.History)
	mux.HandleFunc("GET /leads/{id}/activities", h.Leads.Activities)
	mux.HandleFunc("POST /leads/{id}/activities", h.Leads.AddActivity)

	// Contacts
	mux.HandleFunc("GET /contacts", h.Contacts.List)
	mux.HandleFunc("POST /contacts", h.Contacts.Create)
	mux.HandleFunc("GET /contacts/{id}", h.Contacts.Get)
	mux.HandleFunc("PUT /contacts/{id}", h.Contacts.Update)
	mux.HandleFunc("DELETE /contacts/{id}", h.Contacts.Delete)
	mux.HandleFunc("GET /contacts/{id}/activities", h.Contacts.Activities)
	mux.HandleFunc("POST /contacts/{id}/activities", h.Contacts.AddActivity)

	// Deals
	mux.HandleFunc("GET /deals", h.Deals.List)
	mux.HandleFunc("POST /deals", h.Deals.Create)
	mux.HandleFunc("GET /deals/pipeline", h.Deals.Pipeline)
	mux.HandleFunc("GET /deals/{id}", h.Deals.Get)
	mux.HandleFunc("PATCH /deals/{id}", h.Deals.Update)
	mux.HandleFunc("POST /deals/{id}/stage", h.Deals.UpdateStage)
	mux.Handle("POST /deals/{id}/reassign", gate(manager, h.Deals.Reassign))
	mux.HandleFunc("GET /deals/{id}/history", h.Deals.History)
	mux.HandleFunc("GET /deals/{id}/activities", h.Deals.Activities)
	mux.HandleFunc("POST /deals/{id}/activities", h.Deals.AddActivity)

	// Tasks
	mux.HandleFunc("GET /tasks", h.Tasks.List)
	mux.HandleFunc("POST /tasks", h.Tasks.Create)
	mux.HandleFunc("GET /tasks/overdue", h.Tasks.Overdue)
	mux.HandleFunc("GET /tasks/{id}", h.Tasks.Get)
	mux.HandleFunc("PATCH /tasks/{id}", h.Tasks.Update)
	mux.HandleFunc("DELETE /tasks/{id}", h.Tasks.Delete)
	mux.HandleFunc("POST /tasks/{id}/status", h.Tasks.UpdateStatus)

	// Notes, communications, documents
	mux.HandleFunc("GET /notes", h.Records.ListNotes)
	mux.HandleFunc("POST /notes", h.Records.AddNote)
	mux.HandleFunc("GET /communications", h.Records.ListCommunications)
	mux.HandleFunc("POST /communications", h.Records.LogCommunication)
	mux.HandleFunc("GET /documents", h.Documents.List)
	mux.HandleFunc("POST /documents", h.Documents.Upload)
	mux.HandleFunc("GET /documents/{id}/url", h.Documents.SignedURL)
	mux.HandleFunc("DELETE /documents/{id}", h.Documents.Delete)

	// Reports
	mux.HandleFunc("GET /analytics/dashboard", h.Reports.Dashboard)
	mux.Handle("GET /reports/export", gate(manager, h.Reports.Export))

	// Admin
	mux.Handle("GET /admin/users", gate(admin, h.Admin.ListUsers))
	mux.Handle("PATCH /admin/users/{id}/role", gate(admin, h.Admin.SetUserRole))
	mux.Handle("PATCH /admin/users/{id}/status", gate(admin, h.Admin.SetUserStatus))
	mux.Handle("GET /admin/audit-logs", gate(admin, h.Admin.AuditLogs))

	// Teams
	mux.Handle("GET /teams", gate(manager, h.Teams.List))
	mux.Handle("POST /teams", gate(manager, h.Teams.Create))
	mux.Handle("GET /teams/{id}", gate(manager, h.Teams.Get))
	mux.Handle("PATCH /teams/{id}", gate(manager, h.Teams.Update))
	mux.Handle("DELETE /teams/{id}", gate(manager, h.Teams.Delete))
	mux.Handle("POST /teams/{id}/members", gate(manager, h.Teams.AddMember))
	mux.Handle("PATCH /teams/{id}/members/{userID}", gate(manager, h.Teams.UpdateMemberRole))
	mux.Handle("DELETE /teams/{id}/members/{userID}", gate(manager, h.Teams.RemoveMember))

	return mux
}
