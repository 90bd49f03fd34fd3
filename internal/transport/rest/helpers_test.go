package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/transport/dataloader"
)

//go:generate moq -out lead_service_mock_test.go -pkg rest . leadService
//go:generate moq -out contact_service_mock_test.go -pkg rest . contactService
//go:generate moq -out deal_service_mock_test.go -pkg rest . dealService
//go:generate moq -out task_service_mock_test.go -pkg rest . taskService
//go:generate moq -out note_service_mock_test.go -pkg rest . noteService
//go:generate moq -out communication_service_mock_test.go -pkg rest . communicationService
//go:generate moq -out document_service_mock_test.go -pkg rest . documentService
//go:generate moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate moq -out profile_service_mock_test.go -pkg rest . profileService
//go:generate moq -out user_admin_service_mock_test.go -pkg rest . userAdminService
//go:generate moq -out audit_reader_mock_test.go -pkg rest . auditReader
//go:generate moq -out team_service_mock_test.go -pkg rest . teamService
//go:generate moq -out dashboard_service_mock_test.go -pkg rest . dashboardService
//go:generate moq -out export_service_mock_test.go -pkg rest . exportService

type ownerStub struct {
	owners map[uuid.UUID]domain.OwnerSummary
	err    error
}

func (s *ownerStub) GetSummaries(_ context.Context, ids []uuid.UUID) ([]domain.OwnerSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.OwnerSummary
	for _, id := range ids {
		if o, ok := s.owners[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

// testEnv mounts the full router over mocked services. actor is injected
// in place of the token middleware; nil means anonymous.
type testEnv struct {
	leads     *leadServiceMock
	contacts  *contactServiceMock
	deals     *dealServiceMock
	tasks     *taskServiceMock
	notes     *noteServiceMock
	comms     *communicationServiceMock
	documents *documentServiceMock
	auth      *authServiceMock
	profile   *profileServiceMock
	users     *userAdminServiceMock
	audit     *auditReaderMock
	teams     *teamServiceMock
	stats     *dashboardServiceMock
	exports   *exportServiceMock
	owners    *ownerStub

	actor    *domain.Actor
	maxBytes int64
}

func newTestEnv() *testEnv {
	return &testEnv{
		leads:     &leadServiceMock{},
		contacts:  &contactServiceMock{},
		deals:     &dealServiceMock{},
		tasks:     &taskServiceMock{},
		notes:     &noteServiceMock{},
		comms:     &communicationServiceMock{},
		documents: &documentServiceMock{},
		auth:      &authServiceMock{},
		profile:   &profileServiceMock{},
		users:     &userAdminServiceMock{},
		audit:     &auditReaderMock{},
		teams:     &teamServiceMock{},
		stats:     &dashboardServiceMock{},
		exports:   &exportServiceMock{},
		owners:    &ownerStub{owners: map[uuid.UUID]domain.OwnerSummary{}},
		maxBytes:  1 << 20,
	}
}

func (e *testEnv) as(role domain.Role) *testEnv {
	e.actor = &domain.Actor{UserID: uuid.New(), Role: role}
	return e
}

func (e *testEnv) handler() http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := NewRouter(Handlers{
		Health:    NewHealthHandler("test-version"),
		Auth:      NewAuthHandler(e.auth, log),
		Profile:   NewProfileHandler(e.profile, log),
		Leads:     NewLeadHandler(e.leads, log),
		Contacts:  NewContactHandler(e.contacts, log),
		Deals:     NewDealHandler(e.deals, log),
		Tasks:     NewTaskHandler(e.tasks, log),
		Records:   NewRecordHandler(e.notes, e.comms, log),
		Documents: NewDocumentHandler(e.documents, e.maxBytes, log),
		Reports:   NewReportHandler(e.stats, e.exports, log),
		Admin:     NewAdminHandler(e.users, e.audit, log),
		Teams:     NewTeamHandler(e.teams, log),
	}, func(next http.Handler) http.Handler { return next })

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if e.actor != nil {
			ctx = auth.WithActor(ctx, *e.actor)
		}
		ctx = dataloader.WithLoaders(ctx, dataloader.NewLoaders(e.owners))
		mux.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())
	return v
}

func ptr[T any](v T) *T { return &v }
