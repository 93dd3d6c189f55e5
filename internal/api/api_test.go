package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAdminService struct {
	mock.Mock
}

func (m *mockAdminService) Register(ctx context.Context, input service.RegisterAdminInput) (*domain.AdminAccount, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminAccount), args.Error(1)
}

func (m *mockAdminService) CreateByOperator(ctx context.Context, input service.RegisterAdminInput) (*domain.AdminAccount, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminAccount), args.Error(1)
}

func (m *mockAdminService) Approve(ctx context.Context, actingAdminID, targetAdminID int32) (*domain.AdminAccount, error) {
	args := m.Called(ctx, actingAdminID, targetAdminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminAccount), args.Error(1)
}

func (m *mockAdminService) SetStatus(ctx context.Context, actingAdminID, targetAdminID int32, status domain.AccountStatus) (*domain.AdminAccount, error) {
	args := m.Called(ctx, actingAdminID, targetAdminID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminAccount), args.Error(1)
}

func (m *mockAdminService) List(ctx context.Context, role domain.Role) ([]domain.AdminAccount, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdminAccount), args.Error(1)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*domain.AdminAccount, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.AdminAccount), args.String(1), args.Error(2)
}

func (m *mockAuthService) CurrentSession(ctx context.Context, token string) (*domain.AdminAccount, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminAccount), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func newTestServer(adminSvc service.AdminService, authSvc service.AuthService) *Server {
	return NewServer(adminSvc, authSvc, nil, nil, nil, nil, time.Hour)
}

func actingCountryAdmin() *domain.AdminAccount {
	return &domain.AdminAccount{
		ID: 1, Username: "pk-admin", Role: domain.RoleCountryAdmin, Status: domain.StatusActive,
	}
}

func withSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok"})
	return req
}

func TestRegisterEndpointCreated(t *testing.T) {
	adminSvc := &mockAdminService{}
	adminSvc.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterAdminInput) bool {
		return in.Username == "lahore-admin" && in.Role == domain.RoleCityAdmin
	})).Return(&domain.AdminAccount{ID: 2, Username: "lahore-admin", Status: domain.StatusPending}, nil)

	srv := newTestServer(adminSvc, &mockAuthService{})
	body := `{"name":"A","username":"lahore-admin","email":"a@example.com","password":"pw","role":"city_admin","managed_entities":{"country":"pk-admin"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got domain.AdminAccount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestRegisterEndpointMissingFields(t *testing.T) {
	srv := newTestServer(&mockAdminService{}, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/register", strings.NewReader(`{"username":"x"}`))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterEndpointMissingName(t *testing.T) {
	adminSvc := &mockAdminService{}
	srv := newTestServer(adminSvc, &mockAuthService{})
	body := `{"username":"noname","email":"n@example.com","password":"pw","role":"city_admin"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	adminSvc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegisterEndpointUnknownRole(t *testing.T) {
	srv := newTestServer(&mockAdminService{}, &mockAuthService{})
	body := `{"name":"X","username":"x","email":"x@example.com","password":"pw","role":"superuser"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	adminSvc := &mockAdminService{}
	adminSvc.On("Register", mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateIdentity)

	srv := newTestServer(adminSvc, &mockAuthService{})
	body := `{"name":"Dup","username":"dup","email":"dup@example.com","password":"pw","role":"city_admin"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginSetsCookie(t *testing.T) {
	authSvc := &mockAuthService{}
	authSvc.On("Login", mock.Anything, "pk-admin", "pw").
		Return(actingCountryAdmin(), "signed-token", nil)

	srv := newTestServer(&mockAdminService{}, authSvc)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"pk-admin","password":"pw"}`))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginPendingAccount(t *testing.T) {
	authSvc := &mockAuthService{}
	authSvc.On("Login", mock.Anything, "pending-admin", "pw").
		Return(nil, "", &domain.AccountNotActiveError{Status: domain.StatusPending})

	srv := newTestServer(&mockAdminService{}, authSvc)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"pending-admin","password":"pw"}`))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	var resp struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestLoginBadCredentials(t *testing.T) {
	authSvc := &mockAuthService{}
	authSvc.On("Login", mock.Anything, "x", "bad").Return(nil, "", domain.ErrInvalidCredentials)

	srv := newTestServer(&mockAdminService{}, authSvc)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"x","password":"bad"}`))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCurrentRequiresCookie(t *testing.T) {
	srv := newTestServer(&mockAdminService{}, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/api/admin/current", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCurrentReturnsAccount(t *testing.T) {
	authSvc := &mockAuthService{}
	authSvc.On("CurrentSession", mock.Anything, "tok").Return(actingCountryAdmin(), nil)

	srv := newTestServer(&mockAdminService{}, authSvc)
	req := withSession(httptest.NewRequest(http.MethodGet, "/api/admin/current", nil))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.AdminAccount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "pk-admin", got.Username)
}

func TestCurrentDeadSessionClearsCookie(t *testing.T) {
	authSvc := &mockAuthService{}
	authSvc.On("CurrentSession", mock.Anything, "tok").Return(nil, domain.ErrUnauthenticated)

	srv := newTestServer(&mockAdminService{}, authSvc)
	req := withSession(httptest.NewRequest(http.MethodGet, "/api/admin/current", nil))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestApproveMapsOutcomes(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"self approval", domain.ErrSelfApproval, http.StatusBadRequest},
		{"insufficient rank", domain.ErrInsufficientRank, http.StatusForbidden},
		{"outside jurisdiction", domain.ErrOutsideJurisdiction, http.StatusForbidden},
		{"unknown role", domain.ErrUnknownRole, http.StatusForbidden},
		{"missing target", domain.ErrNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			authSvc := &mockAuthService{}
			authSvc.On("CurrentSession", mock.Anything, "tok").Return(actingCountryAdmin(), nil)
			adminSvc := &mockAdminService{}
			adminSvc.On("Approve", mock.Anything, int32(1), int32(2)).Return(nil, tc.err)

			srv := newTestServer(adminSvc, authSvc)
			req := withSession(httptest.NewRequest(http.MethodPost, "/api/admins/2/approve", nil))
			rec := httptest.NewRecorder()
			srv.Router().ServeHTTP(rec, req)
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestApproveSuccessUsesSessionIdentity(t *testing.T) {
	authSvc := &mockAuthService{}
	authSvc.On("CurrentSession", mock.Anything, "tok").Return(actingCountryAdmin(), nil)

	approved := &domain.AdminAccount{ID: 2, Username: "lahore-admin", Status: domain.StatusActive}
	adminSvc := &mockAdminService{}
	// The acting id must come from the session, never from the request body.
	adminSvc.On("Approve", mock.Anything, int32(1), int32(2)).Return(approved, nil)

	srv := newTestServer(adminSvc, authSvc)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/admins/2/approve", strings.NewReader(`{"acting_admin_id":999}`)))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	adminSvc.AssertExpectations(t)
}

func TestSetStatusEndpoint(t *testing.T) {
	authSvc := &mockAuthService{}
	authSvc.On("CurrentSession", mock.Anything, "tok").Return(actingCountryAdmin(), nil)

	suspended := &domain.AdminAccount{ID: 2, Status: domain.StatusSuspended}
	adminSvc := &mockAdminService{}
	adminSvc.On("SetStatus", mock.Anything, int32(1), int32(2), domain.StatusSuspended).Return(suspended, nil)

	srv := newTestServer(adminSvc, authSvc)
	req := withSession(httptest.NewRequest(http.MethodPatch, "/api/admins/2/status", strings.NewReader(`{"status":"suspended"}`)))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	adminSvc.AssertExpectations(t)
}

func TestListAdminsPassesRoleFilter(t *testing.T) {
	authSvc := &mockAuthService{}
	authSvc.On("CurrentSession", mock.Anything, "tok").Return(actingCountryAdmin(), nil)

	adminSvc := &mockAdminService{}
	adminSvc.On("List", mock.Anything, domain.RoleCityAdmin).Return([]domain.AdminAccount{}, nil)

	srv := newTestServer(adminSvc, authSvc)
	req := withSession(httptest.NewRequest(http.MethodGet, "/api/admins?level=city_admin", nil))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	adminSvc.AssertExpectations(t)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(&mockAdminService{}, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
