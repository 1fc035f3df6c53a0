package authhandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

type fakeService struct {
	savedName string
}

func (f *fakeService) Login(_ context.Context, email, password string) (auth.LoginResult, error) {
	if email != "hr@example.com" || password != "Secret123!" {
		return auth.LoginResult{}, auth.ErrInvalidCredentials
	}
	return auth.LoginResult{Token: "tok", User: auth.User{ID: "u-1", Email: email, Role: auth.RoleAdmin}}, nil
}

func (f *fakeService) Me(_ context.Context, userID string) (auth.User, error) {
	return auth.User{ID: userID, Role: auth.RoleUser, EmployeeID: "e-1"}, nil
}

func (f *fakeService) SaveProfile(_ context.Context, userID, name string) (auth.User, error) {
	if strings.TrimSpace(name) == "" {
		return auth.User{}, auth.ErrNameRequired
	}
	f.savedName = name
	return auth.User{ID: userID, Name: name}, nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) api.Envelope {
	t.Helper()
	var env api.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHandleLogin(t *testing.T) {
	h := NewHandler(&fakeService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"hr@example.com","password":"Secret123!"}`))
	h.HandleLogin(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"tok"`)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"hr@example.com","password":"wrong"}`))
	h.HandleLogin(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeEnvelope(t, rec).Error.Code)
}

func TestHandleLoginValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":" "}`))
	NewHandler(&fakeService{}).HandleLogin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", decodeEnvelope(t, rec).Error.Code)
}

func TestHandleMeRequiresUser(t *testing.T) {
	h := NewHandler(&fakeService{})

	rec := httptest.NewRecorder()
	h.HandleMe(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	ctx := middleware.WithUser(context.Background(), auth.UserContext{UserID: "u-2", Role: auth.RoleUser})
	rec = httptest.NewRecorder()
	h.HandleMe(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil).WithContext(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"employeeId":"e-1"`)
}

func TestHandleSaveProfile(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc)
	ctx := middleware.WithUser(context.Background(), auth.UserContext{UserID: "u-2", Role: auth.RoleGuest})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/me/profile", strings.NewReader(`{"name":"Dana"}`)).WithContext(ctx)
	h.HandleSaveProfile(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Dana", svc.savedName)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/v1/me/profile", strings.NewReader(`{"name":""}`)).WithContext(ctx)
	h.HandleSaveProfile(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
