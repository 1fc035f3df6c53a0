package usershandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

const (
	adminID    = "0d9e8f7a-6b5c-4d3e-8f2a-1b0c9d8e7f6a"
	employeeID = "5f0c2a4e-8d7b-4c1e-9a3f-2b6d8e1f0a11"
)

// memoryStore backs the real auth service so handler tests cover its rules.
type memoryStore struct {
	users map[string]auth.Credentials
	next  int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: map[string]auth.Credentials{
		adminID: {User: auth.User{ID: adminID, Email: "hr@example.com", Role: auth.RoleAdmin}},
	}}
}

func (m *memoryStore) FindByEmail(_ context.Context, email string) (auth.Credentials, error) {
	for _, c := range m.users {
		if c.Email == email {
			return c, nil
		}
	}
	return auth.Credentials{}, auth.ErrUserNotFound
}

func (m *memoryStore) GetUser(_ context.Context, userID string) (auth.User, error) {
	c, ok := m.users[userID]
	if !ok {
		return auth.User{}, auth.ErrUserNotFound
	}
	return c.User, nil
}

func (m *memoryStore) UpdateName(context.Context, string, string) error { return nil }

func (m *memoryStore) AssociateEmployee(context.Context, string, string) error { return nil }

func (m *memoryStore) CreateUser(_ context.Context, user auth.User, hash string) (auth.User, error) {
	for _, c := range m.users {
		if c.Email == user.Email {
			return auth.User{}, auth.ErrEmailTaken
		}
	}
	m.next++
	user.ID = []string{"", "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d", "1b2c3d4e-5f6a-4b7c-8d9e-0f1a2b3c4d5e"}[m.next]
	m.users[user.ID] = auth.Credentials{User: user, PasswordHash: hash}
	return user, nil
}

func (m *memoryStore) ListUsers(context.Context) ([]auth.User, error) {
	out := []auth.User{}
	for _, c := range m.users {
		out = append(out, c.User)
	}
	return out, nil
}

func (m *memoryStore) UpdateRole(_ context.Context, userID, role string) error {
	c, ok := m.users[userID]
	if !ok {
		return auth.ErrUserNotFound
	}
	c.Role = role
	m.users[userID] = c
	return nil
}

func newRouter(svc Service, user *auth.UserContext) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if user != nil {
				req = req.WithContext(middleware.WithUser(req.Context(), *user))
			}
			next.ServeHTTP(w, req)
		})
	})
	NewHandler(svc).RegisterRoutes(r)
	return r
}

func serve(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, api.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var env api.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

var (
	admin    = &auth.UserContext{UserID: adminID, Role: auth.RoleAdmin}
	selfUser = &auth.UserContext{UserID: "u-1", Role: auth.RoleUser, EmployeeID: employeeID}
)

func TestCreatedUserCanLogInWithScopedAccess(t *testing.T) {
	store := newMemoryStore()
	svc := auth.NewService(store, "secret", time.Hour)
	router := newRouter(svc, admin)

	rec, env := serve(t, router, http.MethodPost, "/users",
		`{"email":"priya@example.com","name":"Priya","password":"longenough","role":"user","employeeId":"`+employeeID+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, "%+v", env.Error)
	data := env.Data.(map[string]any)
	assert.Equal(t, "user", data["role"])
	assert.Equal(t, employeeID, data["employeeId"])
	assert.NotContains(t, rec.Body.String(), "longenough")

	login, err := svc.Login(context.Background(), "priya@example.com", "longenough")
	require.NoError(t, err)
	caller, err := svc.Authenticate(context.Background(), login.Token)
	require.NoError(t, err)
	assert.True(t, auth.CanAccessEmployee(caller, employeeID))
	assert.True(t, auth.HasPermission(caller.Role, auth.PermLeaveSelf))

	rec, env = serve(t, router, http.MethodPost, "/users", `{"email":"priya@example.com","password":"longenough"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", env.Error.Code)
}

func TestCreateUserValidation(t *testing.T) {
	router := newRouter(auth.NewService(newMemoryStore(), "secret", time.Hour), admin)

	rec, env := serve(t, router, http.MethodPost, "/users", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", env.Error.Code)

	rec, env = serve(t, router, http.MethodPost, "/users", `{"email":"a@example.com","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", env.Error.Code)
}

func TestAssignRoleAndList(t *testing.T) {
	store := newMemoryStore()
	router := newRouter(auth.NewService(store, "secret", time.Hour), admin)

	rec, env := serve(t, router, http.MethodPost, "/users", `{"email":"visitor@example.com","password":"longenough"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	data := env.Data.(map[string]any)
	assert.Equal(t, "guest", data["role"])
	id := data["id"].(string)

	rec, env = serve(t, router, http.MethodPut, "/users/"+id+"/role", `{"role":"user"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user", env.Data.(map[string]any)["role"])

	rec, env = serve(t, router, http.MethodPut, "/users/"+adminID+"/role", `{"role":"guest"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "invalid_state", env.Error.Code)

	rec, env = serve(t, router, http.MethodPut, "/users/"+id+"/role", `{"role":"owner"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", env.Error.Code)

	rec, env = serve(t, router, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, env.Data, 2)
}

func TestUserRoutesAreAdminOnly(t *testing.T) {
	router := newRouter(auth.NewService(newMemoryStore(), "secret", time.Hour), selfUser)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/users", ""},
		{http.MethodPost, "/users", `{"email":"x@example.com","password":"longenough"}`},
		{http.MethodPut, "/users/" + adminID + "/role", `{"role":"guest"}`},
	} {
		rec, _ := serve(t, router, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusForbidden, rec.Code, tc.path)
	}
}
