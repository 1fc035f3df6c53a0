package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/platform/metrics"
)

type stubAuthenticator struct {
	user auth.UserContext
	err  error
}

func (s stubAuthenticator) Authenticate(context.Context, string) (auth.UserContext, error) {
	return s.user, s.err
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
}

func TestAuthMiddlewareSetsUser(t *testing.T) {
	want := auth.UserContext{UserID: "u1", Role: auth.RoleAdmin}
	var got auth.UserContext
	handler := Auth(stubAuthenticator{user: want})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, want, got)
}

func TestAuthMiddlewareMissingTokenIsAnonymous(t *testing.T) {
	called := false
	handler := Auth(stubAuthenticator{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := GetUser(r.Context())
		assert.False(t, ok)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	handler := Auth(stubAuthenticator{err: auth.ErrInvalidToken})(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer nope")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req.Header.Set("Authorization", "Basic abc")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareStoreFailureIs500(t *testing.T) {
	handler := Auth(stubAuthenticator{err: errors.New("db down")})(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequirePermission(t *testing.T) {
	handler := RequirePermission(auth.PermPayrollRun)(http.HandlerFunc(okHandler))

	cases := []struct {
		name string
		ctx  context.Context
		want int
	}{
		{"anonymous", context.Background(), http.StatusUnauthorized},
		{"guest", WithUser(context.Background(), auth.UserContext{UserID: "g", Role: auth.RoleGuest}), http.StatusForbidden},
		{"user", WithUser(context.Background(), auth.UserContext{UserID: "u", Role: auth.RoleUser}), http.StatusForbidden},
		{"admin", WithUser(context.Background(), auth.UserContext{UserID: "a", Role: auth.RoleAdmin}), http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil).WithContext(tc.ctx))
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestRequireUser(t *testing.T) {
	handler := RequireUser(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	ctx := WithUser(context.Background(), auth.UserContext{UserID: "g", Role: auth.RoleGuest})
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLoggerRecordsMetrics(t *testing.T) {
	var logs strings.Builder
	m := metrics.New()
	log := slog.New(slog.NewJSONHandler(&logs, nil))
	handler := Logger(log, m)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "418")))
	assert.Contains(t, logs.String(), `"status":418`)
	assert.Contains(t, logs.String(), `"path":"/healthz"`)
}

func TestRecoverer(t *testing.T) {
	handler := Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestBodyLimitRejectsDeclaredOversize(t *testing.T) {
	handler := BodyLimit(1024)(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 2048)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimitByClientIP(t *testing.T) {
	limited := RateLimit(1, nil)(http.HandlerFunc(okHandler))

	first := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	first.RemoteAddr = "203.0.113.10:4444"
	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, first)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	second := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	second.RemoteAddr = "203.0.113.10:5555"
	rec = httptest.NewRecorder()
	limited.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	other := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	other.RemoteAddr = "198.51.100.7:1234"
	rec = httptest.NewRecorder()
	limited.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestClientIPKeyPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "192.0.2.1, 10.0.0.1")
	assert.Equal(t, "192.0.2.1", clientIPKey(req))
}

func TestSecureHeaders(t *testing.T) {
	tests := []struct {
		name      string
		prod      bool
		path      string
		proto     string
		wantCache string
		wantHSTS  bool
	}{
		{name: "api response is not cached", path: "/api/v1/me/payslips", wantCache: "no-store"},
		{name: "health check may be cached", path: "/healthz"},
		{name: "hsts behind tls proxy in production", prod: true, path: "/api/v1/me", proto: "https", wantCache: "no-store", wantHSTS: true},
		{name: "no hsts over plain http", prod: true, path: "/api/v1/me", wantCache: "no-store"},
		{name: "no hsts outside production", path: "/api/v1/me", proto: "https", wantCache: "no-store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tt.proto)
			}
			rec := httptest.NewRecorder()
			SecureHeaders(tt.prod)(http.HandlerFunc(okHandler)).ServeHTTP(rec, req)

			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
			assert.Equal(t, tt.wantCache, rec.Header().Get("Cache-Control"))
			assert.Equal(t, tt.wantHSTS, rec.Header().Get("Strict-Transport-Security") != "")
		})
	}
}

func TestHeadersCustomPolicy(t *testing.T) {
	policy := HeaderPolicy{
		Always:        [][2]string{{"X-Robots-Tag", "noindex"}},
		Private:       [][2]string{{"Cache-Control", "private"}},
		PrivatePrefix: "/internal/",
	}
	rec := httptest.NewRecorder()
	Headers(policy)(http.HandlerFunc(okHandler)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/internal/x", nil))
	assert.Equal(t, "noindex", rec.Header().Get("X-Robots-Tag"))
	assert.Equal(t, "private", rec.Header().Get("Cache-Control"))
	assert.Empty(t, rec.Header().Get("X-Content-Type-Options"))
}
