package middleware

import (
	"context"
	"net/http"
	"strings"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/platform/apperr"
	"hrdesk/internal/transport/http/api"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.UserContext, error)
}

// Auth attaches the caller to the context when a bearer token is present.
// Requests without a token continue anonymously; a bad token is rejected.
func Auth(authn Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				api.Fail(w, http.StatusUnauthorized, string(apperr.KindUnauthorized), "malformed authorization header", GetRequestID(r.Context()))
				return
			}

			user, err := authn.Authenticate(r.Context(), parts[1])
			if err != nil {
				if apperr.KindOf(err) == apperr.KindInternal {
					api.FailError(w, err, GetRequestID(r.Context()))
					return
				}
				api.Fail(w, http.StatusUnauthorized, string(apperr.KindUnauthorized), "invalid or expired token", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
