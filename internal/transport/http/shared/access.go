package shared

import (
	"net/http"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/platform/apperr"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

// AuthorizeEmployee writes 401 or 403 and returns false unless the caller may
// read records that belong to employeeID.
func AuthorizeEmployee(w http.ResponseWriter, r *http.Request, employeeID string) bool {
	requestID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, string(apperr.KindUnauthorized), "authentication required", requestID)
		return false
	}
	if !auth.CanAccessEmployee(user, employeeID) {
		api.Fail(w, http.StatusForbidden, string(apperr.KindForbidden), "access to this employee is not allowed", requestID)
		return false
	}
	return true
}

// SelfEmployeeID resolves the employee record linked to the caller.
func SelfEmployeeID(w http.ResponseWriter, r *http.Request) (string, bool) {
	requestID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, string(apperr.KindUnauthorized), "authentication required", requestID)
		return "", false
	}
	if user.EmployeeID == "" {
		api.FailError(w, auth.ErrNoEmployee, requestID)
		return "", false
	}
	return user.EmployeeID, true
}
