package auth

import "hrdesk/internal/platform/apperr"

var (
	ErrInvalidCredentials = apperr.New(apperr.KindUnauthorized, "invalid email or password")
	ErrInvalidToken       = apperr.New(apperr.KindUnauthorized, "invalid or expired token")
	ErrUserNotFound       = apperr.New(apperr.KindNotFound, "user not found")
	ErrInvalidRole        = apperr.New(apperr.KindValidation, "unknown role")
	ErrNameRequired       = apperr.New(apperr.KindValidation, "name is required")
	ErrAlreadyAssociated  = apperr.New(apperr.KindConflict, "employee is already associated with another user")
	ErrNoEmployee         = apperr.New(apperr.KindNotFound, "no employee record is associated with this account")
	ErrEmployeeNotFound   = apperr.New(apperr.KindNotFound, "employee not found")
	ErrEmailTaken         = apperr.New(apperr.KindConflict, "an account with this email already exists")
	ErrInvalidEmail       = apperr.New(apperr.KindValidation, "email is malformed")
	ErrWeakPassword       = apperr.New(apperr.KindValidation, "password must be at least 8 characters")
	ErrSelfDemotion       = apperr.New(apperr.KindInvalidState, "admins cannot remove their own admin role")
)
