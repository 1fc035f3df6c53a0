package jobrole

import "hrdesk/internal/platform/apperr"

var (
	ErrJobRoleNotFound = apperr.New(apperr.KindNotFound, "job role not found")
	ErrTitleRequired   = apperr.New(apperr.KindValidation, "title is required")
	ErrAlreadyClosed   = apperr.New(apperr.KindInvalidState, "job role is already closed")
)
