package employee

import "hrdesk/internal/platform/apperr"

var (
	ErrEmployeeNotFound = apperr.New(apperr.KindNotFound, "employee not found")
	ErrNameRequired     = apperr.New(apperr.KindValidation, "name is required")
	ErrInvalidEmail     = apperr.New(apperr.KindValidation, "email is malformed")
	ErrJoiningDate      = apperr.New(apperr.KindValidation, "joiningDate is required")
)
