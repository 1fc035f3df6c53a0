package contact

import "hrdesk/internal/platform/apperr"

var (
	ErrMessageNotFound = apperr.New(apperr.KindNotFound, "contact message not found")
	ErrFieldsRequired  = apperr.New(apperr.KindValidation, "name, email and message are required")
	ErrInvalidEmail    = apperr.New(apperr.KindValidation, "email is not a valid address")
	ErrMessageTooLong  = apperr.Newf(apperr.KindValidation, "message must be at most %d characters", MaxMessageLength)
)
