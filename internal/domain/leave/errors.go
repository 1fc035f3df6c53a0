package leave

import "hrdesk/internal/platform/apperr"

var (
	ErrInvalidDateRange   = apperr.New(apperr.KindInvalidDateRange, "endDate must not be before startDate")
	ErrEmployeeIDRequired = apperr.New(apperr.KindValidation, "employeeId is required")
	ErrLeaveTypeRequired  = apperr.New(apperr.KindValidation, "leaveType is required")
	ErrReasonRequired     = apperr.New(apperr.KindValidation, "reason is required")
	ErrDateRequired       = apperr.New(apperr.KindValidation, "leave dates are required")
	ErrEntryNotFound      = apperr.New(apperr.KindNotFound, "leave entry not found")
	ErrEmployeeNotFound   = apperr.New(apperr.KindNotFound, "employee not found")
	ErrNotPending         = apperr.New(apperr.KindInvalidState, "only pending leave entries can be approved or rejected")
)
