package payroll

import "hrdesk/internal/platform/apperr"

var (
	ErrInvalidMonth     = apperr.New(apperr.KindValidation, "month must be between 1 and 12")
	ErrInvalidYear      = apperr.New(apperr.KindValidation, "year must be a four-digit year")
	ErrPayslipNotFound  = apperr.New(apperr.KindNotFound, "payslip not found")
	ErrEmployeeNotFound = apperr.New(apperr.KindNotFound, "employee not found")
)
