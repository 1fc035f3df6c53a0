package task

import "hrdesk/internal/platform/apperr"

var (
	ErrTaskNotFound     = apperr.New(apperr.KindNotFound, "task not found")
	ErrEmployeeNotFound = apperr.New(apperr.KindNotFound, "assigned employee not found")
	ErrTitleRequired    = apperr.New(apperr.KindValidation, "title is required")
	ErrDueDateRequired  = apperr.New(apperr.KindValidation, "dueDate is required")
	ErrInvalidPriority  = apperr.New(apperr.KindValidation, "priority must be low, medium or high")
)
