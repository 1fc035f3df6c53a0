package leave

import (
	"strings"
	"time"

	"hrdesk/internal/platform/wiretime"
)

const day = 24 * time.Hour

// ValidateRange accepts a single-day range and rejects an end before the start.
func ValidateRange(start, end wiretime.Nanos) error {
	if end < start {
		return ErrInvalidDateRange
	}
	return nil
}

// CalculateDays returns the inclusive number of calendar days in the range.
func CalculateDays(start, end wiretime.Nanos) (int64, error) {
	if err := ValidateRange(start, end); err != nil {
		return 0, err
	}
	from := start.Time().Truncate(day)
	to := end.Time().Truncate(day)
	return int64(to.Sub(from)/day) + 1, nil
}

// ValidateSubmission runs every check a submission must pass before it is
// persisted. The date range is checked first.
func ValidateSubmission(s Submission) error {
	if s.StartDate == nil || s.EndDate == nil {
		return ErrDateRequired
	}
	if err := ValidateRange(*s.StartDate, *s.EndDate); err != nil {
		return err
	}
	if strings.TrimSpace(s.EmployeeID) == "" {
		return ErrEmployeeIDRequired
	}
	if strings.TrimSpace(s.LeaveType) == "" {
		return ErrLeaveTypeRequired
	}
	if strings.TrimSpace(s.Reason) == "" {
		return ErrReasonRequired
	}
	return nil
}

func normalize(s Submission) Submission {
	s.EmployeeID = strings.TrimSpace(s.EmployeeID)
	s.LeaveType = strings.TrimSpace(s.LeaveType)
	s.Reason = strings.TrimSpace(s.Reason)
	return s
}
