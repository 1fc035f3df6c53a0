package leave

import "hrdesk/internal/platform/wiretime"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// GeneralLeaveType is recorded for HR multi-day entries, which carry no type.
const GeneralLeaveType = "General"

type LeaveEntry struct {
	ID         string         `json:"id"`
	EmployeeID string         `json:"employeeId"`
	StartDate  wiretime.Nanos `json:"startDate"`
	EndDate    wiretime.Nanos `json:"endDate"`
	LeaveType  string         `json:"leaveType"`
	Reason     string         `json:"reason"`
	Status     Status         `json:"status"`
	IsOpen     bool           `json:"isOpen"`
	CreatedAt  wiretime.Nanos `json:"createdAt"`
}

// LeaveSummary is read from the employee record and passed through as is.
type LeaveSummary struct {
	LeaveBalance     int64 `json:"leaveBalance,string"`
	TotalLeavesTaken int64 `json:"totalLeavesTaken,string"`
}

// Submission dates are pointers: nil means absent, while zero is 1970-01-01.
type Submission struct {
	EmployeeID string          `json:"employeeId"`
	StartDate  *wiretime.Nanos `json:"startDate"`
	EndDate    *wiretime.Nanos `json:"endDate"`
	LeaveType  string          `json:"leaveType"`
	Reason     string          `json:"reason"`
}

type QuickMarkRequest struct {
	EmployeeID string          `json:"employeeId" validate:"required"`
	LeaveDate  *wiretime.Nanos `json:"leaveDate" validate:"required"`
	LeaveType  string          `json:"leaveType" validate:"required"`
	Reason     string          `json:"reason" validate:"required"`
}

// Submission returns the single-day range the quick mark stands for.
func (q QuickMarkRequest) Submission() Submission {
	return Submission{
		EmployeeID: q.EmployeeID,
		StartDate:  q.LeaveDate,
		EndDate:    q.LeaveDate,
		LeaveType:  q.LeaveType,
		Reason:     q.Reason,
	}
}
