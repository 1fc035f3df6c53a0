package payroll

import (
	"hrdesk/internal/domain/compensation"
	"hrdesk/internal/platform/wiretime"
)

// Payslip is the snapshot of an employee's salary and leave balance taken when
// the month was generated.
type Payslip struct {
	ID            string              `json:"id"`
	EmployeeID    string              `json:"employeeId"`
	Month         int                 `json:"month"`
	Year          int                 `json:"year"`
	CreatedAt     wiretime.Nanos      `json:"createdAt"`
	LeaveBalance  int64               `json:"leaveBalance,string"`
	SalaryDetails compensation.Salary `json:"salaryDetails"`
}

type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type GenerateResult struct {
	Period
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
