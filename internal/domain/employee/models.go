package employee

import (
	"hrdesk/internal/domain/compensation"
	"hrdesk/internal/platform/wireint"
	"hrdesk/internal/platform/wiretime"
)

type Employee struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	JobTitle         string              `json:"jobTitle"`
	Department       string              `json:"department"`
	Email            string              `json:"email"`
	JoiningDate      wiretime.Nanos      `json:"joiningDate"`
	LeaveBalance     int64               `json:"leaveBalance,string"`
	TotalLeavesTaken int64               `json:"totalLeavesTaken,string"`
	Salary           compensation.Salary `json:"salary"`
	Bonus            int64               `json:"bonus,string"`
	PFDetails        string              `json:"pfDetails"`
	IsOpen           bool                `json:"isOpen"`
	CreatedAt        wiretime.Nanos      `json:"createdAt"`
}

// Breakdown is the display breakdown of the employee's current salary.
func (e Employee) Breakdown() compensation.Breakdown {
	s := e.Salary
	s.Bonus = compensation.EffectiveBonus(e.Salary, e.Bonus)
	return compensation.Calculate(s)
}

// CreateInput is the new-employee payload. JoiningDate is a pointer so the
// epoch itself is a valid date and only an absent field is missing.
type CreateInput struct {
	Name        string          `json:"name" validate:"required"`
	JobTitle    string          `json:"jobTitle"`
	Department  string          `json:"department"`
	Email       string          `json:"email" validate:"omitempty,email"`
	JoiningDate *wiretime.Nanos `json:"joiningDate" validate:"required"`
	BaseSalary  wireint.Int     `json:"baseSalary" validate:"gte=0"`
	Bonus       wireint.Int     `json:"bonus" validate:"gte=0"`
	PFDetails   string          `json:"pfDetails"`
}
