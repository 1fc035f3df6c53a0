package payroll

import (
	"cmp"
	"slices"
	"time"

	"hrdesk/internal/domain/compensation"
	"hrdesk/internal/domain/employee"
)

func ValidatePeriod(p Period) error {
	if p.Month < 1 || p.Month > 12 {
		return ErrInvalidMonth
	}
	if p.Year < 1000 || p.Year > 9999 {
		return ErrInvalidYear
	}
	return nil
}

// PreviousPeriod is the calendar month before now, in UTC.
func PreviousPeriod(now time.Time) Period {
	first := time.Date(now.UTC().Year(), now.UTC().Month(), 1, 0, 0, 0, 0, time.UTC)
	prev := first.AddDate(0, -1, 0)
	return Period{Month: int(prev.Month()), Year: prev.Year()}
}

// Snapshot captures the employee's current salary breakdown and leave balance
// for the period.
func Snapshot(e employee.Employee, p Period) Payslip {
	b := e.Breakdown()
	return Payslip{
		EmployeeID:   e.ID,
		Month:        p.Month,
		Year:         p.Year,
		LeaveBalance: e.LeaveBalance,
		SalaryDetails: compensation.Salary{
			Base:         b.Base,
			Bonus:        b.Bonus,
			PFDeduction:  b.PFDeduction,
			FinalPayable: b.FinalPayable,
		},
	}
}

// SortForDisplay orders newest period first. Ties keep their input order.
func SortForDisplay(payslips []Payslip) {
	slices.SortStableFunc(payslips, func(a, b Payslip) int {
		if c := cmp.Compare(b.Year, a.Year); c != 0 {
			return c
		}
		return cmp.Compare(b.Month, a.Month)
	})
}
