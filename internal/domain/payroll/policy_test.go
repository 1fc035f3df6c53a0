package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hrdesk/internal/domain/compensation"
	"hrdesk/internal/domain/employee"
)

func TestValidatePeriod(t *testing.T) {
	cases := []struct {
		period Period
		want   error
	}{
		{Period{Month: 1, Year: 2024}, nil},
		{Period{Month: 12, Year: 9999}, nil},
		{Period{Month: 0, Year: 2024}, ErrInvalidMonth},
		{Period{Month: 13, Year: 2024}, ErrInvalidMonth},
		{Period{Month: 6, Year: 999}, ErrInvalidYear},
		{Period{Month: 6, Year: 10000}, ErrInvalidYear},
	}
	for _, tc := range cases {
		err := ValidatePeriod(tc.period)
		if tc.want == nil {
			assert.NoError(t, err, "%+v", tc.period)
			continue
		}
		assert.ErrorIs(t, err, tc.want, "%+v", tc.period)
	}
}

func TestPreviousPeriod(t *testing.T) {
	assert.Equal(t, Period{Month: 12, Year: 2023}, PreviousPeriod(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, Period{Month: 2, Year: 2024}, PreviousPeriod(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)))
}

func TestSortForDisplay(t *testing.T) {
	payslips := []Payslip{
		{ID: "a", Month: 3, Year: 2023},
		{ID: "b", Month: 1, Year: 2024},
		{ID: "c", Month: 11, Year: 2023},
		{ID: "d", Month: 1, Year: 2024},
	}

	SortForDisplay(payslips)
	assert.Equal(t, []string{"b", "d", "c", "a"}, ids(payslips))

	SortForDisplay(payslips)
	assert.Equal(t, []string{"b", "d", "c", "a"}, ids(payslips))
}

func TestSnapshot(t *testing.T) {
	e := employee.Employee{
		ID:           "e-1",
		LeaveBalance: 20,
		Salary:       compensation.NewSalary(50000, 0),
		Bonus:        6000,
	}

	p := Snapshot(e, Period{Month: 5, Year: 2024})
	assert.Equal(t, "e-1", p.EmployeeID)
	assert.Equal(t, int64(20), p.LeaveBalance)
	assert.Equal(t, compensation.Salary{Base: 50000, Bonus: 6000, PFDeduction: 6000, FinalPayable: 50000}, p.SalaryDetails)
}

func ids(payslips []Payslip) []string {
	out := make([]string, 0, len(payslips))
	for _, p := range payslips {
		out = append(out, p.ID)
	}
	return out
}
