package payroll

import "context"

type StoreAPI interface {
	// InsertSnapshots stores every payslip that does not exist yet for its
	// employee and period, returning how many were new.
	InsertSnapshots(ctx context.Context, payslips []Payslip) (int, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
	Get(ctx context.Context, id string) (Payslip, error)
}
