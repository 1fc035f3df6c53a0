package leave

import "context"

type StoreAPI interface {
	// Create inserts the entry. Approved entries adjust the employee balance
	// in the same transaction.
	Create(ctx context.Context, e LeaveEntry) (LeaveEntry, error)
	// Settle moves a pending entry to status, adjusting the balance on approval.
	Settle(ctx context.Context, id string, status Status) (LeaveEntry, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveEntry, error)
	Summary(ctx context.Context, employeeID string) (LeaveSummary, error)
}
