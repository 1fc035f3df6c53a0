package employee

import (
	"context"

	"hrdesk/internal/domain/compensation"
)

type StoreAPI interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	Get(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	UpdateSalary(ctx context.Context, id string, salary compensation.Salary) error
}
