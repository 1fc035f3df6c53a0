package task

import "context"

type StoreAPI interface {
	Create(ctx context.Context, t Task) (Task, error)
	Update(ctx context.Context, t Task) (Task, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (Task, error)
	List(ctx context.Context) ([]Task, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Task, error)
}
