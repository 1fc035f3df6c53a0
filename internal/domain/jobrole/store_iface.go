package jobrole

import "context"

type StoreAPI interface {
	Create(ctx context.Context, j JobRole) (JobRole, error)
	ListOpen(ctx context.Context) ([]JobRole, error)
	Close(ctx context.Context, id string) (JobRole, error)
}
