package contact

import "context"

type StoreAPI interface {
	Create(ctx context.Context, m Message) (Message, error)
	List(ctx context.Context) ([]Message, error)
	Get(ctx context.Context, id string) (Message, error)
}
