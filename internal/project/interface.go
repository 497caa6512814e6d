package project

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context) (ListOutput, error)
	Detail(ctx context.Context, id int64) (DetailOutput, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	ListGroups(ctx context.Context) ([]Group, error)
}
