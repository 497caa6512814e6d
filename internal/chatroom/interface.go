package chatroom

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, scope Scope) (ListOutput, error)
	CreateGeneral(ctx context.Context) (CreateGeneralOutput, error)
}
