package dashboard

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Summary(ctx context.Context) (Summary, error)
}
