package auth

import (
	"context"

	"collab-dashboard/internal/model"
	"collab-dashboard/pkg/apigateway"
)

// UserContext is the read-only view of the current caller that domain code depends on.
// User returns nil when nobody is authenticated; loading is true until the first fetch resolves.
type UserContext interface {
	User() (user *model.User, loading bool)
}

// IdentityFetcher is the slice of the API gateway that auth needs.
type IdentityFetcher interface {
	Me(ctx context.Context) (*apigateway.Identity, error)
}
