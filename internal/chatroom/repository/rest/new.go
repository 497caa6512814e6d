package rest

import (
	"context"
	"encoding/json"
	"fmt"

	"collab-dashboard/internal/chatroom/repository"
	"collab-dashboard/pkg/apigateway"
	"collab-dashboard/pkg/log"
)

// Gateway is the part of the API gateway this repository calls.
type Gateway interface {
	Resource(path string) apigateway.Resource
	Call(ctx context.Context, method, path string, body any) (json.RawMessage, error)
}

type implRepository struct {
	gw    Gateway
	rooms apigateway.Resource
	l     log.Logger
}

// New creates a REST-backed chat room Repository.
func New(gw Gateway, l log.Logger) repository.Repository {
	if gw == nil {
		panic("chatroom/repository/rest: gateway is required")
	}
	return &implRepository{
		gw:    gw,
		rooms: gw.Resource(apigateway.PathRooms),
		l:     l,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chatroom/repository/rest.%s", method)
}
