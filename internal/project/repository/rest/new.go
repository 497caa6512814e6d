package rest

import (
	"fmt"

	"collab-dashboard/internal/project/repository"
	"collab-dashboard/pkg/apigateway"
	"collab-dashboard/pkg/log"
)

// Resources is the part of the API gateway this repository calls.
type Resources interface {
	Resource(path string) apigateway.Resource
}

type implRepository struct {
	projects apigateway.Resource
	groups   apigateway.Resource
	l        log.Logger
}

// New creates a REST-backed project Repository.
func New(gw Resources, l log.Logger) repository.Repository {
	if gw == nil {
		panic("project/repository/rest: gateway is required")
	}
	return &implRepository{
		projects: gw.Resource(apigateway.PathProjects),
		groups:   gw.Resource(apigateway.PathGroups),
		l:        l,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("project/repository/rest.%s", method)
}

