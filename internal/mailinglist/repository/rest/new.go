package rest

import (
	"fmt"

	"collab-dashboard/internal/mailinglist/repository"
	"collab-dashboard/pkg/apigateway"
	"collab-dashboard/pkg/log"
)

// Resources is the part of the API gateway this repository calls.
type Resources interface {
	Resource(path string) apigateway.Resource
}

type implRepository struct {
	lists apigateway.Resource
	l     log.Logger
}

// New creates a REST-backed mailing list Repository.
func New(gw Resources, l log.Logger) repository.Repository {
	if gw == nil {
		panic("mailinglist/repository/rest: gateway is required")
	}
	return &implRepository{
		lists: gw.Resource(apigateway.PathMailingLists),
		l:     l,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("mailinglist/repository/rest.%s", method)
}
