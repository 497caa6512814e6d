package http

import (
	"github.com/gin-gonic/gin"

	"collab-dashboard/internal/project"
	"collab-dashboard/pkg/log"
)

// UseCaseFunc resolves the project use case bound to the calling client.
type UseCaseFunc func(c *gin.Context) (project.UseCase, bool)

type handler struct {
	l  log.Logger
	uc UseCaseFunc
}

// New creates a new HTTP handler for the project domain.
func New(l log.Logger, uc UseCaseFunc) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
