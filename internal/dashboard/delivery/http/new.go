package http

import (
	"github.com/gin-gonic/gin"

	"collab-dashboard/internal/dashboard"
	"collab-dashboard/pkg/log"
)

// UseCaseFunc resolves the dashboard use case bound to the calling client.
type UseCaseFunc func(c *gin.Context) (dashboard.UseCase, bool)

type handler struct {
	l  log.Logger
	uc UseCaseFunc
}

// New creates a new HTTP handler for the dashboard summary.
func New(l log.Logger, uc UseCaseFunc) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
