package http

import (
	"github.com/gin-gonic/gin"

	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/pkg/log"
)

// ControllerFunc resolves the mailing list controller of the calling client.
type ControllerFunc func(c *gin.Context) (mailinglist.Controller, bool)

type handler struct {
	l          log.Logger
	controller ControllerFunc
}

// New creates a new HTTP handler for the mailing list view.
func New(l log.Logger, controller ControllerFunc) *handler {
	return &handler{
		l:          l,
		controller: controller,
	}
}
