package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(projects, groups *gin.RouterGroup, h *handler) {
	projects.GET("", h.List)
	projects.POST("", h.Create)
	projects.GET("/:id", h.Detail)

	groups.GET("", h.ListGroups)
}
