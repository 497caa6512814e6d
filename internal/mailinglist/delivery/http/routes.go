package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The group must already carry the session middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.Snapshot)
	rg.POST("", h.Create)
	rg.POST("/load", h.Load)
	rg.PUT("/filter", h.Filter)
	rg.POST("/dialog", h.OpenDialog)
	rg.DELETE("/dialog", h.CloseDialog)
	rg.PUT("/draft", h.SetDraft)
	rg.DELETE("/notice", h.DismissNotice)
	rg.POST("/:id/toggle", h.Toggle)
	rg.DELETE("/:id", h.Remove)
}
