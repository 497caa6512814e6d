package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collab-dashboard/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Collaboration dashboard API"
	HealthVersion = "1.0.0"
	ServiceName   = "collab-dashboard"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the session store is in place.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if srv.sessions == nil {
		c.JSON(http.StatusServiceUnavailable, response.Resp{ErrorCode: http.StatusServiceUnavailable, Message: "not ready"})
		return
	}
	response.OK(c, gin.H{
		"status":   "ready",
		"sessions": srv.sessions.Len(),
		"message":  HealthMessage,
		"version":  HealthVersion,
		"service":  ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
