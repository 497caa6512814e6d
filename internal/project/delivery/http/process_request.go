package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create project body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processDetailReq binds the project id from the URI.
func (h *handler) processDetailReq(c *gin.Context) (detailReq, error) {
	var req detailReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	return req, nil
}
