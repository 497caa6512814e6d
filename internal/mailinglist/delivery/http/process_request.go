package http

import (
	"github.com/gin-gonic/gin"
)

// processDraftReq binds and validates the draft body.
func (h *handler) processDraftReq(c *gin.Context) (draftReq, error) {
	var req draftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processFilterReq binds and validates the filter body.
func (h *handler) processFilterReq(c *gin.Context) (filterReq, error) {
	var req filterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processIDReq binds the list id from the URI.
func (h *handler) processIDReq(c *gin.Context) (idReq, error) {
	var req idReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRemoveReq binds the list id and the confirm flag.
func (h *handler) processRemoveReq(c *gin.Context) (removeReq, error) {
	var req removeReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
