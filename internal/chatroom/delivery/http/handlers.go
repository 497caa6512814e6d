package http

import (
	"github.com/gin-gonic/gin"

	"collab-dashboard/internal/chatroom"
	"collab-dashboard/pkg/response"
)

func (h *handler) useCase(c *gin.Context) (chatroom.UseCase, bool) {
	uc, ok := h.uc(c)
	if !ok {
		h.l.Errorf(c.Request.Context(), "chatroom.delivery.http: %v", errNoSession)
		response.Error(c, errNoSession)
	}
	return uc, ok
}

// List godoc
// @Summary     List discussion rooms
// @Tags        Rooms
// @Produce     json
// @Param       scope query string false "all (default) or mine"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/rooms [GET]
func (h *handler) List(c *gin.Context) {
	uc, ok := h.useCase(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := uc.List(ctx, req.toScope())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// CreateGeneral godoc
// @Summary     Create the general room
// @Tags        Rooms
// @Produce     json
// @Success     200 {object} createGeneralResp
// @Router      /api/v1/rooms/general [POST]
func (h *handler) CreateGeneral(c *gin.Context) {
	uc, ok := h.useCase(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	output, err := uc.CreateGeneral(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateGeneral: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, createGeneralResp{ID: output.ID})
}
