package http

import (
	"github.com/gin-gonic/gin"

	"collab-dashboard/internal/project"
	"collab-dashboard/pkg/response"
)

func (h *handler) useCase(c *gin.Context) (project.UseCase, bool) {
	uc, ok := h.uc(c)
	if !ok {
		h.l.Errorf(c.Request.Context(), "project.delivery.http: %v", errNoSession)
		response.Error(c, errNoSession)
	}
	return uc, ok
}

// List godoc
// @Summary     List projects
// @Tags        Projects
// @Produce     json
// @Success     200 {object} listResp
// @Failure     502 {object} response.Resp "Remote API error"
// @Router      /api/v1/projects [GET]
func (h *handler) List(c *gin.Context) {
	uc, ok := h.useCase(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	output, err := uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get project detail
// @Tags        Projects
// @Produce     json
// @Param       id path int true "Project ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Remote API error"
// @Router      /api/v1/projects/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	uc, ok := h.useCase(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	req, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := uc.Detail(ctx, req.ID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Create godoc
// @Summary     Create a project
// @Description Short name and group are required. The caller becomes the creator.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Project data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Not authenticated"
// @Failure     502 {object} response.Resp "Remote API error"
// @Router      /api/v1/projects [POST]
func (h *handler) Create(c *gin.Context) {
	uc, ok := h.useCase(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// ListGroups godoc
// @Summary     List groups
// @Description Groups a new project can be attached to.
// @Tags        Projects
// @Produce     json
// @Success     200 {object} groupsResp
// @Failure     502 {object} response.Resp "Remote API error"
// @Router      /api/v1/groups [GET]
func (h *handler) ListGroups(c *gin.Context) {
	uc, ok := h.useCase(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	groups, err := uc.ListGroups(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListGroups: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGroupsResp(groups))
}
