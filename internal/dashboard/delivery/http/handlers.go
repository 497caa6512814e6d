package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collab-dashboard/internal/dashboard"
	pkgErrors "collab-dashboard/pkg/errors"
	"collab-dashboard/pkg/response"
)

type summaryResp struct {
	MailingLists       int `json:"mailing_lists"`
	ActiveMailingLists int `json:"active_mailing_lists"`
	Projects           int `json:"projects"`
	Rooms              int `json:"rooms"`
}

func newSummaryResp(s dashboard.Summary) summaryResp {
	return summaryResp{
		MailingLists:       s.MailingLists,
		ActiveMailingLists: s.ActiveMailingLists,
		Projects:           s.Projects,
		Rooms:              s.Rooms,
	}
}

// Summary godoc
// @Summary     Dashboard counters
// @Description Mailing list, project and room counts fetched in parallel.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} summaryResp
// @Failure     500 {object} response.Resp "Remote API error"
// @Router      /api/v1/dashboard/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()
	uc, ok := h.uc(c)
	if !ok {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusInternalServerError, "no session bound to request"))
		return
	}

	out, err := uc.Summary(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, pkgErrors.ErrBadGateway)
		return
	}

	response.OK(c, newSummaryResp(out))
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/summary", h.Summary)
}
