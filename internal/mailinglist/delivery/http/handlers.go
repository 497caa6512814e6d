package http

import (
	"context"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/pkg/response"
)

// withController runs fn with the caller's controller, or answers 500 when
// the session middleware did not run.
func (h *handler) withController(c *gin.Context, fn func(ctrl mailinglist.Controller)) {
	ctrl, ok := h.controller(c)
	if !ok {
		h.l.Errorf(c.Request.Context(), "mailinglist.delivery.http: %v", errNoSession)
		response.Error(c, errNoSession)
		return
	}
	fn(ctrl)
}

// fail answers with the mapped error and the current view so clients can render the notice.
func (h *handler) fail(c *gin.Context, ctrl mailinglist.Controller, err error) {
	response.ErrorWithData(c, h.mapError(err), h.newSnapshotResp(ctrl.Snapshot()))
}

// Snapshot godoc
// @Summary     Get the mailing list view
// @Description Returns the collection, the filtered view, the dialog state and the pending notice.
// @Tags        MailingLists
// @Produce     json
// @Param       X-Session-ID header string false "Session id"
// @Success     200 {object} snapshotResp
// @Router      /api/v1/mailing-lists [GET]
func (h *handler) Snapshot(c *gin.Context) {
	h.withController(c, func(ctrl mailinglist.Controller) {
		response.OK(c, h.newSnapshotResp(ctrl.Snapshot()))
	})
}

// Load godoc
// @Summary     Reload mailing lists
// @Description Replaces the collection with the remote one. On failure the previous items are kept.
// @Tags        MailingLists
// @Produce     json
// @Success     200 {object} snapshotResp
// @Failure     502 {object} response.Resp "Remote API error"
// @Router      /api/v1/mailing-lists/load [POST]
func (h *handler) Load(c *gin.Context) {
	h.withController(c, func(ctrl mailinglist.Controller) {
		if err := ctrl.Load(c.Request.Context()); err != nil {
			h.fail(c, ctrl, err)
			return
		}
		response.OK(c, h.newSnapshotResp(ctrl.Snapshot()))
	})
}

// Filter godoc
// @Summary     Set search text and status filter
// @Tags        MailingLists
// @Accept      json
// @Produce     json
// @Param       body body filterReq true "Filters"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/mailing-lists/filter [PUT]
func (h *handler) Filter(c *gin.Context) {
	h.withController(c, func(ctrl mailinglist.Controller) {
		req, err := h.processFilterReq(c)
		if err != nil {
			response.Error(c, err)
			return
		}

		ctrl.SetSearch(req.Search)
		if err := ctrl.SetStatusFilter(mailinglist.Status(req.Status)); err != nil {
			response.Error(c, h.mapError(err))
			return
		}
		response.OK(c, h.newSnapshotResp(ctrl.Snapshot()))
	})
}

// OpenDialog godoc
// @Summary     Open the create dialog
// @Description Prefills the draft from the caller and loads the project selector.
// @Tags        MailingLists
// @Produce     json
// @Success     200 {object} snapshotResp
// @Router      /api/v1/mailing-lists/dialog [POST]
func (h *handler) OpenDialog(c *gin.Context) {
	h.withController(c, func(ctrl mailinglist.Controller) {
		ctrl.OpenCreateDialog(c.Request.Context())
		response.OK(c, h.newSnapshotResp(ctrl.Snapshot()))
	})
}

// CloseDialog godoc
// @Summary     Close the create dialog
// @Tags        MailingLists
// @Produce     json
// @Success     200 {object} snapshotResp
// @Router      /api/v1/mailing-lists/dialog [DELETE]
func (h *handler) CloseDialog(c *gin.Context) {
	h.withController(c, func(ctrl mailinglist.Controller) {
		ctrl.CloseCreateDialog()
		response.OK(c, h.newSnapshotResp(ctrl.Snapshot()))
	})
}

// SetDraft godoc
// @Summary     Replace the create form draft
// @Tags        MailingLists
// @Accept      json
// @Produce     json
// @Param       body body draftReq true "Draft"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/mailing-lists/draft [PUT]
func (h *handler) SetDraft(c *gin.Context) {
	h.withController(c, func(ctrl mailinglist.Controller) {
		req, err := h.processDraftReq(c)
		if err != nil {
			response.Error(c, err)
			return
		}
		ctrl.SetDraft(req.toDraft())
		response.OK(c, h.newSnapshotResp(ctrl.Snapshot()))
	})
}

// Create godoc
// @Summary     Create a mailing list
// @Description Submits the draft. A body, when sent, replaces the draft first.
// @Tags        MailingLists
// @Accept      json
// @Produce     json
// @Param       body body draftReq false "Draft"
// @Success     200 {object} itemActionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Not authenticated"
// @Failure     502 {object} response.Resp "Remote API error"
// @Router      /api/v1/mailing-lists [POST]
func (h *handler) Create(c *gin.Context) {
	h.withController(c, func(ctrl mailinglist.Controller) {
		req, err := h.processDraftReq(c)
		switch {
		case errors.Is(err, io.EOF):
			// no body, submit the staged draft
		case err != nil:
			response.Error(c, err)
			return
		default:
			ctrl.SetDraft(req.toDraft())
		}

		item, err := ctrl.Create(c.Request.Context())
		if err != nil {
			h.fail(c, ctrl, err)
			return
		}
		response.OK(c, h.newItemActionResp(item, ctrl.Snapshot()))
	})
}

// Toggle godoc
// @Summary     Toggle a mailing list status
// @Tags        MailingLists
// @Produce     json
// @Param       id path int true "Mailing list ID"
// @Success     200 {object} itemActionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Remote API error"
// @Router      /api/v1/mailing-lists/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	h.withController(c, func(ctrl mailinglist.Controller) {
		req, err := h.processIDReq(c)
		if err != nil {
			response.Error(c, err)
			return
		}

		item, err := ctrl.ToggleStatus(c.Request.Context(), req.ID)
		if err != nil {
			h.fail(c, ctrl, err)
			return
		}
		response.OK(c, h.newItemActionResp(item, ctrl.Snapshot()))
	})
}

// Remove godoc
// @Summary     Delete a mailing list
// @Description Requires confirm=true. Without it nothing is sent to the remote.
// @Tags        MailingLists
// @Produce     json
// @Param       id      path  int  true "Mailing list ID"
// @Param       confirm query bool true "Confirm the deletion"
// @Success     200 {object} snapshotResp
// @Failure     428 {object} response.Resp "Not confirmed"
// @Failure     502 {object} response.Resp "Remote API error"
// @Router      /api/v1/mailing-lists/{id} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	h.withController(c, func(ctrl mailinglist.Controller) {
		req, err := h.processRemoveReq(c)
		if err != nil {
			response.Error(c, err)
			return
		}

		confirm := func(context.Context, string) bool { return req.Confirm }
		if err := ctrl.Remove(c.Request.Context(), req.ID, confirm); err != nil {
			h.fail(c, ctrl, err)
			return
		}
		response.OK(c, h.newSnapshotResp(ctrl.Snapshot()))
	})
}

// DismissNotice godoc
// @Summary     Dismiss the pending notice
// @Tags        MailingLists
// @Produce     json
// @Success     200 {object} snapshotResp
// @Router      /api/v1/mailing-lists/notice [DELETE]
func (h *handler) DismissNotice(c *gin.Context) {
	h.withController(c, func(ctrl mailinglist.Controller) {
		ctrl.DismissNotice()
		response.OK(c, h.newSnapshotResp(ctrl.Snapshot()))
	})
}
