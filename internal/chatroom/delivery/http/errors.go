package http

import (
	"errors"
	"net/http"

	"collab-dashboard/internal/chatroom"
	"collab-dashboard/pkg/apigateway"
	pkgErrors "collab-dashboard/pkg/errors"
)

var errNoSession = pkgErrors.NewHTTPError(http.StatusInternalServerError, "no session bound to request")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	if errors.Is(err, chatroom.ErrInvalidScope) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var apiErr *apigateway.APIError
	if errors.As(err, &apiErr) {
		return pkgErrors.NewHTTPError(http.StatusBadGateway, apiErr.Error())
	}
	return pkgErrors.ErrBadGateway
}
