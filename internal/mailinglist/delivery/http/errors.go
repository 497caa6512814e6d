package http

import (
	"errors"
	"net/http"

	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/pkg/apigateway"
	pkgErrors "collab-dashboard/pkg/errors"
)

var errNoSession = pkgErrors.NewHTTPError(http.StatusInternalServerError, "no session bound to request")

// mapError translates controller errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, mailinglist.ErrNameRequired),
		errors.Is(err, mailinglist.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, mailinglist.ErrNotAuthenticated):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, mailinglist.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, mailinglist.ErrNotConfirmed):
		return pkgErrors.NewHTTPError(http.StatusPreconditionRequired, err.Error())
	}

	var apiErr *apigateway.APIError
	if errors.As(err, &apiErr) {
		return pkgErrors.NewHTTPError(http.StatusBadGateway, apiErr.Error())
	}
	return pkgErrors.ErrBadGateway
}
