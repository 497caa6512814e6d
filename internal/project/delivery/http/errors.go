package http

import (
	"errors"
	"net/http"

	"collab-dashboard/internal/project"
	"collab-dashboard/pkg/apigateway"
	pkgErrors "collab-dashboard/pkg/errors"
)

var errNoSession = pkgErrors.NewHTTPError(http.StatusInternalServerError, "no session bound to request")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, project.ErrShortNameRequired),
		errors.Is(err, project.ErrGroupRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, project.ErrNotAuthenticated):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, project.ErrProjectNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	}

	var apiErr *apigateway.APIError
	if errors.As(err, &apiErr) {
		return pkgErrors.NewHTTPError(http.StatusBadGateway, apiErr.Error())
	}
	return pkgErrors.ErrBadGateway
}
