package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sajidul-dev/adboard/backend/internal/repositories"
	"github.com/sajidul-dev/adboard/backend/internal/store"
)

// httpError maps the repository/store error taxonomy onto HTTP status codes.
// Storage failures fall through to 500; they are fatal to the request, not
// the process.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, store.ErrInvalidCollection),
		errors.Is(err, repositories.ErrValidation),
		errors.Is(err, repositories.ErrConflict):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, repositories.ErrAuth):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, repositories.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
